// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/dotandev/wasmkit/internal/cmd"
)

// Build-time variables injected via -ldflags.
var (
	version   = "dev"
	commitSHA = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.Version = version
	cmd.CommitSHA = commitSHA
	cmd.BuildDate = buildDate

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
