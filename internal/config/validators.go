// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/dotandev/wasmkit/internal/errors"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func validate(cfg *Config) error {
	if cfg.LogLevel != "" && !validLogLevels[cfg.LogLevel] {
		return errors.WrapInvalidConfig(
			fmt.Errorf("log_level %q must be one of: debug, info, warn, error", cfg.LogLevel))
	}
	if _, err := ParseFeatures(cfg.Features); err != nil {
		return err
	}
	if cfg.MinToolVersion != "" {
		if _, err := goversion.NewVersion(cfg.MinToolVersion); err != nil {
			return errors.WrapInvalidConfig(
				fmt.Errorf("min_tool_version %q: %w", cfg.MinToolVersion, err))
		}
	}
	return nil
}

// CheckToolVersion compares the running build against the configured
// minimum. Dev builds skip the check.
func (c *Config) CheckToolVersion(current string) error {
	if c.MinToolVersion == "" || current == "dev" {
		return nil
	}
	have, err := goversion.NewVersion(current)
	if err != nil {
		return nil
	}
	want, err := goversion.NewVersion(c.MinToolVersion)
	if err != nil {
		return nil
	}
	if have.LessThan(want) {
		return errors.WrapToolTooOld(current, c.MinToolVersion)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WASMKIT_FEATURES"); v != "" {
		cfg.Features = strings.Split(v, ",")
	}
	if v := os.Getenv("WASMKIT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WASMKIT_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("WASMKIT_TELEMETRY"); v == "true" || v == "1" {
		cfg.Telemetry = true
	}
	if v := os.Getenv("WASMKIT_TELEMETRY_URL"); v != "" {
		cfg.TelemetryURL = v
	}
}
