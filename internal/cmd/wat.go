// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotandev/wasmkit/internal/errors"
	"github.com/dotandev/wasmkit/internal/wasmbin"
	"github.com/dotandev/wasmkit/internal/wat"
)

// watCmd disassembles function bodies.
var watCmd = &cobra.Command{
	Use:   "wat FILE",
	Short: "Disassemble the function bodies of a WebAssembly module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWat(args[0])
	},
}

func runWat(path string) error {
	features, err := resolveFeatures()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapReadFile(err, path)
	}

	var errs wasmbin.ErrorList
	module, ok := wasmbin.DecodeModule(data, features, &errs)
	if !ok {
		return errors.WrapDecodeFailed(path, len(errs.Errors))
	}

	for i, code := range module.Codes {
		fmt.Print(wat.DisassembleCode(i, code.Value, features, &errs))
	}

	for _, decodeErr := range errs.Errors {
		fmt.Println(errorLabel.Sprintf("error: %s", decodeErr.Error()))
	}
	if !errs.Empty() {
		return errors.WrapDecodeFailed(path, len(errs.Errors))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watCmd)
}
