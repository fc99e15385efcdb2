// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotandev/wasmkit/internal/config"
	"github.com/dotandev/wasmkit/internal/logger"
	"github.com/dotandev/wasmkit/internal/wasm"
)

// Global flag variables
var (
	FeatureFlags []string
	AllFlag      bool
	NoCacheFlag  bool
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wasmkit",
	Short: "WebAssembly binary module inspector and codec",
	Long: `Wasmkit reads WebAssembly binary modules and prints what is inside them:
section framing, types, imports, exports, and the rest of the module tree.
Decoding is tolerant, so a single corrupted section reports an error with
its byte offset while the remaining sections still print.

Proposal support is opt-in: pass --enable for each proposal the module
uses, or --all to turn everything on.

Examples:
  wasmkit sections mod.wasm                       Print the section summary
  wasmkit sections --enable simd mod.wasm         Allow SIMD opcodes
  wasmkit sections --all mod.wasm                 Enable every proposal
  wasmkit names mod.wasm                          Dump the name section

Get started with 'wasmkit sections --help'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		logger.Init(logger.ParseLevel(cfg.LogLevel), os.Stderr, cfg.LogJSON)
		if err := cfg.CheckToolVersion(Version); err != nil {
			return err
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Logger.Error("command failed", slog.String("error", err.Error()))
	}
	return err
}

// resolveFeatures merges config defaults with the CLI flags.
func resolveFeatures() (wasm.Features, error) {
	if AllFlag {
		return wasm.AllFeatures(), nil
	}
	names := append([]string{}, cfg.Features...)
	names = append(names, FeatureFlags...)
	return config.ParseFeatures(names)
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(
		&FeatureFlags,
		"enable",
		nil,
		"Enable a proposal by name (repeatable), e.g. --enable simd --enable threads",
	)

	rootCmd.PersistentFlags().BoolVar(
		&AllFlag,
		"all",
		false,
		"Enable every supported proposal",
	)

	rootCmd.PersistentFlags().BoolVar(
		&NoCacheFlag,
		"no-cache",
		false,
		"Skip the section-summary cache",
	)
}
