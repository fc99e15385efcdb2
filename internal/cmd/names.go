// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotandev/wasmkit/internal/errors"
	"github.com/dotandev/wasmkit/internal/wasm"
	"github.com/dotandev/wasmkit/internal/wasmbin"
)

// namesCmd dumps the "name" custom section.
var namesCmd = &cobra.Command{
	Use:   "names FILE",
	Short: "Dump the name custom section of a WebAssembly module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNames(args[0])
	},
}

func runNames(path string) error {
	features, err := resolveFeatures()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapReadFile(err, path)
	}

	var errs wasmbin.ErrorList
	sections, ok := wasmbin.ReadModule(data, features, &errs)
	if !ok {
		return errors.WrapDecodeFailed(path, len(errs.Errors))
	}

	found := false
	for {
		section, ok := sections.Next()
		if !ok {
			break
		}
		if !section.Value.IsCustom() || section.Value.Custom.Name != "name" {
			continue
		}
		found = true
		printNameSection(*section.Value.Custom, &errs)
	}
	if !found {
		fmt.Println("no name section")
	}

	for _, decodeErr := range errs.Errors {
		fmt.Println(errorLabel.Sprintf("error: %s", decodeErr.Error()))
	}
	if !errs.Empty() {
		return errors.WrapDecodeFailed(path, len(errs.Errors))
	}
	return nil
}

func printNameSection(custom wasm.CustomSection, errs *wasmbin.ErrorList) {
	seq := wasmbin.ReadNameSection(custom, errs)
	for {
		sub, ok := seq.Next()
		if !ok {
			return
		}
		switch sub.Value.ID {
		case wasm.NameModule:
			if name, ok := wasmbin.ReadModuleNameSubsection(sub.Value, errs); ok {
				fmt.Printf("module name: %q\n", name.Value)
			}
		case wasm.NameFunction:
			if nm, ok := wasmbin.ReadFunctionNamesSubsection(sub.Value, errs); ok {
				fmt.Println(sectionHeader.Sprint("function names:"))
				for _, na := range nm {
					fmt.Printf("  func[%d] = %q\n", na.Value.Index, na.Value.Name)
				}
			}
		case wasm.NameLocal:
			if assocs, ok := wasmbin.ReadLocalNamesSubsection(sub.Value, errs); ok {
				fmt.Println(sectionHeader.Sprint("local names:"))
				for _, assoc := range assocs {
					for _, na := range assoc.Value.NameMap {
						fmt.Printf("  func[%d] local[%d] = %q\n",
							assoc.Value.Index, na.Value.Index, na.Value.Name)
					}
				}
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(namesCmd)
}
