// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dotandev/wasmkit/internal/db"
	"github.com/dotandev/wasmkit/internal/errors"
	"github.com/dotandev/wasmkit/internal/logger"
	"github.com/dotandev/wasmkit/internal/telemetry"
	"github.com/dotandev/wasmkit/internal/wasm"
	"github.com/dotandev/wasmkit/internal/wasmbin"
)

var (
	sectionHeader = color.New(color.FgCyan, color.Bold)
	entryLabel    = color.New(color.FgGreen)
	errorLabel    = color.New(color.FgRed, color.Bold)
)

// sectionsCmd prints the section summary of a module.
var sectionsCmd = &cobra.Command{
	Use:   "sections FILE",
	Short: "Print the section summary of a WebAssembly module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSections(cmd.Context(), args[0])
	},
}

func runSections(ctx context.Context, path string) error {
	features, err := resolveFeatures()
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry,
		ExporterURL: cfg.TelemetryURL,
		ServiceName: "wasmkit",
		Version:     Version,
	})
	if err != nil {
		logger.Logger.Warn("telemetry init failed", slog.String("error", err.Error()))
	} else {
		defer shutdown()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapReadFile(err, path)
	}

	hash := sha256.Sum256(data)
	hashHex := hex.EncodeToString(hash[:])

	var store *db.Store
	if !NoCacheFlag && cfg.CachePath != "" {
		store, err = db.Open(cfg.CachePath)
		if err != nil {
			logger.Logger.Warn("cache unavailable", slog.String("error", err.Error()))
		} else {
			defer store.Close()
			if cached, err := store.Lookup(hashHex); err == nil && cached != nil {
				logger.Logger.Debug("summary served from cache",
					slog.String("hash", hashHex))
				for _, line := range cached.Sections {
					fmt.Println(line)
				}
				return nil
			}
		}
	}

	_, span := telemetry.GetTracer().Start(ctx, "sections")
	defer span.End()

	lines, errCount := summarize(data, features)
	for _, line := range lines {
		fmt.Println(line)
	}

	if store != nil && errCount == 0 {
		summary := &db.Summary{
			Hash:      hashHex,
			Path:      path,
			SizeBytes: int64(len(data)),
			Sections:  lines,
		}
		if err := store.Save(summary); err != nil {
			logger.Logger.Warn("cache save failed", slog.String("error", err.Error()))
		}
	}

	if errCount > 0 {
		return errors.WrapDecodeFailed(path, errCount)
	}
	return nil
}

// summarize renders the section summary lines and returns the error count.
func summarize(data []byte, features wasm.Features) ([]string, int) {
	var errs wasmbin.ErrorList
	var lines []string

	sections, ok := wasmbin.ReadModule(data, features, &errs)
	if ok {
		for {
			section, ok := sections.Next()
			if !ok {
				break
			}
			if section.Value.IsCustom() {
				custom := section.Value.Custom
				lines = append(lines, sectionHeader.Sprintf("custom section %q: %d bytes",
					custom.Name, len(custom.Data)))
				continue
			}
			known := *section.Value.Known
			lines = append(lines, sectionHeader.Sprintf("section %d (%s): %d bytes",
				known.ID, known.ID, len(known.Data)))
			lines = append(lines, summarizeKnown(known, features, &errs)...)
		}
	}

	for _, decodeErr := range errs.Errors {
		lines = append(lines, errorLabel.Sprintf("error: %s", decodeErr.Error()))
	}
	return lines, len(errs.Errors)
}

func summarizeKnown(known wasm.KnownSection, features wasm.Features, errs *wasmbin.ErrorList) []string {
	var lines []string
	entry := func(i int, s string) {
		lines = append(lines, entryLabel.Sprintf("  [%d]: %s", i, s))
	}

	switch known.ID {
	case wasm.SectionType:
		if seq, ok := wasmbin.ReadTypeSection(known, features, errs); ok {
			for i, te := range seq.Collect() {
				entry(i, te.Value.Type.String())
			}
		}
	case wasm.SectionImport:
		if seq, ok := wasmbin.ReadImportSection(known, features, errs); ok {
			for i, im := range seq.Collect() {
				entry(i, im.Value.String())
			}
		}
	case wasm.SectionFunction:
		if seq, ok := wasmbin.ReadFunctionSection(known, features, errs); ok {
			for i, fn := range seq.Collect() {
				entry(i, fmt.Sprintf("type[%d]", fn.Value.TypeIndex))
			}
		}
	case wasm.SectionTable:
		if seq, ok := wasmbin.ReadTableSection(known, features, errs); ok {
			for i, t := range seq.Collect() {
				entry(i, t.Value.Type.String())
			}
		}
	case wasm.SectionMemory:
		if seq, ok := wasmbin.ReadMemorySection(known, features, errs); ok {
			for i, m := range seq.Collect() {
				entry(i, m.Value.Type.String())
			}
		}
	case wasm.SectionGlobal:
		if seq, ok := wasmbin.ReadGlobalSection(known, features, errs); ok {
			for i, g := range seq.Collect() {
				entry(i, g.Value.Type.String())
			}
		}
	case wasm.SectionExport:
		if seq, ok := wasmbin.ReadExportSection(known, features, errs); ok {
			for i, e := range seq.Collect() {
				entry(i, e.Value.String())
			}
		}
	case wasm.SectionStart:
		if start, ok := wasmbin.ReadStartSection(known, features, errs); ok {
			entry(0, fmt.Sprintf("func[%d]", start.Value.FuncIndex))
		}
	case wasm.SectionElement:
		if seq, ok := wasmbin.ReadElementSection(known, features, errs); ok {
			for i, seg := range seq.Collect() {
				entry(i, seg.Value.Kind.String())
			}
		}
	case wasm.SectionCode:
		if seq, ok := wasmbin.ReadCodeSection(known, features, errs); ok {
			for i, code := range seq.Collect() {
				entry(i, fmt.Sprintf("%d locals runs, %d byte body",
					len(code.Value.Locals), len(code.Value.Body.Data)))
			}
		}
	case wasm.SectionData:
		if seq, ok := wasmbin.ReadDataSection(known, features, errs); ok {
			for i, seg := range seq.Collect() {
				entry(i, fmt.Sprintf("%s, %d bytes", seg.Value.Kind, len(seg.Value.Init)))
			}
		}
	case wasm.SectionDataCount:
		if count, ok := wasmbin.ReadDataCountSection(known, features, errs); ok {
			entry(0, fmt.Sprintf("%d", count.Value))
		}
	case wasm.SectionEvent:
		if seq, ok := wasmbin.ReadEventSection(known, features, errs); ok {
			for i, ev := range seq.Collect() {
				entry(i, fmt.Sprintf("type[%d]", ev.Value.Type.TypeIndex))
			}
		}
	}
	return lines
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
