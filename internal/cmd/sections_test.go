// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/wasmkit/internal/wasm"
	"github.com/dotandev/wasmkit/internal/wasmbin"
)

func init() {
	color.NoColor = true
}

func buildModule(sections ...[]byte) []byte {
	var w wasmbin.Writer
	w.Raw([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00})
	for _, s := range sections {
		w.Raw(s)
	}
	return w.Bytes()
}

func section(id wasm.SectionID, payload ...byte) []byte {
	var w wasmbin.Writer
	wasmbin.WriteKnownSection(&w, id, payload)
	return w.Bytes()
}

func TestSummarize(t *testing.T) {
	data := buildModule(
		section(wasm.SectionType, 0x01, 0x60, 0x00, 0x01, 0x7f),
		section(wasm.SectionFunction, 0x01, 0x00),
		section(wasm.SectionExport, 0x01, 0x04, 'm', 'a', 'i', 'n', 0x00, 0x00),
	)

	lines, errCount := summarize(data, wasm.MVP())
	require.Zero(t, errCount)
	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "section 1 (type)")
	require.Contains(t, lines[1], "() -> (i32)")
	require.Contains(t, lines[2], "section 3 (function)")
	require.Contains(t, lines[3], "type[0]")
	require.Contains(t, lines[5], `func "main" (0)`)
}

func TestSummarize_ReportsErrors(t *testing.T) {
	// A type section with a bad form byte yields one error line but the
	// later section still prints.
	data := buildModule(
		section(wasm.SectionType, 0x01, 0x40, 0x00, 0x00),
		section(wasm.SectionFunction, 0x01, 0x00),
	)

	lines, errCount := summarize(data, wasm.MVP())
	require.Equal(t, 1, errCount)
	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	require.Contains(t, joined, "Unknown type form: 64")
	require.Contains(t, joined, "section 3 (function)")
}
