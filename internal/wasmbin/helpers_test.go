// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotandev/wasmkit/internal/wasm"
)

// cursorFor builds a cursor over data with a fresh sink.
func cursorFor(data []byte) (*Cursor, *ErrorList) {
	errs := &ErrorList{}
	c := NewCursor(data, errs)
	return &c, errs
}

// frame is a compact (offset, label-or-message) pair for asserting a single
// reported error: all but the last entry are context frames, the last is
// the error itself.
type frame struct {
	offset int
	text   string
}

// requireError asserts the sink holds exactly one error matching the frame
// chain.
func requireError(t *testing.T, errs *ErrorList, frames ...frame) {
	t.Helper()
	require.Len(t, errs.Errors, 1, "expected exactly one error, got %v", errs.Errors)
	e := errs.Errors[0]

	last := frames[len(frames)-1]
	require.Equal(t, last.text, e.Message)
	require.Equal(t, last.offset, e.Offset)

	context := frames[:len(frames)-1]
	require.Len(t, e.Context, len(context), "context stack: %v", e.Context)
	for i, want := range context {
		require.Equal(t, want.text, e.Context[i].Label, "context frame %d", i)
		require.Equal(t, want.offset, e.Context[i].Offset, "context frame %d (%s)", i, want.text)
	}
}

func requireNoErrors(t *testing.T, errs *ErrorList) {
	t.Helper()
	require.Empty(t, errs.Errors)
}

// decodeInstr decodes a single instruction, requiring success.
func decodeInstr(t *testing.T, data []byte, f wasm.Features) wasm.Instruction {
	t.Helper()
	c, errs := cursorFor(data)
	in, ok := ReadInstruction(c, f)
	require.True(t, ok, "errors: %v", errs.Errors)
	requireNoErrors(t, errs)
	return in.Value
}

// decodeInstrErr decodes a single instruction, requiring the given failure.
func decodeInstrErr(t *testing.T, data []byte, f wasm.Features, frames ...frame) {
	t.Helper()
	c, errs := cursorFor(data)
	_, ok := ReadInstruction(c, f)
	require.False(t, ok)
	requireError(t, errs, frames...)
}

// moduleBytes frames sections behind the standard header.
func moduleBytes(sections ...[]byte) []byte {
	out := append([]byte{}, moduleMagic...)
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}

// sectionBytes frames one section: id, length, payload.
func sectionBytes(id wasm.SectionID, payload ...byte) []byte {
	var w Writer
	WriteKnownSection(&w, id, payload)
	return w.Bytes()
}
