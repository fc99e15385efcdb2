// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotandev/wasmkit/internal/wasm"
)

func TestReadNameSubsectionID(t *testing.T) {
	for b, want := range map[byte]wasm.NameSubsectionID{
		0x00: wasm.NameModule,
		0x01: wasm.NameFunction,
		0x02: wasm.NameLocal,
	} {
		c, errs := cursorFor([]byte{b})
		got, ok := ReadNameSubsectionID(c)
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, want, got.Value)
	}

	c, errs := cursorFor([]byte{0x03})
	_, ok := ReadNameSubsectionID(c)
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "name subsection id"},
		frame{1, "Unknown name subsection id: 3"})
}

func TestReadNameSubsection(t *testing.T) {
	c, errs := cursorFor([]byte{0x01, 0x02, 0x00, 0x00})
	sub, ok := ReadNameSubsection(c)
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.NameFunction, sub.Value.ID)
	require.Equal(t, []byte{0x00, 0x00}, sub.Value.Data)
}

func TestReadNameAssoc(t *testing.T) {
	c, errs := cursorFor([]byte{0x02, 0x02, 'h', 'i'})
	na, ok := ReadNameAssoc(c)
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.NameAssoc{Index: 2, Name: "hi"}, na.Value)
}

func TestReadIndirectNameAssoc(t *testing.T) {
	data := []byte{
		0x64,                     // function index 100
		0x02,                     // count
		0x00, 0x04, 'z', 'e', 'r', 'o',
		0x01, 0x03, 'o', 'n', 'e',
	}
	c, errs := cursorFor(data)
	ina, ok := ReadIndirectNameAssoc(c)
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, uint32(100), ina.Value.Index)
	require.Len(t, ina.Value.NameMap, 2)
	require.Equal(t, wasm.NameAssoc{Index: 0, Name: "zero"}, ina.Value.NameMap[0].Value)
	require.Equal(t, wasm.NameAssoc{Index: 1, Name: "one"}, ina.Value.NameMap[1].Value)
}

func TestReadNameSection(t *testing.T) {
	// module name "m", then function names {0: "f"}.
	var payload Writer
	payload.U8(byte(wasm.NameModule))
	var moduleName Writer
	moduleName.Name("m")
	payload.VarU32(uint32(moduleName.Len()))
	payload.Raw(moduleName.Bytes())

	payload.U8(byte(wasm.NameFunction))
	var funcNames Writer
	funcNames.VarU32(1)
	funcNames.VarU32(0)
	funcNames.Name("f")
	payload.VarU32(uint32(funcNames.Len()))
	payload.Raw(funcNames.Bytes())

	errs := &ErrorList{}
	custom := wasm.CustomSection{Name: "name", Data: payload.Bytes()}
	seq := ReadNameSection(custom, errs)

	sub, ok := seq.Next()
	require.True(t, ok)
	require.Equal(t, wasm.NameModule, sub.Value.ID)
	name, ok := ReadModuleNameSubsection(sub.Value, errs)
	require.True(t, ok)
	require.Equal(t, "m", name.Value)

	sub, ok = seq.Next()
	require.True(t, ok)
	require.Equal(t, wasm.NameFunction, sub.Value.ID)
	nm, ok := ReadFunctionNamesSubsection(sub.Value, errs)
	require.True(t, ok)
	require.Len(t, nm, 1)
	require.Equal(t, wasm.NameAssoc{Index: 0, Name: "f"}, nm[0].Value)

	_, ok = seq.Next()
	require.False(t, ok)
	requireNoErrors(t, errs)
}

func TestReadNameSection_AbsoluteOffsets(t *testing.T) {
	// A custom section sitting at a non-zero file offset: subsection
	// errors must report offsets absolute to the module buffer, not to
	// the subsection payload.
	const base = 100

	// FunctionNames subsection declaring 5 entries with one payload byte
	// left after the count.
	payload := []byte{
		byte(wasm.NameFunction),
		0x02, // subsection length
		0x05, // count
		0x00,
	}

	errs := &ErrorList{}
	custom := wasm.CustomSection{Name: "name", Data: payload, Offset: base}
	seq := ReadNameSection(custom, errs)

	sub, ok := seq.Next()
	require.True(t, ok)
	require.Equal(t, base+2, sub.Value.Offset)

	_, ok = ReadFunctionNamesSubsection(sub.Value, errs)
	require.False(t, ok)
	requireError(t, errs,
		frame{base + 2, "name map"},
		frame{base + 3, "Count extends past end: 5 > 1"})
}

func TestErrorList_ContextStack(t *testing.T) {
	errs := &ErrorList{}
	errs.PushContext(0, "module")
	errs.PushContext(8, "section")
	errs.Report(12, "boom")
	errs.PopContext()
	errs.Report(20, "bang")
	errs.PopContext()

	require.Len(t, errs.Errors, 2)
	require.Len(t, errs.Errors[0].Context, 2)
	require.Equal(t, "section", errs.Errors[0].Context[1].Label)
	require.Len(t, errs.Errors[1].Context, 1)
	require.Equal(t, 20, errs.Errors[1].Offset)
	require.Contains(t, errs.Errors[0].Error(), "boom")
	require.Contains(t, errs.Errors[0].Error(), "module > section")
}
