// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotandev/wasmkit/internal/wasm"
)

func TestReadValueType(t *testing.T) {
	cases := []struct {
		data     byte
		features wasm.Features
		want     wasm.ValueType
	}{
		{0x7f, wasm.MVP(), wasm.I32},
		{0x7e, wasm.MVP(), wasm.I64},
		{0x7d, wasm.MVP(), wasm.F32},
		{0x7c, wasm.MVP(), wasm.F64},
		{0x7b, wasm.Features{SIMD: true}, wasm.V128},
		{0x70, wasm.Features{ReferenceTypes: true}, wasm.Funcref},
		{0x6f, wasm.Features{ReferenceTypes: true}, wasm.Anyref},
		{0x6e, wasm.Features{ReferenceTypes: true}, wasm.Nullref},
		{0x68, wasm.Features{Exceptions: true}, wasm.Exnref},
	}
	for _, tc := range cases {
		c, errs := cursorFor([]byte{tc.data})
		got, ok := ReadValueType(c, tc.features)
		require.True(t, ok, "byte %#x", tc.data)
		requireNoErrors(t, errs)
		require.Equal(t, tc.want, got.Value)
	}
}

func TestReadValueType_Unknown(t *testing.T) {
	// Feature-gated bytes without their feature, and junk.
	for _, b := range []byte{0x7b, 0x70, 0x6f, 0x6e, 0x68, 0x10, 0xff} {
		c, errs := cursorFor([]byte{b})
		_, ok := ReadValueType(c, wasm.MVP())
		require.False(t, ok)
		requireError(t, errs,
			frame{0, "value type"},
			frame{1, fmt.Sprintf("Unknown value type: %d", b)})
	}
}

func TestReadElementType(t *testing.T) {
	c, errs := cursorFor([]byte{0x70})
	got, ok := ReadElementType(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.Funcref, got.Value)

	// anyref requires reference-types
	c, errs = cursorFor([]byte{0x6f})
	_, ok = ReadElementType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "element type"},
		frame{1, "Unknown element type: 111"})

	c, errs = cursorFor([]byte{0x6f})
	got, ok = ReadElementType(c, wasm.Features{ReferenceTypes: true})
	require.True(t, ok)
	require.Equal(t, wasm.Anyref, got.Value)

	c, errs = cursorFor([]byte{0x00})
	_, ok = ReadElementType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "element type"},
		frame{1, "Unknown element type: 0"})
}

func TestReadExternalKind(t *testing.T) {
	for b, want := range map[byte]wasm.ExternalKind{
		0: wasm.ExternalFunction,
		1: wasm.ExternalTable,
		2: wasm.ExternalMemory,
		3: wasm.ExternalGlobal,
	} {
		c, errs := cursorFor([]byte{b})
		got, ok := ReadExternalKind(c, wasm.MVP())
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, want, got.Value)
	}

	c, errs := cursorFor([]byte{0x04})
	_, ok := ReadExternalKind(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "external kind"},
		frame{1, "Unknown external kind: 4"})

	c, errs = cursorFor([]byte{0x04})
	got, ok := ReadExternalKind(c, wasm.Features{Exceptions: true})
	require.True(t, ok)
	require.Equal(t, wasm.ExternalEvent, got.Value)
}

func TestReadMutability(t *testing.T) {
	c, _ := cursorFor([]byte{0x00})
	got, ok := ReadMutability(c)
	require.True(t, ok)
	require.Equal(t, wasm.Const, got.Value)

	c, errs := cursorFor([]byte{0x04})
	_, ok = ReadMutability(c)
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "mutability"},
		frame{1, "Unknown mutability: 4"})
}

func TestReadBlockType_MVP(t *testing.T) {
	cases := map[byte]wasm.BlockType{
		0x7f: wasm.ValueBlockType(wasm.I32),
		0x7e: wasm.ValueBlockType(wasm.I64),
		0x7d: wasm.ValueBlockType(wasm.F32),
		0x7c: wasm.ValueBlockType(wasm.F64),
		0x40: wasm.VoidBlockType(),
	}
	for b, want := range cases {
		c, errs := cursorFor([]byte{b})
		got, ok := ReadBlockType(c, wasm.MVP())
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, want, got.Value)
	}
}

func TestReadBlockType_SIMD(t *testing.T) {
	c, errs := cursorFor([]byte{0x7b})
	_, ok := ReadBlockType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "block type"},
		frame{1, "Unknown block type: 123"})

	c, _ = cursorFor([]byte{0x7b})
	got, ok := ReadBlockType(c, wasm.Features{SIMD: true})
	require.True(t, ok)
	require.Equal(t, wasm.ValueBlockType(wasm.V128), got.Value)
}

func TestReadBlockType_MultiValue(t *testing.T) {
	// Index form needs multi-value.
	c, errs := cursorFor([]byte{0x01})
	_, ok := ReadBlockType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "block type"},
		frame{1, "Unknown block type: 1"})

	mv := wasm.Features{MultiValue: true}
	c, _ = cursorFor([]byte{0x01})
	got, ok := ReadBlockType(c, mv)
	require.True(t, ok)
	require.Equal(t, wasm.IndexBlockType(1), got.Value)

	c, _ = cursorFor([]byte{0xc0, 0x03})
	got, ok = ReadBlockType(c, mv)
	require.True(t, ok)
	require.Equal(t, wasm.IndexBlockType(448), got.Value)

	// Negative non-type values stay unknown.
	c, errs = cursorFor([]byte{0x77})
	_, ok = ReadBlockType(c, mv)
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "block type"},
		frame{1, "Unknown block type: -9"})
}

func TestReadBlockType_Unknown(t *testing.T) {
	c, errs := cursorFor([]byte{0x00})
	_, ok := ReadBlockType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "block type"},
		frame{1, "Unknown block type: 0"})

	// Overlong encoding of a single-byte form is not allowed.
	c, errs = cursorFor([]byte{0xff, 0x7f})
	_, ok = ReadBlockType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "block type"},
		frame{1, "Unknown block type: 255"})
}

func TestReadLimits(t *testing.T) {
	c, errs := cursorFor([]byte{0x00, 0x81, 0x01})
	got, ok := ReadLimits(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.Limits{Min: 129}, got.Value)

	c, _ = cursorFor([]byte{0x01, 0x02, 0xe8, 0x07})
	got, ok = ReadLimits(c, wasm.MVP())
	require.True(t, ok)
	require.Equal(t, wasm.Limits{Min: 2, Max: 1000, HasMax: true}, got.Value)
}

func TestReadLimits_BadFlags(t *testing.T) {
	c, errs := cursorFor([]byte{0x02, 0x01})
	_, ok := ReadLimits(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "limits"},
		frame{1, "Unknown flags value: 2"})

	// Shared needs threads.
	c, errs = cursorFor([]byte{0x03, 0x01})
	_, ok = ReadLimits(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "limits"},
		frame{1, "Unknown flags value: 3"})
}

func TestReadLimits_Threads(t *testing.T) {
	c, errs := cursorFor([]byte{0x03, 0x02, 0xe8, 0x07})
	got, ok := ReadLimits(c, wasm.Features{Threads: true})
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.Limits{Min: 2, Max: 1000, HasMax: true, Shared: true}, got.Value)
}

func TestReadLimits_PastEnd(t *testing.T) {
	c, errs := cursorFor([]byte{0x00})
	_, ok := ReadLimits(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "limits"},
		frame{1, "min"},
		frame{1, "u32"},
		frame{1, "Unable to read u8"})
}

func TestReadFunctionType(t *testing.T) {
	// (i32, i64) -> (f64), spec scenario 1.
	c, errs := cursorFor([]byte{0x02, 0x7f, 0x7e, 0x01, 0x7c})
	got, ok := ReadFunctionType(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.FunctionType{
		Params:  []wasm.ValueType{wasm.I32, wasm.I64},
		Results: []wasm.ValueType{wasm.F64},
	}, got.Value)
}

func TestReadFunctionType_PastEnd(t *testing.T) {
	c, errs := cursorFor(nil)
	_, ok := ReadFunctionType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "function type"},
		frame{0, "param types"},
		frame{0, "count"},
		frame{0, "Unable to read u8"})

	c, errs = cursorFor([]byte{0x01})
	_, ok = ReadFunctionType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "function type"},
		frame{0, "param types"},
		frame{1, "Count extends past end: 1 > 0"})
}

func TestReadGlobalType(t *testing.T) {
	c, errs := cursorFor([]byte{0x7f, 0x01})
	got, ok := ReadGlobalType(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.GlobalType{ValType: wasm.I32, Mut: wasm.Var}, got.Value)

	c, errs = cursorFor([]byte{0x7f})
	_, ok = ReadGlobalType(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "global type"},
		frame{1, "mutability"},
		frame{1, "Unable to read u8"})
}

func TestReadTableType(t *testing.T) {
	c, errs := cursorFor([]byte{0x70, 0x00, 0x01})
	got, ok := ReadTableType(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.TableType{
		Limits:   wasm.Limits{Min: 1},
		ElemType: wasm.Funcref,
	}, got.Value)
}

func TestReadImport(t *testing.T) {
	// import "a" "func" (func (type 2))
	data := []byte{0x01, 'a', 0x04, 'f', 'u', 'n', 'c', 0x00, 0x02}
	c, errs := cursorFor(data)
	got, ok := ReadImport(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.Import{
		Module: "a", Name: "func", Kind: wasm.ExternalFunction, Func: 2,
	}, got.Value)

	// import "b" "mem" (memory 0 128)
	data = []byte{0x01, 'b', 0x03, 'm', 'e', 'm', 0x02, 0x01, 0x00, 0x80, 0x01}
	c, errs = cursorFor(data)
	got, ok = ReadImport(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.Import{
		Module: "b", Name: "mem", Kind: wasm.ExternalMemory,
		Memory: wasm.MemoryType{Limits: wasm.Limits{Min: 0, Max: 128, HasMax: true}},
	}, got.Value)
}

func TestReadImport_PastEnd(t *testing.T) {
	c, errs := cursorFor(nil)
	_, ok := ReadImport(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "import"},
		frame{0, "module name"},
		frame{0, "length"},
		frame{0, "Unable to read u8"})

	c, errs = cursorFor([]byte{0x00, 0x00})
	_, ok = ReadImport(c, wasm.MVP())
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "import"},
		frame{2, "external kind"},
		frame{2, "Unable to read u8"})
}

func TestReadExport(t *testing.T) {
	data := []byte{0x02, 'h', 'i', 0x03, 0x07}
	c, errs := cursorFor(data)
	got, ok := ReadExport(c, wasm.MVP())
	require.True(t, ok)
	requireNoErrors(t, errs)
	require.Equal(t, wasm.Export{Name: "hi", Kind: wasm.ExternalGlobal, Index: 7}, got.Value)
}

func TestReadString_LengthPastEnd(t *testing.T) {
	c, errs := cursorFor([]byte{0x06, 'a', 'b'})
	_, ok := readString(c, "name")
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "name"},
		frame{1, "Length extends past end: 6 > 2"})
}
