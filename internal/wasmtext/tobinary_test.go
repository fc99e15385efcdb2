// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmtext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotandev/wasmkit/internal/wasm"
	"github.com/dotandev/wasmkit/internal/wasmbin"
)

func TestConvertLocals_FusesAdjacentRuns(t *testing.T) {
	// [t, t, t, u, t] must emit exactly (3,t) (1,u) (1,t).
	locals := []BoundValueType{
		{Type: wasm.I32}, {Type: wasm.I32}, {Type: wasm.I32},
		{Type: wasm.I64},
		{Type: wasm.I32},
	}
	runs := ConvertLocals(locals)
	require.Len(t, runs, 3)
	require.Equal(t, wasm.Locals{Count: 3, Type: wasm.I32}, runs[0].Value)
	require.Equal(t, wasm.Locals{Count: 1, Type: wasm.I64}, runs[1].Value)
	require.Equal(t, wasm.Locals{Count: 1, Type: wasm.I32}, runs[2].Value)
}

func TestConvertLocals_Empty(t *testing.T) {
	require.Empty(t, ConvertLocals(nil))
}

func TestConvertMemArg_NaturalAlignment(t *testing.T) {
	// Omitted alignment picks the natural alignment for the opcode.
	cases := map[wasm.Opcode]uint32{
		wasm.OpI32Load8S:  0, // log2(1)
		wasm.OpI32Load16U: 1,
		wasm.OpI32Load:    2,
		wasm.OpI64Load:    3,
		wasm.OpV128Load:   4,
	}
	for op, wantLog2 := range cases {
		in := ConvertInstruction(Instruction{Opcode: op})
		require.Equal(t, wantLog2, in.MemArg.AlignLog2, "%s", op)
		require.Equal(t, uint32(0), in.MemArg.Offset)
	}
}

func TestConvertMemArg_ExplicitAlignment(t *testing.T) {
	align := uint32(8)
	offset := uint32(16)
	in := ConvertInstruction(Instruction{
		Opcode: wasm.OpI64Load,
		MemArg: MemArgImmediate{Align: &align, Offset: &offset},
	})
	require.Equal(t, uint32(3), in.MemArg.AlignLog2)
	require.Equal(t, uint32(16), in.MemArg.Offset)
}

func TestConvertMemArg_NonPowerOfTwoPanics(t *testing.T) {
	align := uint32(3)
	require.Panics(t, func() {
		ConvertInstruction(Instruction{
			Opcode: wasm.OpI32Load,
			MemArg: MemArgImmediate{Align: &align},
		})
	})
}

func TestConvertBlockType(t *testing.T) {
	in := ConvertInstruction(Instruction{Opcode: wasm.OpBlock})
	require.Equal(t, wasm.VoidBlockType(), in.BlockType)

	i32 := wasm.I32
	in = ConvertInstruction(Instruction{
		Opcode: wasm.OpBlock,
		Block:  BlockImmediate{Inline: &i32},
	})
	require.Equal(t, wasm.ValueBlockType(wasm.I32), in.BlockType)

	use := Var(7)
	in = ConvertInstruction(Instruction{
		Opcode: wasm.OpIf,
		Block:  BlockImmediate{TypeUse: &use},
	})
	require.Equal(t, wasm.IndexBlockType(7), in.BlockType)
}

func TestConvertBlockType_IndexTooLargePanics(t *testing.T) {
	use := Var(0x80000000)
	require.Panics(t, func() {
		ConvertInstruction(Instruction{
			Opcode: wasm.OpBlock,
			Block:  BlockImmediate{TypeUse: &use},
		})
	})
}

func TestConvertInstruction_OptionalIndexDefaults(t *testing.T) {
	in := ConvertInstruction(Instruction{
		Opcode:       wasm.OpCallIndirect,
		CallIndirect: CallIndirectImmediate{TypeUse: 2},
	})
	require.Equal(t, wasm.CallIndirect{TypeIndex: 2, TableIndex: 0}, in.CallIndirect)

	in = ConvertInstruction(Instruction{
		Opcode: wasm.OpTableCopy,
		Copy:   CopyImmediate{Dst: Some(3)},
	})
	require.Equal(t, wasm.Copy{Dst: 3, Src: 0}, in.Copy)

	in = ConvertInstruction(Instruction{
		Opcode: wasm.OpMemoryInit,
		Init:   InitImmediate{Segment: 5},
	})
	require.Equal(t, wasm.Init{Segment: 5, Dst: 0}, in.Init)
}

func TestConvertExpression_ImplicitEnd(t *testing.T) {
	ctx := &Context{}
	expr := ctx.convertExpression([]Instruction{
		{Opcode: wasm.OpI32Const, S32: 1},
		{Opcode: wasm.OpI32Const, S32: 2},
		{Opcode: wasm.OpI32Add},
	})
	require.Equal(t, []byte{0x41, 0x01, 0x41, 0x02, 0x6a, 0x0b}, expr.Data)
}

func textFixture() *Module {
	i32 := wasm.I32
	return &Module{Items: []ModuleItem{
		&TypeEntry{Results: []wasm.ValueType{wasm.I32}},
		&Function{
			TypeUse: 0,
			Import:  &InlineImport{Module: "env", Name: "imported"},
		},
		&Function{
			TypeUse: 0,
			Locals: []BoundValueType{
				{Type: wasm.I32}, {Type: wasm.I32}, {Type: wasm.I64},
			},
			Instructions: []Instruction{
				{Opcode: wasm.OpBlock, Block: BlockImmediate{Inline: &i32}},
				{Opcode: wasm.OpI32Const, S32: 42},
				{Opcode: wasm.OpEnd},
			},
		},
		&Table{Type: wasm.TableType{
			Limits:   wasm.Limits{Min: 1},
			ElemType: wasm.Funcref,
		}},
		&Memory{Type: wasm.MemoryType{Limits: wasm.Limits{Min: 1, Max: 2, HasMax: true}}},
		&Global{
			Type: wasm.GlobalType{ValType: wasm.I32, Mut: wasm.Var},
			Init: []Instruction{{Opcode: wasm.OpI32Const, S32: 7}},
		},
		&Export{Kind: wasm.ExternalFunction, Name: "main", Var: 1},
		&Start{Var: 1},
		&ElementSegment{
			Kind:   wasm.SegmentActive,
			Offset: []Instruction{{Opcode: wasm.OpI32Const, S32: 0}},
			Elements: ElementList{
				Kind: wasm.ExternalFunction,
				Vars: []Var{1},
			},
		},
		&DataSegment{
			Kind:   wasm.SegmentActive,
			Offset: []Instruction{{Opcode: wasm.OpI32Const, S32: 8}},
			Data:   []byte("hi"),
		},
	}}
}

func TestToBinary_Module(t *testing.T) {
	ctx := &Context{}
	module := ToBinary(ctx, textFixture())

	// The imported function contributes an import entry and nothing else.
	require.Len(t, module.Imports, 1)
	require.Equal(t, wasm.ExternalFunction, module.Imports[0].Value.Kind)
	require.Len(t, module.Functions, 1)
	require.Len(t, module.Codes, 1)

	// Locals fused into two runs.
	require.Len(t, module.Codes[0].Value.Locals, 2)
	require.Equal(t, wasm.Locals{Count: 2, Type: wasm.I32},
		module.Codes[0].Value.Locals[0].Value)

	// Body carries the implicit end: block i32, i32.const 42, end, end.
	require.Equal(t, []byte{0x02, 0x7f, 0x41, 0x2a, 0x0b, 0x0b},
		module.Codes[0].Value.Body.Data)

	// Omitted table/memory slots default to zero.
	require.Equal(t, uint32(0), module.Elements[0].Value.TableIndex)
	require.Equal(t, uint32(0), module.Data[0].Value.MemoryIndex)

	require.NotNil(t, module.Start)
	require.Equal(t, uint32(1), module.Start.Value.FuncIndex)
}

func TestToBinary_PassiveSegmentsDropOffsets(t *testing.T) {
	ctx := &Context{}
	module := ToBinary(ctx, &Module{Items: []ModuleItem{
		&DataSegment{
			Kind:   wasm.SegmentPassive,
			Memory: Some(5),
			Offset: []Instruction{{Opcode: wasm.OpI32Const, S32: 1}},
			Data:   []byte("p"),
		},
	}})
	seg := module.Data[0].Value
	require.Equal(t, wasm.SegmentPassive, seg.Kind)
	require.Equal(t, uint32(0), seg.MemoryIndex)
	require.Empty(t, seg.Offset.Instructions)
}

// The converted module survives an encode/decode round trip structurally.
func TestToBinary_EncodeDecodeRoundTrip(t *testing.T) {
	ctx := &Context{}
	converted := ToBinary(ctx, textFixture())

	encoded := wasmbin.EncodeModule(converted)
	errs := &wasmbin.ErrorList{}
	decoded, ok := wasmbin.DecodeModule(encoded, wasm.MVP(), errs)
	require.True(t, ok, "errors: %v", errs.Errors)
	require.Empty(t, errs.Errors)

	require.Len(t, decoded.Types, len(converted.Types))
	require.Len(t, decoded.Imports, len(converted.Imports))
	require.Len(t, decoded.Functions, len(converted.Functions))
	require.Len(t, decoded.Codes, len(converted.Codes))
	require.Equal(t, converted.Codes[0].Value.Body.Data, decoded.Codes[0].Value.Body.Data)
	require.Equal(t, converted.Imports[0].Value, decoded.Imports[0].Value)
	require.Equal(t, converted.Exports[0].Value, decoded.Exports[0].Value)
	require.Equal(t, converted.Data[0].Value.Init, decoded.Data[0].Value.Init)

	// Encoding the re-decoded tree reproduces the same bytes.
	require.Equal(t, encoded, wasmbin.EncodeModule(decoded))
}
