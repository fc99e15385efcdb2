// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// WriteOpcode emits the prefix byte (if any) and the opcode value.
func WriteOpcode(w *Writer, op wasm.Opcode) {
	if prefix, ok := op.Prefix(); ok {
		w.U8(prefix)
		w.VarU32(op.Code())
		return
	}
	w.U8(byte(op.Code()))
}

// WriteInstruction emits the opcode and the immediate bytes in the shape
// the decoder expects for it.
func WriteInstruction(w *Writer, in wasm.Instruction) {
	WriteOpcode(w, in.Opcode)

	info, _ := in.Opcode.Info()
	switch info.Imm {
	case wasm.ImmNone:

	case wasm.ImmBlockType:
		WriteBlockType(w, in.BlockType)

	case wasm.ImmIndex:
		w.VarU32(in.Index)

	case wasm.ImmBrTable:
		w.VarU32(uint32(len(in.BrTable.Targets)))
		for _, target := range in.BrTable.Targets {
			w.VarU32(target.Value)
		}
		w.VarU32(in.BrTable.Default)

	case wasm.ImmCallIndirect:
		w.VarU32(in.CallIndirect.TypeIndex)
		w.VarU32(in.CallIndirect.TableIndex)

	case wasm.ImmBrOnExn:
		w.VarU32(in.BrOnExn.Target)
		w.VarU32(in.BrOnExn.Event)

	case wasm.ImmMemArg:
		w.VarU32(in.MemArg.AlignLog2)
		w.VarU32(in.MemArg.Offset)

	case wasm.ImmReserved:
		w.U8(0)

	case wasm.ImmCopy:
		w.VarU32(in.Copy.Dst)
		w.VarU32(in.Copy.Src)

	case wasm.ImmInit:
		w.VarU32(in.Init.Segment)
		w.VarU32(in.Init.Dst)

	case wasm.ImmS32:
		w.VarS32(in.S32)

	case wasm.ImmS64:
		w.VarS64(in.S64)

	case wasm.ImmF32:
		w.F32(in.F32)

	case wasm.ImmF64:
		w.F64(in.F64)

	case wasm.ImmV128:
		w.Raw(in.V128[:])

	case wasm.ImmShuffle:
		w.Raw(in.Shuffle[:])

	case wasm.ImmSimdLane:
		w.U8(in.Lane)

	case wasm.ImmSelectTypes:
		w.VarU32(uint32(len(in.SelectTypes)))
		for _, vt := range in.SelectTypes {
			WriteValueType(w, vt.Value)
		}
	}
}

// WriteExpression emits the raw expression bytes (the terminating end is
// already part of them).
func WriteExpression(w *Writer, expr wasm.Expression) {
	w.Raw(expr.Data)
}

// EncodeInstruction renders a single instruction to a fresh buffer.
func EncodeInstruction(in wasm.Instruction) []byte {
	var w Writer
	WriteInstruction(&w, in)
	return w.Bytes()
}
