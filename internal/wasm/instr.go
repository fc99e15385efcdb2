// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasm

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// V128Bytes is a 128-bit SIMD value, stored as the raw 16 little-endian bytes and
// reinterpreted lane-wise on demand.
type V128Bytes [16]byte

func V128FromU64x2(lo, hi uint64) V128Bytes {
	var v V128Bytes
	binary.LittleEndian.PutUint64(v[0:8], lo)
	binary.LittleEndian.PutUint64(v[8:16], hi)
	return v
}

func (v V128Bytes) U64x2() [2]uint64 {
	return [2]uint64{
		binary.LittleEndian.Uint64(v[0:8]),
		binary.LittleEndian.Uint64(v[8:16]),
	}
}

func (v V128Bytes) U32x4() [4]uint32 {
	var out [4]uint32
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(v[i*4 : i*4+4])
	}
	return out
}

func (v V128Bytes) U16x8() [8]uint16 {
	var out [8]uint16
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(v[i*2 : i*2+2])
	}
	return out
}

func (v V128Bytes) U8x16() [16]byte { return v }

func (v V128Bytes) F32x4() [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(v[i*4 : i*4+4]))
	}
	return out
}

func (v V128Bytes) F64x2() [2]float64 {
	var out [2]float64
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(v[i*8 : i*8+8]))
	}
	return out
}

// MemArg is the alignment/offset pair on memory-access instructions.
// AlignLog2 is the stored log2 value, not the byte count.
type MemArg struct {
	AlignLog2 uint32
	Offset    uint32
}

// CallIndirect immediate: type index plus the table slot. TableIndex must be
// 0 unless reference-types is enabled.
type CallIndirect struct {
	TypeIndex  Index
	TableIndex Index
}

// BrTable immediate: branch targets plus the default target.
type BrTable struct {
	Targets []At[Index]
	Default Index
}

// BrOnExn immediate: branch depth plus event index.
type BrOnExn struct {
	Target Index
	Event  Index
}

// Copy immediate for memory.copy / table.copy. Both slots are reserved zero
// bytes for memory.copy; for table.copy they are table indexes when
// reference-types is enabled and reserved zero bytes otherwise.
type Copy struct {
	Dst Index
	Src Index
}

// Init immediate for memory.init / table.init: segment index plus
// destination slot.
type Init struct {
	Segment Index
	Dst     Index
}

// ShuffleLanes is the 16 lane indexes of v8x16.shuffle.
type ShuffleLanes [16]byte

// Instruction pairs an opcode with its decoded immediate. The immediate
// field set is selected by opcodeInfo[Opcode].Imm; all others are zero.
type Instruction struct {
	Opcode Opcode

	S32          int32
	S64          int64
	F32          float32
	F64          float64
	V128         V128Bytes
	Index        Index
	BlockType    BlockType
	BrTable      BrTable
	CallIndirect CallIndirect
	BrOnExn      BrOnExn
	MemArg       MemArg
	Copy         Copy
	Init         Init
	RefType      ReferenceType
	SelectTypes  []At[ValueType]
	Shuffle      ShuffleLanes
	Lane         byte
}

func (in Instruction) String() string {
	name := in.Opcode.String()
	switch opcodeInfo[in.Opcode].Imm {
	case ImmS32:
		return fmt.Sprintf("%s %d", name, in.S32)
	case ImmS64:
		return fmt.Sprintf("%s %d", name, in.S64)
	case ImmF32:
		return fmt.Sprintf("%s %g", name, in.F32)
	case ImmF64:
		return fmt.Sprintf("%s %g", name, in.F64)
	case ImmIndex:
		return fmt.Sprintf("%s %d", name, in.Index)
	case ImmBlockType:
		return fmt.Sprintf("%s %s", name, in.BlockType)
	case ImmBrTable:
		var targets []string
		for _, t := range in.BrTable.Targets {
			targets = append(targets, fmt.Sprintf("%d", t.Value))
		}
		return fmt.Sprintf("%s [%s] %d", name, strings.Join(targets, " "), in.BrTable.Default)
	case ImmCallIndirect:
		return fmt.Sprintf("%s %d (table %d)", name, in.CallIndirect.TypeIndex, in.CallIndirect.TableIndex)
	case ImmBrOnExn:
		return fmt.Sprintf("%s %d %d", name, in.BrOnExn.Target, in.BrOnExn.Event)
	case ImmMemArg:
		return fmt.Sprintf("%s align=%d offset=%d", name, in.MemArg.AlignLog2, in.MemArg.Offset)
	case ImmCopy:
		return fmt.Sprintf("%s %d %d", name, in.Copy.Dst, in.Copy.Src)
	case ImmInit:
		return fmt.Sprintf("%s %d %d", name, in.Init.Segment, in.Init.Dst)
	case ImmSimdLane:
		return fmt.Sprintf("%s %d", name, in.Lane)
	}
	return name
}

// ConstantExpressionAllowed reports whether op may appear in a constant
// expression; the reference instructions join the set only when
// reference-types is enabled.
func ConstantExpressionAllowed(op Opcode, features Features) bool {
	switch op {
	case OpI32Const, OpI64Const, OpF32Const, OpF64Const, OpGlobalGet:
		return true
	case OpRefNull, OpRefFunc:
		return features.ReferenceTypes
	}
	return false
}

// ElementExpressionAllowed is the permitted set for element expressions.
func ElementExpressionAllowed(op Opcode) bool {
	return op == OpRefNull || op == OpRefFunc
}
