// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasm

import "fmt"

// Opcode packs an optional prefix byte and the (possibly multi-byte) opcode
// value into one integer: prefix<<32 | code. Prefix 0 means the primary
// single-byte table.
type Opcode uint64

const prefixShift = 32

// Opcode prefixes for the multi-byte tables.
const (
	PrefixMisc    byte = 0xfc
	PrefixSIMD    byte = 0xfd
	PrefixThreads byte = 0xfe
)

// PrefixedOpcode builds an Opcode from a prefix byte and its trailing code.
func PrefixedOpcode(prefix byte, code uint32) Opcode {
	return Opcode(prefix)<<prefixShift | Opcode(code)
}

// Prefix returns the prefix byte, if any.
func (o Opcode) Prefix() (byte, bool) {
	p := byte(o >> prefixShift)
	return p, p != 0
}

// Code returns the opcode value after the prefix (or the single byte).
func (o Opcode) Code() uint32 { return uint32(o & 0xffffffff) }

// ImmKind names the immediate shape following an opcode.
type ImmKind int

const (
	ImmNone ImmKind = iota
	ImmBlockType
	ImmIndex
	ImmBrTable
	ImmCallIndirect
	ImmBrOnExn
	ImmMemArg
	ImmReserved
	ImmCopy
	ImmInit
	ImmS32
	ImmS64
	ImmF32
	ImmF64
	ImmV128
	ImmShuffle
	ImmSimdLane
	ImmSelectTypes
	// ImmRefType is reserved for proposals that attach a reference type to
	// an instruction; no opcode in the current tables uses it.
	ImmRefType
)

// OpcodeInfo is one row of the opcode table: display name, gating feature,
// immediate shape, and natural alignment in bytes (0 for non-memory ops).
type OpcodeInfo struct {
	Name     string
	Feature  Feature
	Imm      ImmKind
	NatAlign uint32
}

// Info returns the table row for o, if it exists at all.
func (o Opcode) Info() (OpcodeInfo, bool) {
	info, ok := opcodeInfo[o]
	return info, ok
}

// Known reports whether o exists and its gating feature is enabled.
func (o Opcode) Known(features Features) bool {
	info, ok := opcodeInfo[o]
	return ok && features.Has(info.Feature)
}

// NaturalAlignment returns the operand-size alignment in bytes for
// memory-access opcodes, 0 otherwise.
func (o Opcode) NaturalAlignment() uint32 {
	return opcodeInfo[o].NatAlign
}

func (o Opcode) String() string {
	if info, ok := opcodeInfo[o]; ok {
		return info.Name
	}
	if p, ok := o.Prefix(); ok {
		return fmt.Sprintf("opcode(%d %d)", p, o.Code())
	}
	return fmt.Sprintf("opcode(%d)", o.Code())
}
