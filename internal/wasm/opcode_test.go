// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpcodePacking(t *testing.T) {
	prefix, ok := OpNop.Prefix()
	require.False(t, ok)
	require.Equal(t, uint32(0x01), OpNop.Code())
	_ = prefix

	prefix, ok = OpMemoryInit.Prefix()
	require.True(t, ok)
	require.Equal(t, PrefixMisc, prefix)
	require.Equal(t, uint32(8), OpMemoryInit.Code())

	prefix, ok = OpV8X16Shuffle.Prefix()
	require.True(t, ok)
	require.Equal(t, PrefixSIMD, prefix)
	require.Equal(t, uint32(0xc1), OpV8X16Shuffle.Code())

	require.Equal(t, OpMemoryInit, PrefixedOpcode(PrefixMisc, 8))
}

func TestOpcodeGating(t *testing.T) {
	require.True(t, OpNop.Known(MVP()))
	require.False(t, OpRefNull.Known(MVP()))
	require.True(t, OpRefNull.Known(Features{ReferenceTypes: true}))
	require.False(t, OpI32TruncSatF32S.Known(MVP()))
	require.True(t, OpI32TruncSatF32S.Known(Features{SaturatingFloatToInt: true}))
	require.False(t, OpV128Load.Known(Features{Threads: true}))
	require.True(t, OpV128Load.Known(Features{SIMD: true}))
	require.False(t, Opcode(0x27).Known(AllFeatures()))
	require.False(t, PrefixedOpcode(PrefixMisc, 18).Known(AllFeatures()))
}

func TestOpcodeNames(t *testing.T) {
	require.Equal(t, "i32.const", OpI32Const.String())
	require.Equal(t, "select", OpSelect.String())
	require.Equal(t, "select", OpSelectT.String())
	require.Equal(t, "memory.init", OpMemoryInit.String())
	require.Equal(t, "i8x16.add_saturate_s", OpI8X16AddSaturateS.String())
	require.Equal(t, "i64.atomic.rmw32.cmpxchg_u", OpI64AtomicRmw32CmpxchgU.String())
	require.Equal(t, "opcode(253 999)", PrefixedOpcode(PrefixSIMD, 999).String())
}

// Natural alignment drives the text converter's defaulting; spot check the
// table across operand widths.
func TestNaturalAlignment(t *testing.T) {
	cases := map[Opcode]uint32{
		OpI32Load8S:          1,
		OpI32Load16U:         2,
		OpI32Load:            4,
		OpF32Load:            4,
		OpI64Load:            8,
		OpF64Store:           8,
		OpV128Load:           16,
		OpV8X16LoadSplat:     1,
		OpV64X2LoadSplat:     8,
		OpI16X8Load8X8S:      8,
		OpAtomicNotify:       4,
		OpI64AtomicWait:      8,
		OpI32AtomicRmw8AddU:  1,
		OpI64AtomicRmw32XorU: 4,
		OpNop:                0,
	}
	for op, want := range cases {
		require.Equal(t, want, op.NaturalAlignment(), "%s", op)
	}
}

func TestOpcodeTableShape(t *testing.T) {
	// Every entry has a display name, and every memarg entry carries a
	// natural alignment.
	for op, info := range opcodeInfo {
		require.NotEmpty(t, info.Name, "opcode %#x", uint64(op))
		if info.Imm == ImmMemArg {
			require.NotZero(t, info.NatAlign, "%s", info.Name)
		} else {
			require.Zero(t, info.NatAlign, "%s", info.Name)
		}
	}
}

func TestV128Lanes(t *testing.T) {
	v := V128FromU64x2(0x0807060504030201, 0x100f0e0d0c0b0a09)
	require.Equal(t, [2]uint64{0x0807060504030201, 0x100f0e0d0c0b0a09}, v.U64x2())
	require.Equal(t, byte(1), v.U8x16()[0])
	require.Equal(t, byte(0x10), v.U8x16()[15])
	require.Equal(t, uint16(0x0201), v.U16x8()[0])
	require.Equal(t, uint32(0x04030201), v.U32x4()[0])
}

func TestBlockTypeString(t *testing.T) {
	require.Equal(t, "[]", VoidBlockType().String())
	require.Equal(t, "[i32]", ValueBlockType(I32).String())
	require.Equal(t, "type[3]", IndexBlockType(3).String())
}

func TestFeatureHas(t *testing.T) {
	require.True(t, Features{}.Has(FeatureNone))
	require.False(t, Features{}.Has(FeatureSIMD))
	require.True(t, Features{SIMD: true}.Has(FeatureSIMD))
	all := AllFeatures()
	for _, f := range []Feature{
		FeatureMutableGlobals, FeatureSaturatingFloatToInt, FeatureSignExtension,
		FeatureMultiValue, FeatureReferenceTypes, FeatureBulkMemory,
		FeatureTailCall, FeatureSIMD, FeatureThreads, FeatureExceptions,
	} {
		require.True(t, all.Has(f))
	}
}
