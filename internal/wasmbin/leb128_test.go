// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadU32(t *testing.T) {
	cases := []struct {
		data []byte
		want uint32
	}{
		{[]byte{0x20}, 32},
		{[]byte{0xc0, 0x03}, 448},
		{[]byte{0xd0, 0x84, 0x02}, 33360},
		{[]byte{0xa0, 0xb0, 0xc0, 0x30}, 101718048},
		{[]byte{0xf0, 0xf0, 0xf0, 0xf0, 0x03}, 1042036848},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xffffffff},
	}
	for _, tc := range cases {
		c, errs := cursorFor(tc.data)
		got, ok := ReadU32(c)
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, tc.want, got.Value)
		require.Equal(t, len(tc.data), got.Span.End)
	}
}

func TestReadU32_TooLong(t *testing.T) {
	c, errs := cursorFor([]byte{0xf0, 0xf0, 0xf0, 0xf0, 0x12})
	_, ok := ReadU32(c)
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "u32"},
		frame{4, "Last byte of u32 must be zero extension: expected 0x2, got 0x12"})
}

func TestReadU32_PastEnd(t *testing.T) {
	for _, data := range [][]byte{{}, {0xc0}, {0xd0, 0x84}} {
		c, errs := cursorFor(data)
		_, ok := ReadU32(c)
		require.False(t, ok)
		requireError(t, errs,
			frame{0, "u32"},
			frame{len(data), "Unable to read u8"})
	}
}

func TestReadS32(t *testing.T) {
	cases := []struct {
		data []byte
		want int32
	}{
		{[]byte{0x20}, 32},
		{[]byte{0x70}, -16},
		{[]byte{0xc0, 0x03}, 448},
		{[]byte{0xc0, 0x63}, -3648},
		{[]byte{0xd0, 0x84, 0x02}, 33360},
		{[]byte{0xd0, 0x84, 0x52}, -753072},
		{[]byte{0xa0, 0xb0, 0xc0, 0x30}, 101718048},
		{[]byte{0xa0, 0xb0, 0xc0, 0x70}, -32499680},
		{[]byte{0xf0, 0xf0, 0xf0, 0xf0, 0x03}, 1042036848},
		{[]byte{0xf0, 0xf0, 0xf0, 0xf0, 0x7c}, -837011344},
	}
	for _, tc := range cases {
		c, errs := cursorFor(tc.data)
		got, ok := ReadS32(c)
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, tc.want, got.Value)
	}
}

func TestReadS32_TooLong(t *testing.T) {
	c, errs := cursorFor([]byte{0xf0, 0xf0, 0xf0, 0xf0, 0x15})
	_, ok := ReadS32(c)
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "s32"},
		frame{4, "Last byte of s32 must be sign extension: expected 0x5 or 0x7d, got 0x15"})

	c, errs = cursorFor([]byte{0xff, 0xff, 0xff, 0xff, 0x73})
	_, ok = ReadS32(c)
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "s32"},
		frame{4, "Last byte of s32 must be sign extension: expected 0x3 or 0x7b, got 0x73"})
}

func TestReadS64(t *testing.T) {
	cases := []struct {
		data []byte
		want int64
	}{
		{[]byte{0x20}, 32},
		{[]byte{0x70}, -16},
		{[]byte{0xe0, 0xe0, 0xe0, 0xe0, 0x33}, 13893120096},
		{[]byte{0xe0, 0xe0, 0xe0, 0xe0, 0x51}, -12413554592},
		{[]byte{0xd0, 0xd0, 0xd0, 0xd0, 0xd0, 0x2c}, 1533472417872},
		{[]byte{0xfe, 0xed, 0xfe, 0xed, 0xfe, 0xed, 0xfe, 0xed, 0x0e}, 1070725794579330814},
		{[]byte{0xfe, 0xed, 0xfe, 0xed, 0xfe, 0xed, 0xfe, 0xed, 0x4e}, -3540960223848057090},
	}
	for _, tc := range cases {
		c, errs := cursorFor(tc.data)
		got, ok := ReadS64(c)
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, tc.want, got.Value)
	}
}

func TestReadS64_TooLong(t *testing.T) {
	c, errs := cursorFor([]byte{0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0})
	_, ok := ReadS64(c)
	require.False(t, ok)
	requireError(t, errs,
		frame{0, "s64"},
		frame{9, "Last byte of s64 must be sign extension: expected 0x0 or 0x7f, got 0xf0"})
}

func TestReadCount_ExtendsPastEnd(t *testing.T) {
	c, errs := cursorFor([]byte{0x05, 0x00, 0x00, 0x00})
	_, ok := c.readCount()
	require.False(t, ok)
	requireError(t, errs, frame{1, "Count extends past end: 5 > 3"})
}

func TestReadCount_DeclaredThreeOnlyTwoBytes(t *testing.T) {
	c, errs := cursorFor([]byte{0x03, 0x00, 0x00})
	_, ok := c.readCount()
	require.False(t, ok)
	requireError(t, errs, frame{1, "Count extends past end: 3 > 2"})
}

func TestWriterVarU32_Minimal(t *testing.T) {
	cases := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{32, []byte{0x20}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{448, []byte{0xc0, 0x03}},
		{33360, []byte{0xd0, 0x84, 0x02}},
		{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tc := range cases {
		var w Writer
		w.VarU32(tc.value)
		require.Equal(t, tc.want, w.Bytes(), "value %d", tc.value)
	}
}

func TestWriterVarS64_Minimal(t *testing.T) {
	cases := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{32, []byte{0x20}},
		{-16, []byte{0x70}},
		{448, []byte{0xc0, 0x03}},
		{-3648, []byte{0xc0, 0x63}},
		{-753072, []byte{0xd0, 0x84, 0x52}},
	}
	for _, tc := range cases {
		var w Writer
		w.VarS64(tc.value)
		require.Equal(t, tc.want, w.Bytes(), "value %d", tc.value)
	}
}

// Every minimal encoding decodes back to the same value, and re-encodes to
// the same bytes.
func TestLEBRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 63, 64, 127, 128, 0x3fff, 0x4000, 0xffff, 1 << 20, 0xfffffffe, 0xffffffff}
	for _, v := range values {
		var w Writer
		w.VarU32(v)
		c, errs := cursorFor(w.Bytes())
		got, ok := ReadU32(c)
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, v, got.Value)
		require.Equal(t, 0, c.Remaining())
	}

	signed := []int64{0, 1, -1, 63, -64, 64, -65, 1 << 40, -(1 << 40), 1<<63 - 1, -1 << 63}
	for _, v := range signed {
		var w Writer
		w.VarS64(v)
		c, errs := cursorFor(w.Bytes())
		got, ok := ReadS64(c)
		require.True(t, ok)
		requireNoErrors(t, errs)
		require.Equal(t, v, got.Value)
	}
}
