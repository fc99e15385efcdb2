// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// varU decodes an unsigned LEB128 value of the given bit width, consuming at
// most ceil(bits/7) bytes. On the final allowed byte the bits beyond the
// width must be zero; overlong encodings are rejected.
func (c *Cursor) varU(bits uint, typeName string) (wasm.At[uint64], bool) {
	start := c.Pos()
	maxBytes := int((bits + 6) / 7)
	var result uint64
	shift := uint(0)
	for i := 0; i < maxBytes; i++ {
		at, ok := c.readU8()
		if !ok {
			return wasm.At[uint64]{}, false
		}
		b := at.Value
		if i == maxBytes-1 {
			rem := bits - shift
			if rem < 8 {
				mask := byte(1)<<rem - 1
				if expected := b & mask; b != expected {
					c.errs.Reportf(at.Span.Start,
						"Last byte of %s must be zero extension: expected %#x, got %#x",
						typeName, expected, b)
					return wasm.At[uint64]{}, false
				}
			}
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return wasm.MakeAt(c.span(start), result), true
		}
		shift += 7
	}
	return wasm.MakeAt(c.span(start), result), true
}

// varS decodes a signed LEB128 value of the given bit width. The final
// allowed byte's high bits must all match the sign bit.
func (c *Cursor) varS(bits uint, typeName string) (wasm.At[int64], bool) {
	start := c.Pos()
	maxBytes := int((bits + 6) / 7)
	var result int64
	shift := uint(0)
	for i := 0; i < maxBytes; i++ {
		at, ok := c.readU8()
		if !ok {
			return wasm.At[int64]{}, false
		}
		b := at.Value
		if i == maxBytes-1 {
			rem := bits - shift
			if rem < 8 {
				maskLow := byte(1)<<(rem-1) - 1
				expectedPos := b & maskLow
				expectedNeg := expectedPos | (0x7f &^ maskLow)
				if b != expectedPos && b != expectedNeg {
					c.errs.Reportf(at.Span.Start,
						"Last byte of %s must be sign extension: expected %#x or %#x, got %#x",
						typeName, expectedPos, expectedNeg, b)
					return wasm.At[int64]{}, false
				}
			}
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			return wasm.MakeAt(c.span(start), result), true
		}
	}
	return wasm.MakeAt(c.span(start), result), true
}

func (c *Cursor) varU32(typeName string) (wasm.At[uint32], bool) {
	at, ok := c.varU(32, typeName)
	if !ok {
		return wasm.At[uint32]{}, false
	}
	return wasm.MakeAt(at.Span, uint32(at.Value)), true
}

// ReadU32 reads an unsigned LEB128 u32 with its own context label.
func ReadU32(c *Cursor) (wasm.At[uint32], bool) {
	c.pushContext("u32")
	defer c.popContext()
	return c.varU32("u32")
}

// ReadS32 reads a signed LEB128 s32.
func ReadS32(c *Cursor) (wasm.At[int32], bool) {
	c.pushContext("s32")
	defer c.popContext()
	at, ok := c.varS(32, "s32")
	if !ok {
		return wasm.At[int32]{}, false
	}
	return wasm.MakeAt(at.Span, int32(at.Value)), true
}

// ReadS64 reads a signed LEB128 s64.
func ReadS64(c *Cursor) (wasm.At[int64], bool) {
	c.pushContext("s64")
	defer c.popContext()
	return c.varS(64, "s64")
}

// readIndex reads a u32 index under the given field label.
func (c *Cursor) readIndex(label string) (wasm.At[wasm.Index], bool) {
	c.pushContext(label)
	defer c.popContext()
	return c.varU32("u32")
}

// readCount reads a u32 element count and checks it against the bytes left
// in the window (every element occupies at least one byte).
func (c *Cursor) readCount() (wasm.At[uint32], bool) {
	c.pushContext("count")
	count, ok := c.varU32("u32")
	c.popContext()
	if !ok {
		return wasm.At[uint32]{}, false
	}
	if int64(count.Value) > int64(c.Remaining()) {
		c.failf("Count extends past end: %d > %d", count.Value, c.Remaining())
		return wasm.At[uint32]{}, false
	}
	return count, true
}

// readLength reads a u32 byte length under a "length" label. The bounds
// check happens when the caller borrows the sub-window.
func (c *Cursor) readLength() (wasm.At[uint32], bool) {
	c.pushContext("length")
	defer c.popContext()
	return c.varU32("u32")
}
