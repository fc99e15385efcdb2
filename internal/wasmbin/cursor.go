// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"encoding/binary"
	"math"

	"github.com/dotandev/wasmkit/internal/wasm"
)

// Cursor is an advance-and-consume view over a window [pos, end) of a byte
// slice. The base offset records where the slice starts relative to the
// original module buffer, so spans and error offsets stay absolute even
// when reading a borrowed section payload. Copying a Cursor yields an
// independent iteration state over the same window.
type Cursor struct {
	data []byte
	pos  int
	end  int
	base int
	errs *ErrorList
}

// NewCursor wraps a whole buffer starting at absolute offset 0.
func NewCursor(data []byte, errs *ErrorList) Cursor {
	return Cursor{data: data, pos: 0, end: len(data), errs: errs}
}

// NewCursorAt wraps a borrowed sub-slice whose first byte sits at the given
// absolute offset of the original buffer.
func NewCursorAt(data []byte, base int, errs *ErrorList) Cursor {
	return Cursor{data: data, pos: 0, end: len(data), base: base, errs: errs}
}

// Pos returns the current absolute offset.
func (c *Cursor) Pos() int { return c.base + c.pos }

// Remaining returns the number of unread bytes in the window.
func (c *Cursor) Remaining() int { return c.end - c.pos }

// Errors returns the sink this cursor reports into.
func (c *Cursor) Errors() *ErrorList { return c.errs }

// span builds a Span from an absolute start offset to the current position.
func (c *Cursor) span(start int) wasm.Span {
	return wasm.Span{Start: start, End: c.Pos()}
}

// window returns the unread bytes of the window without consuming them.
func (c *Cursor) window() []byte {
	return c.data[c.pos:c.end]
}

// pushContext enters a labelled grammar rule at the current offset.
func (c *Cursor) pushContext(label string) {
	c.errs.PushContext(c.Pos(), label)
}

func (c *Cursor) popContext() {
	c.errs.PopContext()
}

// fail reports at the current offset.
func (c *Cursor) fail(message string) {
	c.errs.Report(c.Pos(), message)
}

func (c *Cursor) failf(format string, args ...any) {
	c.errs.Reportf(c.Pos(), format, args...)
}

// peekU8 returns the next byte without consuming it.
func (c *Cursor) peekU8() (byte, bool) {
	if c.pos >= c.end {
		return 0, false
	}
	return c.data[c.pos], true
}

// readU8 consumes one byte, reporting "Unable to read u8" at EOF.
func (c *Cursor) readU8() (wasm.At[byte], bool) {
	if c.pos >= c.end {
		c.fail("Unable to read u8")
		return wasm.At[byte]{}, false
	}
	start := c.Pos()
	b := c.data[c.pos]
	c.pos++
	return wasm.MakeAt(c.span(start), b), true
}

// readBytes consumes n raw bytes.
func (c *Cursor) readBytes(n int) (wasm.At[[]byte], bool) {
	if c.Remaining() < n {
		c.failf("Unable to read %d bytes", n)
		return wasm.At[[]byte]{}, false
	}
	start := c.Pos()
	raw := c.data[c.pos : c.pos+n]
	c.pos += n
	return wasm.MakeAt(c.span(start), raw), true
}

// skip advances past n bytes without interpreting them.
func (c *Cursor) skip(n int) bool {
	if c.Remaining() < n {
		c.failf("Unable to read %d bytes", n)
		return false
	}
	c.pos += n
	return true
}

// sub borrows a bounded sub-window of the given length and advances past
// it. Fails with "Length extends past end: L > R" when the window is
// shorter.
func (c *Cursor) sub(length int) (Cursor, bool) {
	if length > c.Remaining() {
		c.failf("Length extends past end: %d > %d", length, c.Remaining())
		return Cursor{}, false
	}
	out := Cursor{data: c.data, pos: c.pos, end: c.pos + length, base: c.base, errs: c.errs}
	c.pos += length
	return out, true
}

// readF32 reads a little-endian IEEE-754 binary32.
func (c *Cursor) readF32() (wasm.At[float32], bool) {
	raw, ok := c.readBytes(4)
	if !ok {
		return wasm.At[float32]{}, false
	}
	bits := binary.LittleEndian.Uint32(raw.Value)
	return wasm.MakeAt(raw.Span, math.Float32frombits(bits)), true
}

// readF64 reads a little-endian IEEE-754 binary64.
func (c *Cursor) readF64() (wasm.At[float64], bool) {
	raw, ok := c.readBytes(8)
	if !ok {
		return wasm.At[float64]{}, false
	}
	bits := binary.LittleEndian.Uint64(raw.Value)
	return wasm.MakeAt(raw.Span, math.Float64frombits(bits)), true
}
