// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// readSegmentFlags reads the segment flag byte under a "flags" label. The
// MVP grammar has no flag byte for element segments; callers gate on
// bulk-memory / reference-types before calling this.
func readSegmentFlags(c *Cursor) (wasm.At[byte], bool) {
	c.pushContext("flags")
	defer c.popContext()
	return c.readU8()
}

// readIndexList reads a count-prefixed vector of indexes.
func readIndexList(c *Cursor, label string) ([]wasm.At[wasm.Index], bool) {
	c.pushContext(label)
	defer c.popContext()
	count, ok := c.readCount()
	if !ok {
		return nil, false
	}
	out := make([]wasm.At[wasm.Index], 0, count.Value)
	for i := uint32(0); i < count.Value; i++ {
		index, ok := c.readIndex("index")
		if !ok {
			return nil, false
		}
		out = append(out, index)
	}
	return out, true
}

// readElementExpressionList reads a count-prefixed vector of element
// expressions.
func readElementExpressionList(c *Cursor, f wasm.Features) ([]wasm.ElementExpression, bool) {
	c.pushContext("initializers")
	defer c.popContext()
	count, ok := c.readCount()
	if !ok {
		return nil, false
	}
	out := make([]wasm.ElementExpression, 0, count.Value)
	for i := uint32(0); i < count.Value; i++ {
		expr, ok := ReadElementExpression(c, f)
		if !ok {
			return nil, false
		}
		out = append(out, expr.Value)
	}
	return out, true
}

// readOffsetExpression reads an active segment's offset under an "offset"
// label.
func readOffsetExpression(c *Cursor, f wasm.Features) (wasm.At[wasm.ConstantExpression], bool) {
	c.pushContext("offset")
	defer c.popContext()
	return ReadConstantExpression(c, f)
}

// ReadElementSegment decodes an element segment. Without bulk-memory or
// reference-types only the MVP shape (flag 0) exists and no flag byte is
// read. With them, the 3-bit flag selects among the eight shapes; other
// values are rejected.
func ReadElementSegment(c *Cursor, f wasm.Features) (wasm.At[wasm.ElementSegment], bool) {
	c.pushContext("element segment")
	defer c.popContext()
	start := c.Pos()

	if !f.BulkMemory && !f.ReferenceTypes {
		tableIndex, ok := c.readIndex("table index")
		if !ok {
			return wasm.At[wasm.ElementSegment]{}, false
		}
		offset, ok := readOffsetExpression(c, f)
		if !ok {
			return wasm.At[wasm.ElementSegment]{}, false
		}
		indexes, ok := readIndexList(c, "initializers")
		if !ok {
			return wasm.At[wasm.ElementSegment]{}, false
		}
		seg := wasm.ElementSegment{
			Kind:       wasm.SegmentActive,
			TableIndex: tableIndex.Value,
			Offset:     offset.Value,
			Elements: wasm.ElementList{
				Kind:    wasm.ExternalFunction,
				Indexes: indexes,
			},
		}
		return wasm.MakeAt(c.span(start), seg), true
	}

	flags, ok := readSegmentFlags(c)
	if !ok {
		return wasm.At[wasm.ElementSegment]{}, false
	}
	if flags.Value > 7 {
		c.failf("Unknown flags: %d", flags.Value)
		return wasm.At[wasm.ElementSegment]{}, false
	}

	seg := wasm.ElementSegment{}
	switch flags.Value & 3 {
	case 0, 2:
		seg.Kind = wasm.SegmentActive
	case 1:
		seg.Kind = wasm.SegmentPassive
	case 3:
		seg.Kind = wasm.SegmentDeclared
	}
	active := flags.Value&1 == 0
	explicitTable := flags.Value&3 == 2
	hasExprs := flags.Value&4 != 0

	if active {
		if explicitTable {
			tableIndex, ok := c.readIndex("table index")
			if !ok {
				return wasm.At[wasm.ElementSegment]{}, false
			}
			seg.TableIndex = tableIndex.Value
		}
		offset, ok := readOffsetExpression(c, f)
		if !ok {
			return wasm.At[wasm.ElementSegment]{}, false
		}
		seg.Offset = offset.Value
	}

	if hasExprs {
		seg.Elements.HasExpressions = true
		if active && !explicitTable {
			// Flag 4 carries no element-type byte; funcref is implied.
			seg.Elements.Type = wasm.Funcref
		} else {
			elemType, ok := ReadElementType(c, f)
			if !ok {
				return wasm.At[wasm.ElementSegment]{}, false
			}
			seg.Elements.Type = elemType.Value
		}
		exprs, ok := readElementExpressionList(c, f)
		if !ok {
			return wasm.At[wasm.ElementSegment]{}, false
		}
		seg.Elements.Expressions = exprs
	} else {
		if active && !explicitTable {
			// Flag 0 carries no external-kind byte; function is implied.
			seg.Elements.Kind = wasm.ExternalFunction
		} else {
			kind, ok := ReadExternalKind(c, f)
			if !ok {
				return wasm.At[wasm.ElementSegment]{}, false
			}
			seg.Elements.Kind = kind.Value
		}
		indexes, ok := readIndexList(c, "initializers")
		if !ok {
			return wasm.At[wasm.ElementSegment]{}, false
		}
		seg.Elements.Indexes = indexes
	}

	return wasm.MakeAt(c.span(start), seg), true
}

// ReadDataSegment decodes a data segment. Without bulk-memory only the MVP
// shape exists (memory index, offset, init bytes). With it, the flag byte
// selects active / passive / active-with-memory-index.
func ReadDataSegment(c *Cursor, f wasm.Features) (wasm.At[wasm.DataSegment], bool) {
	c.pushContext("data segment")
	defer c.popContext()
	start := c.Pos()

	if !f.BulkMemory {
		memoryIndex, ok := c.readIndex("memory index")
		if !ok {
			return wasm.At[wasm.DataSegment]{}, false
		}
		offset, ok := readOffsetExpression(c, f)
		if !ok {
			return wasm.At[wasm.DataSegment]{}, false
		}
		init, ok := readDataInit(c)
		if !ok {
			return wasm.At[wasm.DataSegment]{}, false
		}
		seg := wasm.DataSegment{
			Kind:        wasm.SegmentActive,
			MemoryIndex: memoryIndex.Value,
			Offset:      offset.Value,
			Init:        init,
		}
		return wasm.MakeAt(c.span(start), seg), true
	}

	flags, ok := readSegmentFlags(c)
	if !ok {
		return wasm.At[wasm.DataSegment]{}, false
	}

	seg := wasm.DataSegment{}
	switch flags.Value {
	case 0:
		seg.Kind = wasm.SegmentActive
	case 1:
		seg.Kind = wasm.SegmentPassive
	case 2:
		seg.Kind = wasm.SegmentActive
		memoryIndex, ok := c.readIndex("memory index")
		if !ok {
			return wasm.At[wasm.DataSegment]{}, false
		}
		seg.MemoryIndex = memoryIndex.Value
	default:
		c.failf("Unknown flags: %d", flags.Value)
		return wasm.At[wasm.DataSegment]{}, false
	}

	if seg.Kind == wasm.SegmentActive {
		offset, ok := readOffsetExpression(c, f)
		if !ok {
			return wasm.At[wasm.DataSegment]{}, false
		}
		seg.Offset = offset.Value
	}

	init, ok := readDataInit(c)
	if !ok {
		return wasm.At[wasm.DataSegment]{}, false
	}
	seg.Init = init
	return wasm.MakeAt(c.span(start), seg), true
}

// readDataInit reads the length-prefixed init bytes of a data segment.
func readDataInit(c *Cursor) ([]byte, bool) {
	length, ok := c.readLength()
	if !ok {
		return nil, false
	}
	sub, ok := c.sub(int(length.Value))
	if !ok {
		return nil, false
	}
	return sub.window(), true
}
