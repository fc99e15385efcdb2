// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// ReadValueType decodes a single value-type byte, honoring feature gates.
func ReadValueType(c *Cursor, f wasm.Features) (wasm.At[wasm.ValueType], bool) {
	c.pushContext("value type")
	defer c.popContext()
	at, ok := c.readU8()
	if !ok {
		return wasm.At[wasm.ValueType]{}, false
	}
	vt := wasm.ValueType(at.Value)
	if feature, known := wasm.ValueTypeFeature(vt); !known || !f.Has(feature) {
		c.failf("Unknown value type: %d", at.Value)
		return wasm.At[wasm.ValueType]{}, false
	}
	return wasm.MakeAt(at.Span, vt), true
}

// ReadElementType decodes a reference type in element-type position. Funcref
// is always allowed; the rest follow their proposals.
func ReadElementType(c *Cursor, f wasm.Features) (wasm.At[wasm.ReferenceType], bool) {
	c.pushContext("element type")
	defer c.popContext()
	at, ok := c.readU8()
	if !ok {
		return wasm.At[wasm.ReferenceType]{}, false
	}
	rt := wasm.ReferenceType(at.Value)
	if !elementTypeAllowed(rt, f) {
		c.failf("Unknown element type: %d", at.Value)
		return wasm.At[wasm.ReferenceType]{}, false
	}
	return wasm.MakeAt(at.Span, rt), true
}

func elementTypeAllowed(rt wasm.ReferenceType, f wasm.Features) bool {
	switch rt {
	case wasm.Funcref:
		return true
	case wasm.Anyref, wasm.Nullref:
		return f.ReferenceTypes
	case wasm.Exnref:
		return f.Exceptions
	}
	return false
}

// ReadExternalKind decodes an import/export kind byte.
func ReadExternalKind(c *Cursor, f wasm.Features) (wasm.At[wasm.ExternalKind], bool) {
	c.pushContext("external kind")
	defer c.popContext()
	at, ok := c.readU8()
	if !ok {
		return wasm.At[wasm.ExternalKind]{}, false
	}
	kind := wasm.ExternalKind(at.Value)
	switch kind {
	case wasm.ExternalFunction, wasm.ExternalTable, wasm.ExternalMemory, wasm.ExternalGlobal:
	case wasm.ExternalEvent:
		if !f.Exceptions {
			c.failf("Unknown external kind: %d", at.Value)
			return wasm.At[wasm.ExternalKind]{}, false
		}
	default:
		c.failf("Unknown external kind: %d", at.Value)
		return wasm.At[wasm.ExternalKind]{}, false
	}
	return wasm.MakeAt(at.Span, kind), true
}

// ReadMutability decodes a global mutability byte.
func ReadMutability(c *Cursor) (wasm.At[wasm.Mutability], bool) {
	c.pushContext("mutability")
	defer c.popContext()
	at, ok := c.readU8()
	if !ok {
		return wasm.At[wasm.Mutability]{}, false
	}
	m := wasm.Mutability(at.Value)
	if m != wasm.Const && m != wasm.Var {
		c.failf("Unknown mutability: %d", at.Value)
		return wasm.At[wasm.Mutability]{}, false
	}
	return wasm.MakeAt(at.Span, m), true
}

// ReadBlockType decodes a block type. Without multi-value only the
// single-byte forms exist; with multi-value the value is a signed LEB whose
// non-negative values are function-type indexes.
func ReadBlockType(c *Cursor, f wasm.Features) (wasm.At[wasm.BlockType], bool) {
	c.pushContext("block type")
	defer c.popContext()
	start := c.Pos()

	if f.MultiValue {
		at, ok := c.varS(33, "s33")
		if !ok {
			return wasm.At[wasm.BlockType]{}, false
		}
		v := at.Value
		if v >= 0 {
			return wasm.MakeAt(at.Span, wasm.IndexBlockType(uint32(v))), true
		}
		bt, ok := blockTypeFromByte(byte(v&0x7f), f)
		if !ok {
			c.failf("Unknown block type: %d", v)
			return wasm.At[wasm.BlockType]{}, false
		}
		return wasm.MakeAt(at.Span, bt), true
	}

	at, ok := c.readU8()
	if !ok {
		return wasm.At[wasm.BlockType]{}, false
	}
	bt, ok := blockTypeFromByte(at.Value, f)
	if !ok {
		c.failf("Unknown block type: %d", at.Value)
		return wasm.At[wasm.BlockType]{}, false
	}
	return wasm.MakeAt(c.span(start), bt), true
}

func blockTypeFromByte(b byte, f wasm.Features) (wasm.BlockType, bool) {
	if b == 0x40 {
		return wasm.VoidBlockType(), true
	}
	vt := wasm.ValueType(b)
	if feature, known := wasm.ValueTypeFeature(vt); known && f.Has(feature) {
		return wasm.ValueBlockType(vt), true
	}
	return wasm.BlockType{}, false
}

// ReadLimits decodes a limits structure: flags byte, min, optional max.
// Flag bit 0 is has-max, bit 1 is shared (threads, requires has-max).
func ReadLimits(c *Cursor, f wasm.Features) (wasm.At[wasm.Limits], bool) {
	c.pushContext("limits")
	defer c.popContext()
	start := c.Pos()

	c.pushContext("flags")
	flagsAt, ok := c.readU8()
	c.popContext()
	if !ok {
		return wasm.At[wasm.Limits]{}, false
	}
	flags := flagsAt.Value
	hasMax := flags&1 != 0
	shared := flags&2 != 0
	valid := flags == 0 || flags == 1 || (flags == 3 && f.Threads)
	if !valid {
		c.failf("Unknown flags value: %d", flags)
		return wasm.At[wasm.Limits]{}, false
	}

	min, ok := readU32Field(c, "min")
	if !ok {
		return wasm.At[wasm.Limits]{}, false
	}
	limits := wasm.Limits{Min: min.Value, Shared: shared}
	if hasMax {
		max, ok := readU32Field(c, "max")
		if !ok {
			return wasm.At[wasm.Limits]{}, false
		}
		limits.Max = max.Value
		limits.HasMax = true
	}
	return wasm.MakeAt(c.span(start), limits), true
}

// readU32Field reads a u32 nested under a field label.
func readU32Field(c *Cursor, label string) (wasm.At[uint32], bool) {
	c.pushContext(label)
	defer c.popContext()
	return ReadU32(c)
}

// ReadTableType decodes element type plus limits.
func ReadTableType(c *Cursor, f wasm.Features) (wasm.At[wasm.TableType], bool) {
	c.pushContext("table type")
	defer c.popContext()
	start := c.Pos()
	elemType, ok := ReadElementType(c, f)
	if !ok {
		return wasm.At[wasm.TableType]{}, false
	}
	limits, ok := ReadLimits(c, f)
	if !ok {
		return wasm.At[wasm.TableType]{}, false
	}
	return wasm.MakeAt(c.span(start), wasm.TableType{Limits: limits.Value, ElemType: elemType.Value}), true
}

// ReadMemoryType decodes limits.
func ReadMemoryType(c *Cursor, f wasm.Features) (wasm.At[wasm.MemoryType], bool) {
	c.pushContext("memory type")
	defer c.popContext()
	start := c.Pos()
	limits, ok := ReadLimits(c, f)
	if !ok {
		return wasm.At[wasm.MemoryType]{}, false
	}
	return wasm.MakeAt(c.span(start), wasm.MemoryType{Limits: limits.Value}), true
}

// ReadGlobalType decodes value type plus mutability.
func ReadGlobalType(c *Cursor, f wasm.Features) (wasm.At[wasm.GlobalType], bool) {
	c.pushContext("global type")
	defer c.popContext()
	start := c.Pos()
	vt, ok := ReadValueType(c, f)
	if !ok {
		return wasm.At[wasm.GlobalType]{}, false
	}
	mut, ok := ReadMutability(c)
	if !ok {
		return wasm.At[wasm.GlobalType]{}, false
	}
	return wasm.MakeAt(c.span(start), wasm.GlobalType{ValType: vt.Value, Mut: mut.Value}), true
}

// ReadEventType decodes an event attribute plus its function-type index.
func ReadEventType(c *Cursor, f wasm.Features) (wasm.At[wasm.EventType], bool) {
	c.pushContext("event type")
	defer c.popContext()
	start := c.Pos()
	attr, ok := readU32Field(c, "attribute")
	if !ok {
		return wasm.At[wasm.EventType]{}, false
	}
	typeIndex, ok := c.readIndex("type index")
	if !ok {
		return wasm.At[wasm.EventType]{}, false
	}
	et := wasm.EventType{Attribute: wasm.EventAttribute(attr.Value), TypeIndex: typeIndex.Value}
	return wasm.MakeAt(c.span(start), et), true
}

// readValueTypeVector reads a count-prefixed vector of value types under the
// given label.
func readValueTypeVector(c *Cursor, f wasm.Features, label string) ([]wasm.At[wasm.ValueType], bool) {
	c.pushContext(label)
	defer c.popContext()
	count, ok := c.readCount()
	if !ok {
		return nil, false
	}
	out := make([]wasm.At[wasm.ValueType], 0, count.Value)
	for i := uint32(0); i < count.Value; i++ {
		vt, ok := ReadValueType(c, f)
		if !ok {
			return nil, false
		}
		out = append(out, vt)
	}
	return out, true
}

// ReadFunctionType decodes the param/result vectors (not the 0x60 form
// byte, which belongs to the type-section entry).
func ReadFunctionType(c *Cursor, f wasm.Features) (wasm.At[wasm.FunctionType], bool) {
	c.pushContext("function type")
	defer c.popContext()
	start := c.Pos()
	params, ok := readValueTypeVector(c, f, "param types")
	if !ok {
		return wasm.At[wasm.FunctionType]{}, false
	}
	results, ok := readValueTypeVector(c, f, "result types")
	if !ok {
		return wasm.At[wasm.FunctionType]{}, false
	}
	ft := wasm.FunctionType{Params: valueList(params), Results: valueList(results)}
	return wasm.MakeAt(c.span(start), ft), true
}

func valueList(ats []wasm.At[wasm.ValueType]) []wasm.ValueType {
	out := make([]wasm.ValueType, len(ats))
	for i, at := range ats {
		out[i] = at.Value
	}
	return out
}

// readString reads a length-prefixed name under the given field label.
func readString(c *Cursor, label string) (wasm.At[string], bool) {
	c.pushContext(label)
	defer c.popContext()
	start := c.Pos()
	length, ok := c.readLength()
	if !ok {
		return wasm.At[string]{}, false
	}
	sub, ok := c.sub(int(length.Value))
	if !ok {
		return wasm.At[string]{}, false
	}
	return wasm.MakeAt(c.span(start), string(sub.data[sub.pos:sub.end])), true
}

// ReadImport decodes module name, field name, kind, and the matching
// description.
func ReadImport(c *Cursor, f wasm.Features) (wasm.At[wasm.Import], bool) {
	c.pushContext("import")
	defer c.popContext()
	start := c.Pos()

	module, ok := readString(c, "module name")
	if !ok {
		return wasm.At[wasm.Import]{}, false
	}
	name, ok := readString(c, "field name")
	if !ok {
		return wasm.At[wasm.Import]{}, false
	}
	kind, ok := ReadExternalKind(c, f)
	if !ok {
		return wasm.At[wasm.Import]{}, false
	}

	im := wasm.Import{Module: module.Value, Name: name.Value, Kind: kind.Value}
	switch kind.Value {
	case wasm.ExternalFunction:
		index, ok := c.readIndex("function index")
		if !ok {
			return wasm.At[wasm.Import]{}, false
		}
		im.Func = index.Value
	case wasm.ExternalTable:
		tt, ok := ReadTableType(c, f)
		if !ok {
			return wasm.At[wasm.Import]{}, false
		}
		im.Table = tt.Value
	case wasm.ExternalMemory:
		mt, ok := ReadMemoryType(c, f)
		if !ok {
			return wasm.At[wasm.Import]{}, false
		}
		im.Memory = mt.Value
	case wasm.ExternalGlobal:
		gt, ok := ReadGlobalType(c, f)
		if !ok {
			return wasm.At[wasm.Import]{}, false
		}
		im.Global = gt.Value
	case wasm.ExternalEvent:
		et, ok := ReadEventType(c, f)
		if !ok {
			return wasm.At[wasm.Import]{}, false
		}
		im.Event = et.Value
	}
	return wasm.MakeAt(c.span(start), im), true
}

// ReadExport decodes name, kind, index.
func ReadExport(c *Cursor, f wasm.Features) (wasm.At[wasm.Export], bool) {
	c.pushContext("export")
	defer c.popContext()
	start := c.Pos()
	name, ok := readString(c, "name")
	if !ok {
		return wasm.At[wasm.Export]{}, false
	}
	kind, ok := ReadExternalKind(c, f)
	if !ok {
		return wasm.At[wasm.Export]{}, false
	}
	index, ok := c.readIndex("index")
	if !ok {
		return wasm.At[wasm.Export]{}, false
	}
	e := wasm.Export{Name: name.Value, Kind: kind.Value, Index: index.Value}
	return wasm.MakeAt(c.span(start), e), true
}
