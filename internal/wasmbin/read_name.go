// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// ReadNameSubsectionID decodes a subsection id byte of the "name" custom
// section.
func ReadNameSubsectionID(c *Cursor) (wasm.At[wasm.NameSubsectionID], bool) {
	c.pushContext("name subsection id")
	defer c.popContext()
	at, ok := c.readU8()
	if !ok {
		return wasm.At[wasm.NameSubsectionID]{}, false
	}
	id := wasm.NameSubsectionID(at.Value)
	switch id {
	case wasm.NameModule, wasm.NameFunction, wasm.NameLocal:
	default:
		c.failf("Unknown name subsection id: %d", at.Value)
		return wasm.At[wasm.NameSubsectionID]{}, false
	}
	return wasm.MakeAt(at.Span, id), true
}

// ReadNameSubsection reads the framed form: id, length, raw payload.
func ReadNameSubsection(c *Cursor) (wasm.At[wasm.NameSubsection], bool) {
	c.pushContext("name subsection")
	defer c.popContext()
	start := c.Pos()

	id, ok := ReadNameSubsectionID(c)
	if !ok {
		return wasm.At[wasm.NameSubsection]{}, false
	}
	length, ok := c.readLength()
	if !ok {
		return wasm.At[wasm.NameSubsection]{}, false
	}
	payload, ok := c.sub(int(length.Value))
	if !ok {
		return wasm.At[wasm.NameSubsection]{}, false
	}
	sub := wasm.NameSubsection{ID: id.Value, Data: payload.window(), Offset: payload.Pos()}
	return wasm.MakeAt(c.span(start), sub), true
}

// NameSectionSeq lazily yields the subsections of a "name" custom section.
type NameSectionSeq struct {
	cur  Cursor
	done bool
}

// ReadNameSection wraps the custom section's payload.
func ReadNameSection(custom wasm.CustomSection, errs *ErrorList) *NameSectionSeq {
	return &NameSectionSeq{cur: NewCursorAt(custom.Data, custom.Offset, errs)}
}

// Next returns the next subsection.
func (s *NameSectionSeq) Next() (wasm.At[wasm.NameSubsection], bool) {
	if s.done || s.cur.Remaining() == 0 {
		return wasm.At[wasm.NameSubsection]{}, false
	}
	at, ok := ReadNameSubsection(&s.cur)
	if !ok {
		s.done = true
		return wasm.At[wasm.NameSubsection]{}, false
	}
	return at, true
}

// ReadNameAssoc reads one (index, name) pair.
func ReadNameAssoc(c *Cursor) (wasm.At[wasm.NameAssoc], bool) {
	c.pushContext("name assoc")
	defer c.popContext()
	start := c.Pos()
	index, ok := c.readIndex("index")
	if !ok {
		return wasm.At[wasm.NameAssoc]{}, false
	}
	name, ok := readString(c, "name")
	if !ok {
		return wasm.At[wasm.NameAssoc]{}, false
	}
	na := wasm.NameAssoc{Index: index.Value, Name: name.Value}
	return wasm.MakeAt(c.span(start), na), true
}

// readNameMap reads a vector of (index, name) pairs. Sort order and
// uniqueness are not enforced.
func readNameMap(c *Cursor) (wasm.NameMap, bool) {
	c.pushContext("name map")
	defer c.popContext()
	count, ok := c.readCount()
	if !ok {
		return nil, false
	}
	out := make(wasm.NameMap, 0, count.Value)
	for i := uint32(0); i < count.Value; i++ {
		na, ok := ReadNameAssoc(c)
		if !ok {
			return nil, false
		}
		out = append(out, na)
	}
	return out, true
}

// ReadIndirectNameAssoc reads a (function index, name map) pair from the
// local-names subsection.
func ReadIndirectNameAssoc(c *Cursor) (wasm.At[wasm.IndirectNameAssoc], bool) {
	c.pushContext("indirect name assoc")
	defer c.popContext()
	start := c.Pos()
	index, ok := c.readIndex("index")
	if !ok {
		return wasm.At[wasm.IndirectNameAssoc]{}, false
	}
	nm, ok := readNameMap(c)
	if !ok {
		return wasm.At[wasm.IndirectNameAssoc]{}, false
	}
	ina := wasm.IndirectNameAssoc{Index: index.Value, NameMap: nm}
	return wasm.MakeAt(c.span(start), ina), true
}

// ReadModuleNameSubsection parses the payload of a ModuleName subsection.
func ReadModuleNameSubsection(sub wasm.NameSubsection, errs *ErrorList) (wasm.At[string], bool) {
	c := NewCursorAt(sub.Data, sub.Offset, errs)
	return readString(&c, "name")
}

// ReadFunctionNamesSubsection parses the payload of a FunctionNames
// subsection into a NameMap.
func ReadFunctionNamesSubsection(sub wasm.NameSubsection, errs *ErrorList) (wasm.NameMap, bool) {
	c := NewCursorAt(sub.Data, sub.Offset, errs)
	return readNameMap(&c)
}

// ReadLocalNamesSubsection parses the payload of a LocalNames subsection.
func ReadLocalNamesSubsection(sub wasm.NameSubsection, errs *ErrorList) ([]wasm.At[wasm.IndirectNameAssoc], bool) {
	c := NewCursorAt(sub.Data, sub.Offset, errs)
	count, ok := c.readCount()
	if !ok {
		return nil, false
	}
	out := make([]wasm.At[wasm.IndirectNameAssoc], 0, count.Value)
	for i := uint32(0); i < count.Value; i++ {
		ina, ok := ReadIndirectNameAssoc(&c)
		if !ok {
			return nil, false
		}
		out = append(out, ina)
	}
	return out, true
}
