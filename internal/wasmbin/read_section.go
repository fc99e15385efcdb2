// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"bytes"

	"github.com/dotandev/wasmkit/internal/wasm"
)

// moduleMagic is the 8-byte module header: \0asm followed by version 1.
var moduleMagic = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// ReadSectionID reads a section id (a u32, so overlong encodings are
// tolerated here) and applies the feature gates for ids 12 and 13.
func ReadSectionID(c *Cursor, f wasm.Features) (wasm.At[wasm.SectionID], bool) {
	c.pushContext("section id")
	defer c.popContext()
	at, ok := c.varU32("u32")
	if !ok {
		return wasm.At[wasm.SectionID]{}, false
	}
	id := wasm.SectionID(at.Value)
	if at.Value > uint32(wasm.SectionEvent) || !f.Has(wasm.SectionIDFeature(id)) {
		c.failf("Unknown section id: %d", at.Value)
		return wasm.At[wasm.SectionID]{}, false
	}
	return wasm.MakeAt(at.Span, id), true
}

// ReadSection reads one section: id, length, and the borrowed payload span.
// Custom sections additionally parse their leading name.
func ReadSection(c *Cursor, f wasm.Features) (wasm.At[wasm.Section], bool) {
	c.pushContext("section")
	defer c.popContext()
	start := c.Pos()

	id, ok := ReadSectionID(c, f)
	if !ok {
		return wasm.At[wasm.Section]{}, false
	}
	length, ok := c.readLength()
	if !ok {
		return wasm.At[wasm.Section]{}, false
	}
	payload, ok := c.sub(int(length.Value))
	if !ok {
		return wasm.At[wasm.Section]{}, false
	}

	if id.Value == wasm.SectionCustom {
		name, ok := readString(&payload, "name")
		if !ok {
			return wasm.At[wasm.Section]{}, false
		}
		custom := wasm.CustomSection{
			Name:   name.Value,
			Data:   payload.window(),
			Offset: payload.Pos(),
		}
		return wasm.MakeAt(c.span(start), wasm.Section{Custom: &custom}), true
	}

	known := wasm.KnownSection{
		ID:     id.Value,
		Data:   payload.window(),
		Offset: payload.Pos(),
	}
	return wasm.MakeAt(c.span(start), wasm.Section{Known: &known}), true
}

// SectionSeq is the lazy, restartable sequence of a module's sections. A
// failed section ends iteration (the remaining window cannot be re-framed),
// but errors inside one section's payload do not stop later sections.
type SectionSeq struct {
	f     wasm.Features
	start Cursor
	cur   Cursor
	done  bool
}

// Next returns the next section in file order.
func (s *SectionSeq) Next() (wasm.At[wasm.Section], bool) {
	if s.done || s.cur.Remaining() == 0 {
		return wasm.At[wasm.Section]{}, false
	}
	at, ok := ReadSection(&s.cur, s.f)
	if !ok {
		s.done = true
		return wasm.At[wasm.Section]{}, false
	}
	return at, true
}

// Reset rewinds to the first section.
func (s *SectionSeq) Reset() {
	s.cur = s.start
	s.done = false
}

// ReadModule checks the module header and returns the lazy section
// sequence. The input buffer must outlive every span in the result.
func ReadModule(data []byte, f wasm.Features, errs *ErrorList) (*SectionSeq, bool) {
	c := NewCursor(data, errs)
	header, ok := c.readBytes(len(moduleMagic))
	if !ok {
		return nil, false
	}
	if !bytes.Equal(header.Value, moduleMagic) {
		errs.Reportf(0, "Magic mismatch: expected %#02x, got %#02x", moduleMagic, header.Value)
		return nil, false
	}
	return &SectionSeq{f: f, start: c, cur: c}, true
}

// payloadCursor wraps a known section's payload span back into a cursor
// reporting into errs, keeping the payload's absolute offset.
func payloadCursor(known wasm.KnownSection, errs *ErrorList) Cursor {
	return NewCursorAt(known.Data, known.Offset, errs)
}

// ReadTypeSection parses type entries: the 0x60 form byte then the function
// type.
func ReadTypeSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.TypeEntry], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.TypeEntry], bool) {
		return ReadTypeEntry(c, f)
	})
}

// ReadTypeEntry reads one type-section entry.
func ReadTypeEntry(c *Cursor, f wasm.Features) (wasm.At[wasm.TypeEntry], bool) {
	c.pushContext("type entry")
	defer c.popContext()
	start := c.Pos()

	c.pushContext("form")
	form, formOK := c.readU8()
	if formOK && form.Value != 0x60 {
		c.failf("Unknown type form: %d", form.Value)
		formOK = false
	}
	c.popContext()
	if !formOK {
		return wasm.At[wasm.TypeEntry]{}, false
	}
	ft, ok := ReadFunctionType(c, f)
	if !ok {
		return wasm.At[wasm.TypeEntry]{}, false
	}
	return wasm.MakeAt(c.span(start), wasm.TypeEntry{Type: ft.Value}), true
}

// ReadImportSection parses import entries.
func ReadImportSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Import], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Import], bool) {
		return ReadImport(c, f)
	})
}

// ReadFunctionSection parses type indexes.
func ReadFunctionSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Function], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Function], bool) {
		index, ok := c.readIndex("function index")
		if !ok {
			return wasm.At[wasm.Function]{}, false
		}
		return wasm.MakeAt(index.Span, wasm.Function{TypeIndex: index.Value}), true
	})
}

// ReadTableSection parses table types.
func ReadTableSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Table], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Table], bool) {
		tt, ok := ReadTableType(c, f)
		if !ok {
			return wasm.At[wasm.Table]{}, false
		}
		return wasm.MakeAt(tt.Span, wasm.Table{Type: tt.Value}), true
	})
}

// ReadMemorySection parses memory types.
func ReadMemorySection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Memory], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Memory], bool) {
		mt, ok := ReadMemoryType(c, f)
		if !ok {
			return wasm.At[wasm.Memory]{}, false
		}
		return wasm.MakeAt(mt.Span, wasm.Memory{Type: mt.Value}), true
	})
}

// ReadGlobalSection parses globals: type plus init expression.
func ReadGlobalSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Global], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Global], bool) {
		return ReadGlobal(c, f)
	})
}

// ReadGlobal reads one global entry.
func ReadGlobal(c *Cursor, f wasm.Features) (wasm.At[wasm.Global], bool) {
	c.pushContext("global")
	defer c.popContext()
	start := c.Pos()
	gt, ok := ReadGlobalType(c, f)
	if !ok {
		return wasm.At[wasm.Global]{}, false
	}
	c.pushContext("init")
	init, ok := ReadConstantExpression(c, f)
	c.popContext()
	if !ok {
		return wasm.At[wasm.Global]{}, false
	}
	g := wasm.Global{Type: gt.Value, Init: init.Value}
	return wasm.MakeAt(c.span(start), g), true
}

// ReadExportSection parses export entries.
func ReadExportSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Export], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Export], bool) {
		return ReadExport(c, f)
	})
}

// ReadStartSection parses the single function index (not vector-framed).
func ReadStartSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (wasm.At[wasm.Start], bool) {
	c := payloadCursor(known, errs)
	c.pushContext("start")
	defer c.popContext()
	index, ok := c.readIndex("function index")
	if !ok {
		return wasm.At[wasm.Start]{}, false
	}
	return wasm.MakeAt(index.Span, wasm.Start{FuncIndex: index.Value}), true
}

// ReadElementSection parses element segments.
func ReadElementSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.ElementSegment], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.ElementSegment], bool) {
		return ReadElementSegment(c, f)
	})
}

// ReadCodeSection parses code entries.
func ReadCodeSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Code], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Code], bool) {
		return ReadCode(c, f)
	})
}

// ReadDataSection parses data segments.
func ReadDataSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.DataSegment], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.DataSegment], bool) {
		return ReadDataSegment(c, f)
	})
}

// ReadDataCountSection parses the single u32 count (bulk memory).
func ReadDataCountSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (wasm.At[uint32], bool) {
	c := payloadCursor(known, errs)
	c.pushContext("data count")
	defer c.popContext()
	return ReadU32(&c)
}

// ReadEventSection parses event entries (exceptions).
func ReadEventSection(known wasm.KnownSection, f wasm.Features, errs *ErrorList) (*Seq[wasm.Event], bool) {
	return newSeq(payloadCursor(known, errs), func(c *Cursor) (wasm.At[wasm.Event], bool) {
		return ReadEvent(c, f)
	})
}

// ReadEvent reads one event entry.
func ReadEvent(c *Cursor, f wasm.Features) (wasm.At[wasm.Event], bool) {
	c.pushContext("event")
	defer c.popContext()
	start := c.Pos()
	et, ok := ReadEventType(c, f)
	if !ok {
		return wasm.At[wasm.Event]{}, false
	}
	return wasm.MakeAt(c.span(start), wasm.Event{Type: et.Value}), true
}
