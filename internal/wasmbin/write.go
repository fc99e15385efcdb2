// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/dotandev/wasmkit/internal/wasm"
)

// Writer accumulates encoded bytes. Encoding never fails; the one
// precondition violation, a block-type index that does not fit in 31 bits,
// panics as a programmer error.
type Writer struct {
	buf bytes.Buffer
}

// Bytes returns the encoded output.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

func (w *Writer) U8(b byte) { w.buf.WriteByte(b) }

func (w *Writer) Raw(data []byte) { w.buf.Write(data) }

// VarU32 emits the minimal unsigned LEB128 encoding.
func (w *Writer) VarU32(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// VarS64 emits the minimal signed LEB128 encoding.
func (w *Writer) VarS64(v int64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			w.buf.WriteByte(b)
			return
		}
		w.buf.WriteByte(b | 0x80)
	}
}

func (w *Writer) VarS32(v int32) { w.VarS64(int64(v)) }

func (w *Writer) F32(v float32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], math.Float32bits(v))
	w.buf.Write(raw[:])
}

func (w *Writer) F64(v float64) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], math.Float64bits(v))
	w.buf.Write(raw[:])
}

// Name emits a length-prefixed string.
func (w *Writer) Name(s string) {
	w.VarU32(uint32(len(s)))
	w.buf.WriteString(s)
}

// WriteValueType emits the value-type byte.
func WriteValueType(w *Writer, vt wasm.ValueType) { w.U8(byte(vt)) }

// WriteBlockType emits void, the value-type byte, or the positive function
// type index. Indexes must fit in 31 bits.
func WriteBlockType(w *Writer, bt wasm.BlockType) {
	switch bt.Kind {
	case wasm.BlockVoid:
		w.U8(0x40)
	case wasm.BlockValue:
		w.U8(byte(bt.Value))
	case wasm.BlockIndex:
		if bt.Index >= 0x80000000 {
			panic("block type index out of range")
		}
		w.VarS64(int64(bt.Index))
	}
}

// WriteLimits emits flags, min, and max when present.
func WriteLimits(w *Writer, l wasm.Limits) {
	flags := byte(0)
	if l.HasMax {
		flags |= 1
	}
	if l.Shared {
		flags |= 2
	}
	w.U8(flags)
	w.VarU32(l.Min)
	if l.HasMax {
		w.VarU32(l.Max)
	}
}

func WriteTableType(w *Writer, t wasm.TableType) {
	WriteValueType(w, t.ElemType)
	WriteLimits(w, t.Limits)
}

func WriteMemoryType(w *Writer, m wasm.MemoryType) {
	WriteLimits(w, m.Limits)
}

func WriteGlobalType(w *Writer, g wasm.GlobalType) {
	WriteValueType(w, g.ValType)
	w.U8(byte(g.Mut))
}

func WriteEventType(w *Writer, e wasm.EventType) {
	w.VarU32(uint32(e.Attribute))
	w.VarU32(e.TypeIndex)
}

// WriteFunctionType emits the param and result vectors.
func WriteFunctionType(w *Writer, ft wasm.FunctionType) {
	w.VarU32(uint32(len(ft.Params)))
	for _, p := range ft.Params {
		WriteValueType(w, p)
	}
	w.VarU32(uint32(len(ft.Results)))
	for _, r := range ft.Results {
		WriteValueType(w, r)
	}
}

// WriteTypeEntry emits the 0x60 form byte plus the function type.
func WriteTypeEntry(w *Writer, te wasm.TypeEntry) {
	w.U8(0x60)
	WriteFunctionType(w, te.Type)
}

func WriteImport(w *Writer, im wasm.Import) {
	w.Name(im.Module)
	w.Name(im.Name)
	w.U8(byte(im.Kind))
	switch im.Kind {
	case wasm.ExternalFunction:
		w.VarU32(im.Func)
	case wasm.ExternalTable:
		WriteTableType(w, im.Table)
	case wasm.ExternalMemory:
		WriteMemoryType(w, im.Memory)
	case wasm.ExternalGlobal:
		WriteGlobalType(w, im.Global)
	case wasm.ExternalEvent:
		WriteEventType(w, im.Event)
	}
}

func WriteExport(w *Writer, e wasm.Export) {
	w.Name(e.Name)
	w.U8(byte(e.Kind))
	w.VarU32(e.Index)
}

// WriteConstantExpression emits the instructions plus the terminating end.
func WriteConstantExpression(w *Writer, expr wasm.ConstantExpression) {
	for _, in := range expr.Instructions {
		WriteInstruction(w, in.Value)
	}
	WriteInstruction(w, wasm.Instruction{Opcode: wasm.OpEnd})
}

// WriteElementExpression emits the instruction plus the terminating end.
func WriteElementExpression(w *Writer, expr wasm.ElementExpression) {
	WriteInstruction(w, expr.Instruction.Value)
	WriteInstruction(w, wasm.Instruction{Opcode: wasm.OpEnd})
}

func WriteGlobal(w *Writer, g wasm.Global) {
	WriteGlobalType(w, g.Type)
	WriteConstantExpression(w, g.Init)
}

// elementSegmentFlags rebuilds the 3-bit flag from the segment shape.
func elementSegmentFlags(seg wasm.ElementSegment) byte {
	var flags byte
	switch seg.Kind {
	case wasm.SegmentActive:
		implied := wasm.ExternalFunction
		impliedType := wasm.Funcref
		if seg.TableIndex != 0 ||
			(!seg.Elements.HasExpressions && seg.Elements.Kind != implied) ||
			(seg.Elements.HasExpressions && seg.Elements.Type != impliedType) {
			flags = 2
		}
	case wasm.SegmentPassive:
		flags = 1
	case wasm.SegmentDeclared:
		flags = 3
	}
	if seg.Elements.HasExpressions {
		flags |= 4
	}
	return flags
}

// WriteElementSegment reassembles the flag byte and the matching payload.
func WriteElementSegment(w *Writer, seg wasm.ElementSegment) {
	flags := elementSegmentFlags(seg)
	w.U8(flags)
	if seg.Kind == wasm.SegmentActive {
		if flags&3 == 2 {
			w.VarU32(seg.TableIndex)
		}
		WriteConstantExpression(w, seg.Offset)
	}
	if seg.Elements.HasExpressions {
		if flags != 4 {
			WriteValueType(w, seg.Elements.Type)
		}
		w.VarU32(uint32(len(seg.Elements.Expressions)))
		for _, expr := range seg.Elements.Expressions {
			WriteElementExpression(w, expr)
		}
	} else {
		if flags != 0 {
			w.U8(byte(seg.Elements.Kind))
		}
		w.VarU32(uint32(len(seg.Elements.Indexes)))
		for _, index := range seg.Elements.Indexes {
			w.VarU32(index.Value)
		}
	}
}

// WriteDataSegment reassembles the flag byte and the matching payload.
func WriteDataSegment(w *Writer, seg wasm.DataSegment) {
	switch seg.Kind {
	case wasm.SegmentPassive:
		w.U8(1)
	case wasm.SegmentActive:
		if seg.MemoryIndex != 0 {
			w.U8(2)
			w.VarU32(seg.MemoryIndex)
		} else {
			w.U8(0)
		}
	}
	if seg.Kind == wasm.SegmentActive {
		WriteConstantExpression(w, seg.Offset)
	}
	w.VarU32(uint32(len(seg.Init)))
	w.Raw(seg.Init)
}

// WriteCode emits the length-prefixed locals RLE plus body bytes.
func WriteCode(w *Writer, code wasm.Code) {
	var scratch Writer
	scratch.VarU32(uint32(len(code.Locals)))
	for _, run := range code.Locals {
		scratch.VarU32(run.Value.Count)
		WriteValueType(&scratch, run.Value.Type)
	}
	scratch.Raw(code.Body.Data)
	w.VarU32(uint32(scratch.Len()))
	w.Raw(scratch.Bytes())
}

// WriteKnownSection frames a payload as id + length + bytes.
func WriteKnownSection(w *Writer, id wasm.SectionID, payload []byte) {
	w.U8(byte(id))
	w.VarU32(uint32(len(payload)))
	w.Raw(payload)
}

// WriteCustomSection frames the name and opaque payload.
func WriteCustomSection(w *Writer, custom wasm.CustomSection) {
	var scratch Writer
	scratch.Name(custom.Name)
	scratch.Raw(custom.Data)
	WriteKnownSection(w, wasm.SectionCustom, scratch.Bytes())
}

// writeVectorSection emits a count-prefixed entry section when the vector is
// non-empty.
func writeVectorSection[T any](w *Writer, id wasm.SectionID, entries []wasm.At[T],
	write func(*Writer, T)) {

	if len(entries) == 0 {
		return
	}
	var scratch Writer
	scratch.VarU32(uint32(len(entries)))
	for _, entry := range entries {
		write(&scratch, entry.Value)
	}
	WriteKnownSection(w, id, scratch.Bytes())
}

// WriteNameSubsection frames a name subsection: id, length, payload.
func WriteNameSubsection(w *Writer, sub wasm.NameSubsection) {
	w.U8(byte(sub.ID))
	w.VarU32(uint32(len(sub.Data)))
	w.Raw(sub.Data)
}

// WriteNameMap emits a vector of (index, name) pairs.
func WriteNameMap(w *Writer, nm wasm.NameMap) {
	w.VarU32(uint32(len(nm)))
	for _, na := range nm {
		w.VarU32(na.Value.Index)
		w.Name(na.Value.Name)
	}
}

// EncodeModule walks the typed tree back into bytes: the header followed by
// the known sections in canonical section order (ascending id, except that
// the event section follows the memory section and the data count section
// precedes the code section), then the custom sections.
func EncodeModule(module *wasm.Module) []byte {
	var w Writer
	w.Raw(moduleMagic)

	writeVectorSection(&w, wasm.SectionType, module.Types, WriteTypeEntry)
	writeVectorSection(&w, wasm.SectionImport, module.Imports, WriteImport)
	writeVectorSection(&w, wasm.SectionFunction, module.Functions,
		func(w *Writer, fn wasm.Function) { w.VarU32(fn.TypeIndex) })
	writeVectorSection(&w, wasm.SectionTable, module.Tables,
		func(w *Writer, t wasm.Table) { WriteTableType(w, t.Type) })
	writeVectorSection(&w, wasm.SectionMemory, module.Memories,
		func(w *Writer, m wasm.Memory) { WriteMemoryType(w, m.Type) })
	writeVectorSection(&w, wasm.SectionEvent, module.Events,
		func(w *Writer, e wasm.Event) { WriteEventType(w, e.Type) })
	writeVectorSection(&w, wasm.SectionGlobal, module.Globals, WriteGlobal)
	writeVectorSection(&w, wasm.SectionExport, module.Exports, WriteExport)
	if module.Start != nil {
		var scratch Writer
		scratch.VarU32(module.Start.Value.FuncIndex)
		WriteKnownSection(&w, wasm.SectionStart, scratch.Bytes())
	}
	writeVectorSection(&w, wasm.SectionElement, module.Elements, WriteElementSegment)
	if module.DataCount != nil {
		var scratch Writer
		scratch.VarU32(module.DataCount.Value)
		WriteKnownSection(&w, wasm.SectionDataCount, scratch.Bytes())
	}
	writeVectorSection(&w, wasm.SectionCode, module.Codes, WriteCode)
	writeVectorSection(&w, wasm.SectionData, module.Data, WriteDataSegment)
	for _, custom := range module.Customs {
		WriteCustomSection(&w, custom.Value)
	}
	return w.Bytes()
}
