// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package wasmtext holds the text-form module tree handed over by the text
// parser, and its converter into the binary tree. By this stage every
// symbolic identifier has been resolved to a numeric index.
package wasmtext

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// Var is a resolved numeric index.
type Var = wasm.Index

// OptVar is an optional index slot; the text form may omit it, in which
// case conversion defaults it to 0.
type OptVar struct {
	Index   Var
	Present bool
}

// Some wraps a present index.
func Some(index Var) OptVar { return OptVar{Index: index, Present: true} }

// Or returns the index or the default when absent.
func (v OptVar) Or(def Var) Var {
	if v.Present {
		return v.Index
	}
	return def
}

// InlineImport marks an item declared with an inline (import "m" "n") form.
// Imported items contribute an import entry and nothing else.
type InlineImport struct {
	Module string
	Name   string
}

// BoundValueType is one (id, type) binding of a param or local list. The id
// only matters to the text parser; the order is preserved here.
type BoundValueType struct {
	Name string
	Type wasm.ValueType
}

// BlockImmediate is the type annotation on block/loop/if/try: either an
// inline single result (nil means void) or a function-type use.
type BlockImmediate struct {
	Inline  *wasm.ValueType
	TypeUse *Var
}

// MemArgImmediate carries the optional alignment (a power-of-two byte
// count) and offset of a memory-access instruction.
type MemArgImmediate struct {
	Align  *uint32
	Offset *uint32
}

// CallIndirectImmediate is the type use plus the optional table slot.
type CallIndirectImmediate struct {
	TypeUse Var
	Table   OptVar
}

// CopyImmediate is the optional destination and source slots.
type CopyImmediate struct {
	Dst OptVar
	Src OptVar
}

// InitImmediate is the segment index plus the optional destination slot.
type InitImmediate struct {
	Segment Var
	Dst     OptVar
}

// BrTableImmediate is the target list plus default target.
type BrTableImmediate struct {
	Targets []Var
	Default Var
}

// Instruction is one text-form instruction. The immediate field selected by
// the opcode's table entry is meaningful; the rest stay zero.
type Instruction struct {
	Opcode wasm.Opcode

	S32          int32
	S64          int64
	F32          float32
	F64          float64
	V128         wasm.V128Bytes
	Var          Var
	Block        BlockImmediate
	BrTable      BrTableImmediate
	CallIndirect CallIndirectImmediate
	BrOnExn      wasm.BrOnExn
	MemArg       MemArgImmediate
	Copy         CopyImmediate
	Init         InitImmediate
	SelectTypes  []wasm.ValueType
	Shuffle      wasm.ShuffleLanes
	Lane         byte
}

// TypeEntry is an explicit (type (func ...)) declaration.
type TypeEntry struct {
	Params  []BoundValueType
	Results []wasm.ValueType
}

// ImportDesc selects what an import declares.
type ImportDesc struct {
	Kind    wasm.ExternalKind
	TypeUse Var // function
	Table   wasm.TableType
	Memory  wasm.MemoryType
	Global  wasm.GlobalType
	Event   EventTypeUse
}

// Import is a standalone (import "m" "n" ...) item.
type Import struct {
	Module string
	Name   string
	Desc   ImportDesc
}

// EventTypeUse is an event's attribute plus function-type use.
type EventTypeUse struct {
	Attribute wasm.EventAttribute
	TypeUse   Var
}

// Function is a (func ...) item: type use, locals, body.
type Function struct {
	TypeUse      Var
	Locals       []BoundValueType
	Instructions []Instruction
	Import       *InlineImport
}

// Table is a (table ...) item.
type Table struct {
	Type   wasm.TableType
	Import *InlineImport
}

// Memory is a (memory ...) item.
type Memory struct {
	Type   wasm.MemoryType
	Import *InlineImport
}

// Global is a (global ...) item.
type Global struct {
	Type   wasm.GlobalType
	Init   []Instruction
	Import *InlineImport
}

// Event is an (event ...) item (exceptions).
type Event struct {
	Type   EventTypeUse
	Import *InlineImport
}

// Export is an (export "n" ...) item.
type Export struct {
	Kind wasm.ExternalKind
	Name string
	Var  Var
}

// Start is the (start $f) item.
type Start struct {
	Var Var
}

// ElementList mirrors the two element payload forms.
type ElementList struct {
	HasExpressions bool
	Kind           wasm.ExternalKind
	Type           wasm.ReferenceType
	Vars           []Var
	Expressions    [][]Instruction
}

// ElementSegment is an (elem ...) item.
type ElementSegment struct {
	Kind     wasm.SegmentKind
	Table    OptVar
	Offset   []Instruction
	Elements ElementList
}

// DataSegment is a (data ...) item.
type DataSegment struct {
	Kind   wasm.SegmentKind
	Memory OptVar
	Offset []Instruction
	Data   []byte
}

// ModuleItem is one top-level field of a text module.
type ModuleItem interface {
	moduleItem()
}

func (*TypeEntry) moduleItem()      {}
func (*Import) moduleItem()         {}
func (*Function) moduleItem()       {}
func (*Table) moduleItem()          {}
func (*Memory) moduleItem()         {}
func (*Global) moduleItem()         {}
func (*Event) moduleItem()          {}
func (*Export) moduleItem()         {}
func (*Start) moduleItem()          {}
func (*ElementSegment) moduleItem() {}
func (*DataSegment) moduleItem()    {}

// Module is the ordered list of items produced by the text parser.
type Module struct {
	Items []ModuleItem
}
