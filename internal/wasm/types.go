// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package wasm holds the typed syntax tree for the WebAssembly binary module
// format, the feature switches, and the opcode table shared by the decoder,
// the encoder and the text converter.
package wasm

import "fmt"

// Index is a u32 index into one of the module index spaces.
type Index = uint32

// ValueType is a wire-level value type byte.
type ValueType byte

const (
	I32     ValueType = 0x7f
	I64     ValueType = 0x7e
	F32     ValueType = 0x7d
	F64     ValueType = 0x7c
	V128    ValueType = 0x7b
	Funcref ValueType = 0x70
	Anyref  ValueType = 0x6f
	Nullref ValueType = 0x6e
	Exnref  ValueType = 0x68
)

// ValueTypeFeature returns the feature gating vt, and whether vt names a
// value type at all.
func ValueTypeFeature(vt ValueType) (Feature, bool) {
	switch vt {
	case I32, I64, F32, F64:
		return FeatureNone, true
	case V128:
		return FeatureSIMD, true
	case Funcref, Anyref, Nullref:
		return FeatureReferenceTypes, true
	case Exnref:
		return FeatureExceptions, true
	}
	return FeatureNone, false
}

func (vt ValueType) String() string {
	switch vt {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case Funcref:
		return "funcref"
	case Anyref:
		return "anyref"
	case Nullref:
		return "nullref"
	case Exnref:
		return "exnref"
	}
	return fmt.Sprintf("valuetype(%d)", byte(vt))
}

// ReferenceType is the reference subset of ValueType.
type ReferenceType = ValueType

// Mutability of a global.
type Mutability byte

const (
	Const Mutability = 0
	Var   Mutability = 1
)

func (m Mutability) String() string {
	switch m {
	case Const:
		return "const"
	case Var:
		return "var"
	}
	return fmt.Sprintf("mutability(%d)", byte(m))
}

// ExternalKind tags imports and exports.
type ExternalKind byte

const (
	ExternalFunction ExternalKind = 0
	ExternalTable    ExternalKind = 1
	ExternalMemory   ExternalKind = 2
	ExternalGlobal   ExternalKind = 3
	ExternalEvent    ExternalKind = 4
)

func (k ExternalKind) String() string {
	switch k {
	case ExternalFunction:
		return "func"
	case ExternalTable:
		return "table"
	case ExternalMemory:
		return "memory"
	case ExternalGlobal:
		return "global"
	case ExternalEvent:
		return "event"
	}
	return fmt.Sprintf("externalkind(%d)", byte(k))
}

// BlockTypeKind selects which arm of a BlockType is populated.
type BlockTypeKind byte

const (
	BlockVoid BlockTypeKind = iota
	BlockValue
	BlockIndex
)

// BlockType is either void, a single value type, or a function-type index.
// The index form is only legal with multi-value enabled.
type BlockType struct {
	Kind  BlockTypeKind
	Value ValueType // BlockValue
	Index Index     // BlockIndex, < 0x80000000
}

func VoidBlockType() BlockType              { return BlockType{Kind: BlockVoid} }
func ValueBlockType(vt ValueType) BlockType { return BlockType{Kind: BlockValue, Value: vt} }
func IndexBlockType(index Index) BlockType  { return BlockType{Kind: BlockIndex, Index: index} }

func (bt BlockType) String() string {
	switch bt.Kind {
	case BlockVoid:
		return "[]"
	case BlockValue:
		return "[" + bt.Value.String() + "]"
	default:
		return fmt.Sprintf("type[%d]", bt.Index)
	}
}

// Limits with an optional maximum and a shared flag (threads).
type Limits struct {
	Min    uint32
	Max    uint32
	HasMax bool
	Shared bool
}

func (l Limits) String() string {
	s := fmt.Sprintf("{min %d", l.Min)
	if l.HasMax {
		s += fmt.Sprintf(", max %d", l.Max)
	}
	if l.Shared {
		s += ", shared"
	}
	return s + "}"
}

// TableType is limits plus an element type.
type TableType struct {
	Limits   Limits
	ElemType ReferenceType
}

func (t TableType) String() string { return t.Limits.String() + " " + t.ElemType.String() }

// MemoryType is just limits.
type MemoryType struct {
	Limits Limits
}

func (m MemoryType) String() string { return m.Limits.String() }

// GlobalType is a value type plus mutability.
type GlobalType struct {
	ValType ValueType
	Mut     Mutability
}

func (g GlobalType) String() string { return g.Mut.String() + " " + g.ValType.String() }

// EventAttribute of an event type. Only exception (0) is defined.
type EventAttribute uint32

const AttributeException EventAttribute = 0

// EventType references a function type describing the event payload.
type EventType struct {
	Attribute EventAttribute
	TypeIndex Index
}

// FunctionType is the signature form behind the 0x60 byte in the type
// section. More than one result requires multi-value.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}

func (ft FunctionType) String() string {
	s := "("
	for i, p := range ft.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ") -> ("
	for i, r := range ft.Results {
		if i > 0 {
			s += ", "
		}
		s += r.String()
	}
	return s + ")"
}

// TypeEntry wraps a FunctionType in the type section.
type TypeEntry struct {
	Type FunctionType
}

// Import of an external, tagged by Kind; only the matching description field
// is meaningful.
type Import struct {
	Module string
	Name   string
	Kind   ExternalKind
	Func   Index // ExternalFunction: type index
	Table  TableType
	Memory MemoryType
	Global GlobalType
	Event  EventType
}

func (im Import) String() string {
	return fmt.Sprintf("%s %q %q", im.Kind, im.Module, im.Name)
}

// Function section entry: a type index.
type Function struct {
	TypeIndex Index
}

// Table section entry.
type Table struct {
	Type TableType
}

// Memory section entry.
type Memory struct {
	Type MemoryType
}

// Global section entry: type plus init expression.
type Global struct {
	Type GlobalType
	Init ConstantExpression
}

// Event section entry.
type Event struct {
	Type EventType
}

// Export entry.
type Export struct {
	Kind  ExternalKind
	Name  string
	Index Index
}

func (e Export) String() string {
	return fmt.Sprintf("%s %q (%d)", e.Kind, e.Name, e.Index)
}

// Start section payload.
type Start struct {
	FuncIndex Index
}

// Expression is a raw instruction stream including its terminating end
// opcode. The bytes alias the decode input (or a conversion buffer).
// Offset is the absolute position of the first byte in the module buffer
// (0 for conversion buffers), so re-decoding the stream keeps absolute
// error offsets.
type Expression struct {
	Data   []byte
	Offset int
}

// ConstantExpression is the restricted initializer form: one value-producing
// instruction followed by end.
type ConstantExpression struct {
	Instructions []At[Instruction]
}

// ElementExpression is a single ref.null or ref.func instruction followed by
// end.
type ElementExpression struct {
	Instruction At[Instruction]
}

// Locals is one run of the run-length-encoded locals vector. Count > 0.
type Locals struct {
	Count uint32
	Type  ValueType
}

// Code section entry: locals RLE plus the body expression.
type Code struct {
	Locals []At[Locals]
	Body   Expression
}

// SegmentKind distinguishes active, passive, and declared segments.
type SegmentKind byte

const (
	SegmentActive SegmentKind = iota
	SegmentPassive
	SegmentDeclared
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentActive:
		return "active"
	case SegmentPassive:
		return "passive"
	case SegmentDeclared:
		return "declared"
	}
	return fmt.Sprintf("segmentkind(%d)", byte(k))
}

// ElementList is the payload of an element segment: either a list of
// function indexes tagged by an external kind, or a list of element
// expressions tagged by an element type.
type ElementList struct {
	HasExpressions bool
	Kind           ExternalKind      // index form
	Type           ReferenceType     // expression form
	Indexes        []At[Index]       // index form
	Expressions    []ElementExpression // expression form
}

// ElementSegment in one of the eight flag shapes.
type ElementSegment struct {
	Kind       SegmentKind
	TableIndex Index              // active only
	Offset     ConstantExpression // active only
	Elements   ElementList
}

// DataSegment in one of the three flag shapes.
type DataSegment struct {
	Kind        SegmentKind
	MemoryIndex Index              // active only
	Offset      ConstantExpression // active only
	Init        []byte
}

// SectionID identifies a known section.
type SectionID byte

const (
	SectionCustom    SectionID = 0
	SectionType      SectionID = 1
	SectionImport    SectionID = 2
	SectionFunction  SectionID = 3
	SectionTable     SectionID = 4
	SectionMemory    SectionID = 5
	SectionGlobal    SectionID = 6
	SectionExport    SectionID = 7
	SectionStart     SectionID = 8
	SectionElement   SectionID = 9
	SectionCode      SectionID = 10
	SectionData      SectionID = 11
	SectionDataCount SectionID = 12
	SectionEvent     SectionID = 13
)

func (id SectionID) String() string {
	switch id {
	case SectionCustom:
		return "custom"
	case SectionType:
		return "type"
	case SectionImport:
		return "import"
	case SectionFunction:
		return "function"
	case SectionTable:
		return "table"
	case SectionMemory:
		return "memory"
	case SectionGlobal:
		return "global"
	case SectionExport:
		return "export"
	case SectionStart:
		return "start"
	case SectionElement:
		return "element"
	case SectionCode:
		return "code"
	case SectionData:
		return "data"
	case SectionDataCount:
		return "datacount"
	case SectionEvent:
		return "event"
	}
	return fmt.Sprintf("section(%d)", byte(id))
}

// sectionFeature gates the feature-dependent section ids.
func sectionFeature(id SectionID) Feature {
	switch id {
	case SectionDataCount:
		return FeatureBulkMemory
	case SectionEvent:
		return FeatureExceptions
	}
	return FeatureNone
}

// SectionIDFeature reports the feature gating a known section id, if any.
func SectionIDFeature(id SectionID) Feature { return sectionFeature(id) }

// KnownSection is a standardized section: id plus the raw payload span.
// Offset is the absolute position of the payload in the module buffer, kept
// so that entry-level errors still report absolute offsets.
type KnownSection struct {
	ID     SectionID
	Data   []byte
	Offset int
}

// CustomSection carries a user-defined name and opaque payload.
type CustomSection struct {
	Name   string
	Data   []byte
	Offset int
}

// Section is either known or custom.
type Section struct {
	Known  *KnownSection
	Custom *CustomSection
}

func (s Section) IsKnown() bool  { return s.Known != nil }
func (s Section) IsCustom() bool { return s.Custom != nil }

// NameSubsectionID identifies a subsection of the "name" custom section.
type NameSubsectionID byte

const (
	NameModule   NameSubsectionID = 0
	NameFunction NameSubsectionID = 1
	NameLocal    NameSubsectionID = 2
)

// NameSubsection is the framed form: id plus raw payload. Offset is the
// absolute position of the payload in the module buffer, like
// KnownSection's, so subsection errors keep absolute offsets.
type NameSubsection struct {
	ID     NameSubsectionID
	Data   []byte
	Offset int
}

// NameAssoc pairs an index with a name. The spec requires NameMap entries to
// be sorted by index and unique; neither is enforced here (validator
// concern).
type NameAssoc struct {
	Index Index
	Name  string
}

// NameMap is a vector of index/name pairs.
type NameMap []At[NameAssoc]

// IndirectNameAssoc maps a function index to a NameMap for its locals.
type IndirectNameAssoc struct {
	Index   Index
	NameMap NameMap
}

// Module is the typed tree: ordered typed vectors per section kind. The
// decoder fills it bottom-up; the encoder walks it back into bytes.
type Module struct {
	Types     []At[TypeEntry]
	Imports   []At[Import]
	Functions []At[Function]
	Tables    []At[Table]
	Memories  []At[Memory]
	Globals   []At[Global]
	Exports   []At[Export]
	Start     *At[Start]
	Elements  []At[ElementSegment]
	DataCount *At[uint32]
	Codes     []At[Code]
	Data      []At[DataSegment]
	Events    []At[Event]
	Customs   []At[CustomSection]
}
