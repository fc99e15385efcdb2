// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmtext

import (
	"fmt"

	"github.com/dotandev/wasmkit/internal/wasm"
	"github.com/dotandev/wasmkit/internal/wasmbin"
)

// Context owns the byte buffers produced while converting: every encoded
// expression lives in one of them, and the resulting binary tree references
// those bytes by span. The context must outlive the converted module.
type Context struct {
	buffers [][]byte
}

// add takes ownership of buf and returns the stored slice.
func (ctx *Context) add(buf []byte) []byte {
	ctx.buffers = append(ctx.buffers, buf)
	return buf
}

// alignLog2 converts a power-of-two byte count to its log2. Non-power-of-two
// alignments are a precondition violation.
func alignLog2(align uint32) uint32 {
	if align == 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("alignment %d is not a power of two", align))
	}
	log2 := uint32(0)
	for align > 1 {
		align >>= 1
		log2++
	}
	return log2
}

// convertBlockType encodes an inline result as the matching block type and
// a type use as the positive index form. Indexes must fit in 31 bits.
func convertBlockType(block BlockImmediate) wasm.BlockType {
	if block.TypeUse != nil {
		index := *block.TypeUse
		if index >= 0x80000000 {
			panic(fmt.Sprintf("block type index %d out of range", index))
		}
		return wasm.IndexBlockType(index)
	}
	if block.Inline == nil {
		return wasm.VoidBlockType()
	}
	return wasm.ValueBlockType(*block.Inline)
}

// convertMemArg fills in the natural alignment when the text form omits it
// and converts an explicit alignment to its log2.
func convertMemArg(memArg MemArgImmediate, op wasm.Opcode) wasm.MemArg {
	var out wasm.MemArg
	if memArg.Align != nil {
		out.AlignLog2 = alignLog2(*memArg.Align)
	} else {
		out.AlignLog2 = alignLog2(op.NaturalAlignment())
	}
	if memArg.Offset != nil {
		out.Offset = *memArg.Offset
	}
	return out
}

// ConvertInstruction materialises one binary instruction from its text
// form.
func ConvertInstruction(in Instruction) wasm.Instruction {
	out := wasm.Instruction{Opcode: in.Opcode}
	info, ok := in.Opcode.Info()
	if !ok {
		panic(fmt.Sprintf("unknown opcode %v", in.Opcode))
	}
	switch info.Imm {
	case wasm.ImmNone:
	case wasm.ImmBlockType:
		out.BlockType = convertBlockType(in.Block)
	case wasm.ImmIndex:
		out.Index = in.Var
	case wasm.ImmBrTable:
		targets := make([]wasm.At[wasm.Index], len(in.BrTable.Targets))
		for i, t := range in.BrTable.Targets {
			targets[i] = wasm.At[wasm.Index]{Value: t}
		}
		out.BrTable = wasm.BrTable{Targets: targets, Default: in.BrTable.Default}
	case wasm.ImmCallIndirect:
		out.CallIndirect = wasm.CallIndirect{
			TypeIndex:  in.CallIndirect.TypeUse,
			TableIndex: in.CallIndirect.Table.Or(0),
		}
	case wasm.ImmBrOnExn:
		out.BrOnExn = in.BrOnExn
	case wasm.ImmMemArg:
		out.MemArg = convertMemArg(in.MemArg, in.Opcode)
	case wasm.ImmReserved:
	case wasm.ImmCopy:
		out.Copy = wasm.Copy{Dst: in.Copy.Dst.Or(0), Src: in.Copy.Src.Or(0)}
	case wasm.ImmInit:
		out.Init = wasm.Init{Segment: in.Init.Segment, Dst: in.Init.Dst.Or(0)}
	case wasm.ImmS32:
		out.S32 = in.S32
	case wasm.ImmS64:
		out.S64 = in.S64
	case wasm.ImmF32:
		out.F32 = in.F32
	case wasm.ImmF64:
		out.F64 = in.F64
	case wasm.ImmV128:
		out.V128 = in.V128
	case wasm.ImmShuffle:
		out.Shuffle = in.Shuffle
	case wasm.ImmSimdLane:
		out.Lane = in.Lane
	case wasm.ImmSelectTypes:
		types := make([]wasm.At[wasm.ValueType], len(in.SelectTypes))
		for i, vt := range in.SelectTypes {
			types[i] = wasm.At[wasm.ValueType]{Value: vt}
		}
		out.SelectTypes = types
	}
	return out
}

// convertExpression serialises the instruction list into a context-owned
// buffer, appending the implicit terminating end.
func (ctx *Context) convertExpression(instrs []Instruction) wasm.Expression {
	var w wasmbin.Writer
	for _, in := range instrs {
		wasmbin.WriteInstruction(&w, ConvertInstruction(in))
	}
	wasmbin.WriteInstruction(&w, wasm.Instruction{Opcode: wasm.OpEnd})
	return wasm.Expression{Data: ctx.add(w.Bytes())}
}

// convertConstantExpression keeps the instruction list in tree form; the
// implicit end belongs to the encoding, not the tree.
func convertConstantExpression(instrs []Instruction) wasm.ConstantExpression {
	out := wasm.ConstantExpression{}
	for _, in := range instrs {
		out.Instructions = append(out.Instructions,
			wasm.At[wasm.Instruction]{Value: ConvertInstruction(in)})
	}
	return out
}

// ConvertLocals folds adjacent bindings of the same type into RLE runs.
// Order is preserved; only neighbours fuse.
func ConvertLocals(locals []BoundValueType) []wasm.At[wasm.Locals] {
	var out []wasm.At[wasm.Locals]
	for _, bound := range locals {
		if n := len(out); n > 0 && out[n-1].Value.Type == bound.Type {
			out[n-1].Value.Count++
			continue
		}
		out = append(out, wasm.At[wasm.Locals]{
			Value: wasm.Locals{Count: 1, Type: bound.Type},
		})
	}
	return out
}

func convertBoundTypes(bound []BoundValueType) []wasm.ValueType {
	out := make([]wasm.ValueType, len(bound))
	for i, b := range bound {
		out[i] = b.Type
	}
	return out
}

func convertElementList(ctx *Context, list ElementList) wasm.ElementList {
	out := wasm.ElementList{
		HasExpressions: list.HasExpressions,
		Kind:           list.Kind,
		Type:           list.Type,
	}
	if list.HasExpressions {
		for _, instrs := range list.Expressions {
			expr := convertConstantExpression(instrs)
			if len(expr.Instructions) != 1 {
				panic("element expression must hold exactly one instruction")
			}
			out.Expressions = append(out.Expressions,
				wasm.ElementExpression{Instruction: expr.Instructions[0]})
		}
		return out
	}
	for _, v := range list.Vars {
		out.Indexes = append(out.Indexes, wasm.At[wasm.Index]{Value: v})
	}
	return out
}

// ToBinary materialises a binary module from the text tree. Imported items
// produce import entries only; active segments keep their target slot and
// offset, passive ones drop them.
func ToBinary(ctx *Context, textModule *Module) *wasm.Module {
	out := &wasm.Module{}

	addImport := func(im wasm.Import) {
		out.Imports = append(out.Imports, wasm.At[wasm.Import]{Value: im})
	}

	for _, item := range textModule.Items {
		switch item := item.(type) {
		case *TypeEntry:
			ft := wasm.FunctionType{
				Params:  convertBoundTypes(item.Params),
				Results: item.Results,
			}
			out.Types = append(out.Types,
				wasm.At[wasm.TypeEntry]{Value: wasm.TypeEntry{Type: ft}})

		case *Import:
			im := wasm.Import{Module: item.Module, Name: item.Name, Kind: item.Desc.Kind}
			switch item.Desc.Kind {
			case wasm.ExternalFunction:
				im.Func = item.Desc.TypeUse
			case wasm.ExternalTable:
				im.Table = item.Desc.Table
			case wasm.ExternalMemory:
				im.Memory = item.Desc.Memory
			case wasm.ExternalGlobal:
				im.Global = item.Desc.Global
			case wasm.ExternalEvent:
				im.Event = wasm.EventType{
					Attribute: item.Desc.Event.Attribute,
					TypeIndex: item.Desc.Event.TypeUse,
				}
			}
			addImport(im)

		case *Function:
			if item.Import != nil {
				addImport(wasm.Import{
					Module: item.Import.Module,
					Name:   item.Import.Name,
					Kind:   wasm.ExternalFunction,
					Func:   item.TypeUse,
				})
				continue
			}
			out.Functions = append(out.Functions,
				wasm.At[wasm.Function]{Value: wasm.Function{TypeIndex: item.TypeUse}})
			code := wasm.Code{
				Locals: ConvertLocals(item.Locals),
				Body:   ctx.convertExpression(item.Instructions),
			}
			out.Codes = append(out.Codes, wasm.At[wasm.Code]{Value: code})

		case *Table:
			if item.Import != nil {
				addImport(wasm.Import{
					Module: item.Import.Module,
					Name:   item.Import.Name,
					Kind:   wasm.ExternalTable,
					Table:  item.Type,
				})
				continue
			}
			out.Tables = append(out.Tables,
				wasm.At[wasm.Table]{Value: wasm.Table{Type: item.Type}})

		case *Memory:
			if item.Import != nil {
				addImport(wasm.Import{
					Module: item.Import.Module,
					Name:   item.Import.Name,
					Kind:   wasm.ExternalMemory,
					Memory: item.Type,
				})
				continue
			}
			out.Memories = append(out.Memories,
				wasm.At[wasm.Memory]{Value: wasm.Memory{Type: item.Type}})

		case *Global:
			if item.Import != nil {
				addImport(wasm.Import{
					Module: item.Import.Module,
					Name:   item.Import.Name,
					Kind:   wasm.ExternalGlobal,
					Global: item.Type,
				})
				continue
			}
			g := wasm.Global{
				Type: item.Type,
				Init: convertConstantExpression(item.Init),
			}
			out.Globals = append(out.Globals, wasm.At[wasm.Global]{Value: g})

		case *Event:
			et := wasm.EventType{
				Attribute: item.Type.Attribute,
				TypeIndex: item.Type.TypeUse,
			}
			if item.Import != nil {
				addImport(wasm.Import{
					Module: item.Import.Module,
					Name:   item.Import.Name,
					Kind:   wasm.ExternalEvent,
					Event:  et,
				})
				continue
			}
			out.Events = append(out.Events,
				wasm.At[wasm.Event]{Value: wasm.Event{Type: et}})

		case *Export:
			e := wasm.Export{Kind: item.Kind, Name: item.Name, Index: item.Var}
			out.Exports = append(out.Exports, wasm.At[wasm.Export]{Value: e})

		case *Start:
			// A later start item overwrites an earlier one; multiple start
			// fields only appear in malformed text.
			start := wasm.MakeAt(wasm.Span{}, wasm.Start{FuncIndex: item.Var})
			out.Start = &start

		case *ElementSegment:
			seg := wasm.ElementSegment{
				Kind:     item.Kind,
				Elements: convertElementList(ctx, item.Elements),
			}
			if item.Kind == wasm.SegmentActive {
				seg.TableIndex = item.Table.Or(0)
				seg.Offset = convertConstantExpression(item.Offset)
			}
			out.Elements = append(out.Elements,
				wasm.At[wasm.ElementSegment]{Value: seg})

		case *DataSegment:
			seg := wasm.DataSegment{Kind: item.Kind, Init: item.Data}
			if item.Kind == wasm.SegmentActive {
				seg.MemoryIndex = item.Memory.Or(0)
				seg.Offset = convertConstantExpression(item.Offset)
			}
			out.Data = append(out.Data, wasm.At[wasm.DataSegment]{Value: seg})
		}
	}
	return out
}
