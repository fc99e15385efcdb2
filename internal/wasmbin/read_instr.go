// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// ReadOpcode dispatches on the first byte and, for the 0xfc/0xfd/0xfe
// prefixes, the trailing LEB code. Unknown or feature-gated entries report
// "Unknown opcode".
func ReadOpcode(c *Cursor, f wasm.Features) (wasm.At[wasm.Opcode], bool) {
	c.pushContext("opcode")
	defer c.popContext()
	start := c.Pos()

	at, ok := c.readU8()
	if !ok {
		return wasm.At[wasm.Opcode]{}, false
	}
	b := at.Value
	switch b {
	case wasm.PrefixMisc, wasm.PrefixSIMD, wasm.PrefixThreads:
		code, ok := c.varU32("u32")
		if !ok {
			return wasm.At[wasm.Opcode]{}, false
		}
		op := wasm.PrefixedOpcode(b, code.Value)
		if !op.Known(f) {
			c.failf("Unknown opcode: %d %d", b, code.Value)
			return wasm.At[wasm.Opcode]{}, false
		}
		return wasm.MakeAt(c.span(start), op), true
	}
	op := wasm.Opcode(b)
	if !op.Known(f) {
		c.failf("Unknown opcode: %d", b)
		return wasm.At[wasm.Opcode]{}, false
	}
	return wasm.MakeAt(c.span(start), op), true
}

// readReserved reads a raw byte that must be zero.
func readReserved(c *Cursor) (wasm.At[byte], bool) {
	c.pushContext("reserved")
	defer c.popContext()
	at, ok := c.readU8()
	if !ok {
		return wasm.At[byte]{}, false
	}
	if at.Value != 0 {
		c.failf("Expected reserved byte 0, got %d", at.Value)
		return wasm.At[byte]{}, false
	}
	return at, true
}

// readReservedOrIndex reads a table/memory slot: an index when the
// reference-types proposal re-purposes the slot, a zero reserved byte
// otherwise.
func readReservedOrIndex(c *Cursor, label string, isIndex bool) (wasm.At[wasm.Index], bool) {
	if isIndex {
		return c.readIndex(label)
	}
	at, ok := readReserved(c)
	if !ok {
		return wasm.At[wasm.Index]{}, false
	}
	return wasm.MakeAt(at.Span, wasm.Index(0)), true
}

func readCallIndirect(c *Cursor, f wasm.Features) (wasm.CallIndirect, bool) {
	c.pushContext("call_indirect")
	defer c.popContext()
	typeIndex, ok := c.readIndex("type index")
	if !ok {
		return wasm.CallIndirect{}, false
	}
	tableIndex, ok := readReservedOrIndex(c, "table index", f.ReferenceTypes)
	if !ok {
		return wasm.CallIndirect{}, false
	}
	return wasm.CallIndirect{TypeIndex: typeIndex.Value, TableIndex: tableIndex.Value}, true
}

func readBrTable(c *Cursor) (wasm.BrTable, bool) {
	c.pushContext("br_table")
	defer c.popContext()

	c.pushContext("targets")
	count, ok := c.readCount()
	if !ok {
		c.popContext()
		return wasm.BrTable{}, false
	}
	targets := make([]wasm.At[wasm.Index], 0, count.Value)
	for i := uint32(0); i < count.Value; i++ {
		target, ok := c.readIndex("target")
		if !ok {
			c.popContext()
			return wasm.BrTable{}, false
		}
		targets = append(targets, target)
	}
	c.popContext()

	def, ok := c.readIndex("default target")
	if !ok {
		return wasm.BrTable{}, false
	}
	return wasm.BrTable{Targets: targets, Default: def.Value}, true
}

func readBrOnExn(c *Cursor) (wasm.BrOnExn, bool) {
	c.pushContext("br_on_exn")
	defer c.popContext()
	target, ok := c.readIndex("target")
	if !ok {
		return wasm.BrOnExn{}, false
	}
	event, ok := c.readIndex("event index")
	if !ok {
		return wasm.BrOnExn{}, false
	}
	return wasm.BrOnExn{Target: target.Value, Event: event.Value}, true
}

// readCopy reads memory.copy / table.copy immediates. Only the table
// variant carries real indexes, and only with reference-types.
func readCopy(c *Cursor, isTable bool, f wasm.Features) (wasm.Copy, bool) {
	c.pushContext("copy immediate")
	defer c.popContext()
	isIndex := isTable && f.ReferenceTypes
	dst, ok := readReservedOrIndex(c, "dst", isIndex)
	if !ok {
		return wasm.Copy{}, false
	}
	src, ok := readReservedOrIndex(c, "src", isIndex)
	if !ok {
		return wasm.Copy{}, false
	}
	return wasm.Copy{Dst: dst.Value, Src: src.Value}, true
}

// readInit reads memory.init / table.init immediates: segment index plus
// the destination slot.
func readInit(c *Cursor, isTable bool, f wasm.Features) (wasm.Init, bool) {
	c.pushContext("init immediate")
	defer c.popContext()
	segment, ok := c.readIndex("segment index")
	if !ok {
		return wasm.Init{}, false
	}
	isIndex := isTable && f.ReferenceTypes
	dst, ok := readReservedOrIndex(c, "dst", isIndex)
	if !ok {
		return wasm.Init{}, false
	}
	return wasm.Init{Segment: segment.Value, Dst: dst.Value}, true
}

func readMemArg(c *Cursor) (wasm.MemArg, bool) {
	align, ok := c.readIndex("align log2")
	if !ok {
		return wasm.MemArg{}, false
	}
	offset, ok := c.readIndex("offset")
	if !ok {
		return wasm.MemArg{}, false
	}
	return wasm.MemArg{AlignLog2: align.Value, Offset: offset.Value}, true
}

func readShuffle(c *Cursor) (wasm.ShuffleLanes, bool) {
	c.pushContext("shuffle immediate")
	defer c.popContext()
	var lanes wasm.ShuffleLanes
	for i := range lanes {
		at, ok := c.readU8()
		if !ok {
			return wasm.ShuffleLanes{}, false
		}
		lanes[i] = at.Value
	}
	return lanes, true
}

// ReadInstruction decodes one instruction: opcode plus the immediate shape
// the opcode table assigns it.
func ReadInstruction(c *Cursor, f wasm.Features) (wasm.At[wasm.Instruction], bool) {
	start := c.Pos()
	opAt, ok := ReadOpcode(c, f)
	if !ok {
		return wasm.At[wasm.Instruction]{}, false
	}
	op := opAt.Value
	in := wasm.Instruction{Opcode: op}
	info, _ := op.Info()

	switch info.Imm {
	case wasm.ImmNone:

	case wasm.ImmBlockType:
		bt, ok := ReadBlockType(c, f)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.BlockType = bt.Value

	case wasm.ImmIndex:
		index, ok := c.readIndex("index")
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.Index = index.Value

	case wasm.ImmBrTable:
		bt, ok := readBrTable(c)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.BrTable = bt

	case wasm.ImmCallIndirect:
		ci, ok := readCallIndirect(c, f)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.CallIndirect = ci

	case wasm.ImmBrOnExn:
		be, ok := readBrOnExn(c)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.BrOnExn = be

	case wasm.ImmMemArg:
		ma, ok := readMemArg(c)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.MemArg = ma

	case wasm.ImmReserved:
		if _, ok := readReserved(c); !ok {
			return wasm.At[wasm.Instruction]{}, false
		}

	case wasm.ImmCopy:
		cp, ok := readCopy(c, op == wasm.OpTableCopy, f)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.Copy = cp

	case wasm.ImmInit:
		ini, ok := readInit(c, op == wasm.OpTableInit, f)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.Init = ini

	case wasm.ImmS32:
		v, ok := ReadS32(c)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.S32 = v.Value

	case wasm.ImmS64:
		v, ok := ReadS64(c)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.S64 = v.Value

	case wasm.ImmF32:
		v, ok := c.readF32()
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.F32 = v.Value

	case wasm.ImmF64:
		v, ok := c.readF64()
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.F64 = v.Value

	case wasm.ImmV128:
		raw, ok := c.readBytes(16)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		copy(in.V128[:], raw.Value)

	case wasm.ImmShuffle:
		lanes, ok := readShuffle(c)
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.Shuffle = lanes

	case wasm.ImmSimdLane:
		at, ok := c.readU8()
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.Lane = at.Value

	case wasm.ImmSelectTypes:
		types, ok := readValueTypeVector(c, f, "types")
		if !ok {
			return wasm.At[wasm.Instruction]{}, false
		}
		in.SelectTypes = types
	}

	return wasm.MakeAt(c.span(start), in), true
}

// ExpressionReader iterates the instructions of an expression, tracking
// block nesting. It stops after consuming the end instruction that closes
// the outermost level. Structural legality beyond matching end (else only
// inside if, catch only inside try) is a validator concern.
type ExpressionReader struct {
	c     Cursor
	f     wasm.Features
	depth int
	done  bool
}

// NewExpressionReader reads from the cursor's remaining window.
func NewExpressionReader(c Cursor, f wasm.Features) *ExpressionReader {
	return &ExpressionReader{c: c, f: f}
}

// Next returns the next instruction, including the structural else/end
// terminators. After the outermost end it returns false with done set.
func (r *ExpressionReader) Next() (wasm.At[wasm.Instruction], bool) {
	if r.done {
		return wasm.At[wasm.Instruction]{}, false
	}
	in, ok := ReadInstruction(&r.c, r.f)
	if !ok {
		r.done = true
		return wasm.At[wasm.Instruction]{}, false
	}
	switch in.Value.Opcode {
	case wasm.OpBlock, wasm.OpLoop, wasm.OpIf, wasm.OpTry:
		r.depth++
	case wasm.OpEnd:
		if r.depth == 0 {
			r.done = true
		} else {
			r.depth--
		}
	}
	return in, true
}

// Done reports whether the outermost end was consumed.
func (r *ExpressionReader) Done() bool { return r.done }

// Pos returns the current absolute offset of the underlying cursor.
func (r *ExpressionReader) Pos() int { return r.c.Pos() }

// readRestrictedExpression reads a single permitted instruction followed by
// end. The permitted set is parameterised by the caller.
func readRestrictedExpression(c *Cursor, f wasm.Features, label string,
	allowed func(wasm.Opcode) bool) (wasm.At[wasm.Instruction], bool) {

	c.pushContext(label)
	defer c.popContext()

	in, ok := ReadInstruction(c, f)
	if !ok {
		return wasm.At[wasm.Instruction]{}, false
	}
	if !allowed(in.Value.Opcode) {
		c.failf("Illegal instruction in %s: %s", label, in.Value.Opcode)
		return wasm.At[wasm.Instruction]{}, false
	}
	terminator, ok := ReadInstruction(c, f)
	if !ok {
		return wasm.At[wasm.Instruction]{}, false
	}
	if terminator.Value.Opcode != wasm.OpEnd {
		c.fail("Expected end instruction")
		return wasm.At[wasm.Instruction]{}, false
	}
	return in, true
}

// ReadConstantExpression reads one value-producing instruction plus end.
// The permitted set grows with reference-types.
func ReadConstantExpression(c *Cursor, f wasm.Features) (wasm.At[wasm.ConstantExpression], bool) {
	start := c.Pos()
	in, ok := readRestrictedExpression(c, f, "constant expression", func(op wasm.Opcode) bool {
		return wasm.ConstantExpressionAllowed(op, f)
	})
	if !ok {
		return wasm.At[wasm.ConstantExpression]{}, false
	}
	expr := wasm.ConstantExpression{Instructions: []wasm.At[wasm.Instruction]{in}}
	return wasm.MakeAt(c.span(start), expr), true
}

// ReadElementExpression reads a single ref.null or ref.func plus end.
func ReadElementExpression(c *Cursor, f wasm.Features) (wasm.At[wasm.ElementExpression], bool) {
	start := c.Pos()
	in, ok := readRestrictedExpression(c, f, "element expression", wasm.ElementExpressionAllowed)
	if !ok {
		return wasm.At[wasm.ElementExpression]{}, false
	}
	return wasm.MakeAt(c.span(start), wasm.ElementExpression{Instruction: in}), true
}

// ReadLocals reads one run of the locals RLE.
func ReadLocals(c *Cursor, f wasm.Features) (wasm.At[wasm.Locals], bool) {
	c.pushContext("locals")
	defer c.popContext()
	start := c.Pos()
	count, ok := readU32Field(c, "count")
	if !ok {
		return wasm.At[wasm.Locals]{}, false
	}
	vt, ok := ReadValueType(c, f)
	if !ok {
		return wasm.At[wasm.Locals]{}, false
	}
	return wasm.MakeAt(c.span(start), wasm.Locals{Count: count.Value, Type: vt.Value}), true
}

// ReadCode reads a length-prefixed code entry: the locals vector followed by
// the raw body expression (terminating end included, not verified here).
func ReadCode(c *Cursor, f wasm.Features) (wasm.At[wasm.Code], bool) {
	c.pushContext("code")
	defer c.popContext()
	start := c.Pos()

	length, ok := c.readLength()
	if !ok {
		return wasm.At[wasm.Code]{}, false
	}
	body, ok := c.sub(int(length.Value))
	if !ok {
		return wasm.At[wasm.Code]{}, false
	}

	body.pushContext("locals vector")
	count, ok := body.readCount()
	if !ok {
		body.popContext()
		return wasm.At[wasm.Code]{}, false
	}
	locals := make([]wasm.At[wasm.Locals], 0, count.Value)
	for i := uint32(0); i < count.Value; i++ {
		run, ok := ReadLocals(&body, f)
		if !ok {
			body.popContext()
			return wasm.At[wasm.Code]{}, false
		}
		locals = append(locals, run)
	}
	body.popContext()

	expr := wasm.Expression{Data: body.window(), Offset: body.Pos()}
	code := wasm.Code{Locals: locals, Body: expr}
	return wasm.MakeAt(c.span(start), code), true
}
