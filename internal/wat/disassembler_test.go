// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotandev/wasmkit/internal/wasm"
	"github.com/dotandev/wasmkit/internal/wasmbin"
)

func TestDisassembleExpression(t *testing.T) {
	expr := wasm.Expression{Data: []byte{
		0x41, 0x2a, // i32.const 42
		0x21, 0x00, // local.set 0
		0x0b, // end
	}}
	errs := &wasmbin.ErrorList{}
	out := DisassembleExpression(expr, wasm.MVP(), errs)
	require.Empty(t, errs.Errors)
	require.Equal(t, "  i32.const 42\n  local.set 0\n  end\n", out)
}

func TestDisassembleExpression_Nesting(t *testing.T) {
	expr := wasm.Expression{Data: []byte{
		0x02, 0x40, // block
		0x04, 0x7f, // if i32
		0x41, 0x01, // i32.const 1
		0x05,       // else
		0x41, 0x02, // i32.const 2
		0x0b, // end (if)
		0x0b, // end (block)
		0x0b, // end
	}}
	errs := &wasmbin.ErrorList{}
	out := DisassembleExpression(expr, wasm.MVP(), errs)
	require.Empty(t, errs.Errors)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, "  block []", lines[0])
	require.Equal(t, "    if [i32]", lines[1])
	require.Equal(t, "      i32.const 1", lines[2])
	require.Equal(t, "    else", lines[3])
	require.Equal(t, "      i32.const 2", lines[4])
	require.Equal(t, "    end", lines[5])
	require.Equal(t, "  end", lines[6])
	require.Equal(t, "  end", lines[7])
}

func TestDisassembleExpression_AbsoluteErrorOffsets(t *testing.T) {
	// A truncated body carries its absolute module offset; the decode
	// error must report relative to the module buffer, not the body.
	expr := wasm.Expression{
		Data:   []byte{0x41}, // i32.const with its immediate missing
		Offset: 200,
	}
	errs := &wasmbin.ErrorList{}
	DisassembleExpression(expr, wasm.MVP(), errs)
	require.Len(t, errs.Errors, 1)
	require.Equal(t, 201, errs.Errors[0].Offset)
}

func TestReadCode_BodyOffsetIsAbsolute(t *testing.T) {
	// Body bytes start after the length and locals vector.
	c := wasmbin.NewCursor([]byte{0x03, 0x00, 0x01, 0x0b}, &wasmbin.ErrorList{})
	code, ok := wasmbin.ReadCode(&c, wasm.MVP())
	require.True(t, ok)
	require.Equal(t, 2, code.Value.Body.Offset)
	require.Equal(t, []byte{0x01, 0x0b}, code.Value.Body.Data)
}

func TestDisassembleCode(t *testing.T) {
	code := wasm.Code{
		Locals: []wasm.At[wasm.Locals]{
			{Value: wasm.Locals{Count: 2, Type: wasm.I32}},
		},
		Body: wasm.Expression{Data: []byte{0x01, 0x0b}},
	}
	errs := &wasmbin.ErrorList{}
	out := DisassembleCode(3, code, wasm.MVP(), errs)
	require.Empty(t, errs.Errors)
	require.Contains(t, out, "func[3]:")
	require.Contains(t, out, "(local i32 i32)")
	require.Contains(t, out, "nop")
}
