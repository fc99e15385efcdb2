// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package wat renders decoded function bodies in the WebAssembly text
// format. It is a diagnostic view: the binary codec does the decoding, this
// package only formats the instruction stream with block indentation.
package wat

import (
	"fmt"
	"strings"

	"github.com/dotandev/wasmkit/internal/wasm"
	"github.com/dotandev/wasmkit/internal/wasmbin"
)

const indentStep = "  "

// DisassembleExpression renders the instructions of a raw expression, one
// per line, indented by block depth. Decode errors land in errs with
// offsets absolute to the module buffer and truncate the listing.
func DisassembleExpression(expr wasm.Expression, features wasm.Features, errs *wasmbin.ErrorList) string {
	cursor := wasmbin.NewCursorAt(expr.Data, expr.Offset, errs)
	reader := wasmbin.NewExpressionReader(cursor, features)

	var b strings.Builder
	depth := 1
	for {
		in, ok := reader.Next()
		if !ok {
			break
		}
		switch in.Value.Opcode {
		case wasm.OpEnd, wasm.OpElse, wasm.OpCatch:
			depth--
		}
		if depth < 1 {
			depth = 1
		}
		b.WriteString(strings.Repeat(indentStep, depth))
		b.WriteString(in.Value.String())
		b.WriteByte('\n')
		switch in.Value.Opcode {
		case wasm.OpBlock, wasm.OpLoop, wasm.OpIf, wasm.OpTry, wasm.OpElse, wasm.OpCatch:
			depth++
		}
	}
	return b.String()
}

// DisassembleCode renders one code entry: the locals declaration followed by
// the body.
func DisassembleCode(index int, code wasm.Code, features wasm.Features, errs *wasmbin.ErrorList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "func[%d]:\n", index)
	for _, run := range code.Locals {
		fmt.Fprintf(&b, "%s(local", indentStep)
		for i := uint32(0); i < run.Value.Count; i++ {
			b.WriteByte(' ')
			b.WriteString(run.Value.Type.String())
		}
		b.WriteString(")\n")
	}
	b.WriteString(DisassembleExpression(code.Body, features, errs))
	return b.String()
}
