// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// DecodeModule reads the whole module into the typed tree. Errors accumulate
// in errs; a damaged section leaves its vector short but does not stop the
// remaining sections. The returned tree borrows spans from data.
func DecodeModule(data []byte, f wasm.Features, errs *ErrorList) (*wasm.Module, bool) {
	sections, ok := ReadModule(data, f, errs)
	if !ok {
		return nil, false
	}

	module := &wasm.Module{}
	for {
		section, ok := sections.Next()
		if !ok {
			break
		}
		if section.Value.IsCustom() {
			module.Customs = append(module.Customs,
				wasm.MakeAt(section.Span, *section.Value.Custom))
			continue
		}
		known := *section.Value.Known
		switch known.ID {
		case wasm.SectionType:
			if seq, ok := ReadTypeSection(known, f, errs); ok {
				module.Types = seq.Collect()
			}
		case wasm.SectionImport:
			if seq, ok := ReadImportSection(known, f, errs); ok {
				module.Imports = seq.Collect()
			}
		case wasm.SectionFunction:
			if seq, ok := ReadFunctionSection(known, f, errs); ok {
				module.Functions = seq.Collect()
			}
		case wasm.SectionTable:
			if seq, ok := ReadTableSection(known, f, errs); ok {
				module.Tables = seq.Collect()
			}
		case wasm.SectionMemory:
			if seq, ok := ReadMemorySection(known, f, errs); ok {
				module.Memories = seq.Collect()
			}
		case wasm.SectionGlobal:
			if seq, ok := ReadGlobalSection(known, f, errs); ok {
				module.Globals = seq.Collect()
			}
		case wasm.SectionExport:
			if seq, ok := ReadExportSection(known, f, errs); ok {
				module.Exports = seq.Collect()
			}
		case wasm.SectionStart:
			if start, ok := ReadStartSection(known, f, errs); ok {
				module.Start = &start
			}
		case wasm.SectionElement:
			if seq, ok := ReadElementSection(known, f, errs); ok {
				module.Elements = seq.Collect()
			}
		case wasm.SectionCode:
			if seq, ok := ReadCodeSection(known, f, errs); ok {
				module.Codes = seq.Collect()
			}
		case wasm.SectionData:
			if seq, ok := ReadDataSection(known, f, errs); ok {
				module.Data = seq.Collect()
			}
		case wasm.SectionDataCount:
			if count, ok := ReadDataCountSection(known, f, errs); ok {
				module.DataCount = &count
			}
		case wasm.SectionEvent:
			if seq, ok := ReadEventSection(known, f, errs); ok {
				module.Events = seq.Collect()
			}
		}
	}
	return module, true
}
