// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasmbin

import (
	"github.com/dotandev/wasmkit/internal/wasm"
)

// Seq is a count-prefixed lazy sequence of entries parsed on demand from a
// bounded payload window. It is restartable: the starting cursor is kept and
// Reset rewinds to it. A failed entry ends iteration for this sequence; the
// error has already been reported to the sink.
type Seq[T any] struct {
	Count uint32

	read  func(*Cursor) (wasm.At[T], bool)
	start Cursor
	cur   Cursor
	n     uint32
}

// newSeq reads the count prefix and captures the cursor for iteration.
func newSeq[T any](c Cursor, read func(*Cursor) (wasm.At[T], bool)) (*Seq[T], bool) {
	count, ok := c.readCount()
	if !ok {
		return nil, false
	}
	return &Seq[T]{Count: count.Value, read: read, start: c, cur: c}, true
}

// Next parses and returns the next entry.
func (s *Seq[T]) Next() (wasm.At[T], bool) {
	if s.n >= s.Count {
		return wasm.At[T]{}, false
	}
	at, ok := s.read(&s.cur)
	if !ok {
		s.n = s.Count
		return wasm.At[T]{}, false
	}
	s.n++
	return at, true
}

// Reset rewinds the sequence to its first entry.
func (s *Seq[T]) Reset() {
	s.cur = s.start
	s.n = 0
}

// Collect drains the remaining entries into a slice.
func (s *Seq[T]) Collect() []wasm.At[T] {
	out := make([]wasm.At[T], 0, s.Count)
	for {
		at, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, at)
	}
}
