// SPDX-License-Identifier: MIT
// Package: lvtopo/simplicial
//
// builder.go - incremental collection of simplices before freezing a Complex.

package simplicial

import (
	"github.com/katalvlaran/lvtopo/simplex"
)

// Builder accumulates simplices (deduplicated by key) and freezes them into
// a Complex. The zero value is not usable; call NewBuilder.
type Builder struct {
	set      map[string]struct{}
	expanded map[string]struct{} // simplices whose full closure is recorded
	order    []simplex.Simplex
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		set:      make(map[string]struct{}),
		expanded: make(map[string]struct{}),
	}
}

// Add records s. Zero simplices and duplicates are ignored.
func (b *Builder) Add(s simplex.Simplex) {
	if s.IsZero() {
		return
	}
	key := s.Key()
	if _, seen := b.set[key]; seen {
		return
	}
	b.set[key] = struct{}{}
	b.order = append(b.order, s)
}

// AddClosure records s and every one of its non-empty faces.
// Complexity: O(f·k) for f new faces of size at most k.
func (b *Builder) AddClosure(s simplex.Simplex) {
	if s.IsZero() {
		return
	}
	key := s.Key()
	if _, done := b.expanded[key]; done {
		return
	}
	b.Add(s)
	for _, f := range s.Boundary() {
		b.AddClosure(f)
	}
	b.expanded[key] = struct{}{}
}

// Len returns the number of distinct simplices recorded so far.
func (b *Builder) Len() int { return len(b.order) }

// Build freezes the recorded simplices into a Complex, validating closure.
func (b *Builder) Build() (*Complex, error) {
	return New(b.order...)
}

func (b *Builder) list() []simplex.Simplex { return b.order }
