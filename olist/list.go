// Package olist provides an ordered collection with contiguous integer
// indices and a cooperative cursor-based traversal protocol.
//
// A List keeps its items under indices 0..Len()-1 with no gaps: removing an
// item shifts every later item down by one. Presence and value are distinct
// concepts throughout the package - a slot holding a zero value or nil is a
// present slot, and only a missing slot reads as absent.
package olist

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrOutOfBounds is the single failure the package reports. Get, Set,
// Remove, Current and Ref wrap it whenever the referenced index has no
// present slot. Check with errors.Is.
var ErrOutOfBounds = errors.New("index out of bounds")

// List is a mutable ordered collection of T.
//
// A List carries one shared traversal cursor (Rewind, Advance, Valid,
// Current, Key), so only a single cursor traversal may be in progress per
// instance at a time. Independent or nested traversals should range over
// All or Values instead, which carry their own position.
//
// A List is not safe for concurrent use; callers sharing one across
// goroutines must provide their own synchronization.
type List[T any] struct {
	items  []T
	cursor int

	// Stable-handle bookkeeping, see ref.go. The id table is built lazily
	// on the first Ref call and kept parallel to items afterwards.
	ids    []uint64
	nextID uint64
	refs   refTable[T]
}

// New creates a List holding the given items in order. Zero values and nils
// are stored as real items, not skipped.
func New[T any](items ...T) *List[T] {
	l := &List[T]{}
	if len(items) > 0 {
		l.items = append(l.items, items...)
	}
	return l
}

// FromMap creates a List from an integer-keyed map. The keys themselves are
// discarded: values are re-keyed 0..n-1 in ascending order of their original
// keys, so sparse, negative or otherwise non-contiguous keys normalize away.
func FromMap[T any](m map[int]T) *List[T] {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	l := &List[T]{}
	for _, k := range keys {
		l.items = append(l.items, m[k])
	}
	return l
}

// Collect drains seq into a new List, preserving order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	for v := range seq {
		l.items = append(l.items, v)
	}
	return l
}

// Len returns the number of stored items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Has reports whether a slot is present at index.
func (l *List[T]) Has(index int) bool {
	return index >= 0 && index < len(l.items)
}

// Get returns the item at index, or ErrOutOfBounds if the slot is absent.
func (l *List[T]) Get(index int) (T, error) {
	if !l.Has(index) {
		var zero T
		return zero, fmt.Errorf("%w: get %d with len %d", ErrOutOfBounds, index, len(l.items))
	}
	return l.items[index], nil
}

// Set overwrites the item at index, or returns ErrOutOfBounds if the slot
// is absent. Set never grows the list; use Add for that.
func (l *List[T]) Set(index int, item T) error {
	if !l.Has(index) {
		return fmt.Errorf("%w: set %d with len %d", ErrOutOfBounds, index, len(l.items))
	}
	l.items[index] = item
	return nil
}

// Add appends item at index Len(). Existing indices are unaffected.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
	if l.refs != nil {
		l.ids = append(l.ids, l.newID())
	}
}

// Remove deletes the slot at index and shifts every later item down by one,
// keeping indices contiguous from 0. Returns ErrOutOfBounds, with the list
// unchanged, if the slot is absent.
//
// The shared cursor is deliberately left where it was: removing at or before
// the cursor mid-traversal changes which item the cursor references, and the
// caller owns that adjustment. Refs to the removed item go dead; refs to
// other items stay live across the reindex.
func (l *List[T]) Remove(index int) error {
	if !l.Has(index) {
		return fmt.Errorf("%w: remove %d with len %d", ErrOutOfBounds, index, len(l.items))
	}
	if l.refs != nil {
		l.dropRef(l.ids[index])
		l.ids = append(l.ids[:index], l.ids[index+1:]...)
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Clear removes every item and resets the cursor to 0. All outstanding refs
// go dead.
func (l *List[T]) Clear() {
	if l.refs != nil {
		for _, id := range l.ids {
			l.dropRef(id)
		}
		l.ids = nil
	}
	l.items = nil
	l.cursor = 0
}

// ToSlice returns a snapshot of the items in order. Mutating the returned
// slice does not affect the list.
func (l *List[T]) ToSlice() []T {
	return slices.Clone(l.items)
}
