package olist

import (
	"fmt"
	"iter"
)

// Rewind resets the shared cursor to the first slot. It may be called at
// any time, including mid-traversal, to restart iteration.
func (l *List[T]) Rewind() {
	l.cursor = 0
}

// Advance moves the shared cursor one slot forward. There is no bounds
// check: advancing past the end is legal and simply makes Valid false until
// the next Rewind.
func (l *List[T]) Advance() {
	l.cursor++
}

// Valid reports whether a slot is present at the cursor. This is a presence
// check, not a value check: a slot holding nil or a zero value is still
// valid. The cursor sitting at Len() means the traversal is done.
func (l *List[T]) Valid() bool {
	return l.cursor < len(l.items)
}

// Key returns the cursor position. During a traversal this is the index of
// the item Current returns.
func (l *List[T]) Key() int {
	return l.cursor
}

// Current returns the item at the cursor, or ErrOutOfBounds when the cursor
// is past the end.
func (l *List[T]) Current() (T, error) {
	if !l.Valid() {
		var zero T
		return zero, fmt.Errorf("%w: cursor at %d with len %d", ErrOutOfBounds, l.cursor, len(l.items))
	}
	return l.items[l.cursor], nil
}

// All returns an index/value iterator over the list. Each range loop gets
// its own position, so All traversals nest freely and never touch the
// shared cursor.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(l.items); i++ {
			if !yield(i, l.items[i]) {
				return
			}
		}
	}
}

// Values returns a value-only iterator over the list, independent of the
// shared cursor.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(l.items); i++ {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}
