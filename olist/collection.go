package olist

// Collection is the contract shared by List and the types built on top of
// it. Concrete collections usually embed *List to inherit the whole
// surface; Current is the one operation a wrapper most often narrows or
// re-exposes for its own element type.
type Collection[T any] interface {
	// Cursor protocol. The cursor is shared per instance: one traversal at
	// a time, reset with Rewind.
	Rewind()
	Current() (T, error)
	Advance()
	Valid() bool
	Key() int

	Len() int
	Add(item T)
	Remove(index int) error
	Has(index int) bool
	Get(index int) (T, error)
	Set(index int, item T) error
	Clear()
	ToSlice() []T
}

// Each walks c from the start with the shared cursor, calling fn for every
// index/item pair until fn returns false or the traversal ends. Callers
// must not nest Each with another cursor traversal of the same collection.
func Each[T any](c Collection[T], fn func(index int, item T) bool) {
	for c.Rewind(); c.Valid(); c.Advance() {
		item, err := c.Current()
		if err != nil {
			return
		}
		if !fn(c.Key(), item) {
			return
		}
	}
}

// Find returns the index and value of the first item satisfying pred.
// It reports false if no item matches.
func Find[T any](c Collection[T], pred func(T) bool) (int, T, bool) {
	for c.Rewind(); c.Valid(); c.Advance() {
		item, err := c.Current()
		if err != nil {
			break
		}
		if pred(item) {
			return c.Key(), item, true
		}
	}
	var zero T
	return -1, zero, false
}

// Index returns the index of the first occurrence of item, or -1 if the
// collection does not contain it.
func Index[T comparable](c Collection[T], item T) int {
	idx, _, ok := Find(c, func(v T) bool { return v == item })
	if !ok {
		return -1
	}
	return idx
}

// Contains reports whether the collection holds item.
func Contains[T comparable](c Collection[T], item T) bool {
	return Index(c, item) >= 0
}
