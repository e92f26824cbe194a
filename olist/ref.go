package olist

import (
	"fmt"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

// refTable maps per-element ids to outstanding handles. Weak pointers keep
// an unused handle collectable without an explicit release.
type refTable[T any] = *intmap.Map[uint64, weak.Pointer[Ref[T]]]

// Ref is a stable handle to one element of a List. A bare index stops
// naming the same element as soon as Remove reindexes the items after it;
// a Ref keeps following its element and only goes dead when that element
// is removed or the list is cleared.
type Ref[T any] struct {
	id   uint64
	list *List[T]
}

// Ref returns a stable handle for the slot at index, or ErrOutOfBounds if
// the slot is absent. Calling Ref twice for the same live slot returns the
// same *Ref.
func (l *List[T]) Ref(index int) (*Ref[T], error) {
	if !l.Has(index) {
		return nil, fmt.Errorf("%w: ref %d with len %d", ErrOutOfBounds, index, len(l.items))
	}
	l.ensureIDs()

	id := l.ids[index]

	// Check if we already have a handle for this element
	if weakPtr, ok := l.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref, nil
		}
		// Weak pointer is dead, remove it
		l.refs.Del(id)
	}

	ref := &Ref[T]{id: id, list: l}
	l.refs.Put(id, weak.Make(ref))
	return ref, nil
}

// ensureIDs builds the per-element id table on first use. Ids start at 1 so
// that 0 always means "dead handle".
func (l *List[T]) ensureIDs() {
	if l.refs != nil {
		return
	}
	l.refs = intmap.New[uint64, weak.Pointer[Ref[T]]](16)
	l.ids = make([]uint64, len(l.items))
	for i := range l.ids {
		l.ids[i] = l.newID()
	}
}

func (l *List[T]) newID() uint64 {
	l.nextID++
	return l.nextID
}

// dropRef marks the handle for id as dead and forgets it.
func (l *List[T]) dropRef(id uint64) {
	if weakPtr, ok := l.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.id = 0
			ref.list = nil
		}
		l.refs.Del(id)
	}
}

// Index reports the element's current position in the list. ok is false
// once the element has been removed or the handle invalidated.
func (r *Ref[T]) Index() (int, bool) {
	if r == nil || r.id == 0 || r.list == nil {
		return -1, false
	}
	idx := slices.Index(r.list.ids, r.id)
	if idx < 0 {
		return -1, false
	}
	return idx, true
}

// Live reports whether the handle still points at a present element.
func (r *Ref[T]) Live() bool {
	_, ok := r.Index()
	return ok
}

// Get returns the referenced item, or ErrOutOfBounds if the handle is dead.
func (r *Ref[T]) Get() (T, error) {
	idx, ok := r.Index()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: dead ref", ErrOutOfBounds)
	}
	return r.list.items[idx], nil
}

// Set overwrites the referenced item in place, or returns ErrOutOfBounds if
// the handle is dead.
func (r *Ref[T]) Set(item T) error {
	idx, ok := r.Index()
	if !ok {
		return fmt.Errorf("%w: dead ref", ErrOutOfBounds)
	}
	r.list.items[idx] = item
	return nil
}

// Invalidate detaches the handle without touching the element. It returns
// false if the handle was already dead.
func (r *Ref[T]) Invalidate() bool {
	if r == nil || r.id == 0 {
		return false
	}
	if r.list != nil && r.list.refs != nil {
		r.list.refs.Del(r.id)
	}
	r.id = 0
	r.list = nil
	return true
}
