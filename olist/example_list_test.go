package olist_test

import (
	"errors"
	"fmt"

	"github.com/plus3/olist/olist"
)

// ExampleList demonstrates the basic API: construction, counting,
// bounds-checked access and mutation. Indices are always the contiguous
// range 0..Len()-1; removing an item closes the gap it leaves.
func ExampleList() {
	l := olist.New("alpha", "beta", "gamma")

	l.Add("delta")
	fmt.Println("len:", l.Len())

	item, _ := l.Get(3)
	fmt.Println("last:", item)

	_ = l.Remove(1)
	fmt.Println("after remove:", l.ToSlice())

	if err := l.Remove(99); errors.Is(err, olist.ErrOutOfBounds) {
		fmt.Println("remove 99: out of bounds")
	}

	// Output:
	// len: 4
	// last: delta
	// after remove: [alpha gamma delta]
	// remove 99: out of bounds
}

// ExampleFromMap shows key normalization: input keys are discarded and the
// values re-keyed 0..n-1 in ascending order of the original keys.
func ExampleFromMap() {
	l := olist.FromMap(map[int]string{
		12: "second",
		-3: "first",
		40: "third",
	})

	for i, v := range l.All() {
		fmt.Println(i, v)
	}

	// Output:
	// 0 first
	// 1 second
	// 2 third
}

// ExampleList_cursor walks a list with the shared cursor protocol. Valid is
// a presence check, so a stored nil is visited like any other item rather
// than ending the traversal.
func ExampleList_cursor() {
	l := olist.New[any]("x", nil, "z")

	for l.Rewind(); l.Valid(); l.Advance() {
		item, _ := l.Current()
		fmt.Printf("%d: %v\n", l.Key(), item)
	}

	// Output:
	// 0: x
	// 1: <nil>
	// 2: z
}

// ExampleList_Ref shows stable handles. The ref keeps following its element
// while earlier removals shift indices, and goes dead only when the element
// itself is removed.
func ExampleList_Ref() {
	l := olist.New("a", "b", "c")

	ref, _ := l.Ref(2)

	_ = l.Remove(0)
	idx, _ := ref.Index()
	fmt.Println("index now:", idx)

	_ = l.Remove(idx)
	fmt.Println("live:", ref.Live())

	// Output:
	// index now: 1
	// live: false
}

// ExampleFind looks an item up by attribute through the Collection
// contract, the pattern wrapper types use for their own query methods.
func ExampleFind() {
	l := olist.New("pear", "plum", "fig")

	idx, item, ok := olist.Find[string](l, func(s string) bool {
		return len(s) == 3
	})
	fmt.Println(idx, item, ok)

	// Output:
	// 2 fig true
}
