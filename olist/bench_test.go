package olist_test

import (
	"testing"

	"github.com/plus3/olist/olist"
)

func BenchmarkAdd(b *testing.B) {
	l := olist.New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(i)
	}
}

func BenchmarkGet(b *testing.B) {
	l := olist.New[int]()
	for i := 0; i < 1024; i++ {
		l.Add(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(i & 1023)
	}
}

func BenchmarkCursorTraversal(b *testing.B) {
	l := olist.New[int]()
	for i := 0; i < 1024; i++ {
		l.Add(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int
		for l.Rewind(); l.Valid(); l.Advance() {
			v, _ := l.Current()
			sum += v
		}
		_ = sum
	}
}

func BenchmarkValuesTraversal(b *testing.B) {
	l := olist.New[int]()
	for i := 0; i < 1024; i++ {
		l.Add(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int
		for v := range l.Values() {
			sum += v
		}
		_ = sum
	}
}

func BenchmarkRemoveLast(b *testing.B) {
	l := olist.New[int]()
	for i := 0; i < b.N; i++ {
		l.Add(i)
	}

	b.ResetTimer()
	for i := b.N - 1; i >= 0; i-- {
		_ = l.Remove(i)
	}
}

func BenchmarkRefResolve(b *testing.B) {
	l := olist.New[int]()
	for i := 0; i < 1024; i++ {
		l.Add(i)
	}
	ref, _ := l.Ref(512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ref.Get()
	}
}
