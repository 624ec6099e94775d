package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-lowdash/arr"
)

// makeInts creates a []int of size n for benchmarks.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkUniq(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Uniq(items)
	}
}

func BenchmarkIntersection(b *testing.B) {
	items := makeInts(10_000)
	other := arr.Skip(items, 5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Intersection(items, other)
	}
}

func BenchmarkFlatten(b *testing.B) {
	nested := make([]any, 0, 1_000)
	for i := 0; i < 1_000; i++ {
		nested = append(nested, []any{i, []any{i, i}})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Flatten(nested)
	}
}

func BenchmarkShuffle(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Shuffle(items)
	}
}
