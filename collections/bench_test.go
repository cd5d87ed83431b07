package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/value"
)

// makeInts creates a slice of size n for benchmarks.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkFilter(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Filter(items, func(v any) bool { return v.(int)%2 == 0 }, nil)
	}
}

func BenchmarkMap_Reflect(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(items, func(n int) int { return n * 2 }, nil)
	}
}

func BenchmarkSortBy(b *testing.B) {
	items := makeInts(10_000)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.SortBy(items, nil, nil)
	}
}

func BenchmarkGroupBy_Mapping(b *testing.B) {
	rows := make([]any, 1_000)
	for i := range rows {
		rows[i] = value.ObjectOf("id", i, "bucket", i%10)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.GroupBy(rows, "bucket", nil)
	}
}

func BenchmarkReduce(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.Reduce(items, func(memo, v any) any { return memo.(int) + v.(int) }, 0)
	}
}
