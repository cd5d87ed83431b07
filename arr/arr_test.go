package arr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/value"
)

// ─── First / Last / Initial / Rest ───────────────────────────────────────────

func TestFirstLast(t *testing.T) {
	assert.Equal(t, 10, arr.First([]int{10, 20, 30}))
	assert.Equal(t, 30, arr.Last([]int{10, 20, 30}))
	assert.Equal(t, value.Undefined, arr.First([]int{}))
	assert.Equal(t, value.Undefined, arr.Last(nil))
	assert.Equal(t, "h", arr.First("hi"))
}

func TestFirstNLastN(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []any{1, 2}, arr.FirstN(xs, 2))
	assert.Equal(t, []any{4, 5}, arr.LastN(xs, 2))
	assert.Equal(t, []any{1, 2, 3, 4, 5}, arr.FirstN(xs, 10))
	assert.Equal(t, []any{1, 2, 3, 4, 5}, arr.LastN(xs, 10))
	assert.Equal(t, []any{}, arr.FirstN(xs, -1))
	assert.Equal(t, []any{}, arr.LastN(xs, 0))
}

func TestInitialRest(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []any{1, 2, 3, 4}, arr.Initial(xs))
	assert.Equal(t, []any{1, 2}, arr.Initial(xs, 3))
	assert.Equal(t, []any{}, arr.Initial(xs, 9))
	assert.Equal(t, []any{2, 3, 4, 5}, arr.Rest(xs))
	assert.Equal(t, []any{4, 5}, arr.Rest(xs, 3))
	assert.Equal(t, []any{}, arr.Rest(xs, 9))
	assert.Equal(t, []any{4, 5}, arr.Rest(xs, -2))
	assert.Equal(t, []any{1, 2, 3, 4, 5}, arr.Rest(xs, -9))
	assert.Equal(t, []any{1, 2, 3, 4, 5}, arr.Rest(xs, 0))
}

// ─── Chunk ───────────────────────────────────────────────────────────────────

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]any{{1, 2}, {3, 4}, {5}}, arr.Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]any{}, arr.Chunk([]int{1, 2}, 0))
	assert.Equal(t, [][]any{}, arr.Chunk([]int{}, 3))
}

// ─── Compact / Flatten ───────────────────────────────────────────────────────

func TestCompact(t *testing.T) {
	got := arr.Compact([]any{0, 1, false, 2, "", 3, nil, value.Undefined, math.NaN(), "a"})
	assert.Equal(t, []any{1, 2, 3, "a"}, got)
}

func TestFlatten(t *testing.T) {
	nested := []any{1, []any{2, []int{3, 4}}, [2]string{"a", "b"}, "cd"}
	assert.Equal(t, []any{1, 2, 3, 4, "a", "b", "cd"}, arr.Flatten(nested, false))
	assert.Equal(t, []any{1, 2, []int{3, 4}, "a", "b", "cd"}, arr.Flatten(nested, true))
}

// ─── Set operations ──────────────────────────────────────────────────────────

func TestWithoutDifference(t *testing.T) {
	assert.Equal(t, []any{2, 3, 4}, arr.Without([]int{1, 2, 1, 0, 3, 1, 4}, 0, 1))
	assert.Equal(t, []any{1, 3, 4}, arr.Difference([]int{1, 2, 3, 4, 5}, []int{5, 2, 10}))
	assert.Equal(t, []any{1}, arr.Difference([]int{1, 2, 3}, []int{2}, []int{3}))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []any{1, 2, 4, 3}, arr.Uniq([]int{1, 2, 1, 4, 1, 3}, nil))
	assert.Equal(t, []any{1, 2, 3}, arr.Uniq([]int{1, 1, 2, 3, 3}, nil, arr.Sorted()))

	nan := arr.Uniq([]any{math.NaN(), math.NaN(), 1}, nil)
	require.Len(t, nan, 2)
	assert.True(t, math.IsNaN(nan[0].(float64)))

	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	first := func(s string) string { return s[:1] }
	assert.Equal(t, []any{"apple", "banana", "cherry"}, arr.Uniq(words, first))
	assert.Equal(t, []any{"apple", "banana", "cherry"}, arr.Uniq(words, first, arr.Sorted()))
}

func TestUnion(t *testing.T) {
	got := arr.Union([]int{1, 2, 3}, []int{101, 2, 1, 10}, []int{2, 1}, 7)
	assert.Equal(t, []any{1, 2, 3, 101, 10}, got)
}

func TestIntersection(t *testing.T) {
	got := arr.Intersection([]int{1, 2, 3, 2}, []int{101, 2, 1, 10}, []int{2, 1})
	assert.Equal(t, []any{1, 2}, got)
	assert.Equal(t, []any{1, 2, 3}, arr.Intersection([]int{1, 2, 3}))
}

// ─── Zip / Unzip / Object ────────────────────────────────────────────────────

func TestZip(t *testing.T) {
	got := arr.Zip([]string{"moe", "larry"}, []int{30, 40}, []bool{true})
	assert.Equal(t, [][]any{{"moe", 30, true}, {"larry", 40, value.Undefined}}, got)
	assert.Equal(t, [][]any{}, arr.Zip())
}

func TestUnzip(t *testing.T) {
	got := arr.Unzip([]any{[]any{"a", 1}, []any{"b", 2}})
	assert.Equal(t, [][]any{{"a", "b"}, {1, 2}}, got)
}

func TestObject(t *testing.T) {
	o := arr.Object([]string{"a", "b", "a"}, []int{1, 2, 3})
	assert.Equal(t, []string{"a", "b"}, o.Keys())
	v, _ := o.Get("a")
	assert.Equal(t, 3, v)

	pairs := arr.Object([]any{[]any{"x", 1}, []any{2, "y"}}, nil)
	assert.Equal(t, []string{"x", "2"}, pairs.Keys())
	v, _ = pairs.Get("2")
	assert.Equal(t, "y", v)
}

// ─── Range ───────────────────────────────────────────────────────────────────

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, arr.Range(4))
	assert.Equal(t, []int{1, 4, 7}, arr.Range(1, 10, 3))
	assert.Equal(t, []int{0, -1, -2}, arr.Range(0, -3))
	assert.Equal(t, []int{}, arr.Range(0))
	assert.Equal(t, []int{}, arr.Range(5, 1, 1))
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, arr.Range(0, 2, 0.5))
}
