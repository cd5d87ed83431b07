package arr

import (
	"math"

	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, or [value.Undefined] when array is empty
// or not sequence-like.
func First(array any) any {
	v := sequence(array)
	if v.Len() == 0 {
		return value.Undefined
	}
	return v.At(0)
}

// FirstN returns the first n elements.
func FirstN(array any, n int) []any {
	v := sequence(array)
	return slice(v, 0, clamp(n, v.Len()))
}

// Initial returns everything but the last n elements (default 1).
func Initial(array any, n ...int) []any {
	v := sequence(array)
	return slice(v, 0, clamp(v.Len()-count(n), v.Len()))
}

// Last returns the last element, or [value.Undefined] when array is empty or
// not sequence-like.
func Last(array any) any {
	v := sequence(array)
	if v.Len() == 0 {
		return value.Undefined
	}
	return v.At(v.Len() - 1)
}

// LastN returns the last n elements.
func LastN(array any, n int) []any {
	v := sequence(array)
	return slice(v, clamp(v.Len()-n, v.Len()), v.Len())
}

// Rest returns everything but the first n elements (default 1). A negative
// n keeps the last -n elements.
func Rest(array any, n ...int) []any {
	v := sequence(array)
	start := count(n)
	if start < 0 {
		start += v.Len()
	}
	return slice(v, clamp(start, v.Len()), v.Len())
}

func count(n []int) int {
	if len(n) == 0 {
		return 1
	}
	return n[0]
}

func clamp(n, hi int) int {
	return min(max(n, 0), hi)
}

func slice(v value.View, lo, hi int) []any {
	if hi < lo {
		hi = lo
	}
	out := make([]any, hi-lo)
	for i := range out {
		out[i] = v.At(lo + i)
	}
	return out
}

// Chunk splits array into consecutive groups of size. The last group may
// hold fewer elements. A size below 1 yields no groups.
func Chunk(array any, size int) [][]any {
	v := sequence(array)
	if size < 1 || v.Len() == 0 {
		return [][]any{}
	}
	chunks := make([][]any, 0, (v.Len()+size-1)/size)
	for i := 0; i < v.Len(); i += size {
		chunks = append(chunks, slice(v, i, min(i+size, v.Len())))
	}
	return chunks
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & flattening
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns the truthy elements of array.
func Compact(array any) []any {
	v := sequence(array)
	out := make([]any, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if item := v.At(i); value.Truthy(item) {
			out = append(out, item)
		}
	}
	return out
}

// Flatten unnests slices and arrays found in array, recursively unless
// shallow is set, in which case only one level is removed.
func Flatten(array any, shallow bool) []any {
	return flatten(array, shallow, false, make([]any, 0))
}

// flatten appends the elements of input to out. strict drops elements that
// are not themselves slices.
func flatten(input any, shallow, strict bool, out []any) []any {
	v := sequence(input)
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		switch {
		case value.IsSequenceValue(item) && shallow:
			out = append(out, sequence(item).Values()...)
		case value.IsSequenceValue(item):
			out = flatten(item, false, strict, out)
		case !strict:
			out = append(out, item)
		}
	}
	return out
}

// Without returns array minus every element strictly equal to one of values.
func Without(array any, values ...any) []any {
	return Difference(array, values)
}

// Difference returns the elements of array present in none of others.
func Difference(array any, others ...any) []any {
	rest := flatten(others, true, true, make([]any, 0))
	v := sequence(array)
	out := make([]any, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if item := v.At(i); !includes(rest, item) {
			out = append(out, item)
		}
	}
	return out
}

// Uniq returns array without duplicates, keeping first occurrences. When
// spec is non-nil, uniqueness is decided on the value it computes. With
// [Sorted], only neighbouring elements are compared.
func Uniq(array, spec any, opts ...SearchOption) []any {
	o := newSearchOptions(opts)
	var key iteratee.Callback
	if spec != nil {
		key = iteratee.Normalize(spec, nil, iteratee.ArityThree)
	}
	v := sequence(array)
	src := v.Source()
	out := make([]any, 0, v.Len())
	var seen []any
	var last any
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		computed := item
		if key != nil {
			computed = key(item, i, src)
		}
		switch {
		case o.sorted:
			if i == 0 || !value.StrictEqual(last, computed) {
				out = append(out, item)
			}
			last = computed
		case key != nil:
			if !includes(seen, computed) {
				seen = append(seen, computed)
				out = append(out, item)
			}
		case !includes(out, item):
			out = append(out, item)
		}
	}
	return out
}

// Union returns the distinct elements of every sequence in arrays, in first
// encounter order. Arguments that are not slices are ignored.
func Union(arrays ...any) []any {
	return Uniq(flatten(arrays, true, true, make([]any, 0)), nil)
}

// Intersection returns the distinct elements of array present in every one
// of others.
func Intersection(array any, others ...any) []any {
	lists := make([][]any, len(others))
	for i, other := range others {
		lists[i] = sequence(other).Values()
	}
	v := sequence(array)
	out := make([]any, 0)
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		if includes(out, item) {
			continue
		}
		shared := true
		for _, list := range lists {
			if !includes(list, item) {
				shared = false
				break
			}
		}
		if shared {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Unzip regroups a sequence of sequences by position: the i-th result holds
// the i-th element of every input, [value.Undefined] where an input is short.
func Unzip(array any) [][]any {
	v := sequence(array)
	rows := v.Values()
	n := 0
	for _, row := range rows {
		n = max(n, sequence(row).Len())
	}
	out := make([][]any, n)
	for i := range out {
		col := make([]any, len(rows))
		for j, row := range rows {
			col[j] = value.Get(row, i)
		}
		out[i] = col
	}
	return out
}

// Zip merges the arrays position by position; see [Unzip].
func Zip(arrays ...any) [][]any {
	return Unzip(arrays)
}

// Object builds an object from a list of [key, value] pairs, or from a list
// of keys and a parallel list of values when values is non-nil. Later
// duplicate keys overwrite earlier ones.
func Object(list, values any) *value.Object {
	v := sequence(list)
	out := value.NewObject()
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		if values != nil {
			out.Set(value.ToKey(item), value.Get(values, i))
			continue
		}
		out.Set(value.ToKey(value.Get(item, 0)), value.Get(item, 1))
	}
	return out
}

// Number is the constraint accepted by [Range].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range returns an arithmetic progression. With one bound it counts from 0
// up to (excluding) stop; with two from start to stop; the third bound is
// the step, which defaults to 1 or -1 depending on direction.
//
//	Range(4)         // → [0 1 2 3]
//	Range(1, 10, 3)  // → [1 4 7]
//	Range(0, -3)     // → [0 -1 -2]
func Range[N Number](bounds ...N) []N {
	var start, stop, step N
	switch len(bounds) {
	case 0:
		return []N{}
	case 1:
		stop = bounds[0]
	case 2:
		start, stop = bounds[0], bounds[1]
	default:
		start, stop, step = bounds[0], bounds[1], bounds[2]
	}
	fstep := float64(step)
	if step == 0 {
		fstep = 1
		if stop < start {
			fstep = -1
		}
	}
	n := int(math.Max(math.Ceil((float64(stop)-float64(start))/fstep), 0))
	out := make([]N, n)
	cur := float64(start)
	for i := range out {
		out[i] = N(cur)
		cur += fstep
	}
	return out
}
