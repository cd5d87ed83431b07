package arr

import (
	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/value"
)

// sequence returns the positional view of array. Anything that is not
// sequence-like searches as empty.
func sequence(array any) value.View {
	v := value.ViewOf(array)
	if !v.IsSequence() {
		return value.View{}
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate searches
// ─────────────────────────────────────────────────────────────────────────────

// FindIndex returns the lowest index whose element satisfies predicate, or
// -1. predicate is any iteratee spec (function, key, key path, match spec).
func FindIndex(array, predicate, context any) int {
	return findIndex(sequence(array), iteratee.Normalize(predicate, context, iteratee.ArityThree), 1, 0, -1)
}

// FindLastIndex is [FindIndex] scanning from the end.
func FindLastIndex(array, predicate, context any) int {
	return findIndex(sequence(array), iteratee.Normalize(predicate, context, iteratee.ArityThree), -1, 0, -1)
}

// findIndex scans v within [lo, hi) in direction dir. A negative hi means
// the whole view.
func findIndex(v value.View, pred iteratee.Callback, dir, lo, hi int) int {
	if hi < 0 || hi > v.Len() {
		hi = v.Len()
	}
	src := v.Source()
	i := lo
	if dir < 0 {
		i = hi - 1
	}
	for ; i >= lo && i < hi; i += dir {
		if value.Truthy(pred(v.At(i), i, src)) {
			return i
		}
	}
	return -1
}

// SortedIndex returns the lowest index at which obj could be inserted into
// the ascending array while keeping it sorted. spec (optional) computes the
// sort key of both obj and the elements; it is called with one argument.
func SortedIndex(array, obj, spec, context any) int {
	v := sequence(array)
	key := iteratee.Normalize(spec, context, iteratee.ArityOne)
	target := key(obj, value.Undefined, value.Undefined)
	low, high := 0, v.Len()
	for low < high {
		mid := int(uint(low+high) >> 1)
		if value.Less(key(v.At(mid), value.Undefined, value.Undefined), target) {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// ─────────────────────────────────────────────────────────────────────────────
// Value searches
// ─────────────────────────────────────────────────────────────────────────────

// SearchOption adjusts [IndexOf], [LastIndexOf] and [Uniq].
type SearchOption func(o *searchOptions)

type searchOptions struct {
	from    int
	hasFrom bool
	sorted  bool
}

func newSearchOptions(opts []SearchOption) *searchOptions {
	o := &searchOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// FromIndex starts the search at n. A negative n counts back from the end.
// It takes precedence over [Sorted].
func FromIndex(n int) SearchOption {
	return func(o *searchOptions) {
		o.from = n
		o.hasFrom = true
	}
}

// Sorted declares the array ascending so that [IndexOf] may binary search
// and [Uniq] may compare neighbours only.
func Sorted() SearchOption {
	return func(o *searchOptions) { o.sorted = true }
}

// IndexOf returns the first index whose element strictly equals item, or
// -1. Unlike strict equality, a NaN item finds the first NaN element.
func IndexOf(array, item any, opts ...SearchOption) int {
	v := sequence(array)
	o := newSearchOptions(opts)
	lo, hi := 0, v.Len()
	if o.hasFrom {
		if o.from >= 0 {
			lo = o.from
		} else {
			lo = max(o.from+hi, 0)
		}
	} else if o.sorted && hi > 0 {
		idx := SortedIndex(array, item, nil, nil)
		if idx < hi && value.StrictEqual(v.At(idx), item) {
			return idx
		}
		return -1
	}
	if value.IsNaN(item) {
		return findIndex(v, isNaN, 1, lo, hi)
	}
	for i := lo; i < hi; i++ {
		if value.StrictEqual(v.At(i), item) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index whose element strictly equals item, or
// -1. [FromIndex] bounds the search from above; [Sorted] is ignored.
func LastIndexOf(array, item any, opts ...SearchOption) int {
	v := sequence(array)
	o := newSearchOptions(opts)
	hi := v.Len()
	if o.hasFrom {
		if o.from >= 0 {
			hi = min(o.from+1, hi)
		} else {
			hi = o.from + hi + 1
		}
	}
	if hi <= 0 {
		return -1
	}
	if value.IsNaN(item) {
		return findIndex(v, isNaN, -1, 0, hi)
	}
	for i := hi - 1; i >= 0; i-- {
		if value.StrictEqual(v.At(i), item) {
			return i
		}
	}
	return -1
}

func isNaN(v, _, _ any) any { return value.IsNaN(v) }

// includes reports whether list holds v, treating NaN as equal to NaN.
func includes(list []any, v any) bool {
	nan := value.IsNaN(v)
	for _, item := range list {
		if value.StrictEqual(item, v) || nan && value.IsNaN(item) {
			return true
		}
	}
	return false
}
