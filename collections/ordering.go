package collections

import (
	"math"
	"sort"

	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Min / Max
// ─────────────────────────────────────────────────────────────────────────────

// Max returns the element with the greatest value, or the greatest computed
// key when spec is given. Ties keep the first occurrence. Elements whose
// value or computed key is absent or NaN are skipped, as are keys that do not
// compare with the running maximum. With no candidate left, Max yields -Inf.
func Max(obj, spec, context any) any {
	return extreme(obj, spec, context, math.Inf(-1), value.Greater)
}

// Min is the mirror of [Max]; with no candidate it yields +Inf.
func Min(obj, spec, context any) any {
	return extreme(obj, spec, context, math.Inf(1), value.Less)
}

// extreme keeps the first candidate and replaces it only with one that is
// strictly better. empty is returned when no element qualifies.
func extreme(obj, spec, context any, empty float64, better func(a, b any) bool) any {
	var cb iteratee.Callback
	if spec != nil {
		cb = iteratee.Normalize(spec, context, iteratee.ArityThree)
	}
	var result, best any = empty, nil
	found := false
	v := value.ViewOf(obj)
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		key := item
		if cb != nil {
			key = cb(item, v.Key(i), obj)
		}
		if value.IsAbsent(key) || value.IsNaN(key) {
			continue
		}
		if !found || better(key, best) {
			result, best, found = item, key, true
		}
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// SortBy
// ─────────────────────────────────────────────────────────────────────────────

type criterion struct {
	value    any
	index    int
	criteria any
}

// SortBy returns the elements ordered by the key spec computes for each of
// them. The sort is stable: equal or incomparable keys keep their original
// relative order. Undefined keys sort after every defined key.
func SortBy(obj, spec, context any) []any {
	cb := iteratee.Normalize(spec, context, iteratee.ArityThree)
	v := value.ViewOf(obj)
	rows := make([]criterion, v.Len())
	for i := range rows {
		item := v.At(i)
		rows[i] = criterion{value: item, index: i, criteria: cb(item, v.Key(i), obj)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return compareCriteria(rows[i], rows[j]) < 0
	})
	out := make([]any, len(rows))
	for i, row := range rows {
		out[i] = row.value
	}
	return out
}

func compareCriteria(left, right criterion) int {
	a, b := left.criteria, right.criteria
	aUndef, bUndef := value.IsUndefined(a), value.IsUndefined(b)
	if !(aUndef && bUndef) && !value.StrictEqual(a, b) {
		if aUndef || value.Greater(a, b) {
			return 1
		}
		if bUndef || value.Less(a, b) {
			return -1
		}
	}
	return left.index - right.index
}
