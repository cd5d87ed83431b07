package collections

import (
	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/value"
)

// Policy folds one element, classified under key, into the result.
type Policy[R any] func(result R, v, key any) R

// Aggregate classifies every element with spec and folds it into result
// with policy, in traversal order.
func Aggregate[R any](obj, spec, context any, result R, policy Policy[R]) R {
	cb := iteratee.Normalize(spec, context, iteratee.ArityThree)
	v := value.ViewOf(obj)
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		result = policy(result, item, cb(item, v.Key(i), obj))
	}
	return result
}

// GroupBy groups elements under the key spec computes for them. Each group
// is a []any in traversal order; group keys are coerced with [value.ToKey],
// so an undefined key becomes "undefined".
func GroupBy(obj, spec, context any) *value.Object {
	return Aggregate(obj, spec, context, value.NewObject(), func(result *value.Object, v, key any) *value.Object {
		k := value.ToKey(key)
		group, _ := result.Get(k)
		items, _ := group.([]any)
		result.Set(k, append(items, v))
		return result
	})
}

// IndexBy maps each computed key to its element; later elements win.
func IndexBy(obj, spec, context any) *value.Object {
	return Aggregate(obj, spec, context, value.NewObject(), func(result *value.Object, v, key any) *value.Object {
		result.Set(value.ToKey(key), v)
		return result
	})
}

// CountBy counts the elements under each computed key.
func CountBy(obj, spec, context any) *value.Object {
	return Aggregate(obj, spec, context, value.NewObject(), func(result *value.Object, _, key any) *value.Object {
		k := value.ToKey(key)
		n, _ := result.Get(k)
		count, _ := n.(int)
		result.Set(k, count+1)
		return result
	})
}

// Partition splits elements into those whose computed value is truthy and
// the rest, each in traversal order.
func Partition(obj, spec, context any) (pass, fail []any) {
	halves := Aggregate(obj, spec, context, [2][]any{{}, {}}, func(result [2][]any, v, key any) [2][]any {
		if value.Truthy(key) {
			result[0] = append(result[0], v)
		} else {
			result[1] = append(result[1], v)
		}
		return result
	})
	return halves[0], halves[1]
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToArray copies the elements of obj into a new slice: sequence elements
// (runes, for strings) or mapping values. Falsy values give an empty slice.
func ToArray(obj any) []any {
	if !value.Truthy(obj) {
		return []any{}
	}
	return value.ViewOf(obj).Values()
}

// Size returns the element count of a sequence or the key count of a
// mapping; anything else has size 0.
func Size(obj any) int {
	return value.ViewOf(obj).Len()
}
