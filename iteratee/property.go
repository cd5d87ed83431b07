package iteratee

import (
	"reflect"

	"github.com/hasbyte1/go-underscore/value"
)

// Property returns a Callback reading a single key, or a nested key path
// when keyOrPath is a slice or array.
func Property(keyOrPath any) Callback {
	if value.IsSequenceValue(keyOrPath) {
		path := toPath(keyOrPath)
		return func(v, _, _ any) any { return DeepGet(v, path) }
	}
	return func(v, _, _ any) any {
		if value.IsAbsent(v) {
			return value.Undefined
		}
		return value.Get(v, keyOrPath)
	}
}

// DeepGet walks path from obj. It stops at the first absent intermediate
// value and returns [value.Undefined]. An empty path yields Undefined.
func DeepGet(obj any, path []any) any {
	if len(path) == 0 {
		return value.Undefined
	}
	cur := obj
	for _, key := range path {
		if value.IsAbsent(cur) {
			return value.Undefined
		}
		cur = value.Get(cur, key)
	}
	return cur
}

func toPath(p any) []any {
	if s, ok := p.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Partial match
// ─────────────────────────────────────────────────────────────────────────────

// Matcher returns a predicate reporting whether its argument carries every
// key of attrs with a strictly equal value. The attributes are copied, so
// later mutation of attrs does not affect the predicate.
func Matcher(attrs any) Callback {
	keys := value.Keys(attrs)
	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = value.Get(attrs, k)
	}
	return func(v, _, _ any) any { return match(v, keys, vals) }
}

// IsMatch reports whether obj has every key/value pair of attrs. An empty
// attrs matches anything, including absent objects.
func IsMatch(obj, attrs any) bool {
	keys := value.Keys(attrs)
	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = value.Get(attrs, k)
	}
	return match(obj, keys, vals)
}

func match(obj any, keys, vals []any) bool {
	if len(keys) == 0 {
		return true
	}
	if value.IsAbsent(obj) {
		return false
	}
	for i, k := range keys {
		got, ok := value.Lookup(obj, k)
		if !ok || !value.StrictEqual(got, vals[i]) {
			return false
		}
	}
	return true
}
