package objects

import (
	"github.com/hasbyte1/go-underscore/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Key selection
//
// Key lists may mix single keys and slices of keys; slices are unnested one
// level so both of these pick the same keys:
//
//	Pick(u, "name", "age")
//	Pick(u, []string{"name", "age"})
// ─────────────────────────────────────────────────────────────────────────────

// Has reports whether obj has an own key, or, when path is a slice, whether
// every key of the path exists while walking down from obj.
func Has(obj, path any) bool {
	if !value.IsSequenceValue(path) {
		return value.Has(obj, path)
	}
	segments := value.ViewOf(path).Values()
	if len(segments) == 0 {
		return false
	}
	cur := obj
	for _, seg := range segments {
		next, ok := value.Lookup(cur, seg)
		if !ok {
			return false
		}
		cur = next
	}
	return true
}

// Pick returns a copy of obj holding only the listed keys that exist.
func Pick(obj any, keys ...any) *value.Object {
	out := value.NewObject()
	for _, k := range flattenKeys(keys) {
		if v, ok := value.Lookup(obj, k); ok {
			out.Set(value.ToKey(k), v)
		}
	}
	return out
}

// Omit returns a copy of obj without the listed keys.
func Omit(obj any, keys ...any) *value.Object {
	drop := make(map[string]struct{})
	for _, k := range flattenKeys(keys) {
		drop[value.ToKey(k)] = struct{}{}
	}
	v := mapping(obj)
	out := value.NewObject()
	for i := 0; i < v.Len(); i++ {
		name := value.ToKey(v.Key(i))
		if _, skip := drop[name]; !skip {
			out.Set(name, v.At(i))
		}
	}
	return out
}

// Extend copies every own key of each source into dst, later sources
// overwriting earlier ones, and returns dst. A nil dst is allocated.
func Extend(dst *value.Object, sources ...any) *value.Object {
	if dst == nil {
		dst = value.NewObject()
	}
	for _, src := range sources {
		v := mapping(src)
		for i := 0; i < v.Len(); i++ {
			dst.Set(value.ToKey(v.Key(i)), v.At(i))
		}
	}
	return dst
}

// Defaults fills keys of dst that are missing or [value.Undefined] from the
// sources, first source winning, and returns dst.
func Defaults(dst *value.Object, sources ...any) *value.Object {
	if dst == nil {
		dst = value.NewObject()
	}
	for _, src := range sources {
		v := mapping(src)
		for i := 0; i < v.Len(); i++ {
			name := value.ToKey(v.Key(i))
			if cur, ok := dst.Get(name); !ok || value.IsUndefined(cur) {
				dst.Set(name, v.At(i))
			}
		}
	}
	return dst
}

func flattenKeys(keys []any) []any {
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		if value.IsSequenceValue(k) {
			out = append(out, value.ViewOf(k).Values()...)
			continue
		}
		out = append(out, k)
	}
	return out
}
