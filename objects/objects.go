package objects

import (
	"reflect"
	"sort"

	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/value"
)

// mapping returns the key-ordered view of obj. Strings and scalars have no
// own keys here.
func mapping(obj any) value.View {
	if obj == nil || reflect.TypeOf(obj).Kind() == reflect.String {
		return value.View{}
	}
	return value.KeyedViewOf(obj)
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumeration
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the own enumerable keys of obj. Sequences report their
// indices.
func Keys(obj any) []any {
	v := mapping(obj)
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Key(i)
	}
	return out
}

// Values returns the values of obj in key order.
func Values(obj any) []any {
	return mapping(obj).Values()
}

// Pairs returns obj as a list of [Pair]s in key order.
func Pairs(obj any) []Pair {
	v := mapping(obj)
	out := make([]Pair, v.Len())
	for i := range out {
		out[i] = Pair{Key: v.Key(i), Value: v.At(i)}
	}
	return out
}

// Invert swaps keys and values. Values are coerced to property keys; when
// several keys share a value the last one wins.
func Invert(obj any) *value.Object {
	v := mapping(obj)
	out := value.NewObject()
	for i := 0; i < v.Len(); i++ {
		out.Set(value.ToKey(v.At(i)), v.Key(i))
	}
	return out
}

// Functions returns the sorted names of obj's func-valued keys. Structs and
// struct pointers also report the exported methods of their type; an
// [*value.Object] reports its keys only.
func Functions(obj any) []string {
	if value.IsAbsent(obj) {
		return []string{}
	}
	seen := make(map[string]struct{})
	names := make([]string, 0)
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	v := mapping(obj)
	for i := 0; i < v.Len(); i++ {
		if value.IsCallable(v.At(i)) {
			add(value.ToKey(v.Key(i)))
		}
	}
	if hasMethodSet(obj) {
		t := reflect.TypeOf(obj)
		for i := 0; i < t.NumMethod(); i++ {
			add(t.Method(i).Name)
		}
	}
	sort.Strings(names)
	return names
}

// hasMethodSet reports whether obj's methods count as its functions.
func hasMethodSet(obj any) bool {
	if _, ok := obj.(*value.Object); ok {
		return false
	}
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// FindKey returns the first key whose value satisfies predicate, or
// [value.Undefined].
func FindKey(obj, predicate, context any) any {
	pred := iteratee.Normalize(predicate, context, iteratee.ArityThree)
	v := mapping(obj)
	for i := 0; i < v.Len(); i++ {
		if value.Truthy(pred(v.At(i), v.Key(i), obj)) {
			return v.Key(i)
		}
	}
	return value.Undefined
}

// MapObject transforms each value of obj with spec, keeping the keys.
func MapObject(obj, spec, context any) *value.Object {
	cb := iteratee.Normalize(spec, context, iteratee.ArityThree)
	v := mapping(obj)
	out := value.NewObject()
	for i := 0; i < v.Len(); i++ {
		k := v.Key(i)
		out.Set(value.ToKey(k), cb(v.At(i), k, obj))
	}
	return out
}

// Matcher returns a predicate testing for every key/value pair of attrs.
func Matcher(attrs any) iteratee.Callback { return iteratee.Matcher(attrs) }

// IsMatch reports whether obj carries every key/value pair of attrs.
func IsMatch(obj, attrs any) bool { return iteratee.IsMatch(obj, attrs) }
