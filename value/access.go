package value

import (
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Keys lists the own enumerable keys of c: insertion order for [*Object],
// natural ascending order for Go maps, declaration order for struct fields,
// and the indices 0..n-1 for slices, arrays, strings and [Sequence]s.
// Non-collections have no keys.
func Keys(c any) []any {
	switch t := c.(type) {
	case nil, undefined:
		return []any{}
	case *Object:
		if t == nil {
			return []any{}
		}
		out := make([]any, len(t.keys))
		for i, k := range t.keys {
			out[i] = k
		}
		return out
	case string:
		return indices(len([]rune(t)))
	case Sequence:
		return indices(t.Len())
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Map:
		return sortedMapKeys(rv)
	case reflect.Slice, reflect.Array:
		return indices(rv.Len())
	case reflect.String:
		return indices(len([]rune(rv.String())))
	case reflect.Pointer:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
			return indices(rv.Elem().Len())
		}
	}
	if r, ok := newStructReader(c); ok {
		return r.keys()
	}
	return []any{}
}

func indices(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func sortedMapKeys(rv reflect.Value) []any {
	out := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		out = append(out, k.Interface())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c, ok := Compare(out[i], out[j]); ok {
			return c < 0
		}
		return ToKey(out[i]) < ToKey(out[j])
	})
	return out
}

// Get returns c[key]: the own property, field, map entry or element stored
// under key, or [Undefined] when there is none. Sequences also answer the
// "length" key with their length. An absent c yields Undefined.
func Get(c, key any) any {
	v, _ := Lookup(c, key)
	return v
}

// Has reports whether key is an own key of c.
func Has(c, key any) bool {
	_, ok := Lookup(c, key)
	return ok
}

// getter prepares repeated lookups against the same collection, resolving
// struct layout once.
func getter(c any) func(key any) any {
	if r, ok := newStructReader(c); ok {
		return func(key any) any {
			v, _ := r.lookup(key)
			return v
		}
	}
	return func(key any) any { return Get(c, key) }
}

// Lookup combines [Get] and [Has]: it returns c[key] and whether key is an
// own key of c.
func Lookup(c, key any) (any, bool) {
	if IsAbsent(c) {
		return Undefined, false
	}
	switch t := c.(type) {
	case *Object:
		name, ok := key.(string)
		if !ok {
			name = ToKey(key)
		}
		if v, ok := t.Get(name); ok {
			return v, true
		}
		return Undefined, false
	case []any:
		return indexLookup(len(t), key, func(i int) any { return t[i] })
	case string:
		runes := []rune(t)
		return indexLookup(len(runes), key, func(i int) any { return string(runes[i]) })
	case Sequence:
		return indexLookup(t.Len(), key, t.Index)
	}
	rv := reflect.ValueOf(c)
	if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return indexLookup(rv.Len(), key, func(i int) any { return rv.Index(i).Interface() })
	case reflect.String:
		runes := []rune(rv.String())
		return indexLookup(len(runes), key, func(i int) any { return string(runes[i]) })
	case reflect.Map:
		return mapLookup(rv, key)
	}
	if r, ok := newStructReader(c); ok {
		return r.lookup(key)
	}
	return Undefined, false
}

func indexLookup(n int, key any, at func(int) any) (any, bool) {
	if s, ok := key.(string); ok {
		if s == "length" {
			return n, true
		}
		i, err := strconv.Atoi(s)
		if err != nil || strconv.Itoa(i) != s {
			return Undefined, false
		}
		key = i
	}
	i, ok := toInt(key)
	if !ok || i < 0 || i >= n {
		return Undefined, false
	}
	return at(i), true
}

func mapLookup(rv reflect.Value, key any) (any, bool) {
	kv, ok := mapKey(rv.Type().Key(), key)
	if !ok {
		return Undefined, false
	}
	v := rv.MapIndex(kv)
	if !v.IsValid() {
		return Undefined, false
	}
	return v.Interface(), true
}

// mapKey converts key to the key type of a Go map, coercing between strings
// and numbers the way property keys coerce.
func mapKey(kt reflect.Type, key any) (reflect.Value, bool) {
	if key == nil {
		if kt.Kind() == reflect.Interface {
			return reflect.Zero(kt), true
		}
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if kv.Type().AssignableTo(kt) {
		if !kv.Comparable() {
			return reflect.Value{}, false
		}
		if kt.Kind() == reflect.Interface {
			return kv.Convert(kt), true
		}
		return kv, true
	}
	switch kt.Kind() {
	case reflect.String:
		return reflect.ValueOf(ToKey(key)).Convert(kt), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		f, ok := ToFloat(key)
		if !ok {
			s, isString := key.(string)
			if !isString {
				return reflect.Value{}, false
			}
			parsed, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return reflect.Value{}, false
			}
			f = parsed
		}
		if kt.Kind() != reflect.Float32 && kt.Kind() != reflect.Float64 && f != math.Trunc(f) {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(f).Convert(kt), true
	}
	if kv.Type().ConvertibleTo(kt) && kv.Kind() == kt.Kind() {
		return kv.Convert(kt), true
	}
	return reflect.Value{}, false
}
