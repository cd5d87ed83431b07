package value

import "reflect"

type undefined struct{}

// String implements [fmt.Stringer].
func (undefined) String() string { return "undefined" }

// MarshalJSON encodes the sentinel as null.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Undefined is the "missing" sentinel returned by property lookups that find
// nothing. It is the only value of its type, so compare with == or
// [IsUndefined].
var Undefined any = undefined{}

// IsUndefined reports whether v is the [Undefined] sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsAbsent reports whether v is nil, [Undefined] or a typed nil pointer.
// Nil slices and maps are not absent; they are empty collections.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(undefined); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsCallable reports whether v is a non-nil func value.
func IsCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsSequenceValue reports whether v is a Go slice or array (or a pointer to
// an array). Unlike [IsSequenceLike] it does not accept strings, [Sequence]
// implementations or array-like mappings.
func IsSequenceValue(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Array
	}
	return false
}
