package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Numbers
// ─────────────────────────────────────────────────────────────────────────────

// ToFloat converts any Go numeric kind to float64.
// Returns false when v is not a number.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	if i, ok := v.(int); ok {
		return i, true
	}
	f, ok := ToFloat(v)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// IsNaN reports whether v is a floating-point NaN.
func IsNaN(v any) bool {
	f, ok := ToFloat(v)
	return ok && math.IsNaN(f)
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality & truthiness
// ─────────────────────────────────────────────────────────────────────────────

// StrictEqual reports whether a and b are identical without any coercion
// beyond numeric kinds: 1 (int) equals 1.0 (float64), NaN never equals
// itself, strings and other comparable values compare with ==, and maps,
// slices, funcs and pointers compare by identity. nil and [Undefined] are
// distinct.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := ToFloat(a); ok {
		fb, ok := ToFloat(b)
		return ok && fa == fb
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	if !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return ra.Equal(rb)
}

// Truthy reports the truthiness of v: nil, [Undefined], false, numeric zero,
// NaN, the empty string and typed nil pointers are falsy; everything else,
// including empty slices and maps, is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case undefined:
		return false
	}
	if f, ok := ToFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Compare orders a against b, returning -1, 0 or +1. Numbers compare
// numerically across Go kinds, strings lexicographically, bools as 0/1 when
// both sides are bools, and [time.Time] chronologically. The second result
// is false when the pair is incomparable (mixed kinds, NaN, nil, Undefined,
// composite values); every relation on such a pair is false.
func Compare(a, b any) (int, bool) {
	if fa, ok := ToFloat(a); ok {
		fb, ok := ToFloat(b)
		if !ok || math.IsNaN(fa) || math.IsNaN(fb) {
			return 0, false
		}
		return cmpOrdered(fa, fb), true
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), true
		}
	case bool:
		if y, ok := b.(bool); ok {
			return cmpOrdered(boolInt(x), boolInt(y)), true
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), true
		}
	}
	return 0, false
}

// Less reports whether a < b under [Compare].
func Less(a, b any) bool {
	c, ok := Compare(a, b)
	return ok && c < 0
}

// Greater reports whether a > b under [Compare].
func Greater(a, b any) bool {
	c, ok := Compare(a, b)
	return ok && c > 0
}

func cmpOrdered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Key coercion
// ─────────────────────────────────────────────────────────────────────────────

// ToKey coerces v to the string used as a mapping key: strings as-is,
// [Undefined] as "undefined", nil as "null", integral numbers without a
// fraction, NaN as "NaN", infinities as "Infinity" / "-Infinity", and
// [fmt.Stringer] values through String.
func ToKey(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case fmt.Stringer:
		return t.String()
	}
	if f, ok := ToFloat(v); ok {
		return formatNumber(f)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		// Exponents carry no zero padding: 1e-7, 1.5e+21.
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
