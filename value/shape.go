package value

import (
	"math"
	"reflect"
	"strconv"
)

// MaxArrayIndex is the largest length a sequence-like value may report.
const MaxArrayIndex = 1<<53 - 1

// Shape is the traversal strategy chosen for a collection.
type Shape int

const (
	// ShapeNone marks values that are not collections; they traverse as an
	// empty mapping.
	ShapeNone Shape = iota
	// ShapeSequence marks values walked by ascending integer index.
	ShapeSequence
	// ShapeMapping marks values walked by enumerable key.
	ShapeMapping
)

// String implements [fmt.Stringer].
func (s Shape) String() string {
	switch s {
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	}
	return "none"
}

// Sequence is implemented by custom array-like types. A Sequence whose Len
// falls outside [0, MaxArrayIndex] is not a collection.
type Sequence interface {
	Len() int
	Index(i int) any
}

// Classify decides how c is traversed.
func Classify(c any) Shape {
	switch t := c.(type) {
	case nil, undefined:
		return ShapeNone
	case string, []any:
		return ShapeSequence
	case *Object:
		if t == nil {
			return ShapeNone
		}
		if _, ok := arrayLikeLength(t); ok {
			return ShapeSequence
		}
		return ShapeMapping
	case Sequence:
		if validLength(t.Len()) {
			return ShapeSequence
		}
		return ShapeNone
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		return ShapeSequence
	case reflect.Pointer:
		if rv.IsNil() {
			return ShapeNone
		}
		switch rv.Elem().Kind() {
		case reflect.Array:
			return ShapeSequence
		case reflect.Struct:
			return ShapeMapping
		}
	case reflect.Map:
		if _, ok := arrayLikeLength(c); ok {
			return ShapeSequence
		}
		return ShapeMapping
	case reflect.Struct:
		return ShapeMapping
	}
	return ShapeNone
}

// IsSequenceLike reports whether c is traversed by index.
func IsSequenceLike(c any) bool { return Classify(c) == ShapeSequence }

func validLength(n int) bool { return n >= 0 && n <= MaxArrayIndex }

// arrayLikeLength reads a numeric "length" entry from a string-keyed mapping.
func arrayLikeLength(c any) (int, bool) {
	var raw any
	switch t := c.(type) {
	case *Object:
		v, ok := t.Get("length")
		if !ok {
			return 0, false
		}
		raw = v
	default:
		rv := reflect.ValueOf(c)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return 0, false
		}
		v := rv.MapIndex(reflect.ValueOf("length").Convert(rv.Type().Key()))
		if !v.IsValid() {
			return 0, false
		}
		raw = v.Interface()
	}
	f, ok := ToFloat(raw)
	if !ok || math.IsNaN(f) || f < 0 || f > MaxArrayIndex {
		return 0, false
	}
	return int(math.Ceil(f)), true
}

// ─────────────────────────────────────────────────────────────────────────────
// View
// ─────────────────────────────────────────────────────────────────────────────

// View is a collection classified once for a single traversal. Sequences are
// addressed by index; mappings by the key list captured when the view was
// built, so later mutation of the source has no defined effect on the walk.
type View struct {
	src   any
	shape Shape
	n     int
	keys  []any
	at    func(i int) any
}

// ViewOf classifies c and prepares positional access to its elements.
func ViewOf(c any) View {
	v := View{src: c, shape: Classify(c)}
	switch v.shape {
	case ShapeSequence:
		v.n, v.at = sequenceAccess(c)
	case ShapeMapping:
		v.keyed()
	}
	return v
}

// KeyedViewOf is [ViewOf] walking every collection by its own keys, so that
// array-like objects expose their "length" entry like any other key.
func KeyedViewOf(c any) View {
	v := View{src: c, shape: Classify(c)}
	if v.shape != ShapeNone {
		v.shape = ShapeMapping
		v.keyed()
	}
	return v
}

func (v *View) keyed() {
	v.keys = Keys(v.src)
	v.n = len(v.keys)
	get := getter(v.src)
	keys := v.keys
	v.at = func(i int) any { return get(keys[i]) }
}

// Source returns the collection the view was built from.
func (v View) Source() any { return v.src }

// Shape returns the classification result.
func (v View) Shape() Shape { return v.shape }

// IsSequence reports whether the view walks by index.
func (v View) IsSequence() bool { return v.shape == ShapeSequence }

// Len returns the element count (sequence length or key count).
func (v View) Len() int { return v.n }

// Key returns the index (int) for sequences or the mapping key at position i.
func (v View) Key(i int) any {
	if v.keys != nil {
		return v.keys[i]
	}
	return i
}

// At returns the element at position i.
func (v View) At(i int) any { return v.at(i) }

// Values returns every element in traversal order.
func (v View) Values() []any {
	out := make([]any, v.n)
	for i := range out {
		out[i] = v.at(i)
	}
	return out
}

func sequenceAccess(c any) (int, func(int) any) {
	switch t := c.(type) {
	case []any:
		return len(t), func(i int) any { return t[i] }
	case string:
		runes := []rune(t)
		return len(runes), func(i int) any { return string(runes[i]) }
	case Sequence:
		return t.Len(), t.Index
	case *Object:
		n, _ := arrayLikeLength(t)
		return n, func(i int) any { return Get(t, strconv.Itoa(i)) }
	}
	rv := reflect.ValueOf(c)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), func(i int) any { return rv.Index(i).Interface() }
	case reflect.String:
		runes := []rune(rv.String())
		return len(runes), func(i int) any { return string(runes[i]) }
	case reflect.Map:
		n, _ := arrayLikeLength(c)
		return n, func(i int) any { return Get(c, strconv.Itoa(i)) }
	}
	return 0, func(int) any { return Undefined }
}
