package value

import (
	"fmt"
	"strings"
)

// Object is an insertion-ordered, string-keyed mapping. It is the
// mapping-like shape whose enumeration order is the order in which keys were
// first set; overwriting a key keeps its position and deleting it removes it.
//
// The zero value is not usable; create objects with [NewObject] or
// [ObjectOf]. An Object is not safe for concurrent mutation.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// ObjectOf creates an Object from alternating key/value arguments. Keys are
// coerced with [ToKey]; a trailing key without a value is set to [Undefined].
//
//	o := value.ObjectOf("b", 2, "a", 1) // keys in order: b, a
func ObjectOf(kv ...any) *Object {
	o := &Object{
		keys:   make([]string, 0, (len(kv)+1)/2),
		values: make(map[string]any, (len(kv)+1)/2),
	}
	for i := 0; i < len(kv); i += 2 {
		var v any = Undefined
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		o.Set(ToKey(kv[i]), v)
	}
	return o
}

// Set stores v under key, appending key to the enumeration order on first use.
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key together with a presence flag.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Delete removes key. It is a no-op when key is absent.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in enumeration order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Values returns the values in key enumeration order.
func (o *Object) Values() []any {
	out := make([]any, len(o.keys))
	for i, k := range o.keys {
		out[i] = o.values[k]
	}
	return out
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// String renders the object as {k: v, ...} in enumeration order.
func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", k, o.values[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
