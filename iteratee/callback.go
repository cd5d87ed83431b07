package iteratee

import (
	"reflect"

	"github.com/hasbyte1/go-underscore/value"
)

// Callback is the canonical per-element function every traversal invokes.
// Arguments the underlying function did not ask for are [value.Undefined].
type Callback func(v, key, collection any) any

// Reducer is the canonical accumulator used by reduce and reduceRight.
type Reducer func(memo, v, key, collection any) any

// Arity is the hint that caps how many traversal arguments are forwarded to
// a user function.
type Arity int

const (
	// ArityUnbounded forwards every argument the function declares.
	ArityUnbounded Arity = -1
	// ArityOne forwards the element only.
	ArityOne Arity = 1
	// ArityThree forwards (value, key, collection).
	ArityThree Arity = 3
	// ArityFour forwards (memo, value, key, collection).
	ArityFour Arity = 4
)

func (a Arity) limit() int {
	if a < 0 {
		return -1
	}
	return int(a)
}

// Bound pairs a function with the receiver it is invoked with. The receiver
// is passed as the function's first parameter.
type Bound struct {
	Fn      any
	Context any
}

// Identity returns its first argument.
func Identity(v, _, _ any) any { return v }

// Normalize resolves spec into a [Callback]. A function is bound to context
// (when non-nil) and capped at arity forwarded arguments. A strategy
// installed with [SetIteratee] takes precedence over the builtin rules.
func Normalize(spec, context any, arity Arity) Callback {
	if s := current(); s != nil {
		if cb := s(spec, context); cb != nil {
			return cb
		}
	}
	return Builtin(spec, context, arity)
}

// Iteratee is the public normalization entry point: [Normalize] with no
// arity cap.
func Iteratee(spec, context any) Callback {
	return Normalize(spec, context, ArityUnbounded)
}

// Builtin applies the default resolution rules, ignoring any installed
// strategy. Custom strategies typically fall back to it.
func Builtin(spec, context any, arity Arity) Callback {
	switch t := spec.(type) {
	case nil:
		return Identity
	case Bound:
		return Builtin(t.Fn, t.Context, arity)
	case *Bound:
		if t == nil {
			return Identity
		}
		return Builtin(t.Fn, t.Context, arity)
	}
	if value.IsUndefined(spec) {
		return Identity
	}
	if reflect.TypeOf(spec).Kind() == reflect.Func {
		if reflect.ValueOf(spec).IsNil() {
			return Identity
		}
		return callbackOf(spec, context, arity)
	}
	if isMatchSpec(spec) {
		return Matcher(spec)
	}
	return Property(spec)
}

// isMatchSpec reports whether spec is an object-like value (not a slice or
// scalar) to be used as a partial-match template.
func isMatchSpec(spec any) bool {
	if _, ok := spec.(*value.Object); ok {
		return true
	}
	rv := reflect.ValueOf(spec)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	}
	return false
}

func callbackOf(fn, context any, arity Arity) Callback {
	if context == nil {
		switch f := fn.(type) {
		case Callback:
			if arity == ArityOne {
				return func(v, _, _ any) any { return f(v, value.Undefined, value.Undefined) }
			}
			return f
		case func(v, key, collection any) any:
			if arity == ArityOne {
				return func(v, _, _ any) any { return f(v, value.Undefined, value.Undefined) }
			}
			return f
		case func(any) any:
			return func(v, _, _ any) any { return f(v) }
		case func(any) bool:
			return func(v, _, _ any) any { return f(v) }
		case func(any, any) any:
			if arity == ArityOne {
				return func(v, _, _ any) any { return f(v, value.Undefined) }
			}
			return func(v, key, _ any) any { return f(v, key) }
		}
	}
	a, _ := newAdapter(fn, context, arity)
	return func(v, key, collection any) any { return a.call(v, key, collection) }
}

// Func adapts fn into a variadic dynamic function. Arguments beyond arity
// (when bounded) or beyond what fn declares are dropped.
func Func(fn, context any, arity Arity) (func(args ...any) any, error) {
	if f, ok := fn.(func(args ...any) any); ok && context == nil && arity == ArityUnbounded {
		return f, nil
	}
	a, err := newAdapter(fn, context, arity)
	if err != nil {
		return nil, err
	}
	return a.call, nil
}

// ReducerOf adapts fn into a [Reducer] forwarding (memo, value, key,
// collection), capped at what fn declares.
func ReducerOf(fn, context any) (Reducer, error) {
	if b, ok := fn.(Bound); ok {
		return ReducerOf(b.Fn, b.Context)
	}
	if context == nil {
		switch f := fn.(type) {
		case Reducer:
			return f, nil
		case func(memo, v, key, collection any) any:
			return f, nil
		case func(memo, v any) any:
			return func(memo, v, _, _ any) any { return f(memo, v) }, nil
		}
	}
	a, err := newAdapter(fn, context, ArityFour)
	if err != nil {
		return nil, err
	}
	return func(memo, v, key, collection any) any { return a.call(memo, v, key, collection) }, nil
}
