package functions

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/value"
)

// Func is the dynamic function shape every combinator produces.
type Func func(args ...any) any

type placeholder struct{}

// String implements [fmt.Stringer].
func (placeholder) String() string { return "_" }

// Placeholder marks an argument slot that [Partial] leaves open.
var Placeholder any = placeholder{}

// Lift adapts fn into a [Func].
func Lift(fn any) (Func, error) {
	if f, ok := fn.(Func); ok {
		return f, nil
	}
	f, err := iteratee.Func(fn, nil, iteratee.ArityUnbounded)
	if err != nil {
		return nil, fmt.Errorf("lift: %w", err)
	}
	return f, nil
}

// Bind returns fn with context fixed as its first argument (when non-nil)
// followed by args; arguments of each call are appended.
func Bind(fn, context any, args ...any) (Func, error) {
	f, err := Lift(fn)
	if err != nil {
		return nil, fmt.Errorf("bind: %w", err)
	}
	prefix := args
	if context != nil {
		prefix = append([]any{context}, args...)
	}
	return func(callArgs ...any) any {
		return f(concat(prefix, callArgs)...)
	}, nil
}

// Partial returns fn with the leading arguments fixed. [Placeholder]
// entries are filled, in order, from each call's arguments; remaining call
// arguments are appended.
func Partial(fn any, bound ...any) (Func, error) {
	f, err := Lift(fn)
	if err != nil {
		return nil, fmt.Errorf("partial: %w", err)
	}
	return func(callArgs ...any) any {
		args := make([]any, len(bound), len(bound)+len(callArgs))
		pos := 0
		for i, b := range bound {
			if b != Placeholder {
				args[i] = b
				continue
			}
			if pos < len(callArgs) {
				args[i] = callArgs[pos]
				pos++
			} else {
				args[i] = value.Undefined
			}
		}
		return f(append(args, callArgs[pos:]...)...)
	}, nil
}

// Wrap passes fn as the first argument to wrapper, followed by each call's
// arguments.
func Wrap(fn, wrapper any) (Func, error) {
	if !value.IsCallable(fn) {
		return nil, fmt.Errorf("wrap: %w: %T is not a function", ErrTypeMismatch, fn)
	}
	return Partial(wrapper, fn)
}

// Negate returns a Func reporting the logical negation of predicate's result.
func Negate(predicate any) (Func, error) {
	f, err := Lift(predicate)
	if err != nil {
		return nil, fmt.Errorf("negate: %w", err)
	}
	return func(args ...any) any { return !value.Truthy(f(args...)) }, nil
}

// Compose returns the composition of fns: the last one receives the call's
// arguments and each earlier one receives the result of the one after it.
func Compose(fns ...any) (Func, error) {
	if len(fns) == 0 {
		return nil, ErrNoFunctions
	}
	lifted := make([]Func, len(fns))
	for i, fn := range fns {
		f, err := Lift(fn)
		if err != nil {
			return nil, fmt.Errorf("compose: argument %d: %w", i, err)
		}
		lifted[i] = f
	}
	return func(args ...any) any {
		last := len(lifted) - 1
		result := lifted[last](args...)
		for i := last - 1; i >= 0; i-- {
			result = lifted[i](result)
		}
		return result
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Call-count gating
// ─────────────────────────────────────────────────────────────────────────────

// After returns a Func that does nothing (returning [value.Undefined]) until
// it has been called times times, then calls fn on that and every later
// call. A times below 1 calls fn straight away. Safe for concurrent use.
func After(times int, fn any) (Func, error) {
	f, err := Lift(fn)
	if err != nil {
		return nil, fmt.Errorf("after: %w", err)
	}
	var mu sync.Mutex
	remaining := times
	return func(args ...any) any {
		mu.Lock()
		remaining--
		ready := remaining < 1
		mu.Unlock()
		if !ready {
			return value.Undefined
		}
		return f(args...)
	}, nil
}

// Before returns a Func that calls fn for at most times-1 calls; later calls
// return the result of the last call made. Safe for concurrent use.
func Before(times int, fn any) (Func, error) {
	f, err := Lift(fn)
	if err != nil {
		return nil, fmt.Errorf("before: %w", err)
	}
	var mu sync.Mutex
	remaining := times
	var memo any = value.Undefined
	return func(args ...any) any {
		mu.Lock()
		defer mu.Unlock()
		remaining--
		if remaining > 0 && f != nil {
			memo = f(args...)
		}
		if remaining <= 1 {
			f = nil
		}
		return memo
	}, nil
}

// Once returns a Func that calls fn on its first call only; every call
// returns the first result.
func Once(fn any) (Func, error) {
	return Before(2, fn)
}

func concat(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
