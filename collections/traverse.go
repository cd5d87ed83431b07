package collections

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/objects"
	"github.com/hasbyte1/go-underscore/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls spec(value, key, obj) for every element in traversal order.
func Each(obj, spec, context any) {
	cb := iteratee.Normalize(spec, context, iteratee.ArityThree)
	v := value.ViewOf(obj)
	for i := 0; i < v.Len(); i++ {
		cb(v.At(i), v.Key(i), obj)
	}
}

// Map returns one transformed value per element, in traversal order.
func Map(obj, spec, context any) []any {
	cb := iteratee.Normalize(spec, context, iteratee.ArityThree)
	v := value.ViewOf(obj)
	out := make([]any, v.Len())
	for i := range out {
		out[i] = cb(v.At(i), v.Key(i), obj)
	}
	return out
}

// Reduce folds obj left to right with fn(memo, value, key, obj). When memo is
// omitted the first element seeds the accumulator and folding starts at the
// second; an empty collection then fails with [ErrEmptyCollection]. fn must
// be a function (or [iteratee.Bound]).
func Reduce(obj, fn any, memo ...any) (any, error) {
	return reduce(obj, fn, 1, memo)
}

// ReduceRight is [Reduce] folding right to left.
func ReduceRight(obj, fn any, memo ...any) (any, error) {
	return reduce(obj, fn, -1, memo)
}

func reduce(obj, fn any, dir int, memo []any) (any, error) {
	r, err := iteratee.ReducerOf(fn, nil)
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	v := value.ViewOf(obj)
	n := v.Len()
	i := 0
	if dir < 0 {
		i = n - 1
	}
	var acc any
	if len(memo) > 0 {
		acc = memo[0]
	} else {
		if n == 0 {
			return nil, ErrEmptyCollection
		}
		acc = v.At(i)
		i += dir
	}
	for ; i >= 0 && i < n; i += dir {
		acc = r(acc, v.At(i), v.Key(i), obj)
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying predicate and true, or
// [value.Undefined] and false.
func Find(obj, predicate, context any) (any, bool) {
	if value.IsSequenceLike(obj) {
		if i := arr.FindIndex(obj, predicate, context); i >= 0 {
			return value.ViewOf(obj).At(i), true
		}
		return value.Undefined, false
	}
	key := objects.FindKey(obj, predicate, context)
	if value.IsUndefined(key) {
		return value.Undefined, false
	}
	return value.Get(obj, key), true
}

// Filter returns the elements satisfying predicate, in traversal order.
// Mapping keys are dropped.
func Filter(obj, predicate, context any) []any {
	return filter(obj, iteratee.Normalize(predicate, context, iteratee.ArityThree), true)
}

// Reject returns the elements that do not satisfy predicate.
func Reject(obj, predicate, context any) []any {
	return filter(obj, iteratee.Normalize(predicate, context, iteratee.ArityThree), false)
}

func filter(obj any, pred iteratee.Callback, keep bool) []any {
	v := value.ViewOf(obj)
	out := make([]any, 0)
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		if value.Truthy(pred(item, v.Key(i), obj)) == keep {
			out = append(out, item)
		}
	}
	return out
}

// Every reports whether every element satisfies predicate. It stops at the
// first failure and is true for an empty collection.
func Every(obj, predicate, context any) bool {
	pred := iteratee.Normalize(predicate, context, iteratee.ArityThree)
	v := value.ViewOf(obj)
	for i := 0; i < v.Len(); i++ {
		if !value.Truthy(pred(v.At(i), v.Key(i), obj)) {
			return false
		}
	}
	return true
}

// Some reports whether any element satisfies predicate. It stops at the
// first success and is false for an empty collection.
func Some(obj, predicate, context any) bool {
	pred := iteratee.Normalize(predicate, context, iteratee.ArityThree)
	v := value.ViewOf(obj)
	for i := 0; i < v.Len(); i++ {
		if value.Truthy(pred(v.At(i), v.Key(i), obj)) {
			return true
		}
	}
	return false
}

// Contains reports whether obj holds item, using the [arr.IndexOf]
// equality rules. Mappings are searched by value.
func Contains(obj, item any, opts ...arr.SearchOption) bool {
	if !value.IsSequenceLike(obj) {
		obj = value.ViewOf(obj).Values()
	}
	return arr.IndexOf(obj, item, opts...) >= 0
}

// Pluck returns the value of key (or key path) from every element.
func Pluck(obj, key any) []any {
	return Map(obj, iteratee.Property(key), nil)
}

// Where returns the elements carrying every key/value pair of attrs.
func Where(obj, attrs any) []any {
	return Filter(obj, iteratee.Matcher(attrs), nil)
}

// FindWhere returns the first element carrying every key/value pair of
// attrs.
func FindWhere(obj, attrs any) (any, bool) {
	return Find(obj, iteratee.Matcher(attrs), nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Invoke
// ─────────────────────────────────────────────────────────────────────────────

// Invoke calls method on every element and collects the results.
//
// method may be a function, called with the element followed by args; a
// name, resolved on each element as a func-valued key or an exported method;
// or a key path whose last entry is the name and whose prefix leads from the
// element to the receiver. Missing receivers and methods yield
// [value.Undefined]. A name resolving to a non-function value panics with
// an error wrapping [iteratee.ErrTypeMismatch].
func Invoke(obj, method any, args ...any) []any {
	if value.IsCallable(method) {
		fn, _ := iteratee.Func(method, nil, iteratee.ArityUnbounded)
		return Map(obj, func(receiver any) any {
			return fn(append([]any{receiver}, args...)...)
		}, nil)
	}
	name := method
	var contextPath []any
	if value.IsSequenceValue(method) {
		path := value.ViewOf(method).Values()
		if len(path) == 0 {
			name = value.Undefined
		} else {
			contextPath, name = path[:len(path)-1], path[len(path)-1]
		}
	}
	return Map(obj, func(receiver any) any {
		if len(contextPath) > 0 {
			receiver = iteratee.DeepGet(receiver, contextPath)
		}
		if value.IsAbsent(receiver) {
			return value.Undefined
		}
		m := methodOf(receiver, name)
		if value.IsAbsent(m) {
			return m
		}
		fn, err := iteratee.Func(m, nil, iteratee.ArityUnbounded)
		if err != nil {
			panic(fmt.Errorf("invoke %v: %w", name, err))
		}
		return fn(args...)
	}, nil)
}

// methodOf resolves name on receiver: an own key first, then an exported
// method of the receiver's dynamic type.
func methodOf(receiver, name any) any {
	if v, ok := value.Lookup(receiver, name); ok {
		return v
	}
	s, ok := name.(string)
	if !ok {
		return value.Undefined
	}
	if m := reflect.ValueOf(receiver).MethodByName(s); m.IsValid() {
		return m.Interface()
	}
	return value.Undefined
}
