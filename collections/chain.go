package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/value"
)

// Collection wraps a value for fluent chaining. Every transforming method
// returns a *new* Collection holding the result; terminal methods return
// plain values.
//
//	names := collections.Chain(users).
//	    Where(map[string]any{"active": true}).
//	    SortBy("age", nil).
//	    Pluck("name").
//	    Value()
type Collection struct {
	wrapped any
}

// Chain wraps obj for method chaining.
func Chain(obj any) *Collection {
	return &Collection{wrapped: obj}
}

func (c *Collection) chain(v any) *Collection { return &Collection{wrapped: v} }

// Value returns the wrapped value.
func (c *Collection) Value() any { return c.wrapped }

// ToArray returns the wrapped elements as a new slice.
func (c *Collection) ToArray() []any { return ToArray(c.wrapped) }

// ToJSON serialises the wrapped value.
func (c *Collection) ToJSON() ([]byte, error) {
	return json.Marshal(c.wrapped)
}

// String returns a JSON representation of the wrapped value.
// It implements [fmt.Stringer].
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.wrapped)
	}
	return string(b)
}

// Tap calls fn with the wrapped value for side-effects and returns c.
func (c *Collection) Tap(fn func(any)) *Collection {
	fn(c.wrapped)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Transforming
// ─────────────────────────────────────────────────────────────────────────────

// Each visits every element and returns c.
func (c *Collection) Each(spec, context any) *Collection {
	Each(c.wrapped, spec, context)
	return c
}

// Map chains [Map].
func (c *Collection) Map(spec, context any) *Collection {
	return c.chain(Map(c.wrapped, spec, context))
}

// Filter chains [Filter].
func (c *Collection) Filter(predicate, context any) *Collection {
	return c.chain(Filter(c.wrapped, predicate, context))
}

// Reject chains [Reject].
func (c *Collection) Reject(predicate, context any) *Collection {
	return c.chain(Reject(c.wrapped, predicate, context))
}

// Where chains [Where].
func (c *Collection) Where(attrs any) *Collection {
	return c.chain(Where(c.wrapped, attrs))
}

// Pluck chains [Pluck].
func (c *Collection) Pluck(key any) *Collection {
	return c.chain(Pluck(c.wrapped, key))
}

// Invoke chains [Invoke].
func (c *Collection) Invoke(method any, args ...any) *Collection {
	return c.chain(Invoke(c.wrapped, method, args...))
}

// SortBy chains [SortBy].
func (c *Collection) SortBy(spec, context any) *Collection {
	return c.chain(SortBy(c.wrapped, spec, context))
}

// GroupBy chains [GroupBy].
func (c *Collection) GroupBy(spec, context any) *Collection {
	return c.chain(GroupBy(c.wrapped, spec, context))
}

// IndexBy chains [IndexBy].
func (c *Collection) IndexBy(spec, context any) *Collection {
	return c.chain(IndexBy(c.wrapped, spec, context))
}

// CountBy chains [CountBy].
func (c *Collection) CountBy(spec, context any) *Collection {
	return c.chain(CountBy(c.wrapped, spec, context))
}

// Uniq chains [arr.Uniq].
func (c *Collection) Uniq(spec any, opts ...arr.SearchOption) *Collection {
	return c.chain(arr.Uniq(c.wrapped, spec, opts...))
}

// First chains [arr.FirstN].
func (c *Collection) First(n int) *Collection {
	return c.chain(arr.FirstN(c.wrapped, n))
}

// Rest chains [arr.Rest].
func (c *Collection) Rest(n ...int) *Collection {
	return c.chain(arr.Rest(c.wrapped, n...))
}

// Compact chains [arr.Compact].
func (c *Collection) Compact() *Collection {
	return c.chain(arr.Compact(c.wrapped))
}

// Flatten chains [arr.Flatten].
func (c *Collection) Flatten(shallow bool) *Collection {
	return c.chain(arr.Flatten(c.wrapped, shallow))
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal
// ─────────────────────────────────────────────────────────────────────────────

// Reduce runs [Reduce] on the wrapped value.
func (c *Collection) Reduce(fn any, memo ...any) (any, error) {
	return Reduce(c.wrapped, fn, memo...)
}

// Find runs [Find] on the wrapped value.
func (c *Collection) Find(predicate, context any) (any, bool) {
	return Find(c.wrapped, predicate, context)
}

// Every runs [Every] on the wrapped value.
func (c *Collection) Every(predicate, context any) bool {
	return Every(c.wrapped, predicate, context)
}

// Some runs [Some] on the wrapped value.
func (c *Collection) Some(predicate, context any) bool {
	return Some(c.wrapped, predicate, context)
}

// Contains runs [Contains] on the wrapped value.
func (c *Collection) Contains(item any, opts ...arr.SearchOption) bool {
	return Contains(c.wrapped, item, opts...)
}

// Max runs [Max] on the wrapped value.
func (c *Collection) Max(spec, context any) any { return Max(c.wrapped, spec, context) }

// Min runs [Min] on the wrapped value.
func (c *Collection) Min(spec, context any) any { return Min(c.wrapped, spec, context) }

// Size runs [Size] on the wrapped value.
func (c *Collection) Size() int { return Size(c.wrapped) }

// IsEmpty reports whether the wrapped value has no elements.
func (c *Collection) IsEmpty() bool { return Size(c.wrapped) == 0 }

// Partition runs [Partition] on the wrapped value.
func (c *Collection) Partition(spec, context any) (pass, fail []any) {
	return Partition(c.wrapped, spec, context)
}

// Keys returns the keys of the wrapped value.
func (c *Collection) Keys() []any { return value.Keys(c.wrapped) }
