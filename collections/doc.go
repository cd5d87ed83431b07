// Package collections provides traversal, grouping and ordering operations
// over any collection: slices, arrays, strings, [value.Sequence]
// implementations, array-like objects, [value.Object]s, Go maps and structs.
//
// # Overview
//
// Every operation classifies its input once (see [value.Classify]) and walks
// it by index or by key. Per-element behaviour is supplied as an iteratee
// spec, normalized by package iteratee:
//
//	collections.Map([]int{1, 2, 3}, func(n int) int { return n * 2 }, nil)  // → [2 4 6]
//	collections.Pluck(users, "name")                                        // → names
//	collections.Filter(books, map[string]any{"title": "sc"}, nil)           // partial match
//	collections.SortBy(people, []any{"address", "zip"}, nil)                // key path
//
// # Reduce
//
// [Reduce] and [ReduceRight] take the accumulator as an optional trailing
// argument. Without it the first (last) element seeds the fold, and an empty
// collection fails with [ErrEmptyCollection]:
//
//	sum, err := collections.Reduce([]int{1, 2, 3}, func(a, b int) int { return a + b })
//
// # Grouping
//
// [GroupBy], [IndexBy] and [CountBy] return a [value.Object] keyed by the
// computed key coerced to a property-key string, in first-encounter order.
// [Aggregate] exposes the underlying fold for custom policies.
//
// # Chaining
//
// [Chain] wraps a value for fluent use; [Collection.Value] unwraps it:
//
//	collections.Chain(people).
//	    Where(map[string]any{"active": true}).
//	    SortBy("age", nil).
//	    Pluck("name").
//	    Value()
//
// # Mixins (runtime extension)
//
// [Mixin] adds a named operation to every chain, reached through
// [Collection.Call]. Names of Collection's own methods are reserved.
//
//	collections.Mixin("evens", func(wrapped any, _ ...any) any {
//	    return collections.Filter(wrapped, func(n int) bool { return n%2 == 0 }, nil)
//	})
//
//	evens, _ := collections.Chain([]int{1, 2, 3, 4}).Call("evens")
package collections
