// Package iteratee turns whatever a caller hands to a traversal (a function,
// a property key, a key path, a partial-match spec, or nothing) into one
// canonical per-element [Callback].
//
// # Resolution
//
// [Normalize] resolves a spec in this order:
//
//  1. nil / [value.Undefined] → [Identity].
//  2. A Go func → an adapter that forwards at most as many of
//     (value, key, collection) as the [Arity] hint allows and the func
//     declares, optionally prepending a bound receiver.
//  3. A mapping ([*value.Object], Go map, struct) → [Matcher].
//  4. Anything else (string, number, key-path slice) → [Property].
//
//	iteratee.Normalize(nil, nil, iteratee.ArityThree)(7, 0, nil)        // → 7
//	iteratee.Normalize("name", nil, iteratee.ArityThree)(user, 0, nil)  // → user["name"]
//	iteratee.Normalize([]string{"a", "b"}, nil, iteratee.ArityThree)    // → deep a.b accessor
//	iteratee.Normalize(map[string]any{"ok": true}, nil, iteratee.ArityThree) // → matcher
//
// # Arity capping
//
// Variadic funcs take every forwarded argument, so a parser with an optional
// base argument misreads the element index as its base unless the hint caps
// forwarding at one argument:
//
//	parse := func(s string, base ...int) int64 { ... }
//	cb := iteratee.Normalize(parse, nil, iteratee.ArityOne)
//
// # Overriding normalization
//
// [SetIteratee] installs a process-wide [Strategy] that every traversal in
// this module consults instead of the builtin rules. Install it before use
// and remove it with [ResetIteratee] (typically in test cleanup).
package iteratee
