// Package functions provides combinators over dynamically-typed functions:
// binding, partial application, memoization and call-count gating.
//
// Any Go func value is accepted. It is adapted once into a [Func], a
// variadic func(args ...any) any; arguments are converted to the declared
// parameter types (see package iteratee), surplus arguments are dropped and
// missing ones are zero-filled.
//
// # Binding and partial application
//
//	greet := func(greeting, name string) string { return greeting + ", " + name }
//
//	hi, _ := functions.Partial(greet, "hi")
//	hi("moe") // → "hi, moe"
//
//	to, _ := functions.Partial(greet, functions.Placeholder, "moe")
//	to("bye") // → "bye, moe"
//
// [Bind] passes its context as the first argument, the Go method-expression
// convention:
//
//	f, _ := functions.Bind((*Counter).Add, counter)
//	f(2) // counter.Add(2)
//
// Functions that require a callable fail with an error wrapping
// [ErrTypeMismatch] before anything is called.
//
// # Memoization
//
// [Memoize] caches results under a key derived from the first argument, or
// from a hasher function when one is given. The key is streamed through
// BLAKE2b-256 by [Fingerprint]: slices and mappings are hashed by structure,
// so []any{"a b"} and []any{"a", "b"} get separate entries, and every key
// costs the same 32 bytes to store. A [Memo] is safe for concurrent use.
//
//	fib := functions.MustMemoize(slowFib, nil)
//	fib.Call(80)
package functions
