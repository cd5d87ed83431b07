// Package arr provides index-based helpers for sequence-like values: Go
// slices and arrays, strings (by rune), [value.Sequence] implementations and
// array-like objects carrying a numeric "length".
//
// Every helper accepts its input as any and reads it through a
// [value.View]; values that are not sequence-like behave as empty.
//
// # Searching
//
// Predicate searches take any iteratee spec (see package iteratee):
//
//	arr.FindIndex(users, map[string]any{"active": true}, nil)
//	arr.FindLastIndex([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 1 }, nil) // → 2
//
// Value searches use strict equality, except that NaN finds NaN:
//
//	arr.IndexOf([]any{1, math.NaN(), 3}, math.NaN())        // → 1
//	arr.IndexOf([]int{1, 2, 3, 1}, 1, arr.FromIndex(-2))   // → 3
//	arr.IndexOf([]int{10, 20, 30}, 20, arr.Sorted())        // binary search
//	arr.SortedIndex([]int{10, 20, 20, 30}, 20, nil, nil)    // → 1 (lower bound)
//
// # Restructuring
//
//	arr.Chunk([]int{1, 2, 3, 4, 5}, 2)          // → [[1 2] [3 4] [5]]
//	arr.Flatten([]any{1, []any{2, []int{3}}}, false) // → [1 2 3]
//	arr.Zip([]string{"a", "b"}, []int{1, 2})    // → [[a 1] [b 2]]
//	arr.Range(0, 10, 3)                         // → [0 3 6 9]
package arr
