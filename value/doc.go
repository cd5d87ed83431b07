// Package value holds the dynamic value model shared by every other package
// in this module: the "missing" sentinel, the insertion-ordered [Object]
// mapping, shape classification and the host primitives (key listing,
// property access, strict equality, truthiness, ordering) the traversal
// helpers are built on.
//
// # Shapes
//
// Every collection is classified once per call by [Classify] / [ViewOf]:
//
//   - Sequence-like: slices, arrays, strings (one element per rune),
//     [Sequence] implementations, and mappings carrying a numeric "length"
//     entry (array-like objects).
//   - Mapping-like: [*Object] (insertion order), Go maps (keys sorted by
//     natural order) and structs (exported fields in declaration order).
//   - Everything else traverses as an empty mapping.
//
//	v := value.ViewOf([]int{10, 20, 30})
//	v.Shape()  // → value.ShapeSequence
//	v.At(1)    // → 20
//
//	o := value.ObjectOf("b", 2, "a", 1)
//	value.Keys(o) // → [b a]
//
// # Missing values
//
// [Undefined] marks a missing property. It is distinct from nil, which
// stands for an explicit null:
//
//	value.Get(map[string]any{"a": nil}, "a") // → nil
//	value.Get(map[string]any{"a": nil}, "b") // → value.Undefined
package value
