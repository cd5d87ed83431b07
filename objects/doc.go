// Package objects provides key-based helpers for mapping-like values:
// [value.Object], Go maps and structs.
//
// Keys are enumerated the way package value defines them: insertion order
// for *value.Object, ascending for Go maps, declaration order (json tag or
// lowerCamel name) for struct fields.
//
//	u := value.ObjectOf("name", "moe", "age", 40)
//
//	objects.Keys(u)                              // → [name age]
//	objects.Pairs(u)                             // → [(name, moe) (age, 40)]
//	objects.Invert(u)                            // → {moe: name, 40: age}
//	objects.Pick(u, "name")                      // → {name: moe}
//	objects.Has(u, []any{"address", "city"})     // key path
//	objects.MapObject(u, func(v any) any { return fmt.Sprint(v) }, nil)
package objects
