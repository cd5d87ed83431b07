package value_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/value"
)

func ExampleClassify() {
	fmt.Println(value.Classify([]int{1, 2}))
	fmt.Println(value.Classify(map[string]int{"a": 1}))
	fmt.Println(value.Classify(map[string]any{"length": 1, "0": "a"}))
	fmt.Println(value.Classify(42))
	// Output:
	// sequence
	// mapping
	// sequence
	// none
}

func ExampleObjectOf() {
	o := value.ObjectOf("b", 2, "a", 1)
	fmt.Println(o.Keys(), o)
	// Output: [b a] {b: 2, a: 1}
}

func ExampleGet() {
	m := map[string]any{"a": nil}
	fmt.Println(value.Get(m, "a"), value.Get(m, "b"))
	// Output: <nil> undefined
}
