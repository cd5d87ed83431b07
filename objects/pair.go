package objects

import "fmt"

// Pair holds one key and the value stored under it.
// It is the element type produced by [Pairs].
type Pair struct {
	Key   any
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
