package arr

import "fmt"

// Pair holds a key and a value of possibly different types.
// It is the element type consumed by [FromPairs].
type Pair[K, V any] struct {
	First  K
	Second V
}

// PairOf is shorthand for Pair[K, V]{First: k, Second: v}.
func PairOf[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{First: k, Second: v}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
