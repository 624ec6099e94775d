package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-lowdash/arr"
)

func ExampleCompact() {
	fmt.Println(arr.Compact([]int{1, 2, 0, 3, 0}))
	// Output: [1 2 3]
}

func ExampleDifference() {
	fmt.Println(arr.Difference([]int{1, 2, 3, 4, 5}, []int{2, 3, 4}))
	// Output: [1 5]
}

func ExampleChunk() {
	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	for _, c := range chunks {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleDrop() {
	out, _ := arr.Drop([]int{1, 2, 3, 4, 5}, 2)
	fmt.Println(out)
	// Output: [1 2 4 5]
}

func ExampleFlatten() {
	fmt.Println(arr.Flatten([]any{[]any{1, 2}, []any{3, []any{4}}}))
	// Output: [1 2 3 4]
}

func ExampleFromPairs() {
	m := arr.FromPairs([]arr.Pair[string, int]{
		arr.PairOf("a", 1),
		arr.PairOf("b", 2),
		arr.PairOf("a", 3),
	})
	fmt.Println(m)
	// Output: map[a:3 b:2]
}

func ExampleIntersection() {
	fmt.Println(arr.Intersection([]int{1, 2, 3, 4, 5}, []int{2, 3, 4, 5, 6}))
	// Output: [2 3 4 5]
}

func ExampleSlice() {
	out, _ := arr.Slice([]int{1, 2, 3, 4, 5}, 1, 3)
	fmt.Println(out)
	// Output: [2 3]
}

func ExampleZip() {
	fmt.Println(arr.Zip([]string{"a", "b", "c"}, []string{"x", "y"}))
	// Output: [[a x] [b y]]
}
