// Package arr provides standalone, generic helper functions for Go slices,
// modelled after lodash's array helpers.
//
// All helpers operate on plain []T values and are pure: the input slice is
// never modified and a returned slice never shares its backing array with an
// input.
//
//	arr.Compact([]int{1, 0, 2, 0})                 // → [1 2]
//	arr.Difference([]int{1, 2, 3, 4, 5}, []int{2, 3, 4}) // → [1 5]
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//
// # Equality
//
// Helpers that compare elements (Uniq, Difference, Intersection, Union, Xor,
// Without) require comparable T. Each has a By variant that takes a key
// function instead, for element types that are not comparable:
//
//	arr.UniqBy(rows, func(r []string) string { return strings.Join(r, ",") })
//
// # Bounds
//
// Operations that take an index report a bad one as an error wrapping
// [ErrIndexOutOfRange]; start > end and chunk sizes below 1 wrap
// [ErrInvalidArgument]. Nothing panics on caller-supplied indices.
package arr
