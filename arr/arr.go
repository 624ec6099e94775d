package arr

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element.
// Returns the zero value and false when items is empty.
func Head[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Nth returns the element at index i, which must satisfy 0 <= i < len(items).
func Nth[T any](items []T, i int) (T, error) {
	var zero T
	if err := checkIndex("Nth", "index", i, len(items)); err != nil {
		return zero, err
	}
	return items[i], nil
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	return FindIndex(items, func(item T) bool { return item == value })
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// FindLastIndex returns the index of the last element satisfying fn, or -1.
// The scan runs from the end, so the result is a regular forward index.
func FindLastIndex[T any](items []T, fn func(T) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns the elements for which fn returns true.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Remove returns the elements for which fn returns false.
// It is the complement of [Filter].
func Remove[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T) bool { return !fn(item) })
}

// Compact returns the elements that are not the zero value of T.
//
//	Compact([]int{1, 0, 2, 0, 3}) // → [1 2 3]
func Compact[T comparable](items []T) []T {
	var zero T
	return Filter(items, func(item T) bool { return item != zero })
}

// Without returns items with every element equal to one of values removed.
func Without[T comparable](items []T, values ...T) []T {
	return WithoutBy(items, func(item T) T { return item }, values...)
}

// WithoutBy is [Without] with equality decided by the key extracted by fn.
func WithoutBy[T any, K comparable](items []T, fn func(T) K, values ...T) []T {
	drop := keySet(fn, values)
	return Remove(items, func(item T) bool {
		_, found := drop[fn(item)]
		return found
	})
}

// Pull is an alias for [Without].
func Pull[T comparable](items []T, values ...T) []T { return Without(items, values...) }

// Join converts every element with fmt.Sprint and joins them with sep.
func Join[T any](items []T, sep string) string {
	parts := Map(items, func(item T) string { return fmt.Sprint(item) })
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, preserving the first
// occurrence.
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, func(item T) T { return item })
}

// UniqBy returns elements with duplicates removed using a key function.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	return Filter(items, func(item T) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Difference returns the elements of items that appear in none of others.
// Order and duplicates of items are preserved.
func Difference[T comparable](items []T, others ...[]T) []T {
	return DifferenceBy(items, func(item T) T { return item }, others...)
}

// DifferenceBy is [Difference] with equality decided by fn.
func DifferenceBy[T any, K comparable](items []T, fn func(T) K, others ...[]T) []T {
	exclude := keySet(fn, Collapse(others))
	return Filter(items, func(item T) bool {
		_, found := exclude[fn(item)]
		return !found
	})
}

// Intersection returns the distinct elements of items that appear in every
// slice of others, in the order they first occur in items.
//
//	Intersection([]int{1, 2, 3, 4, 5}, []int{2, 3, 4, 5, 6}) // → [2 3 4 5]
func Intersection[T comparable](items []T, others ...[]T) []T {
	return IntersectionBy(items, func(item T) T { return item }, others...)
}

// IntersectionBy is [Intersection] with equality decided by fn.
func IntersectionBy[T any, K comparable](items []T, fn func(T) K, others ...[]T) []T {
	sets := Map(others, func(other []T) map[K]struct{} { return keySet(fn, other) })
	return UniqBy(Filter(items, func(item T) bool {
		k := fn(item)
		for _, set := range sets {
			if _, found := set[k]; !found {
				return false
			}
		}
		return true
	}), fn)
}

// Union returns the distinct elements of all slices in first-occurrence order.
func Union[T comparable](items []T, others ...[]T) []T {
	return UnionBy(items, func(item T) T { return item }, others...)
}

// UnionBy is [Union] with equality decided by fn.
func UnionBy[T any, K comparable](items []T, fn func(T) K, others ...[]T) []T {
	return UniqBy(Concat(items, others...), fn)
}

// Xor returns the distinct elements that occur in exactly one of the given
// slices, in first-occurrence order.
//
//	Xor([]int{1, 2, 3}, []int{3, 4}) // → [1 2 4]
func Xor[T comparable](items []T, others ...[]T) []T {
	return XorBy(items, func(item T) T { return item }, others...)
}

// XorBy is [Xor] with equality decided by fn.
func XorBy[T any, K comparable](items []T, fn func(T) K, others ...[]T) []T {
	all := Unshift(others, items)
	owners := make(map[K]int)
	for _, slice := range all {
		for k := range keySet(fn, slice) {
			owners[k]++
		}
	}
	return UniqBy(Filter(Collapse(all), func(item T) bool {
		return owners[fn(item)] == 1
	}), fn)
}

func keySet[T any, K comparable](fn func(T) K, items []T) map[K]struct{} {
	set := make(map[K]struct{}, len(items))
	for _, item := range items {
		set[fn(item)] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Concat returns a new slice holding items followed by every slice in others.
func Concat[T any](items []T, others ...[]T) []T {
	out := make([]T, 0, len(items))
	out = append(out, items...)
	for _, other := range others {
		out = append(out, other...)
	}
	return out
}

// Unshift returns a new slice with values placed in front of items.
func Unshift[T any](items []T, values ...T) []T {
	out := make([]T, len(values)+len(items))
	copy(out, values)
	copy(out[len(values):], items)
	return out
}

// Insert returns a new slice with value placed before index.
// index must satisfy 0 <= index <= len(items).
func Insert[T any](items []T, index int, value T) ([]T, error) {
	if index < 0 || index > len(items) {
		return nil, fmt.Errorf("arr.Insert: parameter %q: %d not in [0, %d]: %w", "index", index, len(items), ErrIndexOutOfRange)
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, value)
	return append(out, items[index:]...), nil
}

// Drop returns a new slice without the element at index i.
// i must satisfy 0 <= i < len(items).
//
//	Drop([]int{1, 2, 3, 4, 5}, 2) // → [1 2 4 5]
func Drop[T any](items []T, i int) ([]T, error) {
	if err := checkIndex("Drop", "index", i, len(items)); err != nil {
		return nil, err
	}
	return without(items, i), nil
}

// DropRight returns a new slice without the element i positions from the end
// (0 is the last element). i must satisfy 0 <= i < len(items).
//
//	DropRight([]int{1, 2, 3, 4, 5}, 1) // → [1 2 3 5]
func DropRight[T any](items []T, i int) ([]T, error) {
	if err := checkIndex("DropRight", "offset", i, len(items)); err != nil {
		return nil, err
	}
	return without(items, len(items)-1-i), nil
}

func without[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// Skip returns a new slice without the first n items.
// n is clamped to [0, len(items)], so Concat(Take(s, n), Skip(s, n)) == s.
func Skip[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	return clone(items[n:])
}

// Take returns at most n items from the start; n defaults to 1.
// A negative n returns an empty slice.
func Take[T any](items []T, n ...int) []T {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	return clone(items[:clamp(count, len(items))])
}

// Tail returns every element except the first.
// An empty slice yields an empty slice.
func Tail[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return clone(items[1:])
}

// Shift is an alias for [Tail].
func Shift[T any](items []T) []T { return Tail(items) }

// Initial returns every element except the last.
// An empty slice yields an empty slice.
func Initial[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return clone(items[:len(items)-1])
}

// Slice returns a copy of items[start:end].
// Bounds must satisfy 0 <= start <= end <= len(items).
func Slice[T any](items []T, start, end int) ([]T, error) {
	if err := checkRange("Slice", start, end, len(items)); err != nil {
		return nil, err
	}
	return clone(items[start:end]), nil
}

// Fill returns a copy of items where every position in [start, end) holds
// value. Bounds must satisfy 0 <= start <= end <= len(items).
//
//	Fill([]int{1, 2, 3, 4}, 0, 1, 3) // → [1 0 0 4]
func Fill[T any](items []T, value T, start, end int) ([]T, error) {
	if err := checkRange("Fill", start, end, len(items)); err != nil {
		return nil, err
	}
	out := clone(items)
	for i := start; i < end; i++ {
		out[i] = value
	}
	return out, nil
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements. size must be at
// least 1.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("arr.Chunk: parameter %q: %d is below 1: %w", "size", size, ErrInvalidArgument)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, clone(items[i:end]))
	}
	return chunks, nil
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Flatten recursively expands nested slices and arrays of any element type
// into one flat slice. Other values, strings included, pass through.
//
//	Flatten([]any{1, []any{2, []int{3, 4}}, "five"}) // → [1 2 3 4 five]
func Flatten(items []any) []any {
	out := make([]any, 0, len(items))
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		case nil, string:
			out = append(out, val)
		default:
			rv := reflect.ValueOf(val)
			if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
				out = append(out, val)
				return
			}
			for i := 0; i < rv.Len(); i++ {
				flatten(rv.Index(i).Interface())
			}
		}
	}
	for _, item := range items {
		flatten(item)
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Zip groups the i-th element of items with the i-th element of every slice
// in others. The result stops at the length of the shortest slice.
//
//	Zip([]int{1, 2, 3}, []int{4, 5}) // → [[1 4] [2 5]]
func Zip[T any](items []T, others ...[]T) [][]T {
	n := len(items)
	for _, other := range others {
		n = min(n, len(other))
	}
	out := make([][]T, n)
	for i := range out {
		tuple := make([]T, 0, len(others)+1)
		tuple = append(tuple, items[i])
		for _, other := range others {
			tuple = append(tuple, other[i])
		}
		out[i] = tuple
	}
	return out
}

// FromPairs builds a map from key/value pairs.
// When multiple pairs share the same key, the last one wins.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.First] = p.Second
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := clone(items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ShuffleWith returns a copy of items shuffled with r, so a seeded r gives a
// reproducible order.
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	out := clone(items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func clamp(n, length int) int {
	return max(0, min(n, length))
}

func checkIndex(fn, param string, i, length int) error {
	if i < 0 || i >= length {
		return fmt.Errorf("arr.%s: parameter %q: %d not in [0, %d): %w", fn, param, i, length, ErrIndexOutOfRange)
	}
	return nil
}

func checkRange(fn string, start, end, length int) error {
	if start < 0 || start > length {
		return fmt.Errorf("arr.%s: parameter %q: %d not in [0, %d]: %w", fn, "start", start, length, ErrIndexOutOfRange)
	}
	if end < 0 || end > length {
		return fmt.Errorf("arr.%s: parameter %q: %d not in [0, %d]: %w", fn, "end", end, length, ErrIndexOutOfRange)
	}
	if start > end {
		return fmt.Errorf("arr.%s: parameter %q: start %d is after end %d: %w", fn, "end", start, end, ErrInvalidArgument)
	}
	return nil
}
