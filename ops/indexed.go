package ops

import "github.com/dot5enko/numstorage/bitmap"

// The index-space scanners below walk a caller-supplied row-index list
// instead of a contiguous range, producing a bitmap aligned to the index
// list itself (bit k reflects arr[indices[k]], not row k of the column).
// There's no dense/sparse split to unroll here the way the teacher's
// eq.go/lt.go do for the contiguous case, since the access pattern is
// already indirect on every element; a plain loop is the honest shape.

// EqIndexed appends one bit per entry of indices, true where
// arr[indices[k]] == cmp.
func EqIndexed[T Ints](arr []T, indices []uint32, cmp T, builder *bitmap.Builder) {
	for _, idx := range indices {
		builder.Append(arr[idx] == cmp)
	}
}

// NeIndexed appends one bit per entry of indices, true where
// arr[indices[k]] != cmp.
func NeIndexed[T Ints](arr []T, indices []uint32, cmp T, builder *bitmap.Builder) {
	for _, idx := range indices {
		builder.Append(arr[idx] != cmp)
	}
}

// LtIndexed appends one bit per entry of indices, true where
// arr[indices[k]] < cmp.
func LtIndexed[T Ints](arr []T, indices []uint32, cmp T, builder *bitmap.Builder) {
	for _, idx := range indices {
		builder.Append(arr[idx] < cmp)
	}
}

// LeIndexed appends one bit per entry of indices, true where
// arr[indices[k]] <= cmp.
func LeIndexed[T Ints](arr []T, indices []uint32, cmp T, builder *bitmap.Builder) {
	for _, idx := range indices {
		builder.Append(arr[idx] <= cmp)
	}
}

// GtIndexed appends one bit per entry of indices, true where
// arr[indices[k]] > cmp.
func GtIndexed[T Ints](arr []T, indices []uint32, cmp T, builder *bitmap.Builder) {
	for _, idx := range indices {
		builder.Append(arr[idx] > cmp)
	}
}

// GeIndexed appends one bit per entry of indices, true where
// arr[indices[k]] >= cmp.
func GeIndexed[T Ints](arr []T, indices []uint32, cmp T, builder *bitmap.Builder) {
	for _, idx := range indices {
		builder.Append(arr[idx] >= cmp)
	}
}

// EqIndexedF64 appends one bit per entry of indices, true where
// arr[indices[k]] == cmp under the FloatOrderKey total order.
func EqIndexedF64(arr []float64, indices []uint32, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	for _, idx := range indices {
		builder.Append(FloatOrderKey(arr[idx]) == key)
	}
}

// NeIndexedF64 appends one bit per entry of indices, true where
// arr[indices[k]] != cmp.
func NeIndexedF64(arr []float64, indices []uint32, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	for _, idx := range indices {
		builder.Append(FloatOrderKey(arr[idx]) != key)
	}
}

// LtIndexedF64 appends one bit per entry of indices, true where
// arr[indices[k]] < cmp.
func LtIndexedF64(arr []float64, indices []uint32, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	for _, idx := range indices {
		builder.Append(FloatOrderKey(arr[idx]) < key)
	}
}

// LeIndexedF64 appends one bit per entry of indices, true where
// arr[indices[k]] <= cmp.
func LeIndexedF64(arr []float64, indices []uint32, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	for _, idx := range indices {
		builder.Append(FloatOrderKey(arr[idx]) <= key)
	}
}

// GtIndexedF64 appends one bit per entry of indices, true where
// arr[indices[k]] > cmp.
func GtIndexedF64(arr []float64, indices []uint32, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	for _, idx := range indices {
		builder.Append(FloatOrderKey(arr[idx]) > key)
	}
}

// GeIndexedF64 appends one bit per entry of indices, true where
// arr[indices[k]] >= cmp.
func GeIndexedF64(arr []float64, indices []uint32, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	for _, idx := range indices {
		builder.Append(FloatOrderKey(arr[idx]) >= key)
	}
}
