package ops

import "github.com/dot5enko/numstorage/bitmap"

// Eq appends one bit per element of arr, true where arr[i] == cmp, into
// builder. The loop is unrolled eight-wide, mirroring the teacher's
// CompareNumericValuesAreEqual shape.
func Eq[T Ints](arr []T, cmp T, builder *bitmap.Builder) {
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(arr[i+0] == cmp)
		builder.Append(arr[i+1] == cmp)
		builder.Append(arr[i+2] == cmp)
		builder.Append(arr[i+3] == cmp)
		builder.Append(arr[i+4] == cmp)
		builder.Append(arr[i+5] == cmp)
		builder.Append(arr[i+6] == cmp)
		builder.Append(arr[i+7] == cmp)
	}

	for ; i < n; i++ {
		builder.Append(arr[i] == cmp)
	}
}

// Ne appends one bit per element of arr, true where arr[i] != cmp.
func Ne[T Ints](arr []T, cmp T, builder *bitmap.Builder) {
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(arr[i+0] != cmp)
		builder.Append(arr[i+1] != cmp)
		builder.Append(arr[i+2] != cmp)
		builder.Append(arr[i+3] != cmp)
		builder.Append(arr[i+4] != cmp)
		builder.Append(arr[i+5] != cmp)
		builder.Append(arr[i+6] != cmp)
		builder.Append(arr[i+7] != cmp)
	}

	for ; i < n; i++ {
		builder.Append(arr[i] != cmp)
	}
}

// Lt appends one bit per element of arr, true where arr[i] < cmp.
func Lt[T Ints](arr []T, cmp T, builder *bitmap.Builder) {
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(arr[i+0] < cmp)
		builder.Append(arr[i+1] < cmp)
		builder.Append(arr[i+2] < cmp)
		builder.Append(arr[i+3] < cmp)
		builder.Append(arr[i+4] < cmp)
		builder.Append(arr[i+5] < cmp)
		builder.Append(arr[i+6] < cmp)
		builder.Append(arr[i+7] < cmp)
	}

	for ; i < n; i++ {
		builder.Append(arr[i] < cmp)
	}
}

// Le appends one bit per element of arr, true where arr[i] <= cmp.
func Le[T Ints](arr []T, cmp T, builder *bitmap.Builder) {
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(arr[i+0] <= cmp)
		builder.Append(arr[i+1] <= cmp)
		builder.Append(arr[i+2] <= cmp)
		builder.Append(arr[i+3] <= cmp)
		builder.Append(arr[i+4] <= cmp)
		builder.Append(arr[i+5] <= cmp)
		builder.Append(arr[i+6] <= cmp)
		builder.Append(arr[i+7] <= cmp)
	}

	for ; i < n; i++ {
		builder.Append(arr[i] <= cmp)
	}
}

// Gt appends one bit per element of arr, true where arr[i] > cmp.
func Gt[T Ints](arr []T, cmp T, builder *bitmap.Builder) {
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(arr[i+0] > cmp)
		builder.Append(arr[i+1] > cmp)
		builder.Append(arr[i+2] > cmp)
		builder.Append(arr[i+3] > cmp)
		builder.Append(arr[i+4] > cmp)
		builder.Append(arr[i+5] > cmp)
		builder.Append(arr[i+6] > cmp)
		builder.Append(arr[i+7] > cmp)
	}

	for ; i < n; i++ {
		builder.Append(arr[i] > cmp)
	}
}

// Ge appends one bit per element of arr, true where arr[i] >= cmp.
func Ge[T Ints](arr []T, cmp T, builder *bitmap.Builder) {
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(arr[i+0] >= cmp)
		builder.Append(arr[i+1] >= cmp)
		builder.Append(arr[i+2] >= cmp)
		builder.Append(arr[i+3] >= cmp)
		builder.Append(arr[i+4] >= cmp)
		builder.Append(arr[i+5] >= cmp)
		builder.Append(arr[i+6] >= cmp)
		builder.Append(arr[i+7] >= cmp)
	}

	for ; i < n; i++ {
		builder.Append(arr[i] >= cmp)
	}
}
