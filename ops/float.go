package ops

import "github.com/dot5enko/numstorage/bitmap"

// EqF64 appends one bit per element of arr, true where arr[i] == cmp under
// the FloatOrderKey total order.
func EqF64(arr []float64, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(FloatOrderKey(arr[i+0]) == key)
		builder.Append(FloatOrderKey(arr[i+1]) == key)
		builder.Append(FloatOrderKey(arr[i+2]) == key)
		builder.Append(FloatOrderKey(arr[i+3]) == key)
		builder.Append(FloatOrderKey(arr[i+4]) == key)
		builder.Append(FloatOrderKey(arr[i+5]) == key)
		builder.Append(FloatOrderKey(arr[i+6]) == key)
		builder.Append(FloatOrderKey(arr[i+7]) == key)
	}

	for ; i < n; i++ {
		builder.Append(FloatOrderKey(arr[i]) == key)
	}
}

// NeF64 appends one bit per element of arr, true where arr[i] != cmp.
func NeF64(arr []float64, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(FloatOrderKey(arr[i+0]) != key)
		builder.Append(FloatOrderKey(arr[i+1]) != key)
		builder.Append(FloatOrderKey(arr[i+2]) != key)
		builder.Append(FloatOrderKey(arr[i+3]) != key)
		builder.Append(FloatOrderKey(arr[i+4]) != key)
		builder.Append(FloatOrderKey(arr[i+5]) != key)
		builder.Append(FloatOrderKey(arr[i+6]) != key)
		builder.Append(FloatOrderKey(arr[i+7]) != key)
	}

	for ; i < n; i++ {
		builder.Append(FloatOrderKey(arr[i]) != key)
	}
}

// LtF64 appends one bit per element of arr, true where arr[i] < cmp.
func LtF64(arr []float64, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(FloatOrderKey(arr[i+0]) < key)
		builder.Append(FloatOrderKey(arr[i+1]) < key)
		builder.Append(FloatOrderKey(arr[i+2]) < key)
		builder.Append(FloatOrderKey(arr[i+3]) < key)
		builder.Append(FloatOrderKey(arr[i+4]) < key)
		builder.Append(FloatOrderKey(arr[i+5]) < key)
		builder.Append(FloatOrderKey(arr[i+6]) < key)
		builder.Append(FloatOrderKey(arr[i+7]) < key)
	}

	for ; i < n; i++ {
		builder.Append(FloatOrderKey(arr[i]) < key)
	}
}

// LeF64 appends one bit per element of arr, true where arr[i] <= cmp.
func LeF64(arr []float64, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(FloatOrderKey(arr[i+0]) <= key)
		builder.Append(FloatOrderKey(arr[i+1]) <= key)
		builder.Append(FloatOrderKey(arr[i+2]) <= key)
		builder.Append(FloatOrderKey(arr[i+3]) <= key)
		builder.Append(FloatOrderKey(arr[i+4]) <= key)
		builder.Append(FloatOrderKey(arr[i+5]) <= key)
		builder.Append(FloatOrderKey(arr[i+6]) <= key)
		builder.Append(FloatOrderKey(arr[i+7]) <= key)
	}

	for ; i < n; i++ {
		builder.Append(FloatOrderKey(arr[i]) <= key)
	}
}

// GtF64 appends one bit per element of arr, true where arr[i] > cmp.
func GtF64(arr []float64, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(FloatOrderKey(arr[i+0]) > key)
		builder.Append(FloatOrderKey(arr[i+1]) > key)
		builder.Append(FloatOrderKey(arr[i+2]) > key)
		builder.Append(FloatOrderKey(arr[i+3]) > key)
		builder.Append(FloatOrderKey(arr[i+4]) > key)
		builder.Append(FloatOrderKey(arr[i+5]) > key)
		builder.Append(FloatOrderKey(arr[i+6]) > key)
		builder.Append(FloatOrderKey(arr[i+7]) > key)
	}

	for ; i < n; i++ {
		builder.Append(FloatOrderKey(arr[i]) > key)
	}
}

// GeF64 appends one bit per element of arr, true where arr[i] >= cmp.
func GeF64(arr []float64, cmp float64, builder *bitmap.Builder) {
	key := FloatOrderKey(cmp)
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		builder.Append(FloatOrderKey(arr[i+0]) >= key)
		builder.Append(FloatOrderKey(arr[i+1]) >= key)
		builder.Append(FloatOrderKey(arr[i+2]) >= key)
		builder.Append(FloatOrderKey(arr[i+3]) >= key)
		builder.Append(FloatOrderKey(arr[i+4]) >= key)
		builder.Append(FloatOrderKey(arr[i+5]) >= key)
		builder.Append(FloatOrderKey(arr[i+6]) >= key)
		builder.Append(FloatOrderKey(arr[i+7]) >= key)
	}

	for ; i < n; i++ {
		builder.Append(FloatOrderKey(arr[i]) >= key)
	}
}
