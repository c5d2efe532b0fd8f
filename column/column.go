package column

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/davecgh/go-spew/spew"
)

// Column is an immutable, contiguous, strongly-typed numeric column. Only
// one of the typed slice fields is populated, chosen by typ; the byte
// buffer is reinterpreted into it exactly once, at construction, rather
// than on every access — the sum-type-over-typed-slices shape spec.md's
// design notes call for.
type Column struct {
	typ    ColumnType
	sorted bool
	length uint32

	u32 []uint32
	i32 []int32
	i64 []int64
	f64 []float64
}

// NewU32 constructs a column over values. sorted is the caller's assertion
// that values are non-decreasing; it is not verified here.
func NewU32(values []uint32, sorted bool) Column {
	return Column{typ: U32, sorted: sorted, length: uint32(len(values)), u32: values}
}

// NewI32 constructs a column over values.
func NewI32(values []int32, sorted bool) Column {
	return Column{typ: I32, sorted: sorted, length: uint32(len(values)), i32: values}
}

// NewI64 constructs a column over values.
func NewI64(values []int64, sorted bool) Column {
	return Column{typ: I64, sorted: sorted, length: uint32(len(values)), i64: values}
}

// NewF64 constructs a column over values.
func NewF64(values []float64, sorted bool) Column {
	return Column{typ: F64, sorted: sorted, length: uint32(len(values)), f64: values}
}

// mapBytesToSlice reinterprets a raw byte buffer as a typed slice, the same
// unsafe-reinterpretation technique the teacher's bits.MapBytesToArray
// uses, generalized to the four concrete element types this column
// supports instead of an arbitrary any-typed count.
func mapBytesToSlice[T any](data []byte, count int) []T {
	var sample T
	elemSize := int(reflect.TypeOf(sample).Size())
	if len(data) < count*elemSize {
		panic(fmt.Sprintf("numstorage: not enough bytes: need %d, have %d", count*elemSize, len(data)))
	}
	if count == 0 {
		return nil
	}
	ptr := (*T)(unsafe.Pointer(&data[0]))
	return unsafe.Slice(ptr, count)
}

// FromBytes reconstructs a Column from a raw byte buffer laid out as a
// densely packed array of typ's element type in host byte order, as
// produced by Serialize. It is the counterpart used by the serialization
// round trip (spec.md testable property 9).
func FromBytes(typ ColumnType, sorted bool, length uint32, raw []byte) Column {
	if len(raw) != int(length)*typ.Size() {
		panic(fmt.Sprintf("numstorage: buffer length %d does not match %d elements of type %s", len(raw), length, typ))
	}

	switch typ {
	case U32:
		return NewU32(mapBytesToSlice[uint32](raw, int(length)), sorted)
	case I32:
		return NewI32(mapBytesToSlice[int32](raw, int(length)), sorted)
	case I64:
		return NewI64(mapBytesToSlice[int64](raw, int(length)), sorted)
	case F64:
		return NewF64(mapBytesToSlice[float64](raw, int(length)), sorted)
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(typ)))
	}
}

// Len returns the number of elements in the column.
func (c *Column) Len() uint32 { return c.length }

// Type returns the column's element type.
func (c *Column) Type() ColumnType { return c.typ }

// Sorted reports the column's sortedness flag.
func (c *Column) Sorted() bool { return c.sorted }

// bytesView reinterprets the column's typed slice back into a raw byte
// buffer, for Serialize. It is the mirror image of mapBytesToSlice.
func (c *Column) bytesView() []byte {
	switch c.typ {
	case U32:
		if len(c.u32) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(&c.u32[0])), len(c.u32)*4)
	case I32:
		if len(c.i32) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(&c.i32[0])), len(c.i32)*4)
	case I64:
		if len(c.i64) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(&c.i64[0])), len(c.i64)*8)
	case F64:
		if len(c.f64) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(&c.f64[0])), len(c.f64)*8)
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(c.typ)))
	}
}

// DebugDump renders the column's metadata for logs and tests. It never
// touches the hot query path.
func (c *Column) DebugDump() string {
	return spew.Sdump(struct {
		Type   ColumnType
		Sorted bool
		Length uint32
	}{c.typ, c.sorted, c.length})
}

// narrowedValue is the scalar already cast down to the column's element
// type, computed once per query after ValidateSearchConstraints has
// confirmed the value fits.
type narrowedValue struct {
	u32 uint32
	i32 int32
	i64 int64
	f64 float64
}

// narrow converts val into the column's element type. Callers must only
// invoke this after ValidateSearchConstraints has returned ValidationOk;
// range fitness is not re-checked here.
func narrow(typ ColumnType, val Scalar) narrowedValue {
	switch typ {
	case U32:
		v, _ := val.AsInt64()
		return narrowedValue{u32: uint32(v)}
	case I32:
		v, _ := val.AsInt64()
		return narrowedValue{i32: int32(v)}
	case I64:
		v, _ := val.AsInt64()
		return narrowedValue{i64: v}
	case F64:
		v, _ := val.AsFloat64()
		return narrowedValue{f64: v}
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(typ)))
	}
}
