package column

import "fmt"

// ColumnType is the closed set of element types a Column can hold, fixed at
// construction and governing how its byte buffer is interpreted.
type ColumnType uint8

const (
	U32 ColumnType = iota
	I32
	I64
	F64
)

// String renders the type name, panicking on an unknown tag the way the
// rest of this package's closed enums do.
func (t ColumnType) String() string {
	switch t {
	case U32:
		return "U32"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F64:
		return "F64"
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(t)))
	}
}

// Size returns the width in bytes of a single element of this type.
func (t ColumnType) Size() int {
	switch t {
	case U32, I32:
		return 4
	case I64, F64:
		return 8
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(t)))
	}
}
