package column

import "math"

// intBounds returns the [min, max] an integer scalar must fall within to be
// representable by typ, and whether typ actually needs the check at all.
// I64 never needs it (a Scalar's integer payload is already an int64), and
// F64 is never bounds-checked either (any numeric scalar is admitted for it).
func intBounds(typ ColumnType) (min, max int64, bounded bool) {
	switch typ {
	case U32:
		return 0, int64(math.MaxUint32), true
	case I32:
		return math.MinInt32, math.MaxInt32, true
	case I64:
		return 0, 0, false
	case F64:
		return 0, 0, false
	default:
		panic("numstorage: unknown column type in intBounds")
	}
}
