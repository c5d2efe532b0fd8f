package column

import "fmt"

// SearchValidationResult classifies a (value, op) pair against a column
// type without touching the column's data.
type SearchValidationResult uint8

const (
	// ValidationOk means the dispatcher must actually scan the column.
	ValidationOk SearchValidationResult = iota
	// ValidationAllData means every row in the search range matches.
	ValidationAllData
	// ValidationNoData means no row matches.
	ValidationNoData
)

// ValidateSearchConstraints decides whether op applied to val against a
// column of type typ can be answered without inspecting the data. It is a
// pure function: no I/O, no allocation. Malformed queries — a null scalar
// paired with anything but IS NULL/IS NOT NULL, or IS NULL/IS NOT NULL
// paired with a non-null scalar — indicate an upstream planner bug and
// panic rather than returning an error, matching the fatal/programmer-error
// tier of this engine's error model.
func ValidateSearchConstraints(typ ColumnType, val Scalar, op Operator) SearchValidationResult {
	if val.IsNull() {
		switch op {
		case IsNull:
			return ValidationNoData
		case IsNotNull:
			return ValidationAllData
		default:
			panic(fmt.Sprintf("numstorage: null scalar is only valid with IsNull/IsNotNull, got %s", op))
		}
	}

	switch op {
	case IsNull, IsNotNull:
		panic(fmt.Sprintf("numstorage: %s requires a null scalar", op))
	case Glob, Regex:
		return ValidationNoData
	case Eq, Ne, Lt, Le, Gt, Ge:
		// fall through to type/bounds checks below
	default:
		panic(fmt.Sprintf("numstorage: unhandled operator %s in ValidateSearchConstraints", op))
	}

	switch val.Kind() {
	case KindString:
		// Any string sorts strictly after any numeric value.
		if op == Lt || op == Le {
			return ValidationAllData
		}
		return ValidationNoData
	case KindBytes:
		return ValidationNoData
	case KindF64:
		if typ != F64 {
			// Comparing a floating scalar against an integral column has no
			// defined semantics here; reject upstream rather than guess.
			panic("numstorage: floating-point scalar against an integral column is not supported")
		}
		return ValidationOk
	case KindI64:
		v, _ := val.AsInt64()
		min, max, bounded := intBounds(typ)
		if !bounded {
			return ValidationOk
		}
		if v > max {
			if op == Lt || op == Le || op == Ne {
				return ValidationAllData
			}
			return ValidationNoData
		}
		if v < min {
			if op == Gt || op == Ge || op == Ne {
				return ValidationAllData
			}
			return ValidationNoData
		}
		return ValidationOk
	default:
		panic(fmt.Sprintf("numstorage: unhandled scalar kind %d in ValidateSearchConstraints", val.Kind()))
	}
}
