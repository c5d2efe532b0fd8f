package column

import "testing"

func TestValidateNullScalar(t *testing.T) {
	if got := ValidateSearchConstraints(I64, NullScalar(), IsNull); got != ValidationNoData {
		t.Errorf("IsNull against null scalar: expected NoData, got %v", got)
	}
	if got := ValidateSearchConstraints(I64, NullScalar(), IsNotNull); got != ValidationAllData {
		t.Errorf("IsNotNull against null scalar: expected AllData, got %v", got)
	}
}

func TestValidateNullScalarWithWrongOpPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for null scalar with Eq")
		}
	}()
	ValidateSearchConstraints(I64, NullScalar(), Eq)
}

func TestValidateIsNullWithNonNullScalarPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for IsNull with a non-null scalar")
		}
	}()
	ValidateSearchConstraints(I64, Int64Scalar(1), IsNull)
}

func TestValidateGlobRegexAlwaysNoData(t *testing.T) {
	if got := ValidateSearchConstraints(I64, Int64Scalar(1), Glob); got != ValidationNoData {
		t.Errorf("Glob: expected NoData, got %v", got)
	}
	if got := ValidateSearchConstraints(I64, Int64Scalar(1), Regex); got != ValidationNoData {
		t.Errorf("Regex: expected NoData, got %v", got)
	}
}

func TestValidateStringScalar(t *testing.T) {
	if got := ValidateSearchConstraints(I64, StringScalar("x"), Lt); got != ValidationAllData {
		t.Errorf("Lt against string: expected AllData, got %v", got)
	}
	if got := ValidateSearchConstraints(I64, StringScalar("x"), Le); got != ValidationAllData {
		t.Errorf("Le against string: expected AllData, got %v", got)
	}
	if got := ValidateSearchConstraints(I64, StringScalar("x"), Eq); got != ValidationNoData {
		t.Errorf("Eq against string: expected NoData, got %v", got)
	}
	if got := ValidateSearchConstraints(I64, StringScalar("x"), Gt); got != ValidationNoData {
		t.Errorf("Gt against string: expected NoData, got %v", got)
	}
}

func TestValidateFloatScalarAgainstIntColumnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for float scalar against an integral column")
		}
	}()
	ValidateSearchConstraints(I32, Float64Scalar(1.5), Eq)
}

// S3: U32, Lt(-1) is NoData (TooSmall), Ge(-1) is AllData (TooSmall).
func TestValidateU32NegativeScalar(t *testing.T) {
	if got := ValidateSearchConstraints(U32, Int64Scalar(-1), Lt); got != ValidationNoData {
		t.Errorf("Lt(-1) against U32: expected NoData, got %v", got)
	}
	if got := ValidateSearchConstraints(U32, Int64Scalar(-1), Ge); got != ValidationAllData {
		t.Errorf("Ge(-1) against U32: expected AllData, got %v", got)
	}
}

// S4: I32, Ne(2^40) is AllData (TooBig).
func TestValidateI32TooBigScalar(t *testing.T) {
	if got := ValidateSearchConstraints(I32, Int64Scalar(1<<40), Ne); got != ValidationAllData {
		t.Errorf("Ne(2^40) against I32: expected AllData, got %v", got)
	}
	if got := ValidateSearchConstraints(I32, Int64Scalar(1<<40), Eq); got != ValidationNoData {
		t.Errorf("Eq(2^40) against I32: expected NoData, got %v", got)
	}
}

func TestValidateUnboundedTypesAlwaysOk(t *testing.T) {
	if got := ValidateSearchConstraints(I64, Int64Scalar(1<<62), Eq); got != ValidationOk {
		t.Errorf("I64 is never bounds-rejected: expected Ok, got %v", got)
	}
	if got := ValidateSearchConstraints(F64, Float64Scalar(1e300), Eq); got != ValidationOk {
		t.Errorf("F64 is never bounds-rejected: expected Ok, got %v", got)
	}
}

// soundness: every value the validator declares AllData/NoData must agree
// with a brute-force scan, property 5 in spec terms.
func TestValidateSoundnessAgainstBruteForce(t *testing.T) {
	data := []int32{-5, -1, 0, 1, 5, 100}
	col := NewI32(append([]int32(nil), data...), false)
	full := Range{Start: 0, End: col.Len()}

	scalars := []int64{-1 << 33, -6, 0, 100, 1 << 33}
	ops := []Operator{Eq, Ne, Lt, Le, Gt, Ge}

	for _, raw := range scalars {
		for _, op := range ops {
			val := Int64Scalar(raw)
			result := ValidateSearchConstraints(I32, val, op)
			if result == ValidationOk {
				continue
			}

			for i, v := range data {
				matches := bruteForceMatch(op, int64(v), raw)
				if result == ValidationAllData && !matches {
					t.Errorf("op=%s v=%d i=%d: validator said AllData but brute force disagrees", op, raw, i)
				}
				if result == ValidationNoData && matches {
					t.Errorf("op=%s v=%d i=%d: validator said NoData but brute force disagrees", op, raw, i)
				}
			}
		}
	}

	_ = col
	_ = full
}

func bruteForceMatch(op Operator, elem, scalar int64) bool {
	switch op {
	case Eq:
		return elem == scalar
	case Ne:
		return elem != scalar
	case Lt:
		return elem < scalar
	case Le:
		return elem <= scalar
	case Gt:
		return elem > scalar
	case Ge:
		return elem >= scalar
	default:
		panic("unhandled op in bruteForceMatch")
	}
}
