package column

import "testing"

func TestNewAndLen(t *testing.T) {
	c := NewI64([]int64{1, 2, 3}, false)
	if c.Len() != 3 {
		t.Errorf("expected length 3, got %d", c.Len())
	}
	if c.Type() != I64 {
		t.Errorf("expected type I64, got %s", c.Type())
	}
	if c.Sorted() {
		t.Errorf("expected unsorted column")
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	orig := NewU32([]uint32{10, 20, 30}, true)
	raw := orig.bytesView()

	rebuilt := FromBytes(U32, true, orig.Len(), raw)
	if rebuilt.Len() != orig.Len() || rebuilt.Type() != orig.Type() || rebuilt.Sorted() != orig.Sorted() {
		t.Fatalf("metadata mismatch after FromBytes")
	}
	for i := range rebuilt.u32 {
		if rebuilt.u32[i] != orig.u32[i] {
			t.Errorf("at %d: expected %d but got %d", i, orig.u32[i], rebuilt.u32[i])
		}
	}
}

func TestNarrowCoercesFloatToInt(t *testing.T) {
	nv := narrow(I32, Float64Scalar(42))
	if nv.i32 != 42 {
		t.Errorf("expected narrowed value 42, got %d", nv.i32)
	}
}

func TestNarrowCoercesIntToFloat(t *testing.T) {
	nv := narrow(F64, Int64Scalar(7))
	if nv.f64 != 7 {
		t.Errorf("expected narrowed value 7, got %v", nv.f64)
	}
}
