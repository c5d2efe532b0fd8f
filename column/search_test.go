package column

import "testing"

func requireRange(t *testing.T, got RangeOrBitmap, wantStart, wantEnd uint32) {
	t.Helper()
	rng, ok := got.Range()
	if !ok {
		t.Fatalf("expected a Range result, got a bitmap")
	}
	if rng.Start != wantStart || rng.End != wantEnd {
		t.Errorf("expected Range[%d,%d) but got Range[%d,%d)", wantStart, wantEnd, rng.Start, rng.End)
	}
}

// S1
func TestSearchEqAndNeSorted(t *testing.T) {
	col := NewI64([]int64{1, 3, 3, 3, 7}, true)
	full := Range{Start: 0, End: 5}

	eq := col.Search(Eq, Int64Scalar(3), full)
	requireRange(t, eq, 1, 4)

	ne := col.Search(Ne, Int64Scalar(3), full)
	bm := ne.Bitmap(5)
	want := []bool{true, false, false, false, true}
	for i, w := range want {
		if bm.Get(uint32(i)) != w {
			t.Errorf("Ne bit %d: expected %v but got %v", i, w, bm.Get(uint32(i)))
		}
	}
}

// S2
func TestSearchOrderedComparisonsSorted(t *testing.T) {
	col := NewI64([]int64{1, 3, 3, 3, 7}, true)
	full := Range{Start: 0, End: 5}

	requireRange(t, col.Search(Lt, Int64Scalar(3), full), 0, 1)
	requireRange(t, col.Search(Le, Int64Scalar(3), full), 0, 4)
	requireRange(t, col.Search(Gt, Int64Scalar(3), full), 4, 5)
	requireRange(t, col.Search(Ge, Int64Scalar(3), full), 1, 5)
}

// S3
func TestSearchU32NegativeScalarBounds(t *testing.T) {
	col := NewU32([]uint32{1, 2, 3}, true)
	full := Range{Start: 0, End: 3}

	requireRange(t, col.Search(Lt, Int64Scalar(-1), full), 0, 0)
	requireRange(t, col.Search(Ge, Int64Scalar(-1), full), 0, 3)
}

// S4
func TestSearchI32TooBigScalarNe(t *testing.T) {
	col := NewI32([]int32{1, 2, 3}, true)
	full := Range{Start: 0, End: 3}

	requireRange(t, col.Search(Ne, Int64Scalar(1<<40), full), 0, 3)
}

// S5
func TestSearchUnsortedEqBitmap(t *testing.T) {
	col := NewI32([]int32{5, 2, 5, 2, 5}, false)
	full := Range{Start: 0, End: 5}

	got := col.Search(Eq, Int64Scalar(5), full)
	bm := got.Bitmap(5)
	want := []bool{true, false, true, false, true}
	for i, w := range want {
		if bm.Get(uint32(i)) != w {
			t.Errorf("bit %d: expected %v but got %v", i, w, bm.Get(uint32(i)))
		}
	}

	idx := col.IndexSearch(Eq, Int64Scalar(5), []uint32{4, 0, 2}, false)
	idxBm := idx.Bitmap(3)
	for k := 0; k < 3; k++ {
		if !idxBm.Get(uint32(k)) {
			t.Errorf("index-space bit %d: expected true", k)
		}
	}
}

// S6
func TestIndexSearchSortedIndexSpaceRange(t *testing.T) {
	col := NewI32([]int32{2, 2, 5, 5, 5}, false)
	indices := []uint32{0, 1, 2, 3, 4}

	got := col.IndexSearch(Gt, Int64Scalar(2), indices, true)
	requireRange(t, got, 2, 5)
}

// property 3: Ne and Eq partition the search range with no overlap.
func TestNeComplementsEq(t *testing.T) {
	col := NewI64([]int64{1, 3, 3, 3, 7}, true)
	full := Range{Start: 0, End: 5}

	eqRng, ok := col.Search(Eq, Int64Scalar(3), full).Range()
	if !ok {
		t.Fatalf("expected Eq to return a Range")
	}
	neBm := col.Search(Ne, Int64Scalar(3), full).Bitmap(5)

	for i := uint32(0); i < 5; i++ {
		inEq := i >= eqRng.Start && i < eqRng.End
		if inEq == neBm.Get(i) {
			t.Errorf("row %d: Eq and Ne overlap or leave a gap", i)
		}
	}
}

// property 1: sorted Search agrees with an unsorted linear scan over the
// same data for every operator.
func TestSortedSearchAgreesWithLinearScan(t *testing.T) {
	data := []int64{1, 2, 2, 4, 5, 5, 5, 9}
	sorted := NewI64(append([]int64(nil), data...), true)
	unsorted := NewI64(append([]int64(nil), data...), false)
	full := Range{Start: 0, End: uint32(len(data))}

	for _, op := range []Operator{Eq, Ne, Lt, Le, Gt, Ge} {
		for _, v := range []int64{0, 2, 5, 9, 10} {
			sortedBm := sorted.Search(op, Int64Scalar(v), full).Bitmap(uint32(len(data)))
			scanBm := unsorted.Search(op, Int64Scalar(v), full).Bitmap(uint32(len(data)))
			for i := uint32(0); i < uint32(len(data)); i++ {
				if sortedBm.Get(i) != scanBm.Get(i) {
					t.Errorf("op=%s v=%d row=%d: sorted result %v != scan result %v", op, v, i, sortedBm.Get(i), scanBm.Get(i))
				}
			}
		}
	}
}

// property 7: IndexSearch(..., sorted=false) aligns bit k to idx[k], not
// row k of the column.
func TestIndexSearchUnsortedAliasesIndexList(t *testing.T) {
	col := NewI32([]int32{5, 2, 5, 2, 5}, false)
	indices := []uint32{1, 3, 0}

	got := col.IndexSearch(Eq, Int64Scalar(2), indices, false)
	bm := got.Bitmap(uint32(len(indices)))

	want := []bool{true, true, false}
	for k, w := range want {
		if bm.Get(uint32(k)) != w {
			t.Errorf("bit %d: expected %v but got %v", k, w, bm.Get(uint32(k)))
		}
	}
}

// property 8: repeated calls against an unchanged column are bit-identical.
func TestSearchIdempotent(t *testing.T) {
	col := NewI64([]int64{1, 3, 3, 3, 7}, true)
	full := Range{Start: 0, End: 5}

	first := col.Search(Ne, Int64Scalar(3), full).Bitmap(5)
	second := col.Search(Ne, Int64Scalar(3), full).Bitmap(5)

	for i := uint32(0); i < 5; i++ {
		if first.Get(i) != second.Get(i) {
			t.Errorf("row %d: repeated Search produced different results", i)
		}
	}
}

// the fix relative to a naive port: indexed Ne over a sorted index list
// must return the excluded-middle bitmap, not an always-empty range.
func TestIndexSearchSortedNeIsNotAlwaysEmpty(t *testing.T) {
	col := NewI32([]int32{2, 2, 5, 5, 5}, false)
	indices := []uint32{0, 1, 2, 3, 4}

	got := col.IndexSearch(Ne, Int64Scalar(5), indices, true)
	bm := got.Bitmap(5)

	want := []bool{true, true, false, false, false}
	for i, w := range want {
		if bm.Get(uint32(i)) != w {
			t.Errorf("bit %d: expected %v but got %v", i, w, bm.Get(uint32(i)))
		}
	}
}
