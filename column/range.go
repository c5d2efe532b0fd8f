package column

import "github.com/dot5enko/numstorage/bitmap"

// Range is a half-open interval [Start, End) of row indices, either in
// column row space or, for IndexSearch's sorted path, in index-list space.
type Range struct {
	Start uint32
	End   uint32
}

// Empty reports whether the range contains no rows.
func (r Range) Empty() bool { return r.Start >= r.End }

// Len reports the number of rows covered by the range.
func (r Range) Len() uint32 {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// RangeOrBitmap is the sum type Search and IndexSearch return: a compact
// Range when the sorted fast path can express the answer as one contiguous
// interval, a Bitmap otherwise. Consumers must handle both.
type RangeOrBitmap struct {
	isRange bool
	rng     Range
	bm      bitmap.Bitmap
}

func rangeResult(r Range) RangeOrBitmap {
	return RangeOrBitmap{isRange: true, rng: r}
}

func bitmapResult(b bitmap.Bitmap) RangeOrBitmap {
	return RangeOrBitmap{bm: b}
}

// IsRange reports whether the result is the compact Range form.
func (r RangeOrBitmap) IsRange() bool { return r.isRange }

// Range returns the Range form and whether it is valid; ok is false if the
// result is a Bitmap.
func (r RangeOrBitmap) Range() (rng Range, ok bool) {
	return r.rng, r.isRange
}

// Bitmap returns the result materialized as a Bitmap. A Range result is
// synthesized into a Bitmap of the given total length; a Bitmap result is
// returned as is, at its own length, and totalLen is ignored. This exists
// for callers (tests, cross-checks) that want one uniform shape; the
// dispatcher itself never calls this, since the whole point of the range
// form is to avoid building a bitmap.
func (r RangeOrBitmap) Bitmap(totalLen uint32) bitmap.Bitmap {
	if !r.isRange {
		return r.bm
	}
	bm := bitmap.New(totalLen, false)
	for i := r.rng.Start; i < r.rng.End; i++ {
		bm.Set(i)
	}
	return bm
}
