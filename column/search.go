package column

import (
	"fmt"

	"github.com/dot5enko/numstorage/bitmap"
	"github.com/dot5enko/numstorage/ops"
	"github.com/dot5enko/numstorage/tracing"
)

// neRangeBitmap turns an Eq match range [lo, hi) into the Ne bitmap over
// [start, end): true outside [lo, hi), false inside it. Used by both the
// sorted dense path and the sorted indexed path, since Ne never gets to
// collapse to a single contiguous Range once data is excluded from the
// middle of the search window.
func neRangeBitmap(start, lo, hi, end uint32) bitmap.Bitmap {
	builder := bitmap.NewBuilder(end, start)
	for i := start; i < lo; i++ {
		builder.Append(true)
	}
	for i := lo; i < hi; i++ {
		builder.Append(false)
	}
	for i := hi; i < end; i++ {
		builder.Append(true)
	}
	return builder.Build()
}

// dense binary-search bounds for the column's own type, run against
// row-space [r.Start, r.End).
func (c *Column) equalRangeDense(val narrowedValue, r Range) (lo, hi uint32) {
	switch c.typ {
	case U32:
		return ops.LowerBound(c.u32, val.u32, r.Start, r.End), ops.UpperBound(c.u32, val.u32, r.Start, r.End)
	case I32:
		return ops.LowerBound(c.i32, val.i32, r.Start, r.End), ops.UpperBound(c.i32, val.i32, r.Start, r.End)
	case I64:
		return ops.LowerBound(c.i64, val.i64, r.Start, r.End), ops.UpperBound(c.i64, val.i64, r.Start, r.End)
	case F64:
		return ops.LowerBoundF64(c.f64, val.f64, r.Start, r.End), ops.UpperBoundF64(c.f64, val.f64, r.Start, r.End)
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(c.typ)))
	}
}

// Search answers op/val against the rows in r, assuming r is itself
// non-decreasing when c.Sorted() is true (the caller is expected to pass the
// column's full extent, or a previously narrowed sorted sub-range). It
// emits exactly one tracing event per call.
func (c *Column) Search(op Operator, val Scalar, r Range) RangeOrBitmap {
	switch ValidateSearchConstraints(c.typ, val, op) {
	case ValidationAllData:
		tracing.EmitRange("Search", op, r.Start, r.End)
		return rangeResult(r)
	case ValidationNoData:
		tracing.EmitRange("Search", op, r.Start, r.Start)
		return rangeResult(Range{Start: r.Start, End: r.Start})
	}

	nv := narrow(c.typ, val)

	if !c.sorted {
		bm := c.linearScanDense(op, nv, r)
		tracing.EmitCount("Search", op, bm.Count())
		return bitmapResult(bm)
	}

	switch op {
	case Eq:
		lo, hi := c.equalRangeDense(nv, r)
		tracing.EmitRange("Search", op, lo, hi)
		return rangeResult(Range{Start: lo, End: hi})
	case Ne:
		lo, hi := c.equalRangeDense(nv, r)
		bm := neRangeBitmap(r.Start, lo, hi, r.End)
		tracing.EmitCount("Search", op, bm.Count())
		return bitmapResult(bm)
	case Lt:
		lo, _ := c.equalRangeDense(nv, r)
		tracing.EmitRange("Search", op, r.Start, lo)
		return rangeResult(Range{Start: r.Start, End: lo})
	case Le:
		_, hi := c.equalRangeDense(nv, r)
		tracing.EmitRange("Search", op, r.Start, hi)
		return rangeResult(Range{Start: r.Start, End: hi})
	case Gt:
		_, hi := c.equalRangeDense(nv, r)
		tracing.EmitRange("Search", op, hi, r.End)
		return rangeResult(Range{Start: hi, End: r.End})
	case Ge:
		lo, _ := c.equalRangeDense(nv, r)
		tracing.EmitRange("Search", op, lo, r.End)
		return rangeResult(Range{Start: lo, End: r.End})
	default:
		panic(fmt.Sprintf("numstorage: %s cannot run against sorted data", op))
	}
}

// equalRangeIndexed runs the indexed binary-search bounds for the column's
// own type over indices, which must be ordered so that arr[indices[k]] is
// non-decreasing in k.
func (c *Column) equalRangeIndexed(val narrowedValue, indices []uint32) (lo, hi uint32) {
	switch c.typ {
	case U32:
		return ops.LowerBoundIndexed(c.u32, indices, val.u32), ops.UpperBoundIndexed(c.u32, indices, val.u32)
	case I32:
		return ops.LowerBoundIndexed(c.i32, indices, val.i32), ops.UpperBoundIndexed(c.i32, indices, val.i32)
	case I64:
		return ops.LowerBoundIndexed(c.i64, indices, val.i64), ops.UpperBoundIndexed(c.i64, indices, val.i64)
	case F64:
		return ops.LowerBoundIndexedF64(c.f64, indices, val.f64), ops.UpperBoundIndexedF64(c.f64, indices, val.f64)
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(c.typ)))
	}
}

// IndexSearch answers op/val against the rows named by indices, an
// arbitrary external row-index list that the caller asserts is non-
// decreasing in the column's values when sorted is true. Any Range the
// result carries is in index-list space — position k, not row indices[k] —
// matching Search's row-space convention only when indices itself is the
// identity permutation.
//
// Once validation returns ValidationOk, Ne never collapses to a Range here,
// even when sorted: as in Search, the rows surviving Ne are not contiguous
// in index-list space unless the match sits at one end, so the sorted path
// returns the excluded-middle bitmap rather than the always-empty range a
// naive port of the equivalent C++ binary-search path would produce.
func (c *Column) IndexSearch(op Operator, val Scalar, indices []uint32, sorted bool) RangeOrBitmap {
	total := uint32(len(indices))

	switch ValidateSearchConstraints(c.typ, val, op) {
	case ValidationAllData:
		tracing.EmitRange("IndexSearch", op, 0, total)
		return rangeResult(Range{Start: 0, End: total})
	case ValidationNoData:
		tracing.EmitRange("IndexSearch", op, 0, 0)
		return rangeResult(Range{Start: 0, End: 0})
	}

	nv := narrow(c.typ, val)

	if !sorted {
		bm := c.linearScanSparse(op, nv, indices)
		tracing.EmitCount("IndexSearch", op, bm.Count())
		return bitmapResult(bm)
	}

	switch op {
	case Eq:
		lo, hi := c.equalRangeIndexed(nv, indices)
		tracing.EmitRange("IndexSearch", op, lo, hi)
		return rangeResult(Range{Start: lo, End: hi})
	case Ne:
		lo, hi := c.equalRangeIndexed(nv, indices)
		bm := neRangeBitmap(0, lo, hi, total)
		tracing.EmitCount("IndexSearch", op, bm.Count())
		return bitmapResult(bm)
	case Lt:
		lo, _ := c.equalRangeIndexed(nv, indices)
		tracing.EmitRange("IndexSearch", op, 0, lo)
		return rangeResult(Range{Start: 0, End: lo})
	case Le:
		_, hi := c.equalRangeIndexed(nv, indices)
		tracing.EmitRange("IndexSearch", op, 0, hi)
		return rangeResult(Range{Start: 0, End: hi})
	case Gt:
		_, hi := c.equalRangeIndexed(nv, indices)
		tracing.EmitRange("IndexSearch", op, hi, total)
		return rangeResult(Range{Start: hi, End: total})
	case Ge:
		lo, _ := c.equalRangeIndexed(nv, indices)
		tracing.EmitRange("IndexSearch", op, lo, total)
		return rangeResult(Range{Start: lo, End: total})
	default:
		panic(fmt.Sprintf("numstorage: %s cannot run against sorted data", op))
	}
}
