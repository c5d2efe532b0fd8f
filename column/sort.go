package column

import (
	"cmp"
	"fmt"
	"log"
	"slices"

	"github.com/dot5enko/numstorage/ops"
)

// StableSort reorders indices in place so that the column's values at those
// positions are non-decreasing, preserving the relative order of equal
// elements — the same slices.SortStableFunc + cmp.Compare combination the
// teacher's query planner uses to order filtered groups, with a per-type
// comparator swapped in; on the F64 path cmp.Compare is applied to the
// FloatOrderKey of each value rather than to the raw float, so NaN gets a
// stable, well-defined position instead of comparing unordered against
// everything.
func (c *Column) StableSort(indices []uint32) {
	switch c.typ {
	case U32:
		slices.SortStableFunc(indices, func(a, b uint32) int {
			return cmp.Compare(c.u32[a], c.u32[b])
		})
	case I32:
		slices.SortStableFunc(indices, func(a, b uint32) int {
			return cmp.Compare(c.i32[a], c.i32[b])
		})
	case I64:
		slices.SortStableFunc(indices, func(a, b uint32) int {
			return cmp.Compare(c.i64[a], c.i64[b])
		})
	case F64:
		slices.SortStableFunc(indices, func(a, b uint32) int {
			return cmp.Compare(ops.FloatOrderKey(c.f64[a]), ops.FloatOrderKey(c.f64[b]))
		})
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(c.typ)))
	}
}

// Sort is a deliberate no-op: ordering rows by anything other than this
// column's own stable total order (timestamps, arrival order, an upstream
// merge key) is outside what a single typed column can decide on its own.
// It only logs, so a caller that wires it in by mistake notices in the
// trace output rather than silently getting StableSort's cost without
// asking for it.
func (c *Column) Sort(indices []uint32) {
	log.Printf("numstorage: Sort is a no-op on column of type %s; use StableSort", c.typ)
}
