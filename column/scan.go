package column

import (
	"fmt"

	"github.com/dot5enko/numstorage/bitmap"
	"github.com/dot5enko/numstorage/ops"
)

// linearScanDense walks bytes[r.Start:r.End) and evaluates op against val
// for each element, producing a bitmap of length r.End with bits below
// r.Start left unset. The type switch and the op switch inside it are each
// evaluated once per call, not once per element — the inner ops.* functions
// are the monomorphic per-(type, op) loops.
func (c *Column) linearScanDense(op Operator, val narrowedValue, r Range) bitmap.Bitmap {
	builder := bitmap.NewBuilder(r.End, r.Start)

	switch c.typ {
	case U32:
		arr := c.u32[r.Start:r.End]
		switch op {
		case Eq:
			ops.Eq(arr, val.u32, builder)
		case Ne:
			ops.Ne(arr, val.u32, builder)
		case Lt:
			ops.Lt(arr, val.u32, builder)
		case Le:
			ops.Le(arr, val.u32, builder)
		case Gt:
			ops.Gt(arr, val.u32, builder)
		case Ge:
			ops.Ge(arr, val.u32, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	case I32:
		arr := c.i32[r.Start:r.End]
		switch op {
		case Eq:
			ops.Eq(arr, val.i32, builder)
		case Ne:
			ops.Ne(arr, val.i32, builder)
		case Lt:
			ops.Lt(arr, val.i32, builder)
		case Le:
			ops.Le(arr, val.i32, builder)
		case Gt:
			ops.Gt(arr, val.i32, builder)
		case Ge:
			ops.Ge(arr, val.i32, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	case I64:
		arr := c.i64[r.Start:r.End]
		switch op {
		case Eq:
			ops.Eq(arr, val.i64, builder)
		case Ne:
			ops.Ne(arr, val.i64, builder)
		case Lt:
			ops.Lt(arr, val.i64, builder)
		case Le:
			ops.Le(arr, val.i64, builder)
		case Gt:
			ops.Gt(arr, val.i64, builder)
		case Ge:
			ops.Ge(arr, val.i64, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	case F64:
		arr := c.f64[r.Start:r.End]
		switch op {
		case Eq:
			ops.EqF64(arr, val.f64, builder)
		case Ne:
			ops.NeF64(arr, val.f64, builder)
		case Lt:
			ops.LtF64(arr, val.f64, builder)
		case Le:
			ops.LeF64(arr, val.f64, builder)
		case Gt:
			ops.GtF64(arr, val.f64, builder)
		case Ge:
			ops.GeF64(arr, val.f64, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(c.typ)))
	}

	return builder.Build()
}

// linearScanSparse walks the supplied row-index list and evaluates op
// against val for each referenced element, producing a bitmap of length
// len(indices) aligned to the index list, not to the column's row space.
func (c *Column) linearScanSparse(op Operator, val narrowedValue, indices []uint32) bitmap.Bitmap {
	builder := bitmap.NewBuilder(uint32(len(indices)), 0)

	switch c.typ {
	case U32:
		switch op {
		case Eq:
			ops.EqIndexed(c.u32, indices, val.u32, builder)
		case Ne:
			ops.NeIndexed(c.u32, indices, val.u32, builder)
		case Lt:
			ops.LtIndexed(c.u32, indices, val.u32, builder)
		case Le:
			ops.LeIndexed(c.u32, indices, val.u32, builder)
		case Gt:
			ops.GtIndexed(c.u32, indices, val.u32, builder)
		case Ge:
			ops.GeIndexed(c.u32, indices, val.u32, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	case I32:
		switch op {
		case Eq:
			ops.EqIndexed(c.i32, indices, val.i32, builder)
		case Ne:
			ops.NeIndexed(c.i32, indices, val.i32, builder)
		case Lt:
			ops.LtIndexed(c.i32, indices, val.i32, builder)
		case Le:
			ops.LeIndexed(c.i32, indices, val.i32, builder)
		case Gt:
			ops.GtIndexed(c.i32, indices, val.i32, builder)
		case Ge:
			ops.GeIndexed(c.i32, indices, val.i32, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	case I64:
		switch op {
		case Eq:
			ops.EqIndexed(c.i64, indices, val.i64, builder)
		case Ne:
			ops.NeIndexed(c.i64, indices, val.i64, builder)
		case Lt:
			ops.LtIndexed(c.i64, indices, val.i64, builder)
		case Le:
			ops.LeIndexed(c.i64, indices, val.i64, builder)
		case Gt:
			ops.GtIndexed(c.i64, indices, val.i64, builder)
		case Ge:
			ops.GeIndexed(c.i64, indices, val.i64, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	case F64:
		switch op {
		case Eq:
			ops.EqIndexedF64(c.f64, indices, val.f64, builder)
		case Ne:
			ops.NeIndexedF64(c.f64, indices, val.f64, builder)
		case Lt:
			ops.LtIndexedF64(c.f64, indices, val.f64, builder)
		case Le:
			ops.LeIndexedF64(c.f64, indices, val.f64, builder)
		case Gt:
			ops.GtIndexedF64(c.f64, indices, val.f64, builder)
		case Ge:
			ops.GeIndexedF64(c.f64, indices, val.f64, builder)
		default:
			panic(fmt.Sprintf("numstorage: %s cannot run a linear scan", op))
		}
	default:
		panic(fmt.Sprintf("numstorage: unknown column type %d", uint8(c.typ)))
	}

	return builder.Build()
}
