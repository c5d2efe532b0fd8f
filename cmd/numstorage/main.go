package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/dot5enko/numstorage/column"
)

func testCycles(n int, label string, testSize int, cb func()) {
	before := time.Now()

	for range n {
		cb()
	}

	after := time.Since(before)

	perCycle := after.Nanoseconds() / int64(testSize)
	log.Printf(" %s per cycle : %d/ns", label, perCycle)
}

func genFakeSortedData(size int) []int64 {
	data := make([]int64, size)
	val := int64(0)
	for i := 0; i < size; i++ {
		val += rand.Int63n(50)
		data[i] = val
	}

	log.Printf("generated %d sorted rows, max value %d", len(data), data[len(data)-1])
	return data
}

func genFakeIndexList(size int) []uint32 {
	indices := make([]uint32, size)
	for i := range indices {
		indices[i] = uint32(i)
	}
	rand.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return indices
}

func main() {
	const rows = 200000

	data := genFakeSortedData(rows)
	col := column.NewI64(data, true)
	full := column.Range{Start: 0, End: col.Len()}

	testCycles(20, "Search(Eq) sorted", rows, func() {
		col.Search(column.Eq, column.Int64Scalar(1234), full)
	})

	testCycles(20, "Search(Ge) sorted", rows, func() {
		col.Search(column.Ge, column.Int64Scalar(1234), full)
	})

	unsorted := column.NewI64(append([]int64(nil), data...), false)
	testCycles(5, "Search(Eq) unsorted scan", rows, func() {
		unsorted.Search(column.Eq, column.Int64Scalar(1234), full)
	})

	shuffled := genFakeIndexList(rows)
	testCycles(5, "StableSort", rows, func() {
		indices := append([]uint32(nil), shuffled...)
		col.StableSort(indices)
	})

	log.Printf("done")
}
