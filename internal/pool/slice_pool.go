package pool

import "sync"

var cellSlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetCellSlice retrieves a zeroed []uint64 of length size, used as a row buffer of raw
// record cells.
//
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Example:
//
//	row, cleanup := pool.GetCellSlice(len(columns))
//	defer cleanup()
func GetCellSlice(size int) ([]uint64, func()) {
	ptr, _ := cellSlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { cellSlicePool.Put(ptr) }
}
