package pool

import "sync"

// float64SlicePool holds scratch buffers for residual and prediction vectors.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 scratch slice of exactly size elements.
//
// The contents of the returned slice are unspecified; callers must overwrite every
// element before reading it. The returned cleanup function hands the buffer back to
// the pool and the slice must not be used afterwards.
//
// Example:
//
//	residuals, release := pool.GetFloat64Slice(len(actual))
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)

	if cap(*ptr) < size {
		*ptr = make([]float64, size)
	} else {
		*ptr = (*ptr)[:size]
	}

	return *ptr, func() { float64SlicePool.Put(ptr) }
}
