package status

import (
	"math"
	"sync/atomic"
)

// atomicFloat stores a float64 as its bit pattern
// Zero value is ready to use (represents 0.0)
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *atomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
