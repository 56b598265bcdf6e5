package font

import (
	"sync/atomic"
	"time"
)

// ShapingPerf accumulates the wall-clock time spent in text shaping, across
// all fonts sharing the handle. Updates are atomic.
type ShapingPerf struct {
	nanos int64
}

// NewShapingPerf creates a fresh accumulator.
func NewShapingPerf() *ShapingPerf {
	return &ShapingPerf{}
}

// Accumulate adds a shaping duration to the counter.
func (p *ShapingPerf) Accumulate(d time.Duration) {
	atomic.AddInt64(&p.nanos, int64(d))
}

// ReadAndReset returns the accumulated shaping time and atomically resets
// the counter to zero.
func (p *ShapingPerf) ReadAndReset() time.Duration {
	return time.Duration(atomic.SwapInt64(&p.nanos, 0))
}

// globalShapingPerf is the accumulator fonts use unless one is injected
// with WithShapingPerf.
var globalShapingPerf = NewShapingPerf()

// GlobalShapingPerf returns the process-wide shaping time accumulator.
func GlobalShapingPerf() *ShapingPerf {
	return globalShapingPerf
}
