package testutil

import "github.com/calvinalkan/ubench/pkg/bench"

// ManualClock is a [bench.Clock] that only moves when told to.
type ManualClock struct {
	current bench.Timestamp
}

// NewClock returns a clock at reading 0.
func NewClock() *ManualClock {
	return &ManualClock{}
}

// Now implements [bench.Clock].
func (c *ManualClock) Now() bench.Timestamp {
	return c.current
}

// Nanoseconds implements [bench.Clock].
func (c *ManualClock) Nanoseconds(start, end bench.Timestamp) uint64 {
	if end < start {
		return 0
	}

	return uint64(end - start)
}

// Advance moves the clock forward by ns nanoseconds.
func (c *ManualClock) Advance(ns uint64) {
	c.current += bench.Timestamp(ns)
}

// Body is a benchmark body with a fixed simulated cost per iteration.
// Every call advances Clock by NanosPerIter*iterations (plus Overhead) and
// records the requested iteration count.
type Body struct {
	Clock        *ManualClock
	NanosPerIter uint64
	Overhead     uint64
	Calls        []int
}

// Run is the [bench.Func].
func (b *Body) Run(iterations int) {
	b.Calls = append(b.Calls, iterations)
	b.Clock.Advance(b.NanosPerIter*uint64(iterations) + b.Overhead)
}
