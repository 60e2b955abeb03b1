package bench

import "time"

// Timestamp is an opaque reading taken from a [Clock]. Only differences
// between two readings of the same clock are meaningful.
type Timestamp int64

// Clock is a monotonic time source.
type Clock interface {
	// Now returns the current reading.
	Now() Timestamp

	// Nanoseconds returns the elapsed nanoseconds from start to end.
	Nanoseconds(start, end Timestamp) uint64
}

// MonotonicClock reads the runtime's monotonic clock.
//
// Readings are offsets from the instant the clock was created, so wall clock
// adjustments never affect them.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a [MonotonicClock] anchored at the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now implements [Clock].
func (c *MonotonicClock) Now() Timestamp {
	return Timestamp(time.Since(c.origin))
}

// Nanoseconds implements [Clock]. A reading that went backwards yields 0.
func (c *MonotonicClock) Nanoseconds(start, end Timestamp) uint64 {
	if end < start {
		return 0
	}

	return uint64(end - start)
}
