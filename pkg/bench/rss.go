package bench

// MemorySampler reports the process's peak resident set size.
type MemorySampler interface {
	// MaxRSS returns the peak resident set size in bytes.
	MaxRSS() int64
}

// RusageSampler reads peak RSS from getrusage(2). On platforms without
// getrusage it always reports 0.
type RusageSampler struct{}

// NewRusageSampler returns a [RusageSampler].
func NewRusageSampler() *RusageSampler {
	return &RusageSampler{}
}

// MaxRSS implements [MemorySampler]. Failures report 0.
func (s *RusageSampler) MaxRSS() int64 {
	return maxRSSBytes()
}
