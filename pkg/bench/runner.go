package bench

// SampleRunner times single invocations of a benchmark body and tracks RSS
// growth since it was created. Create one per benchmark.
type SampleRunner struct {
	clock    Clock
	sampler  MemorySampler
	baseline int64
}

// NewSampleRunner captures the RSS baseline and returns a runner.
func NewSampleRunner(clock Clock, sampler MemorySampler) *SampleRunner {
	return &SampleRunner{
		clock:    clock,
		sampler:  sampler,
		baseline: sampler.MaxRSS(),
	}
}

// Run calls fn(iterations) exactly once and returns the elapsed nanoseconds.
// iterations must be positive.
func (r *SampleRunner) Run(fn Func, iterations int) uint64 {
	start := r.clock.Now()
	fn(iterations)
	end := r.clock.Now()

	return r.clock.Nanoseconds(start, end)
}

// Baseline returns the RSS captured when the runner was created.
func (r *SampleRunner) Baseline() int64 {
	return r.baseline
}

// MemoryDelta returns current peak RSS minus the baseline. The result can be
// negative and is not clamped.
func (r *SampleRunner) MemoryDelta() int64 {
	return r.sampler.MaxRSS() - r.baseline
}
