package testutil

// ScriptedSampler returns pre-recorded RSS readings in order. Once the
// script runs out, the last reading repeats.
type ScriptedSampler struct {
	Readings []int64
	calls    int
}

// NewScriptedSampler returns a sampler that yields readings in order.
func NewScriptedSampler(readings ...int64) *ScriptedSampler {
	return &ScriptedSampler{Readings: readings}
}

// MaxRSS implements [bench.MemorySampler].
func (s *ScriptedSampler) MaxRSS() int64 {
	if len(s.Readings) == 0 {
		return 0
	}

	idx := min(s.calls, len(s.Readings)-1)
	s.calls++

	return s.Readings[idx]
}

// Calls returns how many readings were taken.
func (s *ScriptedSampler) Calls() int {
	return s.calls
}
