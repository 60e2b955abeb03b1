package bench

import (
	"log/slog"
	"math"
)

// MaxScale is the largest iteration count ever requested from a benchmark
// body. It keeps elapsed/scale and any downstream scale multiplication from
// overflowing.
const MaxScale = math.MaxInt / 10_000

// targetNanos is the calibration window for an iteration scale of 1.
const targetNanos = 1_000_000_000

// Measurement is the raw output of measuring one benchmark.
type Measurement struct {
	// Samples holds one per-iteration cost in microseconds per sample.
	Samples []uint64

	// Scales holds the iteration count measured for each sample.
	Scales []int

	// MaxRSS is the peak RSS growth over the whole measurement, in bytes.
	MaxRSS int64
}

// Executor runs the calibration protocol for one benchmark at a time.
type Executor struct {
	cfg     RunConfig
	clock   Clock
	sampler MemorySampler
	logger  *slog.Logger
}

// ExecutorOption configures an [Executor].
type ExecutorOption func(*Executor)

// WithClock replaces the monotonic clock.
func WithClock(clock Clock) ExecutorOption {
	return func(e *Executor) { e.clock = clock }
}

// WithMemorySampler replaces the getrusage-based sampler.
func WithMemorySampler(sampler MemorySampler) ExecutorOption {
	return func(e *Executor) { e.sampler = sampler }
}

// WithLogger sets the logger used for verbose diagnostics.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = logger }
}

// NewExecutor returns an executor for cfg. Without options it uses a
// [MonotonicClock], a [RusageSampler] and a discarding logger.
func NewExecutor(cfg RunConfig, opts ...ExecutorOption) *Executor {
	e := &Executor{
		cfg:     cfg,
		clock:   NewMonotonicClock(),
		sampler: NewRusageSampler(),
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run measures info and reduces the samples. It returns false, and no
// result, when the benchmark has no runnable body.
func (e *Executor) Run(info Info) (Result, bool) {
	m, ok := e.Measure(info)
	if !ok {
		return Result{}, false
	}

	res := Reduce(m.Samples)
	res.MaxRSS = m.MaxRSS

	return res, true
}

// Measure takes cfg.NumSamples samples of info. It returns false when the
// benchmark has no runnable body.
func (e *Executor) Measure(info Info) (Measurement, bool) {
	if !info.Supported() {
		return Measurement{}, false
	}

	runner := NewSampleRunner(e.clock, e.sampler)

	m := Measurement{
		Samples: make([]uint64, 0, max(e.cfg.NumSamples, 0)),
		Scales:  make([]int, 0, max(e.cfg.NumSamples, 0)),
	}

	for i := range e.cfg.NumSamples {
		if info.Setup != nil {
			info.Setup()
		}

		sample, scale := e.sample(runner, info)

		if info.Teardown != nil {
			info.Teardown()
		}

		e.logger.Info("sample",
			slog.String("benchmark", info.Name),
			slog.Int("sample", i),
			slog.Int("scale", scale),
			slog.Uint64("us", sample),
		)

		m.Samples = append(m.Samples, sample)
		m.Scales = append(m.Scales, scale)
	}

	m.MaxRSS = runner.MemoryDelta()

	return m, true
}

// sample produces one sample and the iteration count it was measured at.
func (e *Executor) sample(runner *SampleRunner, info Info) (uint64, int) {
	var (
		elapsed   uint64
		candidate uint64
	)

	if e.cfg.AutoCalibrate() {
		t1 := runner.Run(info.Run, 1)
		elapsed = t1

		if t1 > 0 {
			candidate = calibrationTarget(e.cfg.IterationScale) / t1
		} else {
			e.logger.Warn("elapsed time is 0, measuring with scale 1; this can be ignored if the body is empty",
				slog.String("benchmark", info.Name))

			candidate = 1
		}
	} else {
		candidate = uint64(e.cfg.FixedIterations)

		if candidate == 1 {
			elapsed = runner.Run(info.Run, 1)
		}
	}

	scale := clampScale(candidate)

	if scale > 1 {
		e.logger.Info("measuring", slog.String("benchmark", info.Name), slog.Int("scale", scale))

		elapsed = runner.Run(info.Run, scale)
	} else {
		scale = 1
	}

	return elapsed / uint64(scale) / 1000, scale
}

// calibrationTarget returns the target sample duration in nanoseconds,
// saturating instead of overflowing.
func calibrationTarget(iterationScale int) uint64 {
	if iterationScale < 1 {
		iterationScale = 1
	}

	if uint64(iterationScale) > math.MaxUint64/targetNanos {
		return math.MaxUint64
	}

	return targetNanos * uint64(iterationScale)
}

// clampScale limits a candidate iteration count to [MaxScale].
func clampScale(candidate uint64) int {
	if candidate > uint64(MaxScale) {
		return MaxScale
	}

	return int(candidate)
}
