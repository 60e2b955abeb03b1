package bench

import (
	"fmt"
	"time"
)

// RunConfig holds the parameters of one harness invocation. It is built once
// and not modified afterwards.
type RunConfig struct {
	// Delimiter separates fields in delimited reports.
	Delimiter string

	// IterationScale multiplies the one-second calibration target.
	IterationScale int

	// FixedIterations, when positive, replaces auto-calibration with a fixed
	// iteration count. Zero means auto-calibrate.
	FixedIterations int

	// NumSamples is the number of samples taken per benchmark.
	NumSamples int

	// Verbose enables per-sample diagnostics.
	Verbose bool

	// AfterRunSleep is how long to wait after all benchmarks finished.
	// Zero means no wait.
	AfterRunSleep time.Duration

	// Tests is the resolved selection to execute.
	Tests Selection
}

// DefaultRunConfig returns the configuration used when nothing is overridden.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Delimiter:      ",",
		IterationScale: 1,
		NumSamples:     1,
	}
}

// AutoCalibrate reports whether iteration counts are chosen by calibration.
func (c RunConfig) AutoCalibrate() bool {
	return c.FixedIterations == 0
}

// Validate checks the numeric fields.
func (c RunConfig) Validate() error {
	if c.IterationScale < 1 {
		return fmt.Errorf("%w: iteration scale must be >= 1, got %d", ErrInvalidConfig, c.IterationScale)
	}

	if c.FixedIterations < 0 {
		return fmt.Errorf("%w: iteration count must be >= 0, got %d", ErrInvalidConfig, c.FixedIterations)
	}

	if c.NumSamples < 0 {
		return fmt.Errorf("%w: sample count must be >= 0, got %d", ErrInvalidConfig, c.NumSamples)
	}

	if c.AfterRunSleep < 0 {
		return fmt.Errorf("%w: sleep must be >= 0, got %s", ErrInvalidConfig, c.AfterRunSleep)
	}

	return nil
}
