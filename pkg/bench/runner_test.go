package bench_test

import (
	"testing"

	"github.com/calvinalkan/ubench/internal/testutil"
	"github.com/calvinalkan/ubench/pkg/bench"
)

func Test_SampleRunner_Run_Calls_Body_Once_When_Timing(t *testing.T) {
	t.Parallel()

	clock := testutil.NewClock()
	body := &testutil.Body{Clock: clock, NanosPerIter: 40, Overhead: 7}
	runner := bench.NewSampleRunner(clock, testutil.NewScriptedSampler(0))

	elapsed := runner.Run(body.Run, 25)

	if got, want := elapsed, uint64(25*40+7); got != want {
		t.Errorf("elapsed=%d, want=%d", got, want)
	}

	if got, want := len(body.Calls), 1; got != want {
		t.Fatalf("calls=%d, want=%d", got, want)
	}

	if got, want := body.Calls[0], 25; got != want {
		t.Errorf("iterations=%d, want=%d", got, want)
	}
}

func Test_SampleRunner_Captures_Baseline_When_Created(t *testing.T) {
	t.Parallel()

	sampler := testutil.NewScriptedSampler(4096, 8192)
	runner := bench.NewSampleRunner(testutil.NewClock(), sampler)

	if got, want := sampler.Calls(), 1; got != want {
		t.Errorf("sampler calls=%d, want=%d", got, want)
	}

	if got, want := runner.Baseline(), int64(4096); got != want {
		t.Errorf("Baseline=%d, want=%d", got, want)
	}

	if got, want := runner.MemoryDelta(), int64(4096); got != want {
		t.Errorf("MemoryDelta=%d, want=%d", got, want)
	}
}

func Test_SampleRunner_MemoryDelta_Is_Negative_When_RSS_Shrinks(t *testing.T) {
	t.Parallel()

	runner := bench.NewSampleRunner(testutil.NewClock(), testutil.NewScriptedSampler(10_000, 2_500))

	if got, want := runner.MemoryDelta(), int64(-7_500); got != want {
		t.Errorf("MemoryDelta=%d, want=%d", got, want)
	}
}

func Test_MonotonicClock_Never_Goes_Backwards_When_Read_Twice(t *testing.T) {
	t.Parallel()

	clock := bench.NewMonotonicClock()
	start := clock.Now()
	end := clock.Now()

	if end < start {
		t.Errorf("end=%d before start=%d", end, start)
	}

	if got := clock.Nanoseconds(end+10, end); got != 0 {
		t.Errorf("Nanoseconds(backwards)=%d, want 0", got)
	}
}

func Test_RusageSampler_Reports_Non_Negative_When_Sampled(t *testing.T) {
	t.Parallel()

	if got := bench.NewRusageSampler().MaxRSS(); got < 0 {
		t.Errorf("MaxRSS=%d, want >= 0", got)
	}
}
