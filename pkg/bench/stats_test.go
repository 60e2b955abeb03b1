package bench_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/ubench/pkg/bench"
)

func Test_Reduce_Returns_Expected_Result_When_Given_Samples(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		samples []uint64
		want    bench.Result
	}{
		{
			name:    "Empty",
			samples: nil,
			want:    bench.Result{},
		},
		{
			name:    "Single",
			samples: []uint64{7},
			want:    bench.Result{SampleCount: 1, Min: 7, Max: 7, Mean: 7, SD: 0, Median: 7},
		},
		{
			name:    "MeanTruncates",
			samples: []uint64{1, 2},
			want:    bench.Result{SampleCount: 2, Min: 1, Max: 2, Mean: 1, SD: 1, Median: 2},
		},
		{
			name:    "SDTruncates",
			samples: []uint64{2, 4, 4, 4, 5, 5, 7, 9},
			want:    bench.Result{SampleCount: 8, Min: 2, Max: 9, Mean: 5, SD: 2, Median: 5},
		},
		{
			name:    "AllEqual",
			samples: []uint64{3, 3, 3},
			want:    bench.Result{SampleCount: 3, Min: 3, Max: 3, Mean: 3, SD: 0, Median: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := bench.Reduce(tc.samples)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Reduce(%v) mismatch (-want +got):\n%s", tc.samples, diff)
			}
		})
	}
}

func Test_Reduce_Wraps_Variance_When_Squares_Overflow(t *testing.T) {
	t.Parallel()

	// mean is 2^32, both deviations square to 2^64, which wraps to 0.
	samples := []uint64{0, 1 << 33}

	res := bench.Reduce(samples)

	if got, want := res.Mean, uint64(1<<32); got != want {
		t.Errorf("Mean=%d, want=%d", got, want)
	}

	if got, want := res.SD, uint64(0); got != want {
		t.Errorf("SD=%d, want=%d", got, want)
	}
}

func Test_Reduce_Does_Not_Modify_Input_When_Sorting_For_Median(t *testing.T) {
	t.Parallel()

	samples := []uint64{9, 1, 5, 3}
	before := slices.Clone(samples)

	_ = bench.Reduce(samples)

	if diff := cmp.Diff(before, samples); diff != "" {
		t.Errorf("samples modified (-before +after):\n%s", diff)
	}
}

func Test_Median_Returns_Upper_Middle_When_Count_Is_Even(t *testing.T) {
	t.Parallel()

	if got, want := bench.Median([]uint64{5, 1, 3}), uint64(3); got != want {
		t.Errorf("Median([5,1,3])=%d, want=%d", got, want)
	}

	if got, want := bench.Median([]uint64{5, 1, 3, 9}), uint64(5); got != want {
		t.Errorf("Median([5,1,3,9])=%d, want=%d", got, want)
	}

	if got, want := bench.Median(nil), uint64(0); got != want {
		t.Errorf("Median(nil)=%d, want=%d", got, want)
	}
}

func Test_Min_Max_Report_Missing_When_Samples_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := bench.Min(nil); ok {
		t.Error("Min(nil) ok=true, want false")
	}

	if _, ok := bench.Max([]uint64{}); ok {
		t.Error("Max([]) ok=true, want false")
	}

	minVal, ok := bench.Min([]uint64{4, 2, 8})
	if !ok || minVal != 2 {
		t.Errorf("Min=%d,%v, want 2,true", minVal, ok)
	}

	maxVal, ok := bench.Max([]uint64{4, 2, 8})
	if !ok || maxVal != 8 {
		t.Errorf("Max=%d,%v, want 8,true", maxVal, ok)
	}
}
