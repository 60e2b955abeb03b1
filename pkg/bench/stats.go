package bench

import (
	"math"
	"slices"
)

// Result summarizes the samples of one benchmark. Times are microseconds
// per iteration; MaxRSS is bytes of peak RSS growth over the whole
// measurement and may be negative.
type Result struct {
	SampleCount uint64 `json:"samples"`
	Min         uint64 `json:"min_us"`
	Max         uint64 `json:"max_us"`
	Mean        uint64 `json:"mean_us"`
	SD          uint64 `json:"sd_us"`
	Median      uint64 `json:"median_us"`
	MaxRSS      int64  `json:"max_rss_bytes"`
}

// Reduce folds samples into a [Result]. MaxRSS is left zero.
//
// The mean truncates. The variance numerator is accumulated with wrapping
// unsigned arithmetic, so huge or numerous samples wrap silently instead of
// failing.
func Reduce(samples []uint64) Result {
	count := uint64(len(samples))
	if count == 0 {
		return Result{}
	}

	minVal, _ := Min(samples)
	maxVal, _ := Max(samples)

	res := Result{
		SampleCount: count,
		Min:         minVal,
		Max:         maxVal,
		Median:      Median(samples),
	}

	if count == 1 {
		res.Mean = samples[0]

		return res
	}

	var sum uint64
	for _, s := range samples {
		sum += s
	}

	mean := sum / count

	var sumSquares uint64

	for _, s := range samples {
		diff := s - mean // wraps to the two's complement of mean-s when s < mean
		sumSquares += diff * diff
	}

	res.Mean = mean
	res.SD = uint64(math.Sqrt(float64(sumSquares) / float64(count-1)))

	return res
}

// Median returns the element at index len/2 of the sorted samples, which is
// the upper of the two middle elements for even lengths. Empty input
// returns 0. samples is not modified.
func Median(samples []uint64) uint64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	return sorted[len(sorted)/2]
}

// Min returns the smallest sample, or false if there are none.
func Min(samples []uint64) (uint64, bool) {
	if len(samples) == 0 {
		return 0, false
	}

	return slices.Min(samples), true
}

// Max returns the largest sample, or false if there are none.
func Max(samples []uint64) (uint64, bool) {
	if len(samples) == 0 {
		return 0, false
	}

	return slices.Max(samples), true
}
