// Package bench measures opaque benchmark bodies with adaptive iteration
// scaling and reduces the samples into summary statistics.
//
// A benchmark body is a [Func] that loops internally for the iteration count
// it is handed. The harness never loops externally; it only decides how many
// iterations to request so that one timed call fills a target window.
//
// # Basic Usage
//
//	reg := bench.NewRegistry()
//	reg.MustRegister(bench.Info{
//	    Name: "SortInts",
//	    Tags: []bench.Tag{bench.TagAlgorithm},
//	    Run:  func(n int) { for range n { sortOnce() } },
//	})
//
//	sel, err := bench.Select(reg, bench.SelectOptions{})
//	if err != nil {
//	    // unknown tag name
//	}
//
//	exec := bench.NewExecutor(bench.DefaultRunConfig())
//	for _, s := range sel {
//	    res, ok := exec.Run(s.Info)
//	    if !ok {
//	        // unsupported on this platform
//	    }
//	}
//
// # Calibration
//
// In auto mode each sample first times a single iteration, then asks for
// enough iterations to fill one second (times the iteration scale). The
// requested count is clamped to [MaxScale]. Samples are reported as the
// average per-iteration cost in whole microseconds.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use, and nothing needs to
// be: benchmarks and samples run strictly one after another.
package bench
