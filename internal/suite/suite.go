// Package suite holds the benchmarks that ship with ubench.
package suite

import (
	"github.com/calvinalkan/ubench/pkg/bench"
)

// New returns a registry holding every built-in benchmark.
func New() *bench.Registry {
	reg := bench.NewRegistry()

	reg.MustRegister(collectionBenchmarks()...)
	reg.MustRegister(stringBenchmarks()...)
	reg.MustRegister(algorithmBenchmarks()...)
	reg.MustRegister(runtimeBenchmarks()...)
	reg.MustRegister(ioBenchmarks()...)

	return reg
}

// Bodies write their results here so the compiler cannot drop the work.
var (
	sinkInt   int
	sinkBytes []byte
	sinkAny   any
)
