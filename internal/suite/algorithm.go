package suite

import (
	"crypto/sha256"
	"math/rand/v2"
	"slices"

	"github.com/calvinalkan/ubench/pkg/bench"
)

func algorithmBenchmarks() []bench.Info {
	return []bench.Info{
		sortInts(),
		{
			Name: "SHA256Block",
			Tags: []bench.Tag{bench.TagAlgorithm, bench.TagValidation},
			Run: func(n int) {
				block := make([]byte, 1024)
				for range n {
					sum := sha256.Sum256(block)
					block[0] = sum[0]
				}

				sinkBytes = block
			},
		},
		{
			Name: "EmptyLoop",
			Tags: []bench.Tag{bench.TagValidation, bench.TagSkip},
			Run:  func(int) {},
		},
	}
}

func sortInts() bench.Info {
	const size = 1000

	var (
		source  []int
		scratch []int
	)

	return bench.Info{
		Name: "SortInts",
		Tags: []bench.Tag{bench.TagAlgorithm, bench.TagCollection},
		Setup: func() {
			rng := rand.New(rand.NewPCG(1, 2))

			source = make([]int, size)
			for i := range source {
				source[i] = rng.IntN(1 << 20)
			}

			scratch = make([]int, size)
		},
		Run: func(n int) {
			for range n {
				copy(scratch, source)
				slices.Sort(scratch)
			}

			sinkInt += scratch[0]
		},
		Teardown: func() {
			source = nil
			scratch = nil
		},
	}
}
