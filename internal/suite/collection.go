package suite

import (
	"strconv"

	"github.com/calvinalkan/ubench/pkg/bench"
)

func collectionBenchmarks() []bench.Info {
	return []bench.Info{
		{
			Name: "SliceAppend",
			Tags: []bench.Tag{bench.TagCollection, bench.TagAPI},
			Run: func(n int) {
				for range n {
					s := make([]int, 0, 4)
					for j := range 64 {
						s = append(s, j)
					}

					sinkInt += len(s)
				}
			},
		},
		mapInsertLookup(),
	}
}

func mapInsertLookup() bench.Info {
	const size = 256

	var keys []string

	return bench.Info{
		Name: "MapInsertLookup",
		Tags: []bench.Tag{bench.TagCollection},
		Setup: func() {
			keys = make([]string, size)
			for i := range keys {
				keys[i] = "key-" + strconv.Itoa(i)
			}
		},
		Run: func(n int) {
			for range n {
				m := make(map[string]int, size)
				for i, k := range keys {
					m[k] = i
				}

				for _, k := range keys {
					sinkInt += m[k]
				}
			}
		},
		Teardown: func() { keys = nil },
	}
}
