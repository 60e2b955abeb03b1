package suite

import (
	"strings"

	"github.com/calvinalkan/ubench/pkg/bench"
)

func stringBenchmarks() []bench.Info {
	return []bench.Info{
		{
			Name: "StringBuilder",
			Tags: []bench.Tag{bench.TagString, bench.TagAPI},
			Run: func(n int) {
				for range n {
					var sb strings.Builder
					for range 32 {
						sb.WriteString("chunk")
					}

					sinkInt += sb.Len()
				}
			},
		},
		{
			Name: "StringSplitJoin",
			Tags: []bench.Tag{bench.TagString},
			Run: func(n int) {
				const line = "alpha,beta,gamma,delta,epsilon,zeta,eta,theta"
				for range n {
					parts := strings.Split(line, ",")
					sinkInt += len(strings.Join(parts, ";"))
				}
			},
		},
	}
}
