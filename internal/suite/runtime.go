package suite

import (
	"github.com/calvinalkan/ubench/pkg/bench"
)

type node struct {
	next  *node
	value int
}

func runtimeBenchmarks() []bench.Info {
	return []bench.Info{
		{
			Name: "AllocSmallObjects",
			Tags: []bench.Tag{bench.TagMemory, bench.TagRuntime},
			Run: func(n int) {
				var head *node
				for i := range n {
					head = &node{next: head, value: i}
					if i%1024 == 0 {
						head = nil
					}
				}

				sinkAny = head
			},
		},
		{
			Name: "GrowLargeSlice",
			Tags: []bench.Tag{bench.TagMemory},
			Run: func(n int) {
				for range n {
					buf := make([]byte, 0, 64)
					for len(buf) < 1<<20 {
						buf = append(buf, make([]byte, 4096)...)
					}

					sinkBytes = buf
				}
			},
		},
		{
			Name: "GoroutineHandoff",
			Tags: []bench.Tag{bench.TagRuntime, bench.TagUnstable},
			Run: func(n int) {
				ping := make(chan int)
				pong := make(chan int)

				go func() {
					for v := range ping {
						pong <- v + 1
					}

					close(pong)
				}()

				for i := range n {
					ping <- i
					sinkInt += <-pong
				}

				close(ping)
				<-pong
			},
		},
	}
}
