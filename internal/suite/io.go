package suite

import (
	"bytes"
	"encoding/json"
	"os"
	"runtime"

	"github.com/calvinalkan/ubench/pkg/bench"
)

type jsonRecord struct {
	ID    int               `json:"id"`
	Name  string            `json:"name"`
	Tags  []string          `json:"tags"`
	Attrs map[string]string `json:"attrs"`
}

func ioBenchmarks() []bench.Info {
	return []bench.Info{
		{
			Name: "JSONRoundTrip",
			Tags: []bench.Tag{bench.TagIO, bench.TagAPI},
			Run: func(n int) {
				in := jsonRecord{
					ID:    7,
					Name:  "record",
					Tags:  []string{"a", "b", "c"},
					Attrs: map[string]string{"k": "v", "x": "y"},
				}

				var buf bytes.Buffer

				for range n {
					buf.Reset()
					_ = json.NewEncoder(&buf).Encode(in)

					var out jsonRecord

					_ = json.Unmarshal(buf.Bytes(), &out)
					sinkInt += out.ID
				}
			},
		},
		procSelfStat(),
	}
}

// procSelfStat reads /proc, so it only runs on Linux.
func procSelfStat() bench.Info {
	info := bench.Info{
		Name: "ProcSelfStat",
		Tags: []bench.Tag{bench.TagIO, bench.TagRuntime},
	}

	if runtime.GOOS != "linux" {
		return info
	}

	info.Run = func(n int) {
		for range n {
			data, err := os.ReadFile("/proc/self/stat")
			if err == nil {
				sinkInt += len(data)
			}
		}
	}

	return info
}
