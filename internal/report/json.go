package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/calvinalkan/ubench/pkg/bench"
)

// Meta describes the invocation a report belongs to.
type Meta struct {
	RunID          string    `json:"run_id"`
	StartedAt      time.Time `json:"started_at"`
	IterationScale int       `json:"iter_scale"`
	FixedIters     int       `json:"num_iters"`
	NumSamples     int       `json:"num_samples"`
}

// NewMeta returns a Meta with a fresh run id.
func NewMeta(started time.Time, iterScale, fixedIters, numSamples int) Meta {
	return Meta{
		RunID:          uuid.NewString(),
		StartedAt:      started.UTC(),
		IterationScale: iterScale,
		FixedIters:     fixedIters,
		NumSamples:     numSamples,
	}
}

type jsonDocument struct {
	Meta
	Benchmarks []Entry    `json:"benchmarks"`
	Totals     jsonTotals `json:"totals"`
}

type jsonTotals struct {
	Measured    int          `json:"measured"`
	Unsupported int          `json:"unsupported"`
	Sum         bench.Result `json:"sum"`
}

type jsonReporter struct {
	w       io.Writer
	meta    Meta
	entries []Entry
}

func (r *jsonReporter) Begin() error { return nil }

func (r *jsonReporter) Add(e Entry) error {
	r.entries = append(r.entries, e)

	return nil
}

func (r *jsonReporter) End() error {
	doc := jsonDocument{
		Meta:       r.meta,
		Benchmarks: r.entries,
		Totals:     jsonTotals{Sum: Totals(r.entries)},
	}

	if doc.Benchmarks == nil {
		doc.Benchmarks = []Entry{}
	}

	for _, e := range r.entries {
		if e.Supported {
			doc.Totals.Measured++
		} else {
			doc.Totals.Unsupported++
		}
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
