// Package report renders benchmark results.
//
// The delimited format streams one row per benchmark as soon as it is
// added; the table and JSON formats buffer until [Reporter.End].
package report

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/calvinalkan/ubench/internal/config"
	"github.com/calvinalkan/ubench/pkg/bench"
)

// unsupportedCell replaces the statistics of benchmarks that did not run.
const unsupportedCell = "Unsupported"

// Columns is the report header.
var Columns = []string{
	"#", "TEST", "SAMPLES", "MIN(us)", "MAX(us)", "MEAN(us)", "SD(us)", "MEDIAN(us)", "MAX_RSS(B)",
}

// Entry is one reported benchmark.
type Entry struct {
	Index string `json:"index"`
	Name  string `json:"name"`

	// Supported is false when the benchmark had no runnable body; Result
	// and Samples are then meaningless.
	Supported bool         `json:"supported"`
	Result    bench.Result `json:"result"`
	Samples   []uint64     `json:"samples,omitempty"`
}

// Reporter receives entries in execution order.
type Reporter interface {
	Begin() error
	Add(e Entry) error
	End() error
}

// New returns the reporter for format. format must already be resolved (see
// [ResolveFormat]); anything unknown falls back to delimited output.
func New(format string, w io.Writer, delim string, meta Meta) Reporter {
	switch format {
	case config.FormatTable:
		return &tableReporter{w: w}
	case config.FormatJSON:
		return &jsonReporter{w: w, meta: meta}
	default:
		return &csvReporter{w: w, delim: delim}
	}
}

// ResolveFormat turns [config.FormatAuto] into a concrete format: a table
// when out is a terminal, delimited text otherwise.
func ResolveFormat(format string, out io.Writer) string {
	if format != config.FormatAuto {
		return format
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return config.FormatTable
	}

	return config.FormatCSV
}

// Totals sums every field over the supported entries.
func Totals(entries []Entry) bench.Result {
	var sum bench.Result

	for _, e := range entries {
		if !e.Supported {
			continue
		}

		sum.SampleCount += e.Result.SampleCount
		sum.Min += e.Result.Min
		sum.Max += e.Result.Max
		sum.Mean += e.Result.Mean
		sum.SD += e.Result.SD
		sum.Median += e.Result.Median
		sum.MaxRSS += e.Result.MaxRSS
	}

	return sum
}

// Fields returns the statistics of r in column order.
func Fields(r bench.Result) []string {
	return []string{
		strconv.FormatUint(r.SampleCount, 10),
		strconv.FormatUint(r.Min, 10),
		strconv.FormatUint(r.Max, 10),
		strconv.FormatUint(r.Mean, 10),
		strconv.FormatUint(r.SD, 10),
		strconv.FormatUint(r.Median, 10),
		strconv.FormatInt(r.MaxRSS, 10),
	}
}

// Cells returns the full row for e.
func Cells(e Entry) []string {
	if !e.Supported {
		return []string{e.Index, e.Name, unsupportedCell}
	}

	return append([]string{e.Index, e.Name}, Fields(e.Result)...)
}

// TotalsCells returns the totals row. The name column is left blank so the
// statistics line up with the header.
func TotalsCells(entries []Entry) []string {
	return append([]string{"Totals", ""}, Fields(Totals(entries))...)
}

func join(delim string, cells []string) string {
	return strings.Join(cells, delim)
}
