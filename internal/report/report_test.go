package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/ubench/internal/config"
	"github.com/calvinalkan/ubench/internal/report"
	"github.com/calvinalkan/ubench/pkg/bench"
)

func sampleEntries() []report.Entry {
	return []report.Entry{
		{
			Index:     "1",
			Name:      "Alpha",
			Supported: true,
			Result:    bench.Result{SampleCount: 2, Min: 3, Max: 5, Mean: 4, SD: 1, Median: 5, MaxRSS: -100},
			Samples:   []uint64{3, 5},
		},
		{Index: "2", Name: "Beta"},
		{
			Index:     "3",
			Name:      "Gamma",
			Supported: true,
			Result:    bench.Result{SampleCount: 2, Min: 10, Max: 10, Mean: 10, SD: 0, Median: 10, MaxRSS: 4096},
			Samples:   []uint64{10, 10},
		},
	}
}

func render(t *testing.T, r report.Reporter, entries []report.Entry) {
	t.Helper()

	require.NoError(t, r.Begin())

	for _, e := range entries {
		require.NoError(t, r.Add(e))
	}

	require.NoError(t, r.End())
}

func Test_CSV_Reporter_Writes_Rows_And_Totals_When_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	render(t, report.New(config.FormatCSV, &buf, ",", report.Meta{}), sampleEntries())

	want := strings.Join([]string{
		"#,TEST,SAMPLES,MIN(us),MAX(us),MEAN(us),SD(us),MEDIAN(us),MAX_RSS(B)",
		"1,Alpha,2,3,5,4,1,5,-100",
		"2,Beta,Unsupported",
		"3,Gamma,2,10,10,10,0,10,4096",
		"",
		"Totals,,4,13,15,14,1,15,3996",
		"",
	}, "\n")

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func Test_CSV_Reporter_Uses_Delimiter_When_Configured(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	render(t, report.New(config.FormatCSV, &buf, "\t", report.Meta{}), sampleEntries()[:1])

	lines := strings.Split(buf.String(), "\n")
	if got, want := lines[1], "1\tAlpha\t2\t3\t5\t4\t1\t5\t-100"; got != want {
		t.Errorf("row=%q, want=%q", got, want)
	}
}

func Test_Totals_Excludes_Unsupported_When_Summing(t *testing.T) {
	t.Parallel()

	entries := sampleEntries()
	entries[1].Result = bench.Result{SampleCount: 99, Min: 99}

	got := report.Totals(entries)
	want := bench.Result{SampleCount: 4, Min: 13, Max: 15, Mean: 14, SD: 1, Median: 15, MaxRSS: 3996}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

func Test_JSON_Reporter_Writes_Document_When_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	meta := report.NewMeta(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1, 0, 2)
	render(t, report.New(config.FormatJSON, &buf, ",", meta), sampleEntries())

	var doc struct {
		RunID      string         `json:"run_id"`
		NumSamples int            `json:"num_samples"`
		Benchmarks []report.Entry `json:"benchmarks"`
		Totals     struct {
			Measured    int          `json:"measured"`
			Unsupported int          `json:"unsupported"`
			Sum         bench.Result `json:"sum"`
		} `json:"totals"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.RunID, 36)
	require.Equal(t, 2, doc.NumSamples)
	require.Len(t, doc.Benchmarks, 3)
	require.Equal(t, []uint64{3, 5}, doc.Benchmarks[0].Samples)
	require.False(t, doc.Benchmarks[1].Supported)
	require.Equal(t, 2, doc.Totals.Measured)
	require.Equal(t, 1, doc.Totals.Unsupported)
	require.Equal(t, int64(3996), doc.Totals.Sum.MaxRSS)
}

func Test_NewMeta_Generates_Distinct_Run_IDs_When_Called_Twice(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a := report.NewMeta(now, 1, 0, 1)
	b := report.NewMeta(now, 1, 0, 1)

	if a.RunID == b.RunID {
		t.Errorf("run ids equal: %s", a.RunID)
	}
}

func Test_Table_Reporter_Renders_All_Rows_When_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	render(t, report.New(config.FormatTable, &buf, ",", report.Meta{}), sampleEntries())

	out := buf.String()
	for _, want := range []string{"MEAN(us)", "Alpha", "Unsupported", "Gamma", "Totals", "3996"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q\ntable:\n%s", want, out)
		}
	}
}

func Test_ResolveFormat_Picks_CSV_When_Output_Is_Not_Terminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	if got, want := report.ResolveFormat(config.FormatAuto, &buf), config.FormatCSV; got != want {
		t.Errorf("ResolveFormat(auto)=%q, want=%q", got, want)
	}

	if got, want := report.ResolveFormat(config.FormatJSON, &buf), config.FormatJSON; got != want {
		t.Errorf("ResolveFormat(json)=%q, want=%q", got, want)
	}
}

func Test_WriteList_Prints_Tags_When_Listing(t *testing.T) {
	t.Parallel()

	sel := bench.Selection{
		{Index: "2", Info: bench.Info{Name: "B", Tags: []bench.Tag{bench.TagString, bench.TagAlgorithm}, Run: func(int) {}}},
		{Index: "1", Info: bench.Info{Name: "A"}},
	}

	var buf bytes.Buffer

	require.NoError(t, report.WriteList(&buf, ",", sel))

	want := "#,Test,[Tags]\n2,B,[algorithm, string]\n1,A,[] Unsupported\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func Test_WriteFile_Replaces_Content_When_File_Exists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, report.WriteFile(path, []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}
