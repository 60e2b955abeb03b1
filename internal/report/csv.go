package report

import (
	"fmt"
	"io"
)

type csvReporter struct {
	w       io.Writer
	delim   string
	entries []Entry
}

func (r *csvReporter) Begin() error {
	_, err := fmt.Fprintln(r.w, join(r.delim, Columns))

	return err
}

func (r *csvReporter) Add(e Entry) error {
	r.entries = append(r.entries, e)

	_, err := fmt.Fprintln(r.w, join(r.delim, Cells(e)))

	return err
}

func (r *csvReporter) End() error {
	_, err := fmt.Fprintf(r.w, "\n%s\n", join(r.delim, TotalsCells(r.entries)))

	return err
}
