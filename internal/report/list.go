package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/calvinalkan/ubench/pkg/bench"
)

// WriteList prints the selection as "#,Test,[Tags]" rows. Unsupported
// benchmarks are marked after their tags.
func WriteList(w io.Writer, delim string, sel bench.Selection) error {
	_, err := fmt.Fprintln(w, join(delim, []string{"#", "Test", "[Tags]"}))
	if err != nil {
		return err
	}

	for _, s := range sel {
		tags := s.Info.TagSet().Sorted()
		names := make([]string, len(tags))

		for i, t := range tags {
			names[i] = string(t)
		}

		cell := "[" + strings.Join(names, ", ") + "]"
		if !s.Info.Supported() {
			cell += " " + unsupportedCell
		}

		_, err = fmt.Fprintln(w, join(delim, []string{s.Index, s.Info.Name, cell}))
		if err != nil {
			return err
		}
	}

	return nil
}
