package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/ubench/internal/config"
	"github.com/calvinalkan/ubench/internal/report"
	"github.com/calvinalkan/ubench/pkg/bench"
)

// ListCmd returns the list command.
func ListCmd(cfg config.Config, reg *bench.Registry) *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	sf := addSelectFlags(fs)
	delim := fs.String("delim", cfg.Delimiter, "Field delimiter")

	return &Command{
		Flags: fs,
		Usage: "list [flags] [name|index...]",
		Short: "List benchmarks with their index and tags",
		Long: `List the benchmarks that "run" would execute with the same filters.

Indices come from sorting all registered benchmarks by name and do not
change with the filters, so they can be passed to "run" directly.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			d := cfg.Delimiter
			if fs.Changed("delim") {
				d = *delim
			}

			if d == "" {
				return config.ErrDelimiterEmpty
			}

			sel, err := bench.Select(reg, sf.options(cfg, fs, args))
			if err != nil {
				return err
			}

			warnUnmatched(o, sel, args)

			return report.WriteList(o.Out(), d, sel)
		},
	}
}
