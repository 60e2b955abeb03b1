package cli

import (
	"context"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/ubench/internal/config"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, cfg)
		},
	}
}

func execPrintConfig(io *IO, cfg config.Config) error {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("delimiter=" + strconv.Quote(cfg.Delimiter))
	io.Println("iter_scale=" + strconv.Itoa(cfg.IterScale))
	io.Println("num_iters=" + strconv.Itoa(cfg.NumIters))
	io.Println("num_samples=" + strconv.Itoa(cfg.NumSamples))
	io.Println("verbose=" + strconv.FormatBool(cfg.Verbose))
	io.Println("format=" + cfg.Format)

	if cfg.Sleep != "" {
		io.Println("sleep=" + cfg.Sleep)
	}

	if len(cfg.Tags) > 0 {
		io.Println("tags=" + strings.Join(cfg.Tags, ","))
	}

	if cfg.SkipTags == nil {
		io.Println("skip_tags=(default)")
	} else {
		io.Println("skip_tags=" + strings.Join(cfg.SkipTags, ","))
	}

	if cfg.Output != "" {
		io.Println("output=" + cfg.Output)
	}

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
