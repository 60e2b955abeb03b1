package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/ubench/internal/config"
	"github.com/calvinalkan/ubench/internal/report"
	"github.com/calvinalkan/ubench/pkg/bench"
)

// RunCmd returns the run command.
func RunCmd(cfg config.Config, reg *bench.Registry) *Command {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)

	sf := addSelectFlags(fs)
	numSamples := fs.Int("num-samples", cfg.NumSamples, "Samples per benchmark")
	numIters := fs.Int("num-iters", cfg.NumIters, "Fixed iteration count, 0 = auto-calibrate")
	iterScale := fs.Int("iter-scale", cfg.IterScale, "Multiplier for the one second calibration target")
	delim := fs.String("delim", cfg.Delimiter, "Field delimiter for csv output")
	verbose := fs.BoolP("verbose", "v", cfg.Verbose, "Log calibration details to stderr")
	sleep := fs.Duration("sleep", 0, "Wait this long after the run finishes")
	format := fs.String("format", cfg.Format, "Output format: csv|table|json|auto")
	output := fs.StringP("output", "o", cfg.Output, "Also write the report to `file`")

	return &Command{
		Flags: fs,
		Usage: "run [flags] [name|index...]",
		Short: "Run benchmarks and report statistics",
		Long: `Run the selected benchmarks and print one row of statistics per benchmark.

Benchmarks are selected by name or index when any are given. Otherwise
every benchmark whose tags include all --tags and none of --skip-tags runs.
By default benchmarks tagged unstable or skip are excluded.

Times are microseconds per iteration; MAX_RSS is the growth of the
process's peak resident set size while the benchmark ran, in bytes.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			runCfg := cfg

			if fs.Changed("num-samples") {
				runCfg.NumSamples = *numSamples
			}

			if fs.Changed("num-iters") {
				runCfg.NumIters = *numIters
			}

			if fs.Changed("iter-scale") {
				runCfg.IterScale = *iterScale
			}

			if fs.Changed("delim") {
				runCfg.Delimiter = *delim
			}

			if fs.Changed("verbose") {
				runCfg.Verbose = *verbose
			}

			if fs.Changed("sleep") {
				runCfg.Sleep = sleep.String()
			}

			if fs.Changed("format") {
				runCfg.Format = *format
			}

			if fs.Changed("output") {
				runCfg.Output = *output
			}

			if err := runCfg.Validate(); err != nil {
				return err
			}

			sel, err := bench.Select(reg, sf.options(runCfg, fs, args))
			if err != nil {
				return err
			}

			warnUnmatched(o, sel, args)

			return execRun(ctx, o, runCfg, sel)
		},
	}
}

// selectFlags are the selection flags shared by run and list.
type selectFlags struct {
	tags     *[]string
	skipTags *[]string
	runAll   *bool
}

func addSelectFlags(fs *flag.FlagSet) *selectFlags {
	return &selectFlags{
		tags:     fs.StringSlice("tags", nil, "Only run benchmarks with all of these tags"),
		skipTags: fs.StringSlice("skip-tags", nil, "Skip benchmarks with any of these tags (default unstable,skip)"),
		runAll:   fs.Bool("run-all", false, "Do not skip any tags"),
	}
}

func (s *selectFlags) options(cfg config.Config, fs *flag.FlagSet, tests []string) bench.SelectOptions {
	opts := bench.SelectOptions{
		Tests:    tests,
		Tags:     cfg.Tags,
		SkipTags: cfg.SkipTags,
	}

	if fs.Changed("tags") {
		opts.Tags = *s.tags
	}

	if fs.Changed("skip-tags") {
		opts.SkipTags = *s.skipTags
		if opts.SkipTags == nil {
			opts.SkipTags = []string{}
		}
	}

	if *s.runAll {
		opts.SkipTags = []string{}
	}

	return opts
}

func warnUnmatched(o *IO, sel bench.Selection, tests []string) {
	for _, t := range sel.Unmatched(tests) {
		o.Warn(fmt.Sprintf("no benchmark named or indexed %q", t), "run 'ubench list --run-all' to see valid names")
	}
}

// execRun measures every benchmark in sel and renders the report.
func execRun(ctx context.Context, o *IO, cfg config.Config, sel bench.Selection) error {
	sleep, err := cfg.SleepDuration()
	if err != nil {
		return err
	}

	runCfg := bench.RunConfig{
		Delimiter:       cfg.Delimiter,
		IterationScale:  cfg.IterScale,
		FixedIterations: cfg.NumIters,
		NumSamples:      cfg.NumSamples,
		Verbose:         cfg.Verbose,
		AfterRunSleep:   sleep,
		Tests:           sel,
	}

	if err := runCfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if runCfg.Verbose {
		logger = slog.New(slog.NewTextHandler(o.ErrOut(), &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	logger.Info("config",
		slog.Int("iter_scale", runCfg.IterationScale),
		slog.Int("num_iters", runCfg.FixedIterations),
		slog.Int("num_samples", runCfg.NumSamples),
		slog.Duration("sleep", runCfg.AfterRunSleep),
		slog.Any("tests", sel.Names()),
	)

	format := report.ResolveFormat(cfg.Format, o.RawOut())

	var (
		w       = o.Out()
		fileBuf bytes.Buffer
	)

	if cfg.Output != "" {
		w = io.MultiWriter(w, &fileBuf)
	}

	meta := report.NewMeta(time.Now(), runCfg.IterationScale, runCfg.FixedIterations, runCfg.NumSamples)
	rep := report.New(format, w, runCfg.Delimiter, meta)
	exec := bench.NewExecutor(runCfg, bench.WithLogger(logger))

	if err := rep.Begin(); err != nil {
		return err
	}

	for _, s := range runCfg.Tests {
		entry := report.Entry{Index: s.Index, Name: s.Info.Name}

		m, ok := exec.Measure(s.Info)
		if ok {
			entry.Supported = true
			entry.Result = bench.Reduce(m.Samples)
			entry.Result.MaxRSS = m.MaxRSS
			entry.Samples = m.Samples
		}

		if err := rep.Add(entry); err != nil {
			return err
		}
	}

	if err := rep.End(); err != nil {
		return err
	}

	if cfg.Output != "" {
		path := cfg.Output
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.EffectiveCwd, path)
		}

		if err := report.WriteFile(path, fileBuf.Bytes()); err != nil {
			return err
		}

		logger.Info("report written", slog.String("path", path))
	}

	return sleepAfterRun(ctx, runCfg.AfterRunSleep)
}

// sleepAfterRun waits d, or until ctx is canceled by an interrupt.
func sleepAfterRun(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	return nil
}
