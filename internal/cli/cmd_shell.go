package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/calvinalkan/ubench/internal/config"
	"github.com/calvinalkan/ubench/internal/report"
	"github.com/calvinalkan/ubench/pkg/bench"
)

const shellPrompt = "ubench> "

var shellCommands = []string{"run", "list", "tags", "set", "config", "help", "exit", "quit"}

var errUnknownSetting = errors.New("unknown setting")

// ShellCmd returns the shell command.
func ShellCmd(cfg config.Config, reg *bench.Registry, stdin io.Reader, env map[string]string) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Interactive prompt for listing and running benchmarks",
		Long: `Start an interactive prompt. Type "help" inside the shell for commands.

On a terminal the prompt supports line editing, history and tab completion
of commands and benchmark names. Otherwise commands are read line by line
from stdin.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			sh := &shell{ctx: ctx, o: o, cfg: cfg, reg: reg}

			if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return sh.interactive(historyFile(env))
			}

			return sh.script(stdin)
		},
	}
}

// historyFile returns the path to the history file.
func historyFile(env map[string]string) string {
	home := env["HOME"]
	if home == "" {
		return ""
	}

	return filepath.Join(home, ".ubench_history")
}

type shell struct {
	ctx context.Context
	o   *IO
	cfg config.Config
	reg *bench.Registry
}

// interactive runs the prompt on a terminal with liner.
func (s *shell) interactive(history string) error {
	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	if f, err := os.Open(history); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s.o.Printf("ubench shell (%d benchmarks). Type 'help' for commands.\n", s.reg.Len())

	for {
		line, err := ln.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		ln.AppendHistory(line)

		if s.exec(line) {
			break
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}

	return nil
}

// script reads commands from r until EOF or exit.
func (s *shell) script(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if s.exec(line) {
			return nil
		}
	}

	return scanner.Err()
}

// exec runs one shell line. Returns true when the shell should exit.
func (s *shell) exec(line string) bool {
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error

	switch cmd {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		s.printHelp()
	case "list", "ls":
		err = s.list(args)
	case "run":
		err = s.run(args)
	case "tags":
		s.tags()
	case "set":
		err = s.set(args)
	case "config":
		err = execPrintConfig(s.o, s.cfg)
	default:
		s.o.Printf("unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		s.o.ErrPrintln("error:", err)
	}

	return false
}

func (s *shell) printHelp() {
	s.o.Println(`Commands:
  run [name|index...]   Run benchmarks (default filters when none given)
  list [name|index...]  List all benchmarks, including skipped ones
  tags                  Show valid tags
  set <key> <value>     Change num_samples, num_iters, iter_scale, verbose or format
  config                Show current settings
  help                  Show this help
  exit                  Leave the shell`)
}

func (s *shell) list(args []string) error {
	sel, err := bench.Select(s.reg, bench.SelectOptions{Tests: args, SkipTags: []string{}})
	if err != nil {
		return err
	}

	return report.WriteList(s.o.Out(), s.cfg.Delimiter, sel)
}

func (s *shell) run(args []string) error {
	sel, err := bench.Select(s.reg, bench.SelectOptions{
		Tests:    args,
		Tags:     s.cfg.Tags,
		SkipTags: s.cfg.SkipTags,
	})
	if err != nil {
		return err
	}

	for _, t := range sel.Unmatched(args) {
		s.o.Printf("no benchmark named or indexed %q\n", t)
	}

	if len(sel) == 0 {
		return nil
	}

	// The shell never writes report files or sleeps.
	cfg := s.cfg
	cfg.Output = ""
	cfg.Sleep = ""

	return execRun(s.ctx, s.o, cfg, sel)
}

func (s *shell) tags() {
	skip := bench.NewTagSet(bench.DefaultSkipTags()...)

	for _, t := range bench.KnownTags() {
		if skip.Has(t) {
			s.o.Printf("%s (skipped by default)\n", t)
		} else {
			s.o.Println(string(t))
		}
	}
}

func (s *shell) set(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: set <key> <value>", config.ErrInvalidValue)
	}

	next := s.cfg
	key, value := args[0], args[1]

	var err error

	switch key {
	case "num_samples":
		next.NumSamples, err = strconv.Atoi(value)
	case "num_iters":
		next.NumIters, err = strconv.Atoi(value)
	case "iter_scale":
		next.IterScale, err = strconv.Atoi(value)
	case "verbose":
		next.Verbose, err = strconv.ParseBool(value)
	case "format":
		next.Format = value
	default:
		return fmt.Errorf("%w: %s", errUnknownSetting, key)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", config.ErrInvalidValue, key, err)
	}

	if err := next.Validate(); err != nil {
		return err
	}

	s.cfg = next

	return nil
}

// complete offers command names for the first word and benchmark names for
// later words of run and list.
func (s *shell) complete(line string) []string {
	fields := strings.Fields(line)
	trailingSpace := strings.HasSuffix(line, " ")

	if len(fields) == 0 || (len(fields) == 1 && !trailingSpace) {
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}

		var out []string

		for _, c := range shellCommands {
			if strings.HasPrefix(c, prefix) {
				out = append(out, c)
			}
		}

		return out
	}

	if fields[0] != "run" && fields[0] != "list" {
		return nil
	}

	head := line
	prefix := ""

	if !trailingSpace {
		prefix = fields[len(fields)-1]
		head = strings.TrimSuffix(line, prefix)
	}

	var out []string

	for _, info := range s.reg.All() {
		if strings.HasPrefix(info.Name, prefix) {
			out = append(out, head+info.Name)
		}
	}

	slices.Sort(out)

	return out
}
