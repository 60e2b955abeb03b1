// Package cli implements the ubench command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/ubench/internal/config"
	"github.com/calvinalkan/ubench/pkg/bench"
)

// Run is the main entry point. Returns exit code.
//
// reg is the benchmark registry, constructed once by the caller. sigCh, if
// non-nil, delivers interrupt signals; they cut the post-run sleep short.
func Run(
	stdin io.Reader,
	out io.Writer,
	errOut io.Writer,
	args []string,
	env map[string]string,
	sigCh <-chan os.Signal,
	reg *bench.Registry,
) int {
	o := NewIO(out, errOut)

	globalFlags := flag.NewFlagSet("ubench", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.SetOutput(io.Discard)

	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")

	var argv []string
	if len(args) > 1 {
		argv = args[1:]
	}

	err := globalFlags.Parse(argv)
	if err != nil {
		o.ErrPrintln("error:", err)
		printUsage(NewIO(errOut, errOut), globalFlags, nil)

		return 1
	}

	if *flagHelp {
		printUsage(o, globalFlags, allCommands(config.Default(), reg, stdin, nil))

		return 0
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: *flagCwd,
		ConfigPath:      *flagConfig,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	commands := allCommands(cfg, reg, stdin, env)

	commandAndArgs := globalFlags.Args()
	if len(commandAndArgs) == 0 {
		printUsage(o, globalFlags, commands)

		return 0
	}

	name := commandAndArgs[0]

	var cmd *Command

	for _, c := range commands {
		if c.Name() == name {
			cmd = c

			break
		}
	}

	if cmd == nil {
		o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
		printUsage(NewIO(errOut, errOut), globalFlags, commands)

		return 1
	}

	if code := cmd.Run(ctx, o, commandAndArgs[1:]); code != 0 {
		return code
	}

	return o.Finish()
}

var errUnknownCommand = errors.New("unknown command")

func allCommands(cfg config.Config, reg *bench.Registry, stdin io.Reader, env map[string]string) []*Command {
	return []*Command{
		RunCmd(cfg, reg),
		ListCmd(cfg, reg),
		ShellCmd(cfg, reg, stdin, env),
		PrintConfigCmd(cfg),
	}
}

func printUsage(o *IO, globalFlags *flag.FlagSet, commands []*Command) {
	o.Println("ubench - micro-benchmark harness")
	o.Println()
	o.Println("Usage: ubench [global flags] <command> [flags] [args]")
	o.Println()
	o.Println("Global flags:")

	var buf strings.Builder
	globalFlags.SetOutput(&buf)
	globalFlags.PrintDefaults()
	globalFlags.SetOutput(io.Discard)
	o.Printf("%s", buf.String())

	if len(commands) == 0 {
		return
	}

	o.Println()
	o.Println("Commands:")

	for _, c := range commands {
		o.Println(c.HelpLine())
	}
}
