package cli_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/ubench/internal/cli"
)

func Test_Shell_Executes_Script_From_Stdin_When_Not_A_Terminal(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	script := strings.Join([]string{
		"# comment lines are ignored",
		"list",
		"set num_iters 2",
		"set num_samples 3",
		"run Alpha",
		"exit",
		"run Gamma",
	}, "\n")

	stdout, stderr, exitCode := c.RunWithInput(script, "shell")

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr)
	}

	cli.AssertContains(t, stdout, "5,Omega,[unstable]")
	cli.AssertContains(t, stdout, "3,Delta,[skip, string]")
	cli.AssertContains(t, stdout, "1,Alpha,3,")
	cli.AssertNotContains(t, stdout, "4,Gamma,3,")
}

func Test_Shell_Reports_Errors_And_Continues_When_Command_Fails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	script := "frob\nset colour blue\nset num_samples 0\nset num_iters x\nrun Missing\nconfig\n"

	stdout, stderr, exitCode := c.RunWithInput(script, "shell")

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stdout, "unknown command: frob")
	cli.AssertContains(t, stderr, "unknown setting: colour")
	cli.AssertContains(t, stderr, "num_samples must be >= 1")
	cli.AssertContains(t, stderr, "invalid value: num_iters")
	cli.AssertContains(t, stdout, `no benchmark named or indexed "Missing"`)

	// Rejected settings leave the previous values in place.
	cli.AssertContains(t, stdout, "num_samples=1")
	cli.AssertContains(t, stdout, "num_iters=0")
}

func Test_Shell_Lists_Tags_When_Asked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("shell")

	if got, want := stdout, ""; got != want {
		t.Errorf("empty script stdout=%q, want=%q", got, want)
	}

	stdout, _, _ = c.RunWithInput("tags\nhelp\n", "shell")

	cli.AssertContains(t, stdout, "algorithm\n")
	cli.AssertContains(t, stdout, "unstable (skipped by default)")
	cli.AssertContains(t, stdout, "skip (skipped by default)")
	cli.AssertContains(t, stdout, "set <key> <value>")
}

func Test_Shell_Completes_Commands_And_Names_When_Tab_Pressed(t *testing.T) {
	t.Parallel()

	reg := cli.TestRegistry()

	tests := []struct {
		line string
		want []string
	}{
		{line: "", want: []string{"run", "list", "tags", "set", "config", "help", "exit", "quit"}},
		{line: "r", want: []string{"run"}},
		{line: "run ", want: []string{"run Alpha", "run Beta", "run Delta", "run Gamma", "run Omega"}},
		{line: "list Al", want: []string{"list Alpha"}},
		{line: "run Alpha G", want: []string{"run Alpha Gamma"}},
		{line: "set num", want: nil},
	}

	for _, tt := range tests {
		got := cli.CompleteShell(reg, tt.line)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("complete(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}
