package cli_test

import (
	"testing"

	"github.com/calvinalkan/ubench/internal/cli"
)

func Test_List_Default_Filters_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, exitCode := c.Run("list")

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d", got, want)
	}

	want := "#,Test,[Tags]\n" +
		"4,Gamma,[algorithm]\n" +
		"1,Alpha,[algorithm, string]\n" +
		"2,Beta,[io] Unsupported\n"

	if got := stdout; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_List_Run_All_Shows_Every_Benchmark_When_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, _ := c.Run("list", "--run-all")

	want := "#,Test,[Tags]\n" +
		"4,Gamma,[algorithm]\n" +
		"1,Alpha,[algorithm, string]\n" +
		"5,Omega,[unstable]\n" +
		"2,Beta,[io] Unsupported\n" +
		"3,Delta,[skip, string]\n"

	if got := stdout; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_List_Indices_Are_Stable_Under_Filters_When_Filtered(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("list", "--delim=|", "--tags=unstable", "--skip-tags=")

	if got, want := stdout, "#|Test|[Tags]\n5|Omega|[unstable]"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_List_Selects_By_Index_When_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("list", "3", "Gamma")

	if got, want := stdout, "#,Test,[Tags]\n4,Gamma,[algorithm]\n3,Delta,[skip, string]"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_List_Unknown_Tag_Fails_When_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("list", "--skip-tags=unstable,wat")

	cli.AssertContains(t, stderr, "unknown tag")
	cli.AssertContains(t, stderr, "wat")
}
