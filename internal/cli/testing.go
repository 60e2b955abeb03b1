package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/ubench/pkg/bench"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory, environment variables and the registry.
type CLI struct {
	t        *testing.T
	Dir      string
	Env      map[string]string
	Registry *bench.Registry
}

// NewCLI creates a new test CLI with a temp directory and [TestRegistry].
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:        t,
		Dir:      t.TempDir(),
		Env:      map[string]string{},
		Registry: TestRegistry(),
	}
}

// TestRegistry returns a small registry of cheap benchmarks. Sorted by
// name: Alpha=1 Beta=2 Delta=3 Gamma=4 Omega=5.
func TestRegistry() *bench.Registry {
	reg := bench.NewRegistry()

	var sink int

	loop := func(n int) {
		for i := range n {
			sink += i
		}
	}

	reg.MustRegister(
		bench.Info{Name: "Gamma", Tags: []bench.Tag{bench.TagAlgorithm}, Run: loop},
		bench.Info{Name: "Alpha", Tags: []bench.Tag{bench.TagString, bench.TagAlgorithm}, Run: loop},
		bench.Info{Name: "Omega", Tags: []bench.Tag{bench.TagUnstable}, Run: loop},
		bench.Info{Name: "Beta", Tags: []bench.Tag{bench.TagIO}},
		bench.Info{Name: "Delta", Tags: []bench.Tag{bench.TagSkip, bench.TagString}, Run: loop},
	)

	return reg
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "ubench" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput("", args...)
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
// stdin must be a string or io.Reader; panics otherwise.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	var inReader io.Reader

	switch v := stdin.(type) {
	case string:
		inReader = strings.NewReader(v)
	case io.Reader:
		inReader = v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}

	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"ubench", "--cwd", r.Dir}, args...)
	code := Run(inReader, &outBuf, &errBuf, fullArgs, r.Env, nil, r.Registry)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Also fails if stdout is not empty. Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	if stdout != "" {
		r.t.Fatalf("command %v failed but stdout should be empty\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// WriteFile writes content to a file relative to Dir.
func (r *CLI) WriteFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.Dir, name)

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		r.t.Fatalf("failed to create dir for %s: %v", name, err)
	}

	err = os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		r.t.Fatalf("failed to write %s: %v", name, err)
	}
}

// ReadFile reads a file relative to Dir.
func (r *CLI) ReadFile(name string) string {
	r.t.Helper()

	content, err := os.ReadFile(filepath.Join(r.Dir, name))
	if err != nil {
		r.t.Fatalf("failed to read %s: %v", name, err)
	}

	return string(content)
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
