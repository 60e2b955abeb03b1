package cli

import "github.com/calvinalkan/ubench/pkg/bench"

// CompleteShell exposes the shell tab completer for tests.
func CompleteShell(reg *bench.Registry, line string) []string {
	s := &shell{reg: reg}

	return s.complete(line)
}
