package cli

import (
	"os"

	"golang.org/x/term"
)

// terminalCheck reports whether stdin is an interactive terminal.
// Tests replace it to force either branch.
//
//nolint:gochecknoglobals // swapped in tests
var terminalCheck = isTerminal

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
