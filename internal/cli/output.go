package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/tenets/internal/tui"
)

// newOutput creates the output for the format chosen with --output.
func newOutput(w io.Writer, flags *GlobalFlags) tui.Output {
	return tui.NewOutput(w, flags.Output)
}

// reportError prints a failed command's error. JSON output goes to stdout so
// scripts read the error object from the same stream as results.
func reportError(cmd *cobra.Command, flags *GlobalFlags, err error) {
	w := cmd.ErrOrStderr()
	if flags.Output == OutputJSON {
		w = cmd.OutOrStdout()
	}
	newOutput(w, flags).Error(err)
}

// joinOrDash joins names, or returns "-" when there are none.
func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
