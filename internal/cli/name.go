package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/picker"
)

// nameCheckResult is the JSON form of an accepted name.
type nameCheckResult struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

// AddNameCommand adds the name command group to the root command.
func AddNameCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Work with religion names",
	}

	check := &cobra.Command{
		Use:   "check <name>",
		Short: "Check whether a religion can be given this name",
		Long: `Check whether a founded religion can be given this name.

A name is rejected when it is empty, when it is reserved, or when a
religion in play already uses it.

Exit codes:
  0: The name is available
  2: The name is rejected`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNameCheck(cmd.Context(), cmd.OutOrStdout(), flags, args[0])
		},
	}

	cmd.AddCommand(check)
	root.AddCommand(cmd)
}

// runNameCheck validates name against the ruleset and, when present, the save.
func runNameCheck(ctx context.Context, w io.Writer, flags *GlobalFlags, name string) error {
	rules, st, err := loadOptionalState(ctx, flags, false)
	if err != nil {
		return err
	}
	if st == nil {
		if st, err = game.NewState(); err != nil {
			return err
		}
	}

	if err := picker.ValidateReligionName(name, rules, st); err != nil {
		return errors.NewExitCode2Error(err)
	}

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(nameCheckResult{Name: name, Valid: true})
	}
	out.Success(fmt.Sprintf("%q is available", name))
	return nil
}
