package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/tenets/internal/domain"
)

// AddReligionsCommand adds the religions command group to the root command.
func AddReligionsCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "religions",
		Short: "Show the pantheons and religions in play",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the pantheons and religions in play with their beliefs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReligionsList(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.AddCommand(list)
	root.AddCommand(cmd)
}

// runReligionsList prints every religion in the save.
func runReligionsList(ctx context.Context, w io.Writer, flags *GlobalFlags) error {
	wld, err := loadWorld(ctx, flags)
	if err != nil {
		return err
	}

	religions := wld.state.SortedReligions()
	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(religions)
	}

	if len(religions) == 0 {
		out.Info("No pantheons or religions yet.")
		return nil
	}

	rows := make([][]string, 0, len(religions))
	for _, r := range religions {
		kind := r.Name
		if r.Pantheon {
			kind = "pantheon"
		}
		rows = append(rows, []string{
			r.GetDisplayName(),
			kind,
			r.FoundingCiv,
			joinOrDash(r.BeliefNamesOf(domain.BeliefPantheon)),
			joinOrDash(r.BeliefNamesOf(domain.BeliefFounder)),
			joinOrDash(r.BeliefNamesOf(domain.BeliefFollower)),
			joinOrDash(r.BeliefNamesOf(domain.BeliefEnhancer)),
		})
	}
	out.Table([]string{"NAME", "RELIGION", "CIV", "PANTHEON", "FOUNDER", "FOLLOWER", "ENHANCER"}, rows)
	return nil
}
