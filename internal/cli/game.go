package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tenets/internal/game"
)

// civilizationRow is the JSON form of one civilization in game show.
type civilizationRow struct {
	Name     string `json:"name"`
	State    string `json:"religion_state"`
	Religion string `json:"religion,omitempty"`
}

// AddGameCommand adds the game command group to the root command.
func AddGameCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Create and inspect the game save",
	}

	var (
		civs  []string
		force bool
	)
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game save",
		Long: `Create a new game save with the given civilizations.

Examples:
  tenets game new --civ Rome --civ Mongolia
  tenets game new --civ Siam --save ./siam.json --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGameNew(cmd.Context(), cmd.OutOrStdout(), flags, civs, force)
		},
	}
	newCmd.Flags().StringArrayVar(&civs, "civ", nil, "civilization to add (repeatable)")
	newCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing save")
	_ = newCmd.MarkFlagRequired("civ")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show each civilization's religion progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGameShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.AddCommand(newCmd, show)
	root.AddCommand(cmd)
}

// runGameNew writes a fresh save.
func runGameNew(ctx context.Context, w io.Writer, flags *GlobalFlags, civs []string, force bool) error {
	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	st, err := game.NewState(civs...)
	if err != nil {
		return err
	}
	if force {
		err = store.Save(ctx, st)
	} else {
		err = store.Init(ctx, st)
	}
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Str("path", store.Path()).
		Strs("civilizations", st.CivilizationNames()).
		Msg("game created")

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(st)
	}
	out.Success(fmt.Sprintf("Created %s with %d civilizations", store.Path(), len(st.Civilizations)))
	return nil
}

// runGameShow prints each civilization and where it stands.
func runGameShow(ctx context.Context, w io.Writer, flags *GlobalFlags) error {
	wld, err := loadWorld(ctx, flags)
	if err != nil {
		return err
	}

	civs := make([]civilizationRow, 0, len(wld.state.Civilizations))
	for _, name := range wld.state.CivilizationNames() {
		civ, _ := wld.state.Civilization(name)
		row := civilizationRow{Name: civ.Name, State: civ.ReligionState.String()}
		if r, ok := wld.state.ReligionOf(civ); ok {
			row.Religion = r.GetDisplayName()
		}
		civs = append(civs, row)
	}

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(civs)
	}

	rows := make([][]string, 0, len(civs))
	for _, c := range civs {
		religionName := c.Religion
		if religionName == "" {
			religionName = "-"
		}
		rows = append(rows, []string{c.Name, c.State, religionName})
	}
	out.Info(fmt.Sprintf("Turn %d, ruleset %s", wld.state.Turn, wld.rules.Name()))
	out.Table([]string{"CIVILIZATION", "PROGRESS", "RELIGION"}, rows)
	return nil
}
