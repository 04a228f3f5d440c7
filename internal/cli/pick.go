package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	"github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/picker"
	"github.com/mrz1836/tenets/internal/religion"
	"github.com/mrz1836/tenets/internal/tui"
)

// pickFlags holds flags for the pick command.
type pickFlags struct {
	civ        string
	mode       string
	icon       string
	name       string
	beliefs    []string
	accessible bool
}

// scripted reports whether the choice was given on the command line.
func (f *pickFlags) scripted() bool {
	return len(f.beliefs) > 0 || f.icon != "" || f.name != ""
}

// pickResult is the JSON form of a confirmed pick.
type pickResult struct {
	SessionID    string           `json:"session_id"`
	Civilization string           `json:"civilization"`
	Mode         string           `json:"mode"`
	Chosen       []domain.Belief  `json:"chosen"`
	Religion     *domain.Religion `json:"religion"`
}

// AddPickCommand adds the pick command to the root command.
func AddPickCommand(root *cobra.Command, flags *GlobalFlags) {
	pf := &pickFlags{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose beliefs for a civilization",
		Long: `Open the belief picker for a civilization.

The mode follows the civilization's progress: a pantheon first, then founding
a religion, then enhancing it. Use --mode to pick a specific step.

Without --belief, --icon or --name the full-screen picker opens (or the
prompt-by-prompt flow when ui.accessible is set). With them, the choice is
made without prompts and saved directly.

Examples:
  tenets pick --civ Rome
  tenets pick --civ Rome --belief "Sun God"
  tenets pick --civ Rome --icon Taoism --name "The Way" --belief Tithe --belief Pagodas`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPick(cmd.Context(), cmd.OutOrStdout(), flags, pf)
		},
	}

	cmd.Flags().StringVar(&pf.civ, "civ", "", "civilization to choose for (default: game.civilization)")
	cmd.Flags().StringVar(&pf.mode, "mode", "", "picker mode (pantheon|found|enhance)")
	cmd.Flags().StringVar(&pf.icon, "icon", "", "religion to found")
	cmd.Flags().StringVar(&pf.name, "name", "", "display name of the founded religion")
	cmd.Flags().StringArrayVar(&pf.beliefs, "belief", nil, "belief to choose (repeatable)")
	cmd.Flags().BoolVar(&pf.accessible, "accessible", false, "use sequential prompts instead of the full-screen picker")

	root.AddCommand(cmd)
}

// runPick opens a picker session and applies the confirmed choice.
func runPick(ctx context.Context, w io.Writer, flags *GlobalFlags, pf *pickFlags) error {
	out := newOutput(w, flags)

	wld, err := loadWorld(ctx, flags)
	if err != nil {
		return err
	}

	civ, err := resolveCivilization(wld, pf.civ)
	if err != nil {
		if stderrors.Is(err, tui.ErrMenuCanceled) {
			out.Info("No civilization chosen.")
			return nil
		}
		return err
	}

	opts := []religion.Option{religion.WithStore(wld.store)}
	if pf.mode != "" {
		mode := constants.PickerMode(strings.ToLower(pf.mode))
		if !mode.IsValid() {
			return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidPickerMode, pf.mode, constants.ValidPickerModes())
		}
		opts = append(opts, religion.WithMode(mode))
	}

	mgr, err := religion.NewManager(wld.rules, wld.state, civ, opts...)
	if err != nil {
		return err
	}
	session, err := mgr.NewSession()
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().
		Str("session_id", sessionID).
		Str("civ", civ).
		Str("mode", mgr.Mode().String()).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Int("slots", len(session.Slots())).Msg("picker session opened")

	switch {
	case pf.scripted():
		err = runScriptedPick(ctx, wld, session, pf)
	case !terminalCheck():
		err = fmt.Errorf("%w: pass --belief (and --icon when founding) to pick without a terminal", errors.ErrInteractiveRequired)
	case wld.cfg.UI.Accessible || pf.accessible:
		err = tui.RunAccessible(ctx, session, tui.NewHuhPrompter(menuConfig(wld.cfg.UI.Width, true)))
	default:
		err = tui.RunPicker(ctx, session, tui.PickerConfig{
			Width:        wld.cfg.UI.Width,
			ShowKeyHints: wld.cfg.UI.ShowKeyHints,
		})
	}

	if stderrors.Is(err, errors.ErrPickerCanceled) {
		logger.Info().Msg("picker canceled")
		out.Info("No beliefs chosen.")
		return nil
	}
	if err != nil {
		return err
	}

	return printPickResult(out, flags, sessionID, mgr, session)
}

// resolveCivilization picks the civilization from the flag, the config, the
// only civilization in the save or, on a terminal, a prompt.
func resolveCivilization(wld *world, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if wld.cfg.Game.Civilization != "" {
		return wld.cfg.Game.Civilization, nil
	}

	names := wld.state.CivilizationNames()
	switch {
	case len(names) == 0:
		return "", fmt.Errorf("%w: the save has no civilizations", errors.ErrCivilizationNotFound)
	case len(names) == 1:
		return names[0], nil
	case !terminalCheck():
		return "", fmt.Errorf("%w: --civ is required when the save has %d civilizations", errors.ErrInvalidArgument, len(names))
	}

	options := make([]tui.Option, 0, len(names))
	for _, name := range names {
		civ, _ := wld.state.Civilization(name)
		options = append(options, tui.Option{Label: name, Description: civ.ReligionState.String(), Value: name})
	}
	return tui.SelectWithConfig("Which civilization is choosing?", options, menuConfig(wld.cfg.UI.Width, wld.cfg.UI.Accessible))
}

// menuConfig builds the huh menu settings from the ui config.
func menuConfig(width int, accessible bool) *tui.MenuConfig {
	opts := []tui.MenuConfigOption{tui.WithMenuAccessible(accessible)}
	if width > 0 {
		opts = append(opts, tui.WithMenuWidth(width))
	}
	return tui.NewMenuConfig(opts...)
}

// runScriptedPick fills the session from the command-line flags and confirms.
func runScriptedPick(ctx context.Context, wld *world, session *picker.Session, pf *pickFlags) error {
	if session.Mode() == picker.ModeFound {
		if pf.icon == "" {
			return fmt.Errorf("%w: --icon is required to found a religion", errors.ErrInvalidArgument)
		}
		if err := session.SelectIcon(pf.icon); err != nil {
			return err
		}
		if pf.name != "" && pf.name != pf.icon {
			if err := session.ValidateName(pf.name); err != nil {
				return err
			}
			session.Rename(pf.name)
		}
	} else if pf.icon != "" || pf.name != "" {
		return fmt.Errorf("%w: --icon and --name only apply when founding", errors.ErrConflictingFlags)
	}

	beliefs, err := wld.rules.LookupBeliefs(pf.beliefs)
	if err != nil {
		return err
	}
	for _, b := range beliefs {
		slot, ok := firstEmptySlot(session, b.Category)
		if !ok {
			return fmt.Errorf("%w: no empty %s slot for %q", errors.ErrBeliefCountMismatch, b.Category, b.Name)
		}
		if err := session.SelectSlot(slot); err != nil {
			return err
		}
		if err := session.Choose(b); err != nil {
			return err
		}
	}

	return session.Confirm(ctx)
}

// firstEmptySlot returns the first unfilled slot of the category.
func firstEmptySlot(session *picker.Session, category domain.BeliefCategory) (int, bool) {
	for _, slot := range session.Slots() {
		if !slot.Filled && slot.Category == category {
			return slot.Index, true
		}
	}
	return 0, false
}

// printPickResult reports what the confirmed session applied.
func printPickResult(out tui.Output, flags *GlobalFlags, sessionID string, mgr *religion.Manager, session *picker.Session) error {
	chosen := make([]domain.Belief, 0, len(session.Slots()))
	for _, slot := range session.Slots() {
		chosen = append(chosen, slot.Belief)
	}

	var held *domain.Religion
	if civ, err := mgr.State().Civilization(mgr.Civilization()); err == nil {
		held, _ = mgr.State().ReligionOf(civ)
	}

	if flags.Output == OutputJSON {
		return out.JSON(pickResult{
			SessionID:    sessionID,
			Civilization: mgr.Civilization(),
			Mode:         mgr.Mode().String(),
			Chosen:       chosen,
			Religion:     held,
		})
	}

	out.Success(pickSummary(mgr.Civilization(), session))
	rows := make([][]string, 0, len(chosen))
	for _, b := range chosen {
		rows = append(rows, []string{picker.CategoryTitle(b.Category), b.Name, b.Effects()})
	}
	out.Table([]string{"CATEGORY", "BELIEF", "EFFECTS"}, rows)
	return nil
}

// pickSummary describes a confirmed session in one line.
func pickSummary(civ string, session *picker.Session) string {
	switch session.Mode() {
	case picker.ModeFound:
		if session.DisplayName() != session.ReligionName() {
			return fmt.Sprintf("%s founded %s (%s)", civ, session.DisplayName(), session.ReligionName())
		}
		return fmt.Sprintf("%s founded %s", civ, session.ReligionName())
	case picker.ModeEnhance:
		return fmt.Sprintf("%s enhanced %s", civ, session.DisplayName())
	default:
		return fmt.Sprintf("%s adopted a pantheon", civ)
	}
}
