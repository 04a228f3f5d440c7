package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tenets/internal/domain"
	"github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/picker"
	"github.com/mrz1836/tenets/internal/ruleset"
)

var (
	glamourRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	glamourRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getGlamourRenderer returns a cached glamour renderer for markdown rendering.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// beliefListing is one belief row with who holds it.
type beliefListing struct {
	Name        string   `json:"name"`
	Category    string   `json:"type"`
	Uniques     []string `json:"uniques,omitempty"`
	Description string   `json:"description,omitempty"`
	HeldBy      string   `json:"held_by,omitempty"`
}

// AddBeliefsCommand adds the beliefs command group to the root command.
func AddBeliefsCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "beliefs",
		Short: "List and describe ruleset beliefs",
	}

	var (
		category  string
		available bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List the beliefs of the ruleset",
		Long: `List the beliefs of the ruleset.

When a game save exists, the religion holding each belief is shown.

Examples:
  tenets beliefs list
  tenets beliefs list --category follower
  tenets beliefs list --available -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBeliefsList(cmd.Context(), cmd.OutOrStdout(), flags, category, available)
		},
	}
	list.Flags().StringVar(&category, "category", "", "only this category (pantheon|founder|follower|enhancer)")
	list.Flags().BoolVar(&available, "available", false, "only beliefs no religion holds yet (needs a save)")

	show := &cobra.Command{
		Use:   "show <name>",
		Short: "Describe one belief",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBeliefsShow(cmd.Context(), cmd.OutOrStdout(), flags, args[0])
		},
	}

	cmd.AddCommand(list, show)
	root.AddCommand(cmd)
}

// loadOptionalState loads the ruleset and, if one exists, the save.
// required makes a missing save an error.
func loadOptionalState(ctx context.Context, flags *GlobalFlags, required bool) (*ruleset.Ruleset, *game.State, error) {
	wld, err := loadWorld(ctx, flags)
	if err == nil {
		return wld.rules, wld.state, nil
	}
	if required || !stderrors.Is(err, errors.ErrGameNotFound) {
		return nil, nil, err
	}
	_, rules, err := loadRules(ctx, flags)
	if err != nil {
		return nil, nil, err
	}
	return rules, nil, nil
}

// runBeliefsList prints the ruleset beliefs.
func runBeliefsList(ctx context.Context, w io.Writer, flags *GlobalFlags, category string, available bool) error {
	var filter domain.BeliefCategory
	if category != "" {
		c, err := domain.ParseBeliefCategory(category)
		if err != nil {
			return err
		}
		filter = c
	}

	rules, st, err := loadOptionalState(ctx, flags, available)
	if err != nil {
		return err
	}

	listings := listBeliefs(rules, st, filter, available)

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(listings)
	}

	headers := []string{"BELIEF", "CATEGORY", "EFFECTS"}
	if st != nil && !available {
		headers = append(headers, "HELD BY")
	}
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		row := []string{l.Name, picker.CategoryTitle(domain.BeliefCategory(l.Category)), strings.Join(l.Uniques, ", ")}
		if len(headers) == 4 {
			held := l.HeldBy
			if held == "" {
				held = "-"
			}
			row = append(row, held)
		}
		rows = append(rows, row)
	}
	out.Table(headers, rows)
	return nil
}

// listBeliefs filters the ruleset beliefs. st may be nil.
func listBeliefs(rules *ruleset.Ruleset, st *game.State, filter domain.BeliefCategory, available bool) []beliefListing {
	var beliefs []domain.Belief
	if filter != "" {
		beliefs = rules.BeliefsByCategory(filter)
	} else {
		beliefs = rules.Beliefs()
	}

	listings := make([]beliefListing, 0, len(beliefs))
	for _, b := range beliefs {
		l := beliefListing{
			Name:        b.Name,
			Category:    b.Category.String(),
			Uniques:     b.Uniques,
			Description: b.Description,
		}
		if st != nil {
			if holder, ok := st.ReligionHoldingBelief(b.Name); ok {
				if available {
					continue
				}
				l.HeldBy = holder.GetDisplayName()
			}
		}
		listings = append(listings, l)
	}
	return listings
}

// runBeliefsShow prints one belief, rendered as markdown on text output.
func runBeliefsShow(ctx context.Context, w io.Writer, flags *GlobalFlags, name string) error {
	rules, st, err := loadOptionalState(ctx, flags, false)
	if err != nil {
		return err
	}

	b, ok := rules.Belief(name)
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrBeliefNotFound, name)
	}
	listing := listBeliefs(rules, st, "", false)
	var shown beliefListing
	for _, l := range listing {
		if l.Name == b.Name {
			shown = l
			break
		}
	}

	if flags.Output == OutputJSON {
		return newOutput(w, flags).JSON(shown)
	}

	renderMarkdown(w, beliefMarkdown(shown))
	return nil
}

// beliefMarkdown formats a belief as a markdown document.
func beliefMarkdown(l beliefListing) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", l.Name)
	fmt.Fprintf(&sb, "*%s belief*\n\n", picker.CategoryTitle(domain.BeliefCategory(l.Category)))
	if len(l.Uniques) > 0 {
		sb.WriteString("## Effects\n\n")
		for _, u := range l.Uniques {
			fmt.Fprintf(&sb, "- %s\n", u)
		}
		sb.WriteString("\n")
	}
	if l.Description != "" {
		sb.WriteString(l.Description)
		sb.WriteString("\n\n")
	}
	if l.HeldBy != "" {
		fmt.Fprintf(&sb, "Held by **%s**.\n", l.HeldBy)
	}
	return sb.String()
}

// renderMarkdown renders markdown with glamour, falling back to plain text.
func renderMarkdown(w io.Writer, md string) {
	if renderer := getGlamourRenderer(); renderer != nil {
		if rendered, err := renderer.Render(md); err == nil {
			_, _ = io.WriteString(w, rendered)
			return
		}
	}
	_, _ = io.WriteString(w, md)
}

