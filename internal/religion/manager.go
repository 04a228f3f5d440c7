// Package religion applies confirmed belief selections to the game: adopting
// pantheons, founding religions and enhancing them.
package religion

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrz1836/tenets/internal/clock"
	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/picker"
	"github.com/mrz1836/tenets/internal/ruleset"
)

// Manager applies belief choices for one civilization.
//
// It works on a snapshot of the game state. With a store configured,
// ChooseBeliefs re-validates and applies against the freshly loaded save under
// the save lock and then replaces the snapshot.
type Manager struct {
	rules *ruleset.Ruleset
	state *game.State
	civ   string
	mode  constants.PickerMode
	clock clock.Clock
	store game.Store
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used to stamp religions.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithStore persists applied choices through store.
func WithStore(store game.Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithMode forces the picker mode instead of deriving it from the
// civilization's religion state.
func WithMode(mode constants.PickerMode) Option {
	return func(m *Manager) { m.mode = mode }
}

// NewManager creates a Manager for civ. The mode must be reachable from the
// civilization's current religion state.
func NewManager(rules *ruleset.Ruleset, st *game.State, civ string, opts ...Option) (*Manager, error) {
	if rules == nil || st == nil {
		return nil, fmt.Errorf("religion manager needs a ruleset and a game state: %w", tenetserrors.ErrInvalidArgument)
	}

	m := &Manager{rules: rules, state: st, civ: civ, clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(m)
	}

	c, err := st.Civilization(civ)
	if err != nil {
		return nil, err
	}

	if m.mode == "" {
		if m.mode, err = DefaultMode(c.ReligionState); err != nil {
			return nil, fmt.Errorf("%s: %w", civ, err)
		}
	}
	if err := checkMode(m.mode, c.ReligionState); err != nil {
		return nil, fmt.Errorf("%s: %w", civ, err)
	}
	return m, nil
}

// DefaultMode returns the next step for a civilization in state s.
func DefaultMode(s constants.ReligionState) (constants.PickerMode, error) {
	switch s {
	case constants.ReligionStateNone, "":
		return constants.PickerModePantheon, nil
	case constants.ReligionStatePantheon:
		return constants.PickerModeFound, nil
	case constants.ReligionStateReligion:
		return constants.PickerModeEnhance, nil
	default:
		return "", fmt.Errorf("%w: %s religion cannot progress further", tenetserrors.ErrInvalidTransition, s)
	}
}

// targetState is the religion state a civilization reaches by completing mode.
func targetState(mode constants.PickerMode) constants.ReligionState {
	switch mode {
	case constants.PickerModePantheon:
		return constants.ReligionStatePantheon
	case constants.PickerModeFound:
		return constants.ReligionStateReligion
	default:
		return constants.ReligionStateEnhancedReligion
	}
}

func checkMode(mode constants.PickerMode, from constants.ReligionState) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", tenetserrors.ErrInvalidPickerMode, mode)
	}
	if from == "" {
		from = constants.ReligionStateNone
	}
	if !from.CanTransitionTo(targetState(mode)) {
		return fmt.Errorf("%w: cannot %s from %s", tenetserrors.ErrInvalidTransition, mode, from)
	}
	return nil
}

// Mode returns the picker mode this manager applies.
func (m *Manager) Mode() constants.PickerMode {
	return m.mode
}

// Civilization returns the civilization name.
func (m *Manager) Civilization() string {
	return m.civ
}

// State returns the current snapshot.
func (m *Manager) State() *game.State {
	return m.state
}

// Entitlement returns how many beliefs of each category the civilization
// picks in its mode.
func (m *Manager) Entitlement() domain.BeliefCounts {
	return entitlement(m.mode, m.state, m.civ)
}

func entitlement(mode constants.PickerMode, st *game.State, civ string) domain.BeliefCounts {
	switch mode {
	case constants.PickerModePantheon:
		return domain.BeliefCounts{Pantheon: 1}
	case constants.PickerModeFound:
		counts := domain.BeliefCounts{Founder: 1, Follower: 1}
		if !hasPantheon(st, civ) {
			counts.Pantheon = 1
		}
		return counts
	case constants.PickerModeEnhance:
		return domain.BeliefCounts{Follower: 1, Enhancer: 1}
	default:
		return domain.BeliefCounts{}
	}
}

func hasPantheon(st *game.State, civ string) bool {
	c, err := st.Civilization(civ)
	if err != nil {
		return false
	}
	r, ok := st.ReligionOf(c)
	return ok && len(r.PantheonBeliefs) > 0
}

// NewSession opens a picker session for this manager's civilization and mode,
// with the manager as the belief chooser.
func (m *Manager) NewSession() (*picker.Session, error) {
	return picker.NewSession(picker.Options{
		Mode:         m.mode,
		Counts:       m.Entitlement(),
		Civilization: m.civ,
		Rules:        m.rules,
		State:        m.state,
		Chooser:      m,
	})
}

// ChooseBeliefs validates the selection and applies it to the game.
func (m *Manager) ChooseBeliefs(ctx context.Context, displayName, religionName string, beliefs []domain.Belief) error {
	apply := func(st *game.State) error {
		if err := m.validate(st, displayName, religionName, beliefs); err != nil {
			return err
		}
		return m.apply(st, displayName, religionName, beliefs)
	}

	if m.store == nil {
		if err := apply(m.state); err != nil {
			return err
		}
	} else {
		var updated *game.State
		err := m.store.Update(ctx, func(st *game.State) error {
			if err := apply(st); err != nil {
				return err
			}
			updated = st
			return nil
		})
		if err != nil {
			return err
		}
		m.state = updated
	}

	zerolog.Ctx(ctx).Info().
		Str("civ", m.civ).
		Str("mode", m.mode.String()).
		Str("religion", religionName).
		Str("display_name", displayName).
		Int("beliefs", len(beliefs)).
		Msg("beliefs applied")
	return nil
}

func (m *Manager) validate(st *game.State, displayName, religionName string, beliefs []domain.Belief) error {
	civ, err := st.Civilization(m.civ)
	if err != nil {
		return err
	}
	if err := checkMode(m.mode, civ.ReligionState); err != nil {
		return err
	}

	seen := make(map[string]bool, len(beliefs))
	for _, b := range beliefs {
		known, ok := m.rules.Belief(b.Name)
		if !ok {
			return fmt.Errorf("%w: %q", tenetserrors.ErrBeliefNotFound, b.Name)
		}
		if known.Category != b.Category {
			return fmt.Errorf("%w: %q is a %s belief", tenetserrors.ErrBeliefCategoryMismatch, b.Name, known.Category)
		}
		if seen[b.Name] {
			return fmt.Errorf("%w: %q", tenetserrors.ErrDuplicateBelief, b.Name)
		}
		seen[b.Name] = true
		if holder, taken := st.ReligionHoldingBelief(b.Name); taken {
			return fmt.Errorf("%w: %q is held by %s", tenetserrors.ErrBeliefUnavailable, b.Name, holder.GetDisplayName())
		}
	}

	want := entitlement(m.mode, st, m.civ)
	if got := domain.CountBeliefs(beliefs); got != want {
		return fmt.Errorf("%w: got %+v, want %+v", tenetserrors.ErrBeliefCountMismatch, got, want)
	}

	switch m.mode {
	case constants.PickerModeFound:
		if !m.rules.HasReligion(religionName) {
			return fmt.Errorf("%w: %q", tenetserrors.ErrReligionIconUnavailable, religionName)
		}
		if _, used := st.Religions[religionName]; used {
			return fmt.Errorf("%w: %q is already founded", tenetserrors.ErrReligionIconUnavailable, religionName)
		}
		if displayName != religionName {
			if err := picker.ValidateReligionName(displayName, m.rules, st); err != nil {
				return err
			}
		}
	case constants.PickerModeEnhance:
		r, ok := st.ReligionOf(civ)
		if !ok || r.Pantheon {
			return fmt.Errorf("%s has no religion to enhance: %w", m.civ, tenetserrors.ErrReligionNotFound)
		}
	}
	return nil
}

func (m *Manager) apply(st *game.State, displayName, religionName string, beliefs []domain.Belief) error {
	civ, err := st.Civilization(m.civ)
	if err != nil {
		return err
	}
	now := m.clock.Now()

	var target *domain.Religion
	switch m.mode {
	case constants.PickerModePantheon:
		if existing, ok := st.ReligionOf(civ); ok && existing.Pantheon {
			target = existing
			break
		}
		target = &domain.Religion{Name: civ.Name, FoundingCiv: civ.Name, Pantheon: true, FoundedAt: now}
		st.Religions[civ.Name] = target

	case constants.PickerModeFound:
		target = &domain.Religion{Name: religionName, FoundingCiv: civ.Name, FoundedAt: now}
		if displayName != religionName {
			target.DisplayName = displayName
		}
		if pantheon, ok := st.ReligionOf(civ); ok && pantheon.Pantheon {
			target.PantheonBeliefs = append(target.PantheonBeliefs, pantheon.PantheonBeliefs...)
			delete(st.Religions, pantheon.Name)
		}
		st.Religions[religionName] = target

	case constants.PickerModeEnhance:
		target, _ = st.ReligionOf(civ)
	}

	for _, b := range beliefs {
		target.AddBelief(b)
	}
	target.UpdatedAt = now

	civ.ReligionName = target.Name
	civ.ReligionState = targetState(m.mode)
	return nil
}
