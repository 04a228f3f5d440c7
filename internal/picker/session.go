package picker

import (
	"context"
	"fmt"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/ruleset"
)

// Mode aliases the picker modes so screen code reads naturally.
type Mode = constants.PickerMode

// Picker modes.
const (
	ModePantheon = constants.PickerModePantheon
	ModeFound    = constants.PickerModeFound
	ModeEnhance  = constants.PickerModeEnhance
)

// BeliefChooser receives the confirmed selection.
// religionName is empty when adopting a pantheon.
type BeliefChooser interface {
	ChooseBeliefs(ctx context.Context, displayName, religionName string, beliefs []domain.Belief) error
}

// Options configures a Session.
type Options struct {
	Mode         Mode
	Counts       domain.BeliefCounts
	Civilization string
	Rules        *ruleset.Ruleset
	State        *game.State
	Chooser      BeliefChooser
}

// Icon is a religion icon as the screen shows it.
type Icon struct {
	Name      string
	Available bool
	Selected  bool
}

// SlotView is a slot as the screen shows it.
type SlotView struct {
	Index    int
	Category domain.BeliefCategory
	Belief   domain.Belief
	Filled   bool
	Active   bool
}

// Label is the text of the slot button.
func (v SlotView) Label() string {
	if v.Filled {
		return v.Belief.Name
	}
	return fmt.Sprintf("Choose a %s belief!", CategoryTitle(v.Category))
}

// Session is the selection state of one picker screen.
// It is not safe for concurrent use.
type Session struct {
	mode     Mode
	civ      *domain.Civilization
	existing *domain.Religion
	rules    *ruleset.Ruleset
	state    *game.State
	chooser  BeliefChooser
	slots    *SlotSet

	active       int
	religionName string
	displayName  string
	confirmed    bool
}

// NewSession validates opts and opens a session with every slot empty.
func NewSession(opts Options) (*Session, error) {
	switch {
	case opts.Rules == nil:
		return nil, fmt.Errorf("picker session needs a ruleset: %w", tenetserrors.ErrInvalidArgument)
	case opts.State == nil:
		return nil, fmt.Errorf("picker session needs a game state: %w", tenetserrors.ErrInvalidArgument)
	case opts.Chooser == nil:
		return nil, fmt.Errorf("picker session needs a belief chooser: %w", tenetserrors.ErrInvalidArgument)
	case !opts.Mode.IsValid():
		return nil, fmt.Errorf("%w: %q", tenetserrors.ErrInvalidPickerMode, opts.Mode)
	}

	civ, err := opts.State.Civilization(opts.Civilization)
	if err != nil {
		return nil, err
	}

	slots, err := NewSlotSet(opts.Counts)
	if err != nil {
		return nil, err
	}

	s := &Session{
		mode:    opts.Mode,
		civ:     civ,
		rules:   opts.Rules,
		state:   opts.State,
		chooser: opts.Chooser,
		slots:   slots,
		active:  -1,
	}
	s.existing, _ = opts.State.ReligionOf(civ)

	if s.mode == ModeEnhance {
		if s.existing == nil || s.existing.Pantheon {
			return nil, fmt.Errorf("%s has no religion to enhance: %w", civ.Name, tenetserrors.ErrReligionNotFound)
		}
		s.religionName = s.existing.Name
		s.displayName = s.existing.GetDisplayName()
	}
	return s, nil
}

// Mode returns the session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Civilization returns the name of the civilization choosing.
func (s *Session) Civilization() string {
	return s.civ.Name
}

// ReligionName returns the selected religion identifier, or "" if none.
func (s *Session) ReligionName() string {
	return s.religionName
}

// DisplayName returns the name the religion will be shown with, or "" if none.
func (s *Session) DisplayName() string {
	return s.displayName
}

// Confirmed reports whether Confirm succeeded.
func (s *Session) Confirmed() bool {
	return s.confirmed
}

// ReligionIcons lists the icons for the icon row.
//
// When founding, every ruleset religion is listed and an icon is available
// unless it is in use or already selected. When enhancing, every icon is
// shown disabled with the current religion's marked. Pantheons have no icon
// row.
func (s *Session) ReligionIcons() []Icon {
	switch s.mode {
	case ModeFound:
		used := make(map[string]bool)
		for _, name := range s.state.UsedReligionIcons() {
			used[name] = true
		}
		names := s.rules.Religions()
		icons := make([]Icon, 0, len(names))
		for _, name := range names {
			selected := name == s.religionName
			icons = append(icons, Icon{Name: name, Available: !used[name] && !selected, Selected: selected})
		}
		return icons
	case ModeEnhance:
		names := s.rules.Religions()
		icons := make([]Icon, 0, len(names))
		for _, name := range names {
			icons = append(icons, Icon{Name: name, Selected: name == s.religionName})
		}
		return icons
	default:
		return nil
	}
}

// SelectIcon picks the religion to found and resets the display name to it.
func (s *Session) SelectIcon(name string) error {
	if s.mode != ModeFound {
		return fmt.Errorf("%w: icons are only chosen when founding", tenetserrors.ErrInvalidPickerMode)
	}
	for _, icon := range s.ReligionIcons() {
		if icon.Name != name {
			continue
		}
		if !icon.Available {
			return fmt.Errorf("%w: %s", tenetserrors.ErrReligionIconUnavailable, name)
		}
		s.religionName = name
		s.displayName = name
		return nil
	}
	return fmt.Errorf("%w: %s is not a religion of this ruleset", tenetserrors.ErrReligionIconUnavailable, name)
}

// CanRename reports whether the display name may be changed.
func (s *Session) CanRename() bool {
	return s.mode == ModeFound && s.religionName != ""
}

// ValidateName checks a proposed display name without applying it.
func (s *Session) ValidateName(name string) error {
	return ValidateReligionName(name, s.rules, s.state)
}

// Rename sets the display name. It returns false and keeps the previous name
// if renaming is not possible or the name is rejected.
func (s *Session) Rename(name string) bool {
	if !s.CanRename() || s.ValidateName(name) != nil {
		return false
	}
	s.displayName = name
	return true
}

// ExistingBeliefs returns the beliefs the civilization's pantheon or religion
// already holds, in slot order. Names the ruleset does not know are skipped.
func (s *Session) ExistingBeliefs() []domain.Belief {
	if s.existing == nil {
		return nil
	}
	names := s.existing.BeliefNames()
	out := make([]domain.Belief, 0, len(names))
	for _, name := range names {
		if b, ok := s.rules.Belief(name); ok {
			out = append(out, b)
		}
	}
	return out
}

// Slots returns a view of every slot.
func (s *Session) Slots() []SlotView {
	views := make([]SlotView, s.slots.Len())
	for i := range views {
		slot := s.slots.slots[i]
		views[i] = SlotView{
			Index:    i,
			Category: s.slots.CategoryOf(i),
			Belief:   slot.belief,
			Filled:   slot.filled,
			Active:   i == s.active,
		}
	}
	return views
}

// Progress returns the filled and total slot counts.
func (s *Session) Progress() (filled, total int) {
	return s.slots.FilledCount(), s.slots.Len()
}

// SelectSlot makes the slot at index the one Choose fills.
func (s *Session) SelectSlot(index int) error {
	if err := s.slots.checkIndex(index); err != nil {
		return err
	}
	s.active = index
	return nil
}

// ActiveSlot returns the selected slot index, if any.
func (s *Session) ActiveSlot() (int, bool) {
	return s.active, s.active >= 0
}

// Candidates returns the beliefs offered for the active slot.
// It returns nil when no slot is selected.
func (s *Session) Candidates() []domain.Belief {
	if s.active < 0 {
		return nil
	}
	return Candidates(s.rules, s.state, s.slots, s.active)
}

// Choose puts b into the active slot. Only current candidates are accepted.
func (s *Session) Choose(b domain.Belief) error {
	if s.active < 0 {
		return fmt.Errorf("%w: no slot selected", tenetserrors.ErrSlotOutOfRange)
	}
	for _, candidate := range s.Candidates() {
		if candidate.Name == b.Name {
			return s.slots.Assign(s.active, candidate)
		}
	}
	return fmt.Errorf("%w: %s", tenetserrors.ErrBeliefUnavailable, b.Name)
}

// ChooseByName resolves name in the ruleset and chooses it for the active slot.
func (s *Session) ChooseByName(name string) error {
	b, ok := s.rules.Belief(name)
	if !ok {
		return fmt.Errorf("%w: %q", tenetserrors.ErrBeliefNotFound, name)
	}
	return s.Choose(b)
}

// ClearSlot empties the slot at index.
func (s *Session) ClearSlot(index int) error {
	return s.slots.Clear(index)
}

// CanConfirm reports whether the selection is complete. Founding also needs
// an icon and a display name.
func (s *Session) CanConfirm() bool {
	if s.mode == ModeFound && (s.religionName == "" || s.displayName == "") {
		return false
	}
	return s.slots.IsComplete()
}

// ConfirmLabel returns the text of the confirm button.
func (s *Session) ConfirmLabel() string {
	switch s.mode {
	case ModeFound:
		if s.religionName == "" {
			return "Choose a religion"
		}
		return fmt.Sprintf("Found [%s]", s.displayName)
	case ModeEnhance:
		return fmt.Sprintf("Enhance [%s]", s.displayName)
	default:
		return "Adopt pantheon"
	}
}

// Confirm hands the chosen beliefs to the chooser.
func (s *Session) Confirm(ctx context.Context) error {
	if !s.CanConfirm() {
		return tenetserrors.ErrSelectionIncomplete
	}
	if err := s.chooser.ChooseBeliefs(ctx, s.displayName, s.religionName, s.slots.Chosen()); err != nil {
		return err
	}
	s.confirmed = true
	return nil
}
