// Package picker holds the selection state behind the belief picker screen:
// the belief slots, which beliefs may fill them, the proposed religion name
// and the confirmation hand-off. It knows nothing about rendering.
package picker

import (
	"fmt"

	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

// Slot is one belief slot. The zero Slot is empty.
type Slot struct {
	belief domain.Belief
	filled bool
}

// Filled reports whether a belief occupies the slot.
func (s Slot) Filled() bool {
	return s.filled
}

// Belief returns the belief in the slot and whether there is one.
func (s Slot) Belief() (domain.Belief, bool) {
	return s.belief, s.filled
}

// SlotSet is a fixed-size sequence of belief slots. The first Pantheon slots
// take pantheon beliefs, the next Founder slots founder beliefs, and so on.
//
// A SlotSet does not enforce uniqueness across slots; callers only offer
// beliefs that are not already assigned (see Candidates).
type SlotSet struct {
	counts domain.BeliefCounts
	slots  []Slot
}

// NewSlotSet creates an empty SlotSet sized by counts.
func NewSlotSet(counts domain.BeliefCounts) (*SlotSet, error) {
	if err := counts.Validate(); err != nil {
		return nil, err
	}
	return &SlotSet{
		counts: counts,
		slots:  make([]Slot, counts.Total()),
	}, nil
}

// Counts returns the per-category slot counts.
func (s *SlotSet) Counts() domain.BeliefCounts {
	return s.counts
}

// Len returns the total number of slots.
func (s *SlotSet) Len() int {
	return len(s.slots)
}

// CategoryOf returns the category of the slot at index.
// It panics if index is outside [0, Len()).
func (s *SlotSet) CategoryOf(index int) domain.BeliefCategory {
	if index < 0 || index >= len(s.slots) {
		panic(fmt.Sprintf("picker: slot index %d out of range [0, %d)", index, len(s.slots)))
	}
	upper := 0
	for _, category := range domain.AllBeliefCategories() {
		upper += s.counts.Of(category)
		if index < upper {
			return category
		}
	}
	// Unreachable: the counts sum to len(s.slots).
	panic("picker: slot counts out of sync")
}

// Slot returns the slot at index.
func (s *SlotSet) Slot(index int) (Slot, error) {
	if err := s.checkIndex(index); err != nil {
		return Slot{}, err
	}
	return s.slots[index], nil
}

// IsComplete reports whether every slot is filled. A SlotSet with no slots is complete.
func (s *SlotSet) IsComplete() bool {
	for _, slot := range s.slots {
		if !slot.filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of filled slots.
func (s *SlotSet) FilledCount() int {
	n := 0
	for _, slot := range s.slots {
		if slot.filled {
			n++
		}
	}
	return n
}

// Assign puts b into the slot at index, replacing whatever was there.
// The belief's category must match CategoryOf(index).
func (s *SlotSet) Assign(index int, b domain.Belief) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if want := s.CategoryOf(index); b.Category != want {
		return fmt.Errorf("%w: %q is a %s belief, slot %d takes %s",
			tenetserrors.ErrBeliefCategoryMismatch, b.Name, b.Category, index, want)
	}
	s.slots[index] = Slot{belief: b, filled: true}
	return nil
}

// Clear empties the slot at index.
func (s *SlotSet) Clear(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.slots[index] = Slot{}
	return nil
}

// Contains reports whether a belief with the given name is in any slot.
func (s *SlotSet) Contains(name string) bool {
	for _, slot := range s.slots {
		if slot.filled && slot.belief.Name == name {
			return true
		}
	}
	return false
}

// Chosen returns the assigned beliefs in slot order, skipping empty slots.
func (s *SlotSet) Chosen() []domain.Belief {
	out := make([]domain.Belief, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.filled {
			out = append(out, slot.belief)
		}
	}
	return out
}

func (s *SlotSet) checkIndex(index int) error {
	if index < 0 || index >= len(s.slots) {
		return fmt.Errorf("%w: %d not in [0, %d)", tenetserrors.ErrSlotOutOfRange, index, len(s.slots))
	}
	return nil
}
