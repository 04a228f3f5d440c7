package picker

import (
	"github.com/mrz1836/tenets/internal/domain"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/ruleset"
)

// Candidates lists the beliefs that may go into the slot at index, in ruleset
// order: beliefs of the slot's category that no religion in the game holds and
// that no slot of slots has yet, the slot itself included. The result is
// computed fresh on every call and may be empty.
//
// It panics if index is out of range, like SlotSet.CategoryOf.
func Candidates(rules *ruleset.Ruleset, st *game.State, slots *SlotSet, index int) []domain.Belief {
	var out []domain.Belief
	for _, b := range rules.BeliefsByCategory(slots.CategoryOf(index)) {
		if st.BeliefTaken(b.Name) || slots.Contains(b.Name) {
			continue
		}
		out = append(out, b)
	}
	return out
}
