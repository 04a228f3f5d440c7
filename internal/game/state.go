// Package game provides the persisted game state tenets reads and writes:
// civilizations, the religions already in play and the save store for both.
package game

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

// State is everything a save holds about religion.
//
// Religions are keyed by internal name: the ruleset religion (icon) name for
// founded religions, the civilization name for pantheons.
type State struct {
	SchemaVersion int                             `json:"schema_version"`
	Turn          int                             `json:"turn"`
	Civilizations map[string]*domain.Civilization `json:"civilizations"`
	Religions     map[string]*domain.Religion     `json:"religions"`
	CreatedAt     time.Time                       `json:"created_at"`
	UpdatedAt     time.Time                       `json:"updated_at"`
}

// NewState creates an empty game with the given civilizations.
func NewState(civs ...string) (*State, error) {
	s := &State{
		SchemaVersion: constants.GameSchemaVersion,
		Turn:          1,
		Civilizations: make(map[string]*domain.Civilization, len(civs)),
		Religions:     make(map[string]*domain.Religion),
	}
	for _, name := range civs {
		if err := s.AddCivilization(name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddCivilization registers a civilization without any religion.
func (s *State) AddCivilization(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("civilization name cannot be empty: %w", tenetserrors.ErrEmptyValue)
	}
	if _, ok := s.Civilizations[name]; ok {
		return fmt.Errorf("%w: %s", tenetserrors.ErrCivilizationExists, name)
	}
	if s.Civilizations == nil {
		s.Civilizations = make(map[string]*domain.Civilization)
	}
	s.Civilizations[name] = &domain.Civilization{
		Name:          name,
		ReligionState: constants.ReligionStateNone,
	}
	return nil
}

// Civilization returns the named civilization.
func (s *State) Civilization(name string) (*domain.Civilization, error) {
	civ, ok := s.Civilizations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", tenetserrors.ErrCivilizationNotFound, name)
	}
	return civ, nil
}

// CivilizationNames returns all civilization names, sorted.
func (s *State) CivilizationNames() []string {
	return sortedKeys(s.Civilizations)
}

// ReligionOf returns the pantheon or religion the civilization adopted.
func (s *State) ReligionOf(civ *domain.Civilization) (*domain.Religion, bool) {
	if civ == nil || civ.ReligionName == "" {
		return nil, false
	}
	r, ok := s.Religions[civ.ReligionName]
	return r, ok
}

// SortedReligions returns the religions in play ordered by key.
func (s *State) SortedReligions() []*domain.Religion {
	out := make([]*domain.Religion, 0, len(s.Religions))
	for _, key := range sortedKeys(s.Religions) {
		out = append(out, s.Religions[key])
	}
	return out
}

// ReligionHoldingBelief returns the religion holding the named belief, if any.
func (s *State) ReligionHoldingBelief(belief string) (*domain.Religion, bool) {
	for _, r := range s.SortedReligions() {
		if r.HasBelief(belief) {
			return r, true
		}
	}
	return nil, false
}

// BeliefTaken reports whether any religion in the game holds the belief.
func (s *State) BeliefTaken(belief string) bool {
	_, ok := s.ReligionHoldingBelief(belief)
	return ok
}

// ReligionNamesInUse returns every internal and display name of the religions
// in play, sorted and without duplicates.
func (s *State) ReligionNamesInUse() []string {
	seen := make(map[string]struct{}, len(s.Religions)*2)
	for key, r := range s.Religions {
		seen[key] = struct{}{}
		if r.Name != "" {
			seen[r.Name] = struct{}{}
		}
		if r.DisplayName != "" {
			seen[r.DisplayName] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// UsedReligionIcons returns the ruleset religion names already founded.
// Pantheons are keyed by civilization and never occupy an icon.
func (s *State) UsedReligionIcons() []string {
	var used []string
	for _, key := range sortedKeys(s.Religions) {
		if !s.Religions[key].Pantheon {
			used = append(used, key)
		}
	}
	return used
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
