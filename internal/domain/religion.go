package domain

import (
	"time"

	"github.com/mrz1836/tenets/internal/constants"
)

// Religion is a pantheon or founded religion in play.
//
// Beliefs are stored by name, grouped by category, in the order they were
// adopted. Pantheons are religions too: they are keyed by the civilization
// name until the civilization founds a proper religion.
//
// Example JSON representation:
//
//	{
//	    "name": "Buddhism",
//	    "display_name": "The Middle Way",
//	    "founding_civ": "Siam",
//	    "pantheon_beliefs": ["God of the Sea"],
//	    "founder_beliefs": ["Tithe"],
//	    "follower_beliefs": ["Pagodas"],
//	    "founded_at": "2026-10-19T10:00:00Z"
//	}
type Religion struct {
	// Name is the internal identifier. For founded religions it is the
	// ruleset religion (icon) name; for pantheons it is the civilization name.
	Name string `json:"name"`

	// DisplayName is what players see; it may differ from Name after a rename.
	DisplayName string `json:"display_name,omitempty"`

	// FoundingCiv is the civilization that adopted this pantheon or religion.
	FoundingCiv string `json:"founding_civ"`

	// Pantheon is true while this record only holds a pantheon.
	Pantheon bool `json:"pantheon,omitempty"`

	PantheonBeliefs []string `json:"pantheon_beliefs,omitempty"`
	FounderBeliefs  []string `json:"founder_beliefs,omitempty"`
	FollowerBeliefs []string `json:"follower_beliefs,omitempty"`
	EnhancerBeliefs []string `json:"enhancer_beliefs,omitempty"`

	// FoundedAt is when the record was created.
	FoundedAt time.Time `json:"founded_at"`

	// UpdatedAt is when beliefs were last added.
	UpdatedAt time.Time `json:"updated_at"`
}

// GetDisplayName returns the display name, falling back to Name.
func (r *Religion) GetDisplayName() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.Name
}

// BeliefNamesOf returns the belief names held in one category.
func (r *Religion) BeliefNamesOf(category BeliefCategory) []string {
	switch category {
	case BeliefPantheon:
		return r.PantheonBeliefs
	case BeliefFounder:
		return r.FounderBeliefs
	case BeliefFollower:
		return r.FollowerBeliefs
	case BeliefEnhancer:
		return r.EnhancerBeliefs
	default:
		return nil
	}
}

// BeliefNames returns every belief name in slot order:
// pantheon → founder → follower → enhancer.
func (r *Religion) BeliefNames() []string {
	names := make([]string, 0,
		len(r.PantheonBeliefs)+len(r.FounderBeliefs)+len(r.FollowerBeliefs)+len(r.EnhancerBeliefs))
	for _, category := range AllBeliefCategories() {
		names = append(names, r.BeliefNamesOf(category)...)
	}
	return names
}

// HasBelief reports whether the religion holds a belief with the given name.
func (r *Religion) HasBelief(name string) bool {
	for _, held := range r.BeliefNames() {
		if held == name {
			return true
		}
	}
	return false
}

// AddBelief appends a belief to the list for its category.
// Unknown categories are ignored; the ruleset rejects them on load.
func (r *Religion) AddBelief(b Belief) {
	switch b.Category {
	case BeliefPantheon:
		r.PantheonBeliefs = append(r.PantheonBeliefs, b.Name)
	case BeliefFounder:
		r.FounderBeliefs = append(r.FounderBeliefs, b.Name)
	case BeliefFollower:
		r.FollowerBeliefs = append(r.FollowerBeliefs, b.Name)
	case BeliefEnhancer:
		r.EnhancerBeliefs = append(r.EnhancerBeliefs, b.Name)
	}
}

// Civilization is a player in the game, as far as religion is concerned.
type Civilization struct {
	// Name is the unique civilization name.
	Name string `json:"name"`

	// ReligionName is the key of the civilization's pantheon or religion in
	// the game's religion registry. Empty if it has neither.
	ReligionName string `json:"religion_name,omitempty"`

	// ReligionState tracks how far the civilization has progressed.
	ReligionState constants.ReligionState `json:"religion_state"`
}
