// Package ruleset provides the belief catalog and the nameable religions a
// game is played with. A Ruleset is immutable after construction and keeps the
// beliefs in the order the ruleset file declares them.
package ruleset

import (
	"fmt"
	"strings"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

// Ruleset holds the beliefs and religion names of one game.
type Ruleset struct {
	name      string
	beliefs   []domain.Belief
	index     map[string]int
	religions []string
}

// New builds a Ruleset and validates it.
//
// Validation rules:
//   - every belief has a non-empty name and a known category
//   - belief names are unique
//   - religion names are non-empty, unique and never the "no religion" sentinel
func New(name string, religions []string, beliefs []domain.Belief) (*Ruleset, error) {
	rs := &Ruleset{
		name:      name,
		beliefs:   make([]domain.Belief, 0, len(beliefs)),
		index:     make(map[string]int, len(beliefs)),
		religions: make([]string, 0, len(religions)),
	}

	for i, b := range beliefs {
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("%w: belief #%d has no name", tenetserrors.ErrRulesetInvalid, i+1)
		}
		if !b.Category.IsValid() {
			return nil, fmt.Errorf("%w: belief %q: %w", tenetserrors.ErrRulesetInvalid, b.Name, tenetserrors.ErrUnknownBeliefCategory)
		}
		if _, dup := rs.index[b.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate belief %q", tenetserrors.ErrRulesetInvalid, b.Name)
		}
		rs.index[b.Name] = len(rs.beliefs)
		rs.beliefs = append(rs.beliefs, b)
	}

	seen := make(map[string]struct{}, len(religions))
	for _, r := range religions {
		switch {
		case strings.TrimSpace(r) == "":
			return nil, fmt.Errorf("%w: empty religion name", tenetserrors.ErrRulesetInvalid)
		case r == constants.NoReligionName:
			return nil, fmt.Errorf("%w: %q is reserved", tenetserrors.ErrRulesetInvalid, r)
		}
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: duplicate religion %q", tenetserrors.ErrRulesetInvalid, r)
		}
		seen[r] = struct{}{}
		rs.religions = append(rs.religions, r)
	}

	return rs, nil
}

// Name returns the ruleset's name, e.g. "Civ V - Gods & Kings".
func (rs *Ruleset) Name() string {
	return rs.name
}

// Beliefs returns all beliefs in declaration order.
// The returned slice is a copy; callers may not mutate the ruleset through it.
func (rs *Ruleset) Beliefs() []domain.Belief {
	out := make([]domain.Belief, len(rs.beliefs))
	copy(out, rs.beliefs)
	return out
}

// Belief looks up a belief by exact name.
func (rs *Ruleset) Belief(name string) (domain.Belief, bool) {
	i, ok := rs.index[name]
	if !ok {
		return domain.Belief{}, false
	}
	return rs.beliefs[i], true
}

// LookupBeliefs resolves belief names, failing on the first unknown one.
func (rs *Ruleset) LookupBeliefs(names []string) ([]domain.Belief, error) {
	out := make([]domain.Belief, 0, len(names))
	for _, name := range names {
		b, ok := rs.Belief(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", tenetserrors.ErrBeliefNotFound, name)
		}
		out = append(out, b)
	}
	return out, nil
}

// BeliefsByCategory returns the beliefs of one category in declaration order.
func (rs *Ruleset) BeliefsByCategory(category domain.BeliefCategory) []domain.Belief {
	var out []domain.Belief
	for _, b := range rs.beliefs {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Religions returns the predefined religion names in declaration order.
func (rs *Ruleset) Religions() []string {
	out := make([]string, len(rs.religions))
	copy(out, rs.religions)
	return out
}

// HasReligion reports whether name is one of the predefined religion names.
func (rs *Ruleset) HasReligion(name string) bool {
	for _, r := range rs.religions {
		if r == name {
			return true
		}
	}
	return false
}
