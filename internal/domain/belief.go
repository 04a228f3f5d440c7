// Package domain provides shared domain types for tenets: beliefs, religions
// and the civilizations that adopt them.
package domain

import (
	"fmt"
	"strings"

	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

// BeliefCategory is the class a belief belongs to. Each category is unlocked
// at a different stage of religious progress.
type BeliefCategory string

// Belief categories in slot order.
const (
	BeliefPantheon BeliefCategory = "pantheon"
	BeliefFounder  BeliefCategory = "founder"
	BeliefFollower BeliefCategory = "follower"
	BeliefEnhancer BeliefCategory = "enhancer"
)

// AllBeliefCategories returns the categories in their fixed slot order:
// pantheon → founder → follower → enhancer.
func AllBeliefCategories() []BeliefCategory {
	return []BeliefCategory{BeliefPantheon, BeliefFounder, BeliefFollower, BeliefEnhancer}
}

// String returns the string representation of the category.
func (c BeliefCategory) String() string {
	return string(c)
}

// Order returns the position of the category in slot order, or -1 if unknown.
func (c BeliefCategory) Order() int {
	for i, known := range AllBeliefCategories() {
		if c == known {
			return i
		}
	}
	return -1
}

// IsValid reports whether c is one of the four known categories.
func (c BeliefCategory) IsValid() bool {
	return c.Order() >= 0
}

// ParseBeliefCategory parses a category name case-insensitively.
// Ruleset files written for other tools capitalize the type ("Pantheon").
func ParseBeliefCategory(s string) (BeliefCategory, error) {
	c := BeliefCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", tenetserrors.ErrUnknownBeliefCategory, s)
	}
	return c, nil
}

// Belief is a named effect bundle a civilization acquires through its religion.
// Beliefs come from the ruleset and are immutable once loaded.
type Belief struct {
	// Name uniquely identifies the belief within a ruleset.
	Name string `json:"name" yaml:"name"`

	// Category is the single category the belief is tagged with.
	Category BeliefCategory `json:"type" yaml:"type"`

	// Uniques are the effect descriptors, e.g. "[+1 Faith] from every [Shrine]".
	Uniques []string `json:"uniques,omitempty" yaml:"uniques,omitempty"`

	// Description is optional flavor text in markdown.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsZero reports whether b is the zero Belief.
func (b Belief) IsZero() bool {
	return b.Name == "" && b.Category == "" && len(b.Uniques) == 0 && b.Description == ""
}

// Effects joins the uniques into a single display line.
func (b Belief) Effects() string {
	return strings.Join(b.Uniques, ", ")
}

// BeliefCounts holds how many beliefs of each category a civilization may pick.
type BeliefCounts struct {
	Pantheon int `json:"pantheon"`
	Founder  int `json:"founder"`
	Follower int `json:"follower"`
	Enhancer int `json:"enhancer"`
}

// Total returns the sum of all four counts.
func (c BeliefCounts) Total() int {
	return c.Pantheon + c.Founder + c.Follower + c.Enhancer
}

// Of returns the count for a single category.
func (c BeliefCounts) Of(category BeliefCategory) int {
	switch category {
	case BeliefPantheon:
		return c.Pantheon
	case BeliefFounder:
		return c.Founder
	case BeliefFollower:
		return c.Follower
	case BeliefEnhancer:
		return c.Enhancer
	default:
		return 0
	}
}

// Validate returns an error if any count is negative.
func (c BeliefCounts) Validate() error {
	for _, category := range AllBeliefCategories() {
		if n := c.Of(category); n < 0 {
			return fmt.Errorf("%w: %s count must not be negative, got %d",
				tenetserrors.ErrInvalidArgument, category, n)
		}
	}
	return nil
}

// CountBeliefs tallies beliefs per category.
func CountBeliefs(beliefs []Belief) BeliefCounts {
	var c BeliefCounts
	for _, b := range beliefs {
		switch b.Category {
		case BeliefPantheon:
			c.Pantheon++
		case BeliefFounder:
			c.Founder++
		case BeliefFollower:
			c.Follower++
		case BeliefEnhancer:
			c.Enhancer++
		}
	}
	return c
}
