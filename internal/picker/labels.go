package picker

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mrz1836/tenets/internal/domain"
)

// CategoryTitle renders a category for display, e.g. "Pantheon".
func CategoryTitle(c domain.BeliefCategory) string {
	return cases.Title(language.English).String(c.String())
}
