package picker

import (
	"fmt"
	"strings"

	"github.com/mrz1836/tenets/internal/constants"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/ruleset"
)

// ValidateReligionName checks a proposed religion display name.
//
// A name is rejected when it is blank, the "no religion" sentinel, one of the
// ruleset's predefined religions, or the name of a religion already in play.
// Matching is exact; "islam" does not collide with "Islam".
func ValidateReligionName(name string, rules *ruleset.Ruleset, st *game.State) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("religion name cannot be empty: %w", tenetserrors.ErrEmptyValue)
	}
	if name == constants.NoReligionName {
		return fmt.Errorf("%w: %q", tenetserrors.ErrReligionNameReserved, name)
	}
	if rules.HasReligion(name) {
		return fmt.Errorf("%w: %q is a predefined religion", tenetserrors.ErrReligionNameTaken, name)
	}
	for _, used := range st.ReligionNamesInUse() {
		if used == name {
			return fmt.Errorf("%w: %q is already in play", tenetserrors.ErrReligionNameTaken, name)
		}
	}
	return nil
}
