package picker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/ruleset"
	"github.com/mrz1836/tenets/internal/testutil"
)

func testRules(t *testing.T) *ruleset.Ruleset {
	t.Helper()

	rs, err := ruleset.New("test",
		[]string{"Buddhism", "Christianity", "Islam", "Taoism"},
		[]domain.Belief{
			belief("Sun God", domain.BeliefPantheon),
			belief("God of War", domain.BeliefPantheon),
			belief("God of the Sea", domain.BeliefPantheon),
			belief("Tithe", domain.BeliefFounder),
			belief("Pilgrimage", domain.BeliefFounder),
			belief("Church Property", domain.BeliefFounder),
			belief("Pagodas", domain.BeliefFollower),
			belief("Mosques", domain.BeliefFollower),
			belief("Cathedrals", domain.BeliefFollower),
			belief("Messiah", domain.BeliefEnhancer),
			belief("Reliquary", domain.BeliefEnhancer),
		})
	require.NoError(t, err)
	return rs
}

// testState has Christianity (Rome) and Islam (Arabia) founded,
// a pantheon for Siam and Mongolia with nothing.
func testState(t *testing.T) *game.State {
	t.Helper()

	st, err := game.NewState("Rome", "Arabia", "Siam", "Mongolia")
	require.NoError(t, err)

	st.Religions["Christianity"] = &domain.Religion{
		Name: "Christianity", FoundingCiv: "Rome",
		PantheonBeliefs: []string{"God of War"},
		FounderBeliefs:  []string{"Tithe"},
		FollowerBeliefs: []string{"Cathedrals"},
	}
	st.Religions["Islam"] = &domain.Religion{
		Name: "Islam", DisplayName: "The Crescent", FoundingCiv: "Arabia",
		FounderBeliefs:  []string{"Pilgrimage"},
		FollowerBeliefs: []string{"Mosques"},
	}
	st.Religions["Siam"] = &domain.Religion{
		Name: "Siam", FoundingCiv: "Siam", Pantheon: true,
		PantheonBeliefs: []string{"God of the Sea"},
	}

	st.Civilizations["Rome"].ReligionName = "Christianity"
	st.Civilizations["Rome"].ReligionState = constants.ReligionStateReligion
	st.Civilizations["Arabia"].ReligionName = "Islam"
	st.Civilizations["Arabia"].ReligionState = constants.ReligionStateReligion
	st.Civilizations["Siam"].ReligionName = "Siam"
	st.Civilizations["Siam"].ReligionState = constants.ReligionStatePantheon
	return st
}

func newTestSession(t *testing.T, mode Mode, civ string, counts domain.BeliefCounts) (*Session, *testutil.RecordingChooser) {
	t.Helper()

	chooser := &testutil.RecordingChooser{}
	s, err := NewSession(Options{
		Mode:         mode,
		Counts:       counts,
		Civilization: civ,
		Rules:        testRules(t),
		State:        testState(t),
		Chooser:      chooser,
	})
	require.NoError(t, err)
	return s, chooser
}

func names(beliefs []domain.Belief) []string {
	out := make([]string, 0, len(beliefs))
	for _, b := range beliefs {
		out = append(out, b.Name)
	}
	return out
}
