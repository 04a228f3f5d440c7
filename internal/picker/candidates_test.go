package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tenets/internal/domain"
)

func TestCandidates(t *testing.T) {
	t.Parallel()

	rules := testRules(t)
	st := testState(t)
	slots, err := NewSlotSet(domain.BeliefCounts{Pantheon: 1, Founder: 1, Follower: 2})
	require.NoError(t, err)

	t.Run("filters by category and excludes held beliefs", func(t *testing.T) {
		assert.Equal(t, []string{"Sun God"}, names(Candidates(rules, st, slots, 0)))
		assert.Equal(t, []string{"Church Property"}, names(Candidates(rules, st, slots, 1)))
		assert.Equal(t, []string{"Pagodas"}, names(Candidates(rules, st, slots, 2)))
	})

	t.Run("excludes beliefs already in a slot", func(t *testing.T) {
		require.NoError(t, slots.Assign(2, belief("Pagodas", domain.BeliefFollower)))
		assert.Empty(t, Candidates(rules, st, slots, 3), "no follower left once Pagodas is taken")
		assert.Empty(t, Candidates(rules, st, slots, 2), "a slot's own belief is not offered again")
	})

	t.Run("clearing a slot offers its belief again", func(t *testing.T) {
		require.NoError(t, slots.Clear(2))
		assert.Equal(t, []string{"Pagodas"}, names(Candidates(rules, st, slots, 3)))
	})

	t.Run("out of range panics", func(t *testing.T) {
		assert.Panics(t, func() { Candidates(rules, st, slots, 4) })
	})
}

func TestCandidates_KeepsRulesetOrder(t *testing.T) {
	t.Parallel()

	rules := testRules(t)
	st := testState(t)
	delete(st.Religions, "Christianity")
	delete(st.Religions, "Siam")

	slots, err := NewSlotSet(domain.BeliefCounts{Pantheon: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sun God", "God of War", "God of the Sea"}, names(Candidates(rules, st, slots, 0)))
}
