package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

func belief(name string, c domain.BeliefCategory) domain.Belief {
	return domain.Belief{Name: name, Category: c}
}

func TestSlotSet_CategoryOf(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{Pantheon: 1, Founder: 1, Follower: 2, Enhancer: 1})
	require.NoError(t, err)
	require.Equal(t, 5, slots.Len())

	tests := []struct {
		index int
		want  domain.BeliefCategory
	}{
		{0, domain.BeliefPantheon},
		{1, domain.BeliefFounder},
		{2, domain.BeliefFollower},
		{3, domain.BeliefFollower},
		{4, domain.BeliefEnhancer},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slots.CategoryOf(tt.index), "index %d", tt.index)
	}

	assert.Panics(t, func() { slots.CategoryOf(5) })
	assert.Panics(t, func() { slots.CategoryOf(-1) })
}

func TestSlotSet_SkipsEmptyCategories(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{Follower: 1, Enhancer: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.BeliefFollower, slots.CategoryOf(0))
	assert.Equal(t, domain.BeliefEnhancer, slots.CategoryOf(1))
}

func TestSlotSet_CategoryOfRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts domain.BeliefCounts
	}{
		{"pantheon only", domain.BeliefCounts{Pantheon: 1}},
		{"found without pantheon", domain.BeliefCounts{Founder: 1, Follower: 1}},
		{"found with pantheon", domain.BeliefCounts{Pantheon: 1, Founder: 1, Follower: 1}},
		{"enhance", domain.BeliefCounts{Follower: 1, Enhancer: 1}},
		{"enhancer only", domain.BeliefCounts{Enhancer: 2}},
		{"every category", domain.BeliefCounts{Pantheon: 2, Founder: 3, Follower: 1, Enhancer: 2}},
		{"gap in the middle", domain.BeliefCounts{Pantheon: 1, Enhancer: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			slots, err := NewSlotSet(tc.counts)
			require.NoError(t, err)
			require.Equal(t, tc.counts.Total(), slots.Len())

			var want []domain.BeliefCategory
			for _, c := range domain.AllBeliefCategories() {
				for range tc.counts.Of(c) {
					want = append(want, c)
				}
			}

			got := make([]domain.BeliefCategory, 0, slots.Len())
			for i := range slots.Len() {
				got = append(got, slots.CategoryOf(i))
			}
			assert.Equal(t, want, got)
			assert.Panics(t, func() { slots.CategoryOf(slots.Len()) })
		})
	}
}

func TestSlotSet_AssignRejectsFollowerInPantheonSlot(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{Pantheon: 1})
	require.NoError(t, err)

	err = slots.Assign(0, belief("Pagodas", domain.BeliefFollower))
	require.ErrorIs(t, err, tenetserrors.ErrBeliefCategoryMismatch)

	slot, err := slots.Slot(0)
	require.NoError(t, err)
	assert.False(t, slot.Filled())
	assert.False(t, slots.IsComplete())
}

func TestNewSlotSet_NegativeCount(t *testing.T) {
	t.Parallel()

	_, err := NewSlotSet(domain.BeliefCounts{Founder: -1})
	require.ErrorIs(t, err, tenetserrors.ErrInvalidArgument)
}

func TestSlotSet_Empty(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{})
	require.NoError(t, err)
	assert.Equal(t, 0, slots.Len())
	assert.True(t, slots.IsComplete())
	assert.Empty(t, slots.Chosen())
}

func TestSlotSet_AssignClear(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{Founder: 1, Follower: 1})
	require.NoError(t, err)
	assert.False(t, slots.IsComplete())

	require.NoError(t, slots.Assign(0, belief("Tithe", domain.BeliefFounder)))
	assert.False(t, slots.IsComplete())
	assert.Equal(t, 1, slots.FilledCount())

	require.NoError(t, slots.Assign(1, belief("Pagodas", domain.BeliefFollower)))
	assert.True(t, slots.IsComplete())

	chosen := slots.Chosen()
	require.Len(t, chosen, 2)
	assert.Equal(t, "Tithe", chosen[0].Name)
	assert.Equal(t, "Pagodas", chosen[1].Name)

	require.NoError(t, slots.Clear(0))
	assert.False(t, slots.IsComplete(), "clearing a slot makes the set incomplete again")
	slot, err := slots.Slot(0)
	require.NoError(t, err)
	assert.False(t, slot.Filled())
	_, ok := slot.Belief()
	assert.False(t, ok)
}

func TestSlotSet_AssignCategoryMismatch(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{Founder: 1, Follower: 1})
	require.NoError(t, err)
	require.NoError(t, slots.Assign(0, belief("Tithe", domain.BeliefFounder)))

	err = slots.Assign(0, belief("Pagodas", domain.BeliefFollower))
	require.ErrorIs(t, err, tenetserrors.ErrBeliefCategoryMismatch)

	slot, err := slots.Slot(0)
	require.NoError(t, err)
	got, ok := slot.Belief()
	require.True(t, ok)
	assert.Equal(t, "Tithe", got.Name, "slot unchanged after rejected assignment")
}

func TestSlotSet_OutOfRange(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{Pantheon: 1})
	require.NoError(t, err)

	require.ErrorIs(t, slots.Assign(1, belief("Sun God", domain.BeliefPantheon)), tenetserrors.ErrSlotOutOfRange)
	require.ErrorIs(t, slots.Clear(-1), tenetserrors.ErrSlotOutOfRange)
	_, err = slots.Slot(3)
	require.ErrorIs(t, err, tenetserrors.ErrSlotOutOfRange)
}

func TestSlotSet_NoUniquenessCheck(t *testing.T) {
	t.Parallel()

	slots, err := NewSlotSet(domain.BeliefCounts{Follower: 2})
	require.NoError(t, err)

	require.NoError(t, slots.Assign(0, belief("Pagodas", domain.BeliefFollower)))
	require.NoError(t, slots.Assign(1, belief("Pagodas", domain.BeliefFollower)))
	assert.True(t, slots.IsComplete())
	assert.True(t, slots.Contains("Pagodas"))
}
