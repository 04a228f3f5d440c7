package religion

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tenets/internal/clock"
	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/ruleset"
)

var testNow = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

func defaultRules(t *testing.T) *ruleset.Ruleset {
	t.Helper()
	rs, err := ruleset.Default()
	require.NoError(t, err)
	return rs
}

func mustBeliefs(t *testing.T, rs *ruleset.Ruleset, names ...string) []domain.Belief {
	t.Helper()
	out, err := rs.LookupBeliefs(names)
	require.NoError(t, err)
	return out
}

// worldState: Rome founded Christianity, Siam has a pantheon, Mongolia nothing.
func worldState(t *testing.T) *game.State {
	t.Helper()

	st, err := game.NewState("Rome", "Siam", "Mongolia")
	require.NoError(t, err)

	st.Religions["Christianity"] = &domain.Religion{
		Name: "Christianity", FoundingCiv: "Rome",
		PantheonBeliefs: []string{"God of War"},
		FounderBeliefs:  []string{"Tithe"},
		FollowerBeliefs: []string{"Cathedrals"},
	}
	st.Religions["Siam"] = &domain.Religion{
		Name: "Siam", FoundingCiv: "Siam", Pantheon: true,
		PantheonBeliefs: []string{"God of the Sea"},
	}
	st.Civilizations["Rome"].ReligionName = "Christianity"
	st.Civilizations["Rome"].ReligionState = constants.ReligionStateReligion
	st.Civilizations["Siam"].ReligionName = "Siam"
	st.Civilizations["Siam"].ReligionState = constants.ReligionStatePantheon
	return st
}

func TestDefaultMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state constants.ReligionState
		want  constants.PickerMode
	}{
		{constants.ReligionStateNone, constants.PickerModePantheon},
		{"", constants.PickerModePantheon},
		{constants.ReligionStatePantheon, constants.PickerModeFound},
		{constants.ReligionStateReligion, constants.PickerModeEnhance},
	}
	for _, tt := range tests {
		got, err := DefaultMode(tt.state)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "state %q", tt.state)
	}

	_, err := DefaultMode(constants.ReligionStateEnhancedReligion)
	require.ErrorIs(t, err, tenetserrors.ErrInvalidTransition)
}

func TestNewManager(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)

	t.Run("derives mode from state", func(t *testing.T) {
		t.Parallel()
		st := worldState(t)
		for civ, want := range map[string]constants.PickerMode{
			"Mongolia": constants.PickerModePantheon,
			"Siam":     constants.PickerModeFound,
			"Rome":     constants.PickerModeEnhance,
		} {
			m, err := NewManager(rs, st, civ)
			require.NoError(t, err)
			assert.Equal(t, want, m.Mode(), civ)
		}
	})

	t.Run("found straight from none is allowed", func(t *testing.T) {
		t.Parallel()
		m, err := NewManager(rs, worldState(t), "Mongolia", WithMode(constants.PickerModeFound))
		require.NoError(t, err)
		assert.Equal(t, domain.BeliefCounts{Pantheon: 1, Founder: 1, Follower: 1}, m.Entitlement())
	})

	t.Run("rejects unreachable mode", func(t *testing.T) {
		t.Parallel()
		_, err := NewManager(rs, worldState(t), "Rome", WithMode(constants.PickerModePantheon))
		require.ErrorIs(t, err, tenetserrors.ErrInvalidTransition)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()
		_, err := NewManager(rs, worldState(t), "Rome", WithMode("schism"))
		require.ErrorIs(t, err, tenetserrors.ErrInvalidPickerMode)
	})

	t.Run("rejects unknown civ", func(t *testing.T) {
		t.Parallel()
		_, err := NewManager(rs, worldState(t), "Atlantis")
		require.ErrorIs(t, err, tenetserrors.ErrCivilizationNotFound)
	})

	t.Run("rejects nil inputs", func(t *testing.T) {
		t.Parallel()
		_, err := NewManager(nil, worldState(t), "Rome")
		require.ErrorIs(t, err, tenetserrors.ErrInvalidArgument)
	})
}

func TestManager_Entitlement(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)
	st := worldState(t)

	tests := []struct {
		civ  string
		want domain.BeliefCounts
	}{
		{"Mongolia", domain.BeliefCounts{Pantheon: 1}},
		{"Siam", domain.BeliefCounts{Founder: 1, Follower: 1}},
		{"Rome", domain.BeliefCounts{Follower: 1, Enhancer: 1}},
	}
	for _, tt := range tests {
		m, err := NewManager(rs, st, tt.civ)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.Entitlement(), tt.civ)
	}
}

func TestManager_AdoptPantheon(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)
	st := worldState(t)
	m, err := NewManager(rs, st, "Mongolia", WithClock(clock.Fixed(testNow)))
	require.NoError(t, err)

	require.NoError(t, m.ChooseBeliefs(context.Background(), "", "", mustBeliefs(t, rs, "Sun God")))

	civ, err := st.Civilization("Mongolia")
	require.NoError(t, err)
	assert.Equal(t, constants.ReligionStatePantheon, civ.ReligionState)
	assert.Equal(t, "Mongolia", civ.ReligionName)

	r := st.Religions["Mongolia"]
	require.NotNil(t, r)
	assert.True(t, r.Pantheon)
	assert.Equal(t, []string{"Sun God"}, r.PantheonBeliefs)
	assert.Equal(t, testNow, r.FoundedAt)
	assert.Equal(t, []string{"Christianity"}, st.UsedReligionIcons(), "pantheons take no icon")
}

func TestManager_FoundReligion(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)
	st := worldState(t)
	m, err := NewManager(rs, st, "Siam", WithClock(clock.Fixed(testNow)))
	require.NoError(t, err)

	err = m.ChooseBeliefs(context.Background(), "The Middle Way", "Buddhism", mustBeliefs(t, rs, "Pilgrimage", "Pagodas"))
	require.NoError(t, err)

	_, pantheonLeft := st.Religions["Siam"]
	assert.False(t, pantheonLeft, "the pantheon record is folded into the religion")

	r := st.Religions["Buddhism"]
	require.NotNil(t, r)
	assert.False(t, r.Pantheon)
	assert.Equal(t, "The Middle Way", r.DisplayName)
	assert.Equal(t, []string{"God of the Sea", "Pilgrimage", "Pagodas"}, r.BeliefNames())

	civ, err := st.Civilization("Siam")
	require.NoError(t, err)
	assert.Equal(t, constants.ReligionStateReligion, civ.ReligionState)
	assert.Equal(t, "Buddhism", civ.ReligionName)
}

func TestManager_FoundKeepsIconName(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)
	st := worldState(t)
	m, err := NewManager(rs, st, "Mongolia", WithMode(constants.PickerModeFound))
	require.NoError(t, err)

	require.NoError(t, m.ChooseBeliefs(context.Background(), "Taoism", "Taoism",
		mustBeliefs(t, rs, "Sun God", "Pilgrimage", "Pagodas")))

	r := st.Religions["Taoism"]
	require.NotNil(t, r)
	assert.Empty(t, r.DisplayName)
	assert.Equal(t, "Taoism", r.GetDisplayName())
	assert.Equal(t, []string{"Sun God"}, r.PantheonBeliefs)
}

func TestManager_Enhance(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)
	st := worldState(t)
	m, err := NewManager(rs, st, "Rome")
	require.NoError(t, err)

	require.NoError(t, m.ChooseBeliefs(context.Background(), "Christianity", "Christianity",
		mustBeliefs(t, rs, "Pagodas", "Messiah")))

	r := st.Religions["Christianity"]
	assert.Equal(t, []string{"Cathedrals", "Pagodas"}, r.FollowerBeliefs)
	assert.Equal(t, []string{"Messiah"}, r.EnhancerBeliefs)

	civ, err := st.Civilization("Rome")
	require.NoError(t, err)
	assert.Equal(t, constants.ReligionStateEnhancedReligion, civ.ReligionState)

	_, err = NewManager(rs, st, "Rome")
	require.ErrorIs(t, err, tenetserrors.ErrInvalidTransition, "enhanced religions are final")
}

func TestManager_ChooseBeliefsValidation(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)

	tests := []struct {
		name     string
		civ      string
		display  string
		religion string
		beliefs  []string
		fake     []domain.Belief
		wantErr  error
	}{
		{name: "held by another religion", civ: "Mongolia", beliefs: []string{"God of War"}, wantErr: tenetserrors.ErrBeliefUnavailable},
		{name: "too many", civ: "Mongolia", beliefs: []string{"Sun God", "Stone Circles"}, wantErr: tenetserrors.ErrBeliefCountMismatch},
		{name: "wrong category", civ: "Mongolia", beliefs: []string{"Pagodas"}, wantErr: tenetserrors.ErrBeliefCountMismatch},
		{name: "duplicate", civ: "Rome", beliefs: []string{"Pagodas", "Pagodas"}, wantErr: tenetserrors.ErrDuplicateBelief},
		{name: "unknown belief", civ: "Mongolia", fake: []domain.Belief{{Name: "Heresy", Category: domain.BeliefPantheon}}, wantErr: tenetserrors.ErrBeliefNotFound},
		{name: "mislabeled category", civ: "Mongolia", fake: []domain.Belief{{Name: "Pagodas", Category: domain.BeliefPantheon}}, wantErr: tenetserrors.ErrBeliefCategoryMismatch},
		{name: "icon in use", civ: "Siam", display: "Christianity", religion: "Christianity", beliefs: []string{"Pilgrimage", "Pagodas"}, wantErr: tenetserrors.ErrReligionIconUnavailable},
		{name: "icon unknown", civ: "Siam", display: "Jedi", religion: "Jedi", beliefs: []string{"Pilgrimage", "Pagodas"}, wantErr: tenetserrors.ErrReligionIconUnavailable},
		{name: "reserved display name", civ: "Siam", display: constants.NoReligionName, religion: "Islam", beliefs: []string{"Pilgrimage", "Pagodas"}, wantErr: tenetserrors.ErrReligionNameReserved},
		{name: "display name taken", civ: "Siam", display: "Islam", religion: "Taoism", beliefs: []string{"Pilgrimage", "Pagodas"}, wantErr: tenetserrors.ErrReligionNameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st := worldState(t)
			m, err := NewManager(rs, st, tt.civ)
			require.NoError(t, err)

			beliefs := tt.fake
			if beliefs == nil {
				beliefs = mustBeliefs(t, rs, tt.beliefs...)
			}
			err = m.ChooseBeliefs(context.Background(), tt.display, tt.religion, beliefs)
			require.ErrorIs(t, err, tt.wantErr)

			civ, cerr := st.Civilization(tt.civ)
			require.NoError(t, cerr)
			assert.NotEqual(t, constants.ReligionStateEnhancedReligion, civ.ReligionState, "state untouched on rejection")
		})
	}
}

func TestManager_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	rs := defaultRules(t)
	st := worldState(t)
	m, err := NewManager(rs, st, "Siam")
	require.NoError(t, err)

	s, err := m.NewSession()
	require.NoError(t, err)
	require.NoError(t, s.SelectIcon("Islam"))
	require.True(t, s.Rename("Sufism"))
	require.NoError(t, s.SelectSlot(0))
	require.Error(t, s.ChooseByName("Tithe"), "Tithe is held by Christianity")
	require.NoError(t, s.ChooseByName("Pilgrimage"))
	require.NoError(t, s.SelectSlot(1))
	require.NoError(t, s.ChooseByName("Mosques"))
	require.NoError(t, s.Confirm(context.Background()))

	r := st.Religions["Islam"]
	require.NotNil(t, r)
	assert.Equal(t, "Sufism", r.GetDisplayName())
}

func TestManager_PersistsThroughStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rs := defaultRules(t)

	store, err := game.NewFileStore(filepath.Join(t.TempDir(), constants.GameFileName), game.WithClock(clock.Fixed(testNow)))
	require.NoError(t, err)
	require.NoError(t, store.Init(ctx, worldState(t)))

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)

	m, err := NewManager(rs, snapshot, "Mongolia", WithStore(store), WithClock(clock.Fixed(testNow)))
	require.NoError(t, err)
	require.NoError(t, m.ChooseBeliefs(ctx, "", "", mustBeliefs(t, rs, "Stone Circles")))

	assert.True(t, m.State().BeliefTaken("Stone Circles"))

	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.BeliefTaken("Stone Circles"))
	civ, err := reloaded.Civilization("Mongolia")
	require.NoError(t, err)
	assert.Equal(t, constants.ReligionStatePantheon, civ.ReligionState)
}
