package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	rs, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Gods & Kings", rs.Name())
	assert.Contains(t, rs.Religions(), "Buddhism")
	assert.Contains(t, rs.Religions(), "Taoism")

	for _, category := range domain.AllBeliefCategories() {
		assert.NotEmpty(t, rs.BeliefsByCategory(category), "category %s", category)
	}

	b, ok := rs.Belief("God of the Sea")
	require.True(t, ok)
	assert.Equal(t, domain.BeliefPantheon, b.Category)
	assert.NotEmpty(t, b.Uniques)
}

func TestRuleset_InsertionOrder(t *testing.T) {
	t.Parallel()

	data := []byte(`
religions: [Zeta, Alpha]
beliefs:
  - {name: Zulu, type: Follower}
  - {name: Alpha, type: Pantheon}
  - {name: Mike, type: Follower}
`)
	rs, err := Parse(data, "yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"Zeta", "Alpha"}, rs.Religions())

	names := make([]string, 0, 3)
	for _, b := range rs.Beliefs() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, names)

	followers := rs.BeliefsByCategory(domain.BeliefFollower)
	require.Len(t, followers, 2)
	assert.Equal(t, "Zulu", followers[0].Name)
	assert.Equal(t, "Mike", followers[1].Name)
}

func TestRuleset_BeliefsReturnsCopy(t *testing.T) {
	t.Parallel()

	rs, err := New("test", nil, []domain.Belief{{Name: "A", Category: domain.BeliefPantheon}})
	require.NoError(t, err)

	got := rs.Beliefs()
	got[0].Name = "mutated"

	b, ok := rs.Belief("A")
	require.True(t, ok)
	assert.Equal(t, "A", b.Name)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		religions []string
		beliefs   []domain.Belief
	}{
		{
			name:    "belief without name",
			beliefs: []domain.Belief{{Name: " ", Category: domain.BeliefFounder}},
		},
		{
			name:    "unknown category",
			beliefs: []domain.Belief{{Name: "X", Category: "heresy"}},
		},
		{
			name: "duplicate belief",
			beliefs: []domain.Belief{
				{Name: "X", Category: domain.BeliefFounder},
				{Name: "X", Category: domain.BeliefFollower},
			},
		},
		{
			name:      "duplicate religion",
			religions: []string{"Islam", "Islam"},
		},
		{
			name:      "reserved religion name",
			religions: []string{constants.NoReligionName},
		},
		{
			name:      "empty religion name",
			religions: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New("test", tt.religions, tt.beliefs)
			require.ErrorIs(t, err, tenetserrors.ErrRulesetInvalid)
		})
	}
}

func TestRuleset_LookupBeliefs(t *testing.T) {
	t.Parallel()

	rs, err := Default()
	require.NoError(t, err)

	got, err := rs.LookupBeliefs([]string{"Tithe", "Pagodas"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.BeliefFounder, got[0].Category)
	assert.Equal(t, domain.BeliefFollower, got[1].Category)

	_, err = rs.LookupBeliefs([]string{"Tithe", "Nope"})
	require.ErrorIs(t, err, tenetserrors.ErrBeliefNotFound)
}

func TestRuleset_HasReligion(t *testing.T) {
	t.Parallel()

	rs, err := Default()
	require.NoError(t, err)

	assert.True(t, rs.HasReligion("Islam"))
	assert.False(t, rs.HasReligion("islam"))
	assert.False(t, rs.HasReligion("Pastafarianism"))
}

func TestLoader_LoadFromFile(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		content := "religions: [Taoism]\nbeliefs:\n  - name: Tithe\n    type: founder\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte(content), 0o600))

		rs, err := NewLoader(dir).LoadFromFile("rules.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"Taoism"}, rs.Religions())
		_, ok := rs.Belief("Tithe")
		assert.True(t, ok)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "rules.JSON")
		content := `{"name":"mini","religions":["Islam"],"beliefs":[{"name":"Pagodas","type":"Follower","uniques":["x"]}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		rs, err := NewLoader("/elsewhere").LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "mini", rs.Name())
		b, ok := rs.Belief("Pagodas")
		require.True(t, ok)
		assert.Equal(t, []string{"x"}, b.Uniques)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoader(t.TempDir()).LoadFromFile("nope.yaml")
		require.ErrorIs(t, err, tenetserrors.ErrRulesetFileMissing)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("beliefs: [\n"), 0o600))
		_, err := NewLoader(dir).LoadFromFile("bad.yaml")
		require.ErrorIs(t, err, tenetserrors.ErrRulesetParse)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte(`{"beliefs":[{"name":"X","type":"Reformation"}]}`), "json")
		require.ErrorIs(t, err, tenetserrors.ErrRulesetInvalid)
		require.ErrorIs(t, err, tenetserrors.ErrUnknownBeliefCategory)
	})
}

func TestLoader_LoadEmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	rs, err := NewLoader("").Load("")
	require.NoError(t, err)
	assert.Equal(t, "Gods & Kings", rs.Name())
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "json", detectFormat("a.json"))
	assert.Equal(t, "json", detectFormat("a.JSON"))
	assert.Equal(t, "yaml", detectFormat("a.yaml"))
	assert.Equal(t, "yaml", detectFormat("a.yml"))
	assert.Equal(t, "yaml", detectFormat("noext"))
}
