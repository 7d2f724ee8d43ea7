package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

func TestProjectsAddUpdateRemove(t *testing.T) {
	s := store.New()
	e := NewProjects(s)

	entry := e.Add()
	require.NotEmpty(t, entry.ID)

	tech := []string{"Go", "Postgres"}
	updated, err := e.Update(entry.ID, ProjectPatch{
		Name:         strPtr("sidecar"),
		Link:         strPtr("github.com/jane/sidecar"),
		Technologies: &tech,
	})
	require.NoError(t, err)
	assert.Equal(t, "sidecar", updated.Name)
	assert.Equal(t, []string{"Go", "Postgres"}, updated.Technologies)

	require.NoError(t, e.Remove(entry.ID))
	assert.Empty(t, s.Document().Projects)
}

func TestProjectsTechnologiesReplacedWholesale(t *testing.T) {
	s := store.New()
	e := NewProjects(s)
	entry := e.Add()

	first := []string{"Go", "Redis"}
	_, err := e.Update(entry.ID, ProjectPatch{Technologies: &first})
	require.NoError(t, err)

	second := []string{"Rust"}
	_, err = e.Update(entry.ID, ProjectPatch{Technologies: &second})
	require.NoError(t, err)

	assert.Equal(t, []string{"Rust"}, s.Document().Projects[0].Technologies)
}

func TestProjectsUpdateCopiesTechnologies(t *testing.T) {
	s := store.New()
	e := NewProjects(s)
	entry := e.Add()

	tech := []string{"Go"}
	_, err := e.Update(entry.ID, ProjectPatch{Technologies: &tech})
	require.NoError(t, err)
	tech[0] = "mutated"

	assert.Equal(t, "Go", s.Document().Projects[0].Technologies[0])
}

func TestProjectsUnknownID(t *testing.T) {
	s := store.New()
	e := NewProjects(s)

	_, err := e.Update("missing", ProjectPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.ErrorIs(t, e.Remove("missing"), domain.ErrEntryNotFound)
}
