package appstate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpocket/skillpocket/pkg/skills"
)

func sampleState() State {
	installed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state := NewState()
	state.Skills = []skills.Skill{
		{
			ID:          "local-local-foo",
			Name:        "foo",
			Description: "does foo things",
			Path:        "/home/user/.claude/skills/foo/SKILL.md",
			Source:      skills.SourceLocal,
			Content:     "# Foo",
			Tags:        []string{"tools"},
			IsFavorite:  true,
			UseCount:    3,
			InstalledAt: installed,
			UpdatedAt:   installed,
		},
	}
	state.Drafts = []Draft{
		{
			ID:          "draft-1",
			Name:        "wip",
			Description: "work in progress",
			Content:     "# WIP",
			Tags:        []string{"tools"},
			CreatedAt:   installed,
			UpdatedAt:   installed,
		},
	}
	return state
}

func TestJSONStoreFirstRun(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Skills)
	assert.NotEmpty(t, state.Tags, "first run seeds the default taxonomy")
	assert.Equal(t, DefaultPreferences(), state.Preferences)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	want := sampleState()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Skills, got.Skills)
	assert.Equal(t, want.Drafts, got.Drafts)
	assert.Equal(t, want.Preferences, got.Preferences)
	assert.Len(t, got.Tags, len(want.Tags))

	// The temp file must not linger after a successful save.
	_, err = os.Stat(filepath.Join(dir, stateFileName+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestJSONStoreSaveReplacesWholesale(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleState()))

	emptied := NewState()
	require.NoError(t, store.Save(ctx, emptied))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Skills)
}

func TestJSONStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0o644))

	_, err = store.Load(context.Background())
	assert.Error(t, err)
}
