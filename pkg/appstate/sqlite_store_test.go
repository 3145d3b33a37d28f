package appstate

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreFirstRun(t *testing.T) {
	store := newTestSQLiteStore(t)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Skills)
	assert.NotEmpty(t, state.Tags)
	assert.Equal(t, DefaultPreferences(), state.Preferences)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	want := sampleState()
	lastScan := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	want.LastScanAt = &lastScan
	want.Preferences.Theme = "dark"

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)

	require.Len(t, got.Skills, 1)
	wantSkill, gotSkill := want.Skills[0], got.Skills[0]
	assert.Equal(t, wantSkill.ID, gotSkill.ID)
	assert.Equal(t, wantSkill.Description, gotSkill.Description)
	assert.Equal(t, wantSkill.Tags, gotSkill.Tags)
	assert.Equal(t, wantSkill.IsFavorite, gotSkill.IsFavorite)
	assert.Equal(t, wantSkill.UseCount, gotSkill.UseCount)
	assert.WithinDuration(t, wantSkill.InstalledAt, gotSkill.InstalledAt, time.Second)

	require.Len(t, got.Drafts, 1)
	assert.Equal(t, want.Drafts[0].ID, got.Drafts[0].ID)
	assert.Equal(t, want.Drafts[0].Tags, got.Drafts[0].Tags)

	assert.Len(t, got.Tags, len(want.Tags))
	assert.Equal(t, "dark", got.Preferences.Theme)
	require.NotNil(t, got.LastScanAt)
	assert.WithinDuration(t, lastScan, *got.LastScanAt, time.Second)
}

func TestSQLiteStoreSaveReplacesWholesale(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleState()))

	emptied := NewState()
	emptied.Tags = nil
	require.NoError(t, store.Save(ctx, emptied))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Drafts)
}

func TestSQLiteStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "storage.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleState()))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Skills, 1)
}
