package drafts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/skills"
)

func TestFromURLConvertsHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Review Checklist</h1><p>Steps to review code.</p></body></html>"))
	}))
	defer srv.Close()

	draft, err := NewFetcher().FromURL(context.Background(), srv.URL+"/guides/review-checklist")
	require.NoError(t, err)

	assert.Equal(t, "review checklist", draft.Name)
	assert.Equal(t, srv.URL+"/guides/review-checklist", draft.SourceURL)
	assert.Contains(t, draft.Content, "# Review Checklist")
	assert.Contains(t, draft.Content, "Steps to review code.")
	assert.Equal(t, "Review Checklist", draft.Description)
	assert.NotEmpty(t, draft.ID)
	assert.NotEmpty(t, draft.Tags)
}

func TestFromURLNameFallsBackToHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("plain notes"))
	}))
	defer srv.Close()

	draft, err := NewFetcher().FromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", draft.Name)
	assert.Equal(t, "plain notes", draft.Content)
}

func TestFromURLRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<p>eventually</p>"))
	}))
	defer srv.Close()

	draft, err := NewFetcher().FromURL(context.Background(), srv.URL+"/page")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Contains(t, draft.Content, "eventually")
}

func TestFromURLRejections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	f := NewFetcher()
	ctx := context.Background()

	_, err := f.FromURL(ctx, "ftp://example.com/skill")
	assert.Error(t, err)

	_, err = f.FromURL(ctx, srv.URL+"/file.pdf")
	assert.Error(t, err)
}

func TestPublishWritesDescriptor(t *testing.T) {
	dir := t.TempDir()
	draft := appstate.NewDraft("My  Skill", "does something useful", "# My Skill\n\nBody.", "")

	path, err := Publish(draft, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my-skill", "SKILL.md"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	fm, body, err := skills.ParseDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, "My  Skill", fm.Name)
	assert.Equal(t, "does something useful", fm.Description)
	assert.Contains(t, body, "Body.")
}

func TestPublishRequiresName(t *testing.T) {
	_, err := Publish(appstate.Draft{Content: "body"}, t.TempDir())
	assert.ErrorIs(t, err, ErrEmptyDraft)
}
