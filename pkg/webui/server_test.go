package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/skills"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	skillsDir := t.TempDir()
	scanner, err := skills.NewScanner(skills.WithRoots(skillsDir, filepath.Join(t.TempDir(), "marketplaces")))
	require.NoError(t, err)

	store, err := appstate.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	service, err := appstate.NewService(context.Background(), store, appstate.WithScanner(scanner))
	require.NoError(t, err)
	t.Cleanup(func() { _ = service.Close() })

	srv, err := NewServer(service, &ServerConfig{Host: "localhost", Port: 8080})
	require.NoError(t, err)
	return srv, skillsDir
}

func writeSkill(t *testing.T, root, dir, name, description string) {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	content := "---\nname: " + name + "\ndescription: " + description + "\n---\n\n# " + name + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644))
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body []byte) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func TestServerConfigValidate(t *testing.T) {
	assert.Error(t, (&ServerConfig{Host: "", Port: 8080}).Validate())
	assert.Error(t, (&ServerConfig{Host: "localhost", Port: 0}).Validate())
	assert.Error(t, (&ServerConfig{Host: "localhost", Port: 70000}).Validate())
	assert.NoError(t, (&ServerConfig{Host: "localhost", Port: 8080}).Validate())
}

func TestScanAndListSkills(t *testing.T) {
	srv, skillsDir := newTestServer(t)
	writeSkill(t, skillsDir, "foo", "foo", "a prompt library for Claude")
	writeSkill(t, skillsDir, "bar", "bar", "plain helper")

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/scan", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["discovered"])

	rec, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["total"])
}

func TestGetSkillNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, _ := doJSON(t, srv.Handler(), http.MethodGet, "/api/skills/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoriteAndUse(t *testing.T) {
	srv, skillsDir := newTestServer(t)
	writeSkill(t, skillsDir, "foo", "foo", "does things")
	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/scan", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/skills/local-local-foo/favorite", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["isFavorite"])

	rec, body = doJSON(t, srv.Handler(), http.MethodPost, "/api/skills/local-local-foo/use", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["useCount"])

	rec, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/skills?favorites=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total"])
}

func TestSetSkillTagsAndFilter(t *testing.T) {
	srv, skillsDir := newTestServer(t)
	writeSkill(t, skillsDir, "foo", "foo", "does things")
	writeSkill(t, skillsDir, "bar", "bar", "other things")
	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/scan", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, srv.Handler(), http.MethodPut, "/api/skills/local-local-foo/tags", []byte(`{"tags":["custom"]}`))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/skills?tag=custom", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total"])
}

func TestTagEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/tags", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	defaults := body["tags"].([]any)
	assert.NotEmpty(t, defaults)

	rec, created := doJSON(t, srv.Handler(), http.MethodPost, "/api/tags", []byte(`{"name":"Security","icon":"Shield","color":"#ef4444"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	rec, _ = doJSON(t, srv.Handler(), http.MethodDelete, "/api/tags/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = doJSON(t, srv.Handler(), http.MethodDelete, "/api/tags/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddTagRejectsTakenID(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/tags", []byte(`{"id":"web","name":"Web Again"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/tags", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	seen := 0
	for _, raw := range body["tags"].([]any) {
		if raw.(map[string]any)["id"] == "web" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestCatalogEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/catalog?category=documents&sort=downloads", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["skills"])

	rec, _ = doJSON(t, srv.Handler(), http.MethodGet, "/api/catalog?pattern=[", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/catalog/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["categories"])
}

func TestExportImportEndpoints(t *testing.T) {
	srv, skillsDir := newTestServer(t)
	writeSkill(t, skillsDir, "foo", "foo", "does things")
	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/scan", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	exportRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(exportRec, req)
	require.Equal(t, http.StatusOK, exportRec.Code)

	rec, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/import", exportRec.Body.Bytes())
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/import", []byte(`{"data":{}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreferencesEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodPut, "/api/preferences", []byte(`{"theme":"dark","language":"en","viewMode":"list"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", body["theme"])

	rec, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/preferences", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list", body["viewMode"])
}

func TestVersionEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["version"])
}
