// Package webui provides the HTTP API used by the desktop shell and by
// anyone who wants to script the catalog: skill listing and mutation,
// tag management, store browsing, rescans, and state export/import.
package webui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/catalog"
	"github.com/skillpocket/skillpocket/pkg/logger"
	"github.com/skillpocket/skillpocket/pkg/presenter"
	"github.com/skillpocket/skillpocket/pkg/skills"
	"github.com/skillpocket/skillpocket/pkg/tags"
	"github.com/skillpocket/skillpocket/pkg/version"
)

const maxImportBytes = 16 << 20

// Server exposes the catalog service over HTTP.
type Server struct {
	router  *mux.Router
	service *appstate.Service
	config  *ServerConfig
	server  *http.Server
}

// ServerConfig holds the listen address for the web server.
type ServerConfig struct {
	Host string
	Port int
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	if c.Host == "" {
		return errors.New("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

// NewServer creates a server over an existing catalog service.
func NewServer(service *appstate.Service, config *ServerConfig) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid server configuration")
	}

	s := &Server{
		router:  mux.NewRouter(),
		service: service,
		config:  config,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/skills", s.handleListSkills).Methods("GET")
	api.HandleFunc("/skills/{id}", s.handleGetSkill).Methods("GET")
	api.HandleFunc("/skills/{id}", s.handleRemoveSkill).Methods("DELETE")
	api.HandleFunc("/skills/{id}/favorite", s.handleToggleFavorite).Methods("POST")
	api.HandleFunc("/skills/{id}/use", s.handleRecordUse).Methods("POST")
	api.HandleFunc("/skills/{id}/tags", s.handleSetSkillTags).Methods("PUT")

	api.HandleFunc("/tags", s.handleListTags).Methods("GET")
	api.HandleFunc("/tags", s.handleAddTag).Methods("POST")
	api.HandleFunc("/tags/{id}", s.handleRemoveTag).Methods("DELETE")

	api.HandleFunc("/drafts", s.handleListDrafts).Methods("GET")
	api.HandleFunc("/drafts/{id}", s.handleRemoveDraft).Methods("DELETE")

	api.HandleFunc("/catalog", s.handleCatalogSearch).Methods("GET")
	api.HandleFunc("/catalog/categories", s.handleCatalogCategories).Methods("GET")

	api.HandleFunc("/scan", s.handleScan).Methods("POST")
	api.HandleFunc("/export", s.handleExport).Methods("GET")
	api.HandleFunc("/import", s.handleImport).Methods("POST")

	api.HandleFunc("/preferences", s.handleGetPreferences).Methods("GET")
	api.HandleFunc("/preferences", s.handleSetPreferences).Methods("PUT")

	api.HandleFunc("/version", s.handleVersion).Methods("GET")

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.corsMiddleware)
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: 200}

		next.ServeHTTP(rw, r)

		logger.G(r.Context()).WithFields(map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration":    time.Since(start),
			"remote_addr": r.RemoteAddr,
		}).Info("HTTP request")
	})
}

// corsMiddleware adds CORS headers for the desktop shell's webview.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// API handlers

// handleListSkills handles GET /api/skills with optional tag, favorites,
// and search query parameters.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	list := s.service.Skills()

	if tagID := query.Get("tag"); tagID != "" {
		list = filterSkills(list, func(sk skills.Skill) bool {
			for _, t := range sk.Tags {
				if t == tagID {
					return true
				}
			}
			return false
		})
	}
	if query.Get("favorites") == "true" {
		list = filterSkills(list, func(sk skills.Skill) bool { return sk.IsFavorite })
	}

	s.writeJSONResponse(w, map[string]any{
		"skills": list,
		"total":  len(list),
	})
}

// handleGetSkill handles GET /api/skills/{id}
func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := s.service.Skill(mux.Vars(r)["id"])
	if err != nil {
		s.writeErrorResponse(w, http.StatusNotFound, "skill not found", err)
		return
	}
	s.writeJSONResponse(w, skill)
}

// handleRemoveSkill handles DELETE /api/skills/{id}
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	if err := s.service.RemoveSkill(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeErrorResponse(w, statusFor(err), "failed to remove skill", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleFavorite handles POST /api/skills/{id}/favorite
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	favorite, err := s.service.ToggleFavorite(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeErrorResponse(w, statusFor(err), "failed to toggle favorite", err)
		return
	}
	s.writeJSONResponse(w, map[string]any{"isFavorite": favorite})
}

// handleRecordUse handles POST /api/skills/{id}/use
func (s *Server) handleRecordUse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.service.RecordUse(r.Context(), id); err != nil {
		s.writeErrorResponse(w, statusFor(err), "failed to record use", err)
		return
	}
	skill, err := s.service.Skill(id)
	if err != nil {
		s.writeErrorResponse(w, http.StatusInternalServerError, "failed to reload skill", err)
		return
	}
	s.writeJSONResponse(w, skill)
}

// handleSetSkillTags handles PUT /api/skills/{id}/tags
func (s *Server) handleSetSkillTags(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := s.service.SetSkillTags(r.Context(), mux.Vars(r)["id"], body.Tags); err != nil {
		s.writeErrorResponse(w, statusFor(err), "failed to set tags", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListTags handles GET /api/tags
func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, map[string]any{"tags": s.service.Tags()})
}

// handleAddTag handles POST /api/tags
func (s *Server) handleAddTag(w http.ResponseWriter, r *http.Request) {
	var tag tags.Tag
	if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if tag.ID == "" {
		tag = tags.New(tag.Name, tag.Icon, tag.Color, tag.ParentID, tag.Order)
	}
	if err := s.service.AddTag(r.Context(), tag); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "failed to add tag", err)
		return
	}
	s.writeJSONResponse(w, tag)
}

// handleRemoveTag handles DELETE /api/tags/{id}
func (s *Server) handleRemoveTag(w http.ResponseWriter, r *http.Request) {
	if err := s.service.RemoveTag(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeErrorResponse(w, statusFor(err), "failed to remove tag", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListDrafts handles GET /api/drafts
func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, map[string]any{"drafts": s.service.Drafts()})
}

// handleRemoveDraft handles DELETE /api/drafts/{id}
func (s *Server) handleRemoveDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.service.RemoveDraft(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeErrorResponse(w, statusFor(err), "failed to remove draft", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCatalogSearch handles GET /api/catalog
func (s *Server) handleCatalogSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := catalog.Query{
		Text:     query.Get("q"),
		Pattern:  query.Get("pattern"),
		Category: query.Get("category"),
		Source:   query.Get("source"),
		Sort:     query.Get("sort"),
	}
	if pageStr := query.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			q.Page = page
		}
	}
	if sizeStr := query.Get("pageSize"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			q.PageSize = size
		}
	}

	result, err := catalog.Search(q)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid catalog query", err)
		return
	}
	s.writeJSONResponse(w, result)
}

// handleCatalogCategories handles GET /api/catalog/categories
func (s *Server) handleCatalogCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, map[string]any{"categories": catalog.Categories()})
}

// handleScan handles POST /api/scan
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Rescan(r.Context())
	if err != nil {
		if errors.Is(err, appstate.ErrScanInFlight) {
			s.writeErrorResponse(w, http.StatusConflict, "scan already in progress", err)
			return
		}
		s.writeErrorResponse(w, http.StatusInternalServerError, "scan failed", err)
		return
	}

	warnings := make([]string, 0, len(result.Warnings))
	for _, warning := range result.Warnings {
		warnings = append(warnings, warning.Error())
	}
	s.writeJSONResponse(w, map[string]any{
		"discovered": len(result.Skills),
		"warnings":   warnings,
	})
}

// handleExport handles GET /api/export
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	raw, err := s.service.Export()
	if err != nil {
		s.writeErrorResponse(w, http.StatusInternalServerError, "export failed", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// handleImport handles POST /api/import
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "failed to read request body", err)
		return
	}
	if err := s.service.Import(r.Context(), raw); err != nil {
		if errors.Is(err, appstate.ErrInvalidEnvelope) {
			s.writeErrorResponse(w, http.StatusBadRequest, "invalid export envelope", err)
			return
		}
		s.writeErrorResponse(w, http.StatusInternalServerError, "import failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetPreferences handles GET /api/preferences
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, s.service.Preferences())
}

// handleSetPreferences handles PUT /api/preferences
func (s *Server) handleSetPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs appstate.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := s.service.SetPreferences(r.Context(), prefs); err != nil {
		s.writeErrorResponse(w, http.StatusInternalServerError, "failed to save preferences", err)
		return
	}
	s.writeJSONResponse(w, s.service.Preferences())
}

// handleVersion handles GET /api/version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, version.Get())
}

func filterSkills(list []skills.Skill, keep func(skills.Skill) bool) []skills.Skill {
	out := list[:0]
	for _, sk := range list {
		if keep(sk) {
			out = append(out, sk)
		}
	}
	return out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, appstate.ErrSkillNotFound),
		errors.Is(err, appstate.ErrDraftNotFound),
		errors.Is(err, tags.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Utility methods

func (s *Server) writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.G(context.TODO()).WithError(err).Error("failed to encode JSON response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string, err error) {
	if err != nil {
		logger.G(context.TODO()).WithError(err).Error(message)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := map[string]any{
		"error":   message,
		"status":  statusCode,
		"success": false,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.G(context.TODO()).WithError(err).Error("failed to encode error response")
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:    address,
		Handler: s.router,
	}

	presenter.Info(fmt.Sprintf("Starting API server on http://%s", address))

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.G(ctx).WithError(err).Error("API server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Stop stops the web server.
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}
