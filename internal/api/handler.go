// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dsaprep/backend/internal/catalog"
	"github.com/dsaprep/backend/internal/service"
	"github.com/dsaprep/backend/internal/stats"
	"github.com/dsaprep/backend/internal/store"
	"github.com/dsaprep/backend/internal/tutor"
)

// Handler holds all dependencies needed by HTTP handlers. Instead of
// relying on package-level globals, every handler method receives its
// dependencies through this struct.
type Handler struct {
	store      store.Store
	loader     *catalog.Loader
	statuses   *service.StatusStore
	progress   *service.ProgressService
	interviews *service.InterviewService
	tutor      tutor.Tutor
	logger     *slog.Logger

	// The catalog snapshot is immutable once loaded; reloads (after an
	// import) swap the whole snapshot and its aggregator together.
	mu      sync.RWMutex
	catalog *catalog.Catalog
	agg     *stats.Aggregator
}

// NewHandler creates a Handler over an already-loaded catalog.
func NewHandler(
	s store.Store,
	loader *catalog.Loader,
	initial *catalog.Catalog,
	statuses *service.StatusStore,
	progress *service.ProgressService,
	interviews *service.InterviewService,
	t tutor.Tutor,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:      s,
		loader:     loader,
		statuses:   statuses,
		progress:   progress,
		interviews: interviews,
		tutor:      t,
		logger:     logger,
		catalog:    initial,
		agg:        stats.New(initial, statuses, s, logger),
	}
}

// snapshot returns the current catalog and its aggregator as one
// consistent pair.
func (h *Handler) snapshot() (*catalog.Catalog, *stats.Aggregator) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalog, h.agg
}

// reloadCatalog refetches the catalog and swaps it in. On failure the
// previous snapshot stays active.
func (h *Handler) reloadCatalog(ctx context.Context) error {
	fresh, err := h.loader.Load(ctx)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.catalog = fresh
	h.agg = stats.New(fresh, h.statuses, h.store, h.logger)
	h.mu.Unlock()
	return nil
}

// ensureStatuses lazily loads the caller's status records. A fetch
// failure is logged and swallowed so read endpoints keep working; the
// user simply sees defaults until the next request retries.
func (h *Handler) ensureStatuses(ctx context.Context, userID string) {
	if err := h.progress.EnsureLoaded(ctx, userID); err != nil {
		h.logger.Error("failed to load user statuses", "user_id", userID, "error", err)
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// decodeJSON decodes the request body into v. Returns false (response
// already written) on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the request body and runs its Validate
// method. Returns false if either step failed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the
// appropriate HTTP response. Returns true if an error was handled
// (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
