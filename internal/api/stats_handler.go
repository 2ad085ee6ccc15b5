package api

import (
	"net/http"

	"github.com/dsaprep/backend/internal/auth"
)

// Statistics endpoints. All three recompute from the current catalog
// and status state on every call; nothing is cached server-side.

// GET /stats/sheets
func (h *Handler) sheetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident := auth.FromContext(ctx)

	h.ensureStatuses(ctx, ident.UserID)

	_, agg := h.snapshot()
	respondJSON(w, http.StatusOK, agg.SheetStatistics(ident.UserID))
}

// GET /stats/topics
func (h *Handler) topicStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident := auth.FromContext(ctx)

	h.ensureStatuses(ctx, ident.UserID)

	_, agg := h.snapshot()
	respondJSON(w, http.StatusOK, agg.TopicStatistics(ident.UserID))
}

// GET /stats/daily
//
// Never fails: on an upstream error the aggregator logs it and returns
// the zero-filled series, so the activity chart always renders.
func (h *Handler) dailyProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident := auth.FromContext(ctx)

	h.ensureStatuses(ctx, ident.UserID)

	_, agg := h.snapshot()
	respondJSON(w, http.StatusOK, agg.DailyProgress(ctx, ident.UserID))
}
