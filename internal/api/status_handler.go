package api

import (
	"errors"
	"net/http"

	"github.com/dsaprep/backend/internal/auth"
	"github.com/dsaprep/backend/internal/domain/progress"
	"github.com/dsaprep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SetStatusRequest struct {
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	_, err := progress.ParseStatus(r.Status)
	return err
}

type SetStatusResponse struct {
	QuestionID  string          `json:"question_id"`
	Status      progress.Status `json:"status"`
	LastUpdated *string         `json:"last_updated"`
	// Acknowledgment is the user-visible confirmation, e.g. "Marked for
	// revision", paired with the question title for the toast.
	Acknowledgment string `json:"acknowledgment"`
	QuestionTitle  string `json:"question_title,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// PUT /questions/{questionID}/status
func (h *Handler) setQuestionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questionID := r.PathValue("questionID")
	ident := auth.FromContext(ctx)

	var req SetStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	newStatus, _ := progress.ParseStatus(req.Status)

	// Reject unknown question IDs up front, or a typo'd ID would
	// persist an orphan record no sheet listing ever shows.
	cat, _ := h.snapshot()
	var title string
	found := false
	for _, q := range cat.AllQuestions() {
		if q.ID == questionID {
			title = q.Title
			found = true
			break
		}
	}
	if !found {
		respondError(w, http.StatusNotFound, "question not found")
		return
	}

	h.ensureStatuses(ctx, ident.UserID)

	rec, ack, err := h.progress.SetStatus(ctx, ident, questionID, newStatus)
	if errors.Is(err, service.ErrAuthRequired) {
		respondError(w, http.StatusUnauthorized, "please log in to update question status")
		return
	}
	var persistErr *service.PersistenceError
	if errors.As(err, &persistErr) {
		// The remote store's message goes to the user verbatim.
		respondError(w, http.StatusBadGateway, persistErr.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, SetStatusResponse{
		QuestionID:     questionID,
		Status:         rec.Status,
		LastUpdated:    formatUpdated(rec.LastUpdated),
		Acknowledgment: ack,
		QuestionTitle:  title,
	})
}
