package api

import (
	"net/http"
	"time"

	"github.com/dsaprep/backend/internal/auth"
	"github.com/dsaprep/backend/internal/domain/progress"
)

// ── Request / Response types ────────────────────────────────────────────────

type SheetResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Declared count from the sheet author; may diverge from the number
	// of questions actually loaded.
	TotalQuestions int `json:"total_questions"`
	LoadedCount    int `json:"loaded_count"`
}

type QuestionWithStatusResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Difficulty  string          `json:"difficulty"`
	URL         string          `json:"url"`
	Topic       string          `json:"topic"`
	SheetID     string          `json:"sheet_id"`
	Status      progress.Status `json:"status"`
	LastUpdated *string         `json:"last_updated"` // RFC3339, null when never touched
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /sheets
func (h *Handler) listSheets(w http.ResponseWriter, r *http.Request) {
	cat, _ := h.snapshot()

	response := make([]SheetResponse, len(cat.Sheets))
	for i, sh := range cat.Sheets {
		response[i] = SheetResponse{
			ID:             sh.ID,
			Name:           sh.Name,
			Description:    sh.Description,
			TotalQuestions: sh.TotalQuestions,
			LoadedCount:    len(cat.Questions(sh.ID)),
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// GET /sheets/{sheetID}/questions
func (h *Handler) listSheetQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sheetID := r.PathValue("sheetID")
	ident := auth.FromContext(ctx)

	cat, agg := h.snapshot()
	if cat.Questions(sheetID) == nil {
		respondError(w, http.StatusNotFound, "sheet not found")
		return
	}

	h.ensureStatuses(ctx, ident.UserID)

	questions := agg.QuestionsWithStatus(ident.UserID, sheetID)
	response := make([]QuestionWithStatusResponse, len(questions))
	for i, q := range questions {
		response[i] = QuestionWithStatusResponse{
			ID:          q.ID,
			Title:       q.Title,
			Difficulty:  string(q.Difficulty),
			URL:         q.URL,
			Topic:       q.Topic,
			SheetID:     q.SheetID,
			Status:      q.Status,
			LastUpdated: formatUpdated(q.LastUpdated),
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// formatUpdated renders a record timestamp, keeping "never touched" as
// JSON null rather than the zero time.
func formatUpdated(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
