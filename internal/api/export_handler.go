package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/dsaprep/backend/internal/domain/sheet"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportQuestion struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	URL        string `json:"url,omitempty"`
	Topic      string `json:"topic"`
}

type ExportSheet struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Questions   []ExportQuestion `json:"questions"`
}

type ExportData struct {
	Version    string        `json:"version"`
	ExportedAt string        `json:"exported_at"`
	Sheets     []ExportSheet `json:"sheets"`
}

func (d *ExportData) Validate() error {
	if len(d.Sheets) == 0 {
		return errors.New("sheets is required")
	}
	for _, sh := range d.Sheets {
		if sh.Name == "" {
			return errors.New("every sheet needs a name")
		}
		for _, q := range sh.Questions {
			if q.Title == "" {
				return errors.New("every question needs a title")
			}
			if _, err := sheet.ParseDifficulty(q.Difficulty); err != nil {
				return err
			}
		}
	}
	return nil
}

type ImportResult struct {
	SheetsCreated    int `json:"sheets_created"`
	QuestionsCreated int `json:"questions_created"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /export
func (h *Handler) exportCatalog(w http.ResponseWriter, r *http.Request) {
	cat, _ := h.snapshot()

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sheets:     make([]ExportSheet, 0, len(cat.Sheets)),
	}

	for _, sh := range cat.Sheets {
		questions := cat.Questions(sh.ID)
		exportSheet := ExportSheet{
			Name:        sh.Name,
			Description: sh.Description,
			Questions:   make([]ExportQuestion, len(questions)),
		}
		for i, q := range questions {
			exportSheet.Questions[i] = ExportQuestion{
				Title:      q.Title,
				Difficulty: string(q.Difficulty),
				URL:        q.URL,
				Topic:      q.Topic,
			}
		}
		exportData.Sheets = append(exportData.Sheets, exportSheet)
	}

	respondJSON(w, http.StatusOK, exportData)
}

// POST /import
//
// Imported sheets get fresh IDs; importing the same payload twice
// creates duplicates rather than merging.
func (h *Handler) importCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data ExportData
	if !decodeAndValidate(w, r, &data) {
		return
	}

	result := ImportResult{}
	for _, exportSheet := range data.Sheets {
		sh := sheet.New(exportSheet.Name, exportSheet.Description)
		for _, q := range exportSheet.Questions {
			difficulty, _ := sheet.ParseDifficulty(q.Difficulty)
			if err := sh.AddQuestion(q.Title, difficulty, q.URL, q.Topic); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		if err := h.store.SaveSheet(ctx, sh); err != nil {
			h.logger.Error("import: failed to save sheet", "name", sh.Name, "error", err)
			respondError(w, http.StatusInternalServerError, "failed to save sheet")
			return
		}
		for _, q := range sh.Questions {
			if err := h.store.AddQuestion(ctx, sh.ID, q); err != nil {
				h.logger.Error("import: failed to save question", "title", q.Title, "error", err)
				respondError(w, http.StatusInternalServerError, "failed to save question")
				return
			}
			result.QuestionsCreated++
		}
		result.SheetsCreated++
	}

	if err := h.reloadCatalog(ctx); err != nil {
		h.logger.Error("import: catalog reload failed", "error", err)
		respondError(w, http.StatusInternalServerError, "import saved but catalog reload failed")
		return
	}

	respondJSON(w, http.StatusCreated, result)
}
