// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux using Go 1.22 method
// patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Catalog
	mux.HandleFunc("GET /sheets", h.listSheets)
	mux.HandleFunc("GET /sheets/{sheetID}/questions", h.listSheetQuestions)

	// Progress
	mux.HandleFunc("PUT /questions/{questionID}/status", h.setQuestionStatus)

	// Statistics
	mux.HandleFunc("GET /stats/sheets", h.sheetStatistics)
	mux.HandleFunc("GET /stats/topics", h.topicStatistics)
	mux.HandleFunc("GET /stats/daily", h.dailyProgress)

	// AI tutor
	mux.HandleFunc("POST /chat", h.chat)
	mux.HandleFunc("POST /interviews", h.startInterview)
	mux.HandleFunc("POST /interviews/{interviewID}/solution", h.submitSolution)

	// Catalog administration
	mux.HandleFunc("GET /export", h.exportCatalog)
	mux.HandleFunc("POST /import", h.importCatalog)
}
