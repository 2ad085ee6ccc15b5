package api

import (
	"errors"
	"net/http"

	"github.com/dsaprep/backend/internal/domain/sheet"
	"github.com/dsaprep/backend/internal/service"
	"github.com/dsaprep/backend/internal/tutor"
)

// ── Request / Response types ────────────────────────────────────────────────

type ChatMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

func (r *ChatRequest) Validate() error {
	if len(r.Messages) == 0 {
		return errors.New("messages is required")
	}
	last := r.Messages[len(r.Messages)-1]
	if last.Role != "user" || last.Content == "" {
		return errors.New("last message must be a non-empty user message")
	}
	return nil
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type StartInterviewRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

func (r *StartInterviewRequest) Validate() error {
	if r.Topic == "" {
		return errors.New("topic is required")
	}
	_, err := sheet.ParseDifficulty(r.Difficulty)
	return err
}

type InterviewResponse struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
}

type SubmitSolutionRequest struct {
	Code string `json:"code"`
}

func (r *SubmitSolutionRequest) Validate() error {
	if r.Code == "" {
		return errors.New("code is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /chat
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	messages := make([]tutor.Message, len(req.Messages))
	for i, m := range req.Messages {
		role := tutor.RoleUser
		if m.Role == string(tutor.RoleModel) {
			role = tutor.RoleModel
		}
		messages[i] = tutor.Message{Role: role, Content: m.Content}
	}

	reply, err := h.tutor.Chat(ctx, messages)
	if err != nil {
		h.logger.Error("chat failed", "error", err)
		respondError(w, http.StatusBadGateway, "failed to get a response, please try again")
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

// POST /interviews
func (h *Handler) startInterview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StartInterviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	difficulty, _ := sheet.ParseDifficulty(req.Difficulty)

	session, err := h.interviews.Start(ctx, req.Topic, difficulty)
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to generate question, please try again")
		return
	}

	respondJSON(w, http.StatusCreated, InterviewResponse{
		ID:         session.ID,
		Topic:      session.Topic,
		Difficulty: string(session.Difficulty),
		Question:   session.Question,
	})
}

// POST /interviews/{interviewID}/solution
func (h *Handler) submitSolution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	interviewID := r.PathValue("interviewID")

	var req SubmitSolutionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	eval, err := h.interviews.Evaluate(ctx, interviewID, req.Code)
	if errors.Is(err, service.ErrInterviewNotFound) {
		respondError(w, http.StatusNotFound, "interview not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to evaluate, please check your code and try again")
		return
	}

	respondJSON(w, http.StatusOK, eval)
}
