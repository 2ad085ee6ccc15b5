package tutor

import (
	"context"
	"fmt"

	"github.com/dsaprep/backend/internal/domain/sheet"
)

// Role is the sender of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn of a tutoring conversation.
type Message struct {
	Role    Role
	Content string
}

// Evaluation is the structured verdict on an interview solution.
type Evaluation struct {
	Correctness     int      `json:"correctness"` // 0-100
	TimeComplexity  string   `json:"timeComplexity"`
	SpaceComplexity string   `json:"spaceComplexity"`
	Feedback        string   `json:"feedback"`
	Suggestions     []string `json:"suggestions,omitempty"`
}

// Tutor answers DSA questions, generates interview problems, and
// evaluates solutions. Implementations may call an LLM or return
// canned results (for tests).
type Tutor interface {
	// Chat continues a tutoring conversation and returns the model's reply.
	Chat(ctx context.Context, messages []Message) (string, error)

	// GenerateQuestion produces one coding interview question.
	GenerateQuestion(ctx context.Context, topic string, difficulty sheet.Difficulty) (string, error)

	// EvaluateSolution judges a solution to a previously asked question.
	EvaluateSolution(ctx context.Context, question, code string) (*Evaluation, error)
}

// TutorError is returned when a tutor call fails so the caller can
// distinguish "model gave an unusable answer" from "model unreachable."
type TutorError struct {
	Reason  string
	Wrapped error
}

func (e *TutorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("tutor failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("tutor failed: %s", e.Reason)
}

func (e *TutorError) Unwrap() error {
	return e.Wrapped
}
