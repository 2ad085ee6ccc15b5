package tutor

import (
	"context"

	"github.com/dsaprep/backend/internal/domain/sheet"
)

// Disabled is the Tutor used when no API key is configured. Every call
// fails with a clear reason instead of panicking on a nil dependency.
type Disabled struct{}

var _ Tutor = Disabled{}

func (Disabled) Chat(context.Context, []Message) (string, error) {
	return "", &TutorError{Reason: "AI tutor is not configured"}
}

func (Disabled) GenerateQuestion(context.Context, string, sheet.Difficulty) (string, error) {
	return "", &TutorError{Reason: "AI tutor is not configured"}
}

func (Disabled) EvaluateSolution(context.Context, string, string) (*Evaluation, error) {
	return nil, &TutorError{Reason: "AI tutor is not configured"}
}
