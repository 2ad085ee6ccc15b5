package progress

import (
	"fmt"
	"time"

	"github.com/dsaprep/backend/internal/domain/sheet"
)

// Status describes a user's progress on a single question.
type Status string

const (
	StatusTodo      Status = "todo"
	StatusCompleted Status = "completed"
	StatusRevision  Status = "revision"
	StatusRedo      Status = "redo"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusCompleted, StatusRevision, StatusRedo:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q: must be todo, completed, revision, or redo", s)
}

// Acknowledgment is the user-facing confirmation text shown after a
// status change succeeds.
func (s Status) Acknowledgment() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusRevision:
		return "Marked for revision"
	case StatusRedo:
		return "Marked to do again"
	default:
		return "Added to todo"
	}
}

// StatusRecord is a user's stored progress on one question. At most one
// record exists per (user, question); a missing record means todo with
// no timestamp.
type StatusRecord struct {
	Status      Status
	LastUpdated time.Time // zero when the question has never been touched
}

// Default is the record implied by the absence of a stored row.
func Default() StatusRecord {
	return StatusRecord{Status: StatusTodo}
}

// QuestionWithStatus joins a catalog question with the caller's current
// progress. Derived on demand, never persisted.
type QuestionWithStatus struct {
	sheet.Question
	Status      Status
	LastUpdated time.Time
}
