package store

import (
	"context"
	"errors"
	"time"

	"github.com/dsaprep/backend/internal/domain/progress"
	"github.com/dsaprep/backend/internal/domain/sheet"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert collides with the
	// one-record-per-(user, question) uniqueness constraint.
	ErrDuplicate = errors.New("status record already exists")
)

// UserStatus is one stored progress row, as listed for a whole user.
type UserStatus struct {
	QuestionID  string
	Status      progress.Status
	LastUpdated time.Time
}

// StatusTimestamp pairs a question with the time its record was last
// written. Used by the daily-progress aggregation.
type StatusTimestamp struct {
	QuestionID  string
	LastUpdated time.Time
}

// Store is the remote backend the service defers to. Catalog rows are
// read-only; status rows are the only thing users mutate.
type Store interface {
	// Catalog listing.
	ListSheets(ctx context.Context) ([]*sheet.Sheet, error)
	ListQuestions(ctx context.Context, sheetID string) ([]sheet.Question, error)

	// Per-user status rows.
	ListUserStatus(ctx context.Context, userID string) ([]UserStatus, error)

	// FindStatus reports whether a record exists for (user, question).
	// Returns the record's row ID, or ErrNotFound when it does not exist.
	FindStatus(ctx context.Context, userID, questionID string) (string, error)

	// InsertStatus and UpdateStatus both return the authoritative
	// last_updated timestamp as confirmed by the store. The local
	// cache must only be written with that confirmed value.
	InsertStatus(ctx context.Context, userID, questionID string, status progress.Status, lastUpdated time.Time) (time.Time, error)
	UpdateStatus(ctx context.Context, userID, questionID string, status progress.Status, lastUpdated time.Time) (time.Time, error)

	// ListStatusTimestamps returns last_updated for the given user,
	// filtered to the given question IDs.
	ListStatusTimestamps(ctx context.Context, userID string, questionIDs []string) ([]StatusTimestamp, error)

	// Catalog administration (import / seeding).
	SaveSheet(ctx context.Context, s *sheet.Sheet) error
	AddQuestion(ctx context.Context, sheetID string, q sheet.Question) error
	CountSheets(ctx context.Context) (int, error)
}
