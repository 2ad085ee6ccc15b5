package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dsaprep/backend/internal/auth"
	"github.com/dsaprep/backend/internal/domain/progress"
	"github.com/dsaprep/backend/internal/store"
)

// ErrAuthRequired is returned when a mutation is attempted without an
// authenticated identity. No store call is made in that case.
var ErrAuthRequired = errors.New("authentication required")

// PersistenceError wraps a failed remote write. The message of the
// remote error is surfaced verbatim to the user.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ProgressService is the only writer to the StatusStore. It persists a
// status change remotely first and updates the local cache only with
// the server-confirmed record, trading latency for consistency.
type ProgressService struct {
	store    store.Store
	statuses *StatusStore
	logger   *slog.Logger

	now func() time.Time // swapped in tests
}

func NewProgressService(s store.Store, statuses *StatusStore, logger *slog.Logger) *ProgressService {
	return &ProgressService{
		store:    s,
		statuses: statuses,
		logger:   logger,
		now:      time.Now,
	}
}

// EnsureLoaded populates the cache for a user on first sight. A user
// with zero stored records gets an empty map, not an error; anonymous
// callers are a no-op and see everything as todo.
func (ps *ProgressService) EnsureLoaded(ctx context.Context, userID string) error {
	if userID == "" || ps.statuses.Loaded(userID) {
		return nil
	}

	rows, err := ps.store.ListUserStatus(ctx, userID)
	if err != nil {
		return err
	}

	records := make(map[string]progress.StatusRecord, len(rows))
	for _, row := range rows {
		records[row.QuestionID] = progress.StatusRecord{
			Status:      row.Status,
			LastUpdated: row.LastUpdated,
		}
	}
	ps.statuses.ReplaceUser(userID, records)
	return nil
}

// SetStatus applies one status change for (user, question) and returns
// the confirmed record plus the user-visible acknowledgment text.
//
// The existence check and the subsequent write are two separate remote
// calls with no transaction around them. A concurrent call for the same
// pair can lose the race: a duplicate insert is rejected by the store's
// uniqueness constraint and surfaces as a persistence error, and
// concurrent updates resolve last-write-wins.
func (ps *ProgressService) SetStatus(ctx context.Context, ident auth.Identity, questionID string, newStatus progress.Status) (progress.StatusRecord, string, error) {
	if !ident.Authenticated {
		return progress.StatusRecord{}, "", ErrAuthRequired
	}

	now := ps.now()

	var confirmed time.Time
	_, err := ps.store.FindStatus(ctx, ident.UserID, questionID)
	switch {
	case err == nil:
		confirmed, err = ps.store.UpdateStatus(ctx, ident.UserID, questionID, newStatus, now)
	case errors.Is(err, store.ErrNotFound):
		confirmed, err = ps.store.InsertStatus(ctx, ident.UserID, questionID, newStatus, now)
	}
	if err != nil {
		ps.logger.Error("status update failed",
			"user_id", ident.UserID,
			"question_id", questionID,
			"status", newStatus,
			"error", err,
		)
		return progress.StatusRecord{}, "", &PersistenceError{Err: err}
	}

	rec := progress.StatusRecord{Status: newStatus, LastUpdated: confirmed}
	ps.statuses.Set(ident.UserID, questionID, rec)

	return rec, newStatus.Acknowledgment(), nil
}
