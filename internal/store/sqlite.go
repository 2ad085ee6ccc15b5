// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dsaprep/backend/internal/domain/progress"
	"github.com/dsaprep/backend/internal/domain/sheet"
)

const schema = `
CREATE TABLE IF NOT EXISTS sheets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    total_questions INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    sheet_id TEXT NOT NULL,
    title TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    url TEXT NOT NULL DEFAULT '',
    topic TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (sheet_id) REFERENCES sheets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS user_question_status (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    status TEXT NOT NULL,
    last_updated TEXT NOT NULL,
    UNIQUE (user_id, question_id),
    FOREIGN KEY (question_id) REFERENCES questions(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_questions_sheet ON questions(sheet_id);
CREATE INDEX IF NOT EXISTS idx_status_user ON user_question_status(user_id);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Catalog
// ============================================================================

func (s *SQLiteStore) ListSheets(ctx context.Context) ([]*sheet.Sheet, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, description, total_questions FROM sheets")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []*sheet.Sheet
	for rows.Next() {
		var sh sheet.Sheet
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.Description, &sh.TotalQuestions); err != nil {
			return nil, err
		}
		sheets = append(sheets, &sh)
	}
	return sheets, rows.Err()
}

func (s *SQLiteStore) ListQuestions(ctx context.Context, sheetID string) ([]sheet.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, sheet_id, title, difficulty, url, topic FROM questions WHERE sheet_id = ?", sheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []sheet.Question
	for rows.Next() {
		var q sheet.Question
		var difficulty string
		if err := rows.Scan(&q.ID, &q.SheetID, &q.Title, &difficulty, &q.URL, &q.Topic); err != nil {
			return nil, err
		}
		q.Difficulty = sheet.Difficulty(difficulty)
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) SaveSheet(ctx context.Context, sh *sheet.Sheet) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sheets (id, name, description, total_questions) VALUES (?, ?, ?, ?)",
		sh.ID, sh.Name, sh.Description, sh.TotalQuestions)
	return err
}

func (s *SQLiteStore) AddQuestion(ctx context.Context, sheetID string, q sheet.Question) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO questions (id, sheet_id, title, difficulty, url, topic) VALUES (?, ?, ?, ?, ?, ?)",
		q.ID, sheetID, q.Title, string(q.Difficulty), q.URL, q.Topic)
	return err
}

func (s *SQLiteStore) CountSheets(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sheets").Scan(&n)
	return n, err
}

// ============================================================================
// Status records
// ============================================================================

func (s *SQLiteStore) ListUserStatus(ctx context.Context, userID string) ([]UserStatus, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT question_id, status, last_updated FROM user_question_status WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []UserStatus
	for rows.Next() {
		var us UserStatus
		var status, lastUpdated string
		if err := rows.Scan(&us.QuestionID, &status, &lastUpdated); err != nil {
			return nil, err
		}
		us.Status = progress.Status(status)
		us.LastUpdated, err = parseTimestamp(lastUpdated)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, us)
	}
	return statuses, rows.Err()
}

func (s *SQLiteStore) FindStatus(ctx context.Context, userID, questionID string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM user_question_status WHERE user_id = ? AND question_id = ?",
		userID, questionID).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *SQLiteStore) InsertStatus(ctx context.Context, userID, questionID string, status progress.Status, lastUpdated time.Time) (time.Time, error) {
	stamp := formatTimestamp(lastUpdated)
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO user_question_status (user_id, question_id, status, last_updated) VALUES (?, ?, ?, ?)",
		userID, questionID, string(status), stamp)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return time.Time{}, ErrDuplicate
		}
		return time.Time{}, err
	}
	return s.confirmedTimestamp(ctx, userID, questionID)
}

func (s *SQLiteStore) UpdateStatus(ctx context.Context, userID, questionID string, status progress.Status, lastUpdated time.Time) (time.Time, error) {
	stamp := formatTimestamp(lastUpdated)
	result, err := s.db.ExecContext(ctx,
		"UPDATE user_question_status SET status = ?, last_updated = ? WHERE user_id = ? AND question_id = ?",
		string(status), stamp, userID, questionID)
	if err != nil {
		return time.Time{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return time.Time{}, err
	}
	if rowsAffected == 0 {
		return time.Time{}, ErrNotFound
	}
	return s.confirmedTimestamp(ctx, userID, questionID)
}

// confirmedTimestamp reads back the stored last_updated so callers get
// the value the store actually persisted, not the one they sent.
func (s *SQLiteStore) confirmedTimestamp(ctx context.Context, userID, questionID string) (time.Time, error) {
	var stamp string
	err := s.db.QueryRowContext(ctx,
		"SELECT last_updated FROM user_question_status WHERE user_id = ? AND question_id = ?",
		userID, questionID).Scan(&stamp)
	if err != nil {
		return time.Time{}, err
	}
	return parseTimestamp(stamp)
}

func (s *SQLiteStore) ListStatusTimestamps(ctx context.Context, userID string, questionIDs []string) ([]StatusTimestamp, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(questionIDs)), ",")

	args := make([]any, 0, len(questionIDs)+1)
	args = append(args, userID)
	for _, qid := range questionIDs {
		args = append(args, qid)
	}

	query := fmt.Sprintf(
		"SELECT question_id, last_updated FROM user_question_status WHERE user_id = ? AND question_id IN (%s)",
		placeholders)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stamps []StatusTimestamp
	for rows.Next() {
		var st StatusTimestamp
		var stamp string
		if err := rows.Scan(&st.QuestionID, &stamp); err != nil {
			return nil, err
		}
		st.LastUpdated, err = parseTimestamp(stamp)
		if err != nil {
			return nil, err
		}
		stamps = append(stamps, st)
	}
	return stamps, rows.Err()
}

// Timestamps are stored as RFC3339 in UTC so day bucketing never
// depends on the client's zone.

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed last_updated %q: %w", s, err)
	}
	return t.UTC(), nil
}
