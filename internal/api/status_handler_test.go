package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dsaprep/backend/internal/api"
	"github.com/dsaprep/backend/internal/auth"
	"github.com/dsaprep/backend/internal/catalog"
	"github.com/dsaprep/backend/internal/domain/progress"
	"github.com/dsaprep/backend/internal/domain/sheet"
	"github.com/dsaprep/backend/internal/service"
	"github.com/dsaprep/backend/internal/store"
	"github.com/dsaprep/backend/internal/tutor"
)

type fakeStore struct {
	store.Store

	sheets    []*sheet.Sheet
	questions map[string][]sheet.Question
	rows      map[string]map[string]store.UserStatus // userID → questionID → row
}

func (f *fakeStore) ListSheets(ctx context.Context) ([]*sheet.Sheet, error) {
	return f.sheets, nil
}

func (f *fakeStore) ListQuestions(ctx context.Context, sheetID string) ([]sheet.Question, error) {
	return f.questions[sheetID], nil
}

func (f *fakeStore) ListUserStatus(ctx context.Context, userID string) ([]store.UserStatus, error) {
	var out []store.UserStatus
	for _, row := range f.rows[userID] {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeStore) FindStatus(ctx context.Context, userID, questionID string) (string, error) {
	if _, ok := f.rows[userID][questionID]; !ok {
		return "", store.ErrNotFound
	}
	return userID + "/" + questionID, nil
}

func (f *fakeStore) InsertStatus(ctx context.Context, userID, questionID string, status progress.Status, lastUpdated time.Time) (time.Time, error) {
	if f.rows[userID] == nil {
		f.rows[userID] = make(map[string]store.UserStatus)
	}
	f.rows[userID][questionID] = store.UserStatus{QuestionID: questionID, Status: status, LastUpdated: lastUpdated}
	return lastUpdated, nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, userID, questionID string, status progress.Status, lastUpdated time.Time) (time.Time, error) {
	f.rows[userID][questionID] = store.UserStatus{QuestionID: questionID, Status: status, LastUpdated: lastUpdated}
	return lastUpdated, nil
}

// newTestServer wires a handler over one populated sheet and one sheet
// with zero questions, routed and auth-gated like production.
func newTestServer(t *testing.T) (http.Handler, *auth.Verifier, *fakeStore) {
	t.Helper()

	arrays := &sheet.Sheet{ID: "sheet-arrays", Name: "Arrays", TotalQuestions: 1}
	fresh := &sheet.Sheet{ID: "sheet-fresh", Name: "Just Imported", TotalQuestions: 0}
	fs := &fakeStore{
		sheets: []*sheet.Sheet{arrays, fresh},
		questions: map[string][]sheet.Question{
			"sheet-arrays": {
				{ID: "q1", Title: "Two Sum", Difficulty: sheet.DifficultyEasy, Topic: "Array", SheetID: "sheet-arrays"},
			},
		},
		rows: make(map[string]map[string]store.UserStatus),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	loader := catalog.NewLoader(fs)
	cat, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	statuses := service.NewStatusStore()
	ps := service.NewProgressService(fs, statuses, logger)
	is := service.NewInterviewService(&tutor.MockTutor{}, logger)
	h := api.NewHandler(fs, loader, cat, statuses, ps, is, &tutor.MockTutor{}, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, h)

	verifier := auth.NewVerifier("test-secret")
	return verifier.Middleware(mux), verifier, fs
}

func bearerToken(t *testing.T, v *auth.Verifier) string {
	t.Helper()
	token, err := v.GenerateToken("user-1", "alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func TestListSheetQuestions_EmptySheet(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/sheets/sheet-fresh/questions", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a known empty sheet, got %d, body %s", rec.Code, rec.Body.String())
	}
	var questions []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &questions); err != nil {
		t.Fatalf("expected a JSON array, got %s", rec.Body.String())
	}
	if len(questions) != 0 {
		t.Errorf("expected empty array, got %d entries", len(questions))
	}
}

func TestListSheetQuestions_UnknownSheet(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/sheets/no-such-sheet/questions", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown sheet, got %d", rec.Code)
	}
}

func TestSetQuestionStatus_UnknownQuestion(t *testing.T) {
	srv, v, fs := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/questions/q1-typo/status",
		strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Authorization", bearerToken(t, v))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown question, got %d, body %s", rec.Code, rec.Body.String())
	}
	if len(fs.rows["user-1"]) != 0 {
		t.Errorf("expected no orphan record to be persisted, got %+v", fs.rows["user-1"])
	}
}

func TestSetQuestionStatus(t *testing.T) {
	srv, v, fs := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/questions/q1/status",
		strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Authorization", bearerToken(t, v))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp api.SetStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Acknowledgment != "Completed" || resp.QuestionTitle != "Two Sum" {
		t.Errorf("unexpected response %+v", resp)
	}
	if row, ok := fs.rows["user-1"]["q1"]; !ok || row.Status != progress.StatusCompleted {
		t.Errorf("expected persisted record, got %+v", fs.rows["user-1"])
	}
}

func TestSetQuestionStatus_Unauthenticated(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/questions/q1/status",
		strings.NewReader(`{"status":"completed"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}
