package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dsaprep/backend/internal/domain/sheet"
	"github.com/dsaprep/backend/internal/seed"
	"github.com/dsaprep/backend/internal/store"
)

type fakeStore struct {
	store.Store

	existing  int
	sheets    []*sheet.Sheet
	questions map[string][]sheet.Question
}

func (f *fakeStore) CountSheets(ctx context.Context) (int, error) {
	return f.existing + len(f.sheets), nil
}

func (f *fakeStore) SaveSheet(ctx context.Context, s *sheet.Sheet) error {
	f.sheets = append(f.sheets, s)
	return nil
}

func (f *fakeStore) AddQuestion(ctx context.Context, sheetID string, q sheet.Question) error {
	if f.questions == nil {
		f.questions = make(map[string][]sheet.Question)
	}
	f.questions[sheetID] = append(f.questions[sheetID], q)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRun_SeedsEmptyStore(t *testing.T) {
	fs := &fakeStore{}

	if err := seed.Run(context.Background(), fs, discardLogger()); err != nil {
		t.Fatalf("expected seeding to succeed, got %v", err)
	}

	if len(fs.sheets) == 0 {
		t.Fatal("expected built-in sheets to be saved")
	}
	for _, sh := range fs.sheets {
		saved := fs.questions[sh.ID]
		if len(saved) == 0 {
			t.Errorf("sheet %q: expected questions to be saved", sh.Name)
		}
		if sh.TotalQuestions != len(saved) {
			t.Errorf("sheet %q: declared %d questions, saved %d", sh.Name, sh.TotalQuestions, len(saved))
		}
		for _, q := range saved {
			if q.SheetID != sh.ID {
				t.Errorf("question %q: expected sheet ID %s, got %s", q.Title, sh.ID, q.SheetID)
			}
		}
	}
}

func TestRun_SkipsPopulatedStore(t *testing.T) {
	fs := &fakeStore{existing: 3}

	if err := seed.Run(context.Background(), fs, discardLogger()); err != nil {
		t.Fatalf("expected no-op to succeed, got %v", err)
	}
	if len(fs.sheets) != 0 {
		t.Errorf("expected populated store to be left untouched, saved %d sheets", len(fs.sheets))
	}
}
