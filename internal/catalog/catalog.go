// Package catalog loads the immutable question catalog for a session.
//
// A load is all-or-nothing: if any sheet's questions cannot be fetched
// the whole catalog is discarded, so derived statistics never mix a
// complete sheet list with missing question lists. There is no retry;
// callers re-invoke Load.
package catalog

import (
	"context"
	"fmt"

	"github.com/dsaprep/backend/internal/domain/sheet"
	"github.com/dsaprep/backend/internal/store"
	"github.com/dsaprep/backend/internal/worker"
)

// Catalog is the session-scoped snapshot of sheets and their questions.
// Immutable after Load; question order within a sheet is fetch order.
type Catalog struct {
	Sheets           []*sheet.Sheet
	QuestionsBySheet map[string][]sheet.Question
}

// Questions returns the loaded questions for a sheet, or nil for an
// unknown sheet ID.
func (c *Catalog) Questions(sheetID string) []sheet.Question {
	return c.QuestionsBySheet[sheetID]
}

// AllQuestions flattens every sheet's questions, in sheet order.
func (c *Catalog) AllQuestions() []sheet.Question {
	var all []sheet.Question
	for _, sh := range c.Sheets {
		all = append(all, c.QuestionsBySheet[sh.ID]...)
	}
	return all
}

type Loader struct {
	store store.Store
}

func NewLoader(s store.Store) *Loader {
	return &Loader{store: s}
}

type fetchResult struct {
	sheetID   string
	questions []sheet.Question
	err       error
}

const fetchWorkers = 4

// Load fetches the sheet listing and then every sheet's questions.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	sheets, err := l.store.ListSheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch sheets: %w", err)
	}

	pool := worker.NewPool[fetchResult](fetchWorkers, len(sheets))
	for _, sh := range sheets {
		sheetID := sh.ID
		pool.Submit(sheetID, func() fetchResult {
			questions, err := l.store.ListQuestions(ctx, sheetID)
			return fetchResult{sheetID: sheetID, questions: questions, err: err}
		})
	}
	pool.Close()

	questionsBySheet := make(map[string][]sheet.Question, len(sheets))
	for range sheets {
		result := <-pool.Results()
		if result.Output.err != nil {
			// Drain continues in the background; the catalog is
			// discarded either way.
			return nil, fmt.Errorf("fetch questions for sheet %s: %w", result.Output.sheetID, result.Output.err)
		}
		// Normalize to a non-nil slice so a known-but-empty sheet stays
		// distinguishable from an unknown one in Questions.
		questions := result.Output.questions
		if questions == nil {
			questions = []sheet.Question{}
		}
		questionsBySheet[result.Output.sheetID] = questions
	}

	return &Catalog{
		Sheets:           sheets,
		QuestionsBySheet: questionsBySheet,
	}, nil
}
