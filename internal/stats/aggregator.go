// Package stats derives the dashboard projections from the catalog and
// the per-user status records. Every projection is recomputed on each
// call; nothing here is cached or persisted.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/dsaprep/backend/internal/catalog"
	"github.com/dsaprep/backend/internal/domain/progress"
	"github.com/dsaprep/backend/internal/store"
)

// DailyWindowDays is the length of the trailing activity window.
const DailyWindowDays = 14

// StatusReader is the read-only view of the status cache the aggregator
// needs. *service.StatusStore satisfies it.
type StatusReader interface {
	Get(userID, questionID string) progress.StatusRecord
	UserRecords(userID string) map[string]progress.StatusRecord
}

// SheetStatistic folds one sheet's questions into the four status
// buckets. TotalQuestions is the count of questions actually loaded,
// not the sheet's declared total.
type SheetStatistic struct {
	SheetID        string `json:"sheet_id"`
	SheetName      string `json:"sheet_name"`
	Completed      int    `json:"completed"`
	Revision       int    `json:"revision"`
	Redo           int    `json:"redo"`
	Todo           int    `json:"todo"`
	TotalQuestions int    `json:"total_questions"`
}

// CompletionPercent returns completed/total rounded down, with an empty
// sheet reporting 0 rather than dividing by zero.
func (s SheetStatistic) CompletionPercent() int {
	if s.TotalQuestions == 0 {
		return 0
	}
	return s.Completed * 100 / s.TotalQuestions
}

// TopicStatistic aggregates across all sheets; topics are free-text
// labels matched exactly, case-sensitive.
type TopicStatistic struct {
	Topic     string `json:"topic"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// DailyProgress is one calendar day (UTC, ISO form) of completions.
type DailyProgress struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// Aggregator projects (catalog, statuses) into view-facing aggregates.
// It never mutates either input. DailyProgress is the one operation
// that performs I/O.
type Aggregator struct {
	catalog  *catalog.Catalog
	statuses StatusReader
	store    store.Store
	logger   *slog.Logger

	now func() time.Time // swapped in tests
}

func New(c *catalog.Catalog, statuses StatusReader, s store.Store, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		catalog:  c,
		statuses: statuses,
		store:    s,
		logger:   logger,
		now:      time.Now,
	}
}

// QuestionsWithStatus joins every question in a sheet with the user's
// current record, defaulting to todo with no timestamp. Returns an
// empty slice for an unknown sheet. Order is catalog fetch order.
func (a *Aggregator) QuestionsWithStatus(userID, sheetID string) []progress.QuestionWithStatus {
	questions := a.catalog.Questions(sheetID)
	out := make([]progress.QuestionWithStatus, len(questions))
	for i, q := range questions {
		rec := a.statuses.Get(userID, q.ID)
		out[i] = progress.QuestionWithStatus{
			Question:    q,
			Status:      rec.Status,
			LastUpdated: rec.LastUpdated,
		}
	}
	return out
}

// SheetStatistics folds every sheet's loaded questions into the four
// status buckets. The buckets always sum to the loaded question count.
func (a *Aggregator) SheetStatistics(userID string) []SheetStatistic {
	out := make([]SheetStatistic, len(a.catalog.Sheets))
	for i, sh := range a.catalog.Sheets {
		stat := SheetStatistic{SheetID: sh.ID, SheetName: sh.Name}
		for _, q := range a.catalog.Questions(sh.ID) {
			switch a.statuses.Get(userID, q.ID).Status {
			case progress.StatusCompleted:
				stat.Completed++
			case progress.StatusRevision:
				stat.Revision++
			case progress.StatusRedo:
				stat.Redo++
			default:
				stat.Todo++
			}
			stat.TotalQuestions++
		}
		out[i] = stat
	}
	return out
}

// TopicStatistics groups all questions across all sheets by their topic
// label. A topic appearing in several sheets yields one merged entry;
// entries are ordered by first appearance in the catalog.
func (a *Aggregator) TopicStatistics(userID string) []TopicStatistic {
	index := make(map[string]int)
	var out []TopicStatistic

	for _, q := range a.catalog.AllQuestions() {
		i, ok := index[q.Topic]
		if !ok {
			i = len(out)
			index[q.Topic] = i
			out = append(out, TopicStatistic{Topic: q.Topic})
		}
		out[i].Total++
		if a.statuses.Get(userID, q.ID).Status == progress.StatusCompleted {
			out[i].Completed++
		}
	}
	return out
}

// DailyProgress builds a dense window of the last 14 UTC calendar days
// ending today. Timestamps for currently-completed questions are
// fetched fresh from the store; completions outside the window are
// dropped. A store failure is logged and swallowed: the caller always
// gets the full-length series, zero-filled on error, so the chart
// still renders.
func (a *Aggregator) DailyProgress(ctx context.Context, userID string) []DailyProgress {
	today := a.now().UTC().Truncate(24 * time.Hour)

	out := make([]DailyProgress, DailyWindowDays)
	buckets := make(map[string]int, DailyWindowDays)
	for i := range out {
		date := today.AddDate(0, 0, i-(DailyWindowDays-1)).Format(time.DateOnly)
		out[i] = DailyProgress{Date: date}
		buckets[date] = 0
	}

	var completedIDs []string
	for qid, rec := range a.statuses.UserRecords(userID) {
		if rec.Status == progress.StatusCompleted {
			completedIDs = append(completedIDs, qid)
		}
	}
	if len(completedIDs) == 0 {
		return out
	}

	stamps, err := a.store.ListStatusTimestamps(ctx, userID, completedIDs)
	if err != nil {
		a.logger.Error("daily progress fetch failed", "user_id", userID, "error", err)
		return out
	}

	for _, st := range stamps {
		date := st.LastUpdated.UTC().Format(time.DateOnly)
		if _, ok := buckets[date]; ok {
			buckets[date]++
		}
	}
	for i := range out {
		out[i].Completed = buckets[out[i].Date]
	}
	return out
}
