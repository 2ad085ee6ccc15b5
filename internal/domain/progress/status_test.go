package progress_test

import (
	"testing"

	"github.com/dsaprep/backend/internal/domain/progress"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"todo", "completed", "revision", "redo"} {
		status, err := progress.ParseStatus(valid)
		if err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("expected status %q, got %q", valid, status)
		}
	}

	for _, invalid := range []string{"", "done", "Completed", "TODO"} {
		if _, err := progress.ParseStatus(invalid); err == nil {
			t.Errorf("expected %q to fail parsing", invalid)
		}
	}
}

func TestAcknowledgment(t *testing.T) {
	cases := []struct {
		status progress.Status
		want   string
	}{
		{progress.StatusCompleted, "Completed"},
		{progress.StatusRevision, "Marked for revision"},
		{progress.StatusRedo, "Marked to do again"},
		{progress.StatusTodo, "Added to todo"},
	}

	for _, tc := range cases {
		if got := tc.status.Acknowledgment(); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.status, tc.want, got)
		}
	}
}

func TestDefault(t *testing.T) {
	rec := progress.Default()

	if rec.Status != progress.StatusTodo {
		t.Errorf("expected default status todo, got %q", rec.Status)
	}
	if !rec.LastUpdated.IsZero() {
		t.Errorf("expected zero timestamp, got %v", rec.LastUpdated)
	}
}
