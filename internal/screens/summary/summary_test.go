package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/focus"
)

func testReport(completed bool) focus.CloseReport {
	rating := 3.0
	return focus.CloseReport{
		SessionID:      "test-session",
		Minutes:        25,
		PlannedMinutes: 25,
		Rating:         &rating,
		Completed:      completed,
		GoalReached:    true,
		StartedAt:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		ClosedAt:       time.Date(2026, 3, 10, 9, 25, 0, 0, time.UTC),
	}
}

func TestSummaryHeadline(t *testing.T) {
	idx := flow.Index{Score: 62, Level: flow.LevelHighFlow}

	done := New(testReport(true), idx, 25, 60)
	if !strings.Contains(done.View(80, 24), "Session complete!") {
		t.Error("completed report should render the complete headline")
	}

	short := New(testReport(false), idx, 25, 60)
	if !strings.Contains(short.View(80, 24), "Session cut short") {
		t.Error("interrupted report should render the cut-short headline")
	}
}

func TestSummaryShowsFlowLevel(t *testing.T) {
	idx := flow.Index{Score: 91, Level: flow.LevelPeak}
	view := New(testReport(true), idx, 25, 60).View(80, 24)

	if !strings.Contains(view, "Peak flow") {
		t.Error("expected the flow level label in the view")
	}
	if !strings.Contains(view, "25 of 25 minutes") {
		t.Error("expected the duration line in the view")
	}
}

func TestRatingWord(t *testing.T) {
	cases := []struct {
		rating float64
		want   string
	}{
		{1, "rough"},
		{2, "okay"},
		{3, "great"},
	}
	for _, tc := range cases {
		if got := ratingWord(tc.rating); got != tc.want {
			t.Errorf("ratingWord(%v) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}
