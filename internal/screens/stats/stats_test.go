package stats

import (
	"strings"
	"testing"

	"github.com/ivelina/tendril/internal/flow"
)

func TestStatsViewAfterLoad(t *testing.T) {
	s := New(nil)
	s.Update(statsLoadedMsg{
		Metrics: flow.Metrics{
			ImpressionScore:   58,
			TempFlowScore:     12,
			SessionCount:      14,
			TotalFocusMinutes: 420,
			CurrentStreakDays: 5,
			AverageRating:     2.4,
			CompletionRate:    0.8,
		},
		Index:  flow.Index{Score: 64, Level: flow.LevelHighFlow, Quality: 70, Duration: 50, Consistency: 60},
		Weekly: flow.WeeklySnapshot{Normalized: 0.55},
		Today:  30,
		Week:   180,
	})

	view := s.View(100, 30)
	if !strings.Contains(view, "Flow Index  64") {
		t.Error("expected the flow index headline")
	}
	if !strings.Contains(view, "High flow") {
		t.Error("expected the level label")
	}
	if !strings.Contains(view, "7h 00m") {
		t.Error("expected total focus time formatted in hours")
	}
}

func TestStatsLoadingView(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) == "" {
		t.Error("expected a loading message before data arrives")
	}
}

func TestHumanMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{45, "45 min"},
		{60, "1h 00m"},
		{135, "2h 15m"},
	}
	for _, tc := range cases {
		if got := humanMinutes(tc.minutes); got != tc.want {
			t.Errorf("humanMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
