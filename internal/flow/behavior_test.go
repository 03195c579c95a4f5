package flow

import "testing"

func allFlags() DayFlags {
	return DayFlags{Present: true, Focused: true, MetGoal: true, OverGoal: true}
}

func TestDayPoints(t *testing.T) {
	p := DefaultParams().Behavior

	tests := []struct {
		name  string
		flags DayFlags
		want  int
	}{
		{"empty day", DayFlags{}, 0},
		{"present only", DayFlags{Present: true}, 1},
		{"present and focused", DayFlags{Present: true, Focused: true}, 4},
		{"goal met", DayFlags{Present: true, Focused: true, MetGoal: true}, 12},
		{"everything", allFlags(), 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Points(p); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeeklyScore(t *testing.T) {
	p := DefaultParams().Behavior

	perfect := make([]DayFlags, 7)
	for i := range perfect {
		perfect[i] = allFlags()
	}
	snap := WeeklyScore(perfect, p)
	if !almost(snap.Normalized, 1.0) {
		t.Errorf("perfect week normalized = %v, want 1", snap.Normalized)
	}
	if snap.RawPoints != 154 {
		t.Errorf("perfect week raw = %d, want 154", snap.RawPoints)
	}

	// Missing days count as zero against the full-week denominator.
	three := []DayFlags{allFlags(), allFlags(), allFlags()}
	snap = WeeklyScore(three, p)
	if !almost(snap.Normalized, 66.0/154) {
		t.Errorf("three full days normalized = %v, want %v", snap.Normalized, 66.0/154)
	}
	if snap.DaysSeen != 3 {
		t.Errorf("DaysSeen = %d, want 3", snap.DaysSeen)
	}

	snap = WeeklyScore(nil, p)
	if snap.Normalized != 0 || snap.RawPoints != 0 {
		t.Errorf("empty week = %+v, want zeros", snap)
	}
}

func TestPositiveBoostTiers(t *testing.T) {
	tests := []struct {
		weekly float64
		want   float64
	}{
		{0.9, 1.35},
		{0.85, 1.35},
		{0.7, 1.2},
		{0.6, 1.1},
		{0.4, 1.0},
		{0.3, 0.85},
		{0.1, 0.7},
	}
	for _, tt := range tests {
		if got := PositiveBoost(tt.weekly); got != tt.want {
			t.Errorf("PositiveBoost(%v) = %v, want %v", tt.weekly, got, tt.want)
		}
	}
}

func TestNegativeBoostTiers(t *testing.T) {
	tests := []struct {
		weekly float64
		want   float64
	}{
		{0.8, 1.0},
		{0.5, 1.0},
		{0.4, 1.15},
		{0.1, 1.35},
	}
	for _, tt := range tests {
		if got := NegativeBoost(tt.weekly); got != tt.want {
			t.Errorf("NegativeBoost(%v) = %v, want %v", tt.weekly, got, tt.want)
		}
	}
}

func TestFatiguePenalty(t *testing.T) {
	p := DefaultParams().Behavior

	if got := FatiguePenalty(0.5, p); got != 0 {
		t.Errorf("healthy week penalty = %v, want 0", got)
	}
	if got := FatiguePenalty(0.2, p); got != 0 {
		t.Errorf("boundary penalty = %v, want 0", got)
	}
	if got := FatiguePenalty(0.1, p); !almost(got, 0.1*12) {
		t.Errorf("weak week penalty = %v, want %v", got, 0.1*12)
	}
	if got := FatiguePenalty(0, p); !almost(got, 2.4) {
		t.Errorf("dead week penalty = %v, want 2.4", got)
	}
}

func TestMergeOnlyFlipsOn(t *testing.T) {
	a := DayFlags{Present: true}
	b := DayFlags{Focused: true, MetGoal: true}
	got := a.Merge(b)
	want := DayFlags{Present: true, Focused: true, MetGoal: true}
	if got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}
