package flow

import (
	"math"
	"testing"
)

func strongMetrics() Metrics {
	return Metrics{
		ImpressionScore:       90,
		TempFlowScore:         40,
		AverageRating:         2.9,
		CompletionRate:        0.95,
		InterruptionRate:      0.05,
		ConsistencyScore:      1.0,
		SessionCount:          60,
		TotalFocusMinutes:     5500,
		AverageSessionMinutes: 80,
		LongestSessionMinutes: 120,
		CurrentStreakDays:     21,
		RecentQualityStreak:   10,
	}
}

func TestComputeIndexBounds(t *testing.T) {
	p := DefaultParams()

	for _, weekly := range []float64{0, 0.3, 0.6, 1} {
		for _, m := range []Metrics{DefaultMetrics(), strongMetrics(), {}} {
			idx := ComputeIndex(m, weekly, p)
			if idx.Score < 0 || idx.Score > 100 {
				t.Errorf("score %v out of [0,100]", idx.Score)
			}
			if idx.Quality < 0 || idx.Quality > 100 ||
				idx.Duration < 0 || idx.Duration > 100 ||
				idx.Consistency < 0 || idx.Consistency > 100 {
				t.Errorf("component out of range: %+v", idx)
			}
		}
	}
}

func TestComputeIndexPure(t *testing.T) {
	p := DefaultParams()
	m := strongMetrics()

	a := ComputeIndex(m, 0.8, p)
	b := ComputeIndex(m, 0.8, p)
	if a != b {
		t.Errorf("same inputs diverged: %+v vs %+v", a, b)
	}
}

func TestNewUserStartsLow(t *testing.T) {
	idx := ComputeIndex(DefaultMetrics(), 0, DefaultParams())
	if idx.Level != LevelSprout {
		t.Errorf("new user level = %s, want sprout", idx.Level)
	}
	if idx.Score >= 40 {
		t.Errorf("new user score = %v, want below the rising cut", idx.Score)
	}
}

func TestStrongUserScoresHigh(t *testing.T) {
	idx := ComputeIndex(strongMetrics(), 1, DefaultParams())
	if idx.Score < 85 {
		t.Errorf("strong user score = %v, want >= 85", idx.Score)
	}
	if idx.Level != LevelPeak {
		t.Errorf("strong user level = %s, want peak", idx.Level)
	}
}

func TestWeeklyScoreLiftsIndex(t *testing.T) {
	p := DefaultParams()
	m := strongMetrics()

	low := ComputeIndex(m, 0.1, p)
	high := ComputeIndex(m, 0.9, p)
	if high.Score <= low.Score {
		t.Errorf("weekly 0.9 scored %v, not above weekly 0.1 at %v", high.Score, low.Score)
	}
}

func TestImpressionAnchorsIndex(t *testing.T) {
	p := DefaultParams()

	lowImp := DefaultMetrics()
	lowImp.ImpressionScore = p.MinImpression
	highImp := DefaultMetrics()
	highImp.ImpressionScore = p.MaxImpression

	a := ComputeIndex(lowImp, 0.5, p)
	b := ComputeIndex(highImp, 0.5, p)
	if b.Score <= a.Score {
		t.Errorf("max impression scored %v, not above min impression at %v", b.Score, a.Score)
	}
}

func TestQualityRatingScaleStartsAtOne(t *testing.T) {
	p := DefaultParams()

	// Only the rating term contributes here, and temp flow at its floor
	// pins the multiplier: 0.5 * 0.45 * 0.85 * 100.
	m := Metrics{AverageRating: 2, InterruptionRate: 1, TempFlowScore: p.MinTempFlow}
	idx := ComputeIndex(m, 0, p)
	if !almost(idx.Quality, 19.1) {
		t.Errorf("quality = %v with a middling rating, want 19.1", idx.Quality)
	}

	// Ratings below the bottom of the 1..3 scale grade the same as a 1.
	floor := ComputeIndex(Metrics{AverageRating: 1}, 0.5, p)
	below := ComputeIndex(Metrics{AverageRating: 0.5}, 0.5, p)
	if floor.Quality != below.Quality {
		t.Errorf("rating 1 scored quality %v, rating 0.5 scored %v, want equal", floor.Quality, below.Quality)
	}
}

func TestQualityBucketCapsBeforeCompositing(t *testing.T) {
	p := DefaultParams()

	m := strongMetrics()
	m.AverageRating = 3
	m.CompletionRate = 1
	m.InterruptionRate = 0
	m.TempFlowScore = p.MaxTempFlow
	idx := ComputeIndex(m, 1, p)
	if idx.Quality != 100 {
		t.Errorf("quality component = %v, want capped at 100", idx.Quality)
	}
}

func TestIndexRoundsToOneDecimal(t *testing.T) {
	idx := ComputeIndex(strongMetrics(), 0.8, DefaultParams())
	for _, v := range []float64{idx.Score, idx.Quality, idx.Duration, idx.Consistency} {
		if v != math.Round(v*10)/10 {
			t.Errorf("reading %v carries more than one decimal", v)
		}
	}
}

func TestLevelCutPoints(t *testing.T) {
	l := DefaultParams().Levels

	tests := []struct {
		score float64
		want  Level
	}{
		{0, LevelSprout},
		{39.9, LevelSprout},
		{40, LevelRising},
		{59.9, LevelRising},
		{60, LevelHighFlow},
		{84.9, LevelHighFlow},
		{85, LevelPeak},
		{100, LevelPeak},
	}
	for _, tt := range tests {
		if got := l.levelFor(tt.score); got != tt.want {
			t.Errorf("levelFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
