package flow

import (
	"math"
	"testing"
	"time"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func decayedMetrics(temp float64, lastDecayAgo time.Duration, now time.Time) Metrics {
	m := DefaultMetrics()
	m.TempFlowScore = temp
	t := now.Add(-lastDecayAgo)
	m.LastDecayAt = &t
	return m
}

func TestMomentumDecayPiecewise(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	tests := []struct {
		name string
		temp float64
		ago  time.Duration
		want float64
	}{
		{"under an hour is a no-op", 10, 30 * time.Minute, 10},
		{"six hours at the slow rate", 10, 6 * time.Hour, 10 - 6*0.35},
		{"a full day spans two bands", 20, 24 * time.Hour, 20 - (12*0.35 + 12*0.65)},
		{"sixty hours spans all three", 40, 60 * time.Hour, 0}, // 40.8 of decay, floored
		{"negative recovers at half rate", -10, 6 * time.Hour, -10 + 6*0.35/2},
		{"zero stays zero", 0, 24 * time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := decayedMetrics(tt.temp, tt.ago, now)
			ApplyDecay(&m, p, now)
			if !almost(m.TempFlowScore, tt.want) {
				t.Errorf("TempFlowScore = %v, want %v", m.TempFlowScore, tt.want)
			}
		})
	}
}

func TestDecayIdempotentForFixedNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	m := decayedMetrics(10, 6*time.Hour, now)
	ApplyDecay(&m, p, now)
	first := m.TempFlowScore
	ApplyDecay(&m, p, now)
	if !almost(m.TempFlowScore, first) {
		t.Errorf("second decay moved the score: %v -> %v", first, m.TempFlowScore)
	}
}

func TestDecayStampsFirstRun(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	m := DefaultMetrics()
	m.TempFlowScore = 10

	ApplyDecay(&m, DefaultParams(), now)
	if m.TempFlowScore != 10 {
		t.Errorf("first run decayed without a stamp: %v", m.TempFlowScore)
	}
	if m.LastDecayAt == nil || !m.LastDecayAt.Equal(now) {
		t.Errorf("LastDecayAt = %v, want %v", m.LastDecayAt, now)
	}
}

func TestImpressionCooling(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	tests := []struct {
		name    string
		idleAgo time.Duration
		want    float64
	}{
		{"a week off is free", 7 * 24 * time.Hour, 50},
		{"ten days dents it", 10 * 24 * time.Hour, 50 - 3*0.35},
		{"a long absence hits the cap", 40 * 24 * time.Hour, 50 - 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := decayedMetrics(0, tt.idleAgo, now)
			m.ImpressionScore = 50
			last := now.Add(-tt.idleAgo)
			m.LastSessionAt = &last
			ApplyDecay(&m, p, now)
			if !almost(m.ImpressionScore, tt.want) {
				t.Errorf("ImpressionScore = %v, want %v", m.ImpressionScore, tt.want)
			}
		})
	}
}

func TestCoolingRespectsFloor(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	m := decayedMetrics(0, 40*24*time.Hour, now)
	m.ImpressionScore = p.MinImpression + 1
	last := now.Add(-40 * 24 * time.Hour)
	m.LastSessionAt = &last

	ApplyDecay(&m, p, now)
	if m.ImpressionScore != p.MinImpression {
		t.Errorf("ImpressionScore = %v, want floor %v", m.ImpressionScore, p.MinImpression)
	}
}
