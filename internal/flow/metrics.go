// Package flow keeps the long-term focus metrics and turns closed sessions
// into the Flow Index, the single number the companion grows by.
package flow

import "time"

// Metrics is the persistent flow state for one user. Two scores carry the
// model: ImpressionScore is the slow-moving reputation of the habit, and
// TempFlowScore is short-lived momentum that decays within days.
type Metrics struct {
	ImpressionScore float64 `json:"impressionScore"`
	TempFlowScore   float64 `json:"tempFlowScore"`

	AverageRating    float64 `json:"averageRating"`
	CompletionRate   float64 `json:"completionRate"`
	InterruptionRate float64 `json:"interruptionRate"`
	ConsistencyScore float64 `json:"consistencyScore"`
	ImprovementTrend float64 `json:"improvementTrend"`

	SessionCount          int     `json:"sessionCount"`
	TotalFocusMinutes     int     `json:"totalFocusMinutes"`
	AverageSessionMinutes float64 `json:"averageSessionMinutes"`
	LongestSessionMinutes int     `json:"longestSessionMinutes"`

	CurrentStreakDays   int `json:"currentStreakDays"`
	RecentQualityStreak int `json:"recentQualityStreak"`

	LastSessionAt *time.Time `json:"lastSessionAt,omitempty"`
	LastDecayAt   *time.Time `json:"lastDecayAt,omitempty"`
}

// DefaultMetrics returns the state of a brand-new user. The priors are mildly
// optimistic so the first index reading does not start at the floor.
func DefaultMetrics() Metrics {
	return Metrics{
		ImpressionScore:  40,
		TempFlowScore:    0,
		AverageRating:    2.0,
		CompletionRate:   0.7,
		InterruptionRate: 0.2,
		ConsistencyScore: 0.5,
	}
}
