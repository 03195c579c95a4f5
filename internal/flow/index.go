package flow

import "math"

// Level is the coarse reading shown to the user.
type Level string

const (
	LevelSprout   Level = "sprout"
	LevelRising   Level = "rising"
	LevelHighFlow Level = "highflow"
	LevelPeak     Level = "peak"
)

// Index is a computed Flow Index reading with its component scores, each in
// [0,100].
type Index struct {
	Score       float64
	Level       Level
	Quality     float64
	Duration    float64
	Consistency float64
}

// ComputeIndex derives the Flow Index from the metrics and the weekly
// behavior score. It is pure: no clock reads, no stored state, so the same
// inputs always produce the same reading.
func ComputeIndex(m Metrics, weekly float64, p Params) Index {
	impressionNorm := norm(m.ImpressionScore, p.MinImpression, p.MaxImpression)
	tempNorm := norm(m.TempFlowScore, p.MinTempFlow, p.MaxTempFlow)

	// Ratings live on a 1..3 scale, so a middling 2 normalizes to 0.5.
	quality := clamp((norm(m.AverageRating, 1, 3)*0.45+
		clamp(m.CompletionRate, 0, 1)*0.25+
		(1-clamp(m.InterruptionRate, 0, 1))*0.15+
		norm(float64(m.RecentQualityStreak), 0, 10)*0.15)*
		(0.85+0.3*tempNorm)*100, 0, 100)

	duration := clamp((easeSqrt(norm(float64(m.TotalFocusMinutes), 0, 6000))*0.5+
		easeSqrt(norm(m.AverageSessionMinutes, 10, 90))*0.3+
		easeSqrt(norm(float64(m.LongestSessionMinutes), 20, 120))*0.2)*100, 0, 100)

	consistency := clamp((clamp(m.ConsistencyScore, 0, 1)*0.3+
		easeSqrt(norm(float64(m.CurrentStreakDays), 0, 21))*0.25+
		clamp(weekly, 0, 1)*0.2+
		impressionNorm*0.15+
		easeSqrt(norm(float64(m.SessionCount), 0, 50))*0.1)*100, 0, 100)

	composite := quality*0.45 + duration*0.25 + consistency*0.3

	// The impression anchor keeps the index from whipsawing on a single
	// great or terrible day.
	anchor := 40 + 55*impressionNorm
	score := composite*0.7 + anchor*0.3

	score *= 0.7 + 0.65*clamp(weekly, 0, 1)
	if weekly < 0.2 {
		score -= (0.2 - weekly) * 40
	}
	score = round1(clamp(score, 0, 100))

	return Index{
		Score:       score,
		Level:       p.Levels.levelFor(score),
		Quality:     round1(quality),
		Duration:    round1(duration),
		Consistency: round1(consistency),
	}
}

// round1 trims a score to one decimal for display and comparison stability.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (l LevelParams) levelFor(score float64) Level {
	switch {
	case score >= l.Peak:
		return LevelPeak
	case score >= l.HighFlow:
		return LevelHighFlow
	case score >= l.Rising:
		return LevelRising
	default:
		return LevelSprout
	}
}

// easeSqrt front-loads progress: early gains move the needle more than the
// grind from good to great.
func easeSqrt(v float64) float64 {
	return math.Sqrt(clamp(v, 0, 1))
}
