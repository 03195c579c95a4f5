package flow

// SessionQuality grades one closed session into [0,1]. The rating carries
// the most weight, then how the duration stacked up against the goal, then
// whether the day's goal was met.
//
// The goal reference is the daily goal when one is set, else the session's
// own minutes floored at 20, so a user without a goal is graded against a
// modest default rather than a trivial one.
func SessionQuality(minutes int, rating float64, dailyGoalMet bool, dailyGoalMinutes int) float64 {
	goalRef := float64(dailyGoalMinutes)
	if goalRef <= 0 {
		goalRef = float64(minutes)
		if goalRef < 20 {
			goalRef = 20
		}
	}

	durationFactor := clamp(float64(minutes)/goalRef, 0, 1)

	completionFactor := 1.0
	if !dailyGoalMet {
		denom := goalRef * 0.6
		if denom < 1 {
			denom = 1
		}
		completionFactor = clamp(float64(minutes)/denom, 0, 1)
	}

	q := rating/3*0.45 + durationFactor*0.35 + completionFactor*0.2
	return clamp(q, 0, 1)
}
