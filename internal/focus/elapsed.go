package focus

import "time"

// Elapsed computes the focused seconds for a session from timestamps alone.
// Tick counters drift or freeze while the host is suspended, so elapsed time
// is always derived fresh from the start timestamp, never accumulated.
//
// pauseStart is ignored unless pausedNow is true. The result is floored at 0.
func Elapsed(start time.Time, cumulativePauseSeconds int, pausedNow bool, pauseStart time.Time, now time.Time) int {
	if start.IsZero() {
		return 0
	}

	elapsed := int(now.Sub(start)/time.Second) - cumulativePauseSeconds

	if pausedNow && !pauseStart.IsZero() {
		elapsed -= int(now.Sub(pauseStart) / time.Second)
	}

	if elapsed < 0 {
		return 0
	}
	return elapsed
}
