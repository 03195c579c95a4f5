package flow

import "time"

// ApplyDecay cools the two scores by the time elapsed since the last decay
// stamp. TempFlowScore fades with a piecewise hourly rate over the idle span;
// ImpressionScore only after a week without a session, capped so a vacation
// does not wipe out a year of habit. Idle spans under one hour are a no-op,
// and the stamp moves with the decay, so calling twice with the same now
// changes nothing.
func ApplyDecay(m *Metrics, p Params, now time.Time) {
	if m.LastDecayAt == nil {
		t := now
		m.LastDecayAt = &t
		return
	}
	hours := now.Sub(*m.LastDecayAt).Hours()
	if hours < 1 {
		return
	}

	decayMomentum(m, p.Decay, hours)
	coolImpression(m, p, now)

	t := now
	m.LastDecayAt = &t
}

// decayMomentum applies the piecewise hourly rate. Negative scores recover
// toward zero at half rate, so a bad patch is not erased overnight.
func decayMomentum(m *Metrics, d DecayParams, hours float64) {
	var amount float64
	switch {
	case hours <= 12:
		amount = hours * d.RateFirstHalfDay
	case hours <= 48:
		amount = 12*d.RateFirstHalfDay + (hours-12)*d.RateUpToTwoDays
	default:
		amount = 12*d.RateFirstHalfDay + 36*d.RateUpToTwoDays + (hours-48)*d.RateBeyond
	}

	switch {
	case m.TempFlowScore > 0:
		m.TempFlowScore -= amount
		if m.TempFlowScore < 0 {
			m.TempFlowScore = 0
		}
	case m.TempFlowScore < 0:
		m.TempFlowScore += amount / 2
		if m.TempFlowScore > 0 {
			m.TempFlowScore = 0
		}
	}
}

func coolImpression(m *Metrics, p Params, now time.Time) {
	if m.LastSessionAt == nil {
		return
	}
	days := now.Sub(*m.LastSessionAt).Hours() / 24
	d := p.Decay
	if days <= d.CoolingIdleDays {
		return
	}
	cooling := (days - d.CoolingIdleDays) * d.CoolingPerDay
	if cooling > d.CoolingCap {
		cooling = d.CoolingCap
	}
	m.ImpressionScore = clamp(m.ImpressionScore-cooling, p.MinImpression, p.MaxImpression)
}
