package flow

// DayFlags are the four behaviors the daily ledger tracks. They only ever
// flip on; a day never un-earns a flag.
type DayFlags struct {
	Present  bool `json:"present"`
	Focused  bool `json:"focused"`
	MetGoal  bool `json:"metGoal"`
	OverGoal bool `json:"overGoal"`
}

// Merge ORs another day's flags in.
func (f DayFlags) Merge(other DayFlags) DayFlags {
	return DayFlags{
		Present:  f.Present || other.Present,
		Focused:  f.Focused || other.Focused,
		MetGoal:  f.MetGoal || other.MetGoal,
		OverGoal: f.OverGoal || other.OverGoal,
	}
}

// Points scores one day under the given weights.
func (f DayFlags) Points(p BehaviorParams) int {
	pts := 0
	if f.Present {
		pts += p.PresentPoints
	}
	if f.Focused {
		pts += p.FocusedPoints
	}
	if f.MetGoal {
		pts += p.MetGoalPoints
	}
	if f.OverGoal {
		pts += p.OverGoalPoints
	}
	return pts
}

// WeeklySnapshot is the trailing-week behavior score. Normalized divides the
// raw points by the weekly maximum, so 1.0 means every flag on every day.
type WeeklySnapshot struct {
	Normalized float64
	RawPoints  int
	DaysSeen   int
}

// WeeklyScore folds up to seven day entries into a snapshot. Days missing
// from the ledger simply contribute nothing; the denominator is always the
// full week.
func WeeklyScore(days []DayFlags, p BehaviorParams) WeeklySnapshot {
	perDayMax := DayFlags{Present: true, Focused: true, MetGoal: true, OverGoal: true}.Points(p)
	raw := 0
	for _, d := range days {
		raw += d.Points(p)
	}
	max := perDayMax * 7
	snap := WeeklySnapshot{RawPoints: raw, DaysSeen: len(days)}
	if max > 0 {
		snap.Normalized = clamp(float64(raw)/float64(max), 0, 1)
	}
	return snap
}

// PositiveBoost scales rewards by how good the week has been. A strong week
// amplifies wins; a dead week mutes them.
func PositiveBoost(weekly float64) float64 {
	switch {
	case weekly >= 0.85:
		return 1.35
	case weekly >= 0.7:
		return 1.2
	case weekly >= 0.55:
		return 1.1
	case weekly >= 0.4:
		return 1.0
	case weekly >= 0.25:
		return 0.85
	default:
		return 0.7
	}
}

// NegativeBoost scales penalties the other way: a weak week makes failures
// sting more.
func NegativeBoost(weekly float64) float64 {
	switch {
	case weekly >= 0.5:
		return 1.0
	case weekly >= 0.3:
		return 1.15
	default:
		return 1.35
	}
}

// FatiguePenalty is a flat momentum deduction for a week below the floor.
func FatiguePenalty(weekly float64, p BehaviorParams) float64 {
	if weekly >= p.FatigueFloor {
		return 0
	}
	return (p.FatigueFloor - weekly) * p.FatigueSlope
}
