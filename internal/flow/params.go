package flow

// Params collects the numeric dials of the flow engine. The defaults are the
// tuned production values; a config file can override individual fields.
type Params struct {
	MinImpression float64 `yaml:"min_impression"`
	MaxImpression float64 `yaml:"max_impression"`
	MaxTempFlow   float64 `yaml:"max_temp_flow"`
	MinTempFlow   float64 `yaml:"min_temp_flow"`

	Decay    DecayParams    `yaml:"decay"`
	Behavior BehaviorParams `yaml:"behavior"`
	Levels   LevelParams    `yaml:"levels"`
}

// DecayParams controls how momentum cools while the user is away.
type DecayParams struct {
	// Hourly temp-flow decay, piecewise by idle age.
	RateFirstHalfDay float64 `yaml:"rate_first_half_day"`
	RateUpToTwoDays  float64 `yaml:"rate_up_to_two_days"`
	RateBeyond       float64 `yaml:"rate_beyond"`

	// Impression cooling after a long absence.
	CoolingIdleDays float64 `yaml:"cooling_idle_days"`
	CoolingPerDay   float64 `yaml:"cooling_per_day"`
	CoolingCap      float64 `yaml:"cooling_cap"`
}

// BehaviorParams weights the daily ledger flags and the boosts derived from
// the weekly score.
type BehaviorParams struct {
	PresentPoints  int `yaml:"present_points"`
	FocusedPoints  int `yaml:"focused_points"`
	MetGoalPoints  int `yaml:"met_goal_points"`
	OverGoalPoints int `yaml:"over_goal_points"`

	FatigueFloor float64 `yaml:"fatigue_floor"`
	FatigueSlope float64 `yaml:"fatigue_slope"`

	// Over-goal means the day's focus minutes exceed this multiple of the
	// daily goal.
	OverGoalFactor float64 `yaml:"over_goal_factor"`
}

// LevelParams holds the flow-index level cut points.
type LevelParams struct {
	Peak     float64 `yaml:"peak"`
	HighFlow float64 `yaml:"high_flow"`
	Rising   float64 `yaml:"rising"`
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MinImpression: 35,
		MaxImpression: 97,
		MaxTempFlow:   45,
		MinTempFlow:   -20,

		Decay: DecayParams{
			RateFirstHalfDay: 0.35,
			RateUpToTwoDays:  0.65,
			RateBeyond:       1.1,
			CoolingIdleDays:  7,
			CoolingPerDay:    0.35,
			CoolingCap:       8,
		},

		Behavior: BehaviorParams{
			PresentPoints:  1,
			FocusedPoints:  3,
			MetGoalPoints:  8,
			OverGoalPoints: 10,
			FatigueFloor:   0.2,
			FatigueSlope:   12,
			OverGoalFactor: 1.2,
		},

		Levels: LevelParams{
			Peak:     85,
			HighFlow: 60,
			Rising:   40,
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// norm maps v into [0,1] over the given range.
func norm(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp((v-lo)/(hi-lo), 0, 1)
}
