package agitation

import "time"

// Config holds the scoring knobs of the agitation monitor.
type Config struct {
	HiddenDelta     float64       `yaml:"hidden_delta"`
	BlurDelta       float64       `yaml:"blur_delta"`
	PointerDelta    float64       `yaml:"pointer_delta"`
	HoverDelta      float64       `yaml:"hover_delta"`
	HiddenDebounce  time.Duration `yaml:"hidden_debounce"`
	BlurDebounce    time.Duration `yaml:"blur_debounce"`
	PointerDebounce time.Duration `yaml:"pointer_debounce"`
	HoverDebounce   time.Duration `yaml:"hover_debounce"`

	PointerWindow       time.Duration `yaml:"pointer_window"`
	PointerTravelPixels float64       `yaml:"pointer_travel_pixels"`
	PointerReversals    int           `yaml:"pointer_reversals"`
	HoverWindow         time.Duration `yaml:"hover_window"`
	HoverCount          int           `yaml:"hover_count"`

	DecayInterval time.Duration `yaml:"decay_interval"`
	DecayHigh     float64       `yaml:"decay_high"`
	DecayMid      float64       `yaml:"decay_mid"`
	DecayLow      float64       `yaml:"decay_low"`

	Tier1Enter float64 `yaml:"tier1_enter"`
	Tier2Enter float64 `yaml:"tier2_enter"`
	Tier3Enter float64 `yaml:"tier3_enter"`
	Tier1Hold  float64 `yaml:"tier1_hold"`
	Tier2Hold  float64 `yaml:"tier2_hold"`

	// MaxScore caps the running score so a burst of signals cannot dig a
	// hole the decay takes minutes to climb out of.
	MaxScore float64 `yaml:"max_score"`

	NotifyCooldown time.Duration `yaml:"notify_cooldown"`
}

// DefaultConfig returns the stock monitor tuning.
func DefaultConfig() Config {
	return Config{
		HiddenDelta:     28,
		BlurDelta:       20,
		PointerDelta:    14,
		HoverDelta:      10,
		HiddenDebounce:  2500 * time.Millisecond,
		BlurDebounce:    2500 * time.Millisecond,
		PointerDebounce: 5 * time.Second,
		HoverDebounce:   4 * time.Second,

		PointerWindow:       6 * time.Second,
		PointerTravelPixels: 4200,
		PointerReversals:    18,
		HoverWindow:         10 * time.Second,
		HoverCount:          4,

		DecayInterval: 4 * time.Second,
		DecayHigh:     4,
		DecayMid:      6,
		DecayLow:      8,

		Tier1Enter: 55,
		Tier2Enter: 85,
		Tier3Enter: 115,
		Tier1Hold:  35,
		Tier2Hold:  65,

		MaxScore: 150,

		NotifyCooldown: 20 * time.Second,
	}
}
