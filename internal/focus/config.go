package focus

import "time"

// Config holds the timing knobs of the session machine.
type Config struct {
	CountdownSeconds int           `yaml:"countdown_seconds"`
	AutosaveRunning  time.Duration `yaml:"autosave_running"`
	AutosavePaused   time.Duration `yaml:"autosave_paused"`
	Expiry           time.Duration `yaml:"expiry"`
}

// DefaultConfig returns the stock timing parameters.
func DefaultConfig() Config {
	return Config{
		CountdownSeconds: 3,
		AutosaveRunning:  10 * time.Second,
		AutosavePaused:   30 * time.Second,
		Expiry:           24 * time.Hour,
	}
}
