package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultSessionMinutes != 25 {
		t.Errorf("DefaultSessionMinutes = %d, want 25", cfg.DefaultSessionMinutes)
	}
	if cfg.Flow.MaxImpression != 97 {
		t.Errorf("MaxImpression = %v, want 97", cfg.Flow.MaxImpression)
	}
	if cfg.Agitation.Tier1Enter != 55 {
		t.Errorf("Tier1Enter = %v, want 55", cfg.Agitation.Tier1Enter)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `daily_goal_minutes: 90
session:
  countdown_seconds: 5
agitation:
  tier1_enter: 60
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DailyGoalMinutes != 90 {
		t.Errorf("DailyGoalMinutes = %d, want 90", cfg.DailyGoalMinutes)
	}
	if cfg.Session.CountdownSeconds != 5 {
		t.Errorf("CountdownSeconds = %d, want 5", cfg.Session.CountdownSeconds)
	}
	// Untouched fields keep their defaults.
	if cfg.Session.Expiry != 24*time.Hour {
		t.Errorf("Expiry = %v, want 24h", cfg.Session.Expiry)
	}
	if cfg.Agitation.Tier1Enter != 60 {
		t.Errorf("Tier1Enter = %v, want 60", cfg.Agitation.Tier1Enter)
	}
	if cfg.Agitation.Tier2Enter != 85 {
		t.Errorf("Tier2Enter = %v, want 85", cfg.Agitation.Tier2Enter)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("daily_goal_minutes: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("TENDRIL_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("path = %q, want /tmp/custom.yaml", p)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("TENDRIL_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/xdg/tendril/config.yaml" {
		t.Errorf("path = %q", p)
	}
}
