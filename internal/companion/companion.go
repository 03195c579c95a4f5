// Package companion models the on-screen companion creature: the short
// notices it speaks, the animation it plays while speaking, and the sound
// cues that accompany session milestones.
package companion

import "time"

// Severity grades how worked up the companion is when it speaks.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
)

func (s Severity) String() string {
	switch s {
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	default:
		return "info"
	}
}

// Animation hints which sprite loop the companion should play while a notice
// is visible.
type Animation string

const (
	AnimationIdle    Animation = "idle"
	AnimationCheer   Animation = "cheer"
	AnimationWorried Animation = "worried"
	AnimationUpset   Animation = "upset"
	AnimationSleepy  Animation = "sleepy"
)

// Notice is one utterance from the companion.
type Notice struct {
	Text      string
	Duration  time.Duration
	Animation Animation
	Severity  Severity
}

// Notifier shows companion notices. Implementations decide presentation; a
// later notice replaces an earlier one that is still visible.
type Notifier interface {
	Notify(n Notice)
}

// CueID names a sound effect.
type CueID string

const (
	CueSessionStart CueID = "session_start"
	CueGoalReached  CueID = "goal_reached"
	CueSessionDone  CueID = "session_done"
	CueInterrupted  CueID = "interrupted"
	CueAgitated     CueID = "agitated"
)

// SoundCue plays short feedback sounds. Implementations must be safe to call
// from the UI loop and must never block.
type SoundCue interface {
	PlayCue(id CueID)
}

// NopNotifier discards notices.
type NopNotifier struct{}

func (NopNotifier) Notify(Notice) {}

// NopSound discards cues.
type NopSound struct{}

func (NopSound) PlayCue(CueID) {}
