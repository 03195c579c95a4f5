package session

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// runTickMsg is sent every second while a session is running or paused.
type runTickMsg time.Time

// countdownTickMsg is sent every second during the pre-start countdown.
type countdownTickMsg time.Time

// decayTickMsg drives the agitation score decay on its own cadence.
type decayTickMsg time.Time

func runTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return runTickMsg(t)
	})
}

func countdownTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

func decayTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return decayTickMsg(t)
	})
}
