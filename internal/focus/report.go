package focus

import "time"

// CloseReport describes a session that just reached a terminal state. It is
// handed to the reporter exactly once per session.
type CloseReport struct {
	SessionID      string
	Minutes        int
	PlannedMinutes int
	Rating         *float64
	Completed      bool
	GoalReached    bool
	WasAgitated    bool
	StartedAt      time.Time
	ClosedAt       time.Time
}

// CloseReporter consumes terminal session reports.
type CloseReporter interface {
	ReportClose(report CloseReport) error
}
