package focus

import (
	"fmt"
	"time"

	"github.com/ivelina/tendril/internal/companion"
)

// RecoveryAction says what Recover did with a session it found on disk.
type RecoveryAction int

const (
	RecoveryNone RecoveryAction = iota
	RecoveryCleaned
	RecoveryEnded
	RecoveryInterrupted
	RecoveryExpired
	RecoveryResumedRunning
	RecoveryResumedPaused
)

// RecoveryResult describes the outcome of startup recovery.
type RecoveryResult struct {
	Action  RecoveryAction
	Session *Session
	Report  *CloseReport
}

// Recover inspects the persisted active session after a restart and decides
// its fate. A session that ended before the process died is returned as a
// frozen snapshot for display; one cut off mid-run is closed as interrupted
// with the focused minutes it had accrued; a younger running or paused
// session is adopted so the user can continue it.
func (m *Machine) Recover(now time.Time) (RecoveryResult, error) {
	s, markers, err := m.store.LoadActive()
	if err != nil {
		return RecoveryResult{}, fmt.Errorf("recover: %w", err)
	}
	if s == nil {
		return RecoveryResult{Action: RecoveryNone}, nil
	}

	if markers.Ended || s.Status.Terminal() {
		report := m.frozenReport(s)
		_ = m.store.ClearActive()
		return RecoveryResult{Action: RecoveryEnded, Session: s, Report: &report}, nil
	}

	if s.Status == StatusPreparing || s.Status == StatusStarting {
		_ = m.store.ClearActive()
		return RecoveryResult{Action: RecoveryCleaned}, nil
	}

	if markers.SuspectedInterruptionAt != nil {
		report := m.expire(s, now)
		m.notifier.Notify(companion.Notice{
			Text:      fmt.Sprintf("Looks like your session from %s got cut off. I logged %d minutes as interrupted.", s.StartedAt.Format("15:04"), report.Minutes),
			Duration:  8 * time.Second,
			Animation: companion.AnimationWorried,
			Severity:  companion.SeverityMild,
		})
		return RecoveryResult{Action: RecoveryInterrupted, Report: &report}, nil
	}

	if now.Sub(s.StartedAt) >= m.cfg.Expiry {
		report := m.expire(s, now)
		m.notifier.Notify(companion.Notice{
			Text:      fmt.Sprintf("Your last session sat untouched too long, so I logged %d minutes as interrupted.", report.Minutes),
			Duration:  8 * time.Second,
			Animation: companion.AnimationSleepy,
			Severity:  companion.SeverityMild,
		})
		return RecoveryResult{Action: RecoveryExpired, Report: &report}, nil
	}

	m.Adopt(s, markers)
	if s.Paused() {
		return RecoveryResult{Action: RecoveryResumedPaused, Session: s}, nil
	}
	return RecoveryResult{Action: RecoveryResumedRunning, Session: s}, nil
}

// frozenReport rebuilds the close report of a session that already ended,
// from the snapshot it was persisted with. The session was reported when it
// closed, so this never reaches the reporter again.
func (m *Machine) frozenReport(s *Session) CloseReport {
	return CloseReport{
		SessionID:      s.ID,
		Minutes:        s.ElapsedSnapshotSeconds / 60,
		PlannedMinutes: s.PlannedDurationSeconds / 60,
		Completed:      s.Status == StatusCompleted,
		GoalReached:    s.GoalReached,
		WasAgitated:    s.WasAgitated,
		StartedAt:      s.StartedAt,
	}
}

// expire closes out a session that died with the process. Minutes are
// derived from the start timestamp at recovery time with no open pause span:
// tick counters are dead by now, but the timestamps still tell how long the
// sitting ran before the user came back.
func (m *Machine) expire(s *Session, now time.Time) CloseReport {
	elapsed := Elapsed(s.StartedAt, s.CumulativePauseSeconds, false, time.Time{}, now)

	report := CloseReport{
		SessionID:      s.ID,
		Minutes:        elapsed / 60,
		PlannedMinutes: s.PlannedDurationSeconds / 60,
		Completed:      false,
		GoalReached:    s.GoalReached,
		WasAgitated:    s.WasAgitated,
		StartedAt:      s.StartedAt,
		ClosedAt:       now,
	}
	if m.reporter != nil {
		_ = m.reporter.ReportClose(report)
	}
	_ = m.store.ClearActive()
	return report
}
