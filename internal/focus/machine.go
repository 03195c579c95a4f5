package focus

import (
	"errors"
	"fmt"
	"time"

	"github.com/ivelina/tendril/internal/companion"
)

var (
	// ErrNoSession is returned by operations that need an active session.
	ErrNoSession = errors.New("no active session")
	// ErrPauseLimit is returned when the session has used up its pauses.
	ErrPauseLimit = errors.New("pause limit reached")
)

// SessionStore persists the single active session and its markers.
type SessionStore interface {
	SaveActive(s *Session, m Markers) error
	LoadActive() (*Session, Markers, error)
	ClearActive() error
}

// Machine drives a session through its lifecycle. All methods take the
// current time explicitly so behavior is reproducible in tests; production
// callers pass time.Now().
type Machine struct {
	store    SessionStore
	reporter CloseReporter
	notifier companion.Notifier
	sounds   companion.SoundCue
	cfg      Config

	s             *Session
	markers       Markers
	countdownLeft int
}

// NewMachine wires a session machine. reporter may not be nil; notifier and
// sounds may be the Nop implementations.
func NewMachine(store SessionStore, reporter CloseReporter, notifier companion.Notifier, sounds companion.SoundCue, cfg Config) *Machine {
	if notifier == nil {
		notifier = companion.NopNotifier{}
	}
	if sounds == nil {
		sounds = companion.NopSound{}
	}
	return &Machine{
		store:    store,
		reporter: reporter,
		notifier: notifier,
		sounds:   sounds,
		cfg:      cfg,
	}
}

// Session returns the active session, or nil.
func (m *Machine) Session() *Session { return m.s }

// CountdownLeft returns the remaining whole seconds of the start countdown.
func (m *Machine) CountdownLeft() int { return m.countdownLeft }

// Adopt installs a session recovered from storage without touching its state.
func (m *Machine) Adopt(s *Session, markers Markers) {
	m.s = s
	m.markers = markers
}

// Prepare opens a new session in the preparing phase. Any previous session
// must already be terminal or discarded.
func (m *Machine) Prepare(plannedSeconds int) (*Session, error) {
	if m.s != nil && !m.s.Status.Terminal() {
		return nil, fmt.Errorf("prepare: session %s still %s", m.s.ID, m.s.Status)
	}
	m.s = NewSession(plannedSeconds)
	m.markers = Markers{}
	m.countdownLeft = 0
	return m.s, nil
}

// SetPlannedDuration adjusts the goal before the session starts.
func (m *Machine) SetPlannedDuration(seconds int) error {
	if m.s == nil {
		return ErrNoSession
	}
	if m.s.Status != StatusPreparing {
		return fmt.Errorf("set duration: session is %s", m.s.Status)
	}
	m.s.PlannedDurationSeconds = seconds
	return nil
}

// BeginCountdown moves preparing to starting and arms the countdown.
func (m *Machine) BeginCountdown(now time.Time) error {
	if m.s == nil {
		return ErrNoSession
	}
	if m.s.Status != StatusPreparing {
		return fmt.Errorf("countdown: session is %s", m.s.Status)
	}
	m.s.Status = StatusStarting
	m.countdownLeft = m.cfg.CountdownSeconds
	if m.countdownLeft <= 0 {
		return m.Begin(now)
	}
	return nil
}

// CountdownTick burns one countdown second. When it hits zero the session
// begins. Returns the seconds still remaining.
func (m *Machine) CountdownTick(now time.Time) (int, error) {
	if m.s == nil {
		return 0, ErrNoSession
	}
	if m.s.Status != StatusStarting {
		return 0, fmt.Errorf("countdown tick: session is %s", m.s.Status)
	}
	m.countdownLeft--
	if m.countdownLeft <= 0 {
		m.countdownLeft = 0
		return 0, m.Begin(now)
	}
	return m.countdownLeft, nil
}

// Begin stamps the start time and moves the session to running.
func (m *Machine) Begin(now time.Time) error {
	if m.s == nil {
		return ErrNoSession
	}
	if m.s.Status != StatusPreparing && m.s.Status != StatusStarting {
		return fmt.Errorf("begin: session is %s", m.s.Status)
	}
	m.s.Status = StatusRunning
	m.s.StartedAt = now
	m.sounds.PlayCue(companion.CueSessionStart)
	m.save(now)
	return nil
}

// Pause opens a pause span. A session gets at most MaxPauses of them.
func (m *Machine) Pause(now time.Time) error {
	if m.s == nil {
		return ErrNoSession
	}
	if m.s.Status != StatusRunning {
		return fmt.Errorf("pause: session is %s", m.s.Status)
	}
	if m.s.PauseCount >= MaxPauses {
		return ErrPauseLimit
	}
	t := now
	m.s.Status = StatusPaused
	m.s.PauseStartedAt = &t
	m.s.PauseCount++
	m.save(now)
	return nil
}

// Resume closes the open pause span and returns the session to running.
//
// If the pause straddled local midnight the sitting no longer belongs to a
// single day: the pre-pause portion is closed out as an interruption dated to
// the day it happened, and a fresh running session is opened for today with
// the same planned duration.
func (m *Machine) Resume(now time.Time) error {
	if m.s == nil {
		return ErrNoSession
	}
	if !m.s.Paused() {
		return fmt.Errorf("resume: session is %s", m.s.Status)
	}
	pauseStart := *m.s.PauseStartedAt

	py, pm, pd := pauseStart.Date()
	ny, nm, nd := now.Date()
	if py != ny || pm != nm || pd != nd {
		planned := m.s.PlannedDurationSeconds
		m.closeOut(pauseStart, StatusInterrupted, nil)
		m.s = NewSession(planned)
		m.markers = Markers{}
		m.s.Status = StatusRunning
		m.s.StartedAt = now
		m.save(now)
		return nil
	}

	m.s.CumulativePauseSeconds += int(now.Sub(pauseStart) / time.Second)
	m.s.PauseStartedAt = nil
	m.s.Status = StatusRunning
	m.save(now)
	return nil
}

// End closes the session on the user's request. It counts as completed when
// the planned duration was reached or the daily goal is already met for the
// day, otherwise it is an interruption. rating is the user's 1..3 verdict and
// may be nil when skipped.
func (m *Machine) End(now time.Time, rating *float64, dailyGoalMet bool) (CloseReport, error) {
	if m.s == nil || m.s.Status.Terminal() {
		return CloseReport{}, ErrNoSession
	}
	status := StatusInterrupted
	planned := m.s.PlannedDurationSeconds
	if (planned > 0 && m.s.ElapsedAt(now) >= planned) || dailyGoalMet {
		status = StatusCompleted
	}
	if status == StatusCompleted {
		m.sounds.PlayCue(companion.CueSessionDone)
	} else {
		m.sounds.PlayCue(companion.CueInterrupted)
	}
	return m.closeOut(now, status, rating), nil
}

// Discard throws away a session that never started.
func (m *Machine) Discard() error {
	m.s = nil
	m.markers = Markers{}
	m.countdownLeft = 0
	return m.store.ClearActive()
}

// TickResult is what one running tick observed.
type TickResult struct {
	ElapsedSeconds  int
	GoalJustReached bool
}

// Tick recomputes elapsed time, fires the one-shot goal celebration, and
// autosaves on the cadence for the current phase.
func (m *Machine) Tick(now time.Time) (TickResult, error) {
	if m.s == nil {
		return TickResult{}, ErrNoSession
	}
	if m.s.Status != StatusRunning && m.s.Status != StatusPaused {
		return TickResult{}, fmt.Errorf("tick: session is %s", m.s.Status)
	}

	res := TickResult{ElapsedSeconds: m.s.ElapsedAt(now)}

	if !m.s.GoalReached && m.s.GoalReachedAt(now) {
		m.s.GoalReached = true
		res.GoalJustReached = true
		m.sounds.PlayCue(companion.CueGoalReached)
		m.notifier.Notify(companion.Notice{
			Text:      "Goal reached! Keep going or wrap up whenever you like.",
			Duration:  6 * time.Second,
			Animation: companion.AnimationCheer,
			Severity:  companion.SeverityInfo,
		})
		m.save(now)
		return res, nil
	}

	cadence := m.cfg.AutosaveRunning
	if m.s.Status == StatusPaused {
		cadence = m.cfg.AutosavePaused
	}
	if m.markers.LastAutosaveAt == nil || now.Sub(*m.markers.LastAutosaveAt) >= cadence {
		m.save(now)
	}
	return res, nil
}

// OnSuspend is called when the host is about to lose the process (terminal
// detach, SIGTSTP, machine sleep). It flushes state and leaves a breadcrumb
// so the next start can tell a suspend from a crash.
func (m *Machine) OnSuspend(now time.Time) {
	if m.s == nil || m.s.Status.Terminal() {
		return
	}
	t := now
	m.markers.SuspectedInterruptionAt = &t
	m.save(now)
}

// OnResumeSignal clears the suspend breadcrumb after the host comes back.
func (m *Machine) OnResumeSignal(now time.Time) {
	if m.s == nil {
		return
	}
	m.markers.SuspectedInterruptionAt = nil
	m.save(now)
}

// MarkAgitated flags the session as having had a distraction escalation.
func (m *Machine) MarkAgitated() {
	if m.s != nil {
		m.s.WasAgitated = true
	}
}

// closeOut finalizes the session and reports it exactly once. The terminal
// session stays persisted with the ended marker so a frozen copy survives a
// reload to show its result; the next session overwrites the slot.
func (m *Machine) closeOut(now time.Time, status Status, rating *float64) CloseReport {
	s := m.s
	if s.Paused() {
		s.CumulativePauseSeconds += int(now.Sub(*s.PauseStartedAt) / time.Second)
		s.PauseStartedAt = nil
	}
	elapsed := s.ElapsedAt(now)
	s.Status = status
	s.ElapsedSnapshotSeconds = elapsed

	report := CloseReport{
		SessionID:      s.ID,
		Minutes:        elapsed / 60,
		PlannedMinutes: s.PlannedDurationSeconds / 60,
		Rating:         rating,
		Completed:      status == StatusCompleted,
		GoalReached:    s.GoalReached,
		WasAgitated:    s.WasAgitated,
		StartedAt:      s.StartedAt,
		ClosedAt:       now,
	}

	if !s.Reported {
		s.Reported = true
		if m.reporter != nil {
			_ = m.reporter.ReportClose(report)
		}
	}

	m.markers.Ended = true
	m.save(now)
	return report
}

func (m *Machine) save(now time.Time) {
	t := now
	m.markers.LastAutosaveAt = &t
	_ = m.store.SaveActive(m.s, m.markers)
}
