package focus

import (
	"errors"
	"testing"
	"time"

	"github.com/ivelina/tendril/internal/companion"
)

type mockStore struct {
	saved   *Session
	markers Markers
	cleared bool
}

func (m *mockStore) SaveActive(s *Session, markers Markers) error {
	cp := *s
	m.saved = &cp
	m.markers = markers
	m.cleared = false
	return nil
}

func (m *mockStore) LoadActive() (*Session, Markers, error) {
	if m.saved == nil {
		return nil, Markers{}, nil
	}
	cp := *m.saved
	return &cp, m.markers, nil
}

func (m *mockStore) ClearActive() error {
	m.saved = nil
	m.markers = Markers{}
	m.cleared = true
	return nil
}

type mockReporter struct {
	reports []CloseReport
}

func (m *mockReporter) ReportClose(r CloseReport) error {
	m.reports = append(m.reports, r)
	return nil
}

type mockSound struct {
	cues []companion.CueID
}

func (m *mockSound) PlayCue(id companion.CueID) { m.cues = append(m.cues, id) }

func newTestMachine() (*Machine, *mockStore, *mockReporter, *mockSound) {
	store := &mockStore{}
	rep := &mockReporter{}
	snd := &mockSound{}
	m := NewMachine(store, rep, companion.NopNotifier{}, snd, DefaultConfig())
	return m, store, rep, snd
}

func at(minute, second int) time.Time {
	return time.Date(2026, 3, 10, 9, minute, second, 0, time.UTC)
}

func TestLifecycleCompleted(t *testing.T) {
	m, store, rep, snd := newTestMachine()

	s, err := m.Prepare(25 * 60)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if s.Status != StatusPreparing {
		t.Fatalf("status = %s, want preparing", s.Status)
	}

	if err := m.BeginCountdown(at(0, 0)); err != nil {
		t.Fatalf("BeginCountdown() error: %v", err)
	}
	if s.Status != StatusStarting {
		t.Fatalf("status = %s, want starting", s.Status)
	}
	for range 3 {
		if _, err := m.CountdownTick(at(0, 0)); err != nil {
			t.Fatalf("CountdownTick() error: %v", err)
		}
	}
	if s.Status != StatusRunning {
		t.Fatalf("status after countdown = %s, want running", s.Status)
	}
	if store.saved == nil {
		t.Fatal("Begin did not persist the session")
	}

	rating := 3.0
	report, err := m.End(at(30, 0), &rating, false)
	if err != nil {
		t.Fatalf("End() error: %v", err)
	}
	if !report.Completed {
		t.Error("report.Completed = false")
	}
	if report.Minutes != 30 {
		t.Errorf("report.Minutes = %d, want 30", report.Minutes)
	}
	if report.Rating == nil || *report.Rating != 3.0 {
		t.Errorf("report.Rating = %v, want 3.0", report.Rating)
	}
	if len(rep.reports) != 1 {
		t.Fatalf("reporter got %d reports, want 1", len(rep.reports))
	}
	// The closed session stays persisted as a frozen copy for the next start.
	if store.saved == nil {
		t.Fatal("frozen copy not persisted after close")
	}
	if store.saved.Status != StatusCompleted {
		t.Errorf("frozen copy status = %s, want completed", store.saved.Status)
	}
	if !store.markers.Ended {
		t.Error("ended marker not set on frozen copy")
	}

	wantCues := []companion.CueID{companion.CueSessionStart, companion.CueSessionDone}
	if len(snd.cues) != len(wantCues) {
		t.Fatalf("cues = %v, want %v", snd.cues, wantCues)
	}
}

func TestPauseResume(t *testing.T) {
	m, _, _, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}

	if err := m.Pause(at(10, 0)); err != nil {
		t.Fatalf("Pause() error: %v", err)
	}
	if err := m.Resume(at(15, 0)); err != nil {
		t.Fatalf("Resume() error: %v", err)
	}

	s := m.Session()
	if s.CumulativePauseSeconds != 300 {
		t.Errorf("CumulativePauseSeconds = %d, want 300", s.CumulativePauseSeconds)
	}
	if got := s.ElapsedAt(at(20, 0)); got != 15*60 {
		t.Errorf("elapsed = %d, want %d", got, 15*60)
	}

	if err := m.Pause(at(20, 0)); !errors.Is(err, ErrPauseLimit) {
		t.Errorf("second Pause() error = %v, want ErrPauseLimit", err)
	}
}

func TestElapsedFrozenWhilePaused(t *testing.T) {
	m, _, _, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.Pause(at(10, 0)); err != nil {
		t.Fatal(err)
	}

	for _, now := range []time.Time{at(11, 0), at(25, 0), at(59, 0)} {
		if got := m.Session().ElapsedAt(now); got != 10*60 {
			t.Errorf("elapsed at %v = %d, want %d", now, got, 10*60)
		}
	}
}

func TestResumeAcrossMidnight(t *testing.T) {
	m, store, rep, _ := newTestMachine()
	if _, err := m.Prepare(50 * 60); err != nil {
		t.Fatal(err)
	}
	start := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	if err := m.Begin(start); err != nil {
		t.Fatal(err)
	}
	if err := m.Pause(start.Add(40 * time.Minute)); err != nil {
		t.Fatal(err)
	}

	// Resume the next day: the old sitting is closed against its own day
	// and a fresh one starts.
	resumeAt := time.Date(2026, 3, 11, 0, 30, 0, 0, time.UTC)
	oldID := m.Session().ID
	if err := m.Resume(resumeAt); err != nil {
		t.Fatalf("Resume() error: %v", err)
	}

	if len(rep.reports) != 1 {
		t.Fatalf("reporter got %d reports, want 1", len(rep.reports))
	}
	r := rep.reports[0]
	if r.SessionID != oldID {
		t.Errorf("report session = %s, want %s", r.SessionID, oldID)
	}
	if r.Completed {
		t.Error("archived sitting reported as completed")
	}
	if r.Minutes != 40 {
		t.Errorf("report.Minutes = %d, want 40", r.Minutes)
	}
	if y, mo, d := r.ClosedAt.Date(); y != 2026 || mo != 3 || d != 10 {
		t.Errorf("report.ClosedAt dated %v, want the pause day", r.ClosedAt)
	}

	s := m.Session()
	if s.ID == oldID {
		t.Error("session not replaced after midnight resume")
	}
	if s.Status != StatusRunning {
		t.Errorf("new session status = %s, want running", s.Status)
	}
	if s.PlannedDurationSeconds != 50*60 {
		t.Errorf("planned duration not carried over: %d", s.PlannedDurationSeconds)
	}
	if s.PauseCount != 0 {
		t.Errorf("new session PauseCount = %d, want 0", s.PauseCount)
	}
	if store.saved == nil || store.saved.ID != s.ID {
		t.Error("new session not persisted")
	}
}

func TestGoalOneShot(t *testing.T) {
	m, _, _, snd := newTestMachine()
	if _, err := m.Prepare(60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}

	res, err := m.Tick(at(0, 30))
	if err != nil {
		t.Fatal(err)
	}
	if res.GoalJustReached {
		t.Error("goal fired before planned duration")
	}

	res, err = m.Tick(at(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !res.GoalJustReached {
		t.Error("goal did not fire at planned duration")
	}

	res, err = m.Tick(at(1, 5))
	if err != nil {
		t.Fatal(err)
	}
	if res.GoalJustReached {
		t.Error("goal fired twice")
	}

	goalCues := 0
	for _, c := range snd.cues {
		if c == companion.CueGoalReached {
			goalCues++
		}
	}
	if goalCues != 1 {
		t.Errorf("goal cue played %d times, want 1", goalCues)
	}
}

func TestEndShortFromPaused(t *testing.T) {
	m, _, rep, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.Pause(at(8, 0)); err != nil {
		t.Fatal(err)
	}

	report, err := m.End(at(12, 0), nil, false)
	if err != nil {
		t.Fatalf("End() error: %v", err)
	}
	if report.Completed {
		t.Error("interrupted report marked completed")
	}
	if report.Minutes != 8 {
		t.Errorf("report.Minutes = %d, want 8", report.Minutes)
	}
	if len(rep.reports) != 1 {
		t.Fatalf("reporter got %d reports, want 1", len(rep.reports))
	}

	// A terminal session cannot be closed again.
	if _, err := m.End(at(13, 0), nil, false); !errors.Is(err, ErrNoSession) {
		t.Errorf("second End() error = %v, want ErrNoSession", err)
	}
}

func TestEndClassification(t *testing.T) {
	tests := []struct {
		name          string
		plannedSec    int
		endAt         time.Time
		dailyGoalMet  bool
		wantCompleted bool
	}{
		{"short of planned", 25 * 60, at(10, 0), false, false},
		{"planned reached", 25 * 60, at(25, 0), false, true},
		{"short but daily goal met", 25 * 60, at(5, 0), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _, _ := newTestMachine()
			if _, err := m.Prepare(tt.plannedSec); err != nil {
				t.Fatal(err)
			}
			if err := m.Begin(at(0, 0)); err != nil {
				t.Fatal(err)
			}
			report, err := m.End(tt.endAt, nil, tt.dailyGoalMet)
			if err != nil {
				t.Fatalf("End() error: %v", err)
			}
			if report.Completed != tt.wantCompleted {
				t.Errorf("Completed = %v, want %v", report.Completed, tt.wantCompleted)
			}
		})
	}
}

func TestRecoverSuspectedInterruption(t *testing.T) {
	m, store, _, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}
	m.OnSuspend(at(12, 0))

	rep := &mockReporter{}
	m2 := NewMachine(store, rep, companion.NopNotifier{}, &mockSound{}, DefaultConfig())
	res, err := m2.Recover(at(40, 0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != RecoveryInterrupted {
		t.Fatalf("action = %d, want RecoveryInterrupted", res.Action)
	}
	if len(rep.reports) != 1 {
		t.Fatalf("reporter got %d reports, want 1", len(rep.reports))
	}
	// Elapsed is derived from the start timestamp at recovery time: the time
	// the app spent hidden still counts.
	if rep.reports[0].Minutes != 40 {
		t.Errorf("report.Minutes = %d, want 40", rep.reports[0].Minutes)
	}
	if store.saved != nil {
		t.Error("active slot not cleared")
	}
}

func TestSuspendResumeSignalRoundTrip(t *testing.T) {
	m, store, _, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}
	m.OnSuspend(at(5, 0))
	m.OnResumeSignal(at(5, 30))

	m2 := NewMachine(store, &mockReporter{}, companion.NopNotifier{}, &mockSound{}, DefaultConfig())
	res, err := m2.Recover(at(6, 0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != RecoveryResumedRunning {
		t.Errorf("action = %d, want RecoveryResumedRunning after clean resume", res.Action)
	}
}

func TestRecoverNoSession(t *testing.T) {
	m, _, _, _ := newTestMachine()
	res, err := m.Recover(at(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != RecoveryNone {
		t.Errorf("action = %d, want RecoveryNone", res.Action)
	}
}

func TestRecoverResumesYoungSession(t *testing.T) {
	m, store, _, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}
	old := m.Session()

	m2 := NewMachine(store, &mockReporter{}, companion.NopNotifier{}, &mockSound{}, DefaultConfig())
	res, err := m2.Recover(at(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != RecoveryResumedRunning {
		t.Fatalf("action = %d, want RecoveryResumedRunning", res.Action)
	}
	if res.Session.ID != old.ID {
		t.Errorf("recovered session %s, want %s", res.Session.ID, old.ID)
	}
	if got := res.Session.ElapsedAt(at(5, 0)); got != 300 {
		t.Errorf("recovered elapsed = %d, want 300", got)
	}
}

func TestRecoverExpiresStaleSession(t *testing.T) {
	m, store, _, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	start := at(0, 0)
	if err := m.Begin(start); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Tick(start.Add(17 * time.Minute)); err != nil {
		t.Fatal(err)
	}

	rep := &mockReporter{}
	m2 := NewMachine(store, rep, companion.NopNotifier{}, &mockSound{}, DefaultConfig())
	res, err := m2.Recover(start.Add(30 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != RecoveryExpired {
		t.Fatalf("action = %d, want RecoveryExpired", res.Action)
	}
	if len(rep.reports) != 1 {
		t.Fatalf("reporter got %d reports, want 1", len(rep.reports))
	}
	// Minutes are timestamp-derived at recovery time, so the whole stretch
	// since the start counts.
	if rep.reports[0].Minutes != 30*60 {
		t.Errorf("report.Minutes = %d, want %d", rep.reports[0].Minutes, 30*60)
	}
	if rep.reports[0].Completed {
		t.Error("expired report marked completed")
	}
	if store.saved != nil {
		t.Error("active slot not cleared after expiry")
	}
}

func TestRecoverRestoresFrozenResult(t *testing.T) {
	m, store, rep, _ := newTestMachine()
	if _, err := m.Prepare(25 * 60); err != nil {
		t.Fatal(err)
	}
	if err := m.Begin(at(0, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := m.End(at(25, 0), nil, false); err != nil {
		t.Fatal(err)
	}

	// The process dies after the close; the next start shows the frozen
	// result without reporting the session a second time.
	m2 := NewMachine(store, rep, companion.NopNotifier{}, &mockSound{}, DefaultConfig())
	res, err := m2.Recover(at(30, 0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != RecoveryEnded {
		t.Fatalf("action = %d, want RecoveryEnded", res.Action)
	}
	if res.Report == nil || res.Report.Minutes != 25 {
		t.Fatalf("frozen report = %+v, want 25 minutes", res.Report)
	}
	if !res.Report.Completed {
		t.Error("frozen report lost its completed status")
	}
	if len(rep.reports) != 1 {
		t.Errorf("reporter got %d reports, want 1", len(rep.reports))
	}
	if store.saved != nil {
		t.Error("frozen copy not cleared after restore")
	}
}

func TestRecoverCleansAbortedPreparation(t *testing.T) {
	store := &mockStore{}
	s := NewSession(25 * 60)
	if err := store.SaveActive(s, Markers{}); err != nil {
		t.Fatal(err)
	}

	m := NewMachine(store, &mockReporter{}, companion.NopNotifier{}, &mockSound{}, DefaultConfig())
	res, err := m.Recover(at(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != RecoveryCleaned {
		t.Errorf("action = %d, want RecoveryCleaned", res.Action)
	}
	if store.saved != nil {
		t.Error("leftover not cleared")
	}
}
