package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ivelina/tendril/internal/agitation"
	"github.com/ivelina/tendril/internal/companion"
	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/screen"
	"github.com/ivelina/tendril/internal/store"
)

// memSessionStore implements focus.SessionStore in memory.
type memSessionStore struct {
	s       *focus.Session
	markers focus.Markers
}

func (m *memSessionStore) SaveActive(s *focus.Session, markers focus.Markers) error {
	copied := *s
	m.s = &copied
	m.markers = markers
	return nil
}

func (m *memSessionStore) LoadActive() (*focus.Session, focus.Markers, error) {
	if m.s == nil {
		return nil, focus.Markers{}, nil
	}
	copied := *m.s
	return &copied, m.markers, nil
}

func (m *memSessionStore) ClearActive() error {
	m.s = nil
	m.markers = focus.Markers{}
	return nil
}

// mockFlowRepo implements store.FlowStateRepo.
type mockFlowRepo struct {
	data *store.FlowStateData
}

func (m *mockFlowRepo) Save(_ context.Context, data store.FlowStateData) error {
	m.data = &data
	return nil
}

func (m *mockFlowRepo) Load(_ context.Context) (*store.FlowStateData, error) {
	return m.data, nil
}

// mockBehaviorRepo implements store.BehaviorRepo.
type mockBehaviorRepo struct {
	days map[string]store.BehaviorDayData
}

func newMockBehaviorRepo() *mockBehaviorRepo {
	return &mockBehaviorRepo{days: make(map[string]store.BehaviorDayData)}
}

func (m *mockBehaviorRepo) Day(_ context.Context, date string) (*store.BehaviorDayData, error) {
	if d, ok := m.days[date]; ok {
		return &d, nil
	}
	return nil, nil
}

func (m *mockBehaviorRepo) Upsert(_ context.Context, data store.BehaviorDayData) error {
	m.days[data.Date] = data
	return nil
}

func (m *mockBehaviorRepo) Range(_ context.Context, from, to string) ([]store.BehaviorDayData, error) {
	var out []store.BehaviorDayData
	for date, d := range m.days {
		if date >= from && date <= to {
			out = append(out, d)
		}
	}
	return out, nil
}

// mockEventRepo implements store.EventRepo.
type mockEventRepo struct {
	events []store.SessionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *mockEventRepo) RecentSessionEvents(_ context.Context, _ int) ([]store.SessionEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) SessionEventsOn(_ context.Context, _ string) ([]store.SessionEvent, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testFocusScreen() (*FocusScreen, *mockEventRepo) {
	eventRepo := &mockEventRepo{}
	engine := flow.NewEngine(&mockFlowRepo{}, newMockBehaviorRepo(), eventRepo, flow.DefaultParams(), 60)
	board := companion.NewBoard()
	machine := focus.NewMachine(&memSessionStore{}, engine, board, companion.NopSound{}, focus.DefaultConfig())

	s := New(machine, engine, board, agitation.DefaultConfig(), 25)
	return s, eventRepo
}

// startRunning walks the machine from the prompt into a running session.
func startRunning(t *testing.T, s *FocusScreen) {
	t.Helper()
	if err := s.machine.SetPlannedDuration(25 * 60); err != nil {
		t.Fatalf("set planned duration: %v", err)
	}
	if err := s.machine.Begin(time.Now()); err != nil {
		t.Fatalf("begin: %v", err)
	}
}

func TestFocusScreen_Title(t *testing.T) {
	s, _ := testFocusScreen()
	if s.Title() != "Focus" {
		t.Errorf("Title = %q, want %q", s.Title(), "Focus")
	}
}

func TestFocusScreen_StartsAtDurationPrompt(t *testing.T) {
	s, _ := testFocusScreen()
	sess := s.machine.Session()
	if sess == nil || sess.Status != focus.StatusPreparing {
		t.Fatalf("expected a preparing session, got %+v", sess)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty duration prompt view")
	}
}

func TestFocusScreen_EnterStartsCountdown(t *testing.T) {
	s, _ := testFocusScreen()
	s.input.Model.SetValue("30")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	fs := scr.(*FocusScreen)

	sess := fs.machine.Session()
	if sess.Status != focus.StatusStarting {
		t.Errorf("status = %s, want starting", sess.Status)
	}
	if sess.PlannedDurationSeconds != 30*60 {
		t.Errorf("planned = %d, want %d", sess.PlannedDurationSeconds, 30*60)
	}
	if cmd == nil {
		t.Error("expected a countdown tick command")
	}
}

func TestFocusScreen_RejectsBadDuration(t *testing.T) {
	s, _ := testFocusScreen()
	s.input.Model.SetValue("0")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	fs := scr.(*FocusScreen)

	if fs.machine.Session().Status != focus.StatusPreparing {
		t.Error("invalid duration should stay at the prompt")
	}
}

func TestFocusScreen_QuitConfirmFlow(t *testing.T) {
	s, _ := testFocusScreen()
	startRunning(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	fs := scr.(*FocusScreen)
	if !fs.quitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = fs.Update(keyPress('n'))
	fs = scr.(*FocusScreen)
	if fs.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = fs.Update(specialKey(tea.KeyEscape))
	fs = scr.(*FocusScreen)
	scr, _ = fs.Update(keyPress('y'))
	fs = scr.(*FocusScreen)
	if !fs.ratingOpen {
		t.Error("confirming the quit should open the rating prompt")
	}
}

func TestFocusScreen_DiscardRecordsNothing(t *testing.T) {
	s, eventRepo := testFocusScreen()
	startRunning(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	fs := scr.(*FocusScreen)
	_, cmd := fs.Update(keyPress('d'))

	if fs.machine.Session() != nil {
		t.Error("discard should drop the session")
	}
	if len(eventRepo.events) != 0 {
		t.Errorf("discard should log nothing, got %d events", len(eventRepo.events))
	}
	if cmd == nil {
		t.Error("expected a pop command after discard")
	}
}

func TestFocusScreen_RatingEndsSession(t *testing.T) {
	s, eventRepo := testFocusScreen()
	startRunning(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('e'))
	fs := scr.(*FocusScreen)
	if !fs.ratingOpen {
		t.Fatal("expected rating prompt")
	}

	_, cmd := fs.Update(keyPress('3'))
	if sess := fs.machine.Session(); sess == nil || !sess.Status.Terminal() {
		t.Error("session should be closed after rating")
	}
	if len(eventRepo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(eventRepo.events))
	}
	if eventRepo.events[0].Rating == nil || *eventRepo.events[0].Rating != 3 {
		t.Errorf("rating = %v, want 3", eventRepo.events[0].Rating)
	}
	if cmd == nil {
		t.Error("expected a navigation command to the summary")
	}
}

func TestFocusScreen_SkipRating(t *testing.T) {
	s, eventRepo := testFocusScreen()
	startRunning(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('e'))
	fs := scr.(*FocusScreen)
	fs.Update(keyPress('s'))

	if len(eventRepo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(eventRepo.events))
	}
	if eventRepo.events[0].Rating != nil {
		t.Errorf("skipped rating should log nil, got %v", *eventRepo.events[0].Rating)
	}
}

func TestFocusScreen_PauseLimitNotice(t *testing.T) {
	s, _ := testFocusScreen()
	startRunning(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('p'))
	fs := scr.(*FocusScreen)
	if fs.machine.Session().Status != focus.StatusPaused {
		t.Fatal("expected paused session")
	}

	scr, _ = fs.Update(keyPress('p'))
	fs = scr.(*FocusScreen)
	if fs.machine.Session().Status != focus.StatusRunning {
		t.Fatal("expected resumed session")
	}

	scr, _ = fs.Update(keyPress('p'))
	fs = scr.(*FocusScreen)
	if fs.machine.Session().Status != focus.StatusRunning {
		t.Error("second pause should be refused")
	}
	if _, ok := fs.board.Current(time.Now()); !ok {
		t.Error("refused pause should post a companion notice")
	}
}

func TestFocusScreen_BlurLeavesBreadcrumb(t *testing.T) {
	eventRepo := &mockEventRepo{}
	engine := flow.NewEngine(&mockFlowRepo{}, newMockBehaviorRepo(), eventRepo, flow.DefaultParams(), 60)
	board := companion.NewBoard()
	st := &memSessionStore{}
	machine := focus.NewMachine(st, engine, board, companion.NopSound{}, focus.DefaultConfig())
	s := New(machine, engine, board, agitation.DefaultConfig(), 25)
	startRunning(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(tea.BlurMsg{})
	fs := scr.(*FocusScreen)
	if st.markers.SuspectedInterruptionAt == nil {
		t.Fatal("blur should persist the interruption breadcrumb")
	}

	fs.Update(tea.FocusMsg{})
	if st.markers.SuspectedInterruptionAt != nil {
		t.Error("regained focus should clear the breadcrumb")
	}
}

func TestFocusScreen_EscalationMarksSession(t *testing.T) {
	s, _ := testFocusScreen()
	startRunning(t, s)

	s.escalate(&agitation.Escalation{Tier: 2, Severity: companion.SeverityModerate, Score: 90})

	if !s.machine.Session().WasAgitated {
		t.Error("escalation should mark the session agitated")
	}
	if n, ok := s.board.Current(time.Now()); !ok || n.Animation != companion.AnimationWorried {
		t.Errorf("expected worried notice, got ok=%v", ok)
	}
}

func TestFocusScreen_KeyHints(t *testing.T) {
	s, _ := testFocusScreen()
	startRunning(t, s)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{1500, "25:00"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-5, "0:00"},
	}
	for _, tc := range cases {
		if got := formatClock(tc.seconds); got != tc.want {
			t.Errorf("formatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
