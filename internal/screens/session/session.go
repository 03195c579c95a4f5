package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ivelina/tendril/internal/agitation"
	"github.com/ivelina/tendril/internal/companion"
	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/router"
	"github.com/ivelina/tendril/internal/screen"
	"github.com/ivelina/tendril/internal/screens/summary"
	"github.com/ivelina/tendril/internal/ui/components"
	"github.com/ivelina/tendril/internal/ui/layout"
)

const (
	minSessionMinutes = 1
	maxSessionMinutes = 480
)

// FocusScreen drives a single focus session from duration prompt through
// countdown, running timer, and the closing rating.
type FocusScreen struct {
	machine *focus.Machine
	engine  *flow.Engine
	monitor *agitation.Monitor
	board   *companion.Board

	input       components.TextInput
	ratingOpen  bool
	ratingSel   int
	quitConfirm bool
	errMsg      string

	elapsed int

	// companion hover region, updated on render
	companionLeft int
	companionTop  int
}

var _ screen.Screen = (*FocusScreen)(nil)
var _ screen.KeyHintProvider = (*FocusScreen)(nil)
var _ screen.EscapeGuard = (*FocusScreen)(nil)

// New creates a FocusScreen for a fresh session, starting at the duration
// prompt pre-filled with the configured default.
func New(machine *focus.Machine, engine *flow.Engine, board *companion.Board, agitationCfg agitation.Config, defaultMinutes int) *FocusScreen {
	s := &FocusScreen{
		machine: machine,
		engine:  engine,
		monitor: agitation.NewMonitor(agitationCfg),
		board:   board,
		input:   components.NewTextInput(strconv.Itoa(defaultMinutes), true, 3),
	}
	if machine.Session() == nil {
		_, _ = machine.Prepare(defaultMinutes * 60)
	}
	return s
}

// Adopt creates a FocusScreen around a session the recovery pass already
// resumed. The timer picks up mid-flight, running or paused.
func Adopt(machine *focus.Machine, engine *flow.Engine, board *companion.Board, agitationCfg agitation.Config) *FocusScreen {
	s := &FocusScreen{
		machine: machine,
		engine:  engine,
		monitor: agitation.NewMonitor(agitationCfg),
		board:   board,
	}
	if sess := machine.Session(); sess != nil {
		s.elapsed = sess.ElapsedAt(time.Now())
	}
	return s
}

func (s *FocusScreen) Init() tea.Cmd {
	sess := s.machine.Session()
	if sess != nil && (sess.Status == focus.StatusRunning || sess.Status == focus.StatusPaused) {
		return tea.Batch(runTickCmd(), decayTickCmd(s.monitor.DecayInterval()))
	}
	return s.input.Init()
}

func (s *FocusScreen) Title() string {
	return "Focus"
}

// WantsEscape keeps the router from popping this screen; Esc is handled
// per phase so a live session is never silently abandoned.
func (s *FocusScreen) WantsEscape() bool {
	return true
}

func (s *FocusScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End & save"},
			{Key: "D", Description: "Discard"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.ratingOpen {
		return []layout.KeyHint{
			{Key: "1-3", Description: "Rate"},
			{Key: "S", Description: "Skip"},
			{Key: "Esc", Description: "Back"},
		}
	}
	sess := s.machine.Session()
	if sess == nil {
		return nil
	}
	switch sess.Status {
	case focus.StatusPreparing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case focus.StatusRunning:
		hints := []layout.KeyHint{
			{Key: "Space", Description: "Pause"},
			{Key: "E", Description: "End"},
		}
		if s.monitor.PendingAck() {
			hints = append(hints, layout.KeyHint{Key: "A", Description: "I'm here"})
		}
		return hints
	case focus.StatusPaused:
		return []layout.KeyHint{
			{Key: "Space", Description: "Resume"},
			{Key: "E", Description: "End"},
		}
	}
	return nil
}

func (s *FocusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runTickMsg:
		return s.handleRunTick(time.Time(msg))

	case countdownTickMsg:
		return s.handleCountdownTick(time.Time(msg))

	case decayTickMsg:
		s.monitor.DecayTick(time.Time(msg))
		if s.active() {
			return s, decayTickCmd(s.monitor.DecayInterval())
		}
		return s, nil

	case tea.FocusMsg:
		s.machine.OnResumeSignal(time.Now())
		return s, nil

	case tea.BlurMsg:
		if s.active() {
			// The focus signal on return is the only trustworthy cleanup, so
			// every blur leaves the interruption breadcrumb just in case.
			now := time.Now()
			s.machine.OnSuspend(now)
			s.escalate(s.monitor.Observe(agitation.SignalBlur, now))
		}
		return s, nil

	case tea.ResumeMsg:
		s.machine.OnResumeSignal(time.Now())
		return s, nil

	case tea.MouseMotionMsg:
		return s.handleMouse(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the duration input while it is up.
	if sess := s.machine.Session(); sess != nil && sess.Status == focus.StatusPreparing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// active reports whether the timer is live (running or paused).
func (s *FocusScreen) active() bool {
	sess := s.machine.Session()
	return sess != nil && (sess.Status == focus.StatusRunning || sess.Status == focus.StatusPaused)
}

func (s *FocusScreen) handleRunTick(now time.Time) (screen.Screen, tea.Cmd) {
	if !s.active() {
		return s, nil
	}
	res, err := s.machine.Tick(now)
	if err != nil {
		return s, nil
	}
	s.elapsed = res.ElapsedSeconds
	if s.monitor.Agitated() {
		s.machine.MarkAgitated()
	}
	return s, runTickCmd()
}

func (s *FocusScreen) handleCountdownTick(now time.Time) (screen.Screen, tea.Cmd) {
	sess := s.machine.Session()
	if sess == nil || sess.Status != focus.StatusStarting {
		return s, nil
	}
	left, err := s.machine.CountdownTick(now)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if left > 0 {
		return s, countdownTickCmd()
	}
	// Countdown hit zero and the session is running.
	return s, tea.Batch(runTickCmd(), decayTickCmd(s.monitor.DecayInterval()))
}

func (s *FocusScreen) handleMouse(msg tea.MouseMotionMsg) (screen.Screen, tea.Cmd) {
	if !s.active() {
		return s, nil
	}
	now := time.Now()
	s.escalate(s.monitor.RecordPointer(msg.X, msg.Y, now))
	if s.inCompanionRegion(msg.X, msg.Y) {
		s.escalate(s.monitor.RecordCompanionHover(now))
	}
	return s, nil
}

// inCompanionRegion reports whether a pointer position overlaps the
// companion art drawn on the right edge of the timer view.
func (s *FocusScreen) inCompanionRegion(x, y int) bool {
	if s.companionLeft <= 0 {
		return false
	}
	return x >= s.companionLeft && y >= s.companionTop && y < s.companionTop+8
}

// escalate turns an agitation escalation into a companion notice and marks
// the session as agitated.
func (s *FocusScreen) escalate(esc *agitation.Escalation) {
	if esc == nil {
		return
	}
	s.machine.MarkAgitated()
	s.board.Notify(companion.Notice{
		Text:      escalationText(esc.Tier),
		Duration:  8 * time.Second,
		Animation: escalationAnimation(esc.Tier),
		Severity:  esc.Severity,
	})
}

func escalationText(tier int) string {
	switch tier {
	case 1:
		return "Mind wandering? Take a breath and come back."
	case 2:
		return "Lots of flitting about. The timer is still here for you."
	default:
		return "Let's settle. One thing at a time, together."
	}
}

func escalationAnimation(tier int) companion.Animation {
	if tier >= 3 {
		return companion.AnimationUpset
	}
	return companion.AnimationWorried
}

func (s *FocusScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, popCmd()
	}

	if key == "ctrl+z" {
		s.machine.OnSuspend(time.Now())
		if s.active() {
			s.escalate(s.monitor.Observe(agitation.SignalHidden, time.Now()))
		}
		return s, tea.Suspend
	}

	if s.quitConfirm {
		return s.handleQuitConfirmKey(key)
	}
	if s.ratingOpen {
		return s.handleRatingKey(key)
	}

	sess := s.machine.Session()
	if sess == nil {
		return s, popCmd()
	}

	switch sess.Status {
	case focus.StatusPreparing:
		return s.handlePrepareKey(msg, key)

	case focus.StatusRunning, focus.StatusPaused:
		switch key {
		case "esc", "q":
			s.quitConfirm = true
			return s, nil
		case " ", "space", "p":
			return s.togglePause()
		case "e", "enter":
			s.ratingOpen = true
			s.ratingSel = 1
			return s, nil
		case "a":
			s.monitor.Acknowledge()
			s.board.Clear()
			return s, nil
		}
	}

	return s, nil
}

func (s *FocusScreen) handlePrepareKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		_ = s.machine.Discard()
		return s, popCmd()
	case "enter":
		minutes, err := s.input.NumericValue()
		if err != nil || minutes < minSessionMinutes || minutes > maxSessionMinutes {
			s.input.Submit(false)
			return s, nil
		}
		if err := s.machine.SetPlannedDuration(minutes * 60); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if err := s.machine.BeginCountdown(time.Now()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.machine.Session().Status == focus.StatusRunning {
			// Countdown configured to zero; straight to running.
			return s, tea.Batch(runTickCmd(), decayTickCmd(s.monitor.DecayInterval()))
		}
		return s, countdownTickCmd()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *FocusScreen) handleQuitConfirmKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "y":
		s.quitConfirm = false
		s.ratingOpen = true
		s.ratingSel = 1
		return s, nil
	case "d":
		s.quitConfirm = false
		_ = s.machine.Discard()
		return s, popCmd()
	case "n", "esc":
		s.quitConfirm = false
		return s, nil
	}
	return s, nil
}

func (s *FocusScreen) handleRatingKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.ratingOpen = false
		return s, nil
	case "left", "h":
		if s.ratingSel > 0 {
			s.ratingSel--
		}
		return s, nil
	case "right", "l":
		if s.ratingSel < 2 {
			s.ratingSel++
		}
		return s, nil
	case "1", "2", "3":
		n, _ := strconv.Atoi(key)
		r := float64(n)
		return s.endSession(&r)
	case "enter":
		r := float64(s.ratingSel + 1)
		return s.endSession(&r)
	case "s":
		return s.endSession(nil)
	}
	return s, nil
}

func (s *FocusScreen) togglePause() (screen.Screen, tea.Cmd) {
	now := time.Now()
	sess := s.machine.Session()
	if sess == nil {
		return s, nil
	}
	if sess.Status == focus.StatusPaused {
		if err := s.machine.Resume(now); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil
	}
	if err := s.machine.Pause(now); err != nil {
		if errors.Is(err, focus.ErrPauseLimit) {
			s.board.Notify(companion.Notice{
				Text:      "That was your one pause. Finish or wrap up when ready.",
				Duration:  6 * time.Second,
				Animation: companion.AnimationWorried,
				Severity:  companion.SeverityMild,
			})
			return s, nil
		}
		s.errMsg = err.Error()
	}
	return s, nil
}

func (s *FocusScreen) endSession(rating *float64) (screen.Screen, tea.Cmd) {
	now := time.Now()

	goal := s.engine.DailyGoalMinutes()
	today, _ := s.engine.TodayMinutes(now)
	sess := s.machine.Session()
	elapsedMin := 0
	if sess != nil {
		elapsedMin = sess.ElapsedAt(now) / 60
	}
	goalMet := goal > 0 && today+elapsedMin >= goal

	report, err := s.machine.End(now, rating, goalMet)
	if err != nil {
		s.errMsg = fmt.Sprintf("end session: %v", err)
		return s, nil
	}

	idx, _ := s.engine.IndexNow(now)
	todayAfter, _ := s.engine.TodayMinutes(now)

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(report, idx, todayAfter, goal),
		}
	}
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
