package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/companion"
	"github.com/ivelina/tendril/internal/config"
	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/router"
	"github.com/ivelina/tendril/internal/screen"
	"github.com/ivelina/tendril/internal/screens/home"
	sessionscreen "github.com/ivelina/tendril/internal/screens/session"
	"github.com/ivelina/tendril/internal/store"
	"github.com/ivelina/tendril/internal/ui/layout"
)

// Options configure an app run.
type Options struct {
	DBPath     string
	ConfigPath string
}

type deps struct {
	machine *focus.Machine
	engine  *flow.Engine
	events  store.EventRepo
	board   *companion.Board
	cfg     config.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps
	router *router.Router
	width  int
	height int

	todayMinutes int
	streakDays   int
}

// newAppModel builds the screen stack. A session adopted by recovery lands
// the user straight back in the timer.
func newAppModel(d deps, adopted bool) AppModel {
	m := AppModel{deps: d}
	m.router = router.New(home.New(d.machine, d.engine, d.events, d.board, d.cfg))
	if adopted {
		m.router.Push(sessionscreen.Adopt(d.machine, d.engine, d.board, d.cfg.Agitation))
	}
	m.refreshHeader()
	return m
}

func (m *AppModel) refreshHeader() {
	now := time.Now()
	m.todayMinutes, _ = m.engine.TodayMinutes(now)
	if metrics, err := m.engine.Metrics(now); err == nil {
		m.streakDays = metrics.CurrentStreakDays
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		if m.router.Depth() == 1 {
			// Landing back home; rebuild it so today's numbers are fresh.
			m.router.Replace(home.New(m.machine, m.engine, m.events, m.board, m.cfg))
			m.refreshHeader()
		}
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				if g, ok := m.router.Active().(screen.EscapeGuard); ok && g.WantsEscape() {
					break
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.ReportFocus = true
	v.MouseMode = tea.MouseModeAllMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.todayMinutes, m.streakDays, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run opens the store, replays recovery, and starts the Bubble Tea program.
func Run(opts Options) error {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return err
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	board := companion.NewBoard()
	engine := flow.NewEngine(st.FlowStateRepo(), st.BehaviorRepo(), st.EventRepo(), cfg.Flow, cfg.DailyGoalMinutes)
	machine := focus.NewMachine(
		focus.NewStoreSessions(st.ActiveSessionRepo()),
		engine,
		board,
		companion.NopSound{},
		cfg.Session,
	)

	// Whatever the last run left behind gets resolved before the UI starts.
	recovery, err := machine.Recover(time.Now())
	if err != nil {
		return fmt.Errorf("recover session: %w", err)
	}
	adopted := recovery.Action == focus.RecoveryResumedRunning ||
		recovery.Action == focus.RecoveryResumedPaused
	if recovery.Action == focus.RecoveryEnded && recovery.Report != nil {
		r := recovery.Report
		outcome := "wrapped up"
		if !r.Completed {
			outcome = "cut short"
		}
		board.Notify(companion.Notice{
			Text:      fmt.Sprintf("Your %s session from %s was %s at %d minutes.", formatPlanned(r.PlannedMinutes), r.StartedAt.Format("15:04"), outcome, r.Minutes),
			Duration:  10 * time.Second,
			Animation: companion.AnimationIdle,
			Severity:  companion.SeverityInfo,
		})
	}

	p := tea.NewProgram(
		newAppModel(deps{
			machine: machine,
			engine:  engine,
			events:  st.EventRepo(),
			board:   board,
			cfg:     cfg,
		}, adopted),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

func formatPlanned(minutes int) string {
	if minutes <= 0 {
		return "open-ended"
	}
	return fmt.Sprintf("%d-minute", minutes)
}
