package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/companion"
	"github.com/ivelina/tendril/internal/config"
	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/router"
	"github.com/ivelina/tendril/internal/screen"
	"github.com/ivelina/tendril/internal/screens/history"
	sessionscreen "github.com/ivelina/tendril/internal/screens/session"
	"github.com/ivelina/tendril/internal/screens/stats"
	"github.com/ivelina/tendril/internal/store"
	"github.com/ivelina/tendril/internal/ui/components"
	"github.com/ivelina/tendril/internal/ui/theme"
)

const banner = ` _____              _      _ _
|_   _|__ _ __   __| |_ __(_) |
  | |/ _ \ '_ \ / _' | '__| | |
  | |  __/ | | | (_| | |  | | |
  |_|\___|_| |_|\__,_|_|  |_|_|`

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu

	board *companion.Board

	todayMinutes int
	goalMinutes  int
	streakDays   int
	level        flow.Level
	hasLive      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. Today's numbers are read once up front;
// they refresh whenever the user lands back here.
func New(machine *focus.Machine, engine *flow.Engine, eventRepo store.EventRepo, board *companion.Board, cfg config.Config) *HomeScreen {
	now := time.Now()

	today, _ := engine.TodayMinutes(now)
	metrics, _ := engine.Metrics(now)
	index, _ := engine.IndexNow(now)

	hasLive := machine.Session() != nil && !machine.Session().Status.Terminal() &&
		machine.Session().Status != focus.StatusPreparing

	var items []components.MenuItem
	if hasLive {
		items = append(items, components.MenuItem{
			Label: "CONTINUE SESSION",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.Adopt(machine, engine, board, cfg.Agitation),
					}
				}
			},
		})
	} else {
		items = append(items, components.MenuItem{
			Label: "START FOCUS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(machine, engine, board, cfg.Agitation, cfg.DefaultSessionMinutes),
					}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "STATS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(engine)}
				}
			},
		},
		components.MenuItem{
			Label: "HISTORY",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(eventRepo)}
				}
			},
		},
		components.MenuItem{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{
		menu:         components.NewMenu(items),
		board:        board,
		todayMinutes: today,
		goalMinutes:  engine.DailyGoalMinutes(),
		streakDays:   metrics.CurrentStreakDays,
		level:        index.Level,
		hasLive:      hasLive,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	// Title.
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(banner))

	// Companion, with any pending notice (recovery messages land here).
	anim := companion.AnimationIdle
	var speech string
	if n, ok := h.board.Current(time.Now()); ok {
		speech = n.Text
		if n.Animation != "" {
			anim = n.Animation
		}
	} else if h.goalMinutes > 0 && h.todayMinutes >= h.goalMinutes {
		anim = companion.AnimationCheer
	}
	plant := components.RenderCompanion(anim)
	if speech != "" {
		bubble := lipgloss.NewStyle().
			Foreground(theme.Text).
			Italic(true).
			Width(min(width-20, 40)).
			Render("“" + speech + "”")
		plant = lipgloss.JoinHorizontal(lipgloss.Center, plant, "   ", bubble)
	}
	sections = append(sections, plant)

	// Today line.
	todayStr := fmt.Sprintf("Today %d min", h.todayMinutes)
	if h.goalMinutes > 0 {
		todayStr = fmt.Sprintf("Today %d / %d min", h.todayMinutes, h.goalMinutes)
	}
	statsLine := fmt.Sprintf("%s   ·   %d day streak   ·   %s",
		todayStr, h.streakDays, levelWord(h.level))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(statsLine))

	if h.hasLive {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Warning).
			Render("A session from earlier is still ticking."))
	}

	// Menu.
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func levelWord(l flow.Level) string {
	switch l {
	case flow.LevelPeak:
		return "peak flow"
	case flow.LevelHighFlow:
		return "high flow"
	case flow.LevelRising:
		return "rising"
	default:
		return "sprout"
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
