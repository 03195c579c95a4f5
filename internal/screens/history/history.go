package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/router"
	"github.com/ivelina/tendril/internal/screen"
	"github.com/ivelina/tendril/internal/store"
	"github.com/ivelina/tendril/internal/ui/layout"
	"github.com/ivelina/tendril/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []store.SessionEvent
	Err    error
}

// HistoryScreen lists past sittings from the event log, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.SessionEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.RecentSessionEvents(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Events: events}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sittings yet. Plant your first one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s%s%s",
			prefix,
			ev.StartedAt.Format("Jan 02, 2006"),
			fmt.Sprintf("%d/%d min", ev.Minutes, ev.PlannedMinutes),
			outcomeWord(ev),
			ratingSuffix(ev.Rating),
			flagSuffix(ev),
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		} else if !ev.Completed {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			details := []string{
				fmt.Sprintf("    started %s, logged on %s",
					ev.StartedAt.Format("15:04"), ev.ClosedOn),
			}
			if ev.WasAgitated {
				details = append(details, "    restless during the sitting")
			}
			if ev.GoalReached {
				details = append(details, "    reached the planned goal")
			}
			for _, d := range details {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func outcomeWord(ev store.SessionEvent) string {
	if ev.Completed {
		return "completed"
	}
	return "interrupted"
}

func ratingSuffix(rating *float64) string {
	if rating == nil {
		return ""
	}
	return fmt.Sprintf("  felt %.0f/3", *rating)
}

func flagSuffix(ev store.SessionEvent) string {
	var flags []string
	if ev.GoalReached {
		flags = append(flags, "❋")
	}
	if ev.WasAgitated {
		flags = append(flags, "~")
	}
	if len(flags) == 0 {
		return ""
	}
	return "  " + strings.Join(flags, " ")
}
