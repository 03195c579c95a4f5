package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/router"
	"github.com/ivelina/tendril/internal/screen"
	"github.com/ivelina/tendril/internal/ui/components"
	"github.com/ivelina/tendril/internal/ui/layout"
	"github.com/ivelina/tendril/internal/ui/theme"
)

// SummaryScreen shows how a finished sitting landed.
type SummaryScreen struct {
	report       focus.CloseReport
	index        flow.Index
	todayMinutes int
	goalMinutes  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(report focus.CloseReport, index flow.Index, todayMinutes, goalMinutes int) *SummaryScreen {
	return &SummaryScreen{
		report:       report,
		index:        index,
		todayMinutes: todayMinutes,
		goalMinutes:  goalMinutes,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report

	var b strings.Builder
	b.WriteString("\n")

	// Headline.
	headline := "Session complete!"
	headStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if !r.Completed {
		headline = "Session cut short"
		headStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		headStyle.Render(headline)))
	b.WriteString("\n\n")

	// Duration line.
	durStr := fmt.Sprintf("%d of %d minutes", r.Minutes, r.PlannedMinutes)
	if r.PlannedMinutes <= 0 {
		durStr = fmt.Sprintf("%d minutes", r.Minutes)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(durStr))
	b.WriteString("\n")

	// Badges.
	var badges []string
	if r.GoalReached {
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.Accent).Render("❋ goal"))
	}
	if r.Rating != nil {
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("felt %s", ratingWord(*r.Rating))))
	}
	if r.WasAgitated {
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.Agitated).Render("restless"))
	}
	if len(badges) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			strings.Join(badges, "   ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Flow")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Flow index bar.
	bar := components.Meter{
		Label:    fmt.Sprintf("Flow %3.0f", s.index.Score),
		Fraction: s.index.Score / 100,
		Width:    min(width-24, 44),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(levelColor(s.index.Level)).Bold(true).
			Render(levelLabel(s.index.Level))))
	b.WriteString("\n\n")

	// Today line.
	todayStr := fmt.Sprintf("Today: %d minutes", s.todayMinutes)
	if s.goalMinutes > 0 {
		todayStr = fmt.Sprintf("Today: %d of %d minutes", s.todayMinutes, s.goalMinutes)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(todayStr))

	return b.String()
}

func ratingWord(r float64) string {
	switch {
	case r >= 3:
		return "great"
	case r >= 2:
		return "okay"
	default:
		return "rough"
	}
}

func levelLabel(l flow.Level) string {
	switch l {
	case flow.LevelPeak:
		return "Peak flow"
	case flow.LevelHighFlow:
		return "High flow"
	case flow.LevelRising:
		return "Rising"
	default:
		return "Sprout"
	}
}

func levelColor(l flow.Level) color.Color {
	switch l {
	case flow.LevelPeak:
		return theme.Accent
	case flow.LevelHighFlow:
		return theme.Primary
	case flow.LevelRising:
		return theme.Secondary
	default:
		return theme.TextDim
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
