package stats

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/router"
	"github.com/ivelina/tendril/internal/screen"
	"github.com/ivelina/tendril/internal/ui/components"
	"github.com/ivelina/tendril/internal/ui/layout"
	"github.com/ivelina/tendril/internal/ui/theme"
)

type statsLoadedMsg struct {
	Metrics flow.Metrics
	Index   flow.Index
	Weekly  flow.WeeklySnapshot
	Today   int
	Week    int
	Err     error
}

// StatsScreen displays the flow index and its component metrics.
type StatsScreen struct {
	engine *flow.Engine

	metrics flow.Metrics
	index   flow.Index
	weekly  flow.WeeklySnapshot
	today   int
	week    int

	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(engine *flow.Engine) *StatsScreen {
	return &StatsScreen{engine: engine}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()

		metrics, err := s.engine.Metrics(now)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		index, err := s.engine.IndexNow(now)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		weekly, err := s.engine.Weekly(now)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		today, _ := s.engine.TodayMinutes(now)
		week, _ := s.engine.WeekMinutes(now)

		return statsLoadedMsg{
			Metrics: metrics,
			Index:   index,
			Weekly:  weekly,
			Today:   today,
			Week:    week,
		}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.metrics = msg.Metrics
			s.index = msg.Index
			s.weekly = msg.Weekly
			s.today = msg.Today
			s.week = msg.Week
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Reading the leaves...")
	}

	var b strings.Builder
	b.WriteString("\n")

	barWidth := min(width-30, 44)

	// Flow index headline.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("Flow Index  %.0f", s.index.Score))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(levelLabel(s.index.Level))))
	b.WriteString("\n\n")

	bar := components.Meter{Fraction: s.index.Score / 100, Width: barWidth}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Component bars.
	rows := []struct {
		label string
		frac  float64
	}{
		{"Quality    ", s.index.Quality / 100},
		{"Duration   ", s.index.Duration / 100},
		{"Consistency", s.index.Consistency / 100},
		{"Weekly     ", s.weekly.Normalized},
	}
	for _, row := range rows {
		rb := components.Meter{Label: row.label, Fraction: clamp01(row.frac), Width: barWidth, ShowPercent: true}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rb.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	m := s.metrics

	// Numbers, two columns.
	left := []string{
		fmt.Sprintf("Sessions        %d", m.SessionCount),
		fmt.Sprintf("Total focus     %s", humanMinutes(m.TotalFocusMinutes)),
		fmt.Sprintf("Average sitting %.0f min", m.AverageSessionMinutes),
		fmt.Sprintf("Longest sitting %d min", m.LongestSessionMinutes),
		fmt.Sprintf("Today           %d min", s.today),
		fmt.Sprintf("This week       %d min", s.week),
	}
	right := []string{
		fmt.Sprintf("Streak          %d days", m.CurrentStreakDays),
		fmt.Sprintf("Quality streak  %d", m.RecentQualityStreak),
		fmt.Sprintf("Average feel    %.1f / 3", m.AverageRating),
		fmt.Sprintf("Completion      %.0f%%", m.CompletionRate*100),
		fmt.Sprintf("Interruption    %.0f%%", m.InterruptionRate*100),
		fmt.Sprintf("Trend           %+.2f", m.ImprovementTrend),
	}

	leftCol := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(left, "\n"))
	rightCol := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(right, "\n"))
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "      ", rightCol)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, cols))
	b.WriteString("\n\n")

	// Impression and temperature, the two halves of the index.
	mood := fmt.Sprintf("Impression %.1f   ·   Temperature %+.1f", m.ImpressionScore, m.TempFlowScore)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(mood)))

	return b.String()
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

func humanMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
