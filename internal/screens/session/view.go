package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/companion"
	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/ui/components"
	"github.com/ivelina/tendril/internal/ui/theme"
)

func (s *FocusScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	sess := s.machine.Session()
	if sess == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No session.")
	}

	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.ratingOpen {
		return s.renderRating(width)
	}

	switch sess.Status {
	case focus.StatusPreparing:
		return s.renderDurationPrompt(width)
	case focus.StatusStarting:
		return renderCountdown(width, s.machine.CountdownLeft())
	default:
		return s.renderTimer(width, height)
	}
}

// renderDurationPrompt asks how long the sitting should be.
func (s *FocusScreen) renderDurationPrompt(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("How long will you focus?"))
	b.WriteString("\n\n")

	prompt := "Minutes: " + s.input.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(prompt)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Between %d and %d minutes.", minSessionMinutes, maxSessionMinutes)))

	return b.String()
}

// renderCountdown shows the settling-in countdown.
func renderCountdown(width, left int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Settle in..."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(bigDigits(fmt.Sprintf("%d", left))))

	return b.String()
}

// renderTimer is the main running/paused view.
func (s *FocusScreen) renderTimer(width, height int) string {
	sess := s.machine.Session()

	var b strings.Builder
	b.WriteString("\n")

	// Status line.
	statusStr := "Focusing"
	statusStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if sess.Status == focus.StatusPaused {
		statusStr = "Paused"
		statusStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		statusStyle.Render(statusStr)))
	b.WriteString("\n\n")

	// Big clock.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(bigDigits(formatClock(s.elapsed))))
	b.WriteString("\n\n")

	// Progress toward the planned duration.
	planned := sess.PlannedDurationSeconds
	if planned > 0 {
		pct := float64(s.elapsed) / float64(planned)
		if pct > 1 {
			pct = 1
		}
		bar := components.Meter{Fraction: pct, Width: min(width-20, 50), ShowPercent: true}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")

		remaining := planned - s.elapsed
		var remainStr string
		if remaining > 0 {
			remainStr = fmt.Sprintf("%s of %d minutes", formatClock(remaining), planned/60)
		} else {
			remainStr = fmt.Sprintf("%s past your %d minutes", formatClock(-remaining), planned/60)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(remainStr))
		b.WriteString("\n")
	}

	if sess.GoalReached {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("❋ Goal reached!"))
		b.WriteString("\n")
	}

	// Agitation strip.
	if tier := s.monitor.Tier(); tier > 0 {
		label := fmt.Sprintf("restless · tier %d", tier)
		if s.monitor.PendingAck() {
			label += "  [a] I'm here"
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Agitated).Render(label)))
		b.WriteString("\n")
	}

	// Companion with its current notice, bottom right.
	b.WriteString("\n")
	b.WriteString(s.renderCompanion(width))

	return b.String()
}

// renderCompanion draws the plant on the right edge and records the region
// for hover detection.
func (s *FocusScreen) renderCompanion(width int) string {
	anim := s.companionAnimation()
	art := components.RenderCompanion(anim)

	artWidth := lipgloss.Width(art)
	s.companionLeft = width - artWidth - 4
	if s.companionLeft < 0 {
		s.companionLeft = 0
	}
	s.companionTop = 12

	var speech string
	if n, ok := s.board.Current(time.Now()); ok {
		speech = lipgloss.NewStyle().
			Foreground(theme.Text).
			Italic(true).
			Width(min(width/2, 44)).
			Render("“" + n.Text + "”")
	}

	block := art
	if speech != "" {
		block = lipgloss.JoinHorizontal(lipgloss.Center, speech, "  ", art)
	}
	return lipgloss.PlaceHorizontal(width-4, lipgloss.Right, block)
}

func (s *FocusScreen) companionAnimation() companion.Animation {
	if n, ok := s.board.Current(time.Now()); ok && n.Animation != "" {
		return n.Animation
	}
	sess := s.machine.Session()
	if sess != nil && sess.GoalReached {
		return companion.AnimationCheer
	}
	if sess != nil && sess.Status == focus.StatusPaused {
		return companion.AnimationSleepy
	}
	return companion.AnimationIdle
}

// renderRating asks how the sitting felt.
func (s *FocusScreen) renderRating(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("How did that feel?"))
	b.WriteString("\n\n")

	labels := []string{"1 · Rough", "2 · Okay", "3 · Great"}
	var parts []string
	for i, label := range labels {
		style := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 2)
		if i == s.ratingSel {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		parts = append(parts, style.Render(label))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(parts, "   ")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press 1-3, or S to skip rating."))

	return b.String()
}

// renderQuitConfirm is the end-early dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this session?"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] End and save"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[D] Discard, record nothing"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

// formatClock renders seconds as m:ss, or h:mm:ss past the hour.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	sec := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
