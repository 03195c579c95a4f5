package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/ui/theme"
)

// Meter is a horizontal fill bar for timers and scores. Fraction is the
// filled share in [0,1]; values outside the range render pinned.
type Meter struct {
	Label       string
	Fraction    float64
	Width       int
	ShowPercent bool
}

const (
	meterFill  = "█"
	meterTrack = "░"
)

// View renders the meter at its configured width. The label and percent
// readout eat into the width; the track itself never drops below four cells.
func (m Meter) View() string {
	var b strings.Builder

	if m.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label))
		b.WriteString("  ")
	}

	frac := m.Fraction
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	suffix := ""
	if m.ShowPercent {
		suffix = fmt.Sprintf("  %3.0f%%", frac*100)
	}

	track := m.Width - lipgloss.Width(b.String()) - lipgloss.Width(suffix)
	if track < 4 {
		track = 4
	}
	filled := int(math.Round(frac * float64(track)))

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(strings.Repeat(meterFill, filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat(meterTrack, track-filled)))

	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}

	return b.String()
}
