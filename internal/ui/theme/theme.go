package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: calm greens with warm accents, easy on late-night eyes
var (
	Primary   = lipgloss.Color("#7FD18C") // Leaf Green
	Secondary = lipgloss.Color("#5EAAA8") // Sage Teal
	Accent    = lipgloss.Color("#E8C547") // Sunlight
	Success   = lipgloss.Color("#9BE27A") // Fresh Sprout
	Error     = lipgloss.Color("#E06C5B") // Ember
	Warning   = lipgloss.Color("#D9A05B") // Amber
	Agitated  = lipgloss.Color("#9B7EDE") // Storm Violet
	Text      = lipgloss.Color("#F2EFE5") // Cream
	TextDim   = lipgloss.Color("#8FA08F") // Moss Grey
	BgDark    = lipgloss.Color("#151A16") // Deep Soil
	BgCard    = lipgloss.Color("#212922") // Dark Moss
	Border    = lipgloss.Color("#3A4A3C") // Hedge
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
