package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ivelina/tendril/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeGuard is an optional interface for screens that need to intercept
// Esc instead of being popped, e.g. to confirm abandoning a running session.
type EscapeGuard interface {
	// WantsEscape reports whether the screen handles Esc itself.
	WantsEscape() bool
}
