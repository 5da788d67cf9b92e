package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/apetrov/coursemate/internal/ui/layout"
)

// Screen is one full-content view managed by the router. Screens render
// only their content area; the app shell owns the header and footer.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content for the given content area.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that want custom
// footer key hints instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
