// Package subapp defines the contract every mounted sub-application
// satisfies. Sub-applications are independently authored; they know
// the shared navigation handler and nothing about their siblings.
package subapp

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/unihub/pkg/nav"
)

// Model is one mountable sub-application surface.
type Model interface {
	// Update handles input routed to the mounted sub-application.
	Update(msg tea.Msg) tea.Cmd

	// View renders the surface at the given size.
	View(width, height int) string

	// ElementAt resolves a pointer position against the last rendered
	// surface, so navigation intent can be inferred from what the
	// element shows without the sub-application's involvement.
	ElementAt(x, y int) (nav.Element, bool)
}

// Mountable is implemented by sub-applications with mount-scoped
// resources (timers); the host guarantees Unmount on every exit path.
type Mountable interface {
	Mount() tea.Cmd
	Unmount()
}
