// Package authflow carries the pre-authentication screens: loading,
// login, and registration. The screens collect the viewer identity
// once; afterwards it is immutable for the session.
package authflow

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/identity"
	"tableflip.dev/unihub/pkg/tui/theme"
)

// LoadDoneMsg fires when the loading screen finishes.
type LoadDoneMsg struct{ Gen int }

// ToRegistrationMsg asks the host to show the registration screen.
type ToRegistrationMsg struct{}

// ToLoginMsg asks the host to return to the login screen.
type ToLoginMsg struct{}

// CompletedMsg delivers the viewer identity after login/registration.
type CompletedMsg struct{ Viewer identity.Viewer }

const loadDelay = 1500 * time.Millisecond

// Loading is the splash screen; it completes after a fixed delay. The
// generation counter invalidates ticks from a torn-down instance.
type Loading struct {
	theme theme.Theme
	gen   int
	dots  int
}

// NewLoading returns the splash screen model.
func NewLoading(t theme.Theme) *Loading {
	return &Loading{theme: t}
}

// Start arms the completion timer for the current generation.
func (l *Loading) Start() tea.Cmd {
	gen := l.gen
	return tea.Tick(loadDelay, func(time.Time) tea.Msg {
		return LoadDoneMsg{Gen: gen}
	})
}

// Cancel invalidates any pending completion timer.
func (l *Loading) Cancel() {
	l.gen++
}

// Stale reports whether a completion belongs to a cancelled timer.
func (l *Loading) Stale(msg LoadDoneMsg) bool {
	return msg.Gen != l.gen
}

// View renders the splash screen.
func (l *Loading) View(width, height int) string {
	body := l.theme.Screen.Title.Render("UNIHUB") + "\n\n" +
		l.theme.Screen.Subtitle.Render("LOADING CAMPUS LIFE...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
