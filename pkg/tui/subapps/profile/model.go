// Package profile is the viewer-profile sub-application.
package profile

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/identity"
	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/tui/components/bottomnav"
	"tableflip.dev/unihub/pkg/tui/theme"
)

// Model renders the session identity. The identity was fixed at
// login; this surface is read-only.
type Model struct {
	theme   theme.Theme
	handler nav.Handler
	bar     *bottomnav.Model
	viewer  identity.Viewer
}

// New mounts the profile with the shared navigation handler.
func New(t theme.Theme, h nav.Handler, v identity.Viewer) *Model {
	bar := bottomnav.New(t)
	bar.SetActive(nav.Profile)
	return &Model{theme: t, handler: h, bar: bar, viewer: v}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "esc", "h":
		m.handler.GoToHome()
	}
	return nil
}

func (m *Model) View(width, height int) string {
	var card strings.Builder
	card.WriteString(m.viewer.Avatar + "  " + m.theme.Modal.Title.Render(m.viewer.Name))
	card.WriteString("\n\n")
	card.WriteString(fmt.Sprintf("GENDER: %s", strings.ToUpper(string(m.viewer.Gender))))
	card.WriteString("\n")
	card.WriteString(m.theme.Board.Meta.Render("MEMBER SINCE THIS SESSION"))

	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("PROFILE"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Board.Card.Render(card.String()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Help.Render("esc home"))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}

func (m *Model) ElementAt(x, y int) (nav.Element, bool) {
	return m.bar.ElementAt(x, y)
}
