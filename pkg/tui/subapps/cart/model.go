// Package cart is the marketplace sub-application. Its catalogue is
// session-static display data; the composition layer only cares that
// it mounts, renders, and shares the navigation handler.
package cart

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/tui/components/bottomnav"
	"tableflip.dev/unihub/pkg/tui/theme"
)

type item struct {
	Name  string
	Price string
}

var catalogue = []item{
	{"CAMPUS HOODIE", "RM 89"},
	{"SECOND-HAND CALC TEXTBOOK", "RM 35"},
	{"USB-C DOCK", "RM 120"},
	{"BATCH SHIRT 2026", "RM 45"},
	{"DESK LAMP", "RM 28"},
}

// Model renders the cart surface.
type Model struct {
	theme   theme.Theme
	handler nav.Handler
	bar     *bottomnav.Model
	cursor  int
	added   map[int]bool
}

// New mounts the cart with the shared navigation handler.
func New(t theme.Theme, h nav.Handler) *Model {
	bar := bottomnav.New(t)
	bar.SetActive(nav.Cart)
	return &Model{theme: t, handler: h, bar: bar, added: map[int]bool{}}
}

// Update handles cart keys; the sub-app calls the handler directly for
// its own home shortcut, no event sniffing involved.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "j", "down":
		if m.cursor < len(catalogue)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		m.added[m.cursor] = !m.added[m.cursor]
	case "esc", "h":
		m.handler.GoToHome()
	}
	return nil
}

// View renders the catalogue above the shared bottom bar.
func (m *Model) View(width, height int) string {
	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("ADD2CART"))
	b.WriteString("\n")
	b.WriteString(m.theme.Screen.Subtitle.Render("CAMPUS MARKETPLACE"))
	b.WriteString("\n\n")
	for i, it := range catalogue {
		line := fmt.Sprintf("%s  %s", it.Name, m.theme.Board.Meta.Render(it.Price))
		if m.added[i] {
			line += "  " + m.theme.Board.Category.Render("IN CART")
		}
		if i == m.cursor {
			line = m.theme.Board.Selected.Render("→ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render("j/k move · enter toggle cart · esc home"))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}

// ElementAt exposes only the bottom bar as classifiable surface.
func (m *Model) ElementAt(x, y int) (nav.Element, bool) {
	return m.bar.ElementAt(x, y)
}
