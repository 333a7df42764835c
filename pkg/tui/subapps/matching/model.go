// Package matching is the student-matching sub-application.
package matching

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/tui/components/bottomnav"
	"tableflip.dev/unihub/pkg/tui/theme"
)

type candidate struct {
	Name     string
	Major    string
	Interest string
}

var candidates = []candidate{
	{"AISYAH, 21", "COMPUTER SCIENCE", "INDIE MUSIC, BOULDERING"},
	{"DANIEL, 22", "BUSINESS", "FUTSAL, BOARD GAMES"},
	{"MEI LING, 20", "ENGINEERING", "PHOTOGRAPHY, COFFEE"},
	{"HAFIZ, 23", "ARTS", "FILM, CYCLING"},
}

// Model renders one candidate card at a time.
type Model struct {
	theme   theme.Theme
	handler nav.Handler
	bar     *bottomnav.Model
	index   int
	liked   map[int]bool
}

// New mounts matching with the shared navigation handler.
func New(t theme.Theme, h nav.Handler) *Model {
	bar := bottomnav.New(t)
	bar.SetActive(nav.Matching)
	return &Model{theme: t, handler: h, bar: bar, liked: map[int]bool{}}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "l", "right":
		m.liked[m.index] = true
		m.advance()
	case "x", "left":
		m.advance()
	case "esc", "h":
		m.handler.GoToHome()
	}
	return nil
}

func (m *Model) advance() {
	m.index = (m.index + 1) % len(candidates)
}

func (m *Model) View(width, height int) string {
	c := candidates[m.index]

	var card strings.Builder
	card.WriteString(m.theme.Modal.Title.Render(c.Name))
	card.WriteString("\n\n")
	card.WriteString(c.Major)
	card.WriteString("\n")
	card.WriteString(m.theme.Board.Meta.Render(c.Interest))
	if m.liked[m.index] {
		card.WriteString("\n\n")
		card.WriteString(m.theme.Board.Category.Render("LIKED"))
	}

	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("MATCHING"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Board.Card.Render(card.String()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Help.Render("l like · x pass · esc home"))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}

func (m *Model) ElementAt(x, y int) (nav.Element, bool) {
	return m.bar.ElementAt(x, y)
}
