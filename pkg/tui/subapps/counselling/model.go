// Package counselling is the appointment-booking sub-application.
package counselling

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/tui/components/bottomnav"
	"tableflip.dev/unihub/pkg/tui/theme"
)

var slots = []string{
	"MON 10:00  DR. AZIZAH — ACADEMIC STRESS",
	"TUE 14:00  MR. TAN — CAREER GUIDANCE",
	"WED 09:00  MS. PRIYA — PERSONAL WELLBEING",
	"THU 16:00  DR. AZIZAH — ACADEMIC STRESS",
	"FRI 11:00  MR. TAN — CAREER GUIDANCE",
}

// Model renders the counselling surface.
type Model struct {
	theme   theme.Theme
	handler nav.Handler
	bar     *bottomnav.Model
	cursor  int
	booked  int // slot index, -1 when none
}

// New mounts counselling with the shared navigation handler.
func New(t theme.Theme, h nav.Handler) *Model {
	bar := bottomnav.New(t)
	bar.SetActive(nav.Counselling)
	return &Model{theme: t, handler: h, bar: bar, booked: -1}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "j", "down":
		if m.cursor < len(slots)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		m.booked = m.cursor
	case "esc", "h":
		m.handler.GoToHome()
	}
	return nil
}

func (m *Model) View(width, height int) string {
	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("COUNSELLING"))
	b.WriteString("\n")
	b.WriteString(m.theme.Screen.Subtitle.Render("BOOK A SESSION"))
	b.WriteString("\n\n")
	for i, s := range slots {
		line := s
		if i == m.booked {
			line += "  " + m.theme.Board.Category.Render("BOOKED")
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
	b.WriteString(m.theme.Footer.Help.Render("j/k move · enter book · esc home"))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}

func (m *Model) ElementAt(x, y int) (nav.Element, bool) {
	return m.bar.ElementAt(x, y)
}
