package community

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/board"
)

const gridCols = 2

// notification is one entry in the home screen's notifications panel.
// Entries are session-static; selecting one navigates to its board.
type notification struct {
	Title   string
	Message string
	Time    string
	Board   board.ID
}

var notifications = []notification{
	{"NEW COMMENT ON POST", "SOMEONE REPLIED TO STUDY GROUP", "5 MIN AGO", board.Batch},
	{"EVENT REMINDER", "SPRING FESTIVAL MEETING IN 1H", "1 HOUR AGO", board.Announcements},
	{"NEW ANNOUNCEMENT", "LIBRARY EXTENDED HOURS", "2 HOURS AGO", board.Announcements},
}

func (m *Model) updateHome(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if m.notifOpen {
		return m.updateNotifications(key)
	}
	boards := board.All()
	switch key.String() {
	case "j", "down":
		if m.homeCursor+gridCols < len(boards) {
			m.homeCursor += gridCols
		}
	case "k", "up":
		if m.homeCursor-gridCols >= 0 {
			m.homeCursor -= gridCols
		}
	case "l", "right":
		if m.homeCursor+1 < len(boards) {
			m.homeCursor++
		}
	case "h", "left":
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case "enter":
		// The gate rejection surfaces as a notice; state is otherwise
		// untouched.
		_ = m.ctrl.GoToBoard(boards[m.homeCursor].ID)
		m.postCursor = 0
	case "n":
		m.notifOpen = true
		m.notifCursor = 0
	}
	return nil
}

func (m *Model) updateNotifications(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "j", "down":
		if m.notifCursor < len(notifications)-1 {
			m.notifCursor++
		}
	case "k", "up":
		if m.notifCursor > 0 {
			m.notifCursor--
		}
	case "enter":
		// Entries only reference open boards, so the gate never fires.
		_ = m.ctrl.GoToBoard(notifications[m.notifCursor].Board)
		m.notifOpen = false
		m.postCursor = 0
	case "esc", "n":
		m.notifOpen = false
	}
	return nil
}

func (m *Model) viewHome(width, height int) string {
	v := m.ctrl.Viewer()

	mail := m.theme.Board.Selected.Render("[✉ MAIL]")
	header := v.Avatar + " " + m.theme.Screen.Title.Render(v.Name) +
		"  " + m.theme.Screen.Faint.Render(fmt.Sprintf("🔔 %d", len(notifications)))
	gap := width - lipgloss.Width(header) - lipgloss.Width(mail)
	if gap < 1 {
		gap = 1
	}
	m.mailSpan = [2]int{lipgloss.Width(header) + gap, lipgloss.Width(header) + gap + lipgloss.Width(mail)}
	header += strings.Repeat(" ", gap) + mail

	var rows []string
	boards := board.All()
	for i := 0; i < len(boards); i += gridCols {
		var cells []string
		for j := i; j < i+gridCols && j < len(boards); j++ {
			info := boards[j]
			title := info.Title
			if j == m.homeCursor {
				title = m.theme.Board.Selected.Render("→ " + title)
			}
			cell := title + "\n" + m.theme.Screen.Subtitle.Render(info.Subtitle)
			cells = append(cells, m.theme.Board.Card.Width(width/gridCols-2).Render(cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	if m.notifOpen {
		b.WriteString(m.viewNotifications())
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")
	if notice := m.ctrl.Notice(); notice != "" {
		b.WriteString(m.theme.Screen.Notice.Render(notice))
		b.WriteString("\n")
	}
	help := "arrows move · enter open board · n notifications"
	if m.notifOpen {
		help = "j/k move · enter go to board · esc close"
	}
	b.WriteString(m.theme.Footer.Help.Render(help))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}

func (m *Model) viewNotifications() string {
	var b strings.Builder
	b.WriteString(m.theme.Modal.Title.Render("NOTIFICATIONS"))
	b.WriteString("\n")
	for i, n := range notifications {
		line := n.Title + "  " + m.theme.Board.Meta.Render(n.Time) +
			"\n  " + m.theme.Screen.Faint.Render(n.Message)
		if i == m.notifCursor {
			line = m.theme.Board.Selected.Render("→ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return m.theme.Board.Card.Render(b.String())
}

func (m *Model) updateFallback(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "h", "enter", "esc":
		m.handler.GoToHome()
	}
	return nil
}

// viewFallback is the terminal screen for an unknown view value. Its
// single recovery action resets to home; there is always a rendering
// path.
func (m *Model) viewFallback(width, height int) string {
	body := m.theme.Screen.Notice.Render("SOMETHING WENT WRONG") + "\n\n" +
		m.theme.Footer.Help.Render("press h to return home")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
