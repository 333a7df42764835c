// Package messages is the messaging sub-application. Mounting it
// shows a short redirect screen before the inbox, mirroring the timed
// hand-off to the externally hosted messages surface. The redirect
// timer is mount-scoped: unmounting invalidates any pending firing so
// a transition never lands on a torn-down context.
package messages

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/tui/components/bottomnav"
	"tableflip.dev/unihub/pkg/tui/theme"
)

const redirectDelay = 500 * time.Millisecond

// redirectMsg fires when the redirect delay elapses. The generation
// counter identifies the mount that armed it.
type redirectMsg struct{ gen int }

type message struct {
	Sender string
	Text   string
	Time   string
	Unread bool
}

// seedInbox returns the session's starting inbox. Each Model owns its
// copy, so read state never leaks between instances.
func seedInbox() []message {
	return []message{
		{"SARAH AHMAD", "HEY! JOINING STUDY GROUP TONIGHT?", "2 MIN AGO", true},
		{"ALEX WONG", "CHECK OUT THIS ASSIGNMENT HELP", "15 MIN AGO", true},
		{"MARIA SANTOS", "MOVIE NIGHT THIS WEEKEND?", "1 HOUR AGO", false},
	}
}

// Model renders the redirect screen, then the inbox.
type Model struct {
	theme   theme.Theme
	handler nav.Handler
	bar     *bottomnav.Model

	inbox      []message
	gen        int
	redirected bool
	cursor     int
}

// New builds the messages surface; Mount arms the redirect.
func New(t theme.Theme, h nav.Handler) *Model {
	bar := bottomnav.New(t)
	bar.SetActive(nav.Messages)
	return &Model{theme: t, handler: h, bar: bar, inbox: seedInbox()}
}

// Mount arms the redirect timer for this mount generation.
func (m *Model) Mount() tea.Cmd {
	m.redirected = false
	gen := m.gen
	return tea.Tick(redirectDelay, func(time.Time) tea.Msg {
		return redirectMsg{gen: gen}
	})
}

// Unmount invalidates the pending redirect timer.
func (m *Model) Unmount() {
	m.gen++
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case redirectMsg:
		if msg.gen == m.gen {
			m.redirected = true
		}
		return nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "j", "down":
			if m.redirected && m.cursor < len(m.inbox)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.redirected && m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.redirected {
				m.inbox[m.cursor].Unread = false
			}
		case "esc", "h":
			// Fallback action while redirecting, plain exit after.
			m.handler.GoToHome()
		}
	}
	return nil
}

func (m *Model) View(width, height int) string {
	if !m.redirected {
		body := m.theme.Screen.Title.Render("REDIRECTING TO MESSAGES...") + "\n\n" +
			m.theme.Screen.Subtitle.Render("LOADING YOUR SEPARATE MESSAGES APP") + "\n\n" +
			m.theme.Footer.Help.Render("esc BACK TO HOME")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("MESSAGES"))
	b.WriteString("\n\n")
	for i, msg := range m.inbox {
		line := msg.Sender + "  " + m.theme.Board.Meta.Render(msg.Time)
		if msg.Unread {
			line += "  " + m.theme.Board.Category.Render("NEW")
		}
		line += "\n  " + m.theme.Screen.Faint.Render(msg.Text)
		if i == m.cursor {
			line = m.theme.Board.Selected.Render("→ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render("j/k move · enter read · esc home"))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}

func (m *Model) ElementAt(x, y int) (nav.Element, bool) {
	return m.bar.ElementAt(x, y)
}
