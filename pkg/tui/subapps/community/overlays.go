package community

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/post"
)

func (m *Model) updateDetail(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	p := m.selectedPost()
	if p == nil {
		return nil
	}

	s := key.String()
	if m.react(s, p) {
		return nil
	}
	switch s {
	case "b":
		m.store.ToggleBookmark(p.ID)
	case "s":
		_ = m.store.CopyShareText(p)
	case "x":
		m.deletePost(p)
	case "!":
		m.store.Report(p.ID, "inappropriate content")
	case "esc", "q":
		m.ctrl.ClosePost()
	}
	return nil
}

func (m *Model) viewDetail(p *post.Post, width, height int) string {
	var b strings.Builder
	b.WriteString(m.theme.Modal.Title.Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Board.Meta.Render(
		fmt.Sprintf("%s %s · %s · batch %s", p.Avatar, p.Author, p.Timestamp, p.Batch)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Modal.Body.Render(p.Content))
	if len(p.Images) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Screen.Faint.Render(
			fmt.Sprintf("%d image(s): %s", len(p.Images), strings.Join(p.Images, ", "))))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderReactions(p))
	if p.IsBookmarked {
		b.WriteString("\n")
		b.WriteString(m.theme.Board.Selected.Render("★ BOOKMARKED"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Help.Render(
		"1-5 react · b bookmark · s share · x delete · ! report · esc close"))

	modal := m.theme.Modal.Frame.MaxWidth(width - 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) resetForm() {
	m.form.title.Reset()
	m.form.content.Reset()
	m.form.batch.Reset()
	m.form.focus = 0
	m.form.title.Focus()
	m.form.content.Blur()
	m.form.batch.Blur()
}

func (m *Model) updateNewPost(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m.routeFormInput(msg)
	}

	switch key.String() {
	case "tab":
		return m.cycleFormFocus(1)
	case "shift+tab":
		return m.cycleFormFocus(-1)
	case "enter":
		d := post.Draft{
			Title:   strings.TrimSpace(m.form.title.Value()),
			Content: strings.TrimSpace(m.form.content.Value()),
			Batch:   strings.TrimSpace(m.form.batch.Value()),
		}
		m.store.CreatePost(m.ctrl.BoardID(), d)
		m.ctrl.CloseNewPost()
		m.postCursor = 0
		return nil
	case "esc":
		m.ctrl.CloseNewPost()
		return nil
	}
	return m.routeFormInput(msg)
}

func (m *Model) cycleFormFocus(dir int) tea.Cmd {
	m.form.focus = (m.form.focus + dir + 3) % 3
	m.form.title.Blur()
	m.form.content.Blur()
	m.form.batch.Blur()
	switch m.form.focus {
	case 0:
		return m.form.title.Focus()
	case 1:
		return m.form.content.Focus()
	}
	return m.form.batch.Focus()
}

func (m *Model) routeFormInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.form.focus {
	case 0:
		m.form.title, cmd = m.form.title.Update(msg)
	case 1:
		m.form.content, cmd = m.form.content.Update(msg)
	default:
		m.form.batch, cmd = m.form.batch.Update(msg)
	}
	return cmd
}

func (m *Model) viewNewPost(width, height int) string {
	var b strings.Builder
	b.WriteString(m.theme.Modal.Title.Render("NEW POST"))
	b.WriteString("\n\n")
	b.WriteString("TITLE\n")
	b.WriteString(m.form.title.View())
	b.WriteString("\n\nCONTENT\n")
	b.WriteString(m.form.content.View())
	b.WriteString("\n\nBATCH\n")
	b.WriteString(m.form.batch.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Help.Render("tab next field · enter submit · esc cancel"))

	modal := m.theme.Modal.Frame.MaxWidth(width - 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
