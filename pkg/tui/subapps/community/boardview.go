package community

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/post"
)

func (m *Model) updateBoard(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	posts := m.boardPosts()
	m.postCursor = clampCursor(m.postCursor, len(posts))
	var current *post.Post
	if len(posts) > 0 {
		current = posts[m.postCursor]
	}

	s := key.String()
	if m.react(s, current) {
		return nil
	}
	switch s {
	case "j", "down":
		if m.postCursor < len(posts)-1 {
			m.postCursor++
		}
	case "k", "up":
		if m.postCursor > 0 {
			m.postCursor--
		}
	case "enter":
		if current != nil {
			m.ctrl.OpenPost(current.ID)
		}
	case "n":
		m.resetForm()
		m.ctrl.OpenNewPost()
		return m.form.title.Focus()
	case "b":
		if current != nil {
			m.store.ToggleBookmark(current.ID)
		}
	case "s":
		if current != nil {
			_ = m.store.CopyShareText(current)
		}
	case "x":
		m.deletePost(current)
	case "!":
		if current != nil {
			m.store.Report(current.ID, "inappropriate content")
		}
	case "m":
		m.ctrl.GoToBookmarks()
		m.bookmarkCursor = 0
	case "esc", "h":
		m.handler.GoToHome()
	}
	return nil
}

func (m *Model) viewBoard(width, height int) string {
	info, _ := board.Lookup(m.ctrl.BoardID())
	posts := m.boardPosts()
	m.postCursor = clampCursor(m.postCursor, len(posts))

	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render(info.Title))
	b.WriteString("  ")
	b.WriteString(m.theme.Board.Category.Render(strings.Join(info.Categories, " · ")))
	b.WriteString("\n\n")

	if len(posts) == 0 {
		b.WriteString(m.theme.Screen.Faint.Render("NO POSTS YET — PRESS n TO START ONE"))
		b.WriteString("\n")
	}
	for i, p := range posts {
		b.WriteString(m.renderPostLine(p, i == m.postCursor))
		b.WriteString("\n")
	}

	if notice := m.ctrl.Notice(); notice != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Screen.Notice.Render(notice))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render(
		"j/k move · enter open · n new · b bookmark · 1-5 react · s share · x delete · m bookmarks · esc home"))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}

func (m *Model) renderPostLine(p *post.Post, selected bool) string {
	marker := "  "
	title := p.Title
	if selected {
		marker = m.theme.Board.Selected.Render("→ ")
		title = m.theme.Board.Selected.Render(title)
	}
	flags := ""
	if p.IsBookmarked {
		flags += " ★"
	}
	meta := fmt.Sprintf("%s %s · %s · %d comments%s",
		p.Avatar, p.Author, p.Timestamp, p.Comments, flags)
	return marker + title + "\n    " +
		m.theme.Board.Meta.Render(meta) + "\n    " + m.renderReactions(p)
}

func (m *Model) renderReactions(p *post.Post) string {
	parts := make([]string, 0, 5)
	for i, r := range post.Reactions() {
		cell := fmt.Sprintf("%d:%s %d", i+1, r.Symbol(), p.Reactions[r])
		if p.UserReaction != nil && *p.UserReaction == r {
			cell = m.theme.Board.Selected.Render(cell)
		}
		parts = append(parts, cell)
	}
	return strings.Join(parts, "  ")
}

func (m *Model) updateBookmarks(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	marks := m.store.Bookmarks()
	m.bookmarkCursor = clampCursor(m.bookmarkCursor, len(marks))
	var current *post.Post
	if len(marks) > 0 {
		current = marks[m.bookmarkCursor]
	}

	s := key.String()
	if m.react(s, current) {
		return nil
	}
	switch s {
	case "j", "down":
		if m.bookmarkCursor < len(marks)-1 {
			m.bookmarkCursor++
		}
	case "k", "up":
		if m.bookmarkCursor > 0 {
			m.bookmarkCursor--
		}
	case "enter":
		if current != nil {
			m.ctrl.OpenPost(current.ID)
		}
	case "b":
		if current != nil {
			m.store.ToggleBookmark(current.ID)
		}
	case "x":
		m.deletePost(current)
	case "esc":
		m.ctrl.BackToBoard()
	case "h":
		m.handler.GoToHome()
	}
	return nil
}

func (m *Model) viewBookmarks(width, height int) string {
	marks := m.store.Bookmarks()
	m.bookmarkCursor = clampCursor(m.bookmarkCursor, len(marks))

	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("BOOKMARKS"))
	b.WriteString("\n\n")
	if len(marks) == 0 {
		b.WriteString(m.theme.Screen.Faint.Render("NOTHING BOOKMARKED YET"))
		b.WriteString("\n")
	}
	for i, p := range marks {
		b.WriteString(m.renderPostLine(p, i == m.bookmarkCursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render(
		"j/k move · enter open · b unbookmark · esc board · h home"))

	m.bar.SetRow(height - m.bar.Height())
	body := lipgloss.NewStyle().Height(height - m.bar.Height()).Width(width).Render(b.String())
	return body + "\n" + m.bar.View(width)
}
