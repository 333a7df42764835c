// Package community is the community/registration sub-application:
// the home board grid, the per-board feeds, bookmarks, and the post
// overlays, all reading and mutating the shared post store.
package community

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/unihub/pkg/controller"
	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/post"
	"tableflip.dev/unihub/pkg/store"
	"tableflip.dev/unihub/pkg/tui/components/bottomnav"
	"tableflip.dev/unihub/pkg/tui/theme"
)

// Model renders the community surfaces according to the controller's
// secondary view and overlay state.
type Model struct {
	theme   theme.Theme
	handler nav.Handler
	ctrl    *controller.Controller
	store   *store.Store
	bar     *bottomnav.Model

	homeCursor     int
	postCursor     int
	bookmarkCursor int

	notifOpen   bool
	notifCursor int

	form     newPostForm
	mailSpan [2]int // x range of the home screen's mail button
}

type newPostForm struct {
	title   textinput.Model
	content textinput.Model
	batch   textinput.Model
	focus   int
}

// New mounts the community app over the shared store and controller.
func New(t theme.Theme, h nav.Handler, c *controller.Controller, s *store.Store) *Model {
	bar := bottomnav.New(t)
	bar.SetActive(nav.Community)

	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Prompt = "> "
		return ti
	}
	return &Model{
		theme:   t,
		handler: h,
		ctrl:    c,
		store:   s,
		bar:     bar,
		form: newPostForm{
			title:   mk("TITLE", 80),
			content: mk("CONTENT", 280),
			batch:   mk("BATCH (OPTIONAL)", 20),
		},
	}
}

// Update routes input by overlay first, then by the controller's view.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.ctrl.Notice() != "" {
		if _, ok := msg.(tea.KeyPressMsg); ok {
			m.ctrl.ClearNotice()
		}
		return nil
	}
	if m.ctrl.NewPostOpen() {
		return m.updateNewPost(msg)
	}
	if m.ctrl.SelectedPost() != "" {
		return m.updateDetail(msg)
	}

	switch m.ctrl.View() {
	case controller.Home:
		return m.updateHome(msg)
	case controller.Board:
		return m.updateBoard(msg)
	case controller.Bookmarks:
		return m.updateBookmarks(msg)
	}
	return m.updateFallback(msg)
}

// View renders the active community screen.
func (m *Model) View(width, height int) string {
	if m.ctrl.NewPostOpen() {
		return m.viewNewPost(width, height)
	}
	if p := m.selectedPost(); p != nil {
		return m.viewDetail(p, width, height)
	}

	switch m.ctrl.View() {
	case controller.Home:
		return m.viewHome(width, height)
	case controller.Board:
		return m.viewBoard(width, height)
	case controller.Bookmarks:
		return m.viewBookmarks(width, height)
	}
	return m.viewFallback(width, height)
}

// ElementAt exposes the home screen's mail button and the bottom bar.
func (m *Model) ElementAt(x, y int) (nav.Element, bool) {
	if m.ctrl.View() == controller.Home && y == 0 &&
		x >= m.mailSpan[0] && x < m.mailSpan[1] {
		return nav.Element{Markup: "mail"}, true
	}
	return m.bar.ElementAt(x, y)
}

func (m *Model) selectedPost() *post.Post {
	id := m.ctrl.SelectedPost()
	if id == "" {
		return nil
	}
	p := m.store.Find(id)
	if p == nil {
		// Stale overlay reference, e.g. the post was deleted from the
		// bookmarks copy. Close rather than crash.
		m.ctrl.ClosePost()
	}
	return p
}

func (m *Model) boardPosts() []*post.Post {
	return m.store.Posts(m.ctrl.BoardID())
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// react applies the keyed reaction to the post, if the key is one of
// the 1..5 reaction slots.
func (m *Model) react(key string, p *post.Post) bool {
	if p == nil {
		return false
	}
	idx := -1
	switch key {
	case "1":
		idx = 0
	case "2":
		idx = 1
	case "3":
		idx = 2
	case "4":
		idx = 3
	case "5":
		idx = 4
	}
	if idx < 0 {
		return false
	}
	m.store.SetReaction(p.ID, post.Reactions()[idx])
	return true
}

func (m *Model) deletePost(p *post.Post) {
	if p == nil {
		return
	}
	m.store.DeletePost(p.ID)
	m.ctrl.PostDeleted(p.ID)
}
