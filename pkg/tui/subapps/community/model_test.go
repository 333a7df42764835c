package community

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/controller"
	"tableflip.dev/unihub/pkg/identity"
	"tableflip.dev/unihub/pkg/mockfeed"
	"tableflip.dev/unihub/pkg/post"
	"tableflip.dev/unihub/pkg/store"
	"tableflip.dev/unihub/pkg/tui/theme"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func fixture(t *testing.T, g identity.Gender) (*Model, *controller.Controller, *store.Store) {
	t.Helper()
	c := controller.New(nil)
	c.LoadComplete()
	c.LoginComplete(identity.Viewer{Name: "AISHA", Gender: g, Avatar: "👩‍🎓"})

	feed := &mockfeed.Feed{
		PerBoard: 3,
		Base:     time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
	}
	s := store.New(feed)
	m := New(theme.Default(), c, c, s)
	return m, c, s
}

func TestHomeGridNavigatesIntoBoard(t *testing.T) {
	m, c, _ := fixture(t, identity.Male)

	view := stripANSI(m.View(80, 24))
	if !strings.Contains(view, "AISHA") || !strings.Contains(view, "BATCH") {
		t.Fatalf("expected home grid, got %q", view)
	}

	m.Update(press('j')) // row down
	m.Update(press('l')) // right
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if c.View() != controller.Board {
		t.Fatalf("expected board view, got %v", c.View())
	}
	if c.BoardID() != board.All()[3].ID {
		t.Fatalf("expected fourth board, got %s", c.BoardID())
	}
}

func TestGateRejectionShowsNoticeAndKeyDismisses(t *testing.T) {
	m, c, _ := fixture(t, identity.Female)

	// Move the grid cursor onto the mens board (index 7).
	for i := 0; i < 3; i++ {
		m.Update(press('j'))
	}
	m.Update(press('l'))
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if c.View() != controller.Home {
		t.Fatalf("rejected navigation must stay home, got %v", c.View())
	}
	view := stripANSI(m.View(80, 24))
	if !strings.Contains(view, "ACCESS RESTRICTED TO MALE STUDENTS ONLY") {
		t.Fatalf("expected notice in view, got %q", view)
	}

	m.Update(press('x')) // any key dismisses, nothing else happens
	if c.Notice() != "" {
		t.Fatalf("expected notice cleared")
	}
	if c.View() != controller.Home {
		t.Fatalf("dismissal must not navigate, got %v", c.View())
	}
}

func TestBoardReactAndBookmarkKeys(t *testing.T) {
	m, c, s := fixture(t, identity.Male)
	if err := c.GoToBoard(board.Music); err != nil {
		t.Fatalf("GoToBoard: %v", err)
	}
	first := s.Posts(board.Music)[0]

	m.Update(press('3')) // heart
	if first.UserReaction == nil || *first.UserReaction != post.Heart {
		t.Fatalf("expected heart selected, got %v", first.UserReaction)
	}

	m.Update(press('b'))
	if !first.IsBookmarked || len(s.Bookmarks()) != 1 {
		t.Fatalf("expected bookmark, got %v %d", first.IsBookmarked, len(s.Bookmarks()))
	}

	view := stripANSI(m.View(80, 24))
	if !strings.Contains(view, "★") {
		t.Fatalf("expected bookmark star in view")
	}
}

func TestBoardDeleteClosesOverlayAndRemoves(t *testing.T) {
	m, c, s := fixture(t, identity.Male)
	if err := c.GoToBoard(board.Batch); err != nil {
		t.Fatalf("GoToBoard: %v", err)
	}
	first := s.Posts(board.Batch)[0]
	before := len(s.Posts(board.Batch))

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if c.SelectedPost() != first.ID {
		t.Fatalf("expected detail overlay on %s, got %q", first.ID, c.SelectedPost())
	}

	m.Update(press('x')) // delete from the overlay
	if c.SelectedPost() != "" {
		t.Fatalf("expected overlay closed with its post")
	}
	if len(s.Posts(board.Batch)) != before-1 {
		t.Fatalf("expected post removed, got %d", len(s.Posts(board.Batch)))
	}
}

func TestStaleOverlayClosesInsteadOfCrashing(t *testing.T) {
	m, c, s := fixture(t, identity.Male)
	if err := c.GoToBoard(board.Batch); err != nil {
		t.Fatalf("GoToBoard: %v", err)
	}
	first := s.Posts(board.Batch)[0]
	c.OpenPost(first.ID)

	// Deleted out from under the overlay, bypassing the UI path.
	s.DeletePost(first.ID)

	view := stripANSI(m.View(80, 24))
	if c.SelectedPost() != "" {
		t.Fatalf("expected stale overlay closed")
	}
	if !strings.Contains(view, "BATCH") {
		t.Fatalf("expected board view behind the closed overlay, got %q", view)
	}
}

func TestNewPostFlow(t *testing.T) {
	m, c, s := fixture(t, identity.Male)
	if err := c.GoToBoard(board.Sports); err != nil {
		t.Fatalf("GoToBoard: %v", err)
	}
	before := len(s.Posts(board.Sports))

	m.Update(press('n'))
	if !c.NewPostOpen() {
		t.Fatalf("expected new-post modal open")
	}
	view := stripANSI(m.View(80, 24))
	if !strings.Contains(view, "NEW POST") {
		t.Fatalf("expected modal in view, got %q", view)
	}

	for _, r := range "Hi" {
		m.Update(press(r))
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "Test" {
		m.Update(press(r))
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if c.NewPostOpen() {
		t.Fatalf("expected modal closed after submit")
	}
	posts := s.Posts(board.Sports)
	if len(posts) != before+1 {
		t.Fatalf("expected board to grow, got %d", len(posts))
	}
	if posts[0].Title != "Hi" || posts[0].Content != "Test" {
		t.Fatalf("unexpected draft %q %q", posts[0].Title, posts[0].Content)
	}
}

func TestNewPostEscapeCancels(t *testing.T) {
	m, c, s := fixture(t, identity.Male)
	if err := c.GoToBoard(board.Sports); err != nil {
		t.Fatalf("GoToBoard: %v", err)
	}
	before := len(s.Posts(board.Sports))

	m.Update(press('n'))
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if c.NewPostOpen() {
		t.Fatalf("expected modal closed")
	}
	if len(s.Posts(board.Sports)) != before {
		t.Fatalf("cancel must not create a post")
	}
}

func TestBookmarksViewRoundTrip(t *testing.T) {
	m, c, s := fixture(t, identity.Male)
	if err := c.GoToBoard(board.Movie); err != nil {
		t.Fatalf("GoToBoard: %v", err)
	}
	m.Update(press('b')) // bookmark first post
	m.Update(press('m')) // open bookmarks

	if c.View() != controller.Bookmarks {
		t.Fatalf("expected bookmarks view, got %v", c.View())
	}
	view := stripANSI(m.View(80, 24))
	if !strings.Contains(view, "BOOKMARKS") {
		t.Fatalf("expected bookmarks screen, got %q", view)
	}

	m.Update(press('b')) // unbookmark from the bookmarks view
	if len(s.Bookmarks()) != 0 {
		t.Fatalf("expected bookmark cleared, got %d", len(s.Bookmarks()))
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if c.View() != controller.Board || c.BoardID() != board.Movie {
		t.Fatalf("expected return to movie board, got %v %s", c.View(), c.BoardID())
	}
}

func TestNotificationsPanelToggleAndNavigate(t *testing.T) {
	m, c, _ := fixture(t, identity.Female)

	m.Update(press('n'))
	view := stripANSI(m.View(80, 24))
	if !strings.Contains(view, "NOTIFICATIONS") ||
		!strings.Contains(view, "NEW COMMENT ON POST") ||
		!strings.Contains(view, "SOMEONE REPLIED TO STUDY GROUP") {
		t.Fatalf("expected notification entries, got %q", view)
	}

	// Selecting an entry navigates to its board and closes the panel.
	m.Update(press('j'))
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if c.View() != controller.Board || c.BoardID() != board.Announcements {
		t.Fatalf("expected announcements board, got %v %s", c.View(), c.BoardID())
	}
	if m.notifOpen {
		t.Fatalf("expected panel closed after navigation")
	}
}

func TestNotificationsPanelEscapeCloses(t *testing.T) {
	m, c, _ := fixture(t, identity.Male)

	m.Update(press('n'))
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.notifOpen {
		t.Fatalf("expected panel closed")
	}
	if c.View() != controller.Home {
		t.Fatalf("closing must not navigate, got %v", c.View())
	}
	if strings.Contains(stripANSI(m.View(80, 24)), "NEW COMMENT ON POST") {
		t.Fatalf("expected entries hidden when closed")
	}
}

func TestMailButtonElement(t *testing.T) {
	m, _, _ := fixture(t, identity.Female)
	m.View(80, 24) // records the mail span

	el, ok := m.ElementAt(m.mailSpan[0], 0)
	if !ok || el.Markup != "mail" {
		t.Fatalf("expected mail element, got %+v %v", el, ok)
	}
	if _, ok := m.ElementAt(0, 0); ok {
		t.Fatalf("expected miss on the header name")
	}
}
