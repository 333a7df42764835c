// Package controller owns which sub-application is mounted, the auth
// progression, and the community app's view and overlay state. Every
// transition is idempotent so overlapping navigation heuristics can
// safely fire more than once per activation.
package controller

import (
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/identity"
	"tableflip.dev/unihub/pkg/nav"
)

// AuthState is the session's position in the auth progression.
type AuthState int

const (
	Loading AuthState = iota
	Login
	Registration
	Authenticated
)

// CommunityView is the secondary view inside the community app.
type CommunityView int

const (
	Home CommunityView = iota
	Board
	Bookmarks
)

// ErrRestricted rejects a gender-gated board navigation.
var ErrRestricted = errors.New("controller: board access restricted")

// Controller is the single owner of navigation state for the session.
type Controller struct {
	auth AuthState
	app  nav.Destination

	view    CommunityView
	boardID board.ID

	selectedPost string
	newPostOpen  bool
	notice       string

	viewer identity.Viewer
	log    *zap.Logger
}

// New returns a controller at the loading screen, community mounted.
func New(log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		auth:    Loading,
		app:     nav.Community,
		view:    Home,
		boardID: board.Batch,
		log:     log,
	}
}

// Auth returns the auth progression state.
func (c *Controller) Auth() AuthState { return c.auth }

// App returns which top-level sub-application is mounted.
func (c *Controller) App() nav.Destination { return c.app }

// View returns the community app's secondary view.
func (c *Controller) View() CommunityView { return c.view }

// BoardID returns the active board while View() == Board.
func (c *Controller) BoardID() board.ID { return c.boardID }

// SelectedPost returns the post-detail overlay's post id, "" when the
// overlay is closed.
func (c *Controller) SelectedPost() string { return c.selectedPost }

// NewPostOpen reports whether the new-post modal is open.
func (c *Controller) NewPostOpen() bool { return c.newPostOpen }

// Notice returns the pending blocking notice, "" when none.
func (c *Controller) Notice() string { return c.notice }

// ClearNotice dismisses the pending notice.
func (c *Controller) ClearNotice() { c.notice = "" }

// Viewer returns the session identity. Zero until authenticated.
func (c *Controller) Viewer() identity.Viewer { return c.viewer }

// LoadComplete moves loading → login.
func (c *Controller) LoadComplete() {
	if c.auth == Loading {
		c.auth = Login
	}
}

// GoToRegistration moves login → registration.
func (c *Controller) GoToRegistration() {
	if c.auth == Login {
		c.auth = Registration
	}
}

// BackToLogin moves registration → login.
func (c *Controller) BackToLogin() {
	if c.auth == Registration {
		c.auth = Login
	}
}

// LoginComplete fixes the viewer identity for the session and moves to
// authenticated. Terminal: there is no logout path.
func (c *Controller) LoginComplete(v identity.Viewer) {
	if c.auth != Login && c.auth != Registration {
		return
	}
	c.viewer = v
	c.auth = Authenticated
	c.log.Info("session authenticated", zap.String("user", v.Name))
}

// RegistrationComplete behaves like LoginComplete from the
// registration screen.
func (c *Controller) RegistrationComplete(v identity.Viewer) {
	c.LoginComplete(v)
}

// GoToHome mounts the community app and resets it to a clean slate:
// home view, both overlays cleared. Home is always a clean slate no
// matter what was open when the user navigated away.
func (c *Controller) GoToHome() {
	c.setApp(nav.Community)
	c.view = Home
	c.selectedPost = ""
	c.newPostOpen = false
}

// GoToAdd2Cart mounts the cart sub-application.
func (c *Controller) GoToAdd2Cart() { c.setApp(nav.Cart) }

// GoToCounselling mounts the counselling sub-application.
func (c *Controller) GoToCounselling() { c.setApp(nav.Counselling) }

// GoToMatching mounts the matching sub-application.
func (c *Controller) GoToMatching() { c.setApp(nav.Matching) }

// GoToProfile mounts the profile sub-application.
func (c *Controller) GoToProfile() { c.setApp(nav.Profile) }

// GoToMessages mounts the messages sub-application.
func (c *Controller) GoToMessages() { c.setApp(nav.Messages) }

// GoToBoard enters a board, forcing the community app to the front.
// The mens/womens boards are gated on the viewer's gender: a rejected
// call leaves all state unchanged apart from the surfaced notice.
func (c *Controller) GoToBoard(id board.ID) error {
	if !board.Valid(id) {
		return nil
	}
	if !board.Accessible(id, c.viewer.Gender) {
		c.notice = board.RestrictedNotice(id)
		c.log.Info("board access rejected",
			zap.String("board", string(id)),
			zap.String("gender", string(c.viewer.Gender)))
		return ErrRestricted
	}
	c.setApp(nav.Community)
	c.boardID = id
	c.view = Board
	return nil
}

// GoToBookmarks shows the community bookmarks view.
func (c *Controller) GoToBookmarks() {
	c.setApp(nav.Community)
	c.view = Bookmarks
}

// BackToBoard returns from bookmarks to the active board.
func (c *Controller) BackToBoard() {
	c.view = Board
}

// OpenPost opens the post-detail overlay without changing the view.
func (c *Controller) OpenPost(postID string) {
	c.selectedPost = postID
}

// ClosePost clears only the post-detail overlay.
func (c *Controller) ClosePost() {
	c.selectedPost = ""
}

// OpenNewPost opens the new-post modal.
func (c *Controller) OpenNewPost() {
	c.newPostOpen = true
}

// CloseNewPost closes the new-post modal.
func (c *Controller) CloseNewPost() {
	c.newPostOpen = false
}

// PostDeleted drops the detail overlay when it references the deleted
// post, so a stale overlay never outlives its subject.
func (c *Controller) PostDeleted(postID string) {
	if c.selectedPost == postID {
		c.selectedPost = ""
	}
}

func (c *Controller) setApp(d nav.Destination) {
	if c.app == d {
		return
	}
	c.app = d
	c.log.Info("navigated", zap.String("app", d.String()))
}

var _ nav.Handler = (*Controller)(nil)
