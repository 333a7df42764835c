// Package host mounts exactly one sub-application at a time based on
// the view controller's state. Every sub-application receives the same
// navigation handler instance as the interceptor, so a sub-app's own
// buttons and the interceptor's inferred calls converge on identical
// behavior.
package host

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/unihub/pkg/controller"
	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/store"
	"tableflip.dev/unihub/pkg/tui/components/authflow"
	"tableflip.dev/unihub/pkg/tui/subapp"
	"tableflip.dev/unihub/pkg/tui/subapps/cart"
	"tableflip.dev/unihub/pkg/tui/subapps/community"
	"tableflip.dev/unihub/pkg/tui/subapps/counselling"
	"tableflip.dev/unihub/pkg/tui/subapps/matching"
	"tableflip.dev/unihub/pkg/tui/subapps/messages"
	"tableflip.dev/unihub/pkg/tui/subapps/profile"
	"tableflip.dev/unihub/pkg/tui/theme"
)

// Model is the program root.
type Model struct {
	theme theme.Theme
	log   *zap.Logger

	ctrl        *controller.Controller
	store       *store.Store
	interceptor *nav.Interceptor

	loading      *authflow.Loading
	login        *authflow.Form
	registration *authflow.Form

	apps    map[nav.Destination]subapp.Model
	mounted nav.Destination

	width  int
	height int
}

// New wires the host over a seeded store.
func New(s *store.Store, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	t := theme.Default()
	ctrl := controller.New(log)
	return &Model{
		theme:        t,
		log:          log,
		ctrl:         ctrl,
		store:        s,
		interceptor:  nav.NewInterceptor(ctrl, log),
		loading:      authflow.NewLoading(t),
		login:        authflow.NewLogin(t),
		registration: authflow.NewRegistration(t),
		mounted:      nav.Community,
	}
}

// Controller exposes navigation state, mainly for tests.
func (m *Model) Controller() *controller.Controller { return m.ctrl }

// Init arms the loading screen.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loading.Start(), m.login.Init())
}

// Update routes messages by auth state, then keeps the mounted
// sub-application in sync with the controller.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			// Listener teardown is guaranteed on every exit path.
			m.interceptor.Teardown()
			m.loading.Cancel()
			return m, tea.Quit
		}
	case authflow.LoadDoneMsg:
		if !m.loading.Stale(msg) {
			m.ctrl.LoadComplete()
		}
		return m, nil
	case authflow.ToRegistrationMsg:
		m.ctrl.GoToRegistration()
		return m, m.registration.Init()
	case authflow.ToLoginMsg:
		m.ctrl.BackToLogin()
		return m, m.login.Init()
	case authflow.CompletedMsg:
		return m, m.authenticate(msg)
	}

	switch m.ctrl.Auth() {
	case controller.Loading:
		return m, nil
	case controller.Login:
		return m, m.login.Update(msg)
	case controller.Registration:
		return m, m.registration.Update(msg)
	}

	if click, ok := msg.(tea.MouseClickMsg); ok {
		return m, m.routeClick(click)
	}

	cmd := m.current().Update(msg)
	return m, tea.Batch(cmd, m.syncMount())
}

// View renders the auth flow until authenticated, then the mounted
// sub-application.
func (m *Model) View() string {
	w, h := m.size()
	switch m.ctrl.Auth() {
	case controller.Loading:
		return m.loading.View(w, h)
	case controller.Login:
		return m.login.View(w, h)
	case controller.Registration:
		return m.registration.View(w, h)
	}
	return m.current().View(w, h)
}

// authenticate fixes the viewer, builds the sub-applications sharing
// one handler, and installs the intent classifiers now that a handler
// is available.
func (m *Model) authenticate(msg authflow.CompletedMsg) tea.Cmd {
	if m.ctrl.Auth() == controller.Registration {
		m.ctrl.RegistrationComplete(msg.Viewer)
	} else {
		m.ctrl.LoginComplete(msg.Viewer)
	}
	if m.ctrl.Auth() != controller.Authenticated {
		return nil
	}

	var handler nav.Handler = m.ctrl
	m.apps = map[nav.Destination]subapp.Model{
		nav.Community:   community.New(m.theme, handler, m.ctrl, m.store),
		nav.Cart:        cart.New(m.theme, handler),
		nav.Counselling: counselling.New(m.theme, handler),
		nav.Matching:    matching.New(m.theme, handler),
		nav.Messages:    messages.New(m.theme, handler),
		nav.Profile:     profile.New(m.theme, handler, msg.Viewer),
	}
	m.interceptor.Install()
	m.mounted = nav.Community
	return m.mountCmd(nav.Community)
}

// routeClick resolves the pointer position against the mounted
// surface and lets the interceptor observe the event ahead of the
// sub-application's own handling. A claimed event suppresses the
// default action.
func (m *Model) routeClick(click tea.MouseClickMsg) tea.Cmd {
	el, ok := m.current().ElementAt(click.X, click.Y)
	if ok && m.interceptor.Intercept(el) {
		return m.syncMount()
	}
	cmd := m.current().Update(click)
	return tea.Batch(cmd, m.syncMount())
}

// syncMount remounts when a navigation handler changed the controller
// state, unmounting the previous sub-application on the way out.
func (m *Model) syncMount() tea.Cmd {
	next := m.ctrl.App()
	if next == m.mounted {
		return nil
	}
	if prev, ok := m.apps[m.mounted]; ok {
		if mt, ok := prev.(subapp.Mountable); ok {
			mt.Unmount()
		}
	}
	m.mounted = next
	return m.mountCmd(next)
}

func (m *Model) mountCmd(d nav.Destination) tea.Cmd {
	app, ok := m.apps[d]
	if !ok {
		return nil
	}
	if mt, ok := app.(subapp.Mountable); ok {
		return mt.Mount()
	}
	return nil
}

// current returns the mounted sub-application, defaulting to the
// community app.
func (m *Model) current() subapp.Model {
	if app, ok := m.apps[m.mounted]; ok {
		return app
	}
	return m.apps[nav.Community]
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}
