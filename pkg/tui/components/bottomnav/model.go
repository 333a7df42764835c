// Package bottomnav renders the shared bottom navigation bar and maps
// pointer positions back to the interactive element that was hit.
package bottomnav

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/nav"
	"tableflip.dev/unihub/pkg/tui/theme"
)

// tab describes one bar entry. Icon doubles as the markup signature an
// icon-only activation carries.
type tab struct {
	Label string
	Icon  string
	Dest  nav.Destination
}

// Tab order matches the ordinal classifier contract: cart,
// counselling, home, matching, profile.
var tabs = []tab{
	{Label: "ADD2CART", Icon: "shoppingcart", Dest: nav.Cart},
	{Label: "COUNSELLING", Icon: "messagecircle", Dest: nav.Counselling},
	{Label: "HOME", Icon: "home", Dest: nav.Community},
	{Label: "MATCH", Icon: "users", Dest: nav.Matching},
	{Label: "PROFILE", Icon: "user", Dest: nav.Profile},
}

var icons = map[string]string{
	"shoppingcart":  "🛒",
	"messagecircle": "💬",
	"home":          "🏠",
	"users":         "👥",
	"user":          "👤",
}

// Model tracks bar rendering state and the last layout's hit spans.
type Model struct {
	theme  theme.Theme
	active nav.Destination
	spans  []span // x ranges of each tab in the last rendered row
	row    int    // y of the rendered bar row, set by the host
}

type span struct{ start, end int }

// New returns a bar with the community tab active.
func New(t theme.Theme) *Model {
	return &Model{theme: t, active: nav.Community}
}

// SetActive highlights the tab for the mounted sub-application.
func (m *Model) SetActive(d nav.Destination) {
	m.active = d
}

// SetRow records which terminal row the bar occupies so ElementAt can
// reject clicks elsewhere.
func (m *Model) SetRow(y int) {
	m.row = y
}

// Height is the number of lines the bar consumes.
func (m *Model) Height() int { return 2 }

// View renders the bar at the given width and records hit spans.
func (m *Model) View(width int) string {
	m.spans = m.spans[:0]
	cells := make([]string, 0, len(tabs))
	x := 0
	for _, t := range tabs {
		style := m.theme.Nav.Tab
		label := icons[t.Icon]
		if t.Dest == m.active {
			style = m.theme.Nav.ActiveTab
			label = icons[t.Icon] + " " + t.Label
		}
		cell := style.Render(label)
		w := lipgloss.Width(cell)
		m.spans = append(m.spans, span{start: x, end: x + w})
		x += w
		cells = append(cells, cell)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if pad := width - lipgloss.Width(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return m.theme.Nav.Bar.Width(width).Render(row)
}

// ElementAt resolves a pointer position to the bar element it hit.
// The bar is the recognized bottom navigation container, so elements
// carry their ordinal index for the positional classifier.
func (m *Model) ElementAt(x, y int) (nav.Element, bool) {
	// Border row plus tab row.
	if y != m.row && y != m.row+1 {
		return nav.Element{}, false
	}
	for i, s := range m.spans {
		if x >= s.start && x < s.end {
			t := tabs[i]
			text := ""
			if t.Dest == m.active {
				text = t.Label
			}
			return nav.Element{
				Text:      text,
				Markup:    t.Icon,
				BottomNav: true,
				Index:     i,
			}, true
		}
	}
	return nav.Element{}, false
}
