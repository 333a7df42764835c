// Package theme centralizes Lip Gloss styles for the UniHub TUI.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme groups the styles used across the composed UI.
type Theme struct {
	Screen ScreenTheme
	Nav    NavTheme
	Board  BoardTheme
	Modal  ModalTheme
	Footer FooterTheme
}

// ScreenTheme styles full-screen chrome.
type ScreenTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Notice   lipgloss.Style
	Faint    lipgloss.Style
}

// NavTheme styles the bottom navigation bar.
type NavTheme struct {
	Bar       lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
}

// BoardTheme styles board grids and post lists.
type BoardTheme struct {
	Card     lipgloss.Style
	Category lipgloss.Style
	Post     lipgloss.Style
	Selected lipgloss.Style
	Meta     lipgloss.Style
}

// ModalTheme styles centered overlays (post detail, new post).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FooterTheme styles the status/help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	accent := accentColor()

	tab := lipgloss.NewStyle().Padding(0, 2)
	return Theme{
		Screen: ScreenTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Notice: lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true),
			Faint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Nav: NavTheme{
			Bar: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false),
			Tab: tab.Foreground(lipgloss.Color("250")),
			ActiveTab: tab.
				Foreground(lipgloss.Color("232")).
				Background(accent).
				Bold(true),
		},
		Board: BoardTheme{
			Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Category: lipgloss.NewStyle().Foreground(accent),
			Post:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Underline(true),
			Body:  lipgloss.NewStyle(),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

// accentColor derives the highlight color, nudged lighter on dark
// terminal backgrounds so active tabs stay readable.
func accentColor() color.Color {
	base, err := colorful.Hex("#f5c518")
	if err != nil {
		return lipgloss.Color("220")
	}
	if termenv.HasDarkBackground() {
		h, s, l := base.Hsl()
		base = colorful.Hsl(h, s, l*1.1)
	}
	return lipgloss.Color(base.Clamped().Hex())
}
