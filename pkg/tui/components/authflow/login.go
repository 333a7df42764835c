package authflow

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/unihub/pkg/identity"
	"tableflip.dev/unihub/pkg/tui/theme"
)

var genders = []identity.Gender{identity.Female, identity.Male}

var avatars = map[identity.Gender]string{
	identity.Female: "👩‍🎓",
	identity.Male:   "👨‍🎓",
}

// Form is the shared login/registration screen: a display name plus a
// gender selection. Registration differs only in its title and its
// back transition.
type Form struct {
	theme        theme.Theme
	registration bool

	name      textinput.Model
	genderIdx int
}

// NewLogin returns the login screen.
func NewLogin(t theme.Theme) *Form {
	return newForm(t, false)
}

// NewRegistration returns the registration screen.
func NewRegistration(t theme.Theme) *Form {
	return newForm(t, true)
}

func newForm(t theme.Theme, registration bool) *Form {
	ti := textinput.New()
	ti.Placeholder = "YOUR NAME"
	ti.CharLimit = 40
	ti.Prompt = "> "
	ti.Focus()
	return &Form{theme: t, registration: registration, name: ti}
}

// Init starts the cursor blink.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form input. Enter submits, tab flips gender; on the
// login screen "ctrl+r" moves to registration, on registration esc
// goes back to login.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return cmd
	}

	switch key.String() {
	case "enter":
		name := strings.TrimSpace(f.name.Value())
		if name == "" {
			return nil
		}
		g := genders[f.genderIdx]
		v := identity.Viewer{Name: strings.ToUpper(name), Gender: g, Avatar: avatars[g]}
		return func() tea.Msg { return CompletedMsg{Viewer: v} }
	case "tab":
		f.genderIdx = (f.genderIdx + 1) % len(genders)
		return nil
	case "ctrl+r":
		if !f.registration {
			return func() tea.Msg { return ToRegistrationMsg{} }
		}
		return nil
	case "esc":
		if f.registration {
			return func() tea.Msg { return ToLoginMsg{} }
		}
		return nil
	}

	var cmd tea.Cmd
	f.name, cmd = f.name.Update(msg)
	return cmd
}

// View renders the form centered on screen.
func (f *Form) View(width, height int) string {
	title := "LOGIN"
	hint := "enter continue · tab gender · ctrl+r register"
	if f.registration {
		title = "REGISTRATION"
		hint = "enter continue · tab gender · esc back to login"
	}

	var b strings.Builder
	b.WriteString(f.theme.Screen.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(f.name.View())
	b.WriteString("\n\n")
	for i, g := range genders {
		label := strings.ToUpper(string(g))
		if i == f.genderIdx {
			b.WriteString(f.theme.Board.Selected.Render("[" + avatars[g] + " " + label + "]"))
		} else {
			b.WriteString(f.theme.Screen.Faint.Render(" " + avatars[g] + " " + label + " "))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n\n")
	b.WriteString(f.theme.Footer.Help.Render(hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
