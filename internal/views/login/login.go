// Package login is the email/password form shown for the login screen.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/theme"
)

// Message shown on the form when the API rejects the credentials.
const MessageInvalidCredentials = "Invalid email or password"

// SubmitMsg is emitted when the user submits a complete form. Register is
// set when the form was in create-account mode.
type SubmitMsg struct {
	Email     string
	Password  string
	Register  bool
	FirstName string
	LastName  string
}

const (
	fieldEmail = iota
	fieldPassword
	fieldFirstName
	fieldLastName
)

// Model holds the form inputs.
type Model struct {
	inputs  []textinput.Model
	focus   int
	Err     string
	Pending bool
	// Notice is shown above the form, e.g. after a session expired.
	Notice string
	// Register switches the form to account creation, adding name fields.
	Register bool
}

// New creates an empty form focused on the email field.
func New() Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    › "
	email.CharLimit = 254
	email.Focus()

	pw := textinput.New()
	pw.Placeholder = "password"
	pw.Prompt = "Password › "
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	pw.CharLimit = 128

	first := textinput.New()
	first.Placeholder = "first name"
	first.Prompt = "First    › "
	first.CharLimit = 64

	last := textinput.New()
	last.Placeholder = "last name"
	last.Prompt = "Last     › "
	last.CharLimit = 64

	return Model{inputs: []textinput.Model{email, pw, first, last}}
}

// Reset clears the form, leaves register mode and refocuses the email field.
func (m *Model) Reset() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = fieldEmail
	m.Err = ""
	m.Pending = false
	m.Register = false
	return m.inputs[fieldEmail].Focus()
}

// Email returns the email field value.
func (m Model) Email() string { return strings.TrimSpace(m.inputs[fieldEmail].Value()) }

// Password returns the password field value.
func (m Model) Password() string { return m.inputs[fieldPassword].Value() }

func (m Model) fields() int {
	if m.Register {
		return len(m.inputs)
	}
	return fieldFirstName
}

// Update handles focus movement, mode switching, submission and text entry.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if m.Pending {
			return m, nil
		}
		n := m.fields()
		switch km.String() {
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % n)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus - 1 + n) % n)
		case "ctrl+r":
			m.Register = !m.Register
			m.Err = ""
			if m.focus >= m.fields() {
				return m, m.setFocus(fieldEmail)
			}
			return m, nil
		case "enter":
			if m.focus < n-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m.submit()
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	out := SubmitMsg{Email: m.Email(), Password: m.Password(), Register: m.Register}
	if out.Email == "" || out.Password == "" {
		m.Err = "Email and password are required"
		return m, nil
	}
	if m.Register {
		out.FirstName = strings.TrimSpace(m.inputs[fieldFirstName].Value())
		out.LastName = strings.TrimSpace(m.inputs[fieldLastName].Value())
		if out.FirstName == "" {
			m.Err = "First name is required"
			return m, nil
		}
		if len(out.Password) < 6 {
			m.Err = "Password must be at least 6 characters"
			return m, nil
		}
	}
	m.Err = ""
	m.Pending = true
	return m, func() tea.Msg { return out }
}

var (
	stylePanel = lipgloss.NewStyle().
			Width(52).
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorPrimary)

	styleErr    = lipgloss.NewStyle().Foreground(theme.ColorError)
	styleNotice = lipgloss.NewStyle().Foreground(theme.ColorWarning)
)

// View renders the form panel.
func (m Model) View() string {
	title, busy := "Sign in to ShopHub", "Signing in..."
	if m.Register {
		title, busy = "Create your ShopHub account", "Creating account..."
	}
	lines := []string{theme.StyleHeader.Render(title), ""}
	if m.Notice != "" {
		lines = append(lines, styleNotice.Render(m.Notice), "")
	}
	for _, in := range m.inputs[:m.fields()] {
		lines = append(lines, in.View())
	}
	lines = append(lines, "")
	switch {
	case m.Pending:
		lines = append(lines, theme.StyleDimmed.Render(busy))
	case m.Err != "":
		lines = append(lines, styleErr.Render(m.Err))
	}
	mode := "ctrl+r:create account"
	if m.Register {
		mode = "ctrl+r:sign in instead"
	}
	lines = append(lines, theme.StyleDimmed.Render("tab:next field  enter:submit  "+mode+"  esc:back"))
	return stylePanel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
