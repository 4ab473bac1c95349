// Package loading renders the full-screen loading overlay. Visibility comes
// from the overlay controller; this package only animates it.
package loading

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/theme"
)

// FPS is the animation frame rate of the fade.
const FPS = 30

// FrameInterval is the tick period the app should drive Step with.
var FrameInterval = time.Second / FPS

// Model holds the spinner and the fade spring.
type Model struct {
	Spinner spinner.Model

	spring   harmonica.Spring
	opacity  float64
	velocity float64
	target   float64
}

// New creates a hidden loading overlay.
func New() Model {
	return Model{
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.ColorPrimary)),
		),
		spring: harmonica.NewSpring(harmonica.FPS(FPS), 8.0, 1.0),
	}
}

// SetVisible retargets the fade. It never blocks or delays anything; the
// overlay is already logically shown or hidden.
func (m *Model) SetVisible(v bool) {
	if v {
		m.target = 1
	} else {
		m.target = 0
	}
}

// Target reports whether the fade is heading to visible.
func (m Model) Target() bool { return m.target == 1 }

// Step advances the fade by one frame.
func (m *Model) Step() {
	m.opacity, m.velocity = m.spring.Update(m.opacity, m.velocity, m.target)
	if m.opacity < 0.01 && m.target == 0 {
		m.opacity, m.velocity = 0, 0
	}
	if m.opacity > 0.99 && m.target == 1 {
		m.opacity = 1
	}
}

// Opacity is the current fade level in [0, 1].
func (m Model) Opacity() float64 {
	switch {
	case m.opacity < 0:
		return 0
	case m.opacity > 1:
		return 1
	}
	return m.opacity
}

// Animating reports whether the fade has not settled.
func (m Model) Animating() bool {
	return m.Opacity() != m.target
}

// Update forwards spinner ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Spinner, cmd = m.Spinner.Update(msg)
	return m, cmd
}

var fadeLevels = []lipgloss.Color{"#374151", "#6b7280", "#9ca3af", "#f9fafb"}

// View renders the overlay box centered in width x height, or "" when fully
// faded out.
func (m Model) View(width, height int) string {
	op := m.Opacity()
	if op == 0 {
		return ""
	}
	idx := int(op * float64(len(fadeLevels)-1))
	text := lipgloss.NewStyle().Foreground(fadeLevels[idx]).Render("Loading...")

	box := lipgloss.NewStyle().
		Padding(1, 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(fadeLevels[idx]).
		Render(m.Spinner.View() + " " + text)

	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
