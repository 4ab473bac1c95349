// Package status renders the navigation bar: brand, signed-in user, cart
// badge and the keys for the current screen.
package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/session"
	"github.com/vijayaragavan-dev/storefront/internal/theme"
)

// Model holds the status bar state.
type Model struct {
	User      *session.User
	CartCount int
	Width     int
}

// New creates a status bar model.
func New() Model {
	return Model{}
}

// SetSession updates the user shown in the bar. A nil user renders the
// logged-out state.
func (m *Model) SetSession(u *session.User) {
	m.User = u
	if u == nil {
		m.CartCount = 0
	}
}

// View renders the status bar.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}

	brand := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorPrimary).Render("◆ ShopHub")
	sep := lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | ")

	var userStr string
	if m.User == nil {
		userStr = theme.StyleDimmed.Render("Guest  L:login")
	} else {
		avatar := theme.StyleBadge.Render(m.User.Initial())
		userStr = avatar + " " + theme.StyleHeader.Render(m.User.DisplayName())
		if m.User.IsAdmin() {
			userStr += " " + lipgloss.NewStyle().Foreground(theme.ColorAccent).Render("[Admin]")
		}
	}

	cart := "Cart"
	if m.User != nil && m.CartCount > 0 {
		cart += " " + theme.StyleBadge.Render(fmt.Sprintf("%d", m.CartCount))
	}

	content := brand + sep + userStr + sep + cart

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
