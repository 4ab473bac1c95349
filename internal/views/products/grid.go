package products

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/client"
	"github.com/vijayaragavan-dev/storefront/internal/theme"
)

// Grid is a titled, horizontally laid out row of product cards with a
// cursor.
type Grid struct {
	Title    string
	Products []client.Product
	Selected int
	// Fallback is set when Products holds the built-in sample catalogue.
	Fallback bool
	Loading  bool
}

// NewGrid creates an empty grid.
func NewGrid(title string) Grid {
	return Grid{Title: title, Loading: true}
}

// SetProducts replaces the grid contents and clamps the cursor.
func (g *Grid) SetProducts(ps []client.Product, fallback bool) {
	g.Products = ps
	g.Fallback = fallback
	g.Loading = false
	if g.Selected >= len(ps) {
		g.Selected = 0
	}
}

// Next moves the cursor right, wrapping.
func (g *Grid) Next() {
	if len(g.Products) > 0 {
		g.Selected = (g.Selected + 1) % len(g.Products)
	}
}

// Prev moves the cursor left, wrapping.
func (g *Grid) Prev() {
	if len(g.Products) > 0 {
		g.Selected = (g.Selected - 1 + len(g.Products)) % len(g.Products)
	}
}

// Current returns the product under the cursor.
func (g Grid) Current() (client.Product, bool) {
	if g.Selected < 0 || g.Selected >= len(g.Products) {
		return client.Product{}, false
	}
	return g.Products[g.Selected], true
}

// View renders the grid. active highlights the cursor card. Cards wrap onto
// new rows to fit width.
func (g Grid) View(width int, active bool) string {
	title := theme.StyleHeader.Render(g.Title)
	if g.Fallback {
		title += theme.StyleDimmed.Render("  (offline sample)")
	}

	if g.Loading {
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.StyleDimmed.Render("  Loading..."))
	}
	if len(g.Products) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.StyleDimmed.Render("  No products found"))
	}

	perRow := width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	var row []string
	for i, p := range g.Products {
		row = append(row, Card(p, active && i == g.Selected))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}
