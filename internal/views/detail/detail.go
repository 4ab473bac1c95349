// Package detail renders the product detail flyout. The description is
// rendered as Markdown with glamour.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/client"
	"github.com/vijayaragavan-dev/storefront/internal/theme"
	"github.com/vijayaragavan-dev/storefront/internal/views/products"
)

const (
	panelWidth = 64
	labelWidth = 12
)

var (
	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorBorder).
			Padding(0, 1)

	styleLabel = lipgloss.NewStyle().
			Foreground(theme.ColorDimmed).
			Width(labelWidth)

	styleValue = lipgloss.NewStyle().
			Foreground(theme.ColorBright)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorBright)

	styleFooter = lipgloss.NewStyle().
			Foreground(theme.ColorDimmed)

	styleStock = lipgloss.NewStyle().
			Foreground(theme.ColorSuccess)

	styleOut = lipgloss.NewStyle().
			Foreground(theme.ColorError)
)

// Model holds the state for the detail overlay.
type Model struct {
	Product *client.Product
	// Rendered caches the glamour output for Product.
	Rendered string
}

// New creates a detail model for p and renders its description.
func New(p *client.Product) Model {
	m := Model{Product: p}
	if p != nil {
		m.Rendered = RenderDescription(p.Description, panelWidth-4)
	}
	return m
}

// RenderDescription renders Markdown at the given wrap width. Rendering
// errors fall back to the raw text.
func RenderDescription(md string, wrap int) string {
	if strings.TrimSpace(md) == "" {
		return theme.StyleDimmed.Render("No description available.")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// View renders the detail panel. Returns an empty string if no product is set.
func (m Model) View() string {
	if m.Product == nil {
		return ""
	}
	p := m.Product
	var b strings.Builder

	b.WriteString(styleTitle.Render(p.Name) + "\n")
	b.WriteString(strings.Repeat("─", panelWidth-4) + "\n")

	writeRow(&b, "Category", p.CategoryOrDefault())
	if p.Brand != "" {
		writeRow(&b, "Brand", p.Brand)
	}
	price := products.PriceLine(*p)
	if badge := products.Badge(*p); badge != "" {
		price += " " + badge
	}
	writeRow(&b, "Price", price)
	writeRow(&b, "Rating", theme.StyleStar.Render(products.Stars(p.Rating))+
		fmt.Sprintf(" %.1f (%d reviews)", p.Rating, p.ReviewCount))
	writeRow(&b, "Stock", stock(p.StockQuantity))
	writeRow(&b, "Image", truncate(p.Image(), panelWidth-labelWidth-6))

	b.WriteString("\n")
	b.WriteString(m.Rendered + "\n")

	b.WriteString("\n")
	b.WriteString(styleFooter.Render("[a] add to cart  [esc] close"))

	return stylePanel.Width(panelWidth).Render(b.String())
}

func stock(n int) string {
	if n <= 0 {
		return styleOut.Render("Out of stock")
	}
	return styleStock.Render(fmt.Sprintf("%d in stock", n))
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(styleLabel.Render(label+":") + styleValue.Render(value) + "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
