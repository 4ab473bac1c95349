// Package cart provides the cart summary row and line-item table.
package cart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/client"
	"github.com/vijayaragavan-dev/storefront/internal/theme"
	"github.com/vijayaragavan-dev/storefront/internal/views/products"
)

// Model holds the cart state.
type Model struct {
	Width    int
	Items    []client.CartItem
	Selected int
	Loaded   bool
}

// New creates an empty cart model.
func New() Model {
	return Model{}
}

// SetItems replaces the line items and clamps the cursor.
func (m *Model) SetItems(items []client.CartItem) {
	m.Items = items
	m.Loaded = true
	if m.Selected >= len(items) {
		m.Selected = max(0, len(items)-1)
	}
}

// Next moves the cursor down, wrapping.
func (m *Model) Next() {
	if len(m.Items) > 0 {
		m.Selected = (m.Selected + 1) % len(m.Items)
	}
}

// Prev moves the cursor up, wrapping.
func (m *Model) Prev() {
	if len(m.Items) > 0 {
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	}
}

// Current returns the line item under the cursor.
func (m Model) Current() (client.CartItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return client.CartItem{}, false
	}
	return m.Items[m.Selected], true
}

// Totals returns the number of units and the cart total. Line totals from
// the API win; otherwise unit price times quantity.
func (m Model) Totals() (units int, total float64) {
	for _, it := range m.Items {
		units += it.Quantity
		total += lineTotal(it)
	}
	return units, total
}

func lineTotal(it client.CartItem) float64 {
	if it.Total > 0 {
		return it.Total
	}
	return unitPrice(it) * float64(it.Quantity)
}

func unitPrice(it client.CartItem) float64 {
	if it.DiscountPrice != nil && *it.DiscountPrice > 0 {
		return *it.DiscountPrice
	}
	return it.Price
}

// View renders the summary row and the item table.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSummary(width),
		m.renderTable(width),
	)
}

func (m Model) renderSummary(width int) string {
	units, total := m.Totals()
	statStyle := lipgloss.NewStyle().Padding(0, 1)

	stats := []string{
		statStyle.Foreground(theme.ColorBright).Render(fmt.Sprintf("Items: %d", len(m.Items))),
		statStyle.Foreground(theme.ColorDimmed).Render(fmt.Sprintf("Units: %d", units)),
		statStyle.Foreground(theme.ColorAccent).Render("Total: " + products.FormatPrice(total)),
	}
	content := strings.Join(stats, lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | "))

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}

func (m Model) renderTable(width int) string {
	header := theme.StyleHeader.Render("  Shopping Cart")

	if !m.Loaded {
		return lipgloss.JoinVertical(lipgloss.Left, header, theme.StyleDimmed.Render("  Loading..."))
	}
	if len(m.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, theme.StyleDimmed.Render("  Your cart is empty"))
	}

	colRank := 4
	colName := 30
	colQty := 5
	colPrice := 11
	colTotal := 11

	dimStyle := theme.StyleDimmed
	brightStyle := lipgloss.NewStyle().Foreground(theme.ColorBright).Bold(true)

	tableHeader := fmt.Sprintf("  %-*s %-*s %*s %*s %*s",
		colRank, "#",
		colName, "Product",
		colQty, "Qty",
		colPrice, "Price",
		colTotal, "Total",
	)
	lines := []string{
		header,
		dimStyle.Render(tableHeader),
		dimStyle.Render("  " + strings.Repeat("─", min(width-4, colRank+colName+colQty+colPrice+colTotal+4))),
	}

	for i, it := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "> "
		}
		rank := fmt.Sprintf("%-*d", colRank, i+1)

		name := it.ProductName
		if len(name) > colName-1 {
			name = name[:colName-2] + "…"
		}
		nameStr := lipgloss.NewStyle().Foreground(theme.ColorBright).Width(colName).Render(name)
		qtyStr := brightStyle.Width(colQty).Align(lipgloss.Right).Render(fmt.Sprintf("%d", it.Quantity))
		priceStr := dimStyle.Width(colPrice).Align(lipgloss.Right).Render(products.FormatPrice(unitPrice(it)))
		totalStr := brightStyle.Width(colTotal).Align(lipgloss.Right).Render(products.FormatPrice(lineTotal(it)))

		lines = append(lines, fmt.Sprintf("%s%s %s %s %s %s", prefix, rank, nameStr, qtyStr, priceStr, totalStr))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
