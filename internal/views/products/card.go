// Package products renders product cards and the selectable product grids
// of the home screen.
package products

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/client"
	"github.com/vijayaragavan-dev/storefront/internal/theme"
)

const (
	cardWidth = 30
	nameWidth = cardWidth - 4
	maxStars  = 5
)

var (
	styleCard = lipgloss.NewStyle().
			Width(cardWidth).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorBorder)

	styleCardSelected = styleCard.
				BorderForeground(theme.ColorPrimary)

	styleCategory = lipgloss.NewStyle().
			Foreground(theme.ColorDimmed).
			Italic(true)
)

// Stars renders a five-star rating: full stars for the integer part, a half
// star when the fraction is at least .5, empty stars for the rest.
func Stars(rating float64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}
	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5
	empty := maxStars - full
	if half {
		empty--
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	if half {
		b.WriteString("⯪")
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}

// FormatPrice formats an amount as dollars with two decimals.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// PriceLine renders the current price, followed by the struck-through list
// price when the product is discounted.
func PriceLine(p client.Product) string {
	current := theme.StylePrice.Render(FormatPrice(p.CurrentPrice()))
	if p.DiscountPercent() == 0 {
		return current
	}
	return current + " " + theme.StyleOldPrice.Render(FormatPrice(p.Price))
}

// Badge renders "-N%" for discounted products, or "".
func Badge(p client.Product) string {
	pct := p.DiscountPercent()
	if pct <= 0 {
		return ""
	}
	return theme.StyleDiscount.Render(fmt.Sprintf("-%d%%", pct))
}

// Card renders a single product card.
func Card(p client.Product, selected bool) string {
	name := p.Name
	if lipgloss.Width(name) > nameWidth {
		name = truncate(name, nameWidth)
	}

	head := theme.StyleHeader.Render(name)
	if badge := Badge(p); badge != "" {
		head = badge + " " + theme.StyleHeader.Render(truncate(p.Name, nameWidth-lipgloss.Width(badge)-1))
	}

	rating := theme.StyleStar.Render(Stars(p.Rating)) +
		theme.StyleDimmed.Render(fmt.Sprintf(" (%d)", p.ReviewCount))

	body := lipgloss.JoinVertical(lipgloss.Left,
		styleCategory.Render(p.CategoryOrDefault()),
		head,
		rating,
		PriceLine(p),
	)

	if selected {
		return styleCardSelected.Render(body)
	}
	return styleCard.Render(body)
}

func truncate(s string, max int) string {
	if max <= 1 {
		return "…"
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
