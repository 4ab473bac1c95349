// Package theme provides the Lip Gloss color palette and reusable styles
// for the storefront TUI. It is a leaf package with no internal imports
// to avoid import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	ColorPrimary = lipgloss.Color("#6366f1")
	ColorAccent  = lipgloss.Color("#f59e0b")
	ColorDefault = lipgloss.Color("#9ca3af")
)

// Toast colors, keyed by toast kind name.
var (
	ColorSuccess = lipgloss.Color("#16a34a")
	ColorError   = lipgloss.Color("#dc2626")
	ColorWarning = lipgloss.Color("#d97706")
	ColorInfo    = lipgloss.Color("#2563eb")
)

// Price colors.
var (
	ColorPrice    = lipgloss.Color("#f9fafb")
	ColorOldPrice = lipgloss.Color("#6b7280")
	ColorDiscount = lipgloss.Color("#ef4444")
	ColorStar     = lipgloss.Color("#fbbf24")
)

// UI chrome colors.
var (
	ColorBorder = lipgloss.Color("#4b5563")
	ColorDimmed = lipgloss.Color("#6b7280")
	ColorBright = lipgloss.Color("#f9fafb")
	ColorBg     = lipgloss.Color("#111827")
)

// KindColor returns the color for a toast kind ("success", "error",
// "warning", "info").
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return ColorSuccess
	case "error":
		return ColorError
	case "warning":
		return ColorWarning
	case "info":
		return ColorInfo
	default:
		return ColorDefault
	}
}

// KindGlyph returns the icon shown in front of a toast.
func KindGlyph(kind string) string {
	switch kind {
	case "success":
		return "✓"
	case "error":
		return "✗"
	case "warning":
		return "!"
	case "info":
		return "i"
	default:
		return "·"
	}
}

// Reusable styles.
var (
	StyleBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StylePrice = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrice)

	StyleOldPrice = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(ColorOldPrice)

	StyleDiscount = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright).
			Background(ColorDiscount).
			Padding(0, 1)

	StyleStar = lipgloss.NewStyle().
			Foreground(ColorStar)

	StyleBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright).
			Background(ColorPrimary).
			Padding(0, 1)
)
