// Package toasts renders the toast stack in the top-right corner.
package toasts

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/theme"
	"github.com/vijayaragavan-dev/storefront/internal/toast"
)

const width = 40

func style(kind toast.Kind) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.KindColor(string(kind)))
}

// Item renders one toast. Dismissing toasts are dimmed for their exit window.
func Item(t toast.Toast) string {
	icon := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.KindColor(string(t.Kind))).
		Render(theme.KindGlyph(string(t.Kind)))

	msg := t.Message
	s := style(t.Kind)
	if t.Dismissing {
		msg = theme.StyleDimmed.Render(msg)
		s = s.BorderForeground(theme.ColorBorder)
	}
	return s.Render(icon + " " + msg)
}

// View renders the stack in display order, right-aligned to termWidth.
// It returns "" when there is nothing to show.
func View(items []toast.Toast, termWidth int) string {
	if len(items) == 0 {
		return ""
	}
	rendered := make([]string, len(items))
	for i, t := range items {
		rendered[i] = Item(t)
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	if termWidth <= 0 {
		return stack
	}
	return lipgloss.PlaceHorizontal(termWidth, lipgloss.Right, stack)
}

// Overlay draws the toast stack over the first lines of base.
func Overlay(base string, items []toast.Toast, termWidth int) string {
	stack := View(items, termWidth)
	if stack == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	stackLines := strings.Split(stack, "\n")
	for i, line := range stackLines {
		if i < len(baseLines) {
			baseLines[i] = line
		} else {
			baseLines = append(baseLines, line)
		}
	}
	return strings.Join(baseLines, "\n")
}
