// Package debug renders the request log pane: one row per gateway call with
// method, status, latency and outcome in aligned columns, plus the other
// records the client logs.
package debug

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/gateway"
	"github.com/vijayaragavan-dev/storefront/internal/theme"
)

const maxEntries = 200

// Entry is one log record. Request fields are zero for records that did not
// come from a gateway call.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string

	Method   string
	Endpoint string
	Status   int
	Duration time.Duration
	Outcome  gateway.Kind

	// Attrs holds the remaining attributes as "key=value" pairs.
	Attrs []string
}

// IsRequest reports whether the entry describes a gateway call.
func (e Entry) IsRequest() bool { return e.Endpoint != "" }

// Failed reports a failed call or a warning-level record.
func (e Entry) Failed() bool {
	return e.Outcome != gateway.KindUnknown || e.Level >= slog.LevelWarn
}

// Stats summarises the requests in the log.
type Stats struct {
	Requests int
	Failed   int
	// Mean is the average latency of requests that recorded one.
	Mean time.Duration
}

// Model holds the log and the viewport.
type Model struct {
	Entries []Entry
	Offset  int // rows scrolled up from the newest
	// FailuresOnly hides successful calls and info records.
	FailuresOnly bool
}

// New creates an empty log.
func New() Model {
	return Model{}
}

// Append adds entries in order, keeps the newest maxEntries and jumps back to
// the newest row.
func (m *Model) Append(entries ...Entry) {
	if len(entries) == 0 {
		return
	}
	m.Entries = append(m.Entries, entries...)
	if len(m.Entries) > maxEntries {
		m.Entries = m.Entries[len(m.Entries)-maxEntries:]
	}
	m.Offset = 0
}

// ToggleFailures flips the failures filter.
func (m *Model) ToggleFailures() {
	m.FailuresOnly = !m.FailuresOnly
	m.Offset = 0
}

// Rows returns the entries that pass the filter.
func (m Model) Rows() []Entry {
	if !m.FailuresOnly {
		return m.Entries
	}
	var out []Entry
	for _, e := range m.Entries {
		if e.Failed() {
			out = append(out, e)
		}
	}
	return out
}

// ScrollUp moves the viewport toward older rows.
func (m *Model) ScrollUp(n int) {
	m.Offset = min(m.Offset+n, max(len(m.Rows())-1, 0))
}

// ScrollDown moves the viewport toward the newest row.
func (m *Model) ScrollDown(n int) {
	m.Offset = max(m.Offset-n, 0)
}

// Stats counts requests and failures over the whole log.
func (m Model) Stats() Stats {
	var s Stats
	var total time.Duration
	timed := 0
	for _, e := range m.Entries {
		if !e.IsRequest() {
			continue
		}
		s.Requests++
		if e.Outcome != gateway.KindUnknown {
			s.Failed++
		}
		if e.Duration > 0 {
			total += e.Duration
			timed++
		}
	}
	if timed > 0 {
		s.Mean = total / time.Duration(timed)
	}
	return s
}

// Row formats an entry as unstyled text. Request rows share fixed-width
// columns so endpoints line up.
func Row(e Entry) string {
	ts := e.Time.Format("15:04:05.000")
	if !e.IsRequest() {
		msg := e.Message
		if len(e.Attrs) > 0 {
			msg += " " + strings.Join(e.Attrs, " ")
		}
		return fmt.Sprintf("%s  %-5s  %s", ts, e.Level.String(), msg)
	}

	status := "---"
	if e.Status > 0 {
		status = fmt.Sprintf("%d", e.Status)
	}
	row := fmt.Sprintf("%s  %-6s %s %8s  %-15s %s",
		ts, e.Method, status, latency(e.Duration), outcomeLabel(e.Outcome), e.Endpoint)
	if len(e.Attrs) > 0 {
		row += "  " + strings.Join(e.Attrs, " ")
	}
	return row
}

func latency(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Millisecond {
		return "<1ms"
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func outcomeLabel(k gateway.Kind) string {
	if k == gateway.KindUnknown {
		return "ok"
	}
	return k.String()
}

// rowColor colours request rows by outcome and other rows by level.
func rowColor(e Entry) lipgloss.Color {
	if e.IsRequest() {
		switch e.Outcome {
		case gateway.KindUnknown:
			return theme.ColorSuccess
		case gateway.KindTimeout:
			return theme.ColorWarning
		case gateway.KindSessionExpired:
			return theme.ColorAccent
		default:
			return theme.ColorError
		}
	}
	switch {
	case e.Level >= slog.LevelError:
		return theme.ColorError
	case e.Level >= slog.LevelWarn:
		return theme.ColorWarning
	case e.Level >= slog.LevelInfo:
		return theme.ColorInfo
	default:
		return theme.ColorDimmed
	}
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

func panelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder)
}

// View renders the pane in width x height.
func (m Model) View(width, height int) string {
	innerW := max(width-4, 20)
	textW := max(innerW-4, 16)
	visible := max(height-8, 3)

	st := m.Stats()
	title := theme.StyleHeader.Render(" REQUEST LOG ")
	summary := fmt.Sprintf("%d requests  %d failed", st.Requests, st.Failed)
	if st.Mean > 0 {
		summary += "  avg " + latency(st.Mean)
	}
	if m.FailuresOnly {
		summary += "  [failures only]"
	}
	header := lipgloss.JoinVertical(lipgloss.Left, title, theme.StyleDimmed.Render(summary))
	help := theme.StyleDimmed.Render("j/k:scroll  f:failures only  esc:close")

	rows := m.Rows()
	if len(rows) == 0 {
		body := theme.StyleDimmed.Render("  No events recorded yet.")
		return panelStyle(innerW).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help))
	}

	end := max(len(rows)-m.Offset, 0)
	start := max(end-visible, 0)

	lines := make([]string, 0, end-start)
	for _, e := range rows[start:end] {
		style := lipgloss.NewStyle().Foreground(rowColor(e))
		lines = append(lines, style.Render(truncate(Row(e), textW)))
	}

	more := ""
	if m.Offset > 0 {
		more = theme.StyleDimmed.Render(fmt.Sprintf(" ↓ %d newer", m.Offset))
	}
	return panelStyle(innerW).Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", strings.Join(lines, "\n"), more, help))
}
