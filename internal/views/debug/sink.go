package debug

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vijayaragavan-dev/storefront/internal/gateway"
)

const maxPending = 500

// Sink is a slog.Handler that buffers records for the pane. Handle never
// blocks on the UI; the app drains the buffer on its frame tick.
type Sink struct {
	level slog.Leveler

	mu      *sync.Mutex
	pending *[]Entry
	attrs   []slog.Attr
}

// NewSink returns a sink that keeps records at or above level.
func NewSink(level slog.Leveler) *Sink {
	if level == nil {
		level = slog.LevelDebug
	}
	return &Sink{level: level, mu: &sync.Mutex{}, pending: new([]Entry)}
}

func (s *Sink) Enabled(_ context.Context, l slog.Level) bool {
	return l >= s.level.Level()
}

func (s *Sink) Handle(_ context.Context, r slog.Record) error {
	e := Entry{Time: r.Time, Level: r.Level, Message: r.Message}
	var rest []slog.Attr
	collect := func(a slog.Attr) bool {
		if a.Key == "" {
			return true
		}
		if !e.setField(a) {
			rest = append(rest, a)
		}
		return true
	}
	for _, a := range s.attrs {
		collect(a)
	}
	r.Attrs(collect)

	for _, a := range rest {
		// Request rows already say who logged them, and the error text
		// repeats the method and endpoint columns.
		if e.IsRequest() && (a.Key == "component" || a.Key == "error") {
			continue
		}
		e.Attrs = append(e.Attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	*s.pending = append(*s.pending, e)
	if n := len(*s.pending); n > maxPending {
		*s.pending = (*s.pending)[n-maxPending:]
	}
	return nil
}

// setField moves one of the gateway's outcome attributes into its column.
func (e *Entry) setField(a slog.Attr) bool {
	v := a.Value.Resolve()
	switch a.Key {
	case "method":
		e.Method = v.String()
	case "endpoint":
		e.Endpoint = v.String()
	case "status":
		if v.Kind() != slog.KindInt64 {
			return false
		}
		e.Status = int(v.Int64())
	case "duration":
		switch v.Kind() {
		case slog.KindDuration:
			e.Duration = v.Duration()
		case slog.KindInt64:
			e.Duration = time.Duration(v.Int64())
		default:
			return false
		}
	case "kind":
		e.Outcome = gateway.ParseKind(v.String())
	default:
		return false
	}
	return true
}

func (s *Sink) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *s
	next.attrs = append(append([]slog.Attr(nil), s.attrs...), attrs...)
	return &next
}

// WithGroup is flattened; the pane shows a single line per record.
func (s *Sink) WithGroup(string) slog.Handler { return s }

// Drain returns and clears the buffered entries.
func (s *Sink) Drain() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *s.pending
	*s.pending = nil
	return out
}
