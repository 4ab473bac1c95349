// Package toast keeps the queue of short-lived notifications shown to the
// user. Every toast owns its own timer; removing one never touches another.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Defaults for toast lifetime.
const (
	DefaultTTL  = 3 * time.Second
	DefaultExit = 300 * time.Millisecond
)

// Kind selects the toast's styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// ParseKind maps a string onto a Kind. The empty string is success; anything
// unrecognised is info.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case "":
		return KindSuccess
	case KindSuccess, KindError, KindWarning, KindInfo:
		return Kind(s)
	default:
		return KindInfo
	}
}

// Toast is one notification. Dismissing is set during the exit window
// between expiry and detachment.
type Toast struct {
	ID         string
	Message    string
	Kind       Kind
	CreatedAt  time.Time
	TTL        time.Duration
	Dismissing bool
}

type entry struct {
	toast Toast
	timer clockwork.Timer
}

// Notifier owns the visible queue.
type Notifier struct {
	clock    clockwork.Clock
	ttl      time.Duration
	exit     time.Duration
	onChange func()

	mu      sync.Mutex
	entries []*entry
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithClock sets the time source for expiry timers.
func WithClock(c clockwork.Clock) Option {
	return func(n *Notifier) { n.clock = c }
}

// WithTTL sets how long a toast stays before it starts its exit.
func WithTTL(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.ttl = d
		}
	}
}

// WithExit sets the exit window between dismissal and detachment. Zero
// detaches immediately.
func WithExit(d time.Duration) Option {
	return func(n *Notifier) {
		if d >= 0 {
			n.exit = d
		}
	}
}

// OnChange registers a hook called after the queue changes. It runs outside
// the notifier's lock, possibly on a timer goroutine.
func OnChange(fn func()) Option {
	return func(n *Notifier) { n.onChange = fn }
}

// New creates an empty notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		clock: clockwork.NewRealClock(),
		ttl:   DefaultTTL,
		exit:  DefaultExit,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Enqueue appends a toast and schedules its own removal after the TTL.
func (n *Notifier) Enqueue(message string, kind Kind) Toast {
	e := &entry{toast: Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      ParseKind(string(kind)),
		CreatedAt: n.clock.Now(),
		TTL:       n.ttl,
	}}
	id := e.toast.ID

	n.mu.Lock()
	n.entries = append(n.entries, e)
	e.timer = n.clock.AfterFunc(n.ttl, func() { n.beginExit(id) })
	n.mu.Unlock()

	n.notify()
	return e.toast
}

// Success, Error, Warning and Info are shorthands for Enqueue.
func (n *Notifier) Success(message string) Toast { return n.Enqueue(message, KindSuccess) }
func (n *Notifier) Error(message string) Toast   { return n.Enqueue(message, KindError) }
func (n *Notifier) Warning(message string) Toast { return n.Enqueue(message, KindWarning) }
func (n *Notifier) Info(message string) Toast    { return n.Enqueue(message, KindInfo) }

// Dismiss starts the exit of a toast before its TTL. It returns false if the
// toast is gone or already leaving.
func (n *Notifier) Dismiss(id string) bool {
	return n.beginExit(id)
}

// Visible returns the queue in display order.
func (n *Notifier) Visible() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Toast, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.toast
	}
	return out
}

// Len returns the number of toasts still attached, leaving ones included.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.entries)
}

// Clear detaches every toast and stops their timers.
func (n *Notifier) Clear() {
	n.mu.Lock()
	for _, e := range n.entries {
		e.timer.Stop()
	}
	had := len(n.entries) > 0
	n.entries = nil
	n.mu.Unlock()

	if had {
		n.notify()
	}
}

// beginExit marks the toast as dismissing and arms its detach timer.
func (n *Notifier) beginExit(id string) bool {
	n.mu.Lock()
	e := n.findLocked(id)
	if e == nil || e.toast.Dismissing {
		n.mu.Unlock()
		return false
	}
	e.timer.Stop()
	e.toast.Dismissing = true
	if n.exit == 0 {
		n.removeLocked(id)
	} else {
		e.timer = n.clock.AfterFunc(n.exit, func() { n.detach(id) })
	}
	n.mu.Unlock()

	n.notify()
	return true
}

// detach removes the toast. A second call for the same id is a no-op.
func (n *Notifier) detach(id string) bool {
	n.mu.Lock()
	removed := n.removeLocked(id)
	n.mu.Unlock()

	if removed {
		n.notify()
	}
	return removed
}

func (n *Notifier) findLocked(id string) *entry {
	for _, e := range n.entries {
		if e.toast.ID == id {
			return e
		}
	}
	return nil
}

func (n *Notifier) removeLocked(id string) bool {
	for i, e := range n.entries {
		if e.toast.ID == id {
			e.timer.Stop()
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Notifier) notify() {
	if n.onChange != nil {
		n.onChange()
	}
}
