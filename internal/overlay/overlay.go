// Package overlay controls the single page-wide loading indicator.
//
// There is exactly one overlay. Show makes it visible and (re)arms a
// watchdog; Hide clears it. If Hide is never called the watchdog forces the
// overlay hidden after a fixed ceiling, so a caller whose completion path
// failed cannot leave the indicator up forever.
package overlay

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultWatchdog bounds how long the overlay stays up without a Hide.
const DefaultWatchdog = 10 * time.Second

// Controller owns the visibility flag and the watchdog timer.
type Controller struct {
	clock    clockwork.Clock
	ceiling  time.Duration
	onChange func(visible bool)

	mu       sync.Mutex
	visible  bool
	watchdog clockwork.Timer
	gen      uint64 // bumped on every Show/Hide; stale watchdogs compare against it
	forced   int
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source for the watchdog.
func WithClock(c clockwork.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithWatchdog sets the watchdog ceiling. Non-positive values are ignored.
func WithWatchdog(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.ceiling = d
		}
	}
}

// OnChange registers a hook called after visibility flips. It runs outside
// the controller's lock and may be called from the watchdog goroutine.
func OnChange(fn func(visible bool)) Option {
	return func(ctl *Controller) { ctl.onChange = fn }
}

// New creates a hidden controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		clock:   clockwork.NewRealClock(),
		ceiling: DefaultWatchdog,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show makes the overlay visible and restarts the watchdog. Calling it while
// already visible only restarts the watchdog.
func (c *Controller) Show() {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.stopWatchdogLocked()
	c.watchdog = c.clock.AfterFunc(c.ceiling, func() { c.expire(gen) })
	changed := !c.visible
	c.visible = true
	c.mu.Unlock()

	if changed {
		c.notify(true)
	}
}

// Hide clears the overlay and cancels the watchdog.
func (c *Controller) Hide() {
	c.mu.Lock()
	c.gen++
	c.stopWatchdogLocked()
	changed := c.visible
	c.visible = false
	c.mu.Unlock()

	if changed {
		c.notify(false)
	}
}

// Visible reports whether the overlay is showing.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// WatchdogArmed reports whether a watchdog timer is pending.
func (c *Controller) WatchdogArmed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.watchdog != nil
}

// Forced returns how many times the watchdog has hidden the overlay.
func (c *Controller) Forced() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forced
}

// Ceiling returns the watchdog duration.
func (c *Controller) Ceiling() time.Duration { return c.ceiling }

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.watchdog = nil
	changed := c.visible
	c.visible = false
	if changed {
		c.forced++
	}
	c.mu.Unlock()

	if changed {
		c.notify(false)
	}
}

func (c *Controller) stopWatchdogLocked() {
	if c.watchdog != nil {
		c.watchdog.Stop()
		c.watchdog = nil
	}
}

func (c *Controller) notify(visible bool) {
	if c.onChange != nil {
		c.onChange(visible)
	}
}
