package app

import "sync/atomic"

// Expiry records that the gateway expired the session. Notify is safe to
// call from any goroutine and never blocks; the UI consumes the flag on its
// next frame.
type Expiry struct {
	flag atomic.Bool
}

// Notify marks the session as expired. Pass it to gateway.OnSessionExpired.
func (e *Expiry) Notify() { e.flag.Store(true) }

// Take reports whether the session expired since the last call and resets
// the flag.
func (e *Expiry) Take() bool { return e.flag.Swap(false) }
