package advisor

import (
	"sync"
	"time"
)

// availability caches the "backend is down" decision so one slow timeout
// doesn't repeat on every message. Unlike a once-per-process flag, the
// decision expires after a TTL and the next call retries the remote.
type availability struct {
	mu        sync.Mutex
	ttl       time.Duration
	downUntil time.Time
	now       func() time.Time
}

func newAvailability(ttl time.Duration, now func() time.Time) *availability {
	return &availability{ttl: ttl, now: now}
}

// Available reports whether a remote attempt should be made.
func (a *availability) Available() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.now().Before(a.downUntil)
}

// MarkDown suppresses remote attempts for the configured TTL.
func (a *availability) MarkDown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.downUntil = a.now().Add(a.ttl)
}
