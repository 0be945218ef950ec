package inspector

import (
	"sync"
	"time"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultNotificationTTL is how long a notification stays visible before
// auto-dismissal.
const DefaultNotificationTTL = 3 * time.Second

// Notification is an ephemeral user-facing message.
type Notification struct {
	Message  string
	Severity Severity
}

// Notifier is a single-slot notification mailbox. Posting a new
// notification replaces any pending one and schedules its dismissal after
// the configured TTL.
//
// Each post bumps a generation counter that the dismissal callback checks
// before clearing, so a timer left over from a replaced notification never
// erases a newer one.
type Notifier struct {
	mu      sync.Mutex
	clock   Clock
	ttl     time.Duration
	gen     uint64
	current *Notification
}

// NewNotifier creates a Notifier with the given TTL on the real clock.
// A non-positive ttl falls back to DefaultNotificationTTL.
func NewNotifier(ttl time.Duration) *Notifier {
	return NewNotifierWithClock(ttl, realClock{})
}

// NewNotifierWithClock creates a Notifier driven by the given Clock.
func NewNotifierWithClock(ttl time.Duration, clock Clock) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{clock: clock, ttl: ttl}
}

// Notify replaces the current notification and schedules its dismissal.
func (n *Notifier) Notify(message string, severity Severity) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.current = &Notification{Message: message, Severity: severity}
	n.mu.Unlock()

	n.clock.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// A newer notification owns the slot now; leave it alone.
		if n.gen == gen {
			n.current = nil
		}
	})
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}
