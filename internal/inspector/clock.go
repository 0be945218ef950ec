package inspector

import "time"

// Clock schedules deferred work. The Notifier uses it for auto-dismissal
// so tests can drive time deterministically.
type Clock interface {
	// AfterFunc runs f on its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, f func())
}

// realClock is the production Clock backed by the time package.
type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
