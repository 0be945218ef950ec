// Package testutil provides deterministic test doubles shared across
// packages.
package testutil

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a manually-advanced clock for tests.
//
// Callbacks registered with AfterFunc fire synchronously, in deadline
// order, when Advance moves the clock past their deadline. Nothing fires
// until Advance is called, so tests control exactly when dismissal-style
// timers run.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex. Callbacks run without the mutex held, so a callback may register
// further timers.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []fakeTimer
}

type fakeTimer struct {
	deadline time.Time
	f        func()
}

// NewFakeClock creates a FakeClock starting at an arbitrary fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(0, 0)}
}

// AfterFunc registers f to run when the clock advances d past now.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers = append(c.timers, fakeTimer{deadline: c.now.Add(d), f: f})
}

// Advance moves the clock forward by d and fires every timer whose
// deadline has passed, in deadline order.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)

	var due, pending []fakeTimer
	for _, t := range c.timers {
		if !t.deadline.After(c.now) {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	c.timers = pending
	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of timers not yet fired.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
