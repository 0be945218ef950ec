package inspector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvscope/kvscope/internal/testutil"
)

func TestNotifier_NotifyAndDismiss(t *testing.T) {
	clock := testutil.NewFakeClock()
	n := NewNotifierWithClock(3*time.Second, clock)

	n.Notify("Saved", SeveritySuccess)

	got, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "Saved", got.Message)
	assert.Equal(t, SeveritySuccess, got.Severity)

	clock.Advance(3 * time.Second)
	_, ok = n.Current()
	assert.False(t, ok, "notification should auto-dismiss after TTL")
}

func TestNotifier_ReplacementWins(t *testing.T) {
	clock := testutil.NewFakeClock()
	n := NewNotifierWithClock(3*time.Second, clock)

	n.Notify("first", SeveritySuccess)
	clock.Advance(2 * time.Second)
	n.Notify("second", SeverityError)

	// The first notification's timer fires now; it must not clear the
	// newer notification.
	clock.Advance(time.Second)

	got, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "second", got.Message)
	assert.Equal(t, SeverityError, got.Severity)

	// The second notification's own timer dismisses it.
	clock.Advance(2 * time.Second)
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNotifier_SingleSlot(t *testing.T) {
	clock := testutil.NewFakeClock()
	n := NewNotifierWithClock(3*time.Second, clock)

	n.Notify("one", SeveritySuccess)
	n.Notify("two", SeveritySuccess)
	n.Notify("three", SeverityError)

	got, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "three", got.Message)
}

func TestNotifier_DefaultTTLFallback(t *testing.T) {
	n := NewNotifierWithClock(0, testutil.NewFakeClock())
	assert.Equal(t, DefaultNotificationTTL, n.ttl)
}
