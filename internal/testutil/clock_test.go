package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_NothingFiresWithoutAdvance(t *testing.T) {
	c := NewFakeClock()
	fired := false
	c.AfterFunc(time.Second, func() { fired = true })

	assert.False(t, fired)
	assert.Equal(t, 1, c.Pending())
}

func TestFakeClock_FiresAtDeadline(t *testing.T) {
	c := NewFakeClock()
	fired := false
	c.AfterFunc(3*time.Second, func() { fired = true })

	c.Advance(2 * time.Second)
	assert.False(t, fired, "timer fired before its deadline")

	c.Advance(time.Second)
	assert.True(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestFakeClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewFakeClock()
	var order []string
	c.AfterFunc(2*time.Second, func() { order = append(order, "second") })
	c.AfterFunc(time.Second, func() { order = append(order, "first") })

	c.Advance(5 * time.Second)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFakeClock_CallbackMayRegisterTimer(t *testing.T) {
	c := NewFakeClock()
	chained := false
	c.AfterFunc(time.Second, func() {
		c.AfterFunc(time.Second, func() { chained = true })
	})

	c.Advance(time.Second)
	assert.False(t, chained)
	c.Advance(time.Second)
	assert.True(t, chained)
}
