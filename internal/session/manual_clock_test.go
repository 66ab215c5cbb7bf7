package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	t.Parallel()

	c := NewManualClock(epoch)
	var order []string
	c.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	c.AfterFunc(time.Second, func() { order = append(order, "a") })
	c.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	c.AfterFunc(2*time.Second, func() { order = append(order, "b2") })

	c.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b", "b2"}, order)
	assert.Equal(t, epoch.Add(2*time.Second), c.Now())
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "b2", "c"}, order)
	assert.Zero(t, c.Pending())
}

func TestManualClock_CallbackSeesItsDeadline(t *testing.T) {
	t.Parallel()

	c := NewManualClock(epoch)
	var seen time.Time
	c.AfterFunc(1500*time.Millisecond, func() { seen = c.Now() })
	c.Advance(10 * time.Second)
	assert.Equal(t, epoch.Add(1500*time.Millisecond), seen)
}

func TestManualClock_NestedTimersFireWithinWindow(t *testing.T) {
	t.Parallel()

	c := NewManualClock(epoch)
	fired := 0
	var rearm func()
	rearm = func() {
		fired++
		c.AfterFunc(time.Second, rearm)
	}
	c.AfterFunc(time.Second, rearm)

	c.Advance(5 * time.Second)
	assert.Equal(t, 5, fired)
	assert.Equal(t, 1, c.Pending())
}

func TestManualClock_StopPreventsFiring(t *testing.T) {
	t.Parallel()

	c := NewManualClock(epoch)
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop(), "second stop must report the timer as already stopped")

	c.Advance(time.Hour)
	assert.False(t, fired)
}

func TestManualClock_StopAfterFireReportsFalse(t *testing.T) {
	t.Parallel()

	c := NewManualClock(epoch)
	timer := c.AfterFunc(time.Second, func() {})
	c.Advance(time.Second)
	assert.False(t, timer.Stop())
}
