package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerNoEffectBeforeDuration(t *testing.T) {
	fired := 0
	tm := NewTimer(1.0, func() { fired++ }, true, false)

	tm.Update(0.5)
	tm.Update(0.25)

	assert.Equal(t, 0, fired)
	assert.True(t, tm.Active())
}

func TestTimerUpdateWhileInactiveIsNoop(t *testing.T) {
	fired := 0
	tm := NewTimer(0.1, func() { fired++ }, false, false)

	for i := 0; i < 10; i++ {
		tm.Update(1.0)
	}

	assert.Equal(t, 0, fired)
	assert.False(t, tm.Active())
}

func TestTimerNonRepeatingDeactivatesBeforeCallback(t *testing.T) {
	var activeInCallback bool
	var tm *Timer
	tm = NewTimer(1.0, func() { activeInCallback = tm.Active() }, true, false)

	tm.Update(1.0)

	assert.False(t, activeInCallback, "timer must deactivate before invoking its callback")
	assert.False(t, tm.Active())
}

func TestTimerCallbackMayRearmSameTimer(t *testing.T) {
	fired := 0
	var tm *Timer
	tm = NewTimer(1.0, func() {
		fired++
		tm.Start()
	}, true, false)

	tm.Update(1.0)
	assert.Equal(t, 1, fired)
	assert.True(t, tm.Active(), "re-arm from the callback must stick")

	tm.Update(1.0)
	assert.Equal(t, 2, fired)
}

func TestTimerRepeatingFiresOncePerInterval(t *testing.T) {
	fired := 0
	tm := NewTimer(1.0, func() { fired++ }, true, true)

	for i := 0; i < 12; i++ {
		tm.Update(0.25)
	}

	assert.Equal(t, 3, fired)
	assert.True(t, tm.Active())
}

func TestTimerRepeatingCatchesUpOnLargeDelta(t *testing.T) {
	fired := 0
	tm := NewTimer(1.0, func() { fired++ }, true, true)

	tm.Update(3.0)

	assert.Equal(t, 3, fired)
}

func TestTimerStartRestartsCountdown(t *testing.T) {
	fired := 0
	tm := NewTimer(1.0, func() { fired++ }, true, false)

	tm.Update(0.9)
	tm.Start()
	tm.Update(0.9)

	assert.Equal(t, 0, fired, "restart must reset the countdown")

	tm.Update(0.1)
	assert.Equal(t, 1, fired)
}

func TestTimerWithoutAutostartStaysInactive(t *testing.T) {
	tm := NewTimer(1.0, nil, false, false)
	assert.False(t, tm.Active())

	tm.Start()
	assert.True(t, tm.Active())
}
