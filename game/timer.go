package game

// Timer is a delta-time driven countdown. It is advanced explicitly from the
// frame loop, never from wall-clock time, so simulated frames in tests behave
// exactly like real ones.
type Timer struct {
	Duration float64 // seconds
	Repeat   bool

	fn      func()
	active  bool
	elapsed float64
}

// NewTimer creates a timer. fn runs on expiry and may be nil. An autostart
// timer begins counting immediately.
func NewTimer(duration float64, fn func(), autostart, repeat bool) *Timer {
	t := &Timer{Duration: duration, Repeat: repeat, fn: fn}
	if autostart {
		t.Start()
	}
	return t
}

// Start arms the timer, restarting the countdown if it is already running.
func (t *Timer) Start() {
	t.active = true
	t.elapsed = 0
}

// Active reports whether the timer is counting down.
func (t *Timer) Active() bool { return t.active }

// Update advances the timer. Calling it while inactive is a no-op. A
// non-repeating timer deactivates itself before invoking its callback, so the
// callback may safely re-arm the same timer. A repeating timer re-arms first,
// carrying the overshoot, and fires once per elapsed interval.
func (t *Timer) Update(dt float64) {
	if !t.active || t.Duration <= 0 {
		return
	}
	t.elapsed += dt
	for t.active && t.elapsed >= t.Duration {
		if t.Repeat {
			t.elapsed -= t.Duration
			if t.fn != nil {
				t.fn()
			}
			continue
		}
		t.active = false
		t.elapsed = 0
		if t.fn != nil {
			t.fn()
		}
		return
	}
}
