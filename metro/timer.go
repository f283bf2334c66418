package metro

import "time"

// Timer is a repeating interval timer that is advanced manually, once per
// frame. Whenever the accumulated time reaches the duration, the timer
// finishes, keeps the remainder and starts over.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	paused   bool
	finished int
}

// NewTimer returns a running timer with the given interval.
func NewTimer(duration time.Duration) *Timer {
	return &Timer{duration: duration}
}

// Tick advances the timer by delta and returns how many times the interval
// was completed during this tick. A paused timer does not accumulate time. A
// timer with zero duration finishes exactly once per tick.
func (t *Timer) Tick(delta time.Duration) int {
	t.finished = 0
	if t.paused {
		return 0
	}
	t.elapsed += max(delta, 0)
	switch {
	case t.duration <= 0:
		t.finished = 1
		t.elapsed = 0
	case t.elapsed >= t.duration:
		t.finished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	}
	return t.finished
}

func (t *Timer) JustFinished() bool { return t.finished > 0 }

func (t *Timer) Duration() time.Duration { return t.duration }
func (t *Timer) Elapsed() time.Duration  { return t.elapsed }
func (t *Timer) Paused() bool            { return t.paused }
func (t *Timer) Pause()                  { t.paused = true }
func (t *Timer) Unpause()                { t.paused = false }

// SetDuration changes the interval without touching the elapsed time; if the
// elapsed time already exceeds the new duration, the next Tick finishes.
func (t *Timer) SetDuration(d time.Duration) { t.duration = d }

// Reset rewinds the elapsed time to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = 0
}
