package metro

import "time"

// startEpsilon is how far before the end of the interval the timer is wound
// when playback starts, so that the first click comes on the next frame.
const startEpsilon = time.Microsecond

// Reconciler applies changes in Settings to the timer. It keeps a copy of
// the settings it saw last and does nothing as long as they stay equal.
type Reconciler struct {
	last Settings
}

// NewReconciler returns a reconciler whose baseline is the settings the
// timer was configured with.
func NewReconciler(initial Settings) *Reconciler {
	return &Reconciler{last: initial}
}

// Last returns the settings snapshot from the previous reconciliation.
func (r *Reconciler) Last() Settings { return r.last }

// Reconcile compares s to the previous snapshot and reconfigures t. Returns
// true if anything changed.
func (r *Reconciler) Reconcile(s Settings, t *Timer) bool {
	if s == r.last {
		return false
	}
	if s.BPM != r.last.BPM {
		t.SetDuration(DurationFromBPM(s.BPM))
	}
	if s.Play != r.last.Play {
		if s.Play {
			t.Unpause()
			t.Reset()
			t.Tick(t.Duration() - startEpsilon)
		} else {
			t.Pause()
		}
	}
	r.last = s
	return true
}
