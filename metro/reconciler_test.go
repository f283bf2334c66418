package metro_test

import (
	"testing"
	"time"

	"github.com/vsariola/metronome/metro"
)

func newReconciled() (*metro.Reconciler, *metro.Timer) {
	s := metro.DefaultSettings()
	timer := metro.NewTimer(metro.DurationFromBPM(s.BPM))
	timer.Pause()
	return metro.NewReconciler(s), timer
}

func TestReconcileNoChange(t *testing.T) {
	r, timer := newReconciled()
	timer.Unpause()
	timer.Tick(200 * time.Millisecond)
	if r.Reconcile(metro.DefaultSettings(), timer) {
		t.Fatal("Reconcile reported a change for equal settings")
	}
	if timer.Elapsed() != 200*time.Millisecond || timer.Duration() != 500*time.Millisecond || timer.Paused() {
		t.Fatalf("Reconcile touched the timer on a no-op frame: elapsed %v duration %v paused %v",
			timer.Elapsed(), timer.Duration(), timer.Paused())
	}
}

func TestReconcileBPMKeepsProgress(t *testing.T) {
	r, timer := newReconciled()
	s := metro.DefaultSettings()
	s.Play = true
	r.Reconcile(s, timer)
	timer.Tick(0)
	elapsed := timer.Elapsed()
	s.BPM = 60
	if !r.Reconcile(s, timer) {
		t.Fatal("Reconcile did not report a BPM change")
	}
	if timer.Duration() != time.Second {
		t.Fatalf("duration = %v, want 1s", timer.Duration())
	}
	if timer.Elapsed() != elapsed {
		t.Fatalf("BPM change reset elapsed from %v to %v", elapsed, timer.Elapsed())
	}
	if r.Last() != s {
		t.Fatalf("snapshot = %+v, want %+v", r.Last(), s)
	}
}

func TestReconcilePlayFiresImmediately(t *testing.T) {
	r, timer := newReconciled()
	s := metro.DefaultSettings()
	s.Play = true
	r.Reconcile(s, timer)
	if timer.Paused() {
		t.Fatal("timer still paused after play")
	}
	if timer.Elapsed() != timer.Duration()-time.Microsecond {
		t.Fatalf("elapsed = %v, want duration minus 1µs", timer.Elapsed())
	}
	if timer.JustFinished() {
		t.Fatal("starting playback must not itself count as a finished interval")
	}
	if n := timer.Tick(time.Millisecond); n != 1 {
		t.Fatalf("first frame after play finished %v times, want 1", n)
	}
}

func TestReconcilePauseKeepsProgressReplayResets(t *testing.T) {
	r, timer := newReconciled()
	s := metro.DefaultSettings()
	s.Play = true
	r.Reconcile(s, timer)
	timer.Tick(100 * time.Millisecond) // fires, leaves ~100ms
	progress := timer.Elapsed()

	s.Play = false
	r.Reconcile(s, timer)
	timer.Tick(time.Second)
	if !timer.Paused() || timer.Elapsed() != progress {
		t.Fatalf("pause: paused %v elapsed %v, want paused with %v", timer.Paused(), timer.Elapsed(), progress)
	}

	s.Play = true
	r.Reconcile(s, timer)
	if timer.Elapsed() != timer.Duration()-time.Microsecond {
		t.Fatalf("replay elapsed = %v, want duration minus 1µs", timer.Elapsed())
	}
}
