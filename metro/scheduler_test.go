package metro_test

import (
	"testing"
	"time"

	"github.com/vsariola/metronome/metro"
)

type clickRecorder []metro.Click

func (r *clickRecorder) Click(c metro.Click) { *r = append(*r, c) }

func runningScheduler(bpm int) *metro.Scheduler {
	s := metro.NewScheduler(bpm)
	s.Timer.Unpause()
	return s
}

func TestSchedulerBeatCycle(t *testing.T) {
	for maxBeats := 1; maxBeats <= 7; maxBeats++ {
		s := runningScheduler(120)
		settings := metro.Settings{BPM: 120, Play: true, MaxBeats: maxBeats}
		var rec clickRecorder
		for i := 0; i < 3*maxBeats; i++ {
			s.Tick(500*time.Millisecond, settings, &rec)
		}
		if len(rec) != 3*maxBeats {
			t.Fatalf("maxBeats %v: got %v clicks, want %v", maxBeats, len(rec), 3*maxBeats)
		}
		for i, c := range rec {
			want := i%maxBeats + 1
			if c.Beat != want {
				t.Fatalf("maxBeats %v: click %v was beat %v, want %v", maxBeats, i, c.Beat, want)
			}
			if c.Accent != (c.Beat == 1) {
				t.Fatalf("maxBeats %v: click %v beat %v accent %v", maxBeats, i, c.Beat, c.Accent)
			}
		}
	}
}

func TestSchedulerZeroBeats(t *testing.T) {
	s := runningScheduler(120)
	settings := metro.Settings{BPM: 120, Play: true, MaxBeats: 0}
	var rec clickRecorder
	for i := 0; i < 5; i++ {
		s.Tick(500*time.Millisecond, settings, &rec)
	}
	if len(rec) != 5 {
		t.Fatalf("got %v clicks, want 5", len(rec))
	}
	for _, c := range rec {
		if c.Beat != 0 || c.Accent {
			t.Fatalf("with zero beats per measure got click %+v, want weak beat 0", c)
		}
	}
	if s.State.Beat != 0 {
		t.Fatalf("beat = %v, want 0", s.State.Beat)
	}
}

func TestSchedulerCatchesUpAfterLag(t *testing.T) {
	s := runningScheduler(120)
	settings := metro.Settings{BPM: 120, Play: true, MaxBeats: 4}
	var rec clickRecorder
	if n := s.Tick(2200*time.Millisecond, settings, &rec); n != 4 {
		t.Fatalf("Tick returned %v, want 4", n)
	}
	if len(rec) != 4 || rec[3].Beat != 4 {
		t.Fatalf("clicks after lag = %+v, want beats 1..4", rec)
	}
}

func TestSchedulerPausedDoesNotClick(t *testing.T) {
	s := metro.NewScheduler(120)
	var rec clickRecorder
	s.Tick(10*time.Second, metro.DefaultSettings(), &rec)
	if len(rec) != 0 {
		t.Fatalf("paused scheduler clicked %v times", len(rec))
	}
}

func TestSchedulerShrinkingMeasure(t *testing.T) {
	s := runningScheduler(120)
	s.State.Beat = 4
	var rec clickRecorder
	s.Tick(500*time.Millisecond, metro.Settings{BPM: 120, Play: true, MaxBeats: 3}, &rec)
	if rec[0].Beat != 2 {
		t.Fatalf("beat after shrinking measure = %v, want 2", rec[0].Beat)
	}
}
