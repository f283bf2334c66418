package metro

import "time"

type (
	// Click is emitted once per completed beat interval. Accent is true on
	// the first beat of a measure, when the strong sound should be played.
	Click struct {
		Beat   int
		Accent bool
	}

	// ClickSink receives the clicks. Clicks are fire-and-forget: the sink
	// starts playing the sound and nothing is ever stopped or cancelled.
	ClickSink interface {
		Click(c Click)
	}

	// ClickFunc adapts a function to a ClickSink.
	ClickFunc func(c Click)

	// Scheduler owns the interval timer and the beat counter.
	Scheduler struct {
		Timer *Timer
		State BeatState
	}
)

func (f ClickFunc) Click(c Click) { f(c) }

// NewScheduler returns a paused scheduler with the interval of bpm.
func NewScheduler(bpm int) *Scheduler {
	t := NewTimer(DurationFromBPM(bpm))
	t.Pause()
	return &Scheduler{Timer: t}
}

// Tick advances the timer by delta. Every completed interval advances the
// beat counter and sends one click to sink, so lagging frames do not drop
// beats. Returns the number of clicks sent.
func (s *Scheduler) Tick(delta time.Duration, settings Settings, sink ClickSink) int {
	n := s.Timer.Tick(delta)
	for i := 0; i < n; i++ {
		s.State.Beat = nextBeat(s.State.Beat, settings.MaxBeats)
		if sink != nil {
			sink.Click(Click{Beat: s.State.Beat, Accent: s.State.Beat == 1})
		}
	}
	return n
}

func nextBeat(beat, maxBeats int) int {
	if maxBeats <= 0 {
		return 0
	}
	return beat%maxBeats + 1
}
