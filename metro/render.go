package metro

import (
	"time"

	"github.com/vsariola/metronome"
)

// Renderer runs a Model and a Player without a window or an audio device:
// the model is stepped at a fixed frame rate and each frame is mixed right
// away. It plays a fixed number of clicks and then lets the last one ring
// for one beat interval.
type Renderer struct {
	model  *Model
	player *Player

	frame    metronome.AudioBuffer
	pending  metronome.AudioBuffer
	delta    time.Duration
	clicks   int
	total    int
	tail     int // frames left after the last click
	stopped  bool
	finished bool
}

// NewRenderer starts the model playing. fps is the simulated frame rate and
// must divide SampleRate reasonably; the frame length is rounded to whole
// samples.
func NewRenderer(model *Model, player *Player, fps, clicks int) *Renderer {
	frameLen := max(metronome.SampleRate/max(fps, 1), 1)
	model.Settings().Play = true
	return &Renderer{
		model:  model,
		player: player,
		frame:  make(metronome.AudioBuffer, frameLen),
		delta:  time.Duration(frameLen) * time.Second / metronome.SampleRate,
		total:  clicks,
	}
}

// Clicks returns the number of clicks rendered so far.
func (r *Renderer) Clicks() int { return r.clicks }

// Finished reports whether all clicks and the tail have been rendered.
func (r *Renderer) Finished() bool { return r.finished }

// Step runs one frame and returns its audio. The returned buffer is reused
// by the next Step.
func (r *Renderer) Step() metronome.AudioBuffer {
	if !r.stopped {
		r.clicks += r.model.Update(r.delta)
		if r.clicks >= r.total {
			r.stopped = true
			r.model.Settings().Play = false
			r.model.Update(0)
			r.tail = int(r.model.engine.Timer().Duration() / r.delta)
		}
	} else if r.tail--; r.tail <= 0 {
		r.finished = true
	}
	r.player.Process(r.frame)
	return r.frame
}

// Fill can be used as the AudioContext callback: it copies rendered frames
// into buf and returns metronome.ErrPlaybackDone once finished.
func (r *Renderer) Fill(buf metronome.AudioBuffer) error {
	for i := 0; i < len(buf); {
		if len(r.pending) == 0 {
			if r.finished {
				buf[i:].Clear()
				return metronome.ErrPlaybackDone
			}
			r.pending = r.Step()
		}
		n := copy(buf[i:], r.pending)
		r.pending = r.pending[n:]
		i += n
	}
	return nil
}

// RenderAll renders everything into a single buffer.
func (r *Renderer) RenderAll() metronome.AudioBuffer {
	var ret metronome.AudioBuffer
	for !r.finished {
		ret = append(ret, r.Step()...)
	}
	return ret
}
