package metronome

import (
	"errors"
	"io"
)

type (
	// AudioBuffer is a buffer of stereo audio samples of variable length, each
	// sample represented by [2]float32. [0] is left channel, [1] is right
	AudioBuffer [][2]float32

	// AudioContext represents the low-level audio drivers. There should be at
	// most one AudioContext at a time. The interface is implemented at least
	// by oto.OtoContext, but in future we could also mock it.
	//
	// AudioContext is used to play audio; the callback is called from the audio
	// goroutine whenever the driver needs more samples, and it should fill the
	// whole buffer.
	AudioContext interface {
		Play(f func(buf AudioBuffer) error) CloserWaiter
	}

	// CloserWaiter is an io.Closer that can also be waited on: Wait returns
	// once the playback has stopped, either because it was closed or because
	// the callback returned an error.
	CloserWaiter interface {
		io.Closer
		Wait() error
	}
)

// ErrPlaybackDone can be returned by the Play callback to stop playback
// gracefully: the buffer filled by that call is still played, and Wait
// returns nil.
var ErrPlaybackDone = errors.New("playback done")

// Fill fills the AudioBuffer using a callback function that renders one
// stereo frame at a time.
func (buffer AudioBuffer) Fill(f func() [2]float32) {
	for i := range buffer {
		buffer[i] = f()
	}
}

// Clear zeroes the buffer in place.
func (buffer AudioBuffer) Clear() {
	for i := range buffer {
		buffer[i] = [2]float32{}
	}
}

// Duration returns the length of the buffer in seconds at SampleRate.
func (buffer AudioBuffer) Duration() float64 {
	return float64(len(buffer)) / SampleRate
}

// SampleRate is the fixed output sample rate used everywhere in the
// application; loaded sounds are resampled to it.
const SampleRate = 44100
