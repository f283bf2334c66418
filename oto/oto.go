package oto

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/metronome"
)

type (
	OtoContext oto.Context

	// OtoOutput adapts a render callback to the io.Reader oto pulls samples
	// from. When the callback fails, the reader returns the error and playback
	// stops.
	OtoOutput struct {
		player    *oto.Player
		f         func(buf metronome.AudioBuffer) error
		tmpBuffer metronome.AudioBuffer

		mu      sync.Mutex
		err     error
		done    chan struct{}
		closeFn sync.Once
	}
)

const otoBufferSize = 20 * time.Millisecond

// NewContext creates and initializes a new OtoContext, waiting until the
// audio device is ready.
func NewContext() (*OtoContext, error) {
	op := &oto.NewContextOptions{
		SampleRate:   metronome.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   otoBufferSize,
	}
	context, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return (*OtoContext)(context), nil
}

// Play starts pulling audio from f until the returned CloserWaiter is closed
// or f returns an error.
func (c *OtoContext) Play(f func(buf metronome.AudioBuffer) error) metronome.CloserWaiter {
	o := &OtoOutput{f: f, done: make(chan struct{})}
	o.player = (*oto.Context)(c).NewPlayer(o)
	o.player.Play()
	go o.watch()
	return o
}

// Read implements io.Reader for the oto player, rendering float32 little
// endian stereo frames.
func (o *OtoOutput) Read(p []byte) (n int, err error) {
	frames := len(p) / 8
	if cap(o.tmpBuffer) < frames {
		o.tmpBuffer = make(metronome.AudioBuffer, frames)
	}
	buf := o.tmpBuffer[:frames]
	if err := o.f(buf); err != nil {
		o.setErr(err)
		if !errors.Is(err, metronome.ErrPlaybackDone) {
			return 0, err
		}
		// the last buffer is still valid; EOF lets oto drain it
		return encode(p, buf), io.EOF
	}
	return encode(p, buf), nil
}

func encode(p []byte, buf metronome.AudioBuffer) int {
	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*8:], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(p[i*8+4:], math.Float32bits(v[1]))
	}
	return len(buf) * 8
}

// watch waits until the player stops on its own, i.e. the callback ended it.
func (o *OtoOutput) watch() {
	for o.player.IsPlaying() {
		select {
		case <-o.done:
			return
		case <-time.After(50 * time.Millisecond):
		}
	}
	o.Close()
}

func (o *OtoOutput) setErr(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err == nil {
		o.err = err
	}
}

// Close stops the playback and releases the player.
func (o *OtoOutput) Close() error {
	var err error
	o.closeFn.Do(func() {
		if e := o.player.Close(); e != nil {
			err = fmt.Errorf("cannot close oto player: %w", e)
		}
		close(o.done)
	})
	return err
}

// Wait blocks until the playback has stopped. Stopping because the callback
// returned metronome.ErrPlaybackDone is not an error.
func (o *OtoOutput) Wait() error {
	<-o.done
	o.mu.Lock()
	defer o.mu.Unlock()
	if errors.Is(o.err, metronome.ErrPlaybackDone) {
		return nil
	}
	return o.err
}
