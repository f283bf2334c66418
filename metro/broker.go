package metro

import (
	"time"

	"github.com/vsariola/metronome"
)

type (
	// Broker is the message broker between the GUI goroutine, which owns the
	// Model, and the audio goroutine, which runs the Player. Each recipient
	// has its own buffered channel, and senders use TrySend so the GUI never
	// blocks on the audio thread or vice versa.
	//
	// CloseGUI has a capacity of 1, so you can always send an empty message to
	// it without blocking; FinishedGUI is only ever closed, once the GUI has
	// shut down.
	Broker struct {
		ToModel  chan MsgToModel
		ToPlayer chan any // Click, SoundsMsg or VolumeMsg

		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// MsgToModel is a message sent to the model from another goroutine. Data
	// is typically a func() that gets executed in the GUI goroutine, e.g. to
	// install sounds that were loaded in the background.
	MsgToModel struct {
		Data any
	}

	// SoundsMsg replaces the sounds the player uses for clicks.
	SoundsMsg struct {
		Sounds metronome.ClickSounds
	}

	// VolumeMsg sets the output gain of the player, 0..1.
	VolumeMsg struct {
		Volume float32
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:     make(chan MsgToModel, 1024),
		ToPlayer:    make(chan any, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
