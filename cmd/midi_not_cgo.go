//go:build !cgo

package cmd

import (
	"github.com/vsariola/metronome/metro"
)

func NewMidiContext() metro.MIDIContext {
	// with no cgo, we cannot use MIDI, so return a null context
	return metro.NullMIDIContext{}
}
