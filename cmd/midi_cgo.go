//go:build cgo

package cmd

import (
	"github.com/vsariola/metronome/metro"
	"github.com/vsariola/metronome/metro/gomidi"
)

func NewMidiContext() metro.MIDIContext {
	return gomidi.NewContext()
}
