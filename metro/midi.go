package metro

import (
	"errors"
	"strings"
)

type (
	// MIDIContext gives access to the MIDI output devices. At most one output
	// is open at a time; clicks are sent to it as notes.
	MIDIContext interface {
		OutputDevices(yield func(MIDIDevice) bool)
		Close()
		HasDeviceOpen() bool
		// NoteOn releases the previously sounding note, if any, and starts
		// a new one.
		NoteOn(channel, key, velocity byte) error
		// Release stops the sounding note, if any.
		Release() error
	}

	MIDIDevice interface {
		String() string
		Open() error
	}

	// MIDINotes tells which notes the clicks are sent as.
	MIDINotes struct {
		Channel        byte
		StrongKey      byte
		StrongVelocity byte
		WeakKey        byte
		WeakVelocity   byte
	}

	NullMIDIContext struct{}
)

// ErrNoMIDIDriver is returned when opening a device without a MIDI driver.
var ErrNoMIDIDriver = errors.New("no MIDI driver available")

// DefaultMIDINotes are General MIDI percussion (channel 10): high and low wood
// block.
var DefaultMIDINotes = MIDINotes{Channel: 9, StrongKey: 76, StrongVelocity: 127, WeakKey: 77, WeakVelocity: 96}

func (n MIDINotes) For(c Click) (key, velocity byte) {
	if c.Accent {
		return n.StrongKey, n.StrongVelocity
	}
	return n.WeakKey, n.WeakVelocity
}

func (m NullMIDIContext) OutputDevices(yield func(MIDIDevice) bool) {}
func (m NullMIDIContext) Close()                                    {}
func (m NullMIDIContext) HasDeviceOpen() bool                       { return false }
func (m NullMIDIContext) NoteOn(channel, key, velocity byte) error  { return nil }
func (m NullMIDIContext) Release() error                            { return nil }

// FindMIDIDeviceByPrefix returns the first output device whose name starts
// with prefix, ignoring case.
func FindMIDIDeviceByPrefix(c MIDIContext, prefix string) (device MIDIDevice, ok bool) {
	prefix = strings.ToLower(prefix)
	for d := range c.OutputDevices {
		if strings.HasPrefix(strings.ToLower(d.String()), prefix) {
			return d, true
		}
	}
	return nil, false
}
