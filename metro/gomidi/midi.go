package gomidi

import (
	"fmt"

	"github.com/vsariola/metronome/metro"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	RTMIDIContext struct {
		driver             *rtmididrv.Driver
		currentOut         drivers.Out
		outputDevices      []RTMIDIDevice
		devicesInitialized bool

		sounding bool
		channel  byte
		key      byte
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		out     drivers.Out
	}
)

// NewContext opens the driver. If that fails, the context is still usable but
// lists no devices and every Open fails with metro.ErrNoMIDIDriver.
func NewContext() *RTMIDIContext {
	m := RTMIDIContext{}
	m.driver, _ = rtmididrv.New()
	return &m
}

func (m *RTMIDIContext) OutputDevices(yield func(metro.MIDIDevice) bool) {
	if m.devicesInitialized {
		for _, device := range m.outputDevices {
			if !yield(device) {
				return
			}
		}
		return
	}
	if m.driver == nil {
		return
	}
	outs, err := m.driver.Outs()
	if err != nil {
		return
	}
	for _, out := range outs {
		m.outputDevices = append(m.outputDevices, RTMIDIDevice{context: m, out: out})
	}
	m.devicesInitialized = true
	for _, device := range m.outputDevices {
		if !yield(device) {
			return
		}
	}
}

// Open an output device while closing the currently open if necessary.
func (d RTMIDIDevice) Open() error {
	c := d.context
	if c.currentOut == d.out {
		return nil
	}
	if c.driver == nil {
		return metro.ErrNoMIDIDriver
	}
	if c.HasDeviceOpen() {
		c.Release()
		c.currentOut.Close()
	}
	c.currentOut = d.out
	if err := d.out.Open(); err != nil {
		c.currentOut = nil
		return fmt.Errorf("opening MIDI output failed: %w", err)
	}
	return nil
}

func (d RTMIDIDevice) String() string {
	return d.out.String()
}

func (c *RTMIDIContext) HasDeviceOpen() bool {
	return c.currentOut != nil && c.currentOut.IsOpen()
}

func (c *RTMIDIContext) NoteOn(channel, key, velocity byte) error {
	if !c.HasDeviceOpen() {
		return nil
	}
	if err := c.Release(); err != nil {
		return err
	}
	if err := c.currentOut.Send(midi.NoteOn(channel, key, velocity)); err != nil {
		return fmt.Errorf("sending MIDI note on failed: %w", err)
	}
	c.sounding, c.channel, c.key = true, channel, key
	return nil
}

func (c *RTMIDIContext) Release() error {
	if !c.sounding || !c.HasDeviceOpen() {
		return nil
	}
	c.sounding = false
	if err := c.currentOut.Send(midi.NoteOff(c.channel, c.key)); err != nil {
		return fmt.Errorf("sending MIDI note off failed: %w", err)
	}
	return nil
}

func (c *RTMIDIContext) Close() {
	if c.driver == nil {
		return
	}
	if c.HasDeviceOpen() {
		c.Release()
		c.currentOut.Close()
	}
	c.driver.Close()
}
