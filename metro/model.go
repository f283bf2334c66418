package metro

import (
	"fmt"
	"time"

	"github.com/vsariola/metronome"
	"go.uber.org/zap"
)

type (
	// Model is the application state of the metronome, owned by the GUI
	// goroutine. It wraps the Engine with everything around it: routing the
	// clicks to the audio player and MIDI output, the selectable sounds,
	// alerts and logging. The GUI reads and writes it through Actions, Bools
	// and Ints.
	Model struct {
		engine *Engine
		broker *Broker
		midi   MIDIContext
		notes  MIDINotes
		alerts Alerts
		logger *zap.Logger

		sounds     []NamedSounds
		soundIndex int
		volume     int

		wasPlaying bool
		lastFrame  time.Time
	}

	// NamedSounds is a pair of click sounds offered to the user.
	NamedSounds struct {
		Name   string
		Sounds metronome.ClickSounds
	}
)

// NewModel creates a model with default settings and the synthesized preset
// sounds. midi and logger may be nil.
func NewModel(broker *Broker, midi MIDIContext, logger *zap.Logger) *Model {
	if midi == nil {
		midi = NullMIDIContext{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		engine: NewEngine(),
		broker: broker,
		midi:   midi,
		notes:  DefaultMIDINotes,
		logger: logger,
		volume: DefaultVolume * 100,
	}
	for _, p := range metronome.Presets {
		m.sounds = append(m.sounds, NamedSounds{Name: p.Name, Sounds: p.Sounds()})
	}
	return m
}

func (m *Model) Broker() *Broker          { return m.broker }
func (m *Model) Alerts() *Alerts          { return &m.alerts }
func (m *Model) MIDI() MIDIContext        { return m.midi }
func (m *Model) Settings() *Settings      { return &m.engine.Settings }
func (m *Model) Beat() BeatState          { return m.engine.Beat() }
func (m *Model) SetMIDINotes(n MIDINotes) { m.notes = n }

// Sounds returns the current click sounds.
func (m *Model) Sounds() NamedSounds {
	return m.sounds[m.soundIndex]
}

// SoundNames lists the names of the selectable sounds.
func (m *Model) SoundNames() []string {
	ret := make([]string, len(m.sounds))
	for i, s := range m.sounds {
		ret[i] = s.Name
	}
	return ret
}

// AddSounds appends a selectable sound pair and selects it.
func (m *Model) AddSounds(s NamedSounds) {
	m.sounds = append(m.sounds, s)
	m.SoundIndex().Int().Set(len(m.sounds) - 1)
}

// SelectSounds selects the sounds with the given name. Returns false if no
// such sounds exist.
func (m *Model) SelectSounds(name string) bool {
	for i, s := range m.sounds {
		if s.Name == name {
			if !m.SoundIndex().Int().Set(i) {
				m.sendSounds()
			}
			return true
		}
	}
	return false
}

func (m *Model) sendSounds() {
	TrySend(m.broker.ToPlayer, any(SoundsMsg{Sounds: m.sounds[m.soundIndex].Sounds}))
}

// LoadSoundFiles loads a strong and a weak click from .wav files in a
// background goroutine. When done, the sounds are added to the model and
// selected; failures are reported as alerts and the current sounds are kept.
func (m *Model) LoadSoundFiles(name, strongPath, weakPath string) {
	go func() {
		strong, errStrong := metronome.LoadSound(strongPath)
		weak, errWeak := metronome.LoadSound(weakPath)
		m.broker.ToModel <- MsgToModel{Data: func() {
			for _, err := range []error{errStrong, errWeak} {
				if err != nil {
					m.logger.Warn("could not load click sound", zap.String("sounds", name), zap.Error(err))
					m.alerts.Add(fmt.Sprintf("Could not load %s: %v", name, err), Warning)
				}
			}
			if errStrong == nil && errWeak == nil {
				m.AddSounds(NamedSounds{Name: name, Sounds: metronome.ClickSounds{Strong: strong, Weak: weak}})
			}
		}}
	}()
}

// ProcessMsg handles a message sent to the model from another goroutine.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch d := msg.Data.(type) {
	case func():
		d()
	case error:
		m.logger.Warn("error from background task", zap.Error(d))
		m.alerts.Add(d.Error(), Error)
	}
}

// OpenMIDIOutput opens the given device for the click notes.
func (m *Model) OpenMIDIOutput(d MIDIDevice) {
	if err := d.Open(); err != nil {
		m.logger.Warn("could not open MIDI output", zap.Stringer("device", d), zap.Error(err))
		m.alerts.AddNamed("MIDIOutput", fmt.Sprintf("Could not open MIDI output %s: %v", d, err), Warning)
		return
	}
	m.logger.Info("opened MIDI output", zap.Stringer("device", d))
}

// Update runs one frame of the metronome, delta being the time elapsed since
// the previous frame. Returns the number of clicks during this frame.
func (m *Model) Update(delta time.Duration) int {
	before := m.engine.reconciler.Last()
	clicks := m.engine.Update(delta, m)
	if after := m.engine.reconciler.Last(); after != before {
		m.logger.Debug("settings changed",
			zap.Int("bpm", after.BPM),
			zap.Bool("play", after.Play),
			zap.Int("maxBeats", after.MaxBeats),
			zap.Duration("interval", m.engine.Timer().Duration()))
	}
	if m.wasPlaying && !m.engine.Settings.Play {
		if err := m.midi.Release(); err != nil {
			m.logger.Warn("could not release MIDI note", zap.Error(err))
		}
	}
	m.wasPlaying = m.engine.Settings.Play
	return clicks
}

// Advance is Update driven by a wall clock: delta is the time since the
// previous call. Time that passed while stopped is not counted, so pressing
// play after a pause does not produce a burst of catch-up clicks.
func (m *Model) Advance(now time.Time) int {
	var delta time.Duration
	if m.wasPlaying && !m.lastFrame.IsZero() {
		delta = max(now.Sub(m.lastFrame), 0)
	}
	m.lastFrame = now
	return m.Update(delta)
}

// Click implements ClickSink: the click is handed to the audio player and
// sent to the MIDI output, without waiting for either.
func (m *Model) Click(c Click) {
	if !TrySend(m.broker.ToPlayer, any(c)) {
		m.alerts.AddNamed("PlayerQueueFull", "Audio player is not keeping up, click dropped", Warning)
	}
	key, velocity := m.notes.For(c)
	if err := m.midi.NoteOn(m.notes.Channel, key, velocity); err != nil {
		m.logger.Warn("could not send MIDI click", zap.Error(err))
		m.alerts.AddNamed("MIDIOutput", fmt.Sprintf("MIDI output failed: %v", err), Warning)
	}
}

// Close releases the MIDI output.
func (m *Model) Close() {
	if err := m.midi.Release(); err != nil {
		m.logger.Warn("could not release MIDI note", zap.Error(err))
	}
	m.midi.Close()
}
