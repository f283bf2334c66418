package gioui

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gioui.org/unit"
	"github.com/vsariola/metronome/metro"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window WindowPreferences
		Sound  string
		Wavs   []WavPreferences `yaml:",omitempty"`
		Volume int
		MIDI   MIDIPreferences `yaml:"midi"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	// WavPreferences names a pair of .wav files used as click sounds.
	WavPreferences struct {
		Name   string
		Strong string
		Weak   string
	}

	MIDIPreferences struct {
		Output  string `yaml:",omitempty"` // prefix of the output device name
		Channel int
		Strong  NotePreferences
		Weak    NotePreferences
	}

	NotePreferences struct {
		Key      int
		Velocity int
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfig opens a file in the metronome folder of the user config
// directory and passes it to read. exists is false if there is no such file.
func ReadCustomConfig(filename string, read func(r io.Reader) error) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, "metronome", filename)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return true, err
	}
	return true, read(bytes.NewReader(b))
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target any) (exists bool, err error) {
	return ReadCustomConfig(filename, func(r io.Reader) error {
		b, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return yaml.UnmarshalStrict(b, target)
	})
}

// MakePreferences returns the default preferences overridden by the user's
// preferences.yml. The defaults are returned along with the error if the
// user's file is broken.
func MakePreferences() (Preferences, error) {
	preferences := loadDefaultPreferences()
	custom := preferences
	exists, err := ReadCustomConfigYml("preferences.yml", &custom)
	if exists && err != nil {
		return preferences, fmt.Errorf("could not read preferences.yml: %w", err)
	}
	return custom, nil
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

// MIDINotes converts the note preferences, clamping each value to 0..127
// and the channel to 0..15.
func (p Preferences) MIDINotes() metro.MIDINotes {
	b := func(v, hi int) byte { return byte(min(max(v, 0), hi)) }
	return metro.MIDINotes{
		Channel:        b(p.MIDI.Channel, 15),
		StrongKey:      b(p.MIDI.Strong.Key, 127),
		StrongVelocity: b(p.MIDI.Strong.Velocity, 127),
		WeakKey:        b(p.MIDI.Weak.Key, 127),
		WeakVelocity:   b(p.MIDI.Weak.Velocity, 127),
	}
}

// Apply configures the model according to the preferences. Wav files are
// loaded in the background and selected once ready, which overrides Sound.
func (p Preferences) Apply(m *metro.Model) {
	m.Volume().Int().Set(p.Volume)
	m.SetMIDINotes(p.MIDINotes())
	if p.Sound != "" && !m.SelectSounds(p.Sound) {
		m.Alerts().Add(fmt.Sprintf("Unknown sound %q in preferences", p.Sound), metro.Warning)
	}
	for _, w := range p.Wavs {
		m.LoadSoundFiles(w.Name, w.Strong, w.Weak)
	}
	if p.MIDI.Output != "" {
		if d, ok := metro.FindMIDIDeviceByPrefix(m.MIDI(), p.MIDI.Output); ok {
			m.OpenMIDIOutput(d)
		} else {
			m.Alerts().Add(fmt.Sprintf("MIDI output %q not found", p.MIDI.Output), metro.Warning)
		}
	}
}
