package gioui

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"

	"gioui.org/io/key"
	"github.com/vsariola/metronome/metro"
	"gopkg.in/yaml.v3"
)

type (
	KeyAction string

	KeyBinding struct {
		Key                                        string
		Shortcut, Ctrl, Command, Shift, Alt, Super bool
		Action                                     string
	}

	// KeyBindings maps key presses to action names, and action names back to
	// a human readable key for hints.
	KeyBindings struct {
		bindings map[key.Event]string
		hints    map[KeyAction][]string
	}
)

//go:embed keybindings.yml
var defaultKeyBindings []byte

// LoadKeyBindings parses the default bindings, then appends the user's
// keybindings.yml if there is one. A user binding with an empty action
// unbinds the key.
func LoadKeyBindings() (*KeyBindings, error) {
	var keyBindings []KeyBinding
	if err := decodeKeyBindings(bytes.NewReader(defaultKeyBindings), &keyBindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	var userKeyBindings []KeyBinding
	exists, err := ReadCustomConfig("keybindings.yml", func(r io.Reader) error {
		return decodeKeyBindings(r, &userKeyBindings)
	})
	if exists && err != nil {
		err = fmt.Errorf("could not read keybindings.yml: %w", err)
	} else {
		err = nil
		keyBindings = append(keyBindings, userKeyBindings...)
	}
	return MakeKeyBindings(keyBindings), err
}

func decodeKeyBindings(r io.Reader, target *[]KeyBinding) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(target)
}

func MakeKeyBindings(keyBindings []KeyBinding) *KeyBindings {
	ret := &KeyBindings{bindings: map[key.Event]string{}, hints: map[KeyAction][]string{}}
	for _, kb := range keyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Command {
			mods |= key.ModCommand
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		if kb.Super {
			mods |= key.ModSuper
		}
		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		text := keyDisplayName(kb.Key)
		if modString := strings.Replace(mods.String(), "-", "+", -1); modString != "" {
			text = modString + "+" + text
		}
		if action, ok := ret.bindings[keyEvent]; ok {
			a := KeyAction(action)
			ret.hints[a] = slices.DeleteFunc(ret.hints[a], func(s string) bool { return s == text })
		}
		if kb.Action == "" {
			delete(ret.bindings, keyEvent)
			continue
		}
		ret.bindings[keyEvent] = kb.Action
		a := KeyAction(kb.Action)
		if !slices.Contains(ret.hints[a], text) {
			ret.hints[a] = append(ret.hints[a], text)
		}
	}
	return ret
}

var keyDisplayNames = map[string]string{
	string(key.NameReturn):     "Enter",
	string(key.NameEnter):      "Enter",
	string(key.NameUpArrow):    "Up",
	string(key.NameDownArrow):  "Down",
	string(key.NameLeftArrow):  "Left",
	string(key.NameRightArrow): "Right",
	string(key.NamePageUp):     "PageUp",
	string(key.NamePageDown):   "PageDown",
}

func keyDisplayName(name string) string {
	if n, ok := keyDisplayNames[name]; ok {
		return n
	}
	return name
}

// Lookup returns the action bound to the key press.
func (k *KeyBindings) Lookup(e key.Event) (action string, ok bool) {
	if e.State != key.Press {
		return "", false
	}
	action, ok = k.bindings[key.Event{Name: e.Name, Modifiers: e.Modifiers, State: key.Press}]
	return
}

// Hint appends the keys bound to action to hint, using format, e.g.
// " (%s)". Multiple keys are separated with slashes.
func (k *KeyBindings) Hint(hint, format, action string) string {
	if keys := k.hints[KeyAction(action)]; len(keys) > 0 {
		return hint + fmt.Sprintf(format, strings.Join(keys, "/"))
	}
	return hint
}

// KeyAction returns the model action for an action name.
func (m *Metronome) KeyAction(name string) (metro.Action, bool) {
	switch name {
	case "TogglePlay":
		return m.TogglePlay(), true
	case "IncreaseBPM":
		return m.AddBPM(1), true
	case "DecreaseBPM":
		return m.AddBPM(-1), true
	case "IncreaseBPM10":
		return m.AddBPM(10), true
	case "DecreaseBPM10":
		return m.AddBPM(-10), true
	case "IncreaseBeats":
		return m.AddMaxBeats(1), true
	case "DecreaseBeats":
		return m.AddMaxBeats(-1), true
	case "NextSound":
		return m.NextSound(), true
	case "IncreaseVolume":
		return metro.MakeAction(metro.DoFunc(func() { m.Volume().Int().Add(5) })), true
	case "DecreaseVolume":
		return metro.MakeAction(metro.DoFunc(func() { m.Volume().Int().Add(-5) })), true
	case "Quit":
		return metro.MakeAction(metro.DoFunc(m.RequestQuit)), true
	}
	return metro.Action{}, false
}

// KeyEvent performs the action bound to the key press, if any.
func (m *Metronome) KeyEvent(e key.Event) {
	name, ok := m.keyBindings.Lookup(e)
	if !ok {
		return
	}
	if action, ok := m.KeyAction(name); ok {
		action.Do()
	}
}
