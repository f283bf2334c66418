package gioui

import (
	"bytes"
	"testing"

	"gioui.org/io/key"
)

func TestDefaultKeyBindings(t *testing.T) {
	var bindings []KeyBinding
	if err := decodeKeyBindings(bytes.NewReader(defaultKeyBindings), &bindings); err != nil {
		t.Fatalf("could not decode default keybindings: %v", err)
	}
	kb := MakeKeyBindings(bindings)
	for name, want := range map[key.Name]string{
		key.NameSpace:      "TogglePlay",
		key.NameReturn:     "TogglePlay",
		key.NameUpArrow:    "IncreaseBPM",
		key.NameDownArrow:  "DecreaseBPM",
		key.NameRightArrow: "IncreaseBPM10",
		key.NameLeftArrow:  "DecreaseBPM10",
		key.NamePageUp:     "IncreaseBeats",
		key.NamePageDown:   "DecreaseBeats",
	} {
		got, ok := kb.Lookup(key.Event{Name: name, State: key.Press})
		if !ok || got != want {
			t.Errorf("key %q = %q, %v, want %q", name, got, ok, want)
		}
	}
	if _, ok := kb.Lookup(key.Event{Name: key.NameSpace, State: key.Release}); ok {
		t.Error("key releases should not trigger actions")
	}
	if got, want := kb.Hint("Start or stop", " (%s)", "TogglePlay"), "Start or stop (Space/Enter)"; got != want {
		t.Errorf("hint = %q, want %q", got, want)
	}
}

func TestKeyBindingsRebind(t *testing.T) {
	kb := MakeKeyBindings([]KeyBinding{
		{Key: "Space", Action: "TogglePlay"},
		{Key: "P", Action: "TogglePlay"},
		{Key: "Space", Action: ""},
		{Key: "A", Shift: true, Action: "NextSound"},
	})
	if _, ok := kb.Lookup(key.Event{Name: key.NameSpace, State: key.Press}); ok {
		t.Error("unbound key still triggers an action")
	}
	if got, want := kb.Hint("Play", " (%s)", "TogglePlay"), "Play (P)"; got != want {
		t.Errorf("hint = %q, want %q", got, want)
	}
	if _, ok := kb.Lookup(key.Event{Name: "A", State: key.Press}); ok {
		t.Error("binding with Shift should not match without modifiers")
	}
	if got, ok := kb.Lookup(key.Event{Name: "A", Modifiers: key.ModShift, State: key.Press}); !ok || got != "NextSound" {
		t.Errorf("Shift+A = %q, %v, want NextSound", got, ok)
	}
	if got := kb.Hint("Nothing", " (%s)", "Quit"); got != "Nothing" {
		t.Errorf("hint without keys = %q", got)
	}
}
