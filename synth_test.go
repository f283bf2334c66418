package metronome_test

import (
	"math"
	"testing"

	"github.com/vsariola/metronome"
)

func peak(s *metronome.Sound) float64 {
	var ret float64
	for _, f := range s.Frames {
		ret = max(ret, math.Abs(float64(f[0])), math.Abs(float64(f[1])))
	}
	return ret
}

func TestPresetsRender(t *testing.T) {
	for _, p := range metronome.Presets {
		t.Run(p.Name, func(t *testing.T) {
			sounds := p.Sounds()
			if len(sounds.Strong.Frames) == 0 || len(sounds.Weak.Frames) == 0 {
				t.Fatalf("preset %q rendered an empty sound", p.Name)
			}
			if ps, pw := peak(sounds.Strong), peak(sounds.Weak); ps <= pw {
				t.Errorf("strong click peak %v not louder than weak click peak %v", ps, pw)
			}
			if ps := peak(sounds.Strong); ps > 1 {
				t.Errorf("strong click clips: peak %v", ps)
			}
		})
	}
}

func TestFindPreset(t *testing.T) {
	for _, name := range metronome.PresetNames() {
		if p, ok := metronome.FindPreset(name); !ok || p.Name != name {
			t.Errorf("FindPreset(%q) = %q, %v", name, p.Name, ok)
		}
	}
	if _, ok := metronome.FindPreset("cowbell"); ok {
		t.Error("FindPreset found a preset that does not exist")
	}
}
