package metronome

import (
	"fmt"
	"math"
	"slices"
)

type (
	// Voicing describes a synthesized click: a decaying sine with an optional
	// second partial, or a plain rectangular pulse when Pulse is set.
	Voicing struct {
		Freq     float64 // fundamental frequency in Hz
		Partial  float64 // frequency ratio of the second partial, 0 = none
		Volume   float64 // peak amplitude, 0..1
		Decay    float64 // exponential decay rate in 1/s
		Length   float64 // length in seconds
		Pulse    bool
		PulseLen float64 // pulse width in seconds
	}

	// Preset is a named pair of voicings, one for the accented click and one
	// for the normal click.
	Preset struct {
		Name         string
		Strong, Weak Voicing
	}
)

// Presets lists the built-in synthesized click sounds. The first one is the
// default.
var Presets = []Preset{
	{
		Name:   "beep",
		Strong: Voicing{Freq: 1760, Volume: 0.6, Decay: 60, Length: 0.08},
		Weak:   Voicing{Freq: 880, Volume: 0.5, Decay: 60, Length: 0.08},
	},
	{
		Name:   "wood block",
		Strong: Voicing{Freq: 1200, Partial: 2.76, Volume: 0.8, Decay: 90, Length: 0.06},
		Weak:   Voicing{Freq: 900, Partial: 2.76, Volume: 0.6, Decay: 90, Length: 0.06},
	},
	{
		Name:   "pulse",
		Strong: Voicing{Pulse: true, PulseLen: 0.0048, Volume: 0.9, Length: 0.0048},
		Weak:   Voicing{Pulse: true, PulseLen: 0.0024, Volume: 0.7, Length: 0.0024},
	},
}

// PresetNames returns the names of all built-in presets, in order.
func PresetNames() []string {
	ret := make([]string, len(Presets))
	for i, p := range Presets {
		ret[i] = p.Name
	}
	return ret
}

// FindPreset returns the preset with the given name.
func FindPreset(name string) (Preset, bool) {
	i := slices.IndexFunc(Presets, func(p Preset) bool { return p.Name == name })
	if i < 0 {
		return Preset{}, false
	}
	return Presets[i], true
}

// Sounds renders both voicings of the preset.
func (p Preset) Sounds() ClickSounds {
	return ClickSounds{
		Strong: p.Strong.Synthesize(fmt.Sprintf("%s (strong)", p.Name)),
		Weak:   p.Weak.Synthesize(fmt.Sprintf("%s (weak)", p.Name)),
	}
}

// Synthesize renders the voicing into a Sound.
func (v Voicing) Synthesize(name string) *Sound {
	n := int(math.Ceil(v.Length * SampleRate))
	frames := make(AudioBuffer, n)
	i := 0
	frames.Fill(func() [2]float32 {
		t := float64(i) / SampleRate
		i++
		var s float64
		switch {
		case v.Pulse:
			if t < v.PulseLen {
				s = v.Volume
			}
		default:
			s = math.Sin(2 * math.Pi * v.Freq * t)
			if v.Partial > 0 {
				s = 0.7*s + 0.3*math.Sin(2*math.Pi*v.Freq*v.Partial*t)
			}
			s *= v.Volume * math.Exp(-v.Decay*t)
		}
		return [2]float32{float32(s), float32(s)}
	})
	return &Sound{Name: name, Frames: frames}
}
