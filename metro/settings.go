package metro

import "time"

type (
	// Settings are the user editable parameters of the metronome. They are
	// mutated in place by key bindings and widgets, and compared by value
	// every frame to find out what changed.
	Settings struct {
		BPM      int
		Play     bool
		MaxBeats int
	}

	// BeatState tells which beat of the measure was clicked last: 1..MaxBeats,
	// or 0 if nothing has been clicked yet or MaxBeats is 0.
	BeatState struct {
		Beat int
	}
)

const (
	DefaultBPM      = 120
	MinBPM          = 60
	MaxBPM          = 300
	DefaultMaxBeats = 4
	MaxMaxBeats     = 254
)

func DefaultSettings() Settings {
	return Settings{BPM: DefaultBPM, Play: false, MaxBeats: DefaultMaxBeats}
}

// Clamp saturates BPM to [MinBPM, MaxBPM] and MaxBeats to [0, MaxMaxBeats].
// Calling it more than once has no further effect.
func (s *Settings) Clamp() {
	s.BPM = min(max(s.BPM, MinBPM), MaxBPM)
	s.MaxBeats = min(max(s.MaxBeats, 0), MaxMaxBeats)
}

func (s *Settings) TogglePlay()           { s.Play = !s.Play }
func (s *Settings) AddBPM(delta int)      { s.BPM += delta }
func (s *Settings) AddMaxBeats(delta int) { s.MaxBeats += delta }

// SecondsFromBPM returns the length of one beat in seconds.
func SecondsFromBPM(bpm int) float64 {
	return 60 / float64(bpm)
}

// DurationFromBPM returns the length of one beat, truncated to nanoseconds.
// Non-positive bpm gives a zero duration.
func DurationFromBPM(bpm int) time.Duration {
	if bpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(bpm)
}
