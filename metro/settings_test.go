package metro_test

import (
	"testing"
	"time"

	"github.com/vsariola/metronome/metro"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		input metro.Settings
		want  metro.Settings
	}{
		{"default untouched", metro.DefaultSettings(), metro.DefaultSettings()},
		{"bpm below range", metro.Settings{BPM: 59, MaxBeats: 4}, metro.Settings{BPM: 60, MaxBeats: 4}},
		{"bpm far below range", metro.Settings{BPM: -1000, MaxBeats: 4}, metro.Settings{BPM: 60, MaxBeats: 4}},
		{"bpm above range", metro.Settings{BPM: 301, MaxBeats: 4}, metro.Settings{BPM: 300, MaxBeats: 4}},
		{"bounds are valid", metro.Settings{BPM: 300, MaxBeats: 0}, metro.Settings{BPM: 300, MaxBeats: 0}},
		{"negative beats", metro.Settings{BPM: 120, MaxBeats: -1}, metro.Settings{BPM: 120, MaxBeats: 0}},
		{"too many beats", metro.Settings{BPM: 120, MaxBeats: 1000}, metro.Settings{BPM: 120, MaxBeats: metro.MaxMaxBeats}},
		{"play is kept", metro.Settings{BPM: 10, Play: true, MaxBeats: 3}, metro.Settings{BPM: 60, Play: true, MaxBeats: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.input
			s.Clamp()
			if s != tt.want {
				t.Fatalf("Clamp() = %+v, want %+v", s, tt.want)
			}
			s.Clamp()
			if s != tt.want {
				t.Fatalf("second Clamp() = %+v, want %+v", s, tt.want)
			}
		})
	}
}

func TestClampAfterIncrements(t *testing.T) {
	steps := []int{1, -1, 10, -10}
	for _, start := range []int{60, 61, 120, 295, 300} {
		for _, step := range steps {
			s := metro.Settings{BPM: start, MaxBeats: 4}
			for i := 0; i < 50; i++ {
				s.AddBPM(step)
			}
			raw := s.BPM
			s.Clamp()
			want := min(max(raw, metro.MinBPM), metro.MaxBPM)
			if s.BPM != want {
				t.Errorf("start %v step %v: clamped to %v, want %v", start, step, s.BPM, want)
			}
		}
	}
}

func TestSecondsFromBPM(t *testing.T) {
	for bpm := metro.MinBPM; bpm <= metro.MaxBPM; bpm++ {
		if got, want := metro.SecondsFromBPM(bpm), 60/float64(bpm); got != want {
			t.Fatalf("SecondsFromBPM(%v) = %v, want %v", bpm, got, want)
		}
		d := metro.DurationFromBPM(bpm)
		if diff := d.Seconds() - 60/float64(bpm); diff > 2e-9 || diff < -2e-9 {
			t.Fatalf("DurationFromBPM(%v) = %v, off by %v s", bpm, d, diff)
		}
	}
	if got := metro.DurationFromBPM(120); got != 500*time.Millisecond {
		t.Errorf("DurationFromBPM(120) = %v, want 500ms", got)
	}
	if got := metro.DurationFromBPM(0); got != 0 {
		t.Errorf("DurationFromBPM(0) = %v, want 0", got)
	}
}
