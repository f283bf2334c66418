package metronome_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/vsariola/metronome"
)

func TestWavHeader(t *testing.T) {
	buffer := make(metronome.AudioBuffer, 100)
	for _, pcm16 := range []bool{false, true} {
		data, err := buffer.Wav(pcm16)
		if err != nil {
			t.Fatalf("Wav(%v) failed: %v", pcm16, err)
		}
		if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
			t.Fatalf("Wav(%v) did not produce a RIFF/WAVE header", pcm16)
		}
		if got := binary.LittleEndian.Uint32(data[4:8]); int(got) != len(data)-8 {
			t.Errorf("Wav(%v) chunk size was %v, expected %v", pcm16, got, len(data)-8)
		}
		if got := binary.LittleEndian.Uint32(data[24:28]); got != metronome.SampleRate {
			t.Errorf("Wav(%v) sample rate was %v, expected %v", pcm16, got, metronome.SampleRate)
		}
	}
}

func TestWavRoundTrip(t *testing.T) {
	sound := metronome.Presets[0].Strong.Synthesize("beep")
	var buf bytes.Buffer
	if err := sound.Frames.WriteWav(&buf, true); err != nil {
		t.Fatalf("WriteWav failed: %v", err)
	}
	decoded, err := metronome.ReadSound("beep.wav", &buf)
	if err != nil {
		t.Fatalf("ReadSound failed: %v", err)
	}
	if len(decoded.Frames) != len(sound.Frames) {
		t.Fatalf("decoded sound has %v frames, expected %v", len(decoded.Frames), len(sound.Frames))
	}
	for i := range sound.Frames {
		for c := 0; c < 2; c++ {
			if d := math.Abs(float64(decoded.Frames[i][c] - sound.Frames[i][c])); d > 1e-3 {
				t.Fatalf("frame %v channel %v differs by %v", i, c, d)
			}
		}
	}
}

func TestReadSoundKeepsPCM16Level(t *testing.T) {
	buffer := metronome.AudioBuffer{{0.5, -0.5}, {0.25, -0.25}, {1, -1}}
	data, err := buffer.Wav(true)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	decoded, err := metronome.ReadSound("levels.wav", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadSound failed: %v", err)
	}
	for i, want := range buffer {
		got := decoded.Frames[i]
		if math.Abs(float64(got[0]-want[0])) > 1e-3 || math.Abs(float64(got[1]-want[1])) > 1e-3 {
			t.Errorf("frame %v = %v, want %v", i, got, want)
		}
	}
}

func TestReadSoundRejectsFloatWav(t *testing.T) {
	data, err := metronome.Presets[0].Weak.Synthesize("beep").Frames.Wav(false)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	_, err = metronome.ReadSound("float.wav", bytes.NewReader(data))
	if err == nil {
		t.Fatal("ReadSound accepted an IEEE float wav")
	}
	if !strings.Contains(err.Error(), "float.wav") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestReadSoundRejectsGarbage(t *testing.T) {
	if _, err := metronome.ReadSound("garbage.wav", bytes.NewReader([]byte("not a wav file"))); err == nil {
		t.Fatal("ReadSound accepted garbage input")
	}
}

func TestLoadSoundMissingFile(t *testing.T) {
	if _, err := metronome.LoadSound("does-not-exist.wav"); err == nil {
		t.Fatal("LoadSound did not fail for a missing file")
	}
}
