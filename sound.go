package metronome

import (
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// Sound is a decoded, fully buffered sound ready to be mixed into the output.
// Sounds are immutable once created, so the same Sound can be played many
// times simultaneously.
type Sound struct {
	Name   string
	Frames AudioBuffer
}

// ClickSounds is the pair of sounds a metronome plays: Strong on the first
// beat of a measure, Weak on the others.
type ClickSounds struct {
	Strong, Weak *Sound
}

// resampleQuality is passed to beep.Resample; 4 is plenty for short clicks.
const resampleQuality = 4

// pcm16Gain corrects beep's 16-bit wav decoder, which scales the samples by
// 1/65536 instead of 1/32768.
const pcm16Gain = 2

// LoadSound reads a .wav file from disk and converts it to a stereo Sound at
// SampleRate.
func LoadSound(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sound: %w", err)
	}
	defer f.Close()
	return ReadSound(path, f)
}

// ReadSound decodes a .wav stream. Mono files are duplicated to both
// channels by the decoder, and anything not at SampleRate is resampled. Only
// integer PCM is supported; IEEE float files, e.g. from WriteWav with pcm16
// false, are rejected with an error.
func ReadSound(name string, r io.Reader) (*Sound, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", name, err)
	}
	defer streamer.Close()
	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, beep.SampleRate(SampleRate), streamer)
	}
	gain := 1.0
	if format.Precision == 2 {
		gain = pcm16Gain
	}
	frames := make(AudioBuffer, 0, streamer.Len())
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for _, v := range chunk[:n] {
			frames = append(frames, [2]float32{float32(v[0] * gain), float32(v[1] * gain)})
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("could not read samples of %s: %w", name, err)
	}
	return &Sound{Name: name, Frames: frames}, nil
}
