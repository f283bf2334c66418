package metro_test

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/vsariola/metronome"
	"github.com/vsariola/metronome/metro"
)

type modelFuzzState struct {
	model *metro.Model
}

func (s *modelFuzzState) Iterate(yield func(string, func(p string, t *testing.T)) bool, seed int) {
	// Ints
	s.IterateInt("BPM", s.model.BPM().Int(), yield, seed)
	s.IterateInt("MaxBeats", s.model.MaxBeats().Int(), yield, seed)
	s.IterateInt("Volume", s.model.Volume().Int(), yield, seed)
	s.IterateInt("SoundIndex", s.model.SoundIndex().Int(), yield, seed)
	// Bools
	s.IterateBool("Playing", s.model.Playing().Bool(), yield, seed)
	// Actions
	s.IterateAction("TogglePlay", s.model.TogglePlay(), yield, seed)
	s.IterateAction("AddBPM", s.model.AddBPM(seed%21-10), yield, seed)
	s.IterateAction("AddMaxBeats", s.model.AddMaxBeats(seed%5-2), yield, seed)
	s.IterateAction("NextSound", s.model.NextSound(), yield, seed)
	// raw writes, like the slider does
	yield("Settings.BPM", func(p string, t *testing.T) {
		s.model.Settings().BPM = seed%500 - 100
	})
	yield("Settings.MaxBeats", func(p string, t *testing.T) {
		s.model.Settings().MaxBeats = seed%300 - 20
	})
	yield("Update", func(p string, t *testing.T) {
		clicks := s.model.Update(time.Duration(seed%2000) * time.Millisecond)
		settings := *s.model.Settings()
		if settings.BPM < metro.MinBPM || settings.BPM > metro.MaxBPM {
			t.Errorf("Path: %s BPM out of range after update: %d", p, settings.BPM)
		}
		if settings.MaxBeats < 0 || settings.MaxBeats > metro.MaxMaxBeats {
			t.Errorf("Path: %s MaxBeats out of range after update: %d", p, settings.MaxBeats)
		}
		if !settings.Play && clicks > 0 {
			t.Errorf("Path: %s %d clicks while stopped", p, clicks)
		}
		beat := s.model.Beat().Beat
		if clicks > 0 && settings.MaxBeats == 0 && beat != 0 {
			t.Errorf("Path: %s beat %d without a measure", p, beat)
		}
		if clicks > 0 && settings.MaxBeats > 0 && (beat < 1 || beat > settings.MaxBeats) {
			t.Errorf("Path: %s beat %d out of range 1..%d", p, beat, settings.MaxBeats)
		}
	})
}

func (s *modelFuzzState) IterateInt(name string, i metro.Int, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	r := i.Range()
	yield(name+".Set", func(p string, t *testing.T) {
		i.Set(seed%(r.Max-r.Min+10) - 5 + r.Min)
	})
	yield(name+".Value", func(p string, t *testing.T) {
		if v := i.Value(); v < r.Min || v > r.Max {
			t.Errorf("Path: %s %s value out of range [%d,%d]: %d", p, name, r.Min, r.Max, v)
		}
	})
}

func (s *modelFuzzState) IterateAction(name string, a metro.Action, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Do", func(p string, t *testing.T) {
		a.Do()
	})
}

func (s *modelFuzzState) IterateBool(name string, b metro.Bool, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		b.Set(seed%2 == 0)
	})
	yield(name+".Toggle", func(p string, t *testing.T) {
		b.Toggle()
	})
}

func FuzzModel(f *testing.F) {
	f.Add([]byte{0})
	f.Add([]byte{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36})
	f.Fuzz(func(t *testing.T, slice []byte) {
		reader := bytes.NewReader(slice)
		broker := metro.NewBroker()
		model := metro.NewModel(broker, nil, nil)
		player := metro.NewPlayer(broker, model.Sounds().Sounds)
		buf := make(metronome.AudioBuffer, 2048)
		closeChan := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case <-closeChan:
					return
				default:
					player.Process(buf)
				}
			}
		}()
		state := modelFuzzState{model: model}
		count := 0
		state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
			count++
			return true
		}, 0)
		totalPath := ""
		for m, err := binary.ReadVarint(reader); err == nil; m, err = binary.ReadVarint(reader) {
			seed := int(max(m, -m))
			index := seed % count
			state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
				if index == 0 {
					totalPath += n + ". "
					f(totalPath, t)
				}
				index--
				return index >= 0
			}, seed)
		}
		close(closeChan)
		<-done
	})
}
