package metro

import (
	"github.com/viterin/vek/vek32"
	"github.com/vsariola/metronome"
)

type (
	// Player renders the clicks into audio buffers, run in the audio
	// goroutine. It is controlled only by messages from the broker: every
	// Click starts a new voice, which is dropped once the whole sound has been
	// played. Nothing is ever stopped early.
	Player struct {
		strong, weak planarSound
		volume       float32
		voices       []voice
		left, right  []float32 // scratch buffers for mixing, one per channel
		broker       *Broker
	}

	// planarSound keeps the two channels of a sound in separate slices so
	// they can be mixed with vector operations.
	planarSound [2][]float32

	voice struct {
		sound planarSound
		pos   int
	}
)

// DefaultVolume is the initial output gain of the player.
const DefaultVolume = 0.8

func NewPlayer(broker *Broker, sounds metronome.ClickSounds) *Player {
	p := &Player{broker: broker, volume: DefaultVolume}
	p.setSounds(sounds)
	return p
}

// Process fills the buffer with the mix of all sounding voices, after
// handling the messages that have arrived since the previous buffer.
func (p *Player) Process(buffer metronome.AudioBuffer) {
	p.processMessages()
	n := len(buffer)
	if cap(p.left) < n {
		p.left = make([]float32, n)
		p.right = make([]float32, n)
	}
	left := vek32.Zeros_Into(p.left, n)
	right := vek32.Zeros_Into(p.right, n)
	alive := p.voices[:0]
	for _, v := range p.voices {
		m := min(n, len(v.sound[0])-v.pos)
		vek32.Add_Inplace(left[:m], v.sound[0][v.pos:v.pos+m])
		vek32.Add_Inplace(right[:m], v.sound[1][v.pos:v.pos+m])
		v.pos += m
		if v.pos < len(v.sound[0]) {
			alive = append(alive, v)
		}
	}
	p.voices = alive
	vek32.MulNumber_Inplace(left, p.volume)
	vek32.MulNumber_Inplace(right, p.volume)
	for i := range buffer {
		buffer[i] = [2]float32{left[i], right[i]}
	}
}

// Voices returns the number of sounds still playing.
func (p *Player) Voices() int { return len(p.voices) }

func (p *Player) processMessages() {
	for {
		select {
		case msg := <-p.broker.ToPlayer:
			switch m := msg.(type) {
			case Click:
				s := p.weak
				if m.Accent {
					s = p.strong
				}
				if len(s[0]) > 0 {
					p.voices = append(p.voices, voice{sound: s})
				}
			case SoundsMsg:
				p.setSounds(m.Sounds)
			case VolumeMsg:
				p.volume = min(max(m.Volume, 0), 1)
			}
		default:
			return
		}
	}
}

func (p *Player) setSounds(sounds metronome.ClickSounds) {
	p.strong = toPlanar(sounds.Strong)
	p.weak = toPlanar(sounds.Weak)
}

func toPlanar(s *metronome.Sound) planarSound {
	if s == nil {
		return planarSound{}
	}
	ret := planarSound{make([]float32, len(s.Frames)), make([]float32, len(s.Frames))}
	for i, f := range s.Frames {
		ret[0][i], ret[1][i] = f[0], f[1]
	}
	return ret
}
