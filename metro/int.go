package metro

type (
	Int struct {
		IntData
	}

	IntData interface {
		Value() int
		Range() IntRange

		setValue(int)
	}

	IntRange struct {
		Min, Max int
	}

	BPM        Model
	MaxBeats   Model
	Volume     Model
	SoundIndex Model
)

func (v Int) Add(delta int) (ok bool) {
	return v.Set(v.Value() + delta)
}

func (v Int) Set(value int) (ok bool) {
	value = v.Range().Clamp(value)
	if value == v.Value() {
		return false
	}
	v.setValue(value)
	return true
}

func (r IntRange) Clamp(value int) int {
	return max(min(value, r.Max), r.Min)
}

// Model methods

func (m *Model) BPM() *BPM               { return (*BPM)(m) }
func (m *Model) MaxBeats() *MaxBeats     { return (*MaxBeats)(m) }
func (m *Model) Volume() *Volume         { return (*Volume)(m) }
func (m *Model) SoundIndex() *SoundIndex { return (*SoundIndex)(m) }

// BPMInt

func (v *BPM) Int() Int           { return Int{v} }
func (v *BPM) Value() int         { return v.engine.Settings.BPM }
func (v *BPM) setValue(value int) { v.engine.Settings.BPM = value }
func (v *BPM) Range() IntRange    { return IntRange{MinBPM, MaxBPM} }

// MaxBeatsInt

func (v *MaxBeats) Int() Int           { return Int{v} }
func (v *MaxBeats) Value() int         { return v.engine.Settings.MaxBeats }
func (v *MaxBeats) setValue(value int) { v.engine.Settings.MaxBeats = value }
func (v *MaxBeats) Range() IntRange    { return IntRange{0, MaxMaxBeats} }

// VolumeInt is the output gain in percent.

func (v *Volume) Int() Int        { return Int{v} }
func (v *Volume) Value() int      { return v.volume }
func (v *Volume) Range() IntRange { return IntRange{0, 100} }
func (v *Volume) setValue(value int) {
	v.volume = value
	TrySend(v.broker.ToPlayer, any(VolumeMsg{Volume: float32(value) / 100}))
}

// SoundIndexInt selects one of the loaded click sound pairs.

func (v *SoundIndex) Int() Int        { return Int{v} }
func (v *SoundIndex) Value() int      { return v.soundIndex }
func (v *SoundIndex) Range() IntRange { return IntRange{0, max(len(v.sounds)-1, 0)} }
func (v *SoundIndex) setValue(value int) {
	v.soundIndex = value
	(*Model)(v).sendSounds()
}
