package metro

type (
	// Action describes a user action that can be performed on the model, which
	// can be initiated by calling the Do() method. It is usually initiated by a
	// button press or a key binding. Action advertises whether it is enabled,
	// so UI can e.g. gray out buttons when the underlying action would have no
	// effect. The underlying Doer can optionally implement the Enabler
	// interface; if it does not, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is called
	// when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, which
	// is used by the UI to check if UI Action/Bool/Int etc. is enabled or not.
	Enabler interface {
		Enabled() bool
	}

	DoFunc func()
)

func (d DoFunc) Do() { d() }

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

// togglePlay
type togglePlay Model

func (m *Model) TogglePlay() Action { return MakeAction((*togglePlay)(m)) }
func (m *togglePlay) Do()           { m.engine.Settings.TogglePlay() }

// addBPM
type addBPM struct {
	m     *Model
	delta int
}

// AddBPM changes the tempo by delta. The value is not clamped here; the
// clamping pass of the next Update saturates it, so the action is disabled
// only when it would have no effect at all.
func (m *Model) AddBPM(delta int) Action { return MakeAction(addBPM{m, delta}) }
func (a addBPM) Do()                     { a.m.engine.Settings.AddBPM(a.delta) }
func (a addBPM) Enabled() bool {
	s := a.m.engine.Settings
	s.AddBPM(a.delta)
	s.Clamp()
	return s.BPM != a.m.engine.Settings.BPM
}

// addMaxBeats
type addMaxBeats struct {
	m     *Model
	delta int
}

func (m *Model) AddMaxBeats(delta int) Action { return MakeAction(addMaxBeats{m, delta}) }
func (a addMaxBeats) Do()                     { a.m.engine.Settings.AddMaxBeats(a.delta) }
func (a addMaxBeats) Enabled() bool {
	s := a.m.engine.Settings
	s.AddMaxBeats(a.delta)
	s.Clamp()
	return s.MaxBeats != a.m.engine.Settings.MaxBeats
}

// nextSound
type nextSound Model

func (m *Model) NextSound() Action { return MakeAction((*nextSound)(m)) }
func (m *nextSound) Enabled() bool { return len(m.sounds) > 1 }
func (m *nextSound) Do() {
	i := (*Model)(m).SoundIndex().Int()
	i.Set((i.Value() + 1) % len(m.sounds))
}
