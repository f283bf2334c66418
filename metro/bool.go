package metro

type (
	Bool struct {
		BoolData
	}

	BoolData interface {
		Value() bool
		Enabled() bool
		setValue(bool)
	}

	Playing Model
)

func (v Bool) Toggle() {
	v.Set(!v.Value())
}

func (v Bool) Set(value bool) {
	if v.Enabled() && v.Value() != value {
		v.setValue(value)
	}
}

// Model methods

func (m *Model) Playing() *Playing { return (*Playing)(m) }

// Playing methods

func (m *Playing) Bool() Bool          { return Bool{m} }
func (m *Playing) Value() bool         { return m.engine.Settings.Play }
func (m *Playing) setValue(value bool) { m.engine.Settings.Play = value }
func (m *Playing) Enabled() bool       { return true }
