package gioui

import (
	"fmt"
	"image"
	"math"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/vsariola/metronome/metro"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// Metronome is the main window. It owns the model: all reads and writes
	// of the settings happen in the goroutine running Main.
	Metronome struct {
		Theme *material.Theme
		*metro.Model

		keyBindings *KeyBindings
		preferences Preferences

		togglePlay *ActionClickable
		bpmDown10  *ActionClickable
		bpmDown    *ActionClickable
		bpmUp      *ActionClickable
		bpmUp10    *ActionClickable
		nextSound  *ActionClickable
		bpmSlider  widget.Float
		sliderTip  component.TipArea
		maxBeats   *NumberInput
		volume     *NumberInput
		popupAlert *PopupAlert

		titleCaser cases.Caser
		quitted    bool
	}

	C = layout.Context
	D = layout.Dimensions
)

// stallTimeout is how long the window may go without frames, e.g. while
// minimized, before the metronome is advanced by a ticker instead.
const stallTimeout = 50 * time.Millisecond

const configWarningDuration = 10 * time.Second

func NewMetronome(model *metro.Model) *Metronome {
	m := &Metronome{
		Theme: NewTheme(),
		Model: model,

		togglePlay: NewActionClickable(model.TogglePlay()),
		bpmDown10:  NewActionClickable(model.AddBPM(-10)),
		bpmDown:    NewActionClickable(model.AddBPM(-1)),
		bpmUp:      NewActionClickable(model.AddBPM(1)),
		bpmUp10:    NewActionClickable(model.AddBPM(10)),
		nextSound:  NewActionClickable(model.NextSound()),
		maxBeats:   NewNumberInput(model.MaxBeats().Int()),
		volume:     NewNumberInput(model.Volume().Int()),

		titleCaser: cases.Title(language.English),
	}
	m.popupAlert = NewPopupAlert(model.Alerts(), m.Theme.Shaper)
	var err error
	if m.keyBindings, err = LoadKeyBindings(); err != nil {
		m.warn(err)
	}
	if m.preferences, err = MakePreferences(); err != nil {
		m.warn(err)
	}
	m.preferences.Apply(model)
	return m
}

func (m *Metronome) warn(err error) {
	m.Alerts().AddAlert(metro.Alert{
		Priority: metro.Warning,
		Message:  err.Error(),
		Duration: configWarningDuration,
	})
}

// RequestQuit closes the window after the current frame.
func (m *Metronome) RequestQuit() { m.quitted = true }

// Main runs the window until it is closed or something is sent to
// Broker().CloseGUI. It closes Broker().FinishedGUI when done.
func (m *Metronome) Main() {
	var ops op.Ops
	w := m.newWindow()
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	ticker := time.NewTicker(stallTimeout / 2)
	lastFrame := time.Now()
F:
	for {
		select {
		case msg := <-m.Broker().ToModel:
			m.ProcessMsg(msg)
			w.Invalidate()
		case <-m.Broker().CloseGUI:
			m.quitted = true
			w.Perform(system.ActionClose)
		case now := <-ticker.C:
			if m.Playing().Value() && now.Sub(lastFrame) > stallTimeout {
				m.Advance(now)
			}
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				lastFrame = time.Now()
				m.Layout(gtx, lastFrame)
				e.Frame(gtx.Ops)
				if m.quitted {
					w.Perform(system.ActionClose)
				}
			}
			acks <- struct{}{}
		}
	}
	ticker.Stop()
	m.Close()
	close(m.Broker().FinishedGUI)
}

func (m *Metronome) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Title("Metronome"), app.Size(m.preferences.WindowSize()))
	if m.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

// Layout draws one frame and then advances the metronome to now, so that
// the input of this frame is applied before the clicks are scheduled.
func (m *Metronome) Layout(gtx C, now time.Time) {
	before := *m.Settings()
	// buttons would otherwise keep the focus after a click and swallow
	// Space and Enter
	gtx.Execute(key.FocusCmd{})
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, m.Theme.Palette.Bg)

	inset := layout.UniformInset(unit.Dp(8))
	inset.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceEvenly}.Layout(gtx,
			layout.Rigid(Heading("Metronome", m.Theme.Shaper)),
			layout.Rigid(m.layoutTempo),
			layout.Rigid(m.layoutSlider),
			layout.Rigid(m.layoutMeasure),
			layout.Rigid(m.layoutControls),
		)
	})
	m.popupAlert.Layout(gtx)

	for {
		ev, ok := gtx.Event(key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			m.KeyEvent(e)
		}
	}

	m.Advance(now)
	if m.Playing().Value() || *m.Settings() != before {
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (m *Metronome) layoutTempo(gtx C) D {
	th := m.Theme
	bpm := m.Settings().BPM
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceSides}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return ActionButton(gtx, th, m.bpmDown10, "-10", m.keyBindings.Hint("Decrease tempo by 10", " (%s)", "DecreaseBPM10"), false)
		}),
		layout.Rigid(func(gtx C) D {
			return ActionIconButton(gtx, th, m.bpmDown, icons.ContentRemove, m.keyBindings.Hint("Decrease tempo", " (%s)", "DecreaseBPM"))
		}),
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, Label(fmt.Sprintf("%d BPM", bpm), white, th.Shaper))
		}),
		layout.Rigid(func(gtx C) D {
			return ActionIconButton(gtx, th, m.bpmUp, icons.ContentAdd, m.keyBindings.Hint("Increase tempo", " (%s)", "IncreaseBPM"))
		}),
		layout.Rigid(func(gtx C) D {
			return ActionButton(gtx, th, m.bpmUp10, "+10", m.keyBindings.Hint("Increase tempo by 10", " (%s)", "IncreaseBPM10"), false)
		}),
	)
}

// layoutSlider maps the slider position 0..1 linearly to MinBPM..MaxBPM. The
// value is written to the settings as is; the per-frame clamp keeps it in
// range.
func (m *Metronome) layoutSlider(gtx C) D {
	const span = metro.MaxBPM - metro.MinBPM
	if m.bpmSlider.Update(gtx) {
		m.Settings().BPM = metro.MinBPM + int(math.Round(float64(m.bpmSlider.Value)*span))
	}
	if !m.bpmSlider.Dragging() {
		m.bpmSlider.Value = float32(m.Settings().BPM-metro.MinBPM) / span
	}
	slider := material.Slider(m.Theme, &m.bpmSlider)
	slider.Color = primaryColor
	tip := fmt.Sprintf("Tempo, %d to %d BPM", metro.MinBPM, metro.MaxBPM)
	return m.sliderTip.Layout(gtx, Tooltip(m.Theme, tip), slider.Layout)
}

func (m *Metronome) layoutMeasure(gtx C) D {
	th := m.Theme
	beat := m.Beat().Beat
	maxBeats := m.Settings().MaxBeats
	beatsTip := m.keyBindings.Hint("Beats per measure, 0 = no accent", " (%s)", "IncreaseBeats")
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceSides}.Layout(gtx,
		layout.Rigid(Label("Beats", mediumEmphasisTextColor, th.Shaper)),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Rigid(NumericUpDown(th, m.maxBeats, beatsTip).Layout),
		layout.Rigid(layout.Spacer{Width: 16}.Layout),
		layout.Rigid(Label(fmt.Sprintf("Beat: %d", beat), white, th.Shaper)),
		layout.Rigid(layout.Spacer{Width: 16}.Layout),
		layout.Rigid(BeatIndicator{Beat: beat, MaxBeats: maxBeats, Size: 14, Gap: 6}.Layout),
	)
}

func (m *Metronome) layoutControls(gtx C) D {
	th := m.Theme
	playText := "Play"
	if m.Playing().Value() {
		playText = "Stop"
	}
	soundName := m.titleCaser.String(m.Sounds().Name)
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceSides}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(96)
			return ActionButton(gtx, th, m.togglePlay, playText, m.keyBindings.Hint("Start or stop", " (%s)", "TogglePlay"), true)
		}),
		layout.Rigid(layout.Spacer{Width: 16}.Layout),
		layout.Rigid(func(gtx C) D {
			return ActionButton(gtx, th, m.nextSound, soundName, m.keyBindings.Hint("Next click sound", " (%s)", "NextSound"), false)
		}),
		layout.Rigid(layout.Spacer{Width: 16}.Layout),
		layout.Rigid(Label("Volume", mediumEmphasisTextColor, th.Shaper)),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Rigid(NumericUpDown(th, m.volume, m.keyBindings.Hint("Volume in percent", " (%s)", "IncreaseVolume")).Layout),
	)
}
