package gioui

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/vsariola/metronome/metro"
)

func TestNumericUpDownLayout(t *testing.T) {
	m := metro.NewModel(metro.NewBroker(), nil, nil)
	input := NewNumberInput(m.MaxBeats().Int())
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Constraints{Max: image.Pt(400, 100)},
	}
	style := NumericUpDown(NewTheme(), input, "Beats per measure")
	dims := style.Layout(gtx)
	if want := image.Pt(100, 28); dims.Size != want {
		t.Errorf("size = %v, want %v", dims.Size, want)
	}
	if got := input.Int.Value(); got != metro.DefaultMaxBeats {
		t.Errorf("layout without input changed the value to %v", got)
	}
}
