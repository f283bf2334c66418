package gioui

import (
	"image"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// maxBeatDots limits how many beats are drawn; longer measures only show
// the beat number.
const maxBeatDots = 16

// BeatIndicator draws one dot per beat of the measure, the current beat lit
// and the first beat of the measure in the accent color.
type BeatIndicator struct {
	Beat, MaxBeats int
	Size, Gap      unit.Dp
}

func (b BeatIndicator) Layout(gtx C) D {
	if b.MaxBeats <= 0 || b.MaxBeats > maxBeatDots {
		return D{}
	}
	size := gtx.Dp(b.Size)
	gap := gtx.Dp(b.Gap)
	for i := 1; i <= b.MaxBeats; i++ {
		c := beatOffColor
		if i == b.Beat {
			c = beatOnColor
			if i == 1 {
				c = accentOnColor
			}
		}
		stack := op.Offset(image.Pt((i-1)*(size+gap), 0)).Push(gtx.Ops)
		paint.FillShape(gtx.Ops, c, clip.Ellipse{Max: image.Pt(size, size)}.Op(gtx.Ops))
		stack.Pop()
	}
	return D{Size: image.Pt(b.MaxBeats*(size+gap)-gap, size)}
}
