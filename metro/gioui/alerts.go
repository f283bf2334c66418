package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/vsariola/metronome/metro"
)

// PopupAlert draws the model's alerts stacked at the bottom of the window,
// sliding in and out as they fade.
type PopupAlert struct {
	alerts     *metro.Alerts
	shaper     *text.Shaper
	prevUpdate time.Time
}

var alertMargin = layout.UniformInset(unit.Dp(6))
var alertInset = layout.UniformInset(unit.Dp(6))

func NewPopupAlert(alerts *metro.Alerts, shaper *text.Shaper) *PopupAlert {
	return &PopupAlert{alerts: alerts, shaper: shaper, prevUpdate: time.Now()}
}

func (a *PopupAlert) Layout(gtx C) D {
	now := time.Now()
	if a.alerts.Update(now.Sub(a.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(50 * time.Millisecond)})
	}
	a.prevUpdate = now

	var totalY float64 = float64(gtx.Dp(38))
	for _, alert := range a.alerts.Iterate {
		var bg color.NRGBA
		switch alert.Priority {
		case metro.Warning:
			bg = warningColor
		case metro.Error:
			bg = errorColor
		default:
			bg = popupSurfaceColor
		}
		bgWidget := func(gtx C) D {
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		}
		textColor := white
		if alert.Priority != metro.Info {
			textColor = black
		}
		label := LabelStyle{Text: alert.Message, Color: textColor, ShadeColor: transparent, Font: labelDefaultFont, FontSize: labelDefaultFontSize * 3 / 4, Alignment: layout.Center, Shaper: a.shaper}
		alertMargin.Layout(gtx, func(gtx C) D {
			return layout.S.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				recording := op.Record(gtx.Ops)
				dims := layout.Stack{Alignment: layout.Center}.Layout(gtx,
					layout.Expanded(bgWidget),
					layout.Stacked(func(gtx C) D {
						return alertInset.Layout(gtx, label.Layout)
					}),
				)
				macro := recording.Stop()
				delta := float64(dims.Size.Y + gtx.Dp(alertMargin.Bottom))
				op.Offset(image.Point{0, int(-totalY*alert.FadeLevel + delta*(1-alert.FadeLevel))}).Add(gtx.Ops)
				totalY += delta
				macro.Add(gtx.Ops)
				return dims
			})
		})
	}
	return D{}
}
