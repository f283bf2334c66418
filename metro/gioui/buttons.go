package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/vsariola/metronome/metro"
)

// ActionClickable is the state of a button that performs a model action.
type ActionClickable struct {
	Action    metro.Action
	Clickable widget.Clickable
	TipArea   component.TipArea
}

var iconCache = map[*byte]*widget.Icon{}

// widgetForIcon returns a widget for IconVG data, but caching the results
func widgetForIcon(icon []byte) *widget.Icon {
	if w, ok := iconCache[&icon[0]]; ok {
		return w
	}
	w, err := widget.NewIcon(icon)
	if err != nil {
		panic(err)
	}
	iconCache[&icon[0]] = w
	return w
}

func NewActionClickable(a metro.Action) *ActionClickable {
	return &ActionClickable{Action: a}
}

// Update performs the action once for every click since the last frame.
func (a *ActionClickable) Update(gtx C) {
	for a.Clickable.Clicked(gtx) {
		a.Action.Do()
	}
}

func Tooltip(th *material.Theme, tip string) component.Tooltip {
	tooltip := component.PlatformTooltip(th, tip)
	tooltip.Bg = popupSurfaceColor
	tooltip.Text.Color = white
	return tooltip
}

func LowEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.Fg
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}

func HighEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.ContrastFg
	ret.Background = th.Palette.ContrastBg
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}

// ActionButton lays out a text button for the action, with a tooltip. The
// button is greyed out when the action is disabled.
func ActionButton(gtx C, th *material.Theme, a *ActionClickable, text, tip string, highEmphasis bool) D {
	a.Update(gtx)
	var btn material.ButtonStyle
	if highEmphasis {
		btn = HighEmphasisButton(th, &a.Clickable, text)
	} else {
		btn = LowEmphasisButton(th, &a.Clickable, text)
	}
	if !a.Action.Enabled() {
		gtx = gtx.Disabled()
		btn.Color = disabledTextColor
	}
	return a.TipArea.Layout(gtx, Tooltip(th, tip), btn.Layout)
}

// ActionIconButton is like ActionButton, but shows an icon instead of text.
func ActionIconButton(gtx C, th *material.Theme, a *ActionClickable, icon []byte, tip string) D {
	a.Update(gtx)
	btn := material.IconButton(th, &a.Clickable, widgetForIcon(icon), tip)
	btn.Background = transparent
	btn.Inset = layout.UniformInset(unit.Dp(6))
	btn.Color = primaryColor
	if !a.Action.Enabled() {
		gtx = gtx.Disabled()
		btn.Color = disabledTextColor
	}
	return a.TipArea.Layout(gtx, Tooltip(th, tip), btn.Layout)
}
