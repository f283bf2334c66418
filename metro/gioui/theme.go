package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var fontCollection []text.FontFace = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}

var labelDefaultFont = fontCollection[6].Font
var labelDefaultFontSize = unit.Sp(18)
var headingFontSize = unit.Sp(28)

var numberInputBgColor = color.NRGBA{R: 255, G: 255, B: 255, A: 3}

var beatOffColor = color.NRGBA{R: 55, G: 55, B: 61, A: 255}
var beatOnColor = secondaryColor
var accentOnColor = color.NRGBA{R: 252, G: 186, B: 3, A: 255}

var popupSurfaceColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}

var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}

// NewTheme returns the dark material theme used by all widgets.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	th.Palette.Fg = highEmphasisTextColor
	th.Palette.Bg = backgroundColor
	th.Palette.ContrastBg = primaryColor
	th.Palette.ContrastFg = black
	return th
}
