// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"

	"github.com/tweener/fag/res"
)

// Theme is a Gio material theme with the resources that resolve the
// icons named by groups and buttons.
type Theme struct {
	*giomaterial.Theme
	Res *res.Resources
}

// NewTheme returns a theme whose text shaper knows the Go fonts and
// every font loaded by r so far.
func NewTheme(r *res.Resources) *Theme {
	th := giomaterial.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(r.Fonts.Collection()))
	return &Theme{Theme: th, Res: r}
}

// fab draws a round button of diameter size with ic centered on it.
func fab(gtx layout.Context, size, iconSize unit.Dp, bg color.NRGBA, ic *giowidget.Icon, fg color.NRGBA) layout.Dimensions {
	sz := gtx.Dp(size)
	paint.FillShape(gtx.Ops, bg, clip.Ellipse{Max: image.Pt(sz, sz)}.Op(gtx.Ops))
	if ic != nil {
		isz := gtx.Dp(iconSize)
		off := (sz - isz) / 2
		defer op.Offset(image.Pt(off, off)).Push(gtx.Ops).Pop()
		gtx.Constraints = layout.Exact(image.Pt(isz, isz))
		ic.Layout(gtx, fg)
	}
	return layout.Dimensions{Size: image.Pt(sz, sz)}
}

// mulAlpha applies the alpha multiplier a to c.
func mulAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(a) / 0xFF)
	return c
}

func orDefault(c, def color.NRGBA) color.NRGBA {
	if c == (color.NRGBA{}) {
		return def
	}
	return c
}
