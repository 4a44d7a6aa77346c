// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/tweener/fag/widget"
)

// GroupStyle draws a floating action group.
type GroupStyle struct {
	Group *widget.Group
	// Size is the diameter of the main button.
	Size     unit.Dp
	IconSize unit.Dp
	// IconColor colors the main button icon.
	IconColor color.NRGBA
	// Pressed is the main button background while pressed.
	Pressed color.NRGBA

	theme *Theme
}

func Group(th *Theme, g *widget.Group) GroupStyle {
	return GroupStyle{
		Group:     g,
		Size:      56,
		IconSize:  24,
		IconColor: th.Palette.ContrastFg,
		Pressed:   g.Controller().Config().BackgroundPressed,
		theme:     th,
	}
}

func (s GroupStyle) Layout(gtx layout.Context) layout.Dimensions {
	return s.Group.Layout(gtx, s.layoutMain, func(gtx layout.Context, b *widget.LabelledButton) layout.Dimensions {
		return LabelledButton(s.theme, b).Layout(gtx)
	})
}

func (s GroupStyle) layoutMain(gtx layout.Context) layout.Dimensions {
	main := &s.Group.Main
	p := main.Props()
	bg := p.Background
	if main.Clickable.Pressed() && s.Pressed != (color.NRGBA{}) {
		bg = s.Pressed
	}
	if !p.Enabled {
		bg = mulAlpha(bg, 150)
	}
	return fab(gtx, s.Size, s.IconSize, bg, s.theme.Res.Icons.Lookup(p.Icon), s.IconColor)
}
