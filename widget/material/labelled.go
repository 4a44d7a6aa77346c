// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"

	"github.com/tweener/fag/widget"
)

// LabelledButtonStyle draws a secondary button: a label chip next to
// a small round icon button.
type LabelledButtonStyle struct {
	Button *widget.LabelledButton
	Label  giomaterial.LabelStyle
	// LabelBackground fills the chip behind the label.
	LabelBackground color.NRGBA
	LabelInset      layout.Inset
	// Size is the diameter of the icon button.
	Size     unit.Dp
	IconSize unit.Dp
	// Spacing separates the label from the icon button.
	Spacing    unit.Dp
	Background color.NRGBA
	Pressed    color.NRGBA
	Tint       color.NRGBA
	// Inset pads the whole button.
	Inset layout.Inset

	theme *Theme
}

func LabelledButton(th *Theme, b *widget.LabelledButton) LabelledButtonStyle {
	l := giomaterial.Body2(th.Theme, b.Label)
	if b.Typeface != "" {
		l.Font.Typeface = b.Typeface
	}
	return LabelledButtonStyle{
		Button:          b,
		Label:           l,
		LabelBackground: th.Palette.Bg,
		LabelInset: layout.Inset{
			Top: 4, Bottom: 4,
			Left: 8, Right: 8,
		},
		Size:       40,
		IconSize:   24,
		Spacing:    16,
		Background: orDefault(b.Background, th.Palette.ContrastBg),
		Pressed:    b.BackgroundPressed,
		Tint:       orDefault(b.Tint, th.Palette.ContrastFg),
		Inset: layout.Inset{
			Top: 4, Bottom: 4,
			Left: 8, Right: 8,
		},
		theme: th,
	}
}

func (s LabelledButtonStyle) Layout(gtx layout.Context) layout.Dimensions {
	b := s.Button
	bg := s.Background
	if b.Clickable.Pressed() && s.Pressed != (color.NRGBA{}) {
		bg = s.Pressed
	}
	if !b.Props().Enabled {
		bg = mulAlpha(bg, 150)
	}
	ic := s.theme.Res.Icons.Lookup(b.Icon)
	return s.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		icon := layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return fab(gtx, s.Size, s.IconSize, bg, ic, s.Tint)
		})
		if s.Label.Text == "" {
			return layout.Flex{}.Layout(gtx, icon)
		}
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(s.layoutLabel),
			layout.Rigid(layout.Spacer{Width: s.Spacing}.Layout),
			icon,
		)
	})
}

func (s LabelledButtonStyle) layoutLabel(gtx layout.Context) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			sz := gtx.Constraints.Min
			rr := gtx.Dp(4)
			paint.FillShape(gtx.Ops, s.LabelBackground, clip.UniformRRect(image.Rectangle{Max: sz}, rr).Op(gtx.Ops))
			return layout.Dimensions{Size: sz}
		},
		func(gtx layout.Context) layout.Dimensions {
			return s.LabelInset.Layout(gtx, s.Label.Layout)
		},
	)
}
