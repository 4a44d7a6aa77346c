// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	giowidget "gioui.org/widget"

	"github.com/tweener/fag/group"
)

// LabelledButton is a secondary button of a group: an icon with a
// label. Its activations are forwarded to the group listener; it
// changes no state itself.
type LabelledButton struct {
	Element

	Label string
	Icon  string
	// Tint colors the icon.
	Tint              color.NRGBA
	Background        color.NRGBA
	BackgroundPressed color.NRGBA
	Typeface          font.Typeface

	Clickable giowidget.Clickable

	expanded bool
	listener group.Listener
}

var _ group.Aware = (*LabelledButton)(nil)

func (b *LabelledButton) SetExpanded(expanded bool) {
	b.expanded = expanded
}

// Expanded reports whether the button accepts input.
func (b *LabelledButton) Expanded() bool {
	return b.expanded
}

func (b *LabelledButton) SetListener(l group.Listener) {
	b.listener = l
}

// Tap activates the button and reports whether the activation was
// forwarded. Taps are swallowed while the group is collapsed or the
// button disabled.
func (b *LabelledButton) Tap() bool {
	if !b.expanded || !b.Props().Enabled {
		return false
	}
	if b.listener != nil {
		b.listener.ChildClicked(b)
	}
	return true
}

// Update processes clicks and reports whether any was forwarded.
func (b *LabelledButton) Update(gtx layout.Context) bool {
	tapped := false
	for b.Clickable.Clicked(gtx) {
		if b.Tap() {
			tapped = true
		}
	}
	return tapped
}

// Layout lays out w. The whole button is one click area while the
// group is expanded; otherwise w receives no input and pointer events
// pass through to whatever is beneath.
func (b *LabelledButton) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	if !b.expanded || !b.Props().Enabled {
		return w(gtx)
	}
	return b.Clickable.Layout(gtx, w)
}
