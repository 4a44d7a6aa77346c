// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	giowidget "gioui.org/widget"

	"github.com/tweener/fag/group"
)

// Button is the main button of a group.
type Button struct {
	Element
	Clickable giowidget.Clickable
}

// Group is the state of a floating action group: the main button,
// the secondary buttons and the group controller driving them.
type Group struct {
	Main Button

	buttons []*LabelledButton
	ctrl    *group.Group
}

type drawer interface {
	Draw(gtx layout.Context)
}

// NewGroup returns a group configured by cfg.
func NewGroup(cfg group.Config, opts ...group.Option) *Group {
	g := new(Group)
	g.ctrl = group.New(cfg, &g.Main, opts...)
	return g
}

// Add appends secondary buttons. The first is closest to the main
// button.
func (g *Group) Add(buttons ...*LabelledButton) {
	for _, b := range buttons {
		g.buttons = append(g.buttons, b)
		g.ctrl.Add(b)
	}
}

// Buttons returns the secondary buttons.
func (g *Group) Buttons() []*LabelledButton {
	return g.buttons
}

// Controller returns the group controller.
func (g *Group) Controller() *group.Group {
	return g.ctrl
}

// SetListener sets the receiver of the group notifications.
func (g *Group) SetListener(l group.Listener) {
	g.ctrl.SetListener(l)
}

// Toggle expands a collapsed group and collapses an expanded one.
func (g *Group) Toggle(animate bool) {
	g.ctrl.Toggle(animate)
}

// Update processes input and reports whether a click on the main
// button toggled the group.
func (g *Group) Update(gtx layout.Context) bool {
	g.ctrl.SetMetric(gtx.Metric)
	toggled := false
	for g.Main.Clickable.Clicked(gtx) {
		if g.ctrl.Enabled() {
			g.ctrl.Toggle(true)
			toggled = true
		}
	}
	for _, b := range g.buttons {
		b.Update(gtx)
	}
	return toggled
}

// Layout processes input, advances the animations and lays out the
// group. The main content is drawn by main, each secondary by button.
// Elements are drawn in the controller's drawing order so the main
// button is on top.
func (g *Group) Layout(gtx layout.Context, main layout.Widget, button func(gtx layout.Context, b *LabelledButton) layout.Dimensions) layout.Dimensions {
	g.Update(gtx)
	if g.ctrl.Step(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}

	rec := gtx
	rec.Constraints.Min = image.Point{}
	g.Main.Record(rec, func(gtx layout.Context) layout.Dimensions {
		return g.Main.Clickable.Layout(gtx, main)
	})
	for _, b := range g.buttons {
		if b.Hidden() {
			continue
		}
		b.Record(rec, func(gtx layout.Context) layout.Dimensions {
			return b.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return button(gtx, b)
			})
		})
	}

	size := gtx.Constraints.Constrain(g.ctrl.Measure(gtx.Constraints.Max))
	g.ctrl.Layout(size)
	for _, e := range g.ctrl.DrawOrder() {
		e.(drawer).Draw(gtx)
	}
	return layout.Dimensions{Size: size}
}
