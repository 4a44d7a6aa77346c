// SPDX-License-Identifier: Unlicense OR MIT

package group

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Policy arranges and animates the elements of a Group.
type Policy interface {
	// Measure returns the group size from the sizes of the visible
	// elements, available through Group.Measured.
	Measure(g *Group, max image.Point) image.Point
	// Layout sets the Bounds of every visible element and the resting
	// pose of the secondaries.
	Layout(g *Group, size image.Point)
	// Expand reveals the secondaries.
	Expand(g *Group, animate bool)
	// Collapse hides the secondaries behind the main element.
	Collapse(g *Group, animate bool)
	// AnimateMain animates the main element towards the new state
	// and reports whether it did. If not, the group swaps the main
	// element's icon instead.
	AnimateMain(g *Group, expanded, animate bool) bool
}

// Vertical stacks the secondaries above the main element, aligned to
// the trailing edge. The first secondary is closest to the main
// element.
type Vertical struct{}

// Horizontal lines the secondaries up to the left of the main
// element, aligned to the bottom edge.
type Horizontal struct{}

var (
	_ Policy = Vertical{}
	_ Policy = Horizontal{}
)

func (Vertical) Measure(g *Group, max image.Point) image.Point {
	m := g.Metrics()
	var sz image.Point
	n := 0
	for _, e := range g.Visible() {
		s := g.Measured(e)
		if s.X > sz.X {
			sz.X = s.X
		}
		sz.Y += s.Y
		n++
	}
	if n > 1 {
		sz.Y += (n - 1) * m.Margin
	}
	sz.Y += 2 * m.PaddingVertical
	sz.X += m.PaddingHorizontal
	return sz
}

func (Vertical) Layout(g *Group, size image.Point) {
	m := g.Metrics()
	right := size.X - m.PaddingHorizontal
	bottom := size.Y - m.PaddingVertical
	mainTop := bottom
	if main := g.Main(); !main.Hidden() {
		sz := g.Measured(main)
		mainTop = bottom - sz.Y
		main.Props().Bounds = image.Rect(right-sz.X, mainTop, right, bottom)
		bottom = mainTop - m.Margin
	}
	for _, c := range g.Secondaries() {
		sz := g.Measured(c)
		top := bottom - sz.Y
		c.Props().Bounds = image.Rect(right-sz.X, top, right, bottom)
		g.Rest(c, 0, float32(mainTop-top))
		bottom = top - m.Margin
	}
}

func (Vertical) Expand(g *Group, animate bool) {
	expand(g, animate)
}

func (Vertical) Collapse(g *Group, animate bool) {
	collapse(g, animate, func(main, child image.Rectangle) (float32, float32) {
		return 0, float32(main.Min.Y - child.Min.Y)
	})
}

func (Vertical) AnimateMain(g *Group, expanded, animate bool) bool {
	return g.Morph(expanded, animate)
}

func (Horizontal) Measure(g *Group, max image.Point) image.Point {
	m := g.Metrics()
	var sz image.Point
	n := 0
	for _, e := range g.Visible() {
		s := g.Measured(e)
		if s.Y > sz.Y {
			sz.Y = s.Y
		}
		sz.X += s.X
		n++
	}
	if n > 1 {
		sz.X += (n - 1) * m.Margin
	}
	sz.X += 2 * m.PaddingHorizontal
	sz.Y += m.PaddingVertical
	return sz
}

func (Horizontal) Layout(g *Group, size image.Point) {
	m := g.Metrics()
	right := size.X - m.PaddingHorizontal
	bottom := size.Y - m.PaddingVertical
	mainLeft := right
	if main := g.Main(); !main.Hidden() {
		sz := g.Measured(main)
		mainLeft = right - sz.X
		main.Props().Bounds = image.Rect(mainLeft, bottom-sz.Y, right, bottom)
		right = mainLeft - m.Margin
	}
	for _, c := range g.Secondaries() {
		sz := g.Measured(c)
		left := right - sz.X
		c.Props().Bounds = image.Rect(left, bottom-sz.Y, right, bottom)
		g.Rest(c, float32(mainLeft-left), 0)
		right = left - m.Margin
	}
}

func (Horizontal) Expand(g *Group, animate bool) {
	expand(g, animate)
}

func (Horizontal) Collapse(g *Group, animate bool) {
	collapse(g, animate, func(main, child image.Rectangle) (float32, float32) {
		return float32(main.Min.X - child.Min.X), 0
	})
}

func (Horizontal) AnimateMain(g *Group, expanded, animate bool) bool {
	return g.Morph(expanded, animate)
}

// expand slides every secondary from its current pose into its
// layout position.
func expand(g *Group, animate bool) {
	for _, c := range g.Secondaries() {
		if a, ok := c.(Aware); ok {
			a.SetExpanded(true)
		}
		g.Slide(c, 1, 0, 0, animate)
	}
}

// collapse slides every secondary, last first, behind the main
// element. offset returns the translation that moves child onto main.
func collapse(g *Group, animate bool, offset func(main, child image.Rectangle) (float32, float32)) {
	mainBounds := g.Main().Props().Bounds
	children := g.Secondaries()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if a, ok := c.(Aware); ok {
			a.SetExpanded(false)
		}
		tx, ty := offset(mainBounds, c.Props().Bounds)
		g.Slide(c, 0, tx, ty, animate)
	}
}

// blend interpolates between two colors in linear RGB.
func blend(a, b color.NRGBA, t float32) color.NRGBA {
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLinearRgb(cb, float64(t)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(lerp(float32(a.A), float32(b.A), t) + .5)}
}
