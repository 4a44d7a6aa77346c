// SPDX-License-Identifier: Unlicense OR MIT

package group

import (
	"image"
	"image/color"
)

// Element is a visual element positioned by a Group. The host owns
// the element; the group only measures it and mutates its Props.
type Element interface {
	// Measure returns the element size given the maximum available
	// size.
	Measure(max image.Point) image.Point
	// Hidden reports whether the element is excluded from
	// measurement, layout and drawing.
	Hidden() bool
	// Props returns the element's mutable visual properties.
	Props() *Props
}

// Aware is implemented by secondary elements that follow the group
// state.
type Aware interface {
	// SetExpanded mirrors the group state. It gates input only.
	SetExpanded(expanded bool)
	// SetListener sets the target of the element's activations.
	SetListener(l Listener)
}

// Props are the visual properties of an Element.
type Props struct {
	// Bounds is the untransformed position in group coordinates, as
	// computed by the last layout.
	Bounds image.Rectangle
	// Alpha is the opacity in [0, 1].
	Alpha float32
	// TranslationX and TranslationY offset the element from Bounds.
	TranslationX float32
	TranslationY float32
	// Rotation is in degrees, clockwise, around the element center.
	Rotation float32
	// Scale is applied around the element center.
	Scale      float32
	Background color.NRGBA
	Icon       string
	Enabled    bool
}

// DefaultProps returns opaque, untransformed and enabled Props.
func DefaultProps() Props {
	return Props{Alpha: 1, Scale: 1, Enabled: true}
}
