// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"

	"github.com/tweener/fag/group"
)

// Element hosts a group element in Gio. Its content is recorded
// during a frame and replayed at the position, transform and opacity
// set by the group.
type Element struct {
	hidden bool
	init   bool
	props  group.Props
	dims   layout.Dimensions
	call   op.CallOp
}

var _ group.Element = (*Element)(nil)

// Measure returns the size of the content from the last Record.
func (e *Element) Measure(max image.Point) image.Point {
	return e.dims.Size
}

func (e *Element) Hidden() bool {
	return e.hidden
}

// SetHidden excludes the element from measurement, layout and
// drawing.
func (e *Element) SetHidden(hidden bool) {
	e.hidden = hidden
}

func (e *Element) Props() *group.Props {
	if !e.init {
		e.props = group.DefaultProps()
		e.init = true
	}
	return &e.props
}

// Record lays out w and keeps the result for Draw.
func (e *Element) Record(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	e.dims = w(gtx)
	e.call = macro.Stop()
	return e.dims
}

// Draw replays the recorded content. A fully transparent element is
// neither drawn nor hit.
func (e *Element) Draw(gtx layout.Context) {
	p := e.Props()
	if p.Alpha <= 0 {
		return
	}
	center := layout.FPt(e.dims.Size).Mul(.5)
	tr := f32.Affine2D{}.
		Scale(center, f32.Pt(p.Scale, p.Scale)).
		Rotate(center, p.Rotation*math.Pi/180).
		Offset(f32.Pt(
			float32(p.Bounds.Min.X)+p.TranslationX,
			float32(p.Bounds.Min.Y)+p.TranslationY,
		))
	defer op.Affine(tr).Push(gtx.Ops).Pop()
	if p.Alpha < 1 {
		defer paint.PushOpacity(gtx.Ops, p.Alpha).Pop()
	}
	e.call.Add(gtx.Ops)
}
