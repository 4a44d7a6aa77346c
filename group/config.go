// SPDX-License-Identifier: Unlicense OR MIT

package group

import (
	"image/color"
	"time"

	"gioui.org/unit"
)

// Config is the construction-time configuration of a Group.
type Config struct {
	// CollapsedIcon and ExpandedIcon name the main element's icon in
	// each state.
	CollapsedIcon string
	ExpandedIcon  string

	BackgroundNormal  color.NRGBA
	BackgroundPressed color.NRGBA
	// BackgroundExpanded is the main element's background while
	// expanded. The zero color disables the crossfade.
	BackgroundExpanded color.NRGBA

	// Rotate enables rotation of the main element by RotationAngle
	// degrees while expanded.
	Rotate        bool
	RotationAngle float32
	// Scale enables scaling of the main element by ScaleFactor while
	// expanded.
	Scale       bool
	ScaleFactor float32

	// Expanded is the initial state.
	Expanded bool

	// Margin separates adjacent elements.
	Margin unit.Dp
	// PaddingVertical and PaddingHorizontal inset the elements from
	// the group edges.
	PaddingVertical   unit.Dp
	PaddingHorizontal unit.Dp

	// Duration of every expand and collapse animation.
	Duration time.Duration
}

// Metrics are the pixel sizes of a Config under a unit.Metric.
type Metrics struct {
	Margin            int
	PaddingVertical   int
	PaddingHorizontal int
}

// DefaultConfig returns a Config with the stock sizes, angle, scale
// and animation duration.
func DefaultConfig() Config {
	return Config{
		CollapsedIcon:     "add",
		ExpandedIcon:      "close",
		BackgroundNormal:  rgb(0x3f51b5),
		BackgroundPressed: rgb(0x303f9f),
		RotationAngle:     45,
		ScaleFactor:       .8,
		Margin:            16,
		PaddingVertical:   16,
		PaddingHorizontal: 16,
		Duration:          300 * time.Millisecond,
	}
}

func (c Config) metrics(m unit.Metric) Metrics {
	return Metrics{
		Margin:            m.Dp(c.Margin),
		PaddingVertical:   m.Dp(c.PaddingVertical),
		PaddingHorizontal: m.Dp(c.PaddingHorizontal),
	}
}

func (c Config) hasExpandedBackground() bool {
	return c.BackgroundExpanded != (color.NRGBA{})
}

func rgb(c uint32) color.NRGBA {
	return color.NRGBA{A: 0xff, R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
