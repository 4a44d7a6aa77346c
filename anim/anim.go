// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim implements value animations driven by frame time.

An Animator describes an interpolation of a value over a fixed
duration. A Driver steps every started animation once per frame, in the
same goroutine that processes input and layout, and reports whether
another frame is needed:

	var d anim.Driver
	h := d.Start(anim.Animator{
		From:         0,
		To:           1,
		Duration:     300 * time.Millisecond,
		Interpolator: anim.AccelerateDecelerate,
		Update: func(f anim.Frame) {
			alpha = f.Value
		},
	})
	...
	if d.Step(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}

An animation starts at the first Step after Start. Cancelling a Handle
stops further updates; the value is left where the last step put it.
*/
package anim

import (
	"math"
	"time"
)

// Interpolator maps the elapsed fraction of an animation, in [0, 1],
// to an eased fraction.
type Interpolator func(t float32) float32

// Linear is the identity Interpolator.
func Linear(t float32) float32 {
	return t
}

// AccelerateDecelerate starts and ends slowly and accelerates through
// the middle.
func AccelerateDecelerate(t float32) float32 {
	return float32(math.Cos(float64(t+1)*math.Pi)/2) + .5
}

// Frame is the state of an animation at one step.
type Frame struct {
	// Fraction is the interpolated progress of the animation.
	Fraction float32
	// Value is the animated value at Fraction.
	Value float32
}

// Animator describes a single animation.
type Animator struct {
	From, To float32
	Duration time.Duration
	// Interpolator eases the elapsed fraction. A nil Interpolator
	// means Linear.
	Interpolator Interpolator
	// Update is called for every step, including the final one.
	Update func(f Frame)
}

// Handle refers to a started animation.
type Handle struct {
	a       Animator
	start   time.Time
	started bool
	done    bool
}

// Driver steps animations. The zero value is ready to use.
type Driver struct {
	active []*Handle
}

// Start schedules a and returns its handle. The first step happens at
// the next call to Step.
func (d *Driver) Start(a Animator) *Handle {
	h := &Handle{a: a}
	d.active = append(d.active, h)
	return h
}

// Step advances every running animation to now and reports whether
// any animation is still running afterwards.
func (d *Driver) Step(now time.Time) bool {
	// Update callbacks may start new animations.
	active := d.active
	d.active = nil
	var kept []*Handle
	for _, h := range active {
		if h.done {
			continue
		}
		h.step(now)
		if !h.done {
			kept = append(kept, h)
		}
	}
	d.active = append(kept, d.active...)
	return len(d.active) > 0
}

// Running reports whether any animation is scheduled.
func (d *Driver) Running() bool {
	for _, h := range d.active {
		if !h.done {
			return true
		}
	}
	return false
}

// Finish runs every scheduled animation to its end value.
func (d *Driver) Finish() {
	for len(d.active) > 0 {
		active := d.active
		d.active = nil
		for _, h := range active {
			if !h.done {
				h.finish()
			}
		}
	}
}

// Cancel stops the animation. Cancel on a nil or finished Handle does
// nothing.
func (h *Handle) Cancel() {
	if h != nil {
		h.done = true
	}
}

// Running reports whether the animation has yet to reach its end or
// be cancelled.
func (h *Handle) Running() bool {
	return h != nil && !h.done
}

func (h *Handle) step(now time.Time) {
	if !h.started {
		h.start = now
		h.started = true
	}
	if h.a.Duration <= 0 {
		h.finish()
		return
	}
	t := float32(now.Sub(h.start)) / float32(h.a.Duration)
	if t >= 1 {
		h.finish()
		return
	}
	if t < 0 {
		t = 0
	}
	f := t
	if h.a.Interpolator != nil {
		f = h.a.Interpolator(t)
	}
	h.update(Frame{Fraction: f, Value: h.a.From + (h.a.To-h.a.From)*f})
}

// finish applies the exact end value.
func (h *Handle) finish() {
	h.done = true
	h.update(Frame{Fraction: 1, Value: h.a.To})
}

func (h *Handle) update(f Frame) {
	if h.a.Update != nil {
		h.a.Update(f)
	}
}
