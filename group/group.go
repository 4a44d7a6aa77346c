// SPDX-License-Identifier: Unlicense OR MIT

/*
Package group implements the state machine and layout of a floating
action group: a main element that, when toggled, reveals or hides a
set of secondary elements with coordinated animations.

A Group is driven from a single goroutine. The host measures and lays
out the group once per frame, steps its animations with Step and draws
the elements in DrawOrder, which always ends with the main element.

The arrangement of elements is delegated to a Policy. Vertical stacks
the secondaries above the main element; Horizontal lines them up to
its left.
*/
package group

import (
	"image"
	"time"

	"gioui.org/unit"

	"github.com/tweener/fag/anim"
)

// State is the logical state of a Group.
type State uint8

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "Collapsed"
	case Expanded:
		return "Expanded"
	default:
		panic("invalid State")
	}
}

// Group positions a main element and its secondaries and animates
// them between the collapsed and expanded states.
type Group struct {
	cfg      Config
	metric   unit.Metric
	metrics  Metrics
	policy   Policy
	driver   *anim.Driver
	listener Listener
	expanded bool
	enabled  bool

	// entries are in structural order; the main element is first.
	entries []*entry
	size    image.Point
}

type entry struct {
	elem Element
	size image.Point
	anim *anim.Handle
}

// Option configures a Group.
type Option func(g *Group)

// WithPolicy sets the arrangement policy. The default is Vertical.
func WithPolicy(p Policy) Option {
	return func(g *Group) {
		g.policy = p
	}
}

// WithMetric sets the metric used to convert the Config sizes to
// pixels. The default is one pixel per Dp.
func WithMetric(m unit.Metric) Option {
	return func(g *Group) {
		g.metric = m
	}
}

// WithDriver shares an animation driver between groups.
func WithDriver(d *anim.Driver) Option {
	return func(g *Group) {
		g.driver = d
	}
}

// New returns a Group for cfg with main as its main element.
func New(cfg Config, main Element, opts ...Option) *Group {
	g := &Group{
		cfg:      cfg,
		metric:   unit.Metric{PxPerDp: 1, PxPerSp: 1},
		policy:   Vertical{},
		expanded: cfg.Expanded,
		enabled:  true,
		entries:  []*entry{{elem: main}},
	}
	for _, o := range opts {
		o(g)
	}
	if g.driver == nil {
		g.driver = new(anim.Driver)
	}
	g.metrics = cfg.metrics(g.metric)
	main.Props().Background = cfg.BackgroundNormal
	g.updateMainIcon()
	g.policy.AnimateMain(g, g.expanded, false)
	return g
}

// Add appends secondary elements in structural order.
func (g *Group) Add(children ...Element) {
	for _, c := range children {
		g.entries = append(g.entries, &entry{elem: c})
		c.Props().Enabled = g.enabled
		if a, ok := c.(Aware); ok {
			a.SetExpanded(g.expanded)
			a.SetListener(g.listener)
		}
	}
}

// SetListener sets the target of the group notifications and of
// every Aware secondary's activations. A nil Listener is valid.
func (g *Group) SetListener(l Listener) {
	g.listener = l
	for _, e := range g.entries[1:] {
		if a, ok := e.elem.(Aware); ok {
			a.SetListener(l)
		}
	}
}

// SetMetric updates the pixel sizes after a change of display
// density.
func (g *Group) SetMetric(m unit.Metric) {
	if m == g.metric {
		return
	}
	g.metric = m
	g.metrics = g.cfg.metrics(m)
}

// Config returns the group configuration.
func (g *Group) Config() Config {
	return g.cfg
}

// Metrics returns the configured sizes in pixels.
func (g *Group) Metrics() Metrics {
	return g.metrics
}

// State returns the current state.
func (g *Group) State() State {
	if g.expanded {
		return Expanded
	}
	return Collapsed
}

func (g *Group) IsExpanded() bool {
	return g.expanded
}

func (g *Group) IsCollapsed() bool {
	return !g.expanded
}

// Enabled reports whether the group accepts activations.
func (g *Group) Enabled() bool {
	return g.enabled
}

// SetEnabled enables or disables the main element and every
// secondary.
func (g *Group) SetEnabled(enabled bool) {
	g.enabled = enabled
	for _, e := range g.entries {
		e.elem.Props().Enabled = enabled
	}
}

// Main returns the main element.
func (g *Group) Main() Element {
	return g.entries[0].elem
}

// Secondaries returns the visible secondary elements in structural
// order.
func (g *Group) Secondaries() []Element {
	var children []Element
	for _, e := range g.entries[1:] {
		if !e.elem.Hidden() {
			children = append(children, e.elem)
		}
	}
	return children
}

// Visible returns every visible element, main included, in
// structural order.
func (g *Group) Visible() []Element {
	var elems []Element
	for _, e := range g.entries {
		if !e.elem.Hidden() {
			elems = append(elems, e.elem)
		}
	}
	return elems
}

// DrawOrder returns the visible elements in the order they are drawn
// and therefore hit-tested: the reverse of the structural order, which
// puts the main element last and on top.
func (g *Group) DrawOrder() []Element {
	var elems []Element
	for i := len(g.entries) - 1; i >= 0; i-- {
		if e := g.entries[i]; !e.elem.Hidden() {
			elems = append(elems, e.elem)
		}
	}
	return elems
}

// Measured returns the size of e from the last Measure.
func (g *Group) Measured(e Element) image.Point {
	if en := g.entry(e); en != nil {
		return en.size
	}
	return image.Point{}
}

// Size returns the size from the last Measure.
func (g *Group) Size() image.Point {
	return g.size
}

// Measure measures every visible element and returns the group size
// computed by the policy.
func (g *Group) Measure(max image.Point) image.Point {
	for _, e := range g.entries {
		if e.elem.Hidden() {
			e.size = image.Point{}
			continue
		}
		e.size = e.elem.Measure(max)
	}
	g.size = g.policy.Measure(g, max)
	return g.size
}

// Layout positions the elements within size.
func (g *Group) Layout(size image.Point) {
	g.policy.Layout(g, size)
}

// Toggle switches the state. The listener is notified of the target
// state first, then the policy animates the secondaries and the main
// element. The state flips immediately; animations run on subsequent
// calls to Step.
func (g *Group) Toggle(animate bool) {
	if g.listener != nil {
		if g.expanded {
			g.listener.Collapsed()
		} else {
			g.listener.Expanded()
		}
	}
	if g.expanded {
		g.policy.Collapse(g, animate)
	} else {
		g.policy.Expand(g, animate)
	}
	g.expanded = !g.expanded
	if !g.policy.AnimateMain(g, g.expanded, animate) {
		g.updateMainIcon()
	}
}

// Expand toggles a collapsed group.
func (g *Group) Expand(animate bool) {
	if !g.expanded {
		g.Toggle(animate)
	}
}

// Collapse toggles an expanded group.
func (g *Group) Collapse(animate bool) {
	if g.expanded {
		g.Toggle(animate)
	}
}

// ChildClicked forwards the activation of a secondary to the
// listener.
func (g *Group) ChildClicked(e Element) {
	if g.listener != nil {
		g.listener.ChildClicked(e)
	}
}

// Step advances the running animations to now and reports whether
// any is still running.
func (g *Group) Step(now time.Time) bool {
	return g.driver.Step(now)
}

// Animating reports whether e has a running animation.
func (g *Group) Animating(e Element) bool {
	en := g.entry(e)
	return en != nil && en.anim.Running()
}

// Animate starts a on behalf of e, replacing any animation already
// running for e. When animate is false, a is applied at its end value
// immediately.
func (g *Group) Animate(e Element, a anim.Animator, animate bool) {
	en := g.entry(e)
	if en == nil {
		return
	}
	en.anim.Cancel()
	en.anim = nil
	if !animate || a.Duration <= 0 {
		if a.Update != nil {
			a.Update(anim.Frame{Fraction: 1, Value: a.To})
		}
		return
	}
	en.anim = g.driver.Start(a)
}

// Slide moves e from its current opacity and translation to alpha
// and (tx, ty) over the configured duration.
func (g *Group) Slide(e Element, alpha, tx, ty float32, animate bool) {
	p := e.Props()
	a0, x0, y0 := p.Alpha, p.TranslationX, p.TranslationY
	g.Animate(e, anim.Animator{
		From:         0,
		To:           1,
		Duration:     g.cfg.Duration,
		Interpolator: anim.AccelerateDecelerate,
		Update: func(f anim.Frame) {
			p.Alpha = lerp(a0, alpha, f.Value)
			p.TranslationX = lerp(x0, tx, f.Value)
			p.TranslationY = lerp(y0, ty, f.Value)
		},
	}, animate)
}

// Rest sets the resting pose of a secondary for the current state,
// unless it is animating: opaque and untranslated when expanded,
// transparent and translated by (tx, ty) when collapsed.
func (g *Group) Rest(e Element, tx, ty float32) {
	if g.Animating(e) {
		return
	}
	p := e.Props()
	if g.expanded {
		p.Alpha = 1
		p.TranslationX, p.TranslationY = 0, 0
		return
	}
	p.Alpha = 0
	p.TranslationX, p.TranslationY = tx, ty
}

// Morph animates the rotation, scale and background of the main
// element towards the expanded or collapsed pose. It reports whether
// the configuration enables any of them.
func (g *Group) Morph(expanded, animate bool) bool {
	cfg := g.cfg
	bg := cfg.hasExpandedBackground()
	if !cfg.Rotate && !cfg.Scale && !bg {
		return false
	}
	main := g.Main()
	p := main.Props()
	r0, s0, c0 := p.Rotation, p.Scale, p.Background
	r1, s1, c1 := float32(0), float32(1), cfg.BackgroundNormal
	if expanded {
		r1, s1, c1 = cfg.RotationAngle, cfg.ScaleFactor, cfg.BackgroundExpanded
	}
	g.Animate(main, anim.Animator{
		From:         0,
		To:           1,
		Duration:     cfg.Duration,
		Interpolator: anim.Linear,
		Update: func(f anim.Frame) {
			if cfg.Rotate {
				p.Rotation = lerp(r0, r1, f.Value)
			}
			if cfg.Scale {
				p.Scale = lerp(s0, s1, f.Value)
			}
			if bg {
				p.Background = blend(c0, c1, f.Value)
			}
		},
	}, animate)
	return true
}

func (g *Group) updateMainIcon() {
	p := g.Main().Props()
	if g.expanded {
		p.Icon = g.cfg.ExpandedIcon
	} else {
		p.Icon = g.cfg.CollapsedIcon
	}
}

func (g *Group) entry(e Element) *entry {
	for _, en := range g.entries {
		if en.elem == e {
			return en
		}
	}
	return nil
}

func lerp(a, b, t float32) float32 {
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}
