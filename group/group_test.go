// SPDX-License-Identifier: Unlicense OR MIT

package group

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/unit"
	"github.com/stretchr/testify/require"
)

type box struct {
	size   image.Point
	hidden bool
	props  Props
}

func newBox(w, h int) *box {
	return &box{size: image.Pt(w, h), props: DefaultProps()}
}

func (b *box) Measure(image.Point) image.Point { return b.size }
func (b *box) Hidden() bool                    { return b.hidden }
func (b *box) Props() *Props                   { return &b.props }

// actuator is a secondary that follows the group state.
type actuator struct {
	box
	expanded bool
	listener Listener
}

func newActuator(w, h int) *actuator {
	return &actuator{box: box{size: image.Pt(w, h), props: DefaultProps()}}
}

func (a *actuator) SetExpanded(v bool)     { a.expanded = v }
func (a *actuator) SetListener(l Listener) { a.listener = l }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Margin = 10
	cfg.PaddingVertical = 20
	cfg.PaddingHorizontal = 20
	return cfg
}

func layoutGroup(g *Group) image.Point {
	sz := g.Measure(image.Pt(1000, 1000))
	g.Layout(sz)
	return sz
}

func TestStateString(t *testing.T) {
	require.Equal(t, "Collapsed", Collapsed.String())
	require.Equal(t, "Expanded", Expanded.String())
}

func TestMeasureBounds(t *testing.T) {
	for n := 0; n <= 4; n++ {
		main := newBox(56, 56)
		g := New(testConfig(), main)
		sum, widest := 0, 0
		for i := 0; i < n; i++ {
			w, h := 80+i*10, 40+i*20
			g.Add(newBox(w, h))
			sum += h
			if w > widest {
				widest = w
			}
		}
		sz := g.Measure(image.Pt(1000, 1000))
		margins := 0
		if n > 1 {
			margins = (n - 1) * 10
		}
		require.GreaterOrEqual(t, sz.Y, sum+margins+2*20, "n=%d", n)
		require.GreaterOrEqual(t, sz.X, widest+20, "n=%d", n)
		// The main element adds its own extent and one margin.
		want := sum + 56 + n*10 + 2*20
		require.Equal(t, want, sz.Y, "n=%d", n)
	}
}

func TestMeasureSecondaryStack(t *testing.T) {
	main := newBox(56, 56)
	main.hidden = true
	g := New(testConfig(), main)
	g.Add(newBox(80, 100), newBox(80, 100))
	require.Equal(t, image.Pt(100, 250), g.Measure(image.Pt(1000, 1000)))
}

func TestMeasureSkipsHidden(t *testing.T) {
	g := New(testConfig(), newBox(56, 56))
	hidden := newBox(300, 300)
	hidden.hidden = true
	g.Add(newBox(80, 100), hidden)
	require.Equal(t, image.Pt(100, 100+56+10+40), g.Measure(image.Pt(1000, 1000)))
	require.Equal(t, image.Point{}, g.Measured(hidden))
	require.Len(t, g.Secondaries(), 1)
}

func TestCollapsedLayout(t *testing.T) {
	main := newBox(56, 56)
	c1, c2 := newBox(80, 100), newBox(80, 100)
	g := New(testConfig(), main)
	g.Add(c1, c2)

	sz := layoutGroup(g)
	require.Equal(t, image.Pt(100, 316), sz)

	require.Equal(t, image.Rect(24, 240, 80, 296), main.props.Bounds)
	require.Equal(t, image.Rect(0, 130, 80, 230), c1.props.Bounds)
	require.Equal(t, image.Rect(0, 20, 80, 120), c2.props.Bounds)
	for _, c := range []*box{c1, c2} {
		p := c.props
		require.Equal(t, float32(0), p.Alpha)
		require.Equal(t, float32(main.props.Bounds.Min.Y-p.Bounds.Min.Y), p.TranslationY)
	}
	require.Equal(t, float32(110), c1.props.TranslationY)
	require.Equal(t, float32(220), c2.props.TranslationY)
	require.Equal(t, "add", main.props.Icon)
}

func TestExpandedLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Expanded = true
	main := newBox(56, 56)
	c := newActuator(80, 100)
	g := New(cfg, main)
	g.Add(c)
	layoutGroup(g)

	require.True(t, c.expanded)
	require.Equal(t, float32(1), c.props.Alpha)
	require.Equal(t, float32(0), c.props.TranslationY)
	require.Equal(t, "close", main.props.Icon)
}

func TestDrawOrder(t *testing.T) {
	main := newBox(56, 56)
	c1, c2, c3 := newBox(10, 10), newBox(10, 10), newBox(10, 10)
	c2.hidden = true
	g := New(testConfig(), main)
	g.Add(c1, c2, c3)
	require.Equal(t, []Element{c3, c1, main}, g.DrawOrder())
}

func TestMainPositionInvariant(t *testing.T) {
	size := image.Pt(400, 800)
	var want image.Rectangle
	for n := 0; n <= 3; n++ {
		main := newBox(56, 56)
		g := New(testConfig(), main)
		for i := 0; i < n; i++ {
			g.Add(newBox(120, 48))
		}
		g.Measure(size)
		g.Layout(size)
		order := g.DrawOrder()
		require.Equal(t, Element(main), order[len(order)-1])
		if n == 0 {
			want = main.props.Bounds
			continue
		}
		require.Equal(t, want, main.props.Bounds, "n=%d", n)
	}
}

func TestToggleTwice(t *testing.T) {
	for _, animate := range []bool{false, true} {
		g := New(testConfig(), newBox(56, 56))
		g.Add(newBox(80, 100))
		layoutGroup(g)
		g.Toggle(animate)
		require.Equal(t, Expanded, g.State())
		g.Toggle(animate)
		require.Equal(t, Collapsed, g.State())
		require.True(t, g.IsCollapsed())
	}
}

func TestToggleNotifiesBeforeFlip(t *testing.T) {
	main := newBox(56, 56)
	c := newBox(80, 100)
	g := New(testConfig(), main)
	g.Add(c)
	layoutGroup(g)

	var events []string
	g.SetListener(ListenerFuncs{
		OnExpanded: func() {
			require.False(t, g.IsExpanded())
			require.Equal(t, float32(0), c.props.Alpha)
			events = append(events, "expanded")
		},
		OnCollapsed: func() {
			require.True(t, g.IsExpanded())
			events = append(events, "collapsed")
		},
	})

	g.Toggle(true)
	require.True(t, g.IsExpanded())
	require.Equal(t, []string{"expanded"}, events)
	g.Toggle(true)
	require.Equal(t, []string{"expanded", "collapsed"}, events)
}

func TestExpandAnimation(t *testing.T) {
	main := newBox(56, 56)
	c := newActuator(80, 100)
	g := New(testConfig(), main)
	g.Add(c)
	layoutGroup(g)
	require.Equal(t, float32(110), c.props.TranslationY)

	g.Toggle(true)
	require.True(t, c.expanded)
	require.True(t, g.Animating(c))

	t0 := time.Unix(10, 0)
	require.True(t, g.Step(t0))
	require.InDelta(t, 0, c.props.Alpha, 1e-6)
	require.InDelta(t, 110, c.props.TranslationY, 1e-4)

	require.True(t, g.Step(t0.Add(150*time.Millisecond)))
	require.InDelta(t, .5, c.props.Alpha, 1e-6)
	require.InDelta(t, 55, c.props.TranslationY, 1e-4)

	// A layout pass does not disturb a running animation.
	layoutGroup(g)
	require.InDelta(t, .5, c.props.Alpha, 1e-6)

	require.False(t, g.Step(t0.Add(300*time.Millisecond)))
	require.Equal(t, float32(1), c.props.Alpha)
	require.Equal(t, float32(0), c.props.TranslationY)
	require.False(t, g.Animating(c))
}

func TestCollapseAnimation(t *testing.T) {
	cfg := testConfig()
	cfg.Expanded = true
	main := newBox(56, 56)
	c1, c2 := newActuator(80, 100), newActuator(80, 100)
	g := New(cfg, main)
	g.Add(c1, c2)
	layoutGroup(g)

	g.Toggle(true)
	require.False(t, c1.expanded)
	require.False(t, c2.expanded)

	t0 := time.Unix(10, 0)
	g.Step(t0)
	require.Equal(t, float32(1), c1.props.Alpha)
	g.Step(t0.Add(150 * time.Millisecond))
	require.InDelta(t, .5, c2.props.Alpha, 1e-6)
	require.InDelta(t, 110, c2.props.TranslationY, 1e-4)
	g.Step(t0.Add(time.Second))
	require.Equal(t, float32(0), c1.props.Alpha)
	require.Equal(t, float32(110), c1.props.TranslationY)
	require.Equal(t, float32(220), c2.props.TranslationY)

	// The resting pose matches the animation end.
	layoutGroup(g)
	require.Equal(t, float32(110), c1.props.TranslationY)
	require.Equal(t, float32(220), c2.props.TranslationY)
}

func TestToggleRestartsFromCurrentPose(t *testing.T) {
	g := New(testConfig(), newBox(56, 56))
	c := newBox(80, 100)
	g.Add(c)
	layoutGroup(g)

	t0 := time.Unix(10, 0)
	g.Toggle(true)
	g.Step(t0)
	g.Step(t0.Add(150 * time.Millisecond))
	require.InDelta(t, .5, c.props.Alpha, 1e-6)

	// Collapse mid-expand.
	g.Toggle(true)
	t1 := t0.Add(200 * time.Millisecond)
	g.Step(t1)
	require.InDelta(t, .5, c.props.Alpha, 1e-6)
	require.InDelta(t, 55, c.props.TranslationY, 1e-4)
	g.Step(t1.Add(150 * time.Millisecond))
	require.InDelta(t, .25, c.props.Alpha, 1e-6)
	require.InDelta(t, 82.5, c.props.TranslationY, 1e-3)
	require.False(t, g.Step(t1.Add(300*time.Millisecond)))
	require.Equal(t, float32(0), c.props.Alpha)
	require.Equal(t, float32(110), c.props.TranslationY)
}

func TestToggleWithoutAnimation(t *testing.T) {
	main := newBox(56, 56)
	c := newBox(80, 100)
	g := New(testConfig(), main)
	g.Add(c)
	layoutGroup(g)

	g.Toggle(false)
	require.False(t, g.Animating(c))
	require.Equal(t, float32(1), c.props.Alpha)
	require.Equal(t, float32(0), c.props.TranslationY)
	require.Equal(t, "close", main.props.Icon)
	require.False(t, g.Step(time.Now()))
}

func TestMainRotation(t *testing.T) {
	cfg := testConfig()
	cfg.Rotate = true
	main := newBox(56, 56)
	g := New(cfg, main)
	g.Add(newBox(80, 100))
	layoutGroup(g)
	require.Equal(t, float32(0), main.props.Rotation)

	g.Toggle(true)
	t0 := time.Unix(10, 0)
	g.Step(t0)
	require.Equal(t, float32(0), main.props.Rotation)
	g.Step(t0.Add(75 * time.Millisecond))
	require.InDelta(t, 11.25, main.props.Rotation, 1e-4)
	g.Step(t0.Add(150 * time.Millisecond))
	require.InDelta(t, 22.5, main.props.Rotation, 1e-4)
	g.Step(t0.Add(300 * time.Millisecond))
	require.Equal(t, float32(45), main.props.Rotation)
	// The main animation replaces the icon swap.
	require.Equal(t, "add", main.props.Icon)

	g.Toggle(false)
	require.Equal(t, float32(0), main.props.Rotation)
}

func TestMainScaleAndBackground(t *testing.T) {
	cfg := testConfig()
	cfg.Scale = true
	cfg.BackgroundNormal = color.NRGBA{R: 0xff, A: 0xff}
	cfg.BackgroundExpanded = color.NRGBA{B: 0xff, A: 0xff}
	main := newBox(56, 56)
	g := New(cfg, main)
	require.Equal(t, cfg.BackgroundNormal, main.props.Background)

	g.Toggle(true)
	t0 := time.Unix(10, 0)
	g.Step(t0)
	g.Step(t0.Add(150 * time.Millisecond))
	require.InDelta(t, .9, main.props.Scale, 1e-4)
	mid := main.props.Background
	require.Greater(t, mid.R, uint8(0))
	require.Greater(t, mid.B, uint8(0))
	g.Step(t0.Add(300 * time.Millisecond))
	require.Equal(t, float32(.8), main.props.Scale)
	require.Equal(t, cfg.BackgroundExpanded, main.props.Background)
}

func TestAwareWiring(t *testing.T) {
	g := New(testConfig(), newBox(56, 56))
	c := newActuator(80, 100)
	g.Add(c)
	require.False(t, c.expanded)
	require.Nil(t, c.listener)

	var clicked Element
	l := ListenerFuncs{OnChildClicked: func(e Element) { clicked = e }}
	g.SetListener(l)
	require.NotNil(t, c.listener)
	c.listener.ChildClicked(c)
	require.Equal(t, Element(c), clicked)

	g.Expand(false)
	require.True(t, c.expanded)
	g.Expand(false)
	require.True(t, g.IsExpanded())
	g.Collapse(false)
	require.False(t, c.expanded)
}

func TestNilListener(t *testing.T) {
	g := New(testConfig(), newBox(56, 56))
	g.Add(newBox(10, 10))
	layoutGroup(g)
	g.Toggle(true)
	g.ChildClicked(g.Main())
	require.True(t, g.IsExpanded())
}

func TestSetEnabled(t *testing.T) {
	main := newBox(56, 56)
	c := newBox(10, 10)
	g := New(testConfig(), main)
	g.Add(c)
	g.SetEnabled(false)
	require.False(t, g.Enabled())
	require.False(t, main.props.Enabled)
	require.False(t, c.props.Enabled)

	late := newBox(10, 10)
	g.Add(late)
	require.False(t, late.props.Enabled)
}

func TestMetric(t *testing.T) {
	main := newBox(56, 56)
	g := New(testConfig(), main)
	require.Equal(t, Metrics{Margin: 10, PaddingVertical: 20, PaddingHorizontal: 20}, g.Metrics())
	g.SetMetric(unitMetric(2))
	require.Equal(t, Metrics{Margin: 20, PaddingVertical: 40, PaddingHorizontal: 40}, g.Metrics())
}

func TestHorizontalPolicy(t *testing.T) {
	main := newBox(56, 56)
	c1, c2 := newBox(40, 40), newBox(40, 40)
	g := New(testConfig(), main, WithPolicy(Horizontal{}))
	g.Add(c1, c2)

	sz := layoutGroup(g)
	require.Equal(t, image.Pt(56+40+40+2*10+2*20, 56+20), sz)
	require.Equal(t, image.Rect(120, 0, 176, 56), main.props.Bounds)
	require.Equal(t, image.Rect(70, 16, 110, 56), c1.props.Bounds)
	require.Equal(t, image.Rect(20, 16, 60, 56), c2.props.Bounds)
	require.Equal(t, float32(50), c1.props.TranslationX)
	require.Equal(t, float32(100), c2.props.TranslationX)
	require.Equal(t, float32(0), c1.props.Alpha)

	g.Toggle(false)
	require.Equal(t, float32(0), c2.props.TranslationX)
	require.Equal(t, float32(1), c2.props.Alpha)
	g.Toggle(false)
	require.Equal(t, float32(100), c2.props.TranslationX)
}

func unitMetric(scale float32) unit.Metric {
	return unit.Metric{PxPerDp: scale, PxPerSp: scale}
}
