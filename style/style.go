// SPDX-License-Identifier: Unlicense OR MIT

/*
Package style turns the state of a switch into an ordered list of fill
primitives.

Both styles share one contract: Render is a pure function of a Frame, and
the returned primitives are painted back to front. The ball is always
centered at (Frame.Progress, Height/2); no style keeps state of its own.
*/
package style

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/toggleui/toggle/internal/f32color"
	"golang.org/x/image/colornames"
)

// Style selects the visual metaphor of a switch.
type Style uint8

const (
	// Convex draws a two-tone track and a large ball overlapping its
	// edges.
	Convex Style = iota
	// Concave draws a filled track with an inset highlight and a small
	// ball inside it.
	Concave
)

// Shape is the kind of a Primitive.
type Shape uint8

const (
	RoundRect Shape = iota
	Ellipse
)

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Point
}

// Primitive is a single solid fill.
type Primitive struct {
	Shape Shape
	// Bounds is the bounding box of the shape.
	Bounds Rect
	// Radius is the corner radius of a RoundRect.
	Radius  float64
	Color   color.NRGBA
	Opacity float32
}

// Palette is the set of colors a switch is drawn with.
type Palette struct {
	LightNeutral color.NRGBA
	HeavyNeutral color.NRGBA
	LightAccent  color.NRGBA
	HeavyAccent  color.NRGBA
}

// Frame is the input of a render.
type Frame struct {
	// Progress is the horizontal center of the ball.
	Progress float64
	Width    float64
	Height   float64
	On       bool
	Enabled  bool
	Palette  Palette
}

// Surface accepts fills in paint order.
type Surface interface {
	Fill(p Primitive)
}

// Draw submits ps to s back to front.
func Draw(s Surface, ps []Primitive) {
	for _, p := range ps {
		s.Fill(p)
	}
}

const (
	// outerRatio is the ratio of the outer radius to the height.
	outerRatio = 0.45
	// innerRatio is the ratio of the inner radius to the outer radius.
	innerRatio = 0.75
	// insetRatio is the concave highlight inset relative to the outer
	// radius.
	insetRatio = 0.2
	// segmentOpacity is the opacity of the convex track segments.
	segmentOpacity = 0.75
	// disabledLift is added to each channel of the heavy neutral color
	// for disabled tracks.
	disabledLift = 0x33
)

var white = f32color.NRGBA(colornames.White)

// Render returns the primitives for f, back to front.
func (s Style) Render(f Frame) []Primitive {
	return s.Append(make([]Primitive, 0, 4), f)
}

// Append is like Render but appends to dst.
func (s Style) Append(dst []Primitive, f Frame) []Primitive {
	g := newGeometry(f)
	switch s {
	case Convex:
		return convex(dst, f, g)
	case Concave:
		return concave(dst, f, g)
	default:
		panic(fmt.Sprintf("style: invalid style %d", s))
	}
}

func (s Style) String() string {
	switch s {
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	default:
		return fmt.Sprintf("Style(%d)", s)
	}
}

// ParseStyle returns the style named name, ignoring case.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "convex":
		return Convex, nil
	case "concave":
		return Concave, nil
	}
	return 0, fmt.Errorf("style: unknown style %q", name)
}

// geometry holds the measurements shared by all styles.
type geometry struct {
	r0, r1      float64
	left, right Point
	ball        Point
}

func newGeometry(f Frame) geometry {
	r0 := math.Max(outerRatio*f.Height, 0)
	cy := f.Height / 2
	return geometry{
		r0:    r0,
		r1:    innerRatio * r0,
		left:  Point{X: f.Height / 2, Y: cy},
		right: Point{X: f.Width - f.Height/2, Y: cy},
		ball:  Point{X: f.Progress, Y: cy},
	}
}

func convex(dst []Primitive, f Frame, g geometry) []Primitive {
	p := f.Palette
	if !f.Enabled {
		return append(dst,
			roundRect(g.left.sub(g.r1), g.right.add(g.r1), g.r1, disabledTrack(p), 1),
			disc(g.ball, g.r0, p.HeavyNeutral, 1),
		)
	}
	ball := p.LightNeutral
	if f.On {
		ball = p.HeavyAccent
	}
	return append(dst,
		roundRect(g.left.sub(g.r1), g.ball.add(g.r1), g.r1, p.LightAccent, segmentOpacity),
		roundRect(g.ball.sub(g.r1), g.right.add(g.r1), g.r1, p.LightNeutral, segmentOpacity),
		disc(g.ball, g.r0, ball, 1),
	)
}

func concave(dst []Primitive, f Frame, g geometry) []Primitive {
	p := f.Palette
	lo, hi := g.left.sub(g.r0), g.right.add(g.r0)
	if !f.Enabled {
		return append(dst,
			roundRect(lo, hi, g.r1, disabledTrack(p), 1),
			disc(g.ball, g.r1, p.HeavyNeutral, 1),
		)
	}
	track, ball := p.HeavyNeutral, p.HeavyNeutral
	if f.On {
		track, ball = p.HeavyAccent, white
	}
	dst = append(dst, roundRect(lo, hi, g.r0, track, 1))
	if !f.On {
		b := insetRatio * g.r0
		dst = append(dst, roundRect(lo.add(b), hi.sub(b), g.r0-b, p.LightNeutral, 1))
	}
	return append(dst, disc(g.ball, g.r1, ball, 1))
}

func disabledTrack(p Palette) color.NRGBA {
	return f32color.Offset(p.HeavyNeutral, disabledLift)
}

func roundRect(lo, hi Point, r float64, c color.NRGBA, opacity float32) Primitive {
	b := Rect{Min: lo, Max: hi}.Canon()
	return Primitive{
		Shape:   RoundRect,
		Bounds:  b,
		Radius:  b.clampRadius(r),
		Color:   c,
		Opacity: opacity,
	}
}

func disc(c Point, r float64, col color.NRGBA, opacity float32) Primitive {
	r = math.Max(r, 0)
	return Primitive{
		Shape:   Ellipse,
		Bounds:  Rect{Min: c.sub(r), Max: c.add(r)},
		Color:   col,
		Opacity: opacity,
	}
}

func (p Point) add(d float64) Point { return Point{X: p.X + d, Y: p.Y + d} }
func (p Point) sub(d float64) Point { return Point{X: p.X - d, Y: p.Y - d} }

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Center returns the center of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Canon returns r with Min and Max swapped where needed so that
// Min <= Max.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clampRadius limits a corner radius to [0, half the shorter side].
func (r Rect) clampRadius(rad float64) float64 {
	lim := math.Min(r.Dx(), r.Dy()) / 2
	return math.Max(0, math.Min(rad, lim))
}
