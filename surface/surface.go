// SPDX-License-Identifier: Unlicense OR MIT

/*
Package surface draws style primitives into Gio operation lists.

Shapes are built as float precision outlines so that a ball moving by a
fraction of a pixel per frame moves smoothly; Gio antialiases the
outlines when the frame is rendered. Opacity is folded into the alpha of
the fill color.
*/
package surface

import (
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/toggleui/toggle/internal/f32color"
	"github.com/toggleui/toggle/style"
)

// Ops is a style.Surface that appends fills to an operation list.
type Ops struct {
	Ops *op.Ops
}

// Fill adds p to the operation list. Empty shapes are skipped.
func (s Ops) Fill(p style.Primitive) {
	b := p.Bounds
	if b.Dx() <= 0 || b.Dy() <= 0 || p.Opacity <= 0 {
		return
	}
	var path clip.Path
	path.Begin(s.Ops)
	switch p.Shape {
	case style.RoundRect:
		roundRect(&path, b, p.Radius)
	case style.Ellipse:
		ellipse(&path, b)
	}
	paint.FillShape(s.Ops, f32color.MulAlpha(p.Color, p.Opacity), clip.Outline{Path: path.End()}.Op())
}

// pather is the subset of clip.Path used to build outlines.
type pather interface {
	MoveTo(to f32.Point)
	LineTo(to f32.Point)
	CubeTo(ctrl0, ctrl1, to f32.Point)
	Close()
}

// q is the control point distance of a cubic Bézier approximating a
// quarter circle, https://pomax.github.io/bezierinfo/#circles_cubic.
const q = 4 * (math.Sqrt2 - 1) / 3

// roundRect traces r with corner radius rad, clockwise from the top
// left corner.
func roundRect(p pather, r style.Rect, rad float64) {
	w, n := float32(r.Min.X), float32(r.Min.Y)
	e, s := float32(r.Max.X), float32(r.Max.Y)
	c := float32(rad)
	iq := c * (1 - q)

	p.MoveTo(f32.Pt(w+c, n))
	p.LineTo(f32.Pt(e-c, n))                                   // N
	p.CubeTo(f32.Pt(e-iq, n), f32.Pt(e, n+iq), f32.Pt(e, n+c)) // NE
	p.LineTo(f32.Pt(e, s-c))                                   // E
	p.CubeTo(f32.Pt(e, s-iq), f32.Pt(e-iq, s), f32.Pt(e-c, s)) // SE
	p.LineTo(f32.Pt(w+c, s))                                   // S
	p.CubeTo(f32.Pt(w+iq, s), f32.Pt(w, s-iq), f32.Pt(w, s-c)) // SW
	p.LineTo(f32.Pt(w, n+c))                                   // W
	p.CubeTo(f32.Pt(w, n+iq), f32.Pt(w+iq, n), f32.Pt(w+c, n)) // NW
	p.Close()
}

// ellipse traces the ellipse inscribed in r.
func ellipse(p pather, r style.Rect) {
	ctr := r.Center()
	cx, cy := float32(ctr.X), float32(ctr.Y)
	rx, ry := float32(r.Dx()/2), float32(r.Dy()/2)
	ox, oy := rx*q, ry*q

	top := f32.Pt(cx, cy-ry)
	p.MoveTo(top)
	p.CubeTo(f32.Pt(cx+ox, cy-ry), f32.Pt(cx+rx, cy-oy), f32.Pt(cx+rx, cy))
	p.CubeTo(f32.Pt(cx+rx, cy+oy), f32.Pt(cx+ox, cy+ry), f32.Pt(cx, cy+ry))
	p.CubeTo(f32.Pt(cx-ox, cy+ry), f32.Pt(cx-rx, cy+oy), f32.Pt(cx-rx, cy))
	p.CubeTo(f32.Pt(cx-rx, cy-oy), f32.Pt(cx-ox, cy-ry), top)
	p.Close()
}
