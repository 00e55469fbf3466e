// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster renders style primitives off-screen with the gg software
rasterizer.

A Canvas is a style.Surface backed by an image, for golden tests and for
exporting animation frames without a window.
*/
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/toggleui/toggle"
	"github.com/toggleui/toggle/style"
)

// Canvas is an antialiased RGBA drawing surface.
type Canvas struct {
	dc  *gg.Context
	err error
}

// New returns a transparent canvas of w×h pixels.
func New(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h)}
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// Fill paints p. The first failure is kept and reported by Err; later
// fills are dropped.
func (c *Canvas) Fill(p style.Primitive) {
	b := p.Bounds
	if c.err != nil || b.Dx() <= 0 || b.Dy() <= 0 || p.Opacity <= 0 {
		return
	}
	col := p.Color
	c.dc.SetRGBA(
		float64(col.R)/0xff,
		float64(col.G)/0xff,
		float64(col.B)/0xff,
		float64(col.A)/0xff*float64(min(p.Opacity, 1)),
	)
	switch p.Shape {
	case style.RoundRect:
		c.dc.DrawRoundedRectangle(b.Min.X, b.Min.Y, b.Dx(), b.Dy(), p.Radius)
	case style.Ellipse:
		ctr := b.Center()
		c.dc.DrawEllipse(ctr.X, ctr.Y, b.Dx()/2, b.Dy()/2)
	}
	if err := c.dc.Fill(); err != nil {
		c.err = err
		toggle.Logger().Warn("raster: fill failed", "err", err)
	}
}

// Err returns the first fill error.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the rasterizer.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
