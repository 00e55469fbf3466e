// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/toggleui/toggle/internal/f32color"
	"github.com/toggleui/toggle/style"
)

var palette = style.Palette{
	LightNeutral: f32color.RGB(0xdddddd),
	HeavyNeutral: f32color.RGB(0xaaaaaa),
	LightAccent:  f32color.RGB(0x7c55bb),
	HeavyAccent:  f32color.RGB(0x5d34a9),
}

func render(t *testing.T, s style.Style, f style.Frame) image.Image {
	t.Helper()
	c := New(int(f.Width), int(f.Height))
	defer c.Close()
	style.Draw(c, s.Render(f))
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	return c.Image()
}

func expect(t *testing.T, img image.Image, x, y int, want color.Color) {
	t.Helper()
	got := f32color.NRGBA(img.At(x, y))
	w := f32color.NRGBA(want)
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	if d(got.R, w.R) > 2 || d(got.G, w.G) > 2 || d(got.B, w.B) > 2 || d(got.A, w.A) > 2 {
		t.Errorf("(%d,%d) = %v, want %v", x, y, got, w)
	}
}

func TestConcaveOn(t *testing.T) {
	img := render(t, style.Concave, style.Frame{
		Progress: 45, Width: 60, Height: 30, On: true, Enabled: true, Palette: palette,
	})
	expect(t, img, 45, 15, colornames.White)
	expect(t, img, 20, 15, palette.HeavyAccent)
	expect(t, img, 0, 0, color.NRGBA{})
}

func TestConcaveOffInset(t *testing.T) {
	img := render(t, style.Concave, style.Frame{
		Progress: 15, Width: 60, Height: 30, Enabled: true, Palette: palette,
	})
	expect(t, img, 15, 15, palette.HeavyNeutral)
	// Between the ball and the right end lies the highlight.
	expect(t, img, 40, 15, palette.LightNeutral)
	// The rim of the track above the highlight.
	expect(t, img, 40, 2, palette.HeavyNeutral)
}

func TestConvexDisabled(t *testing.T) {
	img := render(t, style.Convex, style.Frame{
		Progress: 15, Width: 60, Height: 30, On: true, Palette: palette,
	})
	expect(t, img, 15, 15, palette.HeavyNeutral)
	expect(t, img, 45, 15, f32color.RGB(0xdddddd))
}

func TestPNGDeterministic(t *testing.T) {
	f := style.Frame{Progress: 27.5, Width: 60, Height: 30, On: true, Enabled: true, Palette: palette}
	encode := func() []byte {
		c := New(60, 30)
		defer c.Close()
		c.Clear(colornames.White)
		style.Draw(c, style.Convex.Render(f))
		var buf bytes.Buffer
		if err := c.EncodePNG(&buf); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	a, b := encode(), encode()
	if !bytes.Equal(a, b) {
		t.Error("identical frames encoded differently")
	}
	img, err := png.Decode(bytes.NewReader(a))
	if err != nil {
		t.Fatal(err)
	}
	if sz := img.Bounds().Size(); sz != image.Pt(60, 30) {
		t.Errorf("image size %v", sz)
	}
	expect(t, img, 0, 0, colornames.White)
}
