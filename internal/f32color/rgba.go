// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color holds the color helpers shared by renderers and
// palette sources.
package f32color

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB returns the opaque color 0xRRGGBB.
func RGB(c uint32) color.NRGBA {
	return ARGB(0xff000000 | c)
}

// ARGB returns the color 0xAARRGGBB.
func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// NRGBA converts c to non-premultiplied form.
func NRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// MulAlpha scales the alpha of c by f, clamped to [0, 1].
func MulAlpha(c color.NRGBA, f float32) color.NRGBA {
	switch {
	case f <= 0:
		c.A = 0
	case f < 1:
		c.A = uint8(float32(c.A)*f + .5)
	}
	return c
}

// Offset adds d to each color channel, saturating at 0xff. Alpha is
// unchanged.
func Offset(c color.NRGBA, d uint8) color.NRGBA {
	add := func(v uint8) uint8 {
		if s := uint16(v) + uint16(d); s < 0xff {
			return uint8(s)
		}
		return 0xff
	}
	c.R, c.G, c.B = add(c.R), add(c.G), add(c.B)
	return c
}

// Mix returns the linear blend of a and b, with t == 0 yielding a.
func Mix(a, b color.NRGBA, t float32) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + .5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa", with or without the
// leading '#'.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("f32color: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("f32color: invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is translucent.
func Hex(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
