// SPDX-License-Identifier: Unlicense OR MIT

/*
Package theme supplies switch palettes from named theme colors.

A Source maps color names to colors. Load queries a source for the four
palette entries and returns a copy; switches hold that copy and only see
theme changes when they are explicitly reloaded.
*/
package theme

import (
	"image/color"

	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/colornames"

	"github.com/toggleui/toggle"
	"github.com/toggleui/toggle/internal/f32color"
	"github.com/toggleui/toggle/style"
)

// Palette entry names.
const (
	LightAccent  = "primary200"
	HeavyAccent  = "primary400"
	LightNeutral = "grey200"
	HeavyNeutral = "grey400"
)

// Names lists the entries Load queries, in order.
var Names = [...]string{LightNeutral, HeavyNeutral, LightAccent, HeavyAccent}

// Source looks up theme colors by name.
type Source interface {
	Color(name string) (color.NRGBA, bool)
}

// Default is the palette used for entries a source lacks.
var Default = style.Palette{
	LightNeutral: f32color.RGB(0xdddddd),
	HeavyNeutral: f32color.RGB(0xaaaaaa),
	LightAccent:  f32color.RGB(0x7c55bb),
	HeavyAccent:  f32color.RGB(0x5d34a9),
}

// Builtin serves Default.
var Builtin Source = Map{
	LightNeutral: Default.LightNeutral,
	HeavyNeutral: Default.HeavyNeutral,
	LightAccent:  Default.LightAccent,
	HeavyAccent:  Default.HeavyAccent,
}

// Load returns the palette from src. Missing entries fall back to
// Default.
func Load(src Source) style.Palette {
	p := Default
	for _, e := range []struct {
		name string
		dst  *color.NRGBA
	}{
		{LightNeutral, &p.LightNeutral},
		{HeavyNeutral, &p.HeavyNeutral},
		{LightAccent, &p.LightAccent},
		{HeavyAccent, &p.HeavyAccent},
	} {
		c, ok := src.Color(e.name)
		if !ok {
			toggle.Logger().Warn("theme: color missing, using default", "name", e.name)
			continue
		}
		*e.dst = c
	}
	return p
}

// Map is a Source backed by a map.
type Map map[string]color.NRGBA

func (m Map) Color(name string) (color.NRGBA, bool) {
	c, ok := m[name]
	return c, ok
}

// MaterialDesign returns the Material Design palette with accent hue,
// such as "deeppurple" or "teal". It reports false for unknown hues.
func MaterialDesign(hue string) (Source, bool) {
	h, ok := hues[hue]
	if !ok {
		return nil, false
	}
	return Map{
		LightAccent:  f32color.NRGBA(h[0]),
		HeavyAccent:  f32color.NRGBA(h[1]),
		LightNeutral: f32color.NRGBA(colornames.Grey200),
		HeavyNeutral: f32color.NRGBA(colornames.Grey400),
	}, true
}

var hues = map[string][2]color.RGBA{
	"red":        {colornames.Red200, colornames.Red400},
	"pink":       {colornames.Pink200, colornames.Pink400},
	"purple":     {colornames.Purple200, colornames.Purple400},
	"deeppurple": {colornames.DeepPurple200, colornames.DeepPurple400},
	"indigo":     {colornames.Indigo200, colornames.Indigo400},
	"blue":       {colornames.Blue200, colornames.Blue400},
	"teal":       {colornames.Teal200, colornames.Teal400},
	"green":      {colornames.Green200, colornames.Green400},
	"orange":     {colornames.Orange200, colornames.Orange400},
}

// FromMaterial derives a source from a Gio material theme. The heavy
// accent is the theme's contrast background; the light accent is that
// color mixed halfway toward the theme background.
func FromMaterial(th *material.Theme) Source {
	return Map{
		HeavyAccent:  th.Palette.ContrastBg,
		LightAccent:  f32color.Mix(th.Palette.ContrastBg, th.Palette.Bg, .5),
		LightNeutral: Default.LightNeutral,
		HeavyNeutral: Default.HeavyNeutral,
	}
}
