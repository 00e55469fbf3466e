// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image/color"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/toggleui/toggle"
	"github.com/toggleui/toggle/internal/f32color"
)

// File is a Source read from a TOML palette file:
//
//	# optional Material Design hue for entries not listed below
//	hue = "teal"
//
//	[colors]
//	primary200 = "#7c55bb"
//	primary400 = "#5d34a9"
//	grey200 = "#dddddd"
//	grey400 = "#aaaaaa"
type File struct {
	// Hue selects a MaterialDesign source as fallback.
	Hue string `toml:"hue,omitempty"`
	// Colors maps entry names to hex colors.
	Colors map[string]string `toml:"colors"`

	parsed   Map
	fallback Source
}

// LoadFile reads and validates the palette file at path.
func LoadFile(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := f.init(); err != nil {
		return nil, errors.Wrapf(err, "palette %s", path)
	}
	return &f, nil
}

// DecodeFile reads a palette file from r.
func DecodeFile(r io.Reader) (*File, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "parsing palette")
	}
	if err := f.init(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) init() error {
	if f.Hue != "" {
		src, ok := MaterialDesign(f.Hue)
		if !ok {
			return errors.Errorf("unknown hue %q", f.Hue)
		}
		f.fallback = src
	}
	f.parsed = make(Map, len(f.Colors))
	for name, hex := range f.Colors {
		c, err := f32color.ParseHex(hex)
		if err != nil {
			return errors.Wrapf(err, "color %s", name)
		}
		if !slices.Contains(Names[:], name) {
			toggle.Logger().Warn("theme: ignoring unknown color", "name", name)
			continue
		}
		f.parsed[name] = c
	}
	return nil
}

// Color implements Source.
func (f *File) Color(name string) (color.NRGBA, bool) {
	if c, ok := f.parsed[name]; ok {
		return c, true
	}
	if f.fallback != nil {
		return f.fallback.Color(name)
	}
	return color.NRGBA{}, false
}

// Encode writes the palette entries of src as a palette file.
func Encode(w io.Writer, src Source) error {
	f := File{Colors: make(map[string]string, len(Names))}
	for _, name := range Names {
		if c, ok := src.Color(name); ok {
			f.Colors[name] = f32color.Hex(c)
		}
	}
	return errors.Wrap(toml.NewEncoder(w).Encode(f), "encoding palette")
}
