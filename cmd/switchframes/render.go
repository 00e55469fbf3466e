// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/toggleui/toggle"
	"github.com/toggleui/toggle/anim"
	"github.com/toggleui/toggle/internal/f32color"
	"github.com/toggleui/toggle/raster"
	"github.com/toggleui/toggle/style"
	"github.com/toggleui/toggle/theme"
)

// Config holds the command configuration.
type Config struct {
	Width, Height int
	Style         string
	Out           string
	Frames        int
	Palette       string
	Hue           string
	Background    string
	Disabled      bool
	Off           bool
	Debug         bool
}

// source resolves the palette source: a palette file wins over a hue,
// which wins over the builtin colors.
func (c Config) source() (theme.Source, error) {
	switch {
	case c.Palette != "":
		f, err := theme.LoadFile(c.Palette)
		if err != nil {
			return nil, err
		}
		return f, nil
	case c.Hue != "":
		src, ok := theme.MaterialDesign(c.Hue)
		if !ok {
			return nil, fmt.Errorf("unknown hue %q", c.Hue)
		}
		return src, nil
	}
	return theme.Builtin, nil
}

// Render writes the frames of one activation to cfg.Out and returns the
// number of frames written. The first frame shows the switch at rest
// before the ball moves; the last shows it settled.
func Render(ctx context.Context, cfg Config) (int, error) {
	st, err := style.ParseStyle(cfg.Style)
	if err != nil {
		return 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	src, err := cfg.source()
	if err != nil {
		return 0, err
	}
	palette := theme.Load(src)
	var bg *color.NRGBA
	if cfg.Background != "" {
		c, err := f32color.ParseHex(cfg.Background)
		if err != nil {
			return 0, err
		}
		bg = &c
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	var timer anim.FrameTimer
	sz := toggle.Size{W: float64(cfg.Width), H: float64(cfg.Height)}
	state := toggle.New(&timer, sz)
	state.Set(cfg.Off)
	state.Activate()

	// Frame times are simulated: every frame lands exactly on a tick.
	now := time.Time{}
	timer.Due(now)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		f := style.Frame{
			Progress: state.Progress(),
			Width:    sz.W,
			Height:   sz.H,
			On:       state.On(),
			Enabled:  !cfg.Disabled,
			Palette:  palette,
		}
		path := filepath.Join(cfg.Out, fmt.Sprintf("frame-%03d.png", n))
		if err := writeFrame(path, st, f, bg); err != nil {
			return n, err
		}
		n++
		if !timer.Active() || n >= cfg.Frames {
			break
		}
		now = now.Add(toggle.DefaultInterval)
		for k := timer.Due(now); k > 0 && timer.Active(); k-- {
			state.Tick(sz)
		}
	}
	slog.Debug("rendered", "frames", n, "progress", state.Progress(), "settled", !timer.Active())
	return n, nil
}

func writeFrame(path string, st style.Style, f style.Frame, bg *color.NRGBA) error {
	c := raster.New(int(f.Width), int(f.Height))
	defer c.Close()
	if bg != nil {
		c.Clear(*bg)
	}
	style.Draw(c, st.Render(f))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.EncodePNG(out); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return out.Close()
}

// WritePalette prints the palette selected by cfg as a palette file.
func WritePalette(w io.Writer, cfg Config) error {
	src, err := cfg.source()
	if err != nil {
		return err
	}
	return theme.Encode(w, src)
}
