// SPDX-License-Identifier: Unlicense OR MIT

package main

// A window with a convex and a concave switch. Pass -palette to load a
// TOML palette file; the switches pick up edits to the file while the
// program runs.

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/toggleui/toggle"
	"github.com/toggleui/toggle/style"
	"github.com/toggleui/toggle/theme"
	switchw "github.com/toggleui/toggle/widget"
)

var (
	palettePath = flag.String("palette", "", "TOML palette file")
	debug       = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()
	if *debug {
		toggle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Switches"), app.Size(unit.Dp(320), unit.Dp(200)))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type demo struct {
	th       *material.Theme
	convex   *switchw.Switch
	concave  *switchw.Switch
	material *switchw.Switch
	enabled  widget.Bool
}

func newDemo(src theme.Source) *demo {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	d := &demo{
		th:       th,
		convex:   switchw.NewSwitch(style.Convex, src),
		concave:  switchw.NewSwitch(style.Concave, src),
		material: switchw.NewSwitch(style.Concave, theme.FromMaterial(th)),
	}
	d.enabled.Value = true
	return d
}

func loop(w *app.Window) error {
	var src theme.Source = theme.Builtin
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	palettes := make(chan style.Palette, 1)
	if *palettePath != "" {
		f, err := theme.LoadFile(*palettePath)
		if err != nil {
			return err
		}
		src = f
		err = theme.Watch(ctx, *palettePath, func(p style.Palette) {
			select {
			case palettes <- p:
			default:
			}
			w.Invalidate()
		})
		if err != nil {
			return err
		}
	}
	d := newDemo(src)

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			select {
			case p := <-palettes:
				d.convex.SetPalette(p)
				d.concave.SetPalette(p)
			default:
			}
			gtx := app.NewContext(&ops, e)
			d.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (d *demo) layout(gtx layout.Context) layout.Dimensions {
	d.enabled.Update(gtx)
	row := func(label string, sw *switchw.Switch) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if !d.enabled.Value {
							gtx = gtx.Disabled()
						}
						return sw.Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
					layout.Rigid(material.Body1(d.th, label).Layout),
				)
			})
		})
	}
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			row("Convex", d.convex),
			row("Concave", d.concave),
			row("Material theme", d.material),
			layout.Rigid(material.CheckBox(d.th, &d.enabled, "Enabled").Layout),
		)
	})
}
