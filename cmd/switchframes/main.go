// SPDX-License-Identifier: Unlicense OR MIT

// Command switchframes renders the animation of a toggle switch to a
// sequence of PNG images.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/toggleui/toggle"
)

func main() {
	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg := Config{
		Width:  60,
		Height: 30,
		Style:  "convex",
		Out:    ".",
		Frames: 200,
	}
	cmd := &cobra.Command{
		Use:   "switchframes [flags]",
		Short: "Render a toggle switch animation to PNG frames",
		Long: `switchframes flips a switch once and writes every animation frame,
from the activation until the ball settles, as a numbered PNG image.`,
		Example: `  # Render a 60x30 convex switch turning on
  switchframes -o frames

  # Render a concave switch with a palette file
  switchframes --style concave --palette palette.toml -o frames`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), cfg.Debug)
			n, err := Render(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", n, cfg.Out)
			return err
		},
	}
	f := cmd.Flags()
	f.IntVar(&cfg.Width, "width", cfg.Width, "Switch width in pixels")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Switch height in pixels")
	f.StringVar(&cfg.Style, "style", cfg.Style, "Switch style: convex or concave")
	f.StringVarP(&cfg.Out, "out", "o", cfg.Out, "Output directory")
	f.IntVar(&cfg.Frames, "max-frames", cfg.Frames, "Maximum number of frames to render")
	f.StringVar(&cfg.Palette, "palette", "", "TOML palette file")
	f.StringVar(&cfg.Hue, "hue", "", "Material Design accent hue, such as teal")
	f.StringVar(&cfg.Background, "background", "", "Background color, transparent if empty")
	f.BoolVar(&cfg.Disabled, "disabled", false, "Render the disabled look")
	f.BoolVar(&cfg.Off, "off", false, "Start on and animate to off")
	f.BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")

	cmd.AddCommand(paletteCmd())
	return cmd
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	toggle.SetLogger(logger)
	if debug {
		gg.SetLogger(logger)
	}
}

func paletteCmd() *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the resolved palette as a TOML palette file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return WritePalette(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Palette, "palette", "", "TOML palette file")
	cmd.Flags().StringVar(&cfg.Hue, "hue", "", "Material Design accent hue")
	return cmd
}
