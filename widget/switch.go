// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/toggleui/toggle"
	"github.com/toggleui/toggle/anim"
	"github.com/toggleui/toggle/style"
	"github.com/toggleui/toggle/surface"
	"github.com/toggleui/toggle/theme"
)

// Switch is an animated on/off switch.
type Switch struct {
	// Style selects the look of the switch.
	Style style.Style
	// Width and Height is the preferred size. Zero means 48×24dp.
	Width, Height unit.Dp

	click   gesture.Click
	timer   anim.FrameTimer
	state   *toggle.State
	palette style.Palette
	prims   []style.Primitive
	changed bool
}

// NewSwitch returns a switch with the palette from src.
func NewSwitch(s style.Style, src theme.Source) *Switch {
	sw := &Switch{Style: s}
	sw.ReloadTheme(src)
	return sw
}

func (s *Switch) init() {
	if s.state == nil {
		s.state = toggle.New(&s.timer, toggle.Size{})
		if s.palette == (style.Palette{}) {
			s.palette = theme.Default
		}
	}
}

// ReloadTheme copies the palette from src. It must be called again for
// later theme changes to show.
func (s *Switch) ReloadTheme(src theme.Source) {
	s.palette = theme.Load(src)
}

// SetPalette replaces the palette.
func (s *Switch) SetPalette(p style.Palette) {
	s.palette = p
}

// Palette returns the palette in use.
func (s *Switch) Palette() style.Palette {
	s.init()
	return s.palette
}

// Value reports whether the switch is on.
func (s *Switch) Value() bool {
	s.init()
	return s.state.On()
}

// SetValue sets the value without animation.
func (s *Switch) SetValue(on bool) {
	s.init()
	s.state.Set(on)
}

// Animating reports whether the ball is moving.
func (s *Switch) Animating() bool {
	s.init()
	return s.state.Phase() == toggle.Animating
}

// Progress returns the position of the ball.
func (s *Switch) Progress() float64 {
	s.init()
	return s.state.Progress()
}

// Changed reports whether the switch was toggled by the user since the
// last call to Changed.
func (s *Switch) Changed() bool {
	c := s.changed
	s.changed = false
	return c
}

// Update processes input and reports whether the switch was toggled.
// Activations are ignored while gtx is disabled.
func (s *Switch) Update(gtx layout.Context) bool {
	s.init()
	toggled := false
	for {
		e, ok := s.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind != gesture.KindClick || !gtx.Enabled() {
			continue
		}
		s.state.Activate()
		toggled = !toggled
		s.changed = true
	}
	return toggled
}

// Layout processes input, advances the animation and draws the switch.
func (s *Switch) Layout(gtx layout.Context) layout.Dimensions {
	s.Update(gtx)

	w, h := s.Width, s.Height
	if w == 0 {
		w = 48
	}
	if h == 0 {
		h = 24
	}
	size := gtx.Constraints.Constrain(image.Pt(gtx.Dp(w), gtx.Dp(h)))
	sz := toggle.Size{W: float64(size.X), H: float64(size.Y)}
	if sz != s.state.Size() {
		s.state.Resize(sz)
	}
	for n := s.timer.Due(gtx.Now); n > 0 && s.timer.Active(); n-- {
		s.state.Tick(sz)
	}
	s.timer.Schedule(gtx)

	s.prims = s.Style.Append(s.prims[:0], style.Frame{
		Progress: s.state.Progress(),
		Width:    sz.W,
		Height:   sz.H,
		On:       s.state.On(),
		Enabled:  gtx.Enabled(),
		Palette:  s.palette,
	})
	style.Draw(surface.Ops{Ops: gtx.Ops}, s.prims)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	semantic.Switch.Add(gtx.Ops)
	semantic.SelectedOp(s.state.On()).Add(gtx.Ops)
	semantic.EnabledOp(gtx.Enabled()).Add(gtx.Ops)
	s.click.Add(gtx.Ops)
	if gtx.Enabled() {
		pointer.CursorPointer.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}
}
