// SPDX-License-Identifier: Unlicense OR MIT

package toggle

import (
	"log/slog"
	"time"

	"github.com/toggleui/toggle/pid"
)

// DefaultInterval is the tick period of a running animation, about 60Hz.
const DefaultInterval = 16 * time.Millisecond

// Timer is a repeating tick source. While active, the owner of a State
// calls Tick once per elapsed interval.
type Timer interface {
	Start(interval time.Duration)
	Stop()
	Active() bool
}

// Phase is the animation phase of a State.
type Phase uint8

const (
	Idle Phase = iota
	Animating
)

// Size is the size of a control in pixels.
type Size struct {
	W, H float64
}

// Target returns the resting ball position for the value on.
func (s Size) Target(on bool) float64 {
	if on {
		return s.W - s.H/2
	}
	return s.H / 2
}

// State is the value and animated position of a switch. A State is owned
// by a single control and must only be used from its UI goroutine.
type State struct {
	// Interval is the tick period passed to the timer. Zero or negative
	// means DefaultInterval.
	Interval time.Duration

	timer    Timer
	ctrl     pid.Controller
	on       bool
	progress float64
	size     Size
}

// New returns an idle, off State of size sz driven by t.
func New(t Timer, sz Size) *State {
	s := &State{
		timer: t,
		ctrl:  pid.Controller{Kp: pid.DefaultGain},
	}
	s.Resize(sz)
	return s
}

func (s *State) On() bool          { return s.on }
func (s *State) Progress() float64 { return s.progress }
func (s *State) Size() Size        { return s.size }

// Phase reports whether an animation is running.
func (s *State) Phase() Phase {
	if s.timer.Active() {
		return Animating
	}
	return Idle
}

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Animating:
		return "Animating"
	default:
		panic("invalid phase")
	}
}

// Activate flips the value and starts the timer if it is idle. A running
// animation keeps its progress and heads for the new target from the
// next tick on.
func (s *State) Activate() {
	s.on = !s.on
	s.ctrl.Reset()
	if s.timer.Active() {
		return
	}
	iv := s.Interval
	if iv <= 0 {
		iv = DefaultInterval
	}
	s.timer.Start(iv)
	Logger().Debug("animation started",
		slog.Bool("on", s.on),
		slog.Float64("progress", s.progress),
		slog.Float64("target", s.size.Target(s.on)))
}

// Set changes the value without animation: progress snaps to the new
// anchor and a running animation is stopped.
func (s *State) Set(on bool) {
	s.on = on
	if s.timer.Active() {
		s.timer.Stop()
	}
	s.ctrl.Reset()
	s.progress = s.size.Target(on)
}

// Tick advances progress one step toward the anchor for the value at
// size sz, and stops the timer once it has settled. It always reports
// true: the frame after a tick must be redrawn, including the final one.
func (s *State) Tick(sz Size) bool {
	s.size = sz
	target := sz.Target(s.on)
	s.progress = s.ctrl.Update(s.progress, target)
	if pid.Converged(s.progress, target, pid.Epsilon) && s.timer.Active() {
		s.timer.Stop()
		Logger().Debug("animation settled",
			slog.Bool("on", s.on),
			slog.Float64("progress", s.progress))
	}
	return true
}

// Resize re-anchors progress for the new size. The jump is not animated.
func (s *State) Resize(sz Size) {
	s.size = sz
	s.progress = sz.Target(s.on)
	s.ctrl.Reset()
	Logger().Debug("resized", slog.Float64("w", sz.W), slog.Float64("h", sz.H))
}
