// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"testing"
	"time"

	"github.com/toggleui/toggle"
)

var _ toggle.Timer = (*FrameTimer)(nil)

func TestFrameTimer(t *testing.T) {
	const iv = 16 * time.Millisecond
	var ft FrameTimer
	t0 := time.Unix(1000, 0)
	if n := ft.Due(t0); n != 0 || ft.Active() {
		t.Fatalf("stopped timer: %d ticks, active %v", n, ft.Active())
	}
	ft.Start(iv)
	if n := ft.Due(t0); n != 0 {
		t.Errorf("arming call returned %d ticks", n)
	}
	if got, want := ft.Next(), t0.Add(iv); !got.Equal(want) {
		t.Errorf("next = %v, want %v", got, want)
	}
	// An early repaint sees no ticks.
	if n := ft.Due(t0.Add(5 * time.Millisecond)); n != 0 {
		t.Errorf("early frame: %d ticks", n)
	}
	if n := ft.Due(t0.Add(iv)); n != 1 {
		t.Errorf("on time: %d ticks, want 1", n)
	}
	// Two intervals late.
	if n := ft.Due(t0.Add(4*iv + time.Millisecond)); n != 3 {
		t.Errorf("late frame: %d ticks, want 3", n)
	}
	if got, want := ft.Next(), t0.Add(5*iv); !got.Equal(want) {
		t.Errorf("next = %v, want %v", got, want)
	}
	// A long stall is capped and re-anchored.
	stall := t0.Add(time.Second)
	if n := ft.Due(stall); n != maxCatchUp {
		t.Errorf("stall: %d ticks, want %d", n, maxCatchUp)
	}
	if got, want := ft.Next(), stall.Add(iv); !got.Equal(want) {
		t.Errorf("next after stall = %v, want %v", got, want)
	}
	ft.Stop()
	if n := ft.Due(stall.Add(time.Hour)); n != 0 || ft.Active() {
		t.Errorf("stopped: %d ticks, active %v", n, ft.Active())
	}
}

func TestFrameTimerRestart(t *testing.T) {
	var ft FrameTimer
	t0 := time.Unix(0, 0)
	ft.Start(10 * time.Millisecond)
	ft.Due(t0)
	ft.Start(time.Second)
	if n := ft.Due(t0.Add(10 * time.Millisecond)); n != 1 {
		t.Errorf("restart of running timer changed its schedule: %d ticks", n)
	}
	ft.Stop()
	ft.Start(time.Second)
	if n := ft.Due(t0.Add(time.Hour)); n != 0 {
		t.Errorf("restarted timer ticked before arming: %d", n)
	}
}

func TestStateOnFrameTimer(t *testing.T) {
	var ft FrameTimer
	sz := toggle.Size{W: 60, H: 30}
	s := toggle.New(&ft, sz)
	s.Activate()
	now := time.Unix(0, 0)
	ft.Due(now)
	frames := 0
	for ft.Active() {
		now = now.Add(toggle.DefaultInterval)
		for n := ft.Due(now); n > 0 && ft.Active(); n-- {
			s.Tick(sz)
		}
		frames++
		if frames > 200 {
			t.Fatal("animation did not settle")
		}
	}
	if p := s.Progress(); p < 44.9 || p > 45 {
		t.Errorf("settled at %v", p)
	}
}
