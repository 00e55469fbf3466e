// SPDX-License-Identifier: Unlicense OR MIT

package toggle

import (
	"math"
	"testing"
	"time"

	"github.com/toggleui/toggle/pid"
)

type fakeTimer struct {
	active   bool
	interval time.Duration
	starts   int
	stops    int
}

func (f *fakeTimer) Start(iv time.Duration) {
	f.active = true
	f.interval = iv
	f.starts++
}

func (f *fakeTimer) Stop() {
	f.active = false
	f.stops++
}

func (f *fakeTimer) Active() bool { return f.active }

// run ticks s until its timer stops and returns the number of ticks.
func run(t *testing.T, s *State, ft *fakeTimer, sz Size) int {
	t.Helper()
	n := 0
	for ft.active {
		s.Tick(sz)
		n++
		if n > 1000 {
			t.Fatal("animation did not settle")
		}
	}
	return n
}

func TestInitialState(t *testing.T) {
	ft := new(fakeTimer)
	s := New(ft, Size{W: 60, H: 30})
	if s.On() {
		t.Error("new state is on")
	}
	if got := s.Progress(); got != 15 {
		t.Errorf("progress = %v, want 15", got)
	}
	if p := s.Phase(); p != Idle {
		t.Errorf("phase = %v, want Idle", p)
	}
}

func TestActivateScenario(t *testing.T) {
	ft := new(fakeTimer)
	sz := Size{W: 60, H: 30}
	s := New(ft, sz)
	s.Activate()
	if !s.On() {
		t.Fatal("activate did not flip")
	}
	if s.Phase() != Animating || ft.interval != DefaultInterval {
		t.Fatalf("timer not started at %v: %+v", DefaultInterval, ft)
	}
	if !s.Tick(sz) {
		t.Error("tick did not request redraw")
	}
	if got := s.Progress(); math.Abs(got-18) > 1e-9 {
		t.Errorf("progress after first tick = %v, want 18", got)
	}
	if !ft.active {
		t.Error("timer stopped after first tick")
	}
	prev := s.Progress()
	for ft.active {
		s.Tick(sz)
		if p := s.Progress(); p <= prev || p > 45 {
			t.Fatalf("progress not monotonic toward 45: %v -> %v", prev, p)
		}
		prev = s.Progress()
	}
	if !pid.Converged(s.Progress(), 45, pid.Epsilon) {
		t.Errorf("settled at %v, want 45±%v", s.Progress(), pid.Epsilon)
	}
	if s.Phase() != Idle || ft.stops != 1 {
		t.Errorf("timer not stopped once: %+v", ft)
	}
}

func TestActivateWhileAnimating(t *testing.T) {
	ft := new(fakeTimer)
	sz := Size{W: 100, H: 20}
	s := New(ft, sz)
	s.Activate()
	for i := 0; i < 5; i++ {
		s.Tick(sz)
	}
	mid := s.Progress()
	s.Activate()
	if s.On() {
		t.Fatal("second activation did not flip back")
	}
	if ft.starts != 1 {
		t.Errorf("timer restarted while running: %d starts", ft.starts)
	}
	if s.Progress() != mid {
		t.Errorf("activation reset progress: %v -> %v", mid, s.Progress())
	}
	s.Tick(sz)
	if s.Progress() >= mid {
		t.Errorf("ball did not reverse: %v -> %v", mid, s.Progress())
	}
	run(t, s, ft, sz)
	if !pid.Converged(s.Progress(), 10, pid.Epsilon) {
		t.Errorf("settled at %v, want 10", s.Progress())
	}
}

func TestSettledMatchesAnchor(t *testing.T) {
	ft := new(fakeTimer)
	sz := Size{W: 80, H: 24}
	s := New(ft, sz)
	for i := 0; i < 7; i++ {
		s.Activate()
		if n := run(t, s, ft, sz); n > 200 {
			t.Errorf("activation %d took %d ticks", i, n)
		}
		want := sz.Target(s.On())
		if !pid.Converged(s.Progress(), want, pid.Epsilon) {
			t.Errorf("activation %d: settled at %v, want %v", i, s.Progress(), want)
		}
	}
}

func TestResizeSnaps(t *testing.T) {
	ft := new(fakeTimer)
	s := New(ft, Size{W: 60, H: 30})
	s.Activate()
	run(t, s, ft, Size{W: 60, H: 30})
	s.Resize(Size{W: 120, H: 40})
	if got := s.Progress(); got != 100 {
		t.Errorf("progress after resize = %v, want 100", got)
	}
	if ft.active {
		t.Error("resize started an animation")
	}
}

func TestSet(t *testing.T) {
	ft := new(fakeTimer)
	sz := Size{W: 60, H: 30}
	s := New(ft, sz)
	s.Activate()
	s.Tick(sz)
	s.Set(false)
	if s.On() || s.Progress() != 15 || ft.active {
		t.Errorf("Set(false): on=%v progress=%v active=%v", s.On(), s.Progress(), ft.active)
	}
	s.Set(true)
	if !s.On() || s.Progress() != 45 || ft.active {
		t.Errorf("Set(true): on=%v progress=%v active=%v", s.On(), s.Progress(), ft.active)
	}
}

func TestCustomInterval(t *testing.T) {
	ft := new(fakeTimer)
	s := New(ft, Size{W: 60, H: 30})
	s.Interval = 8 * time.Millisecond
	s.Activate()
	if ft.interval != 8*time.Millisecond {
		t.Errorf("interval = %v, want 8ms", ft.interval)
	}
}

func TestNegativeIntervalUsesDefault(t *testing.T) {
	ft := new(fakeTimer)
	s := New(ft, Size{W: 60, H: 30})
	s.Interval = -time.Millisecond
	s.Activate()
	if ft.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", ft.interval, DefaultInterval)
	}
}
