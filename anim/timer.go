// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim drives per-frame animations from Gio frame times.

Gio has no timer callbacks: a widget asks for a future frame with
op.InvalidateCmd and observes time through layout.Context.Now. A
FrameTimer turns that into a repeating tick: Due reports how many ticks
elapsed since the previous frame and Schedule requests the frame of the
next tick. Frames that arrive early, for example after a resize, see no
due ticks, so the animation advances with time and not with the number
of repaints.
*/
package anim

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

// maxCatchUp bounds the ticks run for a single late frame.
const maxCatchUp = 4

// FrameTimer is a repeating tick source for widgets. The zero value is
// stopped.
type FrameTimer struct {
	interval time.Duration
	next     time.Time
	active   bool
	armed    bool
}

// Start starts the timer with the given interval. Starting a running
// timer has no effect.
func (t *FrameTimer) Start(interval time.Duration) {
	if t.active {
		return
	}
	if interval <= 0 {
		panic("anim: non-positive interval")
	}
	t.interval = interval
	t.active = true
	t.armed = false
}

// Stop stops the timer.
func (t *FrameTimer) Stop() {
	t.active = false
	t.armed = false
}

// Active reports whether the timer is running.
func (t *FrameTimer) Active() bool {
	return t.active
}

// Due returns the number of ticks that elapsed up to now. The first call
// after Start sets the first deadline one interval from now and returns
// zero.
func (t *FrameTimer) Due(now time.Time) int {
	if !t.active {
		return 0
	}
	if !t.armed {
		t.armed = true
		t.next = now.Add(t.interval)
		return 0
	}
	if now.Before(t.next) {
		return 0
	}
	n := int(now.Sub(t.next)/t.interval) + 1
	if n > maxCatchUp {
		n = maxCatchUp
		t.next = now.Add(t.interval)
	} else {
		t.next = t.next.Add(time.Duration(n) * t.interval)
	}
	return n
}

// Next returns the deadline of the next tick. It is only meaningful while
// the timer is active and armed by Due.
func (t *FrameTimer) Next() time.Time {
	return t.next
}

// Schedule requests a frame at the next tick while the timer runs.
func (t *FrameTimer) Schedule(gtx layout.Context) {
	if !t.active {
		return
	}
	if !t.armed {
		t.Due(gtx.Now)
	}
	gtx.Execute(op.InvalidateCmd{At: t.next})
}
