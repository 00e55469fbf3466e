// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pid implements the convergence step used to animate a scalar
toward a target.

The minimal corrector is a proportional step: every call moves the value
a fixed fraction of the remaining distance, so the distance to the target
decays exponentially and never changes sign. Controller adds optional
derivative damping on top of the same step.
*/
package pid

import "math"

const (
	// DefaultGain is the fraction of the remaining distance covered
	// per step.
	DefaultGain = 0.1
	// Epsilon is the distance below which a value is considered
	// settled.
	Epsilon = 0.1
)

// Step returns current moved toward target by gain times the remaining
// distance. Gain is expected in (0, 1).
func Step(current, target, gain float64) float64 {
	if current == target {
		return target
	}
	return current + gain*(target-current)
}

// Converged reports whether current is within eps of target.
func Converged(current, target, eps float64) bool {
	return math.Abs(current-target) < eps
}

// Steps returns the number of Step calls needed for current to converge
// to target within eps. It returns -1 if the corrector cannot get that
// close: the gain is out of range, eps is not positive, or eps is finer
// than the float64 spacing around target.
func Steps(current, target, gain, eps float64) int {
	if !(eps > 0) {
		return -1
	}
	if Converged(current, target, eps) {
		return 0
	}
	if gain <= 0 || gain >= 2 || math.IsInf(current-target, 0) || math.IsNaN(current-target) {
		return -1
	}
	n := 0
	for !Converged(current, target, eps) {
		next := Step(current, target, gain)
		if next == current {
			return -1
		}
		current = next
		n++
	}
	return n
}

// Controller is a proportional corrector with optional derivative
// damping. The zero value does not move; set Kp.
type Controller struct {
	// Kp is the proportional gain.
	Kp float64
	// Kd damps the step by the change in error since the previous
	// update.
	Kd float64

	prev   float64
	primed bool
}

// Update returns the next value for current. The result never crosses
// target and never moves away from it.
func (c *Controller) Update(current, target float64) float64 {
	e := target - current
	if e == 0 {
		c.prev, c.primed = 0, true
		return target
	}
	delta := c.Kp * e
	if c.primed && c.Kd != 0 {
		delta += c.Kd * (e - c.prev)
	}
	c.prev, c.primed = e, true
	switch {
	case delta*e < 0:
		delta = 0
	case math.Abs(delta) > math.Abs(e):
		delta = e
	}
	return current + delta
}

// Reset forgets the previous error. Call it when the target jumps so the
// derivative term does not kick.
func (c *Controller) Reset() {
	c.prev, c.primed = 0, false
}
