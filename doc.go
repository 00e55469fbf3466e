// SPDX-License-Identifier: Unlicense OR MIT

/*
Package toggle implements the state of an animated on/off switch.

A State holds the logical value and a continuous progress scalar, the
horizontal position of the sliding ball. Activate flips the value and
arms a Timer; every timer tick moves progress toward the anchor implied by
the value and the current size, and the timer is stopped once progress
settles within pid.Epsilon of the anchor.

Advancing and rendering are separate stages: the host calls Tick for each
due timer tick and then renders the current progress with a style from
package style. Repaints that are not timer ticks never move the ball.

The widget package wires a State to Gio; package anim provides the frame
timer it uses.
*/
package toggle
