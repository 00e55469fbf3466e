// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the animated switch control for Gio. A
// Switch contains persistent state, processes pointer events and draws
// itself with one of the styles in package style.
package widget
