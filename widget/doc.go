// SPDX-License-Identifier: Unlicense OR MIT

// Package widget holds the state of floating action groups drawn with
// Gio. A Group owns its buttons, processes their clicks and drives
// the group controller; drawing is left to theme packages such as
// widget/material.
package widget
