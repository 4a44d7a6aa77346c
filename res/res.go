// SPDX-License-Identifier: Unlicense OR MIT

// Package res resolves the colors, icons and fonts referenced by a
// group configuration. Resolution never fails: unknown or invalid
// resources are logged and replaced by a fallback.
package res

import "log"

// Resources bundles the resolvers of one application.
type Resources struct {
	Colors Colors
	Icons  Icons
	Fonts  Fonts
}

// New returns Resources that log to l, or to the standard logger if
// l is nil.
func New(l *log.Logger) *Resources {
	return &Resources{
		Colors: Colors{Logger: l},
		Icons:  Icons{Logger: l},
		Fonts:  Fonts{Logger: l},
	}
}
