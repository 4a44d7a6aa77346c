// SPDX-License-Identifier: Unlicense OR MIT

package res

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Colors resolves color identifiers. An identifier is either the name
// of a color resource or a raw color value.
type Colors struct {
	// Named are application color resources. They take precedence
	// over the SVG color names.
	Named map[string]color.NRGBA
	// Fallback is returned for identifiers that cannot be resolved.
	Fallback color.NRGBA
	Logger   *log.Logger
}

// Define adds a named color resource.
func (c *Colors) Define(name string, col color.NRGBA) {
	if c.Named == nil {
		c.Named = make(map[string]color.NRGBA)
	}
	c.Named[strings.ToLower(name)] = col
}

// Resolve returns the color for id. Names are looked up first; an
// identifier that names no resource is parsed as a raw value. Failures
// are logged and resolve to the fallback color.
func (c *Colors) Resolve(id string) color.NRGBA {
	col, err := c.lookup(id)
	if err != nil {
		logger(c.Logger).Printf("res: color %q: %v", id, err)
		return c.Fallback
	}
	return col
}

func (c *Colors) lookup(id string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(id))
	if col, ok := c.Named[name]; ok {
		return col, nil
	}
	if col, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A}, nil
	}
	return ParseColor(name)
}

// ParseColor parses a raw color value: #rgb, #rrggbb, #aarrggbb, the
// same with a 0x prefix, or a decimal 0xAARRGGBB integer.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	var hex string
	switch {
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("not a color name or value")
		}
		return argb(uint32(v)), nil
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex = "ff" + hex
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color length %d", len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color: %w", err)
	}
	return argb(uint32(v)), nil
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

func logger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
