package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit colour. The zero value means "terminal default".
type RGB struct {
	R, G, B uint8
	Set     bool
}

// Hex creates a colour from a 0xRRGGBB value.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), Set: true}
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("core: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

// MustHex is ParseHex for compile-time palettes.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the "#rrggbb" form, or "" for the default colour.
func (c RGB) String() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp blends c toward o by t in [0,1].
func (c RGB) Lerp(o RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B), Set: true}
}

// Palette shared by the games. Values follow the dark game theme.
var (
	ColorPrimary   = MustHex("#FF3366")
	ColorSecondary = MustHex("#00E5FF")
	ColorAccent    = MustHex("#FFFF66")
	ColorText      = MustHex("#E0E0FF")
	ColorBorder    = MustHex("#66FFCC")
	ColorField     = MustHex("#1A1A2F")
	ColorDim       = MustHex("#5A5A7A")
)
