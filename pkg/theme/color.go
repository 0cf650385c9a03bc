package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
// It implements image/color.Color so backends can hand it to image/draw.
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Hex constructs an opaque Color from 0xRRGGBB.
func Hex(rgb uint32) Color {
	return Color(0xFF000000 | rgb&0x00FFFFFF)
}

// Components returns the red, green, blue, alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA returns alpha-premultiplied components in the 16-bit range.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts to the non-premultiplied standard library form.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (c Color) String() string {
	r, g, b, a := c.Components()
	if a == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ParseColor accepts "#rrggbb", "#rrggbbaa", "0xrrggbb" or an SVG colour
// name such as "darkslategray".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty colour")
	}
	hex := ""
	switch {
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	}
	if hex != "" {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		switch len(hex) {
		case 6:
			return Hex(uint32(v)), nil
		case 8:
			return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
		default:
			return 0, fmt.Errorf("invalid colour %q: want 6 or 8 hex digits", s)
		}
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown colour name %q", s)
	}
	return RGBA8(named.R, named.G, named.B, named.A), nil
}
