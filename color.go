package ttf2bmp

import "fmt"

// RGB represents an opaque color with 8-bit red, green, and blue components.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Gray  = RGB{128, 128, 128}
)

// RGBA implements the color.Color interface. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// Hex returns the color as a lowercase "rrggbb" hex string.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a hex color string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
func ParseRGB(s string) (RGB, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var d [6]uint8
	switch len(hex) {
	case 3: // RGB, each digit doubled
		for i := 0; i < 3; i++ {
			v, ok := hexNibble(hex[i])
			if !ok {
				return RGB{}, fmt.Errorf("ttf2bmp: invalid hex color %q", s)
			}
			d[2*i], d[2*i+1] = v, v
		}
	case 6: // RRGGBB
		for i := 0; i < 6; i++ {
			v, ok := hexNibble(hex[i])
			if !ok {
				return RGB{}, fmt.Errorf("ttf2bmp: invalid hex color %q", s)
			}
			d[i] = v
		}
	default:
		return RGB{}, fmt.Errorf("ttf2bmp: invalid hex color %q", s)
	}

	return RGB{
		R: d[0]<<4 | d[1],
		G: d[2]<<4 | d[3],
		B: d[4]<<4 | d[5],
	}, nil
}

// hexNibble decodes a single hex digit.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
