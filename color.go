package px

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for strings that are neither a
// hex color nor a known color name.
var ErrInvalidColor = errors.New("px: invalid color")

// Color is an opaque RGB color packed as 0x00RRGGBB.
//
// The packed value is exactly what a Canvas stores per pixel, so a Color can
// be compared with raw buffer words directly.
type Color uint32

// RGB creates a color from 8-bit red, green and blue channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// GrayLevel creates a gray color with all three channels set to v.
func GrayLevel(v uint8) Color {
	return RGB(v, v, v)
}

// Common colors.
const (
	Black     Color = 0x000000
	Gray      Color = 0x808080
	White     Color = 0xffffff
	LightGray Color = 0xc0c0c0
	Red       Color = 0xff0000
	DarkRed   Color = 0x800000
	Green     Color = 0x00ff00
	DarkGreen Color = 0x008000
	Blue      Color = 0x0000ff
	DarkBlue  Color = 0x000080
	Cyan      Color = 0x00ffff
	Teal      Color = 0x008080
	Magenta   Color = 0xff00ff
	Purple    Color = 0x800080
	Yellow    Color = 0xffff00
	Olive     Color = 0x808000
	Brown     Color = 0xa52a2a
	Gold      Color = 0xffd700
	Indigo    Color = 0x4b0082
	SkyBlue   Color = 0x87cdfa
)

// Channels returns the red, green and blue channels of c.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements the color.Color interface. The alpha channel is always
// fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Channels()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// String returns the color in #rrggbb notation.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// FromColor converts a standard color.Color to a Color.
// Transparency is discarded: the premultiplied channels are used as-is.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Named looks up a color by its SVG 1.1 name, e.g. "cornflowerblue".
// The lookup is case-insensitive.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return RGB(c.R, c.G, c.B), true
}

// ColorNames returns the sorted list of names accepted by Named.
func ColorNames() []string {
	return colornames.Names
}

// ParseColor parses a color given as "#rgb", "#rrggbb" (the leading '#' is
// optional) or as an SVG color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if c, ok := Named(s); ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var v uint32
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v = v<<4 | d
	}

	switch len(hex) {
	case 3:
		r, g, b := (v>>8)&0xf, (v>>4)&0xf, v&0xf
		return RGB(uint8(r*17), uint8(g*17), uint8(b*17)), nil
	case 6:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// Hex is like ParseColor but returns Black for malformed input.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		return Black
	}
	return c
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}
