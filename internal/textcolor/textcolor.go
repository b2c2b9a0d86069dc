package textcolor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a colour string is not of the form #rrggbb
var ErrInvalidHex = errors.New(ErrMsgInvalidHex)

// TextColor is a 24-bit colour usable for chat and item name formatting
type TextColor interface {
	// Value returns the colour packed as 0xRRGGBB
	Value() uint32
	// Hex returns the colour as #rrggbb
	Hex() string
	// TCell returns the colour for terminal rendering
	TCell() tcell.Color
}

// NamedTextColor is one of the 16 legacy chat colours.
// Declaration order matches the legacy formatting codes 0-9, a-f.
type NamedTextColor uint8

const (
	Black NamedTextColor = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

type namedColorInfo struct {
	name  string
	value uint32
	code  rune
}

var namedColorTable = [...]namedColorInfo{
	Black:       {"black", 0x000000, '0'},
	DarkBlue:    {"dark_blue", 0x0000aa, '1'},
	DarkGreen:   {"dark_green", 0x00aa00, '2'},
	DarkAqua:    {"dark_aqua", 0x00aaaa, '3'},
	DarkRed:     {"dark_red", 0xaa0000, '4'},
	DarkPurple:  {"dark_purple", 0xaa00aa, '5'},
	Gold:        {"gold", 0xffaa00, '6'},
	Gray:        {"gray", 0xaaaaaa, '7'},
	DarkGray:    {"dark_gray", 0x555555, '8'},
	Blue:        {"blue", 0x5555ff, '9'},
	Green:       {"green", 0x55ff55, 'a'},
	Aqua:        {"aqua", 0x55ffff, 'b'},
	Red:         {"red", 0xff5555, 'c'},
	LightPurple: {"light_purple", 0xff55ff, 'd'},
	Yellow:      {"yellow", 0xffff55, 'e'},
	White:       {"white", 0xffffff, 'f'},
}

// NamedColors returns every named colour in legacy-code order
func NamedColors() []NamedTextColor {
	out := make([]NamedTextColor, len(namedColorTable))
	for i := range namedColorTable {
		out[i] = NamedTextColor(i)
	}
	return out
}

// ByName looks up a named colour, ignoring case
func ByName(name string) (NamedTextColor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range namedColorTable {
		if info.name == name {
			return NamedTextColor(i), true
		}
	}
	return 0, false
}

// Valid reports whether c is one of the 16 named colours
func (c NamedTextColor) Valid() bool {
	return int(c) < len(namedColorTable)
}

func (c NamedTextColor) info() namedColorInfo {
	if !c.Valid() {
		return namedColorInfo{name: fmt.Sprintf("named_color(%d)", uint8(c))}
	}
	return namedColorTable[c]
}

func (c NamedTextColor) Value() uint32 { return c.info().value }

func (c NamedTextColor) Hex() string { return formatHex(c.Value()) }

func (c NamedTextColor) String() string { return c.info().name }

// LegacyCode returns the character following § in legacy formatting
func (c NamedTextColor) LegacyCode() rune { return c.info().code }

// Colorful converts to a go-colorful colour for colour-space maths
func (c NamedTextColor) Colorful() colorful.Color { return toColorful(c.Value()) }

// TCell converts to a terminal colour
func (c NamedTextColor) TCell() tcell.Color { return tcell.NewHexColor(int32(c.Value())) }

// RGB is an arbitrary 24-bit colour
type RGB uint32

// NewRGB packs 8-bit channels into an RGB colour
func NewRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseHex parses a #rrggbb string
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := c.RGB255()
	return NewRGB(r, g, b), nil
}

func (c RGB) Value() uint32 { return uint32(c) & 0xffffff }

func (c RGB) Hex() string { return formatHex(c.Value()) }

func (c RGB) String() string { return c.Hex() }

// Colorful converts to a go-colorful colour for colour-space maths
func (c RGB) Colorful() colorful.Color { return toColorful(c.Value()) }

// TCell converts to a terminal colour
func (c RGB) TCell() tcell.Color { return tcell.NewHexColor(int32(c.Value())) }

func formatHex(v uint32) string {
	return fmt.Sprintf("#%06x", v&0xffffff)
}

func toColorful(v uint32) colorful.Color {
	return colorful.Color{
		R: float64((v>>16)&0xff) / 255.0,
		G: float64((v>>8)&0xff) / 255.0,
		B: float64(v&0xff) / 255.0,
	}
}
