package legacyfmt

import "fmt"

// Color is one of the sixteen colors a format code can select.
//
// Each color carries a fixed foreground RGB triple and a fixed, darker
// background triple the vanilla client uses for text shadows.
type Color uint8

const (
	Black Color = iota
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

// ColorFromChar maps a format-code character to its Color.
// Letter codes are accepted in either case, matching the vanilla client.
// The second return value is false if c does not select a color.
func ColorFromChar(c rune) (Color, bool) {
	switch c {
	case '0':
		return Black, true
	case '1':
		return DarkBlue, true
	case '2':
		return DarkGreen, true
	case '3':
		return DarkAqua, true
	case '4':
		return DarkRed, true
	case '5':
		return DarkPurple, true
	case '6':
		return Gold, true
	case '7':
		return Gray, true
	case '8':
		return DarkGray, true
	case '9':
		return Blue, true
	case 'a', 'A':
		return Green, true
	case 'b', 'B':
		return Aqua, true
	case 'c', 'C':
		return Red, true
	case 'd', 'D':
		return LightPurple, true
	case 'e', 'E':
		return Yellow, true
	case 'f', 'F':
		return White, true
	}
	return 0, false
}

// rgb triples indexed by Color
var foregroundRGB = [16][3]uint8{
	{0, 0, 0},       // Black
	{0, 0, 170},     // DarkBlue
	{0, 170, 0},     // DarkGreen
	{0, 170, 170},   // DarkAqua
	{170, 0, 0},     // DarkRed
	{170, 0, 170},   // DarkPurple
	{255, 170, 0},   // Gold
	{170, 170, 170}, // Gray
	{85, 85, 85},    // DarkGray
	{85, 85, 255},   // Blue
	{85, 255, 85},   // Green
	{85, 255, 255},  // Aqua
	{255, 85, 85},   // Red
	{255, 85, 255},  // LightPurple
	{255, 255, 85},  // Yellow
	{255, 255, 255}, // White
}

var backgroundRGB = [16][3]uint8{
	{0, 0, 0},    // Black
	{0, 0, 42},   // DarkBlue
	{0, 42, 0},   // DarkGreen
	{0, 42, 42},  // DarkAqua
	{42, 0, 0},   // DarkRed
	{42, 0, 42},  // DarkPurple
	{42, 42, 0},  // Gold
	{42, 42, 42}, // Gray
	{21, 21, 21}, // DarkGray
	{21, 21, 63}, // Blue
	{21, 63, 21}, // Green
	{21, 63, 63}, // Aqua
	{63, 21, 21}, // Red
	{63, 21, 63}, // LightPurple
	{63, 63, 21}, // Yellow
	{63, 63, 63}, // White
}

// ForegroundRGB returns the foreground color as (red, green, blue).
func (c Color) ForegroundRGB() (uint8, uint8, uint8) {
	rgb := foregroundRGB[c]
	return rgb[0], rgb[1], rgb[2]
}

// BackgroundRGB returns the shadow/background color as (red, green, blue).
func (c Color) BackgroundRGB() (uint8, uint8, uint8) {
	rgb := backgroundRGB[c]
	return rgb[0], rgb[1], rgb[2]
}

// ForegroundHex returns the foreground color as a "#rrggbb" string.
func (c Color) ForegroundHex() string {
	r, g, b := c.ForegroundRGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// BackgroundHex returns the shadow/background color as a "#rrggbb" string.
func (c Color) BackgroundHex() string {
	r, g, b := c.BackgroundRGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

const colorCodes = "0123456789abcdef"

// Code returns the color's format code character (lowercase).
func (c Color) Code() rune {
	return rune(colorCodes[c])
}

var colorNames = [16]string{
	"Black", "DarkBlue", "DarkGreen", "DarkAqua", "DarkRed", "DarkPurple",
	"Gold", "Gray", "DarkGray", "Blue", "Green", "Aqua", "Red",
	"LightPurple", "Yellow", "White",
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}
