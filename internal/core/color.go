package core

import "fmt"

// Color is a 24-bit foreground color for a screen cell.
// The zero value renders with the terminal's default foreground.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors used by the board and the piece catalog.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(255, 255, 255)
	ColorCyan    = RGB(0, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorMagenta = RGB(255, 0, 255)
	ColorYellow  = RGB(255, 255, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorOrange  = RGB(255, 153, 51)
	ColorBlue    = RGB(0, 0, 255)
	ColorGray    = RGB(128, 128, 128)
)

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
