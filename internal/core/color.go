package core

// Color is the foreground color of a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Palette used by the scene renderer and the overlay.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorBlue
	ColorSkyHigh
	ColorSkyLow
	ColorWhite
	ColorGray
)
