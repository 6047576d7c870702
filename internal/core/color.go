package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to an ANSI color.
type Color uint8

// Base palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Roles used by the field renderer. Hazards and edge flashes share a hue
// so a warning always reads the same way.
const (
	ColorPlayer  = ColorBrightWhite
	ColorTrail   = ColorGray
	ColorWarning = ColorBrightRed
	ColorDwell   = ColorBrightYellow
	ColorStatus  = ColorYellow
	ColorCounter = ColorCyan
)
