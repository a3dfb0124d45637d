package core

// Color is a foreground color for a screen cell. Platforms map it to
// whatever their output supports (ANSI codes, RGBA).
type Color uint8

// Palette used by the game. The dim/bright pairs follow the ANSI layout.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)
