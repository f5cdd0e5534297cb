package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to concrete terminal colors per theme,
// so the same game render works for both the day and night palettes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
