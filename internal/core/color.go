package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// ColorOverlay marks translucent fills. Canvas shades these cells
	// instead of painting them solid.
	ColorOverlay
)

// TrailPalette is the order in which agents are colored, local agent first.
var TrailPalette = []Color{
	ColorBrightYellow,
	ColorBrightCyan,
	ColorBrightMagenta,
	ColorBrightGreen,
	ColorOrange,
	ColorBrightBlue,
}

// PaletteColor returns the palette entry for the i-th agent, wrapping around.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return TrailPalette[i%len(TrailPalette)]
}
