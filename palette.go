package ilda

// Color is an 8-bit per channel RGB triple
type Color struct {
	R, G, B uint8
}

var (
	Black   = Color{0, 0, 0}
	Red     = Color{255, 0, 0}
	Yellow  = Color{255, 255, 0}
	Green   = Color{0, 255, 0}
	Cyan    = Color{0, 255, 255}
	Blue    = Color{0, 0, 255}
	Magenta = Color{255, 0, 255}
	White   = Color{255, 255, 255}
)

var defaultPalette = [8]Color{
	{0, 0, 0},
	{255, 0, 0},
	{255, 255, 0},
	{0, 255, 0},
	{0, 255, 255},
	{0, 0, 255},
	{255, 0, 255},
	{255, 255, 255},
}

// DefaultPalette returns a copy of the built-in table used for indexed formats
//
// palette sections (format 2) in a file are skipped, so this table always applies
func DefaultPalette() [8]Color {
	return defaultPalette
}

// IndexColor resolves a colour index against the default palette
//
// only the first 8 entries of the 256 entry ILDA palette are known, any higher index is white
func IndexColor(index uint8) Color {
	if int(index) < len(defaultPalette) {
		return defaultPalette[index]
	}
	return defaultPalette[len(defaultPalette)-1]
}
