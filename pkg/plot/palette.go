package plot

import "github.com/matzehuels/swarmplot/pkg/canvas"

// DefaultPalette is the seven-color categorical palette used when a series
// does not pick its own colors. It is passed explicitly through
// configuration rather than applied as a hidden default.
var DefaultPalette = [7]canvas.Color{
	canvas.RGB(0x35, 0x6b, 0xa8), // blue
	canvas.RGB(0xe8, 0x7d, 0x26), // orange
	canvas.RGB(0x3f, 0x9e, 0x4d), // green
	canvas.RGB(0xcc, 0x3d, 0x3d), // red
	canvas.RGB(0x8a, 0x5c, 0xb8), // purple
	canvas.RGB(0x8c, 0x56, 0x43), // brown
	canvas.RGB(0x5a, 0xa7, 0xb5), // teal
}

// PaletteColor returns the i-th palette entry, cycling past the end so any
// series index maps to a color.
func PaletteColor(i int) canvas.Color {
	if i < 0 {
		i = -i
	}
	return DefaultPalette[i%len(DefaultPalette)]
}

// Neutral colors shared by axes, grids and labels.
var (
	ColorAxis  = canvas.RGB(0x33, 0x33, 0x33)
	ColorGrid  = canvas.RGB(0xd9, 0xd9, 0xd9)
	ColorLabel = canvas.RGB(0x33, 0x33, 0x33)
	ColorWhite = canvas.RGB(0xff, 0xff, 0xff)
)
