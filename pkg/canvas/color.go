package canvas

import "fmt"

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B uint8
	A       float64 // 0 (transparent) to 1 (opaque)
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA builds a color with explicit alpha in [0,1].
func RGBA(r, g, b uint8, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex returns the #rrggbb form, ignoring alpha.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// LineCap controls stroke endpoint rendering.
type LineCap string

const (
	CapButt   LineCap = "butt"
	CapRound  LineCap = "round"
	CapSquare LineCap = "square"
)

// LineJoin controls stroke corner rendering.
type LineJoin string

const (
	JoinMiter LineJoin = "miter"
	JoinRound LineJoin = "round"
	JoinBevel LineJoin = "bevel"
)

// Stroke describes how a path outline is drawn. A nil *Stroke on an element
// means the outline is not drawn at all.
type Stroke struct {
	Color Color
	Width float64
	Dash  []float64 // empty means solid
	Cap   LineCap   // empty means butt
	Join  LineJoin  // empty means miter
}

// SolidStroke builds a plain stroke with the given color and width.
func SolidStroke(c Color, width float64) *Stroke {
	return &Stroke{Color: c, Width: width}
}
