package core

// Align controls horizontal text placement relative to the x coordinate
// passed to FillText.
type Align int

const (
	AlignLeft   Align = iota // x is the left edge of the text
	AlignCenter              // x is the horizontal center of the text
)

// TextStyle describes how FillText renders a string.
// Character-cell surfaces ignore Font and Size.
type TextStyle struct {
	Font  string  // Font family, e.g. "Arial"
	Size  float64 // Font size in world units
	Align Align
}

// Surface is a fixed-size 2D immediate-mode drawing target.
// Coordinates are in world units with the origin at the top-left corner.
// Games draw onto a Surface every frame; they never own its creation or sizing.
type Surface interface {
	// Width returns the surface width in world units.
	Width() float64

	// Height returns the surface height in world units.
	Height() float64

	// ClearRect erases the given rectangle back to the background.
	ClearRect(x, y, w, h float64)

	// FillRect fills an axis-aligned rectangle with a solid color.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// FillText draws text with its baseline at y.
	FillText(text string, x, y float64, style TextStyle, c Color)
}
