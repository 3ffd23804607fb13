package core

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Glyphs used when rasterizing shapes into character cells.
const (
	GlyphFill   = '█'
	GlyphCircle = '●'
)

// Viewport adapts a character Screen to the Surface interface.
// World coordinates are scaled independently on each axis so that the
// whole world rectangle maps onto the whole screen.
type Viewport struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewViewport creates a viewport presenting a worldW x worldH surface on s.
func NewViewport(s *Screen, worldW, worldH float64) *Viewport {
	return &Viewport{screen: s, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying character buffer.
func (v *Viewport) Screen() *Screen {
	return v.screen
}

// Width returns the world width.
func (v *Viewport) Width() float64 {
	return v.worldW
}

// Height returns the world height.
func (v *Viewport) Height() float64 {
	return v.worldH
}

// scale returns cells per world unit on each axis.
// Recomputed on every call because the screen may be resized between frames.
func (v *Viewport) scale() (sx, sy float64) {
	if v.worldW <= 0 || v.worldH <= 0 {
		return 0, 0
	}
	return float64(v.screen.Width()) / v.worldW, float64(v.screen.Height()) / v.worldH
}

// span converts a world interval [pos, pos+size) to a half-open cell range.
func span(pos, size, scale float64) (int, int) {
	return int(math.Floor(pos * scale)), int(math.Ceil((pos + size) * scale))
}

// ClearRect resets every cell touched by the rectangle to a blank space.
func (v *Viewport) ClearRect(x, y, w, h float64) {
	v.fill(x, y, w, h, ' ', ColorDefault)
}

// FillRect paints every cell touched by the rectangle.
func (v *Viewport) FillRect(x, y, w, h float64, c Color) {
	v.fill(x, y, w, h, GlyphFill, c)
}

func (v *Viewport) fill(x, y, w, h float64, r rune, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := v.scale()
	x0, x1 := span(x, w, sx)
	y0, y1 := span(y, h, sy)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			v.screen.SetCell(col, row, r, c)
		}
	}
}

// FillCircle paints cells whose centers fall inside the circle.
// A circle smaller than one cell still marks the cell holding its center.
func (v *Viewport) FillCircle(cx, cy, r float64, c Color) {
	if r <= 0 {
		return
	}
	sx, sy := v.scale()
	if sx == 0 || sy == 0 {
		return
	}
	x0, x1 := span(cx-r, 2*r, sx)
	y0, y1 := span(cy-r, 2*r, sy)

	painted := false
	for row := y0; row < y1; row++ {
		wy := (float64(row) + 0.5) / sy
		for col := x0; col < x1; col++ {
			wx := (float64(col) + 0.5) / sx
			dx, dy := wx-cx, wy-cy
			if dx*dx+dy*dy <= r*r {
				v.screen.SetCell(col, row, GlyphCircle, c)
				painted = true
			}
		}
	}

	if !painted {
		v.screen.SetCell(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), GlyphCircle, c)
	}
}

// FillText writes text on the row containing the baseline y.
// The row is clamped onto the screen so text near an edge stays visible.
func (v *Viewport) FillText(text string, x, y float64, style TextStyle, c Color) {
	sx, sy := v.scale()
	row := Clamp(int(math.Floor(y*sy)), 0, v.screen.Height()-1)
	col := int(math.Floor(x * sx))
	if style.Align == AlignCenter {
		col -= runewidth.StringWidth(text) / 2
	}
	v.screen.DrawColorText(col, row, text, c)
}

var _ Surface = (*Viewport)(nil)
