package viewport

import (
	"math"

	"github.com/meghashyamc/orbit2d/geometry"
)

// jupiterDiameter is the reference size a sprite of DiameterScale pixels
// stands for.
const jupiterDiameter = 142984e3

// Viewport maps simulation metres to screen pixels with the star at the
// centre and +y pointing up.
type Viewport struct {
	Width         int
	Height        int
	Extent        float64 // metres from the centre to the left/right edge
	DiameterScale float64 // sprite diameter in pixels of a Jupiter-sized body
	MinDiameter   float64
}

func Default(width, height int) Viewport {
	return Viewport{
		Width:         width,
		Height:        height,
		Extent:        6e12,
		DiameterScale: 15,
		MinDiameter:   5,
	}
}

// ToScreen converts a position into pixel coordinates.
func (v Viewport) ToScreen(p geometry.Vector) (x, y float64) {
	halfW := float64(v.Width) / 2
	halfH := float64(v.Height) / 2
	x = p.X/(v.Extent/halfW) + halfW
	y = halfH - p.Y/(v.Extent/halfH)
	return x, y
}

// SpriteDiameter returns the on-screen diameter in pixels of a body with the
// given physical radius.
func (v Viewport) SpriteDiameter(radius float64) float64 {
	return math.Max(v.MinDiameter, v.DiameterScale*2*radius/jupiterDiameter)
}

// ToCell converts a position to a cell on a cols×rows character grid. Cells
// are roughly twice as tall as they are wide, so the vertical extent is
// halved. ok is false when the position falls outside the grid.
func (v Viewport) ToCell(p geometry.Vector, cols, rows int) (col, row int, ok bool) {
	halfC := float64(cols) / 2
	halfR := float64(rows) / 2
	colScale := v.Extent / halfC
	col = int(math.Floor(p.X/colScale + halfC))
	row = int(math.Floor(halfR - p.Y/(2*colScale)))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return col, row, false
	}
	return col, row, true
}
