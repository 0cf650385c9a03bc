package geometry

// UnitPoint names a position inside a rectangle in unit coordinates:
// (0,0) is the top-left corner and (1,1) the bottom-right.
type UnitPoint struct {
	U float64
	V float64
}

var (
	TopLeft     = UnitPoint{0, 0}
	Top         = UnitPoint{0.5, 0}
	TopRight    = UnitPoint{1, 0}
	Left        = UnitPoint{0, 0.5}
	Center      = UnitPoint{0.5, 0.5}
	Right       = UnitPoint{1, 0.5}
	BottomLeft  = UnitPoint{0, 1}
	Bottom      = UnitPoint{0.5, 1}
	BottomRight = UnitPoint{1, 1}
)

// Resolve maps the unit point into r.
func (u UnitPoint) Resolve(r Rect) Point {
	return Point{
		X: r.Left + u.U*(r.Right-r.Left),
		Y: r.Top + u.V*(r.Bottom-r.Top),
	}
}
