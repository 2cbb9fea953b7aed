package entity

// Rect is an axis-aligned box in canvas pixels. Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Shrink returns the rect scaled by factor around its center
func (r Rect) Shrink(factor float64) Rect {
	return Rect{
		X: r.X + r.W*(1-factor)/2,
		Y: r.Y + r.H*(1-factor)/2,
		W: r.W * factor,
		H: r.H * factor,
	}
}

// Bounded is anything that occupies a box on the canvas
type Bounded interface {
	Bounds() Rect
}

// Size holds fixed entity dimensions
type Size struct {
	W, H float64
}
