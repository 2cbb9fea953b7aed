package entity

// Body is a positioned box with a scalar speed.
// Direction of travel is implied by the owning entity.
type Body struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Bounds returns the body's box
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Player represents the player ship
type Player struct {
	Body
}

// NewPlayer creates the player at x, y
func NewPlayer(x, y float64, size Size, speed float64) *Player {
	return &Player{
		Body: Body{X: x, Y: y, W: size.W, H: size.H, Speed: speed},
	}
}

// Move shifts the player by dx, dy speed units and clamps it inside
// a canvas of the given width and height.
func (p *Player) Move(dx, dy int, canvasW, canvasH float64) {
	p.X += float64(dx) * p.Speed
	p.Y += float64(dy) * p.Speed
	p.X = clamp(p.X, 0, canvasW-p.W)
	p.Y = clamp(p.Y, 0, canvasH-p.H)
}

// MuzzleX returns the x where a bullet of width w leaves the ship
func (p *Player) MuzzleX(w float64) float64 {
	return p.X + p.W/2 - w/2
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
