package entity

// Explosion is a short-lived visual effect
type Explosion struct {
	X, Y   float64
	W, H   float64
	Frames int // remaining frames
}

// NewExplosion creates an explosion of the given size centered on target
func NewExplosion(target Rect, size Size, frames int) *Explosion {
	return &Explosion{
		X:      target.CenterX() - size.W/2,
		Y:      target.CenterY() - size.H/2,
		W:      size.W,
		H:      size.H,
		Frames: frames,
	}
}

// Bounds returns the explosion's box
func (e *Explosion) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Tick counts one frame down. Returns true once expired.
func (e *Explosion) Tick() bool {
	if e.Frames > 0 {
		e.Frames--
	}
	return e.Frames == 0
}
