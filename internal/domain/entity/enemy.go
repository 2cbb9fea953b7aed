package entity

// Enemy represents a regular enemy falling from the top edge
type Enemy struct {
	Body
}

// NewEnemy creates an enemy at x, y
func NewEnemy(x, y float64, size Size, speed float64) *Enemy {
	return &Enemy{Body: Body{X: x, Y: y, W: size.W, H: size.H, Speed: speed}}
}

// Advance moves the enemy down one frame
func (e *Enemy) Advance() {
	e.Y += e.Speed
}

// PassedBottom reports whether the enemy has crossed the bottom edge
func (e *Enemy) PassedBottom(canvasH float64) bool {
	return e.Y > canvasH
}
