package entity

// Bullet is a player-fired projectile travelling up
type Bullet struct {
	Body
}

// NewBullet creates a player bullet at x, y
func NewBullet(x, y float64, size Size, speed float64) *Bullet {
	return &Bullet{Body: Body{X: x, Y: y, W: size.W, H: size.H, Speed: speed}}
}

// Advance moves the bullet up one frame
func (b *Bullet) Advance() {
	b.Y -= b.Speed
}

// OnScreen reports whether the bullet is still below the top edge
func (b *Bullet) OnScreen() bool {
	return b.Y > 0
}

// BossBullet is a boss-fired projectile travelling down
type BossBullet struct {
	Body
}

// NewBossBullet creates a boss bullet at x, y
func NewBossBullet(x, y float64, size Size, speed float64) *BossBullet {
	return &BossBullet{Body: Body{X: x, Y: y, W: size.W, H: size.H, Speed: speed}}
}

// Advance moves the bullet down one frame
func (b *BossBullet) Advance() {
	b.Y += b.Speed
}

// OnScreen reports whether the bullet has not yet reached the bottom edge
func (b *BossBullet) OnScreen(canvasH float64) bool {
	return b.Y < canvasH
}
