package entity

import "fmt"

// BossState is the boss lifecycle
type BossState int

const (
	BossAbsent BossState = iota
	BossEntering
	BossPatrolling
	BossDestroyed
)

// String returns the string representation of the boss state
func (s BossState) String() string {
	switch s {
	case BossAbsent:
		return "Absent"
	case BossEntering:
		return "Entering"
	case BossPatrolling:
		return "Patrolling"
	case BossDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Boss is the large periodic enemy.
//
// Position, size, speed, direction and hits are meaningful while
// Entering or Patrolling. RemovalFrames is meaningful only while
// Destroyed; the boss sprite stays hidden while it counts down.
type Boss struct {
	Body
	State         BossState
	Direction     float64 // +1 right, -1 left
	Hits          int
	RemovalFrames int
}

// Spawn (re)initializes the boss at x, y in the Entering state
func (b *Boss) Spawn(x, y float64, size Size, speed float64) {
	*b = Boss{
		Body:      Body{X: x, Y: y, W: size.W, H: size.H, Speed: speed},
		State:     BossEntering,
		Direction: 1,
	}
}

// Alive reports whether the boss is on screen and can be hit
func (b *Boss) Alive() bool {
	return b.State == BossEntering || b.State == BossPatrolling
}

// Descend moves an entering boss down by step and switches to
// Patrolling once patrolY is reached. Returns true on arrival.
func (b *Boss) Descend(step, patrolY float64) bool {
	if b.State != BossEntering {
		return false
	}
	b.Y += step
	if b.Y >= patrolY {
		b.Y = patrolY
		b.FinishEntry()
		return true
	}
	return false
}

// FinishEntry switches an entering boss to Patrolling
func (b *Boss) FinishEntry() {
	if b.State == BossEntering {
		b.State = BossPatrolling
	}
}

// Patrol moves the boss sideways and bounces it off the canvas edges
func (b *Boss) Patrol(canvasW float64) {
	if b.State != BossPatrolling {
		return
	}
	b.X += b.Speed * b.Direction
	if b.X <= 0 {
		b.X = 0
		b.Direction = 1
	} else if b.X+b.W >= canvasW {
		b.X = canvasW - b.W
		b.Direction = -1
	}
}

// Hit records one hit and destroys the boss once threshold is reached.
// removalFrames is the delay before the boss is cleared. Returns true
// when this hit destroyed the boss.
func (b *Boss) Hit(threshold, removalFrames int) bool {
	if !b.Alive() {
		return false
	}
	b.Hits++
	if b.Hits < threshold {
		return false
	}
	b.Destroy(removalFrames)
	return true
}

// Destroy marks the boss as destroyed and schedules its removal
func (b *Boss) Destroy(removalFrames int) {
	b.State = BossDestroyed
	b.RemovalFrames = removalFrames
}

// TickRemoval counts down a destroyed boss and clears it at zero
func (b *Boss) TickRemoval() {
	if b.State != BossDestroyed {
		return
	}
	if b.RemovalFrames > 0 {
		b.RemovalFrames--
	}
	if b.RemovalFrames <= 0 {
		b.Remove()
	}
}

// Remove clears the boss
func (b *Boss) Remove() {
	*b = Boss{State: BossAbsent}
}

// Health returns the remaining health fraction for a hit threshold
func (b *Boss) Health(threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	h := float64(threshold-b.Hits) / float64(threshold)
	if h < 0 {
		return 0
	}
	return h
}

func (b *Boss) String() string {
	return fmt.Sprintf("boss(%s at %.0f,%.0f hits=%d)", b.State, b.X, b.Y, b.Hits)
}
