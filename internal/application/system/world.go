package system

import (
	"github.com/younwookim/spacewar/internal/domain/entity"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// Reason tells why a session ended
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonHitByEnemy    Reason = "player hit by enemy"
	ReasonTooManyMissed Reason = "too many missed"
	ReasonHitByBossShot Reason = "player hit by boss bullet"
	ReasonHitByBoss     Reason = "player hit by boss"
)

// World holds the complete simulation state of one session.
// Only StepSystem mutates it during play.
type World struct {
	Player      *entity.Player
	Bullets     []*entity.Bullet
	Enemies     []*entity.Enemy
	Boss        entity.Boss
	BossBullets []*entity.BossBullet
	Explosion   *entity.Explosion

	Score         int
	Missed        int
	NextBossScore int
	BackgroundY   float64
	Frame         int

	over   bool
	reason Reason
}

// NewWorld creates the initial world for a session
func NewWorld(cfg *config.GameConfig) *World {
	canvasW := float64(cfg.Display.CanvasWidth)
	canvasH := float64(cfg.Display.CanvasHeight)
	size := entity.Size{W: cfg.Player.Size.Width, H: cfg.Player.Size.Height}

	return &World{
		Player:        entity.NewPlayer(canvasW/2, canvasH-cfg.Player.SpawnOffsetY, size, cfg.Player.Speed),
		Bullets:       make([]*entity.Bullet, 0, 16),
		Enemies:       make([]*entity.Enemy, 0, 16),
		BossBullets:   make([]*entity.BossBullet, 0, 8),
		NextBossScore: cfg.Boss.FirstScore,
	}
}

// Over reports whether the session has ended
func (w *World) Over() bool {
	return w.over
}

// Reason returns why the session ended, or ReasonNone
func (w *World) Reason() Reason {
	return w.reason
}

// end marks the world as over. Only the first reason is kept.
// Returns true if this call ended the session.
func (w *World) end(reason Reason) bool {
	if w.over {
		return false
	}
	w.over = true
	w.reason = reason
	return true
}

// ActiveBoss returns the boss while it is alive, nil otherwise
func (w *World) ActiveBoss() *entity.Boss {
	if !w.Boss.Alive() {
		return nil
	}
	return &w.Boss
}

// Snapshot is a read-only copy of the world for rendering
type Snapshot struct {
	Player      entity.Player
	Bullets     []entity.Bullet
	Enemies     []entity.Enemy
	Boss        *entity.Boss // nil unless alive
	BossBullets []entity.BossBullet
	Explosion   *entity.Explosion

	Score         int
	Missed        int
	NextBossScore int
	BackgroundY   float64
	Frame         int
	Over          bool
	Reason        Reason
}

// Snapshot copies the world's current state
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Player:        *w.Player,
		Bullets:       make([]entity.Bullet, len(w.Bullets)),
		Enemies:       make([]entity.Enemy, len(w.Enemies)),
		BossBullets:   make([]entity.BossBullet, len(w.BossBullets)),
		Score:         w.Score,
		Missed:        w.Missed,
		NextBossScore: w.NextBossScore,
		BackgroundY:   w.BackgroundY,
		Frame:         w.Frame,
		Over:          w.over,
		Reason:        w.reason,
	}
	for i, b := range w.Bullets {
		snap.Bullets[i] = *b
	}
	for i, e := range w.Enemies {
		snap.Enemies[i] = *e
	}
	for i, b := range w.BossBullets {
		snap.BossBullets[i] = *b
	}
	if boss := w.ActiveBoss(); boss != nil {
		b := *boss
		snap.Boss = &b
	}
	if w.Explosion != nil {
		e := *w.Explosion
		snap.Explosion = &e
	}
	return snap
}
