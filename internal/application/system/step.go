package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/spacewar/internal/domain/entity"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// StepSystem advances a World by one frame
type StepSystem struct {
	config  *config.GameConfig
	spawner *Spawner
	canvasW float64
	canvasH float64

	// Event callback. Called synchronously inside Step.
	OnEvent func(ev Event)
}

// NewStepSystem creates a step system drawing randomness from rng
func NewStepSystem(cfg *config.GameConfig, rng *rand.Rand) *StepSystem {
	return &StepSystem{
		config:  cfg,
		spawner: NewSpawner(cfg, rng),
		canvasW: float64(cfg.Display.CanvasWidth),
		canvasH: float64(cfg.Display.CanvasHeight),
	}
}

// Step runs one frame. The phase order matters: later phases read what
// earlier ones changed, e.g. an enemy shot down this frame is never
// counted as missed. Once the world ends the rest of the frame is
// skipped, and Step on an ended world does nothing.
func (s *StepSystem) Step(w *World, input InputState) {
	if w.Over() {
		return
	}
	w.Frame++

	w.BackgroundY = math.Mod(w.BackgroundY+1, s.canvasH)

	dx, dy := input.Axes()
	w.Player.Move(dx, dy, s.canvasW, s.canvasH)

	if input.Fire {
		s.fire(w)
	}
	s.updateBullets(w)

	if e := s.spawner.SpawnEnemy(w); e != nil {
		s.emit(Event{Type: EventEnemySpawned, X: e.X, Y: e.Y})
	}
	s.updateEnemies(w)
	if w.Over() {
		return
	}

	// A single threshold check per frame, after all kills are scored
	if s.spawner.SpawnBoss(w) {
		s.emit(Event{Type: EventBossSpawned, X: w.Boss.X, Y: w.Boss.Y})
	}

	s.updateBoss(w)
	s.updateBossBullets(w)
	if w.Over() {
		return
	}

	destroyed := s.resolveBossHits(w)
	if w.Boss.Alive() && Collide(&w.Boss, w.Player) {
		s.end(w, ReasonHitByBoss)
		return
	}

	// Countdowns started this frame begin ticking next frame
	if !destroyed {
		s.tickEffects(w)
	}
}

// fire adds a player bullet unless the last one is still close to the ship
func (s *StepSystem) fire(w *World) {
	bc := s.config.Bullet
	if n := len(w.Bullets); n > 0 && w.Bullets[n-1].Y >= w.Player.Y-bc.MinGap {
		return
	}

	b := entity.NewBullet(w.Player.MuzzleX(bc.Size.Width), w.Player.Y, entity.Size{W: bc.Size.Width, H: bc.Size.Height}, bc.Speed)
	w.Bullets = append(w.Bullets, b)
	s.emit(Event{Type: EventFired, X: b.X, Y: b.Y})
}

func (s *StepSystem) updateBullets(w *World) {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.Advance()
		if b.OnScreen() {
			kept = append(kept, b)
		}
	}
	clearTail(w.Bullets, len(kept))
	w.Bullets = kept
}

func (s *StepSystem) updateEnemies(w *World) {
	kept := w.Enemies[:0]
	n := len(w.Enemies)

	for i := 0; i < n; i++ {
		e := w.Enemies[i]
		e.Advance()

		if s.shootDown(w, e) {
			continue
		}

		if Collide(e, w.Player) {
			s.end(w, ReasonHitByEnemy)
			kept = append(kept, w.Enemies[i+1:n]...)
			break
		}

		if e.PassedBottom(s.canvasH) {
			w.Missed++
			s.emit(Event{Type: EventEnemyMissed, X: e.X, Y: e.Y})
			if w.Missed >= s.config.Rules.MaxMissed {
				s.end(w, ReasonTooManyMissed)
				kept = append(kept, w.Enemies[i+1:n]...)
				break
			}
			continue
		}

		kept = append(kept, e)
	}

	clearTail(w.Enemies, len(kept))
	w.Enemies = kept
}

// shootDown checks e against live bullets, newest first. On a hit both
// are removed and the kill is scored.
func (s *StepSystem) shootDown(w *World, e *entity.Enemy) bool {
	for j := len(w.Bullets) - 1; j >= 0; j-- {
		if !Collide(w.Bullets[j], e) {
			continue
		}
		w.Bullets = removeAt(w.Bullets, j)
		w.Score += s.config.Rules.ScorePerEnemy
		s.emit(Event{Type: EventEnemyDestroyed, X: e.X, Y: e.Y})
		return true
	}
	return false
}

func (s *StepSystem) updateBoss(w *World) {
	boss := &w.Boss
	switch boss.State {
	case entity.BossEntering:
		// Entry takes the whole frame: no patrol or fire until arrived
		boss.Descend(s.config.Boss.EntrySpeed, s.config.Boss.PatrolY)
	case entity.BossPatrolling:
		boss.Patrol(s.canvasW)
		if b := s.spawner.FireBoss(w); b != nil {
			s.emit(Event{Type: EventBossFired, X: b.X, Y: b.Y})
		}
	}
}

// updateBossBullets runs whether or not the boss is still alive, so
// shots fired before a kill keep falling.
func (s *StepSystem) updateBossBullets(w *World) {
	kept := w.BossBullets[:0]
	n := len(w.BossBullets)

	for i := 0; i < n; i++ {
		b := w.BossBullets[i]
		b.Advance()
		if Collide(b, w.Player) {
			s.end(w, ReasonHitByBossShot)
			kept = append(kept, w.BossBullets[i+1:n]...)
			break
		}
		if b.OnScreen(s.canvasH) {
			kept = append(kept, b)
		}
	}

	clearTail(w.BossBullets, len(kept))
	w.BossBullets = kept
}

// resolveBossHits removes every player bullet touching the boss and
// counts it as a hit until the boss is destroyed. Bullets still touching
// the wreck that frame are consumed without counting. Returns true if the
// boss was destroyed this frame.
func (s *StepSystem) resolveBossHits(w *World) bool {
	if !w.Boss.Alive() {
		return false
	}

	bc := s.config.Boss
	for j := len(w.Bullets) - 1; j >= 0; j-- {
		if !Collide(w.Bullets[j], &w.Boss) {
			continue
		}
		w.Bullets = removeAt(w.Bullets, j)
		s.emit(Event{Type: EventBossHit, X: w.Boss.X, Y: w.Boss.Y})

		if w.Boss.Hit(bc.HitsToDestroy, bc.RemovalFrames) {
			// The kill itself is worth no score
			ec := s.config.Explosion
			w.Explosion = entity.NewExplosion(w.Boss.Bounds(), entity.Size{W: ec.Size.Width, H: ec.Size.Height}, ec.Frames)
			s.emit(Event{Type: EventBossDestroyed, X: w.Explosion.X, Y: w.Explosion.Y})

			wreck := w.Boss.Bounds()
			for k := j - 1; k >= 0; k-- {
				if Overlaps(w.Bullets[k].Bounds(), wreck) {
					w.Bullets = removeAt(w.Bullets, k)
				}
			}
			return true
		}
	}
	return false
}

func (s *StepSystem) tickEffects(w *World) {
	if w.Explosion != nil && w.Explosion.Tick() {
		w.Explosion = nil
	}
	w.Boss.TickRemoval()
}

func (s *StepSystem) end(w *World, reason Reason) {
	if w.end(reason) {
		s.emit(Event{Type: EventGameOver, X: w.Player.X, Y: w.Player.Y, Reason: reason})
	}
}

func (s *StepSystem) emit(ev Event) {
	if s.OnEvent != nil {
		s.OnEvent(ev)
	}
}

func removeAt[T any](items []*T, i int) []*T {
	copy(items[i:], items[i+1:])
	items[len(items)-1] = nil
	return items[:len(items)-1]
}

// clearTail nils out pointers past n so filtered entities can be collected
func clearTail[T any](items []*T, n int) {
	for i := n; i < len(items); i++ {
		items[i] = nil
	}
}
