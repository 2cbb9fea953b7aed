package system

import (
	"math/rand"

	"github.com/younwookim/spacewar/internal/domain/entity"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// Spawner creates enemies, the boss and boss bullets.
// All randomness comes from the injected RNG so a seed replays a session.
type Spawner struct {
	config *config.GameConfig
	rng    *rand.Rand
}

// NewSpawner creates a spawner
func NewSpawner(cfg *config.GameConfig, rng *rand.Rand) *Spawner {
	return &Spawner{config: cfg, rng: rng}
}

// SpawnEnemy rolls the per-frame spawn chance and, while no boss is alive,
// adds one enemy at a random x above the top edge.
func (s *Spawner) SpawnEnemy(w *World) *entity.Enemy {
	if w.Boss.Alive() {
		return nil
	}
	if s.rng.Float64() >= s.config.Enemy.SpawnChance {
		return nil
	}

	ec := s.config.Enemy
	x := s.rng.Float64() * (float64(s.config.Display.CanvasWidth) - ec.Size.Width)
	enemy := entity.NewEnemy(x, ec.SpawnY, entity.Size{W: ec.Size.Width, H: ec.Size.Height}, ec.Speed)
	w.Enemies = append(w.Enemies, enemy)
	return enemy
}

// SpawnBoss brings in a new boss once the score reaches the next threshold
// and no boss is alive. Returns true if a boss was spawned.
func (s *Spawner) SpawnBoss(w *World) bool {
	if w.Score < w.NextBossScore || w.Boss.Alive() {
		return false
	}

	bc := s.config.Boss
	x := s.rng.Float64() * (float64(s.config.Display.CanvasWidth) - bc.Size.Width)
	w.Boss.Spawn(x, bc.SpawnY, entity.Size{W: bc.Size.Width, H: bc.Size.Height}, bc.Speed)
	w.BossBullets = w.BossBullets[:0]
	w.NextBossScore += bc.ScoreStep
	return true
}

// FireBoss rolls the boss fire chance and, for a patrolling boss, adds a
// bullet centered under it.
func (s *Spawner) FireBoss(w *World) *entity.BossBullet {
	if w.Boss.State != entity.BossPatrolling {
		return nil
	}
	if s.rng.Float64() >= s.config.Boss.FireChance {
		return nil
	}

	bb := s.config.BossBullet
	boss := w.Boss.Bounds()
	bullet := entity.NewBossBullet(
		boss.CenterX()-bb.Size.Width/2,
		boss.Bottom(),
		entity.Size{W: bb.Size.Width, H: bb.Size.Height},
		bb.Speed,
	)
	w.BossBullets = append(w.BossBullets, bullet)
	return bullet
}
