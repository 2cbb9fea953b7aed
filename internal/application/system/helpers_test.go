package system

import (
	"math/rand"

	"github.com/younwookim/spacewar/internal/domain/entity"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// createTestConfig returns the default tuning with all randomness switched off
func createTestConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Enemy.SpawnChance = 0
	cfg.Boss.FireChance = 0
	return cfg
}

// eventLog collects events published by a step system
type eventLog []Event

func (l *eventLog) record(ev Event) { *l = append(*l, ev) }

func (l eventLog) count(t EventType) int {
	n := 0
	for _, ev := range l {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newTestStep(cfg *config.GameConfig) (*StepSystem, *World, *eventLog) {
	events := &eventLog{}
	step := NewStepSystem(cfg, testRNG())
	step.OnEvent = events.record
	return step, NewWorld(cfg), events
}

func enemyAt(x, y float64) *entity.Enemy {
	return entity.NewEnemy(x, y, entity.Size{W: 50, H: 50}, 2)
}

func bulletAt(x, y float64) *entity.Bullet {
	return entity.NewBullet(x, y, entity.Size{W: 20, H: 40}, 7)
}

func bossBulletAt(x, y float64) *entity.BossBullet {
	return entity.NewBossBullet(x, y, entity.Size{W: 40, H: 80}, 5)
}

// patrollingBoss places a patrolling boss at x, y
func patrollingBoss(w *World, x, y float64) {
	w.Boss.Spawn(x, y, entity.Size{W: 150, H: 120}, 3)
	w.Boss.State = entity.BossPatrolling
}
