package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
	}{
		{"zero canvas", func(c *GameConfig) { c.Display.CanvasWidth = 0 }},
		{"zero framerate", func(c *GameConfig) { c.Display.Framerate = 0 }},
		{"negative enemy size", func(c *GameConfig) { c.Enemy.Size.Width = -1 }},
		{"zero boss bullet height", func(c *GameConfig) { c.BossBullet.Size.Height = 0 }},
		{"player wider than canvas", func(c *GameConfig) { c.Player.Size.Width = 900 }},
		{"spawn chance above one", func(c *GameConfig) { c.Enemy.SpawnChance = 1.1 }},
		{"negative fire chance", func(c *GameConfig) { c.Boss.FireChance = -0.1 }},
		{"zero boss hits", func(c *GameConfig) { c.Boss.HitsToDestroy = 0 }},
		{"zero score step", func(c *GameConfig) { c.Boss.ScoreStep = 0 }},
		{"zero entry speed", func(c *GameConfig) { c.Boss.EntrySpeed = 0 }},
		{"zero miss cap", func(c *GameConfig) { c.Rules.MaxMissed = 0 }},
		{"negative explosion frames", func(c *GameConfig) { c.Explosion.Frames = -1 }},
		{"zero explosion frames", func(c *GameConfig) { c.Explosion.Frames = 0 }},
		{"enemy wider than canvas", func(c *GameConfig) { c.Enemy.Size.Width = 801 }},
		{"boss wider than canvas", func(c *GameConfig) { c.Boss.Size.Width = 801 }},
		{"negative restart delay", func(c *GameConfig) { c.Rules.RestartDelayFrames = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_BoundaryChancesAllowed(t *testing.T) {
	cfg := Default()
	cfg.Enemy.SpawnChance = 0
	cfg.Boss.FireChance = 1

	assert.NoError(t, cfg.Validate())
}

func TestValidate_CanvasWideEntitiesAllowed(t *testing.T) {
	cfg := Default()
	cfg.Enemy.Size.Width = 800
	cfg.Boss.Size.Width = 800
	cfg.Rules.RestartDelayFrames = 0

	assert.NoError(t, cfg.Validate())
}
