package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) for any config that cannot drive a session
var ErrInvalid = errors.New("invalid config")

// Validate checks that every size is positive, every chance is a
// probability and every counter limit is usable.
func (c *GameConfig) Validate() error {
	if c.Display.CanvasWidth <= 0 || c.Display.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Display.CanvasWidth, c.Display.CanvasHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalid, c.Display.Framerate)
	}

	sizes := map[string]SizeConfig{
		"player":     c.Player.Size,
		"bullet":     c.Bullet.Size,
		"enemy":      c.Enemy.Size,
		"boss":       c.Boss.Size,
		"bossBullet": c.BossBullet.Size,
		"explosion":  c.Explosion.Size,
	}
	for name, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s size %gx%g", ErrInvalid, name, s.Width, s.Height)
		}
	}
	w, h := float64(c.Display.CanvasWidth), float64(c.Display.CanvasHeight)
	if c.Player.Size.Width > w || c.Player.Size.Height > h {
		return fmt.Errorf("%w: player larger than canvas", ErrInvalid)
	}
	// Spawn x is drawn from [0, canvasWidth - width]
	if c.Enemy.Size.Width > w {
		return fmt.Errorf("%w: enemy wider than canvas", ErrInvalid)
	}
	if c.Boss.Size.Width > w {
		return fmt.Errorf("%w: boss wider than canvas", ErrInvalid)
	}

	chances := map[string]float64{
		"enemy.spawnChance": c.Enemy.SpawnChance,
		"boss.fireChance":   c.Boss.FireChance,
	}
	for name, p := range chances {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %g not in [0,1]", ErrInvalid, name, p)
		}
	}

	if c.Boss.HitsToDestroy <= 0 {
		return fmt.Errorf("%w: boss.hitsToDestroy %d", ErrInvalid, c.Boss.HitsToDestroy)
	}
	if c.Boss.ScoreStep <= 0 {
		return fmt.Errorf("%w: boss.scoreStep %d", ErrInvalid, c.Boss.ScoreStep)
	}
	if c.Boss.EntrySpeed <= 0 {
		return fmt.Errorf("%w: boss.entrySpeed %g", ErrInvalid, c.Boss.EntrySpeed)
	}
	if c.Rules.MaxMissed <= 0 {
		return fmt.Errorf("%w: rules.maxMissed %d", ErrInvalid, c.Rules.MaxMissed)
	}
	if c.Explosion.Frames <= 0 {
		return fmt.Errorf("%w: explosion.frames %d", ErrInvalid, c.Explosion.Frames)
	}
	if c.Rules.RestartDelayFrames < 0 || c.Boss.RemovalFrames < 0 {
		return fmt.Errorf("%w: negative frame count", ErrInvalid)
	}

	return nil
}
