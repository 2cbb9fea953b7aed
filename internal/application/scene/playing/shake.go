package playing

import (
	"math/rand"

	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// Shake is a decaying screen shake
type Shake struct {
	enabled   bool
	intensity float64
	decay     float64
	amount    float64
}

// NewShake creates a screen shake from config
func NewShake(cfg config.ScreenShakeConfig) *Shake {
	s := &Shake{}
	s.Configure(cfg)
	return s
}

// Configure applies new tuning without resetting the current shake
func (s *Shake) Configure(cfg config.ScreenShakeConfig) {
	s.enabled = cfg.Enabled
	s.intensity = cfg.Intensity
	s.decay = cfg.Decay
}

// Kick starts a shake at scale times the configured intensity.
// A weaker kick never cuts a stronger running shake short.
func (s *Shake) Kick(scale float64) {
	if !s.enabled {
		return
	}
	if a := s.intensity * scale; a > s.amount {
		s.amount = a
	}
}

// Update decays the shake by one frame
func (s *Shake) Update() {
	s.amount *= s.decay
	if s.amount < 0.1 {
		s.amount = 0
	}
}

// Reset stops any running shake
func (s *Shake) Reset() {
	s.amount = 0
}

// Amount returns the current shake amplitude in pixels
func (s *Shake) Amount() float64 {
	return s.amount
}

// Offset returns a random draw offset within the current amplitude
func (s *Shake) Offset(rng *rand.Rand) (dx, dy float64) {
	if s.amount == 0 {
		return 0, 0
	}
	return s.amount * (2*rng.Float64() - 1), s.amount * (2*rng.Float64() - 1)
}
