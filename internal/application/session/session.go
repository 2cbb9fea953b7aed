// Package session runs play sessions: start, pause, game over and the
// automatic restart that follows it.
package session

import (
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/spacewar/internal/application/state"
	"github.com/younwookim/spacewar/internal/application/system"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// Result describes how a session ended
type Result struct {
	Reason system.Reason
	Score  int
	Missed int
	Frames int
	Seed   int64
}

// Session owns the world of the current play session and the state
// machine around it.
type Session struct {
	config  *config.GameConfig
	pending *config.GameConfig

	state  state.GameState
	world  *system.World
	step   *system.StepSystem
	rng    *rand.Rand
	seed   int64
	result Result

	restartFrames int
	autoRestart   bool
	nextSeed      func() int64

	// Callbacks. All are optional and run synchronously.
	OnStart    func(seed int64)
	OnGameOver func(result Result)
	OnEvent    func(ev system.Event)
}

// New creates a session. Call Start to begin playing.
func New(cfg *config.GameConfig) *Session {
	return &Session{
		config:      cfg,
		state:       state.StateTitle,
		autoRestart: true,
		nextSeed:    func() int64 { return time.Now().UnixNano() },
	}
}

// SetSeedSource replaces the seed generator used by Start
func (s *Session) SetSeedSource(fn func() int64) {
	s.nextSeed = fn
}

// SetAutoRestart controls whether a new session starts after game over
func (s *Session) SetAutoRestart(enabled bool) {
	s.autoRestart = enabled
}

// SetConfig queues a new configuration. It takes effect at the next Start
// so a running world never sees its tuning change mid-session.
func (s *Session) SetConfig(cfg *config.GameConfig) {
	s.pending = cfg
}

// Start begins a fresh session with a new seed
func (s *Session) Start() {
	s.StartWithSeed(s.nextSeed())
}

// StartWithSeed begins a fresh session whose randomness derives from seed
func (s *Session) StartWithSeed(seed int64) {
	if s.pending != nil {
		s.config = s.pending
		s.pending = nil
	}

	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.world = system.NewWorld(s.config)
	s.step = system.NewStepSystem(s.config, s.rng)
	s.step.OnEvent = s.emit
	s.restartFrames = 0
	s.state = state.StatePlaying

	log.Printf("Session started (seed: %d)", seed)
	if s.OnStart != nil {
		s.OnStart(seed)
	}
}

// Pause freezes the session. Only a playing session can be paused.
func (s *Session) Pause() {
	if s.state == state.StatePlaying {
		s.state = state.StatePaused
	}
}

// Resume continues a paused session
func (s *Session) Resume() {
	if s.state == state.StatePaused {
		s.state = state.StatePlaying
	}
}

// TogglePause switches between Playing and Paused
func (s *Session) TogglePause() {
	switch s.state {
	case state.StatePlaying:
		s.Pause()
	case state.StatePaused:
		s.Resume()
	}
}

// Continue dismisses the game-over screen and starts the next session
// without waiting for the restart delay
func (s *Session) Continue() {
	if s.state == state.StateGameOver {
		s.Start()
	}
}

// Tick advances the session by one frame
func (s *Session) Tick(input system.InputState) {
	switch s.state {
	case state.StatePlaying:
		s.step.Step(s.world, input)
		if s.world.Over() {
			s.end(s.world.Reason())
		}
	case state.StateGameOver:
		if !s.autoRestart {
			return
		}
		s.restartFrames--
		if s.restartFrames <= 0 {
			s.Start()
		}
	}
}

// end moves to GameOver and reports the result once
func (s *Session) end(reason system.Reason) {
	if s.state == state.StateGameOver {
		return
	}

	s.state = state.StateGameOver
	s.result = Result{
		Reason: reason,
		Score:  s.world.Score,
		Missed: s.world.Missed,
		Frames: s.world.Frame,
		Seed:   s.seed,
	}
	s.restartFrames = s.config.Rules.RestartDelayFrames

	log.Printf("Game over: %s (score: %d, frames: %d)", reason, s.result.Score, s.result.Frames)
	if s.OnGameOver != nil {
		s.OnGameOver(s.result)
	}
}

func (s *Session) emit(ev system.Event) {
	if s.OnEvent != nil {
		s.OnEvent(ev)
	}
}

// State returns the current session state
func (s *Session) State() state.GameState {
	return s.state
}

// Seed returns the seed of the current session
func (s *Session) Seed() int64 {
	return s.seed
}

// Result returns how the last session ended. Zero until the first game over.
func (s *Session) Result() Result {
	return s.result
}

// Config returns the configuration of the current session
func (s *Session) Config() *config.GameConfig {
	return s.config
}

// Snapshot returns a read-only view of the world for rendering.
// Before the first Start it returns the zero Snapshot.
func (s *Session) Snapshot() system.Snapshot {
	if s.world == nil {
		return system.Snapshot{}
	}
	return s.world.Snapshot()
}
