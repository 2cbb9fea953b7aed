// Package playing provides the main gameplay scene.
package playing

import (
	"log"
	"math/rand"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/spacewar/internal/application/replay"
	"github.com/younwookim/spacewar/internal/application/scene"
	"github.com/younwookim/spacewar/internal/application/session"
	"github.com/younwookim/spacewar/internal/application/state"
	"github.com/younwookim/spacewar/internal/application/system"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
	"github.com/younwookim/spacewar/internal/infrastructure/sfx"
)

// InputSource yields the player's input for one frame
type InputSource interface {
	GetInput() system.InputState
}

// Options configures optional Playing features
type Options struct {
	// RecordDir enables input recording; each session is saved to its own file there
	RecordDir string
	// Sounds plays effects on simulation events. Nil is silent.
	Sounds *sfx.Bank
	// Configs delivers reloaded configurations. Each applies at the next session start.
	Configs <-chan *config.GameConfig
}

// Playing is the main gameplay scene
type Playing struct {
	session     *session.Session
	input       InputSource
	justPressed scene.KeyFunc
	sounds      *sfx.Bank
	configs     <-chan *config.GameConfig

	screenW int
	screenH int

	shake *Shake
	stars []star
	fxRNG *rand.Rand // presentation only, never touches the simulation

	recorder   *replay.Recorder
	recordDir  string
	recordPath string
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, opts Options) *Playing {
	p := &Playing{
		session:     session.New(cfg),
		input:       system.NewInputSystem(system.DefaultKeyBindings()),
		justPressed: inpututil.IsKeyJustPressed,
		sounds:      opts.Sounds,
		configs:     opts.Configs,
		screenW:     cfg.Display.CanvasWidth,
		screenH:     cfg.Display.CanvasHeight,
		shake:       NewShake(cfg.Feedback.ScreenShake),
		fxRNG:       rand.New(rand.NewSource(1)),
		recordDir:   opts.RecordDir,
	}
	p.stars = newStarfield(p.fxRNG, p.screenW, p.screenH, 80)

	p.session.OnStart = p.onStart
	p.session.OnGameOver = p.onGameOver
	p.session.OnEvent = p.onEvent

	return p
}

// Session returns the session driven by this scene
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyConfigUpdates()

	if scene.AnyKey(p.justPressed, ebiten.KeyQ) {
		return nil, ebiten.Termination
	}
	if scene.AnyKey(p.justPressed, ebiten.KeyP, ebiten.KeyEscape) {
		p.session.TogglePause()
	}
	if scene.AnyKey(p.justPressed, ebiten.KeyEnter) {
		p.session.Continue()
	}

	input := system.InputState{}
	if p.session.State().Simulating() {
		input = p.input.GetInput()
		if p.recorder != nil {
			p.recorder.RecordFrame(input)
		}
	}
	p.session.Tick(input)

	if p.session.State() != state.StatePaused {
		p.shake.Update()
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) applyConfigUpdates() {
	if p.configs == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-p.configs:
			if !ok {
				p.configs = nil
				return
			}
			p.session.SetConfig(cfg)
			p.shake.Configure(cfg.Feedback.ScreenShake)
			log.Printf("Config reloaded, applies to the next session")
		default:
			return
		}
	}
}

func (p *Playing) onStart(seed int64) {
	p.shake.Reset()
	if p.recordDir != "" {
		p.recorder = replay.NewRecorder(seed)
		p.recordPath = filepath.Join(p.recordDir, replay.GenerateFilename(seed))
		log.Printf("Recording enabled: %s (seed: %d)", p.recordPath, seed)
	}
}

func (p *Playing) onGameOver(result session.Result) {
	if p.recorder != nil {
		p.recorder.Finish(result)
		p.saveRecording()
	}
}

func (p *Playing) onEvent(ev system.Event) {
	p.sounds.HandleEvent(ev)

	switch ev.Type {
	case system.EventBossDestroyed:
		p.shake.Kick(1)
	case system.EventGameOver:
		p.shake.Kick(0.5)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	if err := p.recorder.Save(p.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.recordPath, p.recorder.FrameCount())
	}
}

// OnEnter starts the first session
func (p *Playing) OnEnter() {
	if p.session.State() == state.StateTitle {
		p.session.Start()
	}
}

// OnExit saves an unfinished recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}
}
