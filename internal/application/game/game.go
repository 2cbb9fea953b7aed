// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spacewar/internal/application/scene"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// Title is the window title
const Title = "Space War"

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	fps := display.Framerate
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initialScene,
		display: display,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// Run opens the window and blocks until the game quits.
// Quitting through ebiten.Termination is not an error.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.display.CanvasWidth*g.display.Scale, g.display.CanvasHeight*g.display.Scale)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(int(1/g.dt + 0.5))

	err := ebiten.RunGame(g)
	g.current.OnExit()
	return err
}

// Update updates the current scene and handles scene transitions.
// A scene error, including ebiten.Termination, stops the game loop.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the canvas size; ebiten scales it to the window.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.CanvasWidth, g.display.CanvasHeight
}
