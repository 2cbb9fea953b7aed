// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, playing) implements the Scene interface to
// handle its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen (title, playing)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination quits cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// KeyFunc reports whether a key was pressed this tick.
// Scenes take one so tests can drive them without a window.
type KeyFunc func(ebiten.Key) bool

// AnyKey reports whether any of keys is pressed according to fn
func AnyKey(fn KeyFunc, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}
