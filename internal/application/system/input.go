package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputState holds the named input flags read once per frame
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
}

// Axes converts the direction flags into -1/0/+1 steps.
// Opposite directions held together cancel out.
func (in InputState) Axes() (dx, dy int) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// KeyBindings maps each input flag to the keys that set it
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Fire  []ebiten.Key
}

// DefaultKeyBindings returns arrow keys + Space, with WASD as alternates
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Fire:  []ebiten.Key{ebiten.KeySpace},
	}
}

// InputSystem reads the keyboard into an InputState
type InputSystem struct {
	bindings KeyBindings
	pressed  func(ebiten.Key) bool
}

// NewInputSystem creates an input system reading ebiten's keyboard
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings, pressed: ebiten.IsKeyPressed}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  s.any(s.bindings.Left),
		Right: s.any(s.bindings.Right),
		Up:    s.any(s.bindings.Up),
		Down:  s.any(s.bindings.Down),
		Fire:  s.any(s.bindings.Fire),
	}
}

func (s *InputSystem) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.pressed(k) {
			return true
		}
	}
	return false
}
