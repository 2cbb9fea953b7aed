// Package title provides the title screen.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/spacewar/internal/application/scene"
)

var (
	colorBG    = color.RGBA{8, 8, 24, 255}
	colorTitle = color.RGBA{255, 220, 80, 255}
	colorText  = color.RGBA{200, 200, 220, 255}
)

// Title waits for the player to start a game
type Title struct {
	screenW     int
	screenH     int
	next        func() scene.Scene
	justPressed scene.KeyFunc
	blink       int
}

// New creates the title scene. next builds the scene entered on start.
func New(screenW, screenH int, next func() scene.Scene) *Title {
	return &Title{
		screenW:     screenW,
		screenH:     screenH,
		next:        next,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update waits for Enter or Space (implements scene.Scene)
func (t *Title) Update(_ float64) (scene.Scene, error) {
	t.blink++

	if scene.AnyKey(t.justPressed, ebiten.KeyQ) {
		return nil, ebiten.Termination
	}
	if scene.AnyKey(t.justPressed, ebiten.KeyEnter, ebiten.KeySpace) {
		return t.next(), nil
	}
	return nil, nil
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cx := float64(t.screenW) / 2
	cy := float64(t.screenH) / 2
	scene.DrawTextCentered(screen, "S P A C E   W A R", cx, cy-80, colorTitle)
	scene.DrawTextCentered(screen, "Arrows / WASD: Move   Space: Fire", cx, cy-20, colorText)
	scene.DrawTextCentered(screen, "P / Esc: Pause   Q: Quit", cx, cy, colorText)

	if (t.blink/30)%2 == 0 {
		scene.DrawTextCentered(screen, "Press Enter to start", cx, cy+60, colorTitle)
	}
}

// OnEnter is called when entering this scene
func (t *Title) OnEnter() {
	t.blink = 0
}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}
