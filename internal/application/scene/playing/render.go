package playing

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/spacewar/internal/application/scene"
	"github.com/younwookim/spacewar/internal/application/session"
	"github.com/younwookim/spacewar/internal/application/state"
	"github.com/younwookim/spacewar/internal/application/system"
	"github.com/younwookim/spacewar/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{8, 8, 24, 255}
	colorStar       = color.RGBA{180, 180, 220, 255}
	colorPlayer     = color.RGBA{100, 200, 255, 255}
	colorBullet     = color.RGBA{255, 240, 120, 255}
	colorEnemy      = color.RGBA{220, 80, 80, 255}
	colorBoss       = color.RGBA{170, 60, 200, 255}
	colorBossBullet = color.RGBA{255, 120, 40, 255}
	colorExplosion  = color.RGBA{255, 180, 60, 255}
	colorHUD        = color.RGBA{230, 230, 230, 255}
	colorWarn       = color.RGBA{255, 90, 90, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{200, 60, 220, 255}
)

type star struct {
	x, y  float64
	size  float32
	speed float64 // parallax factor against the background offset
}

func newStarfield(rng *rand.Rand, w, h, n int) []star {
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64() * float64(w),
			y:     rng.Float64() * float64(h),
			size:  float32(1 + rng.Intn(2)),
			speed: 1 + float64(rng.Intn(3)),
		}
	}
	return stars
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.session.Snapshot()
	ox, oy := p.shake.Offset(p.fxRNG)

	p.drawStars(screen, snap.BackgroundY)
	p.drawExplosion(screen, snap.Explosion, ox, oy)
	p.drawBoss(screen, snap.Boss, ox, oy)
	for _, e := range snap.Enemies {
		fillRect(screen, e.Bounds(), ox, oy, colorEnemy)
	}
	for _, b := range snap.BossBullets {
		fillRect(screen, b.Bounds(), ox, oy, colorBossBullet)
	}
	for _, b := range snap.Bullets {
		fillRect(screen, b.Bounds(), ox, oy, colorBullet)
	}
	p.drawPlayer(screen, snap.Player, ox, oy)

	p.drawHUD(screen, snap)

	switch p.session.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawStars(screen *ebiten.Image, offset float64) {
	h := float64(p.screenH)
	for _, s := range p.stars {
		y := math.Mod(s.y+offset*s.speed, h)
		vector.FillRect(screen, float32(s.x), float32(y), s.size, s.size, colorStar, false)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, player entity.Player, ox, oy float64) {
	r := player.Bounds()
	x, y := float32(r.X+ox), float32(r.Y+oy)
	w, h := float32(r.W), float32(r.H)

	// Hull and wings
	vector.FillRect(screen, x+w*0.4, y, w*0.2, h, colorPlayer, false)
	vector.FillRect(screen, x, y+h*0.55, w, h*0.25, colorPlayer, false)
	vector.FillCircle(screen, x+w/2, y+h*0.3, w*0.12, colorHUD, true)
}

func (p *Playing) drawBoss(screen *ebiten.Image, boss *entity.Boss, ox, oy float64) {
	if boss == nil {
		return
	}
	fillRect(screen, boss.Bounds(), ox, oy, colorBoss)

	// Health bar above the boss
	threshold := p.session.Config().Boss.HitsToDestroy
	r := boss.Bounds()
	barY := float32(r.Y + oy - 10)
	vector.FillRect(screen, float32(r.X+ox), barY, float32(r.W), 5, colorHealthBG, false)
	vector.FillRect(screen, float32(r.X+ox), barY, float32(r.W*boss.Health(threshold)), 5, colorHealthFG, false)
}

func (p *Playing) drawExplosion(screen *ebiten.Image, ex *entity.Explosion, ox, oy float64) {
	if ex == nil {
		return
	}
	frames := p.session.Config().Explosion.Frames
	life := float64(ex.Frames) / float64(frames)

	r := ex.Bounds()
	cx, cy := float32(r.CenterX()+ox), float32(r.CenterY()+oy)
	radius := float32(r.W / 2 * (1.2 - 0.5*life))
	c := color.RGBA{
		uint8(float64(colorExplosion.R) * life),
		uint8(float64(colorExplosion.G) * life),
		uint8(float64(colorExplosion.B) * life),
		uint8(float64(colorExplosion.A) * life),
	}
	vector.FillCircle(screen, cx, cy, radius, c, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap system.Snapshot) {
	rules := p.session.Config().Rules
	scene.DrawText(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10, colorHUD)

	missColor := colorHUD
	if snap.Missed >= rules.MaxMissed-2 {
		missColor = colorWarn
	}
	scene.DrawText(screen, fmt.Sprintf("Missed: %d/%d", snap.Missed, rules.MaxMissed), 10, 28, missColor)

	if last := p.session.Result(); last.Frames > 0 {
		scene.DrawText(screen, lastResultLine(last), 10, 46, colorHUD)
	}
}

// lastResultLine summarizes the previous session for the HUD
func lastResultLine(r session.Result) string {
	return fmt.Sprintf("Last: %d (%s)", r.Score, r.Reason)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), color.RGBA{0, 0, 0, 128}, false)

	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	scene.DrawTextCentered(screen, "PAUSED", cx, cy-20, colorHUD)
	scene.DrawTextCentered(screen, "Press P or Esc to resume", cx, cy+4, colorHUD)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), color.RGBA{100, 0, 0, 160}, false)

	res := p.session.Result()
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	scene.DrawTextCentered(screen, "GAME OVER", cx, cy-30, colorWarn)
	scene.DrawTextCentered(screen, string(res.Reason), cx, cy-6, colorHUD)
	scene.DrawTextCentered(screen, fmt.Sprintf("Score: %d", res.Score), cx, cy+18, colorHUD)
	scene.DrawTextCentered(screen, "Press Enter to play again", cx, cy+48, colorHUD)
}

func fillRect(screen *ebiten.Image, r entity.Rect, ox, oy float64, c color.Color) {
	vector.FillRect(screen, float32(r.X+ox), float32(r.Y+oy), float32(r.W), float32(r.H), c, false)
}
