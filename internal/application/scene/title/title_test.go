package title

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spacewar/internal/application/scene"
)

type stubScene struct{}

func (stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image) {}
func (stubScene) OnEnter() {}
func (stubScene) OnExit() {}

func keys(pressed ...ebiten.Key) scene.KeyFunc {
	return func(k ebiten.Key) bool {
		for _, p := range pressed {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestTitle_WaitsForStart(t *testing.T) {
	built := 0
	tt := New(800, 600, func() scene.Scene {
		built++
		return stubScene{}
	})
	tt.justPressed = keys()

	for i := 0; i < 10; i++ {
		next, err := tt.Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
	}
	assert.Equal(t, 0, built)
}

func TestTitle_StartKeys(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace} {
		t.Run(k.String(), func(t *testing.T) {
			tt := New(800, 600, func() scene.Scene { return stubScene{} })
			tt.justPressed = keys(k)

			next, err := tt.Update(1.0 / 60)
			require.NoError(t, err)
			assert.Equal(t, stubScene{}, next)
		})
	}
}

func TestTitle_Quit(t *testing.T) {
	tt := New(800, 600, func() scene.Scene { return stubScene{} })
	tt.justPressed = keys(ebiten.KeyQ)

	_, err := tt.Update(1.0 / 60)
	assert.ErrorIs(t, err, ebiten.Termination)
}
