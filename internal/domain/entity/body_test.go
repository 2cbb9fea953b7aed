package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(400, 525, Size{W: 75, H: 75}, 5)

	require.NotNil(t, p)
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 525.0, p.Y)
	assert.Equal(t, Rect{X: 400, Y: 525, W: 75, H: 75}, p.Bounds())
	assert.Equal(t, 5.0, p.Speed)
}

func TestPlayer_Move(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		dx, dy int
		wantX  float64
		wantY  float64
	}{
		{"right", 100, 100, 1, 0, 105, 100},
		{"up-left", 100, 100, -1, -1, 95, 95},
		{"clamp left", 2, 100, -1, 0, 0, 100},
		{"clamp right", 724, 100, 1, 0, 725, 100},
		{"clamp top", 100, 3, 0, -1, 100, 0},
		{"clamp bottom", 100, 524, 0, 1, 100, 525},
		{"idle", 100, 100, 0, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.x, tt.y, Size{W: 75, H: 75}, 5)
			p.Move(tt.dx, tt.dy, 800, 600)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
		})
	}
}

func TestPlayer_MuzzleX(t *testing.T) {
	p := NewPlayer(100, 500, Size{W: 75, H: 75}, 5)

	// Bullet of width 20 is centered on the ship
	assert.Equal(t, 100+75.0/2-10, p.MuzzleX(20))
}
