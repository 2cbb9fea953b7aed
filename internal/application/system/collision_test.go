package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/spacewar/internal/domain/entity"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b entity.Rect
		want bool
	}{
		{"identical", entity.Rect{X: 0, Y: 0, W: 50, H: 50}, entity.Rect{X: 0, Y: 0, W: 50, H: 50}, true},
		{"contained", entity.Rect{X: 0, Y: 0, W: 100, H: 100}, entity.Rect{X: 40, Y: 40, W: 20, H: 20}, true},
		{"far apart", entity.Rect{X: 0, Y: 0, W: 50, H: 50}, entity.Rect{X: 200, Y: 200, W: 50, H: 50}, false},
		// Sprites overlap by 10px but shrunken hitboxes (inset 7.5px each) do not
		{"sprite overlap only", entity.Rect{X: 0, Y: 0, W: 50, H: 50}, entity.Rect{X: 40, Y: 0, W: 50, H: 50}, false},
		// Sprites overlap by 20px; hitboxes overlap by 5px
		{"hitbox overlap", entity.Rect{X: 0, Y: 0, W: 50, H: 50}, entity.Rect{X: 30, Y: 0, W: 50, H: 50}, true},
		{"diagonal corner", entity.Rect{X: 0, Y: 0, W: 50, H: 50}, entity.Rect{X: 45, Y: 45, W: 50, H: 50}, false},
		{"vertical only", entity.Rect{X: 0, Y: 0, W: 50, H: 50}, entity.Rect{X: 0, Y: 100, W: 50, H: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	randRect := func() entity.Rect {
		return entity.Rect{
			X: rng.Float64()*200 - 50,
			Y: rng.Float64()*200 - 50,
			W: rng.Float64()*100 + 1,
			H: rng.Float64()*100 + 1,
		}
	}

	for i := 0; i < 1000; i++ {
		a, b := randRect(), randRect()
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%v b=%v", a, b)
	}
}

func TestOverlapsWithShrink_NoShrink(t *testing.T) {
	a := entity.Rect{X: 0, Y: 0, W: 50, H: 50}
	b := entity.Rect{X: 40, Y: 0, W: 50, H: 50}

	assert.True(t, OverlapsWithShrink(a, b, 1.0))
	assert.False(t, Overlaps(a, b))
}

func TestCollide(t *testing.T) {
	player := entity.NewPlayer(100, 100, entity.Size{W: 75, H: 75}, 5)
	enemy := entity.NewEnemy(110, 110, entity.Size{W: 50, H: 50}, 2)
	far := entity.NewEnemy(500, 500, entity.Size{W: 50, H: 50}, 2)

	assert.True(t, Collide(player, enemy))
	assert.False(t, Collide(player, far))
}
