package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spacewar/internal/domain/entity"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld(createTestConfig())

	require.NotNil(t, w.Player)
	assert.Equal(t, 400.0, w.Player.X)
	assert.Equal(t, 525.0, w.Player.Y)
	assert.Empty(t, w.Bullets)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.BossBullets)
	assert.Nil(t, w.Explosion)
	assert.Equal(t, entity.BossAbsent, w.Boss.State)
	assert.Nil(t, w.ActiveBoss())
	assert.Equal(t, 0, w.Score)
	assert.Equal(t, 0, w.Missed)
	assert.Equal(t, 100, w.NextBossScore)
	assert.False(t, w.Over())
	assert.Equal(t, ReasonNone, w.Reason())
}

func TestWorld_EndKeepsFirstReason(t *testing.T) {
	w := NewWorld(createTestConfig())

	assert.True(t, w.end(ReasonHitByEnemy))
	assert.False(t, w.end(ReasonTooManyMissed))

	assert.True(t, w.Over())
	assert.Equal(t, ReasonHitByEnemy, w.Reason())
}

func TestWorld_Snapshot(t *testing.T) {
	w := NewWorld(createTestConfig())
	w.Bullets = append(w.Bullets, bulletAt(10, 20))
	w.Enemies = append(w.Enemies, enemyAt(30, 40))
	w.Score = 50
	w.Missed = 2

	snap := w.Snapshot()

	assert.Equal(t, 50, snap.Score)
	assert.Equal(t, 2, snap.Missed)
	require.Len(t, snap.Bullets, 1)
	require.Len(t, snap.Enemies, 1)
	assert.Nil(t, snap.Boss)
	assert.Nil(t, snap.Explosion)

	// Snapshot is a copy
	snap.Bullets[0].Y = 999
	snap.Player.X = 999
	assert.Equal(t, 20.0, w.Bullets[0].Y)
	assert.Equal(t, 400.0, w.Player.X)
}

func TestWorld_SnapshotBoss(t *testing.T) {
	w := NewWorld(createTestConfig())
	patrollingBoss(w, 100, 50)

	snap := w.Snapshot()
	require.NotNil(t, snap.Boss)
	assert.Equal(t, 100.0, snap.Boss.X)

	w.Boss.State = entity.BossDestroyed
	assert.Nil(t, w.Snapshot().Boss, "destroyed boss is not drawn")
}
