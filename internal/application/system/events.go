package system

// EventType identifies something that happened during a step
type EventType int

const (
	EventFired EventType = iota
	EventEnemySpawned
	EventEnemyDestroyed
	EventEnemyMissed
	EventBossSpawned
	EventBossFired
	EventBossHit
	EventBossDestroyed
	EventGameOver
)

// String returns the string representation of the event type
func (t EventType) String() string {
	switch t {
	case EventFired:
		return "Fired"
	case EventEnemySpawned:
		return "EnemySpawned"
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventEnemyMissed:
		return "EnemyMissed"
	case EventBossSpawned:
		return "BossSpawned"
	case EventBossFired:
		return "BossFired"
	case EventBossHit:
		return "BossHit"
	case EventBossDestroyed:
		return "BossDestroyed"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is published by StepSystem for presentation (sound, shake).
// X, Y locate the event on the canvas where that makes sense.
type Event struct {
	Type   EventType
	X, Y   float64
	Reason Reason // set for EventGameOver
}
