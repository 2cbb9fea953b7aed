package sfx

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/spacewar/internal/application/system"
)

// Sound names one effect in the bank
type Sound int

const (
	SoundFire Sound = iota
	SoundEnemyDown
	SoundBossHit
	SoundBossDown
	SoundGameOver
)

// Tones are the effects the bank synthesizes at startup
var Tones = map[Sound]Tone{
	SoundFire:      {Wave: Square, Freq: 950, EndFreq: 700, Duration: 0.06},
	SoundEnemyDown: {Wave: Square, Freq: 300, EndFreq: 120, Duration: 0.12},
	SoundBossHit:   {Wave: Sine, Freq: 520, EndFreq: 480, Duration: 0.05},
	SoundBossDown:  {Wave: Square, Freq: 180, EndFreq: 40, Duration: 0.6},
	SoundGameOver:  {Wave: Sine, Freq: 440, EndFreq: 110, Duration: 0.8},
}

// ForEvent maps a simulation event to the sound it triggers
func ForEvent(t system.EventType) (Sound, bool) {
	switch t {
	case system.EventFired:
		return SoundFire, true
	case system.EventEnemyDestroyed:
		return SoundEnemyDown, true
	case system.EventBossHit:
		return SoundBossHit, true
	case system.EventBossDestroyed:
		return SoundBossDown, true
	case system.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// Bank holds one ready player per sound. A nil Bank is silent.
type Bank struct {
	players map[Sound]*audio.Player
}

// NewBank synthesizes every tone into a player on ctx
func NewBank(ctx *audio.Context, volume float64) *Bank {
	b := &Bank{players: make(map[Sound]*audio.Player, len(Tones))}
	for s, t := range Tones {
		p := ctx.NewPlayerFromBytes(Synthesize(t, ctx.SampleRate(), 0.8))
		p.SetVolume(volume)
		b.players[s] = p
	}
	return b
}

// Play restarts the sound from the beginning
func (b *Bank) Play(s Sound) {
	if b == nil {
		return
	}
	p, ok := b.players[s]
	if !ok {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// HandleEvent plays the sound for ev, if any
func (b *Bank) HandleEvent(ev system.Event) {
	if s, ok := ForEvent(ev.Type); ok {
		b.Play(s)
	}
}
