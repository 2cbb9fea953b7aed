// Package sfx synthesizes and plays the game's sound effects.
package sfx

import (
	"encoding/binary"
	"math"
)

// SampleRate is the audio context sample rate
const SampleRate = 44100

// Waveform selects the oscillator shape
type Waveform int

const (
	Sine Waveform = iota
	Square
)

// Tone describes a short synthesized effect: a frequency sweep from
// Freq to EndFreq over Duration seconds with a linear fade out.
type Tone struct {
	Wave     Waveform
	Freq     float64
	EndFreq  float64
	Duration float64
}

// Synthesize renders t as 16-bit little endian stereo PCM, the format an
// ebiten audio player consumes. amp is clamped to [0, 1].
func Synthesize(t Tone, sampleRate int, amp float64) []byte {
	amp = math.Max(0, math.Min(1, amp))
	n := int(float64(sampleRate) * t.Duration)
	if n <= 0 {
		return nil
	}

	pcm := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if t.Wave == Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}

		s := uint16(int16(v * amp * (1 - progress) * math.MaxInt16))
		binary.LittleEndian.PutUint16(pcm[4*i:], s)
		binary.LittleEndian.PutUint16(pcm[4*i+2:], s)
	}
	return pcm
}
