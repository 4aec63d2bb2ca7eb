package assets

import (
	"bytes"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the PCM sample rate shared by every synthesized sound.
const SampleRate = 44100

type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
)

// Sound is a short fire-and-forget effect. A nil Sound is silent, which lets
// game logic run headless in tests.
type Sound struct {
	ctx  *audio.Context
	data []byte
}

// Play starts a one-shot playback of the effect.
func (s *Sound) Play() {
	if s == nil || s.ctx == nil {
		return
	}
	audio.NewPlayerFromBytes(s.ctx, s.data).Play()
}

// Music is the looping background track. A nil Music is silent.
type Music struct {
	player *audio.Player
}

// Play restarts the track from the beginning.
func (m *Music) Play() {
	if m == nil || m.player == nil {
		return
	}
	m.player.Rewind()
	m.player.Play()
}

// Stop pauses the track.
func (m *Music) Stop() {
	if m == nil || m.player == nil {
		return
	}
	m.player.Pause()
}

// tone synthesizes a single note as 16-bit little-endian stereo PCM, shaped
// with a short attack and release envelope so notes do not click.
func tone(freq, duration, volume float64, shape waveShape) []byte {
	n := int(float64(SampleRate) * duration)
	out := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * freq * float64(i) / SampleRate
		v := math.Sin(phase)
		if shape == waveSquare {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		out = appendSample(out, v*volume*envelope(i, n))
	}
	return out
}

// sweep synthesizes a note whose frequency glides from one pitch to another.
func sweep(fromFreq, toFreq, duration, volume float64, shape waveShape) []byte {
	n := int(float64(SampleRate) * duration)
	out := make([]byte, 0, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := fromFreq + (toFreq-fromFreq)*t
		phase += 2 * math.Pi * freq / SampleRate
		v := math.Sin(phase)
		if shape == waveSquare {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		out = appendSample(out, v*volume*envelope(i, n))
	}
	return out
}

// noise synthesizes a white-noise burst, used for the bullet impact.
func noise(duration, volume float64) []byte {
	n := int(float64(SampleRate) * duration)
	out := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		v := rand.Float64()*2 - 1
		out = appendSample(out, v*volume*envelope(i, n))
	}
	return out
}

// envelope returns the amplitude factor for sample i of n: linear attack over
// the first 0.5% and release over the final 25% of the note.
func envelope(i, n int) float64 {
	attack := n / 200
	if attack < 1 {
		attack = 1
	}
	release := n / 4
	if i < attack {
		return float64(i) / float64(attack)
	}
	if i >= n-release {
		return float64(n-i) / float64(release)
	}
	return 1
}

func appendSample(buf []byte, v float64) []byte {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s := int16(v * 32767)
	lo, hi := byte(s), byte(s>>8)
	return append(buf, lo, hi, lo, hi)
}

// synthesizeSounds builds every sound effect and the looping music track.
func synthesizeSounds(ctx *audio.Context) (shoot, impact, gameOver *Sound, music *Music, err error) {
	shoot = &Sound{ctx: ctx, data: sweep(880, 220, 0.12, 0.35, waveSquare)}
	impact = &Sound{ctx: ctx, data: noise(0.15, 0.5)}

	var jingle []byte
	for _, freq := range []float64{392.00, 311.13, 261.63, 196.00} {
		jingle = append(jingle, tone(freq, 0.28, 0.45, waveSine)...)
	}
	gameOver = &Sound{ctx: ctx, data: jingle}

	var track []byte
	for _, freq := range []float64{523.25, 587.33, 659.25, 523.25, 659.25, 783.99, 659.25, 587.33} {
		track = append(track, tone(freq, 0.25, 0.18, waveSine)...)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(track), int64(len(track)))
	player, err := audio.NewPlayer(ctx, loop)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	music = &Music{player: player}

	return shoot, impact, gameOver, music, nil
}
