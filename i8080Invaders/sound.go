package i8080Invaders

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100
	toneVolume = 0.15
)

// One square-wave voice per sound bit; index 0 is port 3, index 1 is
// port 5. The ROM holds a bit high for the duration of the effect
// (the UFO bit stays up the whole flight), so a voice sounds for as
// long as its bit is set. Zero entries are unwired bits.
var toneHz = [2][8]float64{
	{55, 440, 490, 520, 0, 0, 0, 0},
	{392, 430, 470, 510, 565, 0, 0, 0},
}

// Beeper mixes the cabinet sound triggers into an oto stream. Set is
// called from the emulation thread, Read from the audio thread.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	mu     sync.Mutex
	bits   [2]uint8
	phase  [2][8]float64
}

func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	b := &Beeper{ctx: ctx}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// Set mirrors an OUT to port 3 or 5 into the mixer.
func (b *Beeper) Set(port uint8, val uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch port {
	case 3:
		b.bits[0] = val
	case 5:
		b.bits[1] = val
	}
}

func (b *Beeper) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p) / 4
	for i := 0; i < n; i++ {
		var sample float32
		for ch := 0; ch < 2; ch++ {
			for bit := 0; bit < 8; bit++ {
				hz := toneHz[ch][bit]
				if hz == 0 || b.bits[ch]&(1<<bit) == 0 {
					continue
				}
				b.phase[ch][bit] += hz / sampleRate
				b.phase[ch][bit] -= math.Floor(b.phase[ch][bit])
				if b.phase[ch][bit] < 0.5 {
					sample += toneVolume
				} else {
					sample -= toneVolume
				}
			}
		}
		u := math.Float32bits(sample)
		p[i*4] = byte(u)
		p[i*4+1] = byte(u >> 8)
		p[i*4+2] = byte(u >> 16)
		p[i*4+3] = byte(u >> 24)
	}
	return n * 4, nil
}

func (b *Beeper) Close() {
	if b.player != nil {
		b.player.Close()
	}
}
