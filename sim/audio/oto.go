//go:build !headless

// Package audio plays the simulated PWM output through the host's sound
// device.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/dgrubb/HiFive1-Korobeiniki/sim"
)

// Player is a sim.Sink that renders tones with oto.
type Player struct {
	wave   *sim.Square
	ctx    *oto.Context
	player *oto.Player

	samples []float32
	mutex   sync.Mutex
}

var _ sim.Sink = (*Player)(nil)

// NewPlayer opens the default output device and starts a silent stream.
func NewPlayer(sampleRate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   40 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	<-ready

	p := &Player{
		wave:    sim.NewSquare(sampleRate, 0.2),
		ctx:     ctx,
		samples: make([]float32, 1024),
	}
	p.player = ctx.NewPlayer(p)
	p.player.Play()
	return p, nil
}

// Read renders float32 little-endian samples for oto.
func (p *Player) Read(b []byte) (int, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	n := len(b) / 4
	if len(p.samples) < n {
		p.samples = make([]float32, n)
	}
	samples := p.samples[:n]
	p.wave.Fill(samples)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return n * 4, nil
}

func (p *Player) Play(t sim.Tone) error {
	return p.wave.Play(t)
}

// Close silences the stream and releases the device player.
func (p *Player) Close() error {
	p.wave.Close()
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("audio: close: %w", err)
	}
	return nil
}
