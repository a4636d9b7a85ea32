//go:build headless

// Package audio plays the simulated PWM output through the host's sound
// device. Headless builds have no device and NewPlayer always fails.
package audio

import (
	"errors"

	"github.com/dgrubb/HiFive1-Korobeiniki/sim"
)

// Player is unavailable in headless builds.
type Player struct{}

var _ sim.Sink = (*Player)(nil)

func NewPlayer(sampleRate int) (*Player, error) {
	return nil, errors.New("audio: built with the headless tag")
}

func (p *Player) Play(t sim.Tone) error { return nil }

func (p *Player) Close() error { return nil }
