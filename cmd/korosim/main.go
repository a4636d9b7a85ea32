// Command korosim plays the HiFive1 Korobeiniki firmware against a
// simulated FE310, printing the firmware's serial console to stdout.
//
//	korosim -loops 1 -audio
//	korosim -speed 0 -loops 3 -midi out.mid.raw
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/denizsincar29/goerror"

	"github.com/dgrubb/HiFive1-Korobeiniki/sim"
	"github.com/dgrubb/HiFive1-Korobeiniki/sim/audio"
)

func main() {
	loops := flag.Uint64("loops", 0, "passes of the score to play, 0 for forever")
	speed := flag.Float64("speed", 1, "simulated time per wall-clock second, 0 to run unpaced")
	latency := flag.Uint64("latency", 0, "interrupt entry latency in RTC ticks")
	withAudio := flag.Bool("audio", false, "play the PWM output through the sound device")
	rate := flag.Int("rate", 44100, "audio sample rate")
	midiPath := flag.String("midi", "", "write the note order as a raw MIDI stream (no timing) to this file")
	verbose := flag.Bool("v", false, "log every note")
	flag.Parse()

	// logs go to stderr so stdout carries only the serial console
	logger := NewLogger(os.Stderr, *verbose)
	e := goerror.NewError(logger)

	var sinks []sim.Sink
	if *withAudio {
		if *speed != 1 {
			logger.Warn("audio pitch is unaffected by -speed, only note lengths are")
		}
		p, err := audio.NewPlayer(*rate)
		e.Must(err, "Failed to open audio output")
		sinks = append(sinks, p)
	}
	if *midiPath != "" {
		f, err := os.Create(*midiPath)
		e.Must(err, "Failed to create MIDI file")
		defer f.Close()
		sinks = append(sinks, sim.NewMIDIMirror(f))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := sim.NewRunner(sim.Config{
		Speed:   *speed,
		Latency: *latency,
		Loops:   *loops,
		Console: os.Stdout,
		Logger:  logger,
	}, sinks...)
	err := r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted", "notes", r.Scheduler().Fired(), "loops", r.Scheduler().Loops())
		return
	}
	e.Must(err, "Simulation failed")
}
