package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dgrubb/HiFive1-Korobeiniki/melody"
	"github.com/dgrubb/HiFive1-Korobeiniki/player"
)

// Sink receives every tone the machine produces, in order.
type Sink interface {
	Play(t Tone) error
	Close() error
}

// Config controls a Runner.
type Config struct {
	// Speed scales simulated time against the wall clock. 0 runs without
	// sleeping.
	Speed float64
	// Latency is added to mtime between the comparator match and the
	// handler reading it, modelling interrupt entry.
	Latency uint64
	// Loops stops the run after this many passes of the score. 0 never
	// stops.
	Loops uint64
	// Console receives the firmware's serial output.
	Console io.Writer
	Logger  *slog.Logger
}

// Runner boots a Machine and services its timer interrupt.
type Runner struct {
	cfg     Config
	machine *Machine
	sched   *player.Scheduler
	sinks   []Sink
	logger  *slog.Logger
}

// NewRunner returns a runner over a fresh Machine.
func NewRunner(cfg Config, sinks ...Sink) *Runner {
	if cfg.Console == nil {
		cfg.Console = io.Discard
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := NewMachine()
	return &Runner{
		cfg:     cfg,
		machine: m,
		sched:   player.NewScheduler(m, player.WithConsole(cfg.Console)),
		sinks:   sinks,
		logger:  logger,
	}
}

// Machine returns the simulated hardware.
func (r *Runner) Machine() *Machine { return r.machine }

// Scheduler returns the handler being serviced.
func (r *Runner) Scheduler() *player.Scheduler { return r.sched }

// Run bootstraps the machine and fires the handler on every comparator
// match until ctx is done or the configured number of loops has played.
// After the last loop the final note is held until its deadline. Sinks are
// closed before Run returns.
func (r *Runner) Run(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, r.closeSinks())
	}()

	player.Bootstrap(r.machine, r.cfg.Console)
	r.logger.Info("bootstrap complete",
		"mtimecmp", r.machine.Mtimecmp(),
		"notes", r.sched.Score().Len())

	for {
		if r.cfg.Loops > 0 && r.sched.Loops() >= r.cfg.Loops {
			// let the last note sound until its deadline
			if err := r.wait(ctx); err != nil {
				return err
			}
			r.machine.Advance(r.machine.UntilMatch())
			r.logger.Info("finished", "loops", r.sched.Loops(), "notes", r.sched.Fired())
			return nil
		}
		if err := r.wait(ctx); err != nil {
			return err
		}
		if err := r.Step(); err != nil {
			return err
		}
	}
}

// Step advances mtime to the next comparator match, takes the interrupt and
// hands the resulting tone to the sinks.
func (r *Runner) Step() error {
	r.machine.Advance(r.machine.UntilMatch() + r.cfg.Latency)
	if !r.machine.Pending() {
		return fmt.Errorf("sim: timer match at %d but interrupt masked", r.machine.TimerNow())
	}

	note := r.sched.Score().NoteAt(r.sched.Cursor())
	r.sched.Fire()

	tone := r.machine.Tone()
	r.logger.Debug("note",
		"pitch", note.Pitch,
		"duration", note.Duration,
		"hz", tone.Hertz,
		"mtime", tone.At,
		"deadline", r.sched.Deadline())
	for _, s := range r.sinks {
		if err := s.Play(tone); err != nil {
			return fmt.Errorf("sim: sink: %w", err)
		}
	}
	return nil
}

func (r *Runner) wait(ctx context.Context) error {
	if r.cfg.Speed <= 0 {
		return ctx.Err()
	}
	ticks := r.machine.UntilMatch() + r.cfg.Latency
	d := time.Duration(float64(ticks) / melody.RTCFrequency / r.cfg.Speed * float64(time.Second))

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *Runner) closeSinks() error {
	var errs []error
	for _, s := range r.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
