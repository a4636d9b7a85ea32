package player

import (
	"io"

	"github.com/dgrubb/HiFive1-Korobeiniki/melody"
)

// maxLine fits the longest note line with room to spare.
const maxLine = 100

// Scheduler is the timer-compare handler. It owns every piece of state that
// survives between firings: the score cursor, the output latch and the
// console buffer.
type Scheduler struct {
	hw      Hardware
	cs      *CriticalSection
	out     *Output
	score   melody.Score
	console io.Writer
	msg     []byte

	cursor   int
	deadline uint64
	fired    uint64
	loops    uint64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithConsole sets where diagnostic lines go. The default discards them.
func WithConsole(w io.Writer) Option {
	return func(s *Scheduler) { s.console = w }
}

// WithScore replaces the default melody.Korobeiniki score.
func WithScore(score melody.Score) Option {
	return func(s *Scheduler) { s.score = score }
}

// WithPins narrows the GPIO pins the output is routed to (default LEDPins).
// Bootstrap selects IOF1 only for LEDPins, so mask must be a non-empty
// subset of it; anything else panics.
func WithPins(mask uint32) Option {
	if mask == 0 || mask&^LEDPins != 0 {
		panic("player: output pins outside LEDPins")
	}
	return func(s *Scheduler) { s.out = NewOutput(s.hw, mask) }
}

// NewScheduler returns a scheduler positioned on the first note.
func NewScheduler(hw Hardware, options ...Option) *Scheduler {
	s := &Scheduler{
		hw:      hw,
		cs:      NewCriticalSection(hw),
		out:     NewOutput(hw, LEDPins),
		score:   melody.Korobeiniki,
		console: io.Discard,
		msg:     make([]byte, 0, maxLine),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Fire plays the note under the cursor and arms the timer for the next one.
// It must only run from the timer-compare match, and runs to completion.
func (s *Scheduler) Fire() {
	s.cs.Acquire()

	now := s.hw.TimerNow()
	note := s.score.NoteAt(s.cursor)

	// Relative to now, not the previous deadline: interrupt latency
	// accumulates across notes.
	s.deadline = now + note.Duration.Ticks()
	s.hw.SetTimerCompare(s.deadline)

	s.msg = AppendNoteLine(s.msg[:0], note)
	s.console.Write(s.msg)

	s.out.Apply(note.Pitch)

	var wrapped bool
	s.cursor, wrapped = s.score.Next(s.cursor)
	s.fired++
	if wrapped {
		s.loops++
		io.WriteString(s.console, LoopMessage)
	}

	s.cs.Release()
}

// Cursor returns the index of the note the next firing will play.
func (s *Scheduler) Cursor() int { return s.cursor }

// Deadline returns the last value written to the timer comparator.
func (s *Scheduler) Deadline() uint64 { return s.deadline }

// Fired returns how many times the handler has run.
func (s *Scheduler) Fired() uint64 { return s.fired }

// Loops returns how many times the score wrapped back to its first note.
func (s *Scheduler) Loops() uint64 { return s.loops }

// OutputEnabled reports whether the first note has routed PWM to the pins.
func (s *Scheduler) OutputEnabled() bool { return s.out.Enabled() }

// Score returns the score being played.
func (s *Scheduler) Score() melody.Score { return s.score }
