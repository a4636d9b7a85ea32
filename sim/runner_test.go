package sim

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dgrubb/HiFive1-Korobeiniki/melody"
	"github.com/dgrubb/HiFive1-Korobeiniki/player"
)

type recordSink struct {
	tones  []Tone
	closed bool
	err    error
}

func (r *recordSink) Play(t Tone) error {
	r.tones = append(r.tones, t)
	return r.err
}

func (r *recordSink) Close() error {
	r.closed = true
	return nil
}

func TestRunnerPlaysScore(t *testing.T) {
	var console bytes.Buffer
	rec := &recordSink{}
	r := NewRunner(Config{Loops: 2, Console: &console}, rec)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	score := melody.Korobeiniki
	if len(rec.tones) != 2*score.Len() {
		t.Fatalf("got %d tones, expected %d", len(rec.tones), 2*score.Len())
	}
	for i, tone := range rec.tones {
		want := score.NoteAt(i).Pitch
		if !tone.Known || tone.Pitch != want || tone.Hertz == 0 {
			t.Errorf("tone %d = %v (%.1fHz), expected %v", i, tone.Pitch, tone.Hertz, want)
		}
	}
	if !rec.closed {
		t.Error("sink not closed")
	}

	out := console.String()
	if !strings.HasPrefix(out, player.Banner) {
		t.Errorf("console does not start with the banner: %q", out)
	}
	if n := strings.Count(out, player.LoopMessage); n != 2 {
		t.Errorf("loop message printed %d times, expected 2", n)
	}
	if n := strings.Count(out, "Playing note: "); n != 2*score.Len() {
		t.Errorf("%d note lines, expected %d", n, 2*score.Len())
	}
}

// Tones start exactly one note length after the previous tone's mtime
// plus the interrupt latency, which therefore accumulates.
func TestRunnerLatencyDrift(t *testing.T) {
	const latency = 50
	rec := &recordSink{}
	r := NewRunner(Config{Loops: 1, Latency: latency}, rec)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	score := melody.Korobeiniki
	if rec.tones[0].At != melody.WarmUpTicks+latency {
		t.Errorf("first note at %d, expected %d", rec.tones[0].At, melody.WarmUpTicks+latency)
	}
	for i := 1; i < len(rec.tones); i++ {
		gap := rec.tones[i].At - rec.tones[i-1].At
		want := score.NoteAt(i-1).Duration.Ticks() + latency
		if gap != want {
			t.Errorf("gap before note %d = %d, expected %d", i, gap, want)
		}
	}
	end := rec.tones[len(rec.tones)-1].At
	want := melody.WarmUpTicks + score.Ticks() - score.NoteAt(score.Len()-1).Duration.Ticks() +
		uint64(score.Len())*latency
	if end != want {
		t.Errorf("last note at %d, expected %d", end, want)
	}
}

func TestRunnerSinkError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recordSink{err: boom}
	r := NewRunner(Config{Loops: 1}, rec)
	err := r.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, expected %v", err, boom)
	}
	if len(rec.tones) != 1 || !rec.closed {
		t.Errorf("tones=%d closed=%v", len(rec.tones), rec.closed)
	}
}

func TestRunnerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(Config{Speed: 1})
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if r.Scheduler().Fired() != 0 {
		t.Error("handler fired after cancellation")
	}
}

func TestRunnerStepBeforeBootstrap(t *testing.T) {
	r := NewRunner(Config{})
	if err := r.Step(); err == nil {
		t.Error("Step() before bootstrap took a masked interrupt")
	}
}

// closeClock records the simulated time when the runner closes it.
type closeClock struct {
	recordSink
	r        *Runner
	closedAt uint64
}

func (c *closeClock) Close() error {
	c.closedAt = c.r.Machine().TimerNow()
	return c.recordSink.Close()
}

func TestRunnerHoldsLastNote(t *testing.T) {
	for _, speed := range []float64{0, 64} {
		sink := &closeClock{}
		r := NewRunner(Config{Loops: 1, Speed: speed}, sink)
		sink.r = r
		start := time.Now()
		if err := r.Run(context.Background()); err != nil {
			t.Fatalf("speed %v: Run() = %v", speed, err)
		}
		last := sink.tones[len(sink.tones)-1]
		if last.Pitch != melody.PitchA {
			t.Errorf("speed %v: last tone = %v, expected A_4", speed, last.Pitch)
		}
		if sink.closedAt != r.Scheduler().Deadline() {
			t.Errorf("speed %v: sink closed at mtime %d, expected deadline %d",
				speed, sink.closedAt, r.Scheduler().Deadline())
		}
		if sink.closedAt-last.At != melody.Crochet.Ticks() {
			t.Errorf("speed %v: last note held %d ticks, expected %d",
				speed, sink.closedAt-last.At, melody.Crochet.Ticks())
		}
		if speed > 0 {
			// whole pass: warm-up plus one score at 64x
			want := time.Duration(float64(melody.WarmUpTicks+melody.Korobeiniki.Ticks()) / melody.RTCFrequency / speed * float64(time.Second))
			if elapsed := time.Since(start); elapsed < want {
				t.Errorf("speed %v: run took %v, expected at least %v", speed, elapsed, want)
			}
		}
	}
}
