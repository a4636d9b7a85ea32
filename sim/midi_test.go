package sim

import (
	"bytes"
	"testing"

	"github.com/dgrubb/HiFive1-Korobeiniki/melody"
)

func TestMIDIMirror(t *testing.T) {
	var buf bytes.Buffer
	m := NewMIDIMirror(&buf)

	if err := m.Play(Tone{Hertz: 659.25, Pitch: melody.PitchE, Known: true}); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x90, 76, 100}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("note on = % x, expected % x", buf.Bytes(), want)
	}

	if err := m.Play(Tone{Hertz: 440, Pitch: melody.PitchA, Known: true}); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	// off E, on A, off A; three bytes each without running status
	if buf.Len() != 12 {
		t.Fatalf("stream = % x, expected 4 messages", buf.Bytes())
	}
	if got := buf.Bytes()[6:9]; !bytes.Equal(got, []byte{0x90, 69, 100}) {
		t.Errorf("second note on = % x", got)
	}
}

func TestMIDIMirrorSilence(t *testing.T) {
	var buf bytes.Buffer
	m := NewMIDIMirror(&buf)
	m.Play(Tone{})
	m.Play(Tone{Hertz: 100, Compare: 7})
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("silent tones wrote % x", buf.Bytes())
	}
}
