package sim

import (
	"fmt"
	"io"

	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
)

// MIDIMirror writes a note on/off stream that follows the tones on the pins,
// one key down at a time. Silent or unrecognised tones only release the
// previous key.
type MIDIMirror struct {
	wr       midi.Writer
	ch       channel.Channel
	velocity uint8
	key      uint8
	on       bool
}

// NewMIDIMirror writes raw MIDI bytes to dest on channel 1. The stream has
// no delta times: it records pitch order, not rhythm. The caller owns dest.
func NewMIDIMirror(dest io.Writer) *MIDIMirror {
	wr := midiwriter.New(dest, midiwriter.NoRunningStatus())
	return &MIDIMirror{wr: wr, ch: channel.Channel0, velocity: 100}
}

func (m *MIDIMirror) Play(t Tone) error {
	if err := m.release(); err != nil {
		return err
	}
	if t.Hertz == 0 || !t.Known {
		return nil
	}
	key := t.Pitch.MIDIKey()
	if err := m.wr.Write(m.ch.NoteOn(key, m.velocity)); err != nil {
		return fmt.Errorf("midi: note on %d: %w", key, err)
	}
	m.key, m.on = key, true
	return nil
}

// Close releases the held key, if any.
func (m *MIDIMirror) Close() error {
	return m.release()
}

func (m *MIDIMirror) release() error {
	if !m.on {
		return nil
	}
	if err := m.wr.Write(m.ch.NoteOff(m.key)); err != nil {
		return fmt.Errorf("midi: note off %d: %w", m.key, err)
	}
	m.on = false
	return nil
}
