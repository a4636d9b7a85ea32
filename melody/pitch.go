// Package melody holds the fixed musical data played by the firmware: the
// pitch and duration lookup tables and the score itself.
//
// Compare values assume the HiFive1's ~262MHz core clock feeding PWM1 with a
// prescale of 2^4. Tick counts assume the 32768Hz real-time clock that drives
// the CLINT timer.
//
// Example usage:
//
//	n := melody.Korobeiniki.NoteAt(0)
//	cmp := n.Pitch.Compare()    // 24839 for E_5
//	ticks := n.Duration.Ticks() // 16384 for a crochet
package melody

// Clock constants shared by the tables below.
const (
	CoreFrequency = 262_000_000 // PWM input clock in Hz
	PWMScale      = 4           // PWM counter increments every 2^PWMScale core cycles
	RTCFrequency  = 32768       // CLINT mtime increments per second
)

// Pitch is one of the note names the score uses.
type Pitch uint8

const (
	PitchA Pitch = iota // A_4, f=440Hz,    t=2.27ms
	PitchB              // B_4, f=493.88Hz, t=2.02ms
	PitchC              // C_5, f=523.25Hz, t=1.91ms
	PitchD              // D_5, f=587.33Hz, t=1.70ms
	PitchE              // E_5, f=659.25Hz, t=1.52ms
)

// Pitches lists every defined pitch in table order.
var Pitches = [...]Pitch{PitchA, PitchB, PitchC, PitchD, PitchE}

// Compare returns the PWM compare count that produces p. Each value is
// (CoreFrequency / 2^PWMScale) / f, e.g. A_4: (262MHz / 16) / 440 = 37216.
//
// Compare panics if p is not a defined pitch.
func (p Pitch) Compare() uint32 {
	switch p {
	case PitchA:
		return 37216
	case PitchB:
		return 33156
	case PitchC:
		return 31295
	case PitchD:
		return 27880
	case PitchE:
		return 24839
	}
	panic("melody: compare value for undefined pitch")
}

// Hertz returns the nominal frequency of p, or 0 if p is undefined.
func (p Pitch) Hertz() float64 {
	switch p {
	case PitchA:
		return 440
	case PitchB:
		return 493.88
	case PitchC:
		return 523.25
	case PitchD:
		return 587.33
	case PitchE:
		return 659.25
	}
	return 0
}

// MIDIKey returns the MIDI note number of p (A_4 = 69), or 0 if p is
// undefined.
func (p Pitch) MIDIKey() uint8 {
	switch p {
	case PitchA:
		return 69
	case PitchB:
		return 71
	case PitchC:
		return 72
	case PitchD:
		return 74
	case PitchE:
		return 76
	}
	return 0
}

// Label returns the scientific pitch name, e.g. "A_4".
func (p Pitch) Label() string {
	switch p {
	case PitchA:
		return "A_4"
	case PitchB:
		return "B_4"
	case PitchC:
		return "C_5"
	case PitchD:
		return "D_5"
	case PitchE:
		return "E_5"
	}
	return Unknown
}

// FrequencyLabel returns the nominal frequency as printed on the console,
// e.g. "440Hz".
func (p Pitch) FrequencyLabel() string {
	switch p {
	case PitchA:
		return "440Hz"
	case PitchB:
		return "493.88Hz"
	case PitchC:
		return "523.25Hz"
	case PitchD:
		return "587.33Hz"
	case PitchE:
		return "659.25Hz"
	}
	return Unknown
}

func (p Pitch) String() string { return p.Label() }

// Unknown is returned by the label lookups for values outside their enum.
const Unknown = "Unknown"
