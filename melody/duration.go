package melody

// Beat length is half a second, so one crochet lasts RTCFrequency/2 ticks.
const beatTicks = RTCFrequency / 2

// WarmUpTicks is the delay between boot and the first note, 1.5 seconds.
const WarmUpTicks = RTCFrequency * 3 / 2

// Duration is a note length class.
type Duration uint8

const (
	Quaver     Duration = iota // half a beat
	Crochet                    // a full beat
	DottedHalf                 // one and a half beats
)

// Durations lists every defined duration in table order.
var Durations = [...]Duration{Quaver, Crochet, DottedHalf}

// Ticks returns the length of d in RTC ticks.
//
// Ticks panics if d is not a defined duration.
func (d Duration) Ticks() uint64 {
	switch d {
	case Quaver:
		return beatTicks / 2
	case Crochet:
		return beatTicks
	case DottedHalf:
		return beatTicks * 3 / 2
	}
	panic("melody: tick count for undefined duration")
}

// Label returns the name printed on the console for d.
func (d Duration) Label() string {
	switch d {
	case Quaver:
		return "Quaver"
	case Crochet:
		return "Crochet"
	case DottedHalf:
		return "Half-dotted"
	}
	return Unknown
}

func (d Duration) String() string { return d.Label() }
