package player

import "github.com/dgrubb/HiFive1-Korobeiniki/melody"

// Console lines.
const (
	Banner      = "From Russia with fun!! ...\n"
	LoopMessage = "End-of-score, replaying ...\n"
)

// AppendNoteLine appends the "Playing note" line for n to buf, e.g.
//
//	Playing note: [ E_5 659.25Hz, Crochet ]
func AppendNoteLine(buf []byte, n melody.Note) []byte {
	buf = append(buf, "Playing note: [ "...)
	buf = append(buf, n.Pitch.Label()...)
	buf = append(buf, ' ')
	buf = append(buf, n.Pitch.FrequencyLabel()...)
	buf = append(buf, ", "...)
	buf = append(buf, n.Duration.Label()...)
	buf = append(buf, " ]\n"...)
	return buf
}
