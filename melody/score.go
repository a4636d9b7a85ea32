package melody

// Note is a single pitch held for a duration.
type Note struct {
	Duration Duration
	Pitch    Pitch
}

// Score is an immutable, cyclic sequence of notes. The zero value is empty
// and must not be played.
type Score struct {
	notes []Note
}

// NewScore copies notes into a Score. It panics if notes is empty.
func NewScore(notes ...Note) Score {
	if len(notes) == 0 {
		panic("melody: empty score")
	}
	s := Score{notes: make([]Note, len(notes))}
	copy(s.notes, notes)
	return s
}

// Len returns the number of notes in one pass of the score.
func (s Score) Len() int { return len(s.notes) }

// NoteAt returns the note under cursor. The cursor is reduced modulo Len,
// so every int addresses a note.
func (s Score) NoteAt(cursor int) Note {
	i := cursor % len(s.notes)
	if i < 0 {
		i += len(s.notes)
	}
	return s.notes[i]
}

// Next advances cursor by one note. wrapped reports that the advance went
// past the last note and next is 0.
func (s Score) Next(cursor int) (next int, wrapped bool) {
	next = cursor + 1
	if next >= len(s.notes) {
		return 0, true
	}
	return next, false
}

// Ticks returns the length of one full pass of the score in RTC ticks.
func (s Score) Ticks() uint64 {
	var total uint64
	for _, n := range s.notes {
		total += n.Duration.Ticks()
	}
	return total
}

// Korobeiniki is the melody the firmware plays.
var Korobeiniki = NewScore(
	Note{Crochet, PitchE},
	Note{Quaver, PitchB},
	Note{Quaver, PitchC},
	Note{Crochet, PitchD},
	Note{Quaver, PitchC},
	Note{Quaver, PitchB},
	Note{Crochet, PitchA},
	Note{Quaver, PitchA},
	Note{Quaver, PitchC},
	Note{Crochet, PitchE},
	Note{Quaver, PitchD},
	Note{Quaver, PitchC},
	Note{DottedHalf, PitchB},
	Note{Quaver, PitchC},
	Note{Crochet, PitchD},
	Note{Crochet, PitchE},
	Note{Crochet, PitchA},
)
