package sim

import "sync"

// Square synthesises the PWM output as a mono float32 square wave. Play
// retunes it; Fill is called from the audio callback.
type Square struct {
	mu    sync.Mutex
	rate  float64
	gain  float32
	hz    float64
	duty  float64
	phase float64
}

// NewSquare returns a silent oscillator at the given sample rate.
func NewSquare(sampleRate int, gain float32) *Square {
	return &Square{rate: float64(sampleRate), gain: gain}
}

// Play retunes the oscillator to t. A zero-frequency tone is silence.
func (s *Square) Play(t Tone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hz, s.duty = t.Hertz, t.Duty
	return nil
}

func (s *Square) Close() error {
	return s.Play(Tone{})
}

// Fill writes the next len(buf) samples.
func (s *Square) Fill(buf []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hz <= 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	step := s.hz / s.rate
	for i := range buf {
		if s.phase < s.duty {
			buf[i] = s.gain
		} else {
			buf[i] = -s.gain
		}
		s.phase += step
		if s.phase >= 1 {
			s.phase -= 1
		}
	}
}
