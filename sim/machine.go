// Package sim runs the player on the host against a simulated FE310: a
// register file for the CLINT timer, PWM1 and GPIO, and a virtual mtime that
// only moves when the runner advances it.
package sim

import (
	"sync"

	"github.com/dgrubb/HiFive1-Korobeiniki/melody"
	"github.com/dgrubb/HiFive1-Korobeiniki/player"
)

// Machine is a simulated HiFive1 implementing player.Hardware. It is safe
// for concurrent use so an audio callback can sample Tone while the runner
// fires the handler.
type Machine struct {
	mu sync.Mutex

	mtime     uint64
	mtimecmp  uint64
	timerIRQ  bool
	globalIRQ bool

	pwm  [player.PWMCompare3 + 1]uint32
	gpio [player.GPIOIOFSelect + 1]uint32
}

var _ player.Hardware = (*Machine)(nil)

// NewMachine returns a machine in its reset state: mtime at zero, the
// comparator at its maximum, interrupts masked.
func NewMachine() *Machine {
	return &Machine{mtimecmp: ^uint64(0)}
}

func (m *Machine) TimerNow() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mtime
}

func (m *Machine) SetTimerCompare(deadline uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mtimecmp = deadline
}

func (m *Machine) EnableTimerInterrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timerIRQ = true
}

func (m *Machine) DisableTimerInterrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timerIRQ = false
}

func (m *Machine) EnableGlobalInterrupts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.globalIRQ = true
}

func (m *Machine) WritePWM(reg player.PWMRegister, value uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if reg >= player.PWMCompare0 {
		// comparators are 16 bits wide
		value &= 0xFFFF
	}
	m.pwm[reg] = value
}

func (m *Machine) SetGPIOBits(reg player.GPIORegister, mask uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gpio[reg] |= mask
}

// Mtimecmp returns the timer comparator.
func (m *Machine) Mtimecmp() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mtimecmp
}

// Advance moves mtime forward by ticks.
func (m *Machine) Advance(ticks uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mtime += ticks
}

// UntilMatch returns how many ticks remain before mtime reaches mtimecmp.
func (m *Machine) UntilMatch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mtime >= m.mtimecmp {
		return 0
	}
	return m.mtimecmp - m.mtime
}

// Pending reports whether a timer interrupt would be taken now: mtime has
// reached mtimecmp, the timer source is enabled and so is the global flag.
func (m *Machine) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mtime >= m.mtimecmp && m.timerIRQ && m.globalIRQ
}

// Tone is what PWM1 currently drives onto the LED pins.
type Tone struct {
	At      uint64  // mtime when sampled
	Compare uint32  // pwmcmp0
	Hertz   float64 // 0 when the counter is stopped or nothing is routed
	Duty    float64 // high fraction of each period on pwmcmp2
	Pitch   melody.Pitch
	Known   bool // Pitch was recognised from Compare
}

// Tone decodes the PWM1 and GPIO registers into the waveform on the pins.
func (m *Machine) Tone() Tone {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := Tone{At: m.mtime, Compare: m.pwm[player.PWMCompare0]}
	t.Pitch, t.Known = PitchOf(t.Compare)

	cfg := m.pwm[player.PWMConfig]
	routed := m.gpio[player.GPIOIOFEnable] & m.gpio[player.GPIOIOFSelect] & player.LEDPins
	running := cfg&player.CfgEnAlways != 0 && cfg&player.CfgZeroCmp != 0
	if !running || routed == 0 || t.Compare == 0 {
		return t
	}

	scale := cfg & player.CfgScaleMask
	t.Hertz = float64(melody.CoreFrequency) / float64(uint64(1)<<scale) / float64(t.Compare)
	t.Duty = float64(m.pwm[player.PWMCompare2]) / float64(t.Compare)
	if t.Duty > 1 {
		t.Duty = 1
	}
	return t
}

// PitchOf maps a pwmcmp0 value back to the pitch that produces it.
func PitchOf(compare uint32) (melody.Pitch, bool) {
	for _, p := range melody.Pitches {
		if p.Compare() == compare {
			return p, true
		}
	}
	return 0, false
}
