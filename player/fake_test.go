package player

import (
	"fmt"
	"strings"
)

// fakeHardware records every register operation. The timer advances by
// latency ticks on each read so drift shows up in tests.
type fakeHardware struct {
	now       uint64
	latency   uint64
	compare   uint64
	timerIRQ  bool
	globalIRQ bool
	pwm       [PWMCompare3 + 1]uint32
	gpio      [GPIOIOFSelect + 1]uint32
	ops       []string
}

func (f *fakeHardware) TimerNow() uint64 {
	f.now += f.latency
	f.ops = append(f.ops, "now")
	return f.now
}

func (f *fakeHardware) SetTimerCompare(deadline uint64) {
	f.compare = deadline
	f.ops = append(f.ops, fmt.Sprintf("cmp=%d", deadline))
}

func (f *fakeHardware) EnableTimerInterrupt() {
	f.timerIRQ = true
	f.ops = append(f.ops, "mtie+")
}

func (f *fakeHardware) DisableTimerInterrupt() {
	f.timerIRQ = false
	f.ops = append(f.ops, "mtie-")
}

func (f *fakeHardware) EnableGlobalInterrupts() {
	f.globalIRQ = true
	f.ops = append(f.ops, "mie+")
}

func (f *fakeHardware) WritePWM(reg PWMRegister, value uint32) {
	f.pwm[reg] = value
	f.ops = append(f.ops, fmt.Sprintf("pwm%d=%d", reg, value))
}

func (f *fakeHardware) SetGPIOBits(reg GPIORegister, mask uint32) {
	f.gpio[reg] |= mask
	f.ops = append(f.ops, fmt.Sprintf("gpio%d|=%#x", reg, mask))
}

func (f *fakeHardware) count(prefix string) int {
	n := 0
	for _, op := range f.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeHardware) reset() { f.ops = f.ops[:0] }
