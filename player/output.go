package player

import "github.com/dgrubb/HiFive1-Korobeiniki/melody"

// Output is the PWM1 square-wave driver. It latches the pin routing on the
// first note and leaves it alone afterwards.
type Output struct {
	hw      Hardware
	pins    uint32
	enabled bool
}

// NewOutput returns a driver that routes PWM1 to the GPIO pins in mask.
func NewOutput(hw Hardware, mask uint32) *Output {
	return &Output{hw: hw, pins: mask}
}

// Apply programs p into the period comparator and centers a 50% duty cycle
// on both duty comparators. The first call also enables the output pins.
func (o *Output) Apply(p melody.Pitch) {
	period := p.Compare()
	o.hw.WritePWM(PWMCompare0, period)
	o.hw.WritePWM(PWMCompare2, period/2)
	o.hw.WritePWM(PWMCompare3, period/2)
	if !o.enabled {
		o.enabled = true
		o.hw.SetGPIOBits(GPIOIOFEnable, o.pins)
	}
}

// Enabled reports whether the output pins have been routed to PWM1.
func (o *Output) Enabled() bool { return o.enabled }
