package player

import (
	"io"

	"github.com/dgrubb/HiFive1-Korobeiniki/melody"
)

// DefaultConfig is the pwmcfg word the player runs PWM1 with: always
// counting, deglitched, both duty comparators center-aligned, the counter
// reset on a period match and the melody.PWMScale prescaler.
const DefaultConfig = CfgEnAlways | CfgDeglitch | CfgCmp2Center | CfgCmp3Center |
	CfgZeroCmp | (melody.PWMScale & CfgScaleMask)

// Bootstrap prints the banner and leaves hw in the state the first Fire
// expects: a warm-up deadline armed, PWM1 configured and counting from zero,
// the LED pins switched to their PWM function and interrupts enabled.
//
// The pins are only selected here. Scheduler routes them on the first note.
func Bootstrap(hw Hardware, console io.Writer) {
	io.WriteString(console, Banner)

	hw.DisableTimerInterrupt()
	hw.SetTimerCompare(hw.TimerNow() + melody.WarmUpTicks)

	hw.WritePWM(PWMConfig, 0)
	hw.WritePWM(PWMConfig, DefaultConfig)
	hw.WritePWM(PWMCount, 0)

	hw.SetGPIOBits(GPIOIOFSelect, LEDPins)

	hw.EnableTimerInterrupt()
	hw.EnableGlobalInterrupts()
}
