// Package player drives a PWM channel from a timer-compare interrupt to play
// a melody.Score.
//
// The package never touches memory directly. All register traffic goes
// through Hardware, which the board package implements for the FE310 and the
// sim package implements for the host.
//
// Example usage:
//
//	player.Bootstrap(board, console)
//	s := player.NewScheduler(board, player.WithConsole(console))
//	// on every timer-compare match:
//	s.Fire()
package player

// PWMRegister selects one of the PWM1 registers.
type PWMRegister uint8

const (
	PWMConfig   PWMRegister = iota // pwmcfg
	PWMCount                       // pwmcount
	PWMCompare0                    // pwmcmp0, sets the period
	PWMCompare1                    // pwmcmp1, unused
	PWMCompare2                    // pwmcmp2, duty for GPIO 21
	PWMCompare3                    // pwmcmp3, duty for GPIO 22
)

// GPIORegister selects one of the GPIO I/O function registers.
type GPIORegister uint8

const (
	GPIOIOFEnable GPIORegister = iota // iof_en: route pin to its I/O function
	GPIOIOFSelect                     // iof_sel: pick IOF1 (PWM) over IOF0
)

// pwmcfg bitfield:
//
//	Bits 0-3:   pwmscale, counter prescale (2^n)
//	Bit  8:     pwmsticky
//	Bit  9:     pwmzerocmp, reset counter on cmp0 match
//	Bit  10:    pwmdeglitch
//	Bit  12:    pwmenalways
//	Bit  13:    pwmenoneshot
//	Bits 16-19: pwmcmpXcenter, center-aligned comparator X
const (
	CfgScaleMask  uint32 = 0xF
	CfgSticky     uint32 = 1 << 8
	CfgZeroCmp    uint32 = 1 << 9
	CfgDeglitch   uint32 = 1 << 10
	CfgEnAlways   uint32 = 1 << 12
	CfgEnOneShot  uint32 = 1 << 13
	CfgCmp0Center uint32 = 1 << 16
	CfgCmp1Center uint32 = 1 << 17
	CfgCmp2Center uint32 = 1 << 18
	CfgCmp3Center uint32 = 1 << 19
)

// HiFive1 LED pins wired to PWM1 channels 2 and 3.
const (
	BlueLEDPin = 21
	RedLEDPin  = 22
)

// LEDPins is the GPIO mask of both PWM outputs.
const LEDPins uint32 = 1<<BlueLEDPin | 1<<RedLEDPin

// Hardware is the register surface the player needs. Writes always succeed.
type Hardware interface {
	// TimerNow reads mtime.
	TimerNow() uint64
	// SetTimerCompare writes mtimecmp.
	SetTimerCompare(deadline uint64)

	// EnableTimerInterrupt and DisableTimerInterrupt toggle the timer
	// source bit in mie. They never touch the global enable flag.
	EnableTimerInterrupt()
	DisableTimerInterrupt()
	// EnableGlobalInterrupts sets mstatus.MIE.
	EnableGlobalInterrupts()

	WritePWM(reg PWMRegister, value uint32)
	// SetGPIOBits ORs mask into reg.
	SetGPIOBits(reg GPIORegister, mask uint32)
}
