//go:build fe310

package hifive1

import (
	"device/riscv"

	"github.com/dgrubb/HiFive1-Korobeiniki/player"
)

// Board is the HiFive1 implementation of player.Hardware.
type Board struct{}

var _ player.Hardware = Board{}

// NewBoard returns the board handle. All state lives in the registers.
func NewBoard() Board { return Board{} }

func (Board) TimerNow() uint64                            { return Mtime() }
func (Board) SetTimerCompare(deadline uint64)             { SetMtimecmp(deadline) }
func (Board) EnableTimerInterrupt()                       { EnableTimerInterrupt() }
func (Board) DisableTimerInterrupt()                      { DisableTimerInterrupt() }
func (Board) EnableGlobalInterrupts()                     { EnableInterrupts() }
func (Board) WritePWM(r player.PWMRegister, v uint32)     { WritePWM(r, v) }
func (Board) SetGPIOBits(r player.GPIORegister, m uint32) { SetGPIOBits(r, m) }

// Idle sleeps the core until the timer comparator matches and reports
// whether it did. Other interrupts also wake the core; Idle then returns
// false and the caller goes back to sleep.
//
// The TinyGo runtime owns the machine timer trap and masks mie.MTIE when it
// fires, so the match is detected here, in thread context, and the player's
// handler runs from the main loop instead of the trap.
func (Board) Idle() bool {
	// With mstatus.MIE clear a pending interrupt still ends wfi but is not
	// taken, so a match between the check and the wfi cannot be lost.
	riscv.MSTATUS.ClearBits(mstatusMIE)
	if !TimerPending() {
		riscv.Asm("wfi")
	}
	pending := TimerPending()
	riscv.MSTATUS.SetBits(mstatusMIE)
	return pending
}
