//go:build fe310

// Package hifive1 provides access to the SiFive HiFive1 (FE310) peripherals
// the Korobeiniki player needs: the CLINT machine timer, PWM1 and the GPIO
// I/O function routing.
//
// Register layouts based on the FE310-G002 manual, chapters 9 (CLINT),
// 17 (GPIO) and 20 (PWM).
//
// Example usage:
//
//	board := hifive1.NewBoard()
//	player.Bootstrap(board, machine.Serial)
//	s := player.NewScheduler(board, player.WithConsole(machine.Serial))
//	for {
//		if board.Idle() {
//			s.Fire()
//		}
//	}
package hifive1

import (
	"runtime/volatile"
	"unsafe"
)

// Peripheral base addresses.
const (
	memCLINT uintptr = 0x02000000
	memGPIO  uintptr = 0x10012000
	memPWM1  uintptr = 0x10025000
)

// mem32 returns a pointer to a volatile 32-bit register at the given address.
// The FE310 is a 32-bit core; 64-bit CLINT registers are accessed as halves.
func mem32(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}
