//go:build fe310

package hifive1

import "device/riscv"

// CLINT register offsets. mtime counts at the 32768Hz RTC.
const (
	clintMtimecmpLo = 0x4000
	clintMtimecmpHi = 0x4004
	clintMtimeLo    = 0xBFF8
	clintMtimeHi    = 0xBFFC
)

// Interrupt enable bits.
const (
	mieMTIE    = 1 << 7 // mie: machine timer interrupt enable
	mipMTIP    = 1 << 7 // mip: machine timer interrupt pending
	mstatusMIE = 1 << 3 // mstatus: global machine interrupt enable
)

var (
	mtimeLo    = mem32(memCLINT + clintMtimeLo)
	mtimeHi    = mem32(memCLINT + clintMtimeHi)
	mtimecmpLo = mem32(memCLINT + clintMtimecmpLo)
	mtimecmpHi = mem32(memCLINT + clintMtimecmpHi)
)

// Mtime reads the full 64-bit machine timer.
func Mtime() uint64 {
	// Read high, low, high again; retry if the low half rolled over.
	for {
		high1 := mtimeHi.Get()
		low := mtimeLo.Get()
		high2 := mtimeHi.Get()
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
	}
}

// SetMtimecmp writes the 64-bit timer comparator.
func SetMtimecmp(deadline uint64) {
	// Park the high half at its maximum first so no intermediate value
	// can match early.
	mtimecmpHi.Set(0xFFFFFFFF)
	mtimecmpLo.Set(uint32(deadline))
	mtimecmpHi.Set(uint32(deadline >> 32))
}

// EnableTimerInterrupt sets mie.MTIE.
func EnableTimerInterrupt() {
	riscv.MIE.SetBits(mieMTIE)
}

// DisableTimerInterrupt clears mie.MTIE.
func DisableTimerInterrupt() {
	riscv.MIE.ClearBits(mieMTIE)
}

// EnableInterrupts sets mstatus.MIE.
func EnableInterrupts() {
	riscv.MSTATUS.SetBits(mstatusMIE)
}

// TimerPending reports whether mtime has reached mtimecmp.
func TimerPending() bool {
	return riscv.MIP.Get()&mipMTIP != 0
}
