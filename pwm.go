//go:build fe310

package hifive1

import "github.com/dgrubb/HiFive1-Korobeiniki/player"

// PWM1 register offsets:
//
//	0x00 pwmcfg:   configuration (see player.Cfg* for the bitfield)
//	0x08 pwmcount: free-running counter
//	0x10 pwms:     scaled counter, read only
//	0x20 pwmcmp0:  period comparator when pwmzerocmp is set
//	0x24 pwmcmp1:  duty comparator, GPIO 19 (green LED)
//	0x28 pwmcmp2:  duty comparator, GPIO 21 (blue LED)
//	0x2C pwmcmp3:  duty comparator, GPIO 22 (red LED)
var pwmOffsets = [...]uintptr{
	player.PWMConfig:   0x00,
	player.PWMCount:    0x08,
	player.PWMCompare0: 0x20,
	player.PWMCompare1: 0x24,
	player.PWMCompare2: 0x28,
	player.PWMCompare3: 0x2C,
}

// WritePWM writes value into a PWM1 register. Comparators are 16 bits wide;
// the upper half of value is dropped by the hardware.
func WritePWM(reg player.PWMRegister, value uint32) {
	mem32(memPWM1 + pwmOffsets[reg]).Set(value)
}
