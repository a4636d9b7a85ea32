//go:build fe310

package hifive1

import "github.com/dgrubb/HiFive1-Korobeiniki/player"

// GPIO I/O function registers. Bit n controls pin n.
//
//	0x38 iof_en:  1 = pin driven by its I/O function instead of the GPIO block
//	0x3C iof_sel: 0 = IOF0 (SPI/UART/I2C), 1 = IOF1 (PWM)
var gpioOffsets = [...]uintptr{
	player.GPIOIOFEnable: 0x38,
	player.GPIOIOFSelect: 0x3C,
}

// SetGPIOBits ORs mask into a GPIO register.
func SetGPIOBits(reg player.GPIORegister, mask uint32) {
	mem32(memGPIO + gpioOffsets[reg]).SetBits(mask)
}
