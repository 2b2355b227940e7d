//go:build rp2040 || rp2350

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"segclock/core"
)

// 74HC595 chain wiring. Latch must be clock+1: both are driven by one SET.
// GPIO4/5 are taken by I2C0 for the RTC.
const (
	displayDataPin  = machine.GPIO10
	displayClockPin = machine.GPIO11
	displayLatchPin = machine.GPIO12
)

// PIO program shifting one 32-bit word into the shift register chain.
// Bit 0 goes out first, so it ends up in the register farthest from the MCU.
//
//	SET pins: bit 0 = SRCLK, bit 1 = RCLK
//	OUT pins: SER
func buildShiftProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),        // 0: pull block
		asm.Set(rp2pio.SetDestX, 31).Encode(), // 1: set x, 31
		// bit_loop:
		asm.Out(rp2pio.OutDestPins, 1).Encode(),          // 2: out pins, 1
		asm.Set(rp2pio.SetDestPins, 1).Delay(1).Encode(), // 3: set pins, 1 [1] (SRCLK high)
		asm.Set(rp2pio.SetDestPins, 0).Encode(),          // 4: set pins, 0
		asm.Jmp(2, rp2pio.JmpXNZeroDec).Encode(),         // 5: jmp x--, bit_loop
		asm.Set(rp2pio.SetDestPins, 2).Delay(1).Encode(), // 6: set pins, 2 [1] (RCLK high)
		asm.Set(rp2pio.SetDestPins, 0).Encode(),          // 7: set pins, 0
		// .wrap
	}
}

const shiftPIOOrigin = 0 // Jump targets above assume offset 0

// PIODisplay implements core.Ports: the time-of-day side is the in-memory
// register, the display side is mirrored into the shift register chain.
type PIODisplay struct {
	regs *core.Registers
	pio  *rp2pio.PIO
	sm   rp2pio.StateMachine
}

// NewPIODisplay creates a display on PIO0 state machine 0
func NewPIODisplay(regs *core.Registers) *PIODisplay {
	return &PIODisplay{
		regs: regs,
		pio:  rp2pio.PIO0,
		sm:   rp2pio.PIO0.StateMachine(0),
	}
}

// Init loads the shift program and starts the state machine
func (d *PIODisplay) Init() error {
	d.sm.TryClaim()

	program := buildShiftProgram()
	offset, err := d.pio.AddProgram(program, shiftPIOOrigin)
	if err != nil {
		return err
	}

	for _, pin := range []machine.Pin{displayDataPin, displayClockPin, displayLatchPin} {
		pin.Configure(machine.PinConfig{Mode: d.pio.PinMode()})
	}

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(displayClockPin, 2)
	cfg.SetOutPins(displayDataPin, 1)

	// Shift right (LSB first), no autopull, 32-bit words
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// 125 MHz / 10: SRCLK around 3 MHz, well inside the 74HC595 rating
	cfg.SetClkDivIntFrac(10, 0)

	// Init first, pin directions after
	d.sm.Init(offset, cfg)
	d.sm.SetPindirsConsecutive(displayClockPin, 2, true)
	d.sm.SetPindirsConsecutive(displayDataPin, 1, true)
	d.sm.SetPinsConsecutive(displayClockPin, 2, false)
	d.sm.SetPinsConsecutive(displayDataPin, 1, false)

	d.sm.SetEnabled(true)
	return nil
}

// ReadTimeOfDay implements core.Ports
func (d *PIODisplay) ReadTimeOfDay() int32 {
	return d.regs.ReadTimeOfDay()
}

// WriteDisplay implements core.Ports. The pattern is latched as one word.
func (d *PIODisplay) WriteDisplay(pattern core.DisplayPattern) {
	d.regs.WriteDisplay(pattern)
	for d.sm.IsTxFIFOFull() {
		// Busy wait - one word drains in about 12 µs
	}
	d.sm.TxPut(uint32(pattern))
}

// Display implements core.DisplayReader
func (d *PIODisplay) Display() core.DisplayPattern {
	return d.regs.Display()
}
