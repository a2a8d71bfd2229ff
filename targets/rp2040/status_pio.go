//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// Heartbeat program (pioasm output): hold the status pin high for 128
// cycles, then low for 128 cycles, forever. Runs without CPU involvement
// so the status LED keeps blinking even when the main loop is busy.
var statusProgram = []uint16{
	//     .wrap_target
	0xff01, //  0: set    pins, 1    [31]
	0xbf42, //  1: nop               [31]
	0xbf42, //  2: nop               [31]
	0xbf42, //  3: nop               [31]
	0xff00, //  4: set    pins, 0    [31]
	0xbf42, //  5: nop               [31]
	0xbf42, //  6: nop               [31]
	0xbf42, //  7: nop               [31]
	//     .wrap
}

// No jumps in the program, so it can load at any offset.
const statusProgramOrigin = -1

// StartStatusPulse drives the status LED from PIO0 state machine 0 at a
// few hertz.
func StartStatusPulse(pin machine.Pin) error {
	pioHW := rp2pio.PIO0
	sm := pioHW.StateMachine(0)
	sm.TryClaim()

	offset, err := pioHW.AddProgram(statusProgram, statusProgramOrigin)
	if err != nil {
		return err
	}

	pin.Configure(machine.PinConfig{Mode: pioHW.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetWrap(offset+uint8(len(statusProgram))-1, offset)

	// 125 MHz / 65535 ~= 1.9 kHz state machine clock; 256 cycles per
	// blink period lands around 7.5 Hz.
	cfg.SetClkDivIntFrac(0xffff, 0)

	sm.Init(offset, cfg)
	sm.SetEnabled(true)
	return nil
}
