//go:build rp2040

package main

import (
	"errors"
	"machine"
	"time"

	"speedo/console"
	"speedo/core"
)

// Pin assignment.
const (
	inputPin  = machine.GP2  // vehicle speed pulse input, pulled up
	outputPin = machine.GP3  // regenerated pulse train to the speedometer
	statusPin = machine.GP25 // onboard LED heartbeat
)

var (
	corrector *core.Corrector
	cons      *console.Console
)

func main() {
	// Clear any watchdog state left over from a previous reset.
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	timer := NewHWTimer()
	core.SetTimerDriver(timer)
	core.SetGPIODriver(NewRPGPIODriver())

	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s + "\r\n"))
	})
	core.SetDebugEnabled(true)

	corrector = core.NewCorrector(timer, core.MustGPIO(), core.GPIOPin(outputPin))
	timer.OnCompare = corrector.Scheduler().HandleCompareMatch
	timer.OnOverflow = corrector.Capture().HandleOverflow

	// Calibration storage. A missing EEPROM or blank image leaves the
	// compiled-in defaults in effect; the vehicle stays drivable either
	// way.
	if storage, err := NewEEPROMStorage(); err != nil {
		core.DebugPrintln("storage: " + err.Error())
		core.SetStorageDriver(noStorage{})
	} else {
		core.SetStorageDriver(storage)
		if err := core.LoadTable(storage, &corrector.Table); err != nil {
			core.DebugPrintln("calibration: " + err.Error())
		} else {
			core.DebugPrintln("calibration: loaded from storage")
		}
	}

	// Command console over USB CDC.
	interp := core.NewInterpreter(corrector, core.MustStorage())
	cons = console.New(interp.Execute, func(b []byte) {
		machine.Serial.Write(b)
	})

	// Capture input: both edges, alternation handled by the engine.
	core.MustGPIO().ConfigureInputPullUp(core.GPIOPin(inputPin))
	inputPin.SetInterrupt(machine.PinRising|machine.PinFalling, captureISR)

	if err := StartStatusPulse(statusPin); err != nil {
		core.DebugPrintln("status: " + err.Error())
	}

	core.DebugPrintln("speedo: boot, self-test ramp starting")

	lastTick := time.Now()
	for {
		for machine.Serial.Buffered() > 0 {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			cons.FeedByte(b)
		}
		cons.Poll()

		if time.Since(lastTick) >= core.ControlTickMs*time.Millisecond {
			lastTick = lastTick.Add(core.ControlTickMs * time.Millisecond)
			corrector.Tick()
		}

		time.Sleep(time.Millisecond)
	}
}

func captureISR(machine.Pin) {
	corrector.Capture().HandleEdge(hwTimer.Counter(), hwTimer.OverflowPending())
}

// noStorage stands in when the EEPROM is absent so SAVE fails with a
// diagnostic instead of hanging the console.
type noStorage struct{}

func (noStorage) ReadByte(uint16) (byte, error) { return 0, errNoStorage }
func (noStorage) WriteByte(uint16, byte) error  { return errNoStorage }

var errNoStorage = errors.New("storage unavailable")
