package core

// OutputScheduler regenerates the corrected pulse train. It is Stopped
// until handed a half-period; while Running the compare-match interrupt
// toggles the output pin and reschedules itself one half-period after the
// previous match, so frequency changes are phase-continuous and never
// glitch the waveform.
type OutputScheduler struct {
	timer TimerDriver
	gpio  GPIODriver
	pin   GPIOPin

	// Shared with interrupt context.
	halfPeriod uint32
	nextMatch  uint16
	running    bool
	pinHigh    bool
}

func NewOutputScheduler(timer TimerDriver, gpio GPIODriver, pin GPIOPin) *OutputScheduler {
	return &OutputScheduler{timer: timer, gpio: gpio, pin: pin}
}

// Running reports whether pulse generation is active.
func (s *OutputScheduler) Running() bool {
	return s.running
}

// setHalfPeriod hands a new half-period (in ticks) to the generator.
// Callers must hold the critical section. Zero, or a half-period too long
// for the 16-bit compare register, stops generation.
func (s *OutputScheduler) setHalfPeriod(hp uint32) {
	if hp == 0 || hp > CounterMax {
		if s.running {
			s.running = false
			s.timer.DisableCompare()
			s.gpio.SetPin(s.pin, false)
			s.pinHigh = false
		}
		s.halfPeriod = 0
		return
	}

	s.halfPeriod = hp
	if !s.running {
		s.running = true
		s.nextMatch = s.timer.Counter() + uint16(hp)
		s.timer.SetCompare(s.nextMatch)
		s.timer.EnableCompare()
	}
}

// HandleCompareMatch runs in interrupt context on every compare event.
func (s *OutputScheduler) HandleCompareMatch() {
	if !s.running {
		return
	}

	s.pinHigh = !s.pinHigh
	s.gpio.SetPin(s.pin, s.pinHigh)

	// The next toggle is scheduled relative to the previous match, not
	// to "now", so interrupt latency never accumulates into the period.
	s.nextMatch += uint16(s.halfPeriod)
	s.timer.SetCompare(s.nextMatch)
}
