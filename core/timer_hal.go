package core

// TimerDriver is the abstract interface to the 16-bit capture/compare
// timer. Platform code implements it on real hardware; the host build uses
// SimTimer.
type TimerDriver interface {
	// Counter returns the current value of the free-running 16-bit counter.
	Counter() uint16

	// SetCompare programs the next compare-match target. The compare-match
	// interrupt fires when the counter reaches the target.
	SetCompare(target uint16)

	// EnableCompare enables the compare-match interrupt.
	EnableCompare()

	// DisableCompare disables the compare-match interrupt.
	DisableCompare()

	// SetCaptureRising selects the edge polarity the next input-capture
	// interrupt fires on.
	SetCaptureRising(rising bool)

	// OverflowPending reports whether a counter wrap has been latched but
	// its interrupt not yet serviced.
	OverflowPending() bool
}

// Global singleton used by target wiring code.
var timerDriver TimerDriver

// SetTimerDriver is called by target-specific code to register its driver.
func SetTimerDriver(d TimerDriver) {
	timerDriver = d
}

// MustTimer returns the configured driver or panics if missing.
func MustTimer() TimerDriver {
	if timerDriver == nil {
		panic("timer driver not configured")
	}
	return timerDriver
}
