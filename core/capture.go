package core

// CaptureEngine turns raw input-capture events into a period measurement.
// HandleEdge and HandleOverflow run in interrupt context; the corrector
// reads the result through snapshot/clear inside a critical section.
//
// Captures fire on alternating edges, so each measured period is one
// half cycle of the input pulse train.
type CaptureEngine struct {
	timer TimerDriver

	// Shared with interrupt context. The main loop must hold the
	// critical section to touch these.
	period      uint32 // ticks between the last two edges, 0 = no measurement
	lastCounter uint16
	overflows   int32 // counter wraps since the last edge
	live        bool
	rising      bool
}

func NewCaptureEngine(timer TimerDriver) *CaptureEngine {
	return &CaptureEngine{timer: timer, rising: true}
}

// HandleEdge processes one input-capture interrupt. counter is the counter
// value latched at the edge instant; overflowPending reports a wrap that is
// latched in hardware but whose interrupt has not run yet.
func (e *CaptureEngine) HandleEdge(counter uint16, overflowPending bool) {
	// Flip polarity so the next interrupt fires on the opposite edge.
	e.rising = !e.rising
	e.timer.SetCaptureRising(e.rising)

	if !e.live {
		// First edge since the input went live; nothing to measure yet.
		e.lastCounter = counter
		e.overflows = 0
		e.live = true
		return
	}

	delta := int32(counter) - int32(e.lastCounter) + e.overflows*CounterWrap
	if overflowPending && counter < CounterMax {
		// A wrap straddled the capture instant and is still unserviced.
		// Count it here and pre-bias the accumulator so the pending
		// overflow interrupt nets to zero.
		delta += CounterWrap
		e.overflows = -1
	} else {
		e.overflows = 0
	}
	e.lastCounter = counter

	if delta <= 0 {
		// Inconsistent capture; report an invalid period so the stop
		// detector discards it.
		delta = CounterWrap
	}
	e.period = uint32(delta)
}

// HandleOverflow runs on every counter wrap interrupt.
func (e *CaptureEngine) HandleOverflow() {
	e.overflows++
}

// snapshot returns the shared measurement state. Callers must hold the
// critical section.
func (e *CaptureEngine) snapshot() (period uint32, overflows int32) {
	return e.period, e.overflows
}

// clear resets the measurement state after the stop detector fires.
// Callers must hold the critical section.
func (e *CaptureEngine) clear() {
	e.period = 0
	e.overflows = 0
	e.live = false
}
