package core

// Corrector is the main control-loop object. Once per control tick it
// snapshots the capture state, filters the measured frequency, maps it
// through the correction curve and hands the resulting half-period to the
// output scheduler. During startup the self-test ramp drives the scheduler
// instead; the normal pipeline takes over permanently when the ramp ends.
type Corrector struct {
	capture  *CaptureEngine
	sched    *OutputScheduler
	filter   *FreqFilter
	selftest *SelfTest

	// Table is only touched from the main loop (tick and console), never
	// from interrupt context, so it needs no critical section.
	Table CorrectionTable

	stopped bool
}

func NewCorrector(timer TimerDriver, gpio GPIODriver, outPin GPIOPin) *Corrector {
	if err := gpio.ConfigureOutput(outPin); err != nil {
		panic("output pin not configurable")
	}
	return &Corrector{
		capture:  NewCaptureEngine(timer),
		sched:    NewOutputScheduler(timer, gpio, outPin),
		filter:   NewFreqFilter(MaxFreqStepHz),
		selftest: NewSelfTest(),
		Table:    DefaultTable(),
		stopped:  true,
	}
}

// Capture exposes the capture engine for interrupt wiring.
func (c *Corrector) Capture() *CaptureEngine {
	return c.capture
}

// Scheduler exposes the output scheduler for interrupt wiring.
func (c *Corrector) Scheduler() *OutputScheduler {
	return c.sched
}

// Stopped reports whether output generation is currently suppressed.
func (c *Corrector) Stopped() bool {
	return c.stopped
}

// Tick runs one control-loop iteration. Call it every ControlTickMs.
func (c *Corrector) Tick() {
	if freq, active := c.selftest.Tick(); active {
		c.applyOutputFreq(freq)
		return
	}

	state := disableInterrupts()
	period, overflows := c.capture.snapshot()
	if overflows >= 2 || period >= CounterWrap {
		// Input absent or a period too long to represent: declare the
		// signal stopped.
		c.capture.clear()
		period = 0
	}
	restoreInterrupts(state)

	if period == 0 {
		c.stop()
		return
	}

	// Captures fire on both half-edges, so the full cycle is two periods.
	inFreq := TimerFreq / (2 * float32(period))
	inFreq = c.filter.Apply(inFreq)
	outFreq := c.Table.Lookup(inFreq)
	c.applyOutputFreq(outFreq)
}

func (c *Corrector) stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.filter.Reset()

	state := disableInterrupts()
	c.sched.setHalfPeriod(0)
	restoreInterrupts(state)

	DebugPrintln("corrector: stopped")
}

func (c *Corrector) applyOutputFreq(freq float32) {
	var hp uint32
	if freq > 0 {
		hp = uint32(TimerFreq/freq) / 2
	}
	if hp == 0 || hp > CounterMax {
		c.stop()
		return
	}

	wasStopped := c.stopped
	c.stopped = false

	state := disableInterrupts()
	c.sched.setHalfPeriod(hp)
	restoreInterrupts(state)

	// Gate on IsDebugEnabled so the formatting work is skipped entirely
	// when debug output is off.
	if wasStopped && IsDebugEnabled() {
		DebugPrintln("corrector: running half_period=" + utoa(hp))
	}
}
