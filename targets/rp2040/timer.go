//go:build rp2040

package main

import (
	"device/rp"
	"runtime/interrupt"

	"speedo/core"
)

// The RP2040 TIMER counts microseconds; core.TimerFromUS/TimerToUS map
// between that and the corrector's tick domain. The 16-bit virtual
// counter wraps every wrapUS microseconds.
const wrapUS = core.CounterWrap * (1000000 / core.TimerFreq)

const (
	alarmCompareBit = 1 << 0 // ALARM0: compare-match
	alarmWrapBit    = 1 << 1 // ALARM1: 16-bit counter wrap
)

// HWTimer adapts the RP2040 TIMER peripheral to core.TimerDriver. ALARM0
// provides the compare-match interrupt, ALARM1 fires at every 16-bit
// counter boundary to stand in for the overflow interrupt.
type HWTimer struct {
	OnCompare  func()
	OnOverflow func()

	compareOn bool
	rising    bool
}

// Interrupt handlers are package-level functions, so the driver is a
// singleton.
var hwTimer *HWTimer

func NewHWTimer() *HWTimer {
	t := &HWTimer{rising: true}
	hwTimer = t

	armWrapAlarm()
	rp.TIMER.INTR.Set(alarmCompareBit | alarmWrapBit)
	rp.TIMER.INTE.SetBits(alarmWrapBit)

	interrupt.New(rp.IRQ_TIMER_IRQ_0, timerCompareIRQ).Enable()
	interrupt.New(rp.IRQ_TIMER_IRQ_1, timerWrapIRQ).Enable()

	return t
}

func rawMicros() uint32 {
	return rp.TIMER.TIMERAWL.Get()
}

// Counter returns the virtual 16-bit counter value.
func (t *HWTimer) Counter() uint16 {
	return uint16(core.TimerFromUS(rawMicros()))
}

// SetCompare arms ALARM0 at the next instant the virtual counter reaches
// target. Targets are interpreted as 1..65535 ticks ahead of now; callers
// never schedule a match at the current tick.
func (t *HWTimer) SetCompare(target uint16) {
	ticksNow := core.TimerFromUS(rawMicros())
	delta := uint32(target - uint16(ticksNow))
	rp.TIMER.ALARM0.Set(core.TimerToUS(ticksNow + delta))
}

func (t *HWTimer) EnableCompare() {
	rp.TIMER.INTR.Set(alarmCompareBit) // drop anything stale
	rp.TIMER.INTE.SetBits(alarmCompareBit)
	t.compareOn = true
}

func (t *HWTimer) DisableCompare() {
	rp.TIMER.INTE.ClearBits(alarmCompareBit)
	rp.TIMER.ARMED.Set(alarmCompareBit) // writing 1 disarms the alarm
	t.compareOn = false
}

// SetCaptureRising records the wanted capture polarity. The pin interrupt
// is registered for both edges; alternation comes from the edge stream
// itself, so there is no hardware polarity register to flip here.
func (t *HWTimer) SetCaptureRising(rising bool) {
	t.rising = rising
}

// OverflowPending reports a counter wrap whose interrupt has not been
// serviced yet, read from the raw interrupt status of the wrap alarm.
func (t *HWTimer) OverflowPending() bool {
	return rp.TIMER.INTR.HasBits(alarmWrapBit)
}

// armWrapAlarm schedules ALARM1 for the next 16-bit counter boundary.
func armWrapAlarm() {
	now := rawMicros()
	rp.TIMER.ALARM1.Set((now/wrapUS + 1) * wrapUS)
}

func timerCompareIRQ(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(alarmCompareBit)
	if hwTimer != nil && hwTimer.compareOn && hwTimer.OnCompare != nil {
		hwTimer.OnCompare()
	}
}

func timerWrapIRQ(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(alarmWrapBit)
	armWrapAlarm()
	if hwTimer != nil && hwTimer.OnOverflow != nil {
		hwTimer.OnOverflow()
	}
}
