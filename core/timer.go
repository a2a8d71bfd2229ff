package core

// Timer tick configuration. The capture/compare timer counts at TimerFreq
// with a 16-bit counter; every period in this package is expressed in these
// ticks.
const (
	TimerFreq   = 250000 // prescaled tick rate in Hz (16 MHz crystal / 64)
	CounterMax  = 0xFFFF
	CounterWrap = 1 << 16
)

// ControlTickMs is the period of the corrector's main-loop tick.
const ControlTickMs = 100

// TimerFromUS converts microseconds to timer ticks.
func TimerFromUS(us uint32) uint32 {
	return us / (1000000 / TimerFreq)
}

// TimerToUS converts timer ticks to microseconds.
func TimerToUS(ticks uint32) uint32 {
	return ticks * (1000000 / TimerFreq)
}
