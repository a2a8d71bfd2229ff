package core

// SelfTestState enumerates the startup ramp states.
type SelfTestState uint8

const (
	RampUp SelfTestState = iota
	RampDown
	Normal
)

// Ramp shape: start at RampBaseHz, climb RampSpanHz over RampTicks control
// ticks, then descend symmetrically. Normal is terminal for the rest of
// the run.
const (
	RampBaseHz = 3.0
	RampSpanHz = 300.0
	RampTicks  = 30
)

// SelfTest synthesizes a rising-then-falling output frequency at boot so
// the generation path is exercised end to end before any real input
// arrives.
type SelfTest struct {
	state   SelfTestState
	elapsed uint32
}

func NewSelfTest() *SelfTest {
	return &SelfTest{state: RampUp}
}

// State returns the current ramp state.
func (s *SelfTest) State() SelfTestState {
	return s.state
}

// Tick advances the ramp by one control tick and returns the frequency to
// synthesize. active is false once the ramp has handed over to the normal
// pipeline.
func (s *SelfTest) Tick() (freq float32, active bool) {
	switch s.state {
	case RampUp:
		freq = RampBaseHz + RampSpanHz*float32(s.elapsed)/RampTicks
		s.elapsed++
		if s.elapsed >= RampTicks {
			s.state = RampDown
			s.elapsed = 0
		}
		return freq, true
	case RampDown:
		freq = RampBaseHz + RampSpanHz*float32(RampTicks-s.elapsed)/RampTicks
		s.elapsed++
		if s.elapsed >= RampTicks {
			s.state = Normal
		}
		return freq, true
	default:
		return 0, false
	}
}
