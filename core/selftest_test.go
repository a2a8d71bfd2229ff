package core

import "testing"

func TestSelfTestStartsAtBaseFrequency(t *testing.T) {
	s := NewSelfTest()

	freq, active := s.Tick()
	if !active {
		t.Fatal("Expected ramp active at boot")
	}
	if freq != RampBaseHz {
		t.Errorf("Expected %v Hz at elapsed 0, got %v", float32(RampBaseHz), freq)
	}
}

func TestSelfTestRampRisesMonotonically(t *testing.T) {
	s := NewSelfTest()

	last, _ := s.Tick()
	for i := 1; i < RampTicks; i++ {
		freq, active := s.Tick()
		if !active {
			t.Fatalf("Ramp went inactive at tick %d", i)
		}
		if freq <= last {
			t.Fatalf("Tick %d: expected rising frequency, got %v after %v", i, freq, last)
		}
		last = freq
	}
}

func TestSelfTestPeakIsContinuous(t *testing.T) {
	s := NewSelfTest()

	for i := 0; i < RampTicks; i++ {
		s.Tick()
	}
	if s.State() != RampDown {
		t.Fatalf("Expected RampDown after %d ticks, got state %d", RampTicks, s.State())
	}

	freq, _ := s.Tick()
	if freq != RampBaseHz+RampSpanHz {
		t.Errorf("Expected peak %v Hz at start of descent, got %v",
			float32(RampBaseHz+RampSpanHz), freq)
	}
}

func TestSelfTestFallsThenHandsOver(t *testing.T) {
	s := NewSelfTest()

	for i := 0; i < RampTicks; i++ {
		s.Tick()
	}

	last, _ := s.Tick()
	for i := 1; i < RampTicks; i++ {
		freq, active := s.Tick()
		if !active {
			t.Fatalf("Ramp went inactive at descent tick %d", i)
		}
		if freq >= last {
			t.Fatalf("Descent tick %d: expected falling frequency, got %v after %v", i, freq, last)
		}
		last = freq
	}

	if s.State() != Normal {
		t.Fatalf("Expected Normal after full ramp, got state %d", s.State())
	}

	// Normal is terminal.
	for i := 0; i < 5; i++ {
		if _, active := s.Tick(); active {
			t.Fatal("Expected ramp to stay inactive after handover")
		}
	}
}

func TestSelfTestHalfPeriodShrinksAsRampRises(t *testing.T) {
	s := NewSelfTest()

	freq, _ := s.Tick()
	lastHalf := uint32(TimerFreq/freq) / 2
	for i := 1; i < RampTicks; i++ {
		freq, _ = s.Tick()
		half := uint32(TimerFreq/freq) / 2
		if half >= lastHalf {
			t.Fatalf("Tick %d: expected strictly shrinking half-period, got %d after %d",
				i, half, lastHalf)
		}
		lastHalf = half
	}
}
