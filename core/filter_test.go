package core

import "testing"

func TestFilterClampsLargeJump(t *testing.T) {
	f := NewFreqFilter(10)

	// A 1000 Hz jump moves the output by at most one step per tick,
	// regardless of magnitude.
	got := f.Apply(1000)
	if got != 10 {
		t.Errorf("Expected first step to 10 Hz, got %v", got)
	}
	got = f.Apply(1000)
	if got != 20 {
		t.Errorf("Expected second step to 20 Hz, got %v", got)
	}
}

func TestFilterClampsDownwardJump(t *testing.T) {
	f := NewFreqFilter(10)
	f.Apply(10) // settle at 10

	got := f.Apply(0)
	if got != 0 {
		t.Errorf("Expected step down to 0, got %v", got)
	}

	f2 := NewFreqFilter(10)
	f2.Apply(10)
	got = f2.Apply(-1000)
	if got != 0 {
		t.Errorf("Expected clamped step down to 0, got %v", got)
	}
}

func TestFilterPassesSmallChanges(t *testing.T) {
	f := NewFreqFilter(10)

	tests := []float32{5, 12, 8.5, 3.25}
	for _, target := range tests {
		got := f.Apply(target)
		if got != target {
			t.Errorf("Expected small change to pass through to %v, got %v", target, got)
		}
	}
}

func TestFilterConvergesToSteadyInput(t *testing.T) {
	f := NewFreqFilter(10)

	var got float32
	for i := 0; i < 10; i++ {
		got = f.Apply(35.46)
	}
	if got != 35.46 {
		t.Errorf("Expected convergence to 35.46, got %v", got)
	}
}

func TestFilterReset(t *testing.T) {
	f := NewFreqFilter(10)
	f.Apply(10)
	f.Reset()

	if f.Last() != 0 {
		t.Errorf("Expected filter at 0 after reset, got %v", f.Last())
	}
}
