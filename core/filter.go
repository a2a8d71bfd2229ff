package core

// MaxFreqStepHz bounds how far the perceived input frequency may move per
// control tick. Tuned for a 100 ms tick against the nominal vehicle pulse
// rate; re-derive it if TimerFreq or the tick period changes.
const MaxFreqStepHz = 10.0

// FreqFilter rate-limits frequency changes so a single corrupted capture
// cannot yank the output. The cost is added latency when the real
// acceleration exceeds the bound.
type FreqFilter struct {
	maxStep float32
	last    float32
}

func NewFreqFilter(maxStepHz float32) *FreqFilter {
	return &FreqFilter{maxStep: maxStepHz}
}

// Apply moves the filtered frequency toward target by at most maxStep and
// returns the new value.
func (f *FreqFilter) Apply(target float32) float32 {
	delta := target - f.last
	if delta > f.maxStep {
		delta = f.maxStep
	} else if delta < -f.maxStep {
		delta = -f.maxStep
	}
	f.last += delta
	return f.last
}

// Last returns the current filtered frequency.
func (f *FreqFilter) Last() float32 {
	return f.last
}

// Reset clears the filter history when the input stops.
func (f *FreqFilter) Reset() {
	f.last = 0
}
