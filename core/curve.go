package core

import "errors"

// CurvePoint maps a measured input frequency to the frequency the
// speedometer should be driven at instead, both in Hz.
type CurvePoint struct {
	In  float32
	Out float32
}

// CorrectionTable is the piecewise-linear calibration curve. Point 0 is
// fixed at the origin; points 1-3 come from bench calibration and may be
// updated over the command console.
type CorrectionTable [4]CurvePoint

// Default calibration, measured against a GPS reference on the bench.
var defaultTable = CorrectionTable{
	{0, 0},
	{35.46, 29.55},
	{62.48, 56.23},
	{106.6, 91.68},
}

// DefaultTable returns the compiled-in calibration curve.
func DefaultTable() CorrectionTable {
	return defaultTable
}

var (
	// ErrPointIndex is returned for point indices outside 1..3.
	ErrPointIndex = errors.New("point index out of range")

	// ErrNotMonotonic is returned when an update would leave the curve
	// without strictly increasing input frequencies (or an output
	// frequency below its left neighbor), which would make the
	// interpolation degenerate.
	ErrNotMonotonic = errors.New("point would break curve ordering")
)

// Lookup evaluates the curve at inFreq. Frequencies beyond the last point
// stay on the last segment's slope.
func (t *CorrectionTable) Lookup(inFreq float32) float32 {
	i := 3
	if inFreq < t[1].In {
		i = 1
	} else if inFreq < t[2].In {
		i = 2
	}

	di := t[i].In - t[i-1].In
	do := t[i].Out - t[i-1].Out
	return t[i-1].Out + (inFreq-t[i-1].In)*do/di
}

// SetPoint replaces one of the mutable points 1-3. Updates are validated
// against the neighboring points so a console typo cannot produce a
// zero-width or inverted segment.
func (t *CorrectionTable) SetPoint(index int, in, out float32) error {
	if index < 1 || index > 3 {
		return ErrPointIndex
	}
	if in <= t[index-1].In || (index < 3 && in >= t[index+1].In) {
		return ErrNotMonotonic
	}
	if out < t[index-1].Out || (index < 3 && out > t[index+1].Out) {
		return ErrNotMonotonic
	}
	t[index] = CurvePoint{In: in, Out: out}
	return nil
}
