//go:build !tinygo

package core

// SimTimer is a software model of the 16-bit capture/compare timer used by
// the host build and the package tests. Advance steps the counter tick by
// tick and fires the same handlers the hardware interrupts would.
type SimTimer struct {
	counter       uint16
	compare       uint16
	compareOn     bool
	captureRising bool
	overflowLatch bool

	// OnCompare and OnOverflow stand in for the interrupt handlers.
	OnCompare  func()
	OnOverflow func()
}

func NewSimTimer() *SimTimer {
	return &SimTimer{captureRising: true}
}

func (t *SimTimer) Counter() uint16 {
	return t.counter
}

func (t *SimTimer) SetCompare(target uint16) {
	t.compare = target
}

func (t *SimTimer) EnableCompare() {
	t.compareOn = true
}

func (t *SimTimer) DisableCompare() {
	t.compareOn = false
}

func (t *SimTimer) SetCaptureRising(rising bool) {
	t.captureRising = rising
}

func (t *SimTimer) CaptureRising() bool {
	return t.captureRising
}

func (t *SimTimer) OverflowPending() bool {
	return t.overflowLatch
}

// LatchOverflow marks a wrap as latched but unserviced, the state hardware
// is in between the counter wrapping and the overflow interrupt running.
func (t *SimTimer) LatchOverflow() {
	t.overflowLatch = true
}

// Advance steps the counter, firing overflow and compare-match callbacks
// as the hardware would.
func (t *SimTimer) Advance(ticks uint32) {
	for ; ticks > 0; ticks-- {
		t.counter++
		if t.counter == 0 {
			t.overflowLatch = true
			if t.OnOverflow != nil {
				t.OnOverflow()
			}
			t.overflowLatch = false
		}
		if t.compareOn && t.counter == t.compare && t.OnCompare != nil {
			t.OnCompare()
		}
	}
}

// SimGPIO records pin writes for the host build and tests.
type SimGPIO struct {
	pins    map[GPIOPin]bool
	Toggles int
}

func NewSimGPIO() *SimGPIO {
	return &SimGPIO{pins: make(map[GPIOPin]bool)}
}

func (g *SimGPIO) ConfigureOutput(pin GPIOPin) error {
	g.pins[pin] = false
	return nil
}

func (g *SimGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	g.pins[pin] = true
	return nil
}

func (g *SimGPIO) SetPin(pin GPIOPin, value bool) error {
	if g.pins[pin] != value {
		g.Toggles++
	}
	g.pins[pin] = value
	return nil
}

func (g *SimGPIO) GetPin(pin GPIOPin) (bool, error) {
	return g.pins[pin], nil
}

func (g *SimGPIO) ReadPin(pin GPIOPin) bool {
	return g.pins[pin]
}
