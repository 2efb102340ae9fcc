package app

import "time"

// Accumulator converts variable frame times into whole fixed steps. A frame
// longer than the clamp is cut short so a stall never turns into a burst of
// catch-up ticks.
type Accumulator struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
}

func NewAccumulator(step, maxFrame time.Duration) *Accumulator {
	if step <= 0 {
		step = time.Second / 60
	}
	if maxFrame < step {
		maxFrame = step
	}
	return &Accumulator{step: step, maxFrame: maxFrame}
}

// Add banks a frame and returns how many steps are due.
func (a *Accumulator) Add(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	a.acc += min(frame, a.maxFrame)
	n := int(a.acc / a.step)
	a.acc -= time.Duration(n) * a.step
	return n
}

// Alpha is the fraction of a step left over, for render interpolation.
func (a *Accumulator) Alpha() float64 {
	return float64(a.acc) / float64(a.step)
}

func (a *Accumulator) Step() time.Duration { return a.step }
