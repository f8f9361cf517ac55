// Package fixedstep runs a simulation at a constant tick rate regardless of
// how often the caller renders.
package fixedstep

import "time"

// Loop accumulates elapsed frame time and spends it in whole ticks.
type Loop struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	ticks    uint64
	dropped  uint64
}

// New creates a loop ticking tickRate times per second. maxSteps bounds how
// many ticks a single Advance may run; wall time beyond that is dropped.
func New(tickRate, maxSteps int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Loop{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Step is the duration of one tick.
func (l *Loop) Step() time.Duration {
	return l.step
}

// DT is the tick length in seconds.
func (l *Loop) DT() float64 {
	return l.step.Seconds()
}

// Ticks is the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Dropped is how many tick lengths of wall time were discarded because a
// frame ran too long. No tick that runs is ever shortened or skipped.
func (l *Loop) Dropped() uint64 {
	return l.dropped
}

// Advance adds elapsed time and calls tick once per whole step. It returns
// the number of ticks run. Past maxSteps the leftover wall time is discarded
// rather than simulated later; every tick that does run is a full step.
func (l *Loop) Advance(elapsed time.Duration, tick func(dt float64)) int {
	if elapsed > 0 {
		l.acc += elapsed
	}

	dt := l.DT()
	n := 0
	for l.acc >= l.step {
		if n == l.maxSteps {
			over := l.acc / l.step
			l.dropped += uint64(over)
			l.acc -= over * l.step
			break
		}
		tick(dt)
		l.acc -= l.step
		l.ticks++
		n++
	}
	return n
}

// Alpha is the fraction of a tick waiting in the accumulator, for render
// interpolation.
func (l *Loop) Alpha() float64 {
	return float64(l.acc) / float64(l.step)
}

// Reset empties the accumulator.
func (l *Loop) Reset() {
	l.acc = 0
}
