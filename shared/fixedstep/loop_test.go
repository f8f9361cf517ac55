package fixedstep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceRunsWholeTicks(t *testing.T) {
	l := New(60, 5)
	var dts []float64
	tick := func(dt float64) { dts = append(dts, dt) }

	assert.Equal(t, 0, l.Advance(10*time.Millisecond, tick))
	assert.Equal(t, 1, l.Advance(10*time.Millisecond, tick))
	assert.Equal(t, 2, l.Advance(30*time.Millisecond, tick))

	assert.Len(t, dts, 3)
	for _, dt := range dts {
		assert.InDelta(t, 1.0/60.0, dt, 1e-9)
	}
	assert.Equal(t, uint64(3), l.Ticks())
}

func TestAdvanceCapsCatchUp(t *testing.T) {
	l := New(60, 3)
	var dts []float64
	tick := func(dt float64) { dts = append(dts, dt) }

	ran := l.Advance(time.Second, tick)

	assert.Equal(t, 3, ran)
	assert.Equal(t, uint64(57), l.Dropped())
	assert.Less(t, l.Alpha(), 1.0)

	// Only wall time is dropped: the next frame still runs full ticks.
	assert.Equal(t, 1, l.Advance(l.Step(), tick))
	assert.Len(t, dts, 4)
	for _, dt := range dts {
		assert.InDelta(t, l.DT(), dt, 1e-12)
	}
	assert.Equal(t, uint64(4), l.Ticks())
}

func TestAdvanceIgnoresNegativeElapsed(t *testing.T) {
	l := New(60, 3)
	assert.Equal(t, 0, l.Advance(-time.Second, func(float64) {}))
	assert.Zero(t, l.Alpha())
}

func TestNewDefaults(t *testing.T) {
	l := New(0, 0)
	assert.Equal(t, time.Second/60, l.Step())

	l.Advance(time.Second/60+time.Millisecond, func(float64) {})
	l.Reset()
	assert.Zero(t, l.Alpha())
}
