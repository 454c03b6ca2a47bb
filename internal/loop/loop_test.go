package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-stage-shooter/internal/interfaces"
)

func TestVirtualClockAdvances(t *testing.T) {
	start := time.Unix(100, 0)
	m := NewVirtual(start)
	assert.Equal(t, start, m.Now())

	m.Advance(16 * time.Millisecond)
	assert.Equal(t, start.Add(16*time.Millisecond), m.Now())
}

func TestRequestedDuringPumpWaitsForNextPump(t *testing.T) {
	m := NewVirtual(time.Unix(0, 0))
	calls := 0
	var frame func(time.Time)
	frame = func(time.Time) {
		calls++
		m.RequestFrame(frame)
	}
	m.RequestFrame(frame)

	assert.Equal(t, 1, m.Advance(time.Millisecond))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.Pending())

	m.Advance(time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestCancelFrame(t *testing.T) {
	m := NewVirtual(time.Unix(0, 0))
	called := false
	id := m.RequestFrame(func(time.Time) { called = true })
	require.NotZero(t, id)

	m.CancelFrame(id)
	assert.Equal(t, 0, m.Advance(time.Millisecond))
	assert.False(t, called)
}

func TestCancelInsidePump(t *testing.T) {
	m := NewVirtual(time.Unix(0, 0))
	var second interfaces.FrameID
	secondRan := false

	m.RequestFrame(func(time.Time) { m.CancelFrame(second) })
	second = m.RequestFrame(func(time.Time) { secondRan = true })

	assert.Equal(t, 1, m.Advance(time.Millisecond))
	assert.False(t, secondRan)
}

func TestWallClock(t *testing.T) {
	fixed := time.Unix(5, 0)
	m := NewManual(func() time.Time { return fixed })
	assert.Equal(t, fixed, m.Now())
}
