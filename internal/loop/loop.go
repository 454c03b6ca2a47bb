// Package loop provides the frame scheduler hosts drive from their own update loop.
package loop

import (
	"time"

	"go-stage-shooter/internal/interfaces"
)

type request struct {
	id interfaces.FrameID
	fn func(now time.Time)
}

// Manual — FrameScheduler, который хост прокачивает сам, раз за обновление экрана.
// Колбэки, запрошенные во время Pump, ждут следующего Pump.
type Manual struct {
	clock   func() time.Time
	virtual time.Time
	nextID  interfaces.FrameID
	pending []request
	running []request
}

var _ interfaces.FrameScheduler = (*Manual)(nil)

// NewManual создаёт планировщик с заданными часами.
func NewManual(clock func() time.Time) *Manual {
	if clock == nil {
		clock = time.Now
	}
	return &Manual{clock: clock}
}

// NewVirtual создаёт планировщик на виртуальных часах; время идёт только в Pump/Advance.
func NewVirtual(start time.Time) *Manual {
	m := &Manual{virtual: start}
	m.clock = func() time.Time { return m.virtual }
	return m
}

func (m *Manual) Now() time.Time {
	return m.clock()
}

func (m *Manual) RequestFrame(fn func(now time.Time)) interfaces.FrameID {
	m.nextID++
	m.pending = append(m.pending, request{id: m.nextID, fn: fn})
	return m.nextID
}

func (m *Manual) CancelFrame(id interfaces.FrameID) {
	for i, r := range m.pending {
		if r.id == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
	for i := range m.running {
		if m.running[i].id == id {
			m.running[i].fn = nil
			return
		}
	}
}

// Pump runs every callback pending at call time with the given timestamp and
// returns how many ran. A callback cancelled by an earlier one in the same pump is skipped.
func (m *Manual) Pump(now time.Time) int {
	m.virtual = now
	m.running = m.pending
	m.pending = nil
	defer func() { m.running = nil }()

	ran := 0
	for i := range m.running {
		fn := m.running[i].fn
		if fn == nil {
			continue
		}
		m.running[i].fn = nil
		fn(now)
		ran++
	}
	return ran
}

// Advance сдвигает виртуальные часы на d и вызывает Pump.
func (m *Manual) Advance(d time.Duration) int {
	return m.Pump(m.virtual.Add(d))
}

// Pending — число ожидающих запросов кадра.
func (m *Manual) Pending() int {
	return len(m.pending)
}
