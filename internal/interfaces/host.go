package interfaces

import (
	"time"

	"go-stage-shooter/internal/component"
)

// Field — поверхность, на которой идёт стадия.
type Field interface {
	Bounds() (w, h float64)
}

// PlayerTracker сообщает текущую позицию игрока в координатах поля.
type PlayerTracker interface {
	PlayerPos() (x, y float64)
}

// PlayerState is the slice of the host's persistent record the stage reads and writes.
type PlayerState struct {
	HP      int
	StageLv int
	Exp     int
}

// StateAccess is the host's transactional state capability. Mutate applies fn to a
// draft and commits it; the stage never keeps a copy of the result.
type StateAccess interface {
	Read() PlayerState
	Mutate(fn func(d *PlayerState))
}

// Renderer creates, places and frees host visuals. tag carries per-kind detail
// (the obstacle colour, the bubble label).
type Renderer interface {
	Attach(kind component.Kind, tag string) component.Handle
	Place(h component.Handle, r component.Rect)
	Release(h component.Handle)
}

// FrameID — идентификатор запроса кадра. Ноль не выдаётся.
type FrameID uint64

// FrameScheduler вызывает один колбэк на обновление экрана.
type FrameScheduler interface {
	Now() time.Time
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}
