package utils

import (
	"math"
	"time"

	"go-stage-shooter/internal/config"
)

// ClampDelta converts the wall-clock gap between two frames into a simulation step.
// A long stall (hidden window, debugger) never advances the world by more than MaxDeltaTime.
func ClampDelta(elapsed time.Duration) float64 {
	dt := elapsed.Seconds()
	if dt < 0 {
		return 0
	}
	return math.Min(config.MaxDeltaTime, dt)
}

// DistSq возвращает квадрат расстояния между двумя точками.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Dist возвращает расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap reports whether two circles touch or intersect.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rr := r1 + r2
	return DistSq(x1, y1, x2, y2) <= rr*rr
}

// BoxContains проверяет, лежит ли точка в прямоугольнике с центром (cx, cy).
func BoxContains(cx, cy, halfW, halfH, px, py float64) bool {
	return math.Abs(px-cx) <= halfW && math.Abs(py-cy) <= halfH
}

// OutOfBounds reports whether a point left the w×h field by more than margin.
func OutOfBounds(x, y, w, h, margin float64) bool {
	return x < -margin || x > w+margin || y < -margin || y > h+margin
}
