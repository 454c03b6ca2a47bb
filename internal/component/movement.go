// component/movement.go
package component

// Position — центр сущности в координатах поля
type Position struct {
	X, Y float64
}

// Velocity — скорость в единицах поля в секунду
type Velocity struct {
	VX, VY float64
}

// Step advances the position by v*dt.
func (p *Position) Step(v Velocity, dt float64) {
	p.X += v.VX * dt
	p.Y += v.VY * dt
}
