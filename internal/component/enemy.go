package component

// Enemy летит по прямой, направление выбирается один раз при появлении.
type Enemy struct {
	Position
	Velocity
	Radius float64
	Damage int
	Visual Handle
}
