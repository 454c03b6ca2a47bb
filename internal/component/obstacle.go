package component

// ObstacleColor is the tint of an obstacle; hosts use it as a render tag.
type ObstacleColor string

const (
	ObstacleRed   ObstacleColor = "red"
	ObstacleBlue  ObstacleColor = "blue"
	ObstacleGreen ObstacleColor = "green"
)

// ObstacleColors lists every colour in the order the spawner draws from.
var ObstacleColors = []ObstacleColor{ObstacleRed, ObstacleBlue, ObstacleGreen}

// Obstacle — препятствие, которое игрок может разрушить тапом.
type Obstacle struct {
	Position
	Radius    float64
	Color     ObstacleColor
	Life      float64 // оставшееся время жизни, если Unlimited == false
	Unlimited bool
	FromBoss  bool
	Visual    Handle
	Bubble    Handle // подсказка "тапни", 0 — нет
}

// Expired reports whether a finite-lifetime obstacle ran out of time.
func (o *Obstacle) Expired() bool {
	return !o.Unlimited && o.Life <= 0
}
