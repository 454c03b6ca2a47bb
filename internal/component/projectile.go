// internal/component/projectile.go
package component

// Bullet — пуля игрока. Скорость постоянна.
type Bullet struct {
	Position
	Velocity
	Radius float64
	Visual Handle
}

// BossBullet — снаряд радиальной атаки босса.
type BossBullet struct {
	Position
	Velocity
	Radius float64
	Damage int
	Visual Handle
}
