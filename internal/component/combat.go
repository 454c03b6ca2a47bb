package component

// Timers — обратные отсчёты спавна. Уменьшаются на dt внутри тика.
type Timers struct {
	Enemy      float64
	BossShot   float64
	BossSummon float64
	PlayerShot float64
}

// Reward is what destroying an obstacle earns. The host decides when to apply it.
type Reward struct {
	Energy int
	Cat    string
}
