package event

const (
	StageStarted      EventType = "StageStarted"      // Data: int (уровень)
	StageRefused      EventType = "StageRefused"      // HP == 0 при старте
	StageStopped      EventType = "StageStopped"      //
	EnemyDestroyed    EventType = "EnemyDestroyed"    // пуля игрока попала во врага
	BossDamaged       EventType = "BossDamaged"       // Data: BossHit
	BossDefeated      EventType = "BossDefeated"      //
	PlayerHit         EventType = "PlayerHit"         // Data: int (урон)
	PlayerDefeated    EventType = "PlayerDefeated"    //
	ObstacleDestroyed EventType = "ObstacleDestroyed" // Data: component.Reward
)

// BossHit is the payload of BossDamaged.
type BossHit struct {
	HP, HPMax int
}
