package component

// Handle is an opaque reference to a host-owned visual. Zero means "no visual".
type Handle uint64

// Kind tells the host which kind of visual to create.
type Kind int

const (
	KindBullet Kind = iota
	KindEnemy
	KindBoss
	KindBossBullet
	KindObstacle
	KindBubble
)

func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindBossBullet:
		return "boss_bullet"
	case KindObstacle:
		return "obstacle"
	case KindBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// Rect is a placement in field coordinates, top-left based.
type Rect struct {
	X, Y, W, H float64
}

// CenterRect converts a centre and a nominal size into a top-left placement.
func CenterRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
