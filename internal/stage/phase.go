package stage

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
