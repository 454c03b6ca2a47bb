package component

// Boss patrols horizontally near the top of the field. HP only goes down.
type Boss struct {
	Position
	VX     float64
	Radius float64
	HP     int
	HPMax  int
	Visual Handle
}

// Defeated reports whether the boss has run out of HP.
func (b *Boss) Defeated() bool {
	return b.HP <= 0
}
