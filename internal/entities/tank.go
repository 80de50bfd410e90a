package entities

import "github.com/dfsfdfse/tank-war/internal/geom"

// Movement drives a tank's motion and animation. Speed is a per-tick
// displacement magnitude.
type Movement struct {
	Speed     float64   `json:"speed"`
	Direction Direction `json:"direction"`
}

func (m Movement) Moving() bool {
	return m.Speed > 0
}

// Displacement is one tick's worth of movement.
func (m Movement) Displacement() geom.Vec3 {
	return m.Direction.Vector().Scale(m.Speed)
}

type Slot int

const (
	Player1 Slot = 1
	Player2 Slot = 2
)

// Tank is a read-only snapshot of a spawned tank.
type Tank struct {
	Slot     Slot
	Position geom.Vec3
	Movement Movement
	Frame    int
}
