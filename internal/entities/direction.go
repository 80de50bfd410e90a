package entities

import (
	"encoding/json"
	"fmt"

	"github.com/dfsfdfse/tank-war/internal/geom"
)

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every Direction in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

var directionNames = [...]string{
	DirUp:    "Up",
	DirDown:  "Down",
	DirLeft:  "Left",
	DirRight: "Right",
}

var directionVectors = [...]geom.Vec3{
	DirUp:    {X: 0, Y: 1},
	DirDown:  {X: 0, Y: -1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// tank sheet layout: two frames per direction, still then moving
var directionFrames = [...][2]int{
	DirUp:    {0, 1},
	DirDown:  {2, 3},
	DirLeft:  {4, 5},
	DirRight: {6, 7},
}

func (d Direction) valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Vector returns the unit displacement for d. World y grows upward.
func (d Direction) Vector() geom.Vec3 {
	if !d.valid() {
		return geom.Vec3{}
	}
	return directionVectors[d]
}

// Frames returns the [still, moving] sprite indices for d.
func (d Direction) Frames() [2]int {
	if !d.valid() {
		return directionFrames[DirUp]
	}
	return directionFrames[d]
}

func DirDelta(d Direction) (dx, dy float64) {
	v := d.Vector()
	return v.X, v.Y
}

func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return DirUp, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.valid() {
		return nil, fmt.Errorf("marshal %v", d)
	}
	return json.Marshal(directionNames[d])
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("direction: %w", err)
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
