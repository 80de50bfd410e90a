package world

import (
	"github.com/dfsfdfse/tank-war/internal/entities"
	"github.com/dfsfdfse/tank-war/internal/geom"

	"github.com/yohamta/donburi"
)

type TransformData struct {
	Position geom.Vec3
}

// SpriteData is the tank sheet frame the renderer shows.
type SpriteData struct {
	Index int
}

type PlayerData struct {
	Slot entities.Slot
}

var (
	Movement  = donburi.NewComponentType[entities.Movement]()
	Transform = donburi.NewComponentType[TransformData]()
	Sprite    = donburi.NewComponentType[SpriteData]()
	Player    = donburi.NewComponentType[PlayerData]()
)
