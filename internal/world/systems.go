package world

import (
	"github.com/dfsfdfse/tank-war/internal/config"
	"github.com/dfsfdfse/tank-war/internal/entities"
	"github.com/dfsfdfse/tank-war/internal/geom"
	"github.com/dfsfdfse/tank-war/internal/input"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	controlled = donburi.NewQuery(filter.Contains(Player, Movement))
	moving     = donburi.NewQuery(filter.Contains(Movement, Transform))
	animated   = donburi.NewQuery(filter.Contains(Movement, Sprite))
)

// resolve turns the front of each player's queue into direction and
// cruise speed. An empty queue stops the tank and keeps its direction.
func resolve(w donburi.World, cfg *config.GameConfig, queues map[entities.Slot]*input.Queue) {
	controlled.Each(w, func(e *donburi.Entry) {
		slot := Player.Get(e).Slot
		q, ok := queues[slot]
		if !ok {
			return
		}
		m := Movement.Get(e)
		key, held := q.Current()
		if !held {
			m.Speed = 0
			return
		}
		if d, ok := q.Binding().Direction(key); ok {
			m.Direction = d
			m.Speed = cfg.Player(slot).Moving.Speed
		}
	})
}

// integrate moves every entity by speed along its direction, then pins it
// inside the boundary. Speed stays as is when pinned.
func integrate(w donburi.World, boundary geom.Boundary) {
	moving.Each(w, func(e *donburi.Entry) {
		m := Movement.Get(e)
		t := Transform.Get(e)
		t.Position = boundary.Clamp(t.Position.Add(m.Displacement()))
	})
}

// animate flips between the two frames of the current direction on every
// tick a tank moves. Idle tanks keep whatever frame they last showed.
func animate(w donburi.World) {
	animated.Each(w, func(e *donburi.Entry) {
		m := Movement.Get(e)
		if !m.Moving() {
			return
		}
		s := Sprite.Get(e)
		frames := m.Direction.Frames()
		if s.Index == frames[0] {
			s.Index = frames[1]
		} else {
			s.Index = frames[0]
		}
	})
}
