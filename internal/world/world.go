package world

import (
	"sort"

	"github.com/dfsfdfse/tank-war/internal/config"
	"github.com/dfsfdfse/tank-war/internal/entities"
	"github.com/dfsfdfse/tank-war/internal/input"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

var slots = [...]entities.Slot{entities.Player1, entities.Player2}

// World owns the tank entities and both players' input queues for one
// play session.
type World struct {
	ecs    donburi.World
	cfg    *config.GameConfig
	queues map[entities.Slot]*input.Queue
	log    *zap.SugaredLogger
}

func New(cfg *config.GameConfig, log *zap.SugaredLogger) *World {
	queues := make(map[entities.Slot]*input.Queue, len(slots))
	for _, s := range slots {
		queues[s] = input.NewQueue(input.BindingFor(s))
	}
	return &World{ecs: donburi.NewWorld(), cfg: cfg, queues: queues, log: log}
}

// Spawn creates both tanks from their configured moving state and grid
// position.
func (w *World) Spawn() {
	for _, s := range slots {
		pc := w.cfg.Player(s)
		e := w.ecs.Entry(w.ecs.Create(Player, Movement, Transform, Sprite))
		Player.SetValue(e, PlayerData{Slot: s})
		Movement.SetValue(e, pc.Moving)
		pos := w.cfg.World.SpawnPosition(pc.Position)
		Transform.SetValue(e, TransformData{Position: pos})
		Sprite.SetValue(e, SpriteData{Index: pc.Moving.Direction.Frames()[0]})
		w.log.Debugw("tank spawned", "slot", s, "position", pos, "direction", pc.Moving.Direction)
	}
}

// Despawn removes every tank and forgets all held keys.
func (w *World) Despawn() {
	var doomed []donburi.Entity
	controlled.Each(w.ecs, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, ent := range doomed {
		w.ecs.Remove(ent)
	}
	for _, q := range w.queues {
		q.Reset()
	}
	w.log.Debugw("tanks despawned", "count", len(doomed))
}

// Capture feeds this frame's key edges into both players' queues.
func (w *World) Capture(edges input.KeyEdges) {
	for _, s := range slots {
		w.queues[s].Capture(edges)
	}
}

// Tick runs one frame: resolve, then integrate and animate.
func (w *World) Tick() {
	resolve(w.ecs, w.cfg, w.queues)
	integrate(w.ecs, w.cfg.World.Boundary)
	animate(w.ecs)
}

// Queue returns slot's input queue.
func (w *World) Queue(slot entities.Slot) *input.Queue {
	return w.queues[slot]
}

// Tanks returns snapshots of every spawned tank ordered by slot.
func (w *World) Tanks() []entities.Tank {
	var out []entities.Tank
	controlled.Each(w.ecs, func(e *donburi.Entry) {
		out = append(out, entities.Tank{
			Slot:     Player.Get(e).Slot,
			Position: Transform.Get(e).Position,
			Movement: *Movement.Get(e),
			Frame:    Sprite.Get(e).Index,
		})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

func (w *World) Len() int {
	return controlled.Count(w.ecs)
}
