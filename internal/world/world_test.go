package world

import (
	"testing"

	"github.com/dfsfdfse/tank-war/internal/config"
	"github.com/dfsfdfse/tank-war/internal/entities"
	"github.com/dfsfdfse/tank-war/internal/geom"
	"github.com/dfsfdfse/tank-war/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

func testConfig(speed float64) *config.GameConfig {
	return &config.GameConfig{
		World: config.WorldConfig{
			Size: geom.Vec3{X: 26, Y: 26},
			Step: 24,
			Boundary: geom.Boundary{
				Min: geom.Vec3{X: -300, Y: -300},
				Max: geom.Vec3{X: 300, Y: 300},
			},
		},
		Player1: config.PlayerConfig{
			Moving:   entities.Movement{Speed: speed, Direction: entities.DirUp},
			Position: geom.Vec3{X: -4, Y: -12, Z: 1},
		},
		Player2: config.PlayerConfig{
			Moving:   entities.Movement{Speed: speed, Direction: entities.DirDown},
			Position: geom.Vec3{X: 4, Y: -12, Z: 1},
		},
	}
}

func newSpawned(t *testing.T, speed float64) *World {
	t.Helper()
	w := New(testConfig(speed), logging.Nop())
	w.Spawn()
	return w
}

func tankEntry(t *testing.T, w *World, slot entities.Slot) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	controlled.Each(w.ecs, func(e *donburi.Entry) {
		if Player.Get(e).Slot == slot {
			found = e
		}
	})
	if found == nil {
		t.Fatalf("no tank for slot %d", slot)
	}
	return found
}

func tank(t *testing.T, w *World, slot entities.Slot) entities.Tank {
	t.Helper()
	for _, tk := range w.Tanks() {
		if tk.Slot == slot {
			return tk
		}
	}
	t.Fatalf("no tank for slot %d", slot)
	return entities.Tank{}
}

type frameEdges struct {
	pressed, released []ebiten.Key
}

func (f frameEdges) JustPressed(k ebiten.Key) bool  { return contains(f.pressed, k) }
func (f frameEdges) JustReleased(k ebiten.Key) bool { return contains(f.released, k) }

func contains(keys []ebiten.Key, k ebiten.Key) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}

func press(keys ...ebiten.Key) frameEdges   { return frameEdges{pressed: keys} }
func release(keys ...ebiten.Key) frameEdges { return frameEdges{released: keys} }

func TestSpawnUsesConfig(t *testing.T) {
	w := newSpawned(t, 2)
	if w.Len() != 2 {
		t.Fatalf("expected 2 tanks, got %d", w.Len())
	}
	p1 := tank(t, w, entities.Player1)
	if want := (geom.Vec3{X: -96, Y: -288, Z: 1}); p1.Position != want {
		t.Fatalf("player1 spawned at %+v, want %+v", p1.Position, want)
	}
	if p1.Frame != 0 || p1.Movement.Direction != entities.DirUp || p1.Movement.Speed != 2 {
		t.Fatalf("player1 spawned with %+v", p1)
	}
	p2 := tank(t, w, entities.Player2)
	if p2.Frame != entities.DirDown.Frames()[0] {
		t.Fatalf("player2 frame %d, want %d", p2.Frame, entities.DirDown.Frames()[0])
	}
}

func TestEmptyQueueStopsButKeepsDirection(t *testing.T) {
	w := newSpawned(t, 2)
	Movement.SetValue(tankEntry(t, w, entities.Player1), entities.Movement{Speed: 4, Direction: entities.DirLeft})
	w.Tick()
	got := tank(t, w, entities.Player1).Movement
	if got.Speed != 0 || got.Direction != entities.DirLeft {
		t.Fatalf("after idle tick movement = %+v, want speed 0 facing left", got)
	}
}

func TestMostRecentKeyWinsAndRevertsOnRelease(t *testing.T) {
	w := newSpawned(t, 3)
	w.Capture(press(ebiten.KeyW))
	w.Tick()
	w.Capture(press(ebiten.KeyA))
	w.Tick()
	if got := tank(t, w, entities.Player1).Movement; got.Direction != entities.DirLeft || got.Speed != 3 {
		t.Fatalf("after W then A: %+v, want left at 3", got)
	}
	w.Capture(release(ebiten.KeyA))
	w.Tick()
	if got := tank(t, w, entities.Player1).Movement; got.Direction != entities.DirUp || got.Speed != 3 {
		t.Fatalf("after releasing A: %+v, want up at 3", got)
	}
	w.Capture(release(ebiten.KeyW))
	w.Tick()
	if got := tank(t, w, entities.Player1).Movement; got.Direction != entities.DirUp || got.Speed != 0 {
		t.Fatalf("after releasing W: %+v, want stopped facing up", got)
	}
}

func TestPlayersAreIndependent(t *testing.T) {
	w := newSpawned(t, 2)
	w.Tick() // settle both tanks to idle
	before := tank(t, w, entities.Player2)
	w.Capture(press(ebiten.KeyD))
	w.Tick()
	if got := tank(t, w, entities.Player2); got != before {
		t.Fatalf("player2 changed on player1 input: %+v -> %+v", before, got)
	}
	w.Capture(press(ebiten.KeyArrowLeft))
	w.Tick()
	if got := tank(t, w, entities.Player2).Movement; got.Direction != entities.DirLeft {
		t.Fatalf("player2 direction %v, want left", got.Direction)
	}
	if got := tank(t, w, entities.Player1).Movement; got.Direction != entities.DirRight {
		t.Fatalf("player1 direction %v, want right", got.Direction)
	}
}

func TestIntegrateMovesBySpeedTimesUnit(t *testing.T) {
	cfg := testConfig(0)
	for _, d := range entities.Directions {
		ecs := donburi.NewWorld()
		e := ecs.Entry(ecs.Create(Movement, Transform))
		start := geom.Vec3{X: 10, Y: -20, Z: 1}
		Transform.SetValue(e, TransformData{Position: start})
		Movement.SetValue(e, entities.Movement{Speed: 2.5, Direction: d})
		integrate(ecs, cfg.World.Boundary)
		want := start.Add(d.Vector().Scale(2.5))
		if got := Transform.Get(e).Position; got != want {
			t.Fatalf("%v: moved to %+v, want %+v", d, got, want)
		}
	}
}

func TestIntegrateClampsAtBoundary(t *testing.T) {
	maxX := testConfig(0).World.Boundary.Max.X
	w := newSpawned(t, 5)
	e := tankEntry(t, w, entities.Player1)
	Transform.SetValue(e, TransformData{Position: geom.Vec3{X: maxX - 1, Y: 0}})
	w.Capture(press(ebiten.KeyD))
	w.Tick()
	if got := tank(t, w, entities.Player1).Position; got.X != maxX || got.Y != 0 {
		t.Fatalf("landed at %+v, want (%v, 0)", got, maxX)
	}
	// held against the wall: pinned, speed untouched
	for i := 0; i < 5; i++ {
		w.Tick()
	}
	got := tank(t, w, entities.Player1)
	if got.Position.X != maxX || got.Movement.Speed != 5 {
		t.Fatalf("pinned tank = %+v, want x=%v speed 5", got, maxX)
	}
}

func TestAnimatorTogglesWhileMoving(t *testing.T) {
	w := newSpawned(t, 1)
	w.Capture(press(ebiten.KeyS))
	want := []int{2, 3, 2, 3}
	for i, f := range want {
		w.Tick()
		if got := tank(t, w, entities.Player1).Frame; got != f {
			t.Fatalf("tick %d frame %d, want %d", i, got, f)
		}
	}
}

func TestAnimatorFreezesWhenIdle(t *testing.T) {
	w := newSpawned(t, 1)
	w.Capture(press(ebiten.KeyW))
	w.Tick()
	w.Capture(release(ebiten.KeyW))
	w.Tick()
	frozen := tank(t, w, entities.Player1)
	if frozen.Movement.Speed != 0 || frozen.Movement.Direction != entities.DirUp {
		t.Fatalf("expected idle facing up, got %+v", frozen.Movement)
	}
	for i := 0; i < 4; i++ {
		w.Tick()
		if got := tank(t, w, entities.Player1).Frame; got != frozen.Frame {
			t.Fatalf("idle tick %d changed frame %d -> %d", i, frozen.Frame, got)
		}
	}
}

func TestDespawnClearsTanksAndQueues(t *testing.T) {
	w := newSpawned(t, 1)
	w.Capture(press(ebiten.KeyW, ebiten.KeyArrowUp))
	w.Despawn()
	if w.Len() != 0 || len(w.Tanks()) != 0 {
		t.Fatalf("tanks left after despawn: %d", w.Len())
	}
	for _, s := range []entities.Slot{entities.Player1, entities.Player2} {
		if w.Queue(s).Len() != 0 {
			t.Fatalf("slot %d queue not reset", s)
		}
	}
	w.Spawn()
	if w.Len() != 2 {
		t.Fatalf("respawn produced %d tanks", w.Len())
	}
}
