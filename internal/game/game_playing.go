package game

import (
	"fmt"
	"image/color"

	"github.com/dfsfdfse/tank-war/internal/entities"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var tankColors = map[entities.Slot]color.RGBA{
	entities.Player1: {R: 255, G: 221, B: 0, A: 255},
	entities.Player2: {R: 80, G: 200, B: 120, A: 255},
}

func (g *Game) startSession() {
	g.session = uuid.New().String()
	g.world.Spawn()
	// keys pressed on the spawn frame are queued for the first tick
	g.world.Capture(g.controls)
	g.log.Infow("session started", "session", g.session, "tick", g.tickCount)
	g.setPhase(PhasePlaying)
}

func (g *Game) endSession() {
	g.world.Despawn()
	g.log.Infow("session ended", "session", g.session, "tick", g.tickCount)
	g.session = ""
}

// updatePlaying runs one frame of the motion pipeline: capture key edges,
// then resolve, integrate and animate.
func (g *Game) updatePlaying() {
	if g.controls.JustPressed(ebiten.KeyEscape) {
		g.setPhase(PhaseMenu)
		return
	}
	g.world.Capture(g.controls)
	g.world.Tick()
}

// toScreen maps world space (origin at the panel centre, y up) onto the
// screen.
func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(float64(g.ScreenWidth())/2 + x), float32(float64(g.ScreenHeight())/2 - y)
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	g.panel.Draw(screen, 0, 0)
	block := float32(g.cfg.World.Step)
	for _, t := range g.world.Tanks() {
		sx, sy := g.toScreen(t.Position.X, t.Position.Y)
		drawTank(screen, sx, sy, block, t, tankColors[t.Slot])
	}
	hud := "P1 WASD  P2 arrows  ESC menu"
	for _, t := range g.world.Tanks() {
		hud += fmt.Sprintf("  P%d(%.0f,%.0f)", t.Slot, t.Position.X, t.Position.Y)
	}
	drawText(screen, hud, 4, 12, color.White)
}

// drawTank draws a hull, a barrel along the facing direction and track
// marks whose offset follows the animation frame.
func drawTank(dst *ebiten.Image, cx, cy, block float32, t entities.Tank, c color.RGBA) {
	body := block * 0.8
	half := body / 2
	vector.DrawFilledRect(dst, cx-half, cy-half, body, body, c, false)

	dx, dy := entities.DirDelta(t.Movement.Direction)
	bx, by := float32(dx), float32(-dy)
	vector.StrokeLine(dst, cx, cy, cx+bx*block*0.6, cy+by*block*0.6, 4, color.White, false)

	// tracks run along the facing axis on both sides of the hull
	px, py := -by, bx
	phase := float32(t.Frame%2) * 3
	track := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	for side := float32(-1); side <= 1; side += 2 {
		ox, oy := cx+px*half*side, cy+py*half*side
		for s := -half + phase; s < half; s += 6 {
			x, y := ox+bx*s, oy+by*s
			vector.DrawFilledRect(dst, x-1.5, y-1.5, 3, 3, track, false)
		}
	}
}
