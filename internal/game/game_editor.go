package game

import (
	"image"
	"image/color"

	"github.com/dfsfdfse/tank-war/internal/geom"
	"github.com/dfsfdfse/tank-war/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BrushSize is how many blocks a palette pick paints.
type BrushSize int

const (
	BrushDouble BrushSize = iota
	BrushSingle
)

const (
	doubleSwatch  = 52
	singleSwatch  = 28
	swatchMargin  = 2
	paletteLeft   = 6
	paletteTop    = 24
	editorReach   = 312 // cursor tracks the mouse within this distance of the centre
	borderWidth   = 2
	cursorOpacity = 160
)

var (
	selectedBorder = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	defaultBorder  = color.RGBA{R: 153, G: 153, B: 153, A: 255}
)

type paletteButton struct {
	land tilemap.LandType
	size BrushSize
	rect image.Rectangle
}

type editorState struct {
	buttons       []paletteButton
	land          tilemap.LandType
	size          BrushSize
	cursor        geom.Vec3
	cursorVisible bool
}

// newEditor lays out a double and a single swatch per palette land, one
// land per row.
func newEditor() editorState {
	e := editorState{}
	y := paletteTop
	for _, l := range tilemap.Palette {
		x := paletteLeft
		d := image.Rect(x, y, x+doubleSwatch, y+doubleSwatch)
		x += doubleSwatch + 2*swatchMargin
		sy := y + (doubleSwatch-singleSwatch)/2
		s := image.Rect(x, sy, x+singleSwatch, sy+singleSwatch)
		e.buttons = append(e.buttons,
			paletteButton{land: l, size: BrushDouble, rect: d},
			paletteButton{land: l, size: BrushSingle, rect: s},
		)
		y += doubleSwatch + 2*swatchMargin
	}
	e.reset()
	return e
}

func (e *editorState) reset() {
	e.land = tilemap.LandTree
	e.size = BrushDouble
	e.cursorVisible = false
}

func (e *editorState) selected(b paletteButton) bool {
	return b.land == e.land && b.size == e.size
}

func (g *Game) updateEditor() {
	c := g.controls
	if c.JustPressed(ebiten.KeyEscape) {
		g.setPhase(PhaseMenu)
		return
	}
	x, y := c.CursorPosition()
	pt := image.Pt(x, y)

	if c.MouseJustPressed() {
		for _, b := range g.editor.buttons {
			if pt.In(b.rect) {
				g.editor.land, g.editor.size = b.land, b.size
				g.audio.PlayPick()
				g.log.Debugw("palette pick", "land", b.land, "double", b.size == BrushDouble)
				break
			}
		}
	}

	wx := float64(x) - float64(g.ScreenWidth())/2
	wy := float64(g.ScreenHeight())/2 - float64(y)
	if wx > -editorReach && wx < editorReach && wy > -editorReach && wy < editorReach {
		g.editor.cursor = geom.Vec3{X: wx, Y: wy, Z: 2}
		g.editor.cursorVisible = true
	}
}

func (g *Game) drawEditor(screen *ebiten.Image) {
	g.panel.Draw(screen, 0, 0)
	drawText(screen, "level editor  ESC menu", 4, 12, color.White)

	for _, b := range g.editor.buttons {
		r := b.rect
		border := defaultBorder
		if g.editor.selected(b) {
			border = selectedBorder
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.Black, false)
		tilemap.DrawLand(screen, b.land,
			float32(r.Min.X+borderWidth), float32(r.Min.Y+borderWidth),
			float32(r.Dx()-2*borderWidth), b.size == BrushDouble)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), borderWidth, border, false)
	}

	if !g.editor.cursorVisible {
		return
	}
	block := float32(g.cfg.World.Step)
	if g.editor.size == BrushDouble {
		block *= 2
	}
	sx, sy := g.toScreen(g.editor.cursor.X, g.editor.cursor.Y)
	lc := g.editor.land.Color()
	c := color.NRGBA{R: lc.R, G: lc.G, B: lc.B, A: cursorOpacity}
	vector.DrawFilledRect(screen, sx-block/2, sy-block/2, block, block, c, false)
	vector.StrokeRect(screen, sx-block/2, sy-block/2, block, block, borderWidth, selectedBorder, false)
}
