package tilemap

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LandType is a terrain kind the editor can paint. Gameplay never reads it.
type LandType int

const (
	LandNone LandType = iota
	LandTree
	LandIce
	LandBrick
	LandIron
	LandWater
	LandGrass
)

// Palette lists the land types the editor offers, in button order.
var Palette = []LandType{LandTree, LandIce, LandIron, LandBrick}

var landNames = map[LandType]string{
	LandNone:  "none",
	LandTree:  "tree",
	LandIce:   "ice",
	LandBrick: "brick",
	LandIron:  "iron",
	LandWater: "water",
	LandGrass: "grass",
}

var landColors = map[LandType]color.RGBA{
	LandNone:  {R: 0, G: 0, B: 0, A: 255},
	LandTree:  {R: 34, G: 139, B: 34, A: 255},
	LandIce:   {R: 200, G: 230, B: 255, A: 255},
	LandBrick: {R: 178, G: 34, B: 34, A: 255},
	LandIron:  {R: 169, G: 169, B: 169, A: 255},
	LandWater: {R: 30, G: 144, B: 255, A: 255},
	LandGrass: {R: 124, G: 252, B: 0, A: 255},
}

func (l LandType) String() string {
	if n, ok := landNames[l]; ok {
		return n
	}
	return "unknown"
}

func (l LandType) Color() color.RGBA {
	if c, ok := landColors[l]; ok {
		return c
	}
	return landColors[LandNone]
}

// Panel is the play field: Width x Height blocks of TileSize pixels.
type Panel struct {
	Width    int
	Height   int
	TileSize int
}

func NewPanel(width, height, tileSize int) *Panel {
	return &Panel{Width: width, Height: height, TileSize: tileSize}
}

// Pixels returns the panel size in pixels.
func (p *Panel) Pixels() (int, int) {
	return p.Width * p.TileSize, p.Height * p.TileSize
}

// Draw paints the panel background and its block grid at (ox, oy).
func (p *Panel) Draw(dst *ebiten.Image, ox, oy float32) {
	grid := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	w, h := p.Pixels()
	vector.DrawFilledRect(dst, ox, oy, float32(w), float32(h), color.Black, false)
	for x := 0; x <= p.Width; x++ {
		px := ox + float32(x*p.TileSize)
		vector.StrokeLine(dst, px, oy, px, oy+float32(h), 1, grid, false)
	}
	for y := 0; y <= p.Height; y++ {
		py := oy + float32(y*p.TileSize)
		vector.StrokeLine(dst, ox, py, ox+float32(w), py, 1, grid, false)
	}
}

// DrawLand paints a swatch of l. Double swatches are split into four
// quarters like a 2x2 block.
func DrawLand(dst *ebiten.Image, l LandType, x, y, size float32, double bool) {
	c := l.Color()
	if !double {
		vector.DrawFilledRect(dst, x, y, size, size, c, false)
		return
	}
	half := size / 2
	for i := 0; i < 4; i++ {
		qx := x + float32(i%2)*half
		qy := y + float32(i/2)*half
		vector.DrawFilledRect(dst, qx+1, qy+1, half-2, half-2, c, false)
	}
}
