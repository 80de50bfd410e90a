package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	buttonWidth  = 140
	buttonHeight = 50
	buttonMargin = 20
)

var (
	buttonNormal  = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	buttonHovered = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	buttonText    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	logoColor     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

type menuAction int

const (
	actionSinglePlayer menuAction = iota
	actionDoublePlayer
	actionLevelEditor
)

type menuButton struct {
	text   string
	action menuAction
}

type menuState struct {
	buttons []menuButton
	focus   int
	hovered int // -1 when the cursor is over no button
}

func newMenu() menuState {
	return menuState{
		buttons: []menuButton{
			{text: "single player", action: actionSinglePlayer},
			{text: "double player", action: actionDoublePlayer},
			{text: "level editor", action: actionLevelEditor},
		},
		hovered: -1,
	}
}

// buttonRect lays the buttons out in a centred column below the logo.
func (g *Game) buttonRect(i int) image.Rectangle {
	total := len(g.menu.buttons)*(buttonHeight+2*buttonMargin) + logoHeight
	top := (g.ScreenHeight()-total)/2 + logoHeight
	x := (g.ScreenWidth() - buttonWidth) / 2
	y := top + i*(buttonHeight+2*buttonMargin) + buttonMargin
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

const logoHeight = 80

func (g *Game) updateMenu() {
	c := g.controls
	if c.JustPressed(ebiten.KeyQ) {
		g.quit = true
		return
	}

	x, y := c.CursorPosition()
	cursor := image.Pt(x, y)
	g.menu.hovered = -1
	for i := range g.menu.buttons {
		if cursor.In(g.buttonRect(i)) {
			g.menu.hovered = i
			break
		}
	}

	n := len(g.menu.buttons)
	if c.JustPressed(ebiten.KeyArrowDown) {
		g.menu.focus = (g.menu.focus + 1) % n
	}
	if c.JustPressed(ebiten.KeyArrowUp) {
		g.menu.focus = (g.menu.focus + n - 1) % n
	}

	switch {
	case c.MouseJustPressed() && g.menu.hovered >= 0:
		g.activate(g.menu.buttons[g.menu.hovered])
	case c.JustPressed(ebiten.KeyEnter) || c.JustPressed(ebiten.KeyKPEnter):
		g.activate(g.menu.buttons[g.menu.focus])
	}
}

func (g *Game) activate(b menuButton) {
	g.log.Infow("menu button pressed", "button", b.text)
	g.audio.PlaySelect()
	switch b.action {
	case actionSinglePlayer, actionDoublePlayer:
		g.setPhase(PhaseSpawn)
	case actionLevelEditor:
		g.setPhase(PhaseMapEdit)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	first := g.buttonRect(0)
	drawCentered(screen, "TANK WAR", first.Min.Y-buttonMargin-logoHeight/2, logoColor)
	for i, b := range g.menu.buttons {
		r := g.buttonRect(i)
		bg := buttonNormal
		if i == g.menu.hovered {
			bg = buttonHovered
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
		if i == g.menu.focus {
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, buttonText, false)
		}
		drawCentered(screen, b.text, r.Min.Y+r.Dy()/2+4, buttonText)
	}
	drawCentered(screen, "arrows + enter or click / Q quit / F fullscreen", g.ScreenHeight()-12, color.RGBA{R: 128, G: 128, B: 128, A: 255})
}
