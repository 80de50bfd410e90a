package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/dfsfdfse/tank-war/internal/config"
	"github.com/dfsfdfse/tank-war/internal/input"
	"github.com/dfsfdfse/tank-war/internal/tilemap"
	"github.com/dfsfdfse/tank-war/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// used by Layout until the config is loaded
const defaultScreenSize = 624

// Controls is everything the screens read from the player each frame.
type Controls interface {
	input.KeyEdges
	CursorPosition() (int, int)
	MouseJustPressed() bool
}

// EbitenControls reads keyboard and mouse state from ebiten.
type EbitenControls struct {
	input.Keyboard
}

func (EbitenControls) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (EbitenControls) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

type Options struct {
	// Load is called once in the load-config phase. An error stops the game.
	Load     func() (*config.GameConfig, error)
	Log      *zap.SugaredLogger
	Controls Controls
	Audio    *AudioManager
	// Resize is called with the panel size once config is loaded.
	Resize func(w, h int)
}

type Game struct {
	load     func() (*config.GameConfig, error)
	log      *zap.SugaredLogger
	controls Controls
	audio    *AudioManager
	resize   func(w, h int)

	phase      Phase
	cfg        *config.GameConfig
	panel      *tilemap.Panel
	world      *world.World
	session    string
	menu       menuState
	editor     editorState
	tickCount  int
	fullscreen bool
	quit       bool
}

func New(opts Options) *Game {
	g := &Game{
		load:     opts.Load,
		log:      opts.Log,
		controls: opts.Controls,
		audio:    opts.Audio,
		resize:   opts.Resize,
		phase:    PhaseLoadConfig,
	}
	if g.load == nil {
		g.load = config.Default
	}
	if g.log == nil {
		g.log = zap.NewNop().Sugar()
	}
	if g.controls == nil {
		g.controls = EbitenControls{}
	}
	g.menu = newMenu()
	g.editor = newEditor()
	return g
}

func (g *Game) ScreenWidth() int {
	if g.panel == nil {
		return defaultScreenSize
	}
	w, _ := g.panel.Pixels()
	return w
}

func (g *Game) ScreenHeight() int {
	if g.panel == nil {
		return defaultScreenSize
	}
	_, h := g.panel.Pixels()
	return h
}

func (g *Game) Update() error {
	g.tickCount++
	if g.controls.JustPressed(ebiten.KeyF) && g.phase != PhaseLoadConfig {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	switch g.phase {
	case PhaseLoadConfig:
		if err := g.loadConfig(); err != nil {
			return err
		}
	case PhaseMenu:
		g.updateMenu()
	case PhaseSpawn:
		g.startSession()
	case PhasePlaying:
		g.updatePlaying()
	case PhaseMapEdit:
		g.updateEditor()
	}
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) loadConfig() error {
	cfg, err := g.load()
	if err != nil {
		g.log.Errorw("config load failed", "error", err)
		return fmt.Errorf("load config: %w", err)
	}
	if cfg == nil {
		return errors.New("load config: loader returned no config")
	}
	g.cfg = cfg
	w := cfg.World
	g.panel = tilemap.NewPanel(int(w.Size.X), int(w.Size.Y), int(w.Step))
	g.world = world.New(cfg, g.log)
	g.log.Infow("config loaded",
		"size", w.Size, "step", w.Step,
		"boundaryMin", w.Boundary.Min, "boundaryMax", w.Boundary.Max)
	if g.resize != nil {
		g.resize(g.ScreenWidth(), g.ScreenHeight())
	}
	g.setPhase(PhaseMenu)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	switch g.phase {
	case PhaseLoadConfig:
		drawCentered(screen, "loading...", g.ScreenHeight()/2, color.White)
	case PhaseMenu:
		g.drawMenu(screen)
	case PhaseSpawn, PhasePlaying:
		g.drawPlaying(screen)
	case PhaseMapEdit:
		g.drawEditor(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
