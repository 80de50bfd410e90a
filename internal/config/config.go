package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/dfsfdfse/tank-war/internal/entities"
	"github.com/dfsfdfse/tank-war/internal/geom"
)

//go:embed default.json
var defaultResource []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// GameConfig is the resource record loaded once before play.
type GameConfig struct {
	World   WorldConfig  `json:"world"`
	Player1 PlayerConfig `json:"player1"`
	Player2 PlayerConfig `json:"player2"`
}

type WorldConfig struct {
	Size     geom.Vec3     `json:"size"`
	Step     float64       `json:"step"`
	Boundary geom.Boundary `json:"boundary"`
}

type PlayerConfig struct {
	Moving   entities.Movement `json:"moving"`
	Position geom.Vec3         `json:"position"`
}

// Player returns the config for slot. Unknown slots get player1's.
func (c *GameConfig) Player(slot entities.Slot) PlayerConfig {
	if slot == entities.Player2 {
		return c.Player2
	}
	return c.Player1
}

// SpawnPosition converts a grid-unit position into world space.
func (w WorldConfig) SpawnPosition(grid geom.Vec3) geom.Vec3 {
	return geom.Vec3{X: grid.X * w.Step, Y: grid.Y * w.Step, Z: grid.Z}
}

// Load reads and validates the resource file at path.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default decodes the embedded resource file.
func Default() (*GameConfig, error) {
	return Decode(defaultResource)
}

// resourceFile mirrors GameConfig with pointers so absent keys can be told
// apart from zero values. Unknown keys are ignored.
type resourceFile struct {
	World   *worldFile  `json:"world"`
	Player1 *playerFile `json:"player1"`
	Player2 *playerFile `json:"player2"`
}

type worldFile struct {
	Size     *geom.Vec3    `json:"size"`
	Step     *float64      `json:"step"`
	Boundary *boundaryFile `json:"boundary"`
}

type boundaryFile struct {
	Min *geom.Vec3 `json:"min"`
	Max *geom.Vec3 `json:"max"`
}

type playerFile struct {
	Moving   *movingFile `json:"moving"`
	Position *geom.Vec3  `json:"position"`
}

type movingFile struct {
	Speed     *float64            `json:"speed"`
	Direction *entities.Direction `json:"direction"`
}

func missing(field string) error {
	return fmt.Errorf("%w: %s is missing", ErrInvalid, field)
}

func (f *resourceFile) config() (*GameConfig, error) {
	if f.World == nil {
		return nil, missing("world")
	}
	w := f.World
	switch {
	case w.Size == nil:
		return nil, missing("world.size")
	case w.Step == nil:
		return nil, missing("world.step")
	case w.Boundary == nil:
		return nil, missing("world.boundary")
	case w.Boundary.Min == nil:
		return nil, missing("world.boundary.min")
	case w.Boundary.Max == nil:
		return nil, missing("world.boundary.max")
	}
	cfg := &GameConfig{World: WorldConfig{
		Size:     *w.Size,
		Step:     *w.Step,
		Boundary: geom.Boundary{Min: *w.Boundary.Min, Max: *w.Boundary.Max},
	}}
	for _, p := range []struct {
		name string
		src  *playerFile
		dst  *PlayerConfig
	}{{"player1", f.Player1, &cfg.Player1}, {"player2", f.Player2, &cfg.Player2}} {
		switch {
		case p.src == nil:
			return nil, missing(p.name)
		case p.src.Moving == nil:
			return nil, missing(p.name + ".moving")
		case p.src.Moving.Speed == nil:
			return nil, missing(p.name + ".moving.speed")
		case p.src.Moving.Direction == nil:
			return nil, missing(p.name + ".moving.direction")
		case p.src.Position == nil:
			return nil, missing(p.name + ".position")
		}
		*p.dst = PlayerConfig{
			Moving:   entities.Movement{Speed: *p.src.Moving.Speed, Direction: *p.src.Moving.Direction},
			Position: *p.src.Position,
		}
	}
	return cfg, nil
}

func Decode(data []byte) (*GameConfig, error) {
	var f resourceFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func integral(v float64) bool {
	return v == math.Trunc(v)
}

// Validate rejects configs the motion systems cannot run on. It is only
// called at load time. Step and size must be whole numbers because the
// panel is laid out in pixels.
func (c *GameConfig) Validate() error {
	w := c.World
	if w.Step <= 0 || math.IsNaN(w.Step) || math.IsInf(w.Step, 0) || !integral(w.Step) {
		return fmt.Errorf("%w: world.step must be a positive whole number, got %v", ErrInvalid, w.Step)
	}
	if w.Size.X <= 0 || w.Size.Y <= 0 || !integral(w.Size.X) || !integral(w.Size.Y) {
		return fmt.Errorf("%w: world.size must be positive whole numbers, got %v x %v", ErrInvalid, w.Size.X, w.Size.Y)
	}
	b := w.Boundary
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return fmt.Errorf("%w: world.boundary min %v exceeds max %v", ErrInvalid, b.Min, b.Max)
	}
	for _, p := range []struct {
		name string
		cfg  PlayerConfig
	}{{"player1", c.Player1}, {"player2", c.Player2}} {
		s := p.cfg.Moving.Speed
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: %s.moving.speed must be a non-negative number, got %v", ErrInvalid, p.name, s)
		}
	}
	return nil
}
