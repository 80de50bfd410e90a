package input

import (
	"github.com/dfsfdfse/tank-war/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps a player's four movement keys to directions.
type Binding struct {
	keys [4]ebiten.Key // up, left, down, right
	dirs map[ebiten.Key]entities.Direction
}

// NewBinding takes keys in up, left, down, right order.
func NewBinding(up, left, down, right ebiten.Key) *Binding {
	return &Binding{
		keys: [4]ebiten.Key{up, left, down, right},
		dirs: map[ebiten.Key]entities.Direction{
			up:    entities.DirUp,
			left:  entities.DirLeft,
			down:  entities.DirDown,
			right: entities.DirRight,
		},
	}
}

var (
	Player1Keys = NewBinding(ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD)
	Player2Keys = NewBinding(ebiten.KeyArrowUp, ebiten.KeyArrowLeft, ebiten.KeyArrowDown, ebiten.KeyArrowRight)
)

// BindingFor returns the static key binding of slot.
func BindingFor(slot entities.Slot) *Binding {
	if slot == entities.Player2 {
		return Player2Keys
	}
	return Player1Keys
}

func (b *Binding) Bound(key ebiten.Key) bool {
	_, ok := b.dirs[key]
	return ok
}

func (b *Binding) Direction(key ebiten.Key) (entities.Direction, bool) {
	d, ok := b.dirs[key]
	return d, ok
}

func (b *Binding) Keys() [4]ebiten.Key { return b.keys }
