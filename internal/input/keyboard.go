package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyEdges reports key transitions for the current frame.
type KeyEdges interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

// Keyboard reads edges from ebiten's input state.
type Keyboard struct{}

func (Keyboard) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (Keyboard) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }
