package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Queue records one player's held movement keys. The front is the most
// recently pressed key that is still held; releasing it hands control to
// the next most recent press.
type Queue struct {
	binding *Binding
	keys    []ebiten.Key // front first
}

func NewQueue(b *Binding) *Queue {
	return &Queue{binding: b, keys: make([]ebiten.Key, 0, len(b.keys))}
}

func (q *Queue) Binding() *Binding { return q.binding }

// Press records key as the newest press. Unbound keys and keys already
// held are ignored.
func (q *Queue) Press(key ebiten.Key) {
	if !q.binding.Bound(key) || q.index(key) >= 0 {
		return
	}
	q.keys = append(q.keys, 0)
	copy(q.keys[1:], q.keys)
	q.keys[0] = key
}

// Release removes key wherever it sits, keeping the order of the rest.
func (q *Queue) Release(key ebiten.Key) {
	i := q.index(key)
	if i < 0 {
		return
	}
	q.keys = append(q.keys[:i], q.keys[i+1:]...)
}

// Current peeks the front of the queue.
func (q *Queue) Current() (ebiten.Key, bool) {
	if len(q.keys) == 0 {
		return 0, false
	}
	return q.keys[0], true
}

// Keys returns a front-first copy of the held keys.
func (q *Queue) Keys() []ebiten.Key {
	out := make([]ebiten.Key, len(q.keys))
	copy(out, q.keys)
	return out
}

func (q *Queue) Len() int { return len(q.keys) }

func (q *Queue) Reset() { q.keys = q.keys[:0] }

// Capture applies one frame's edges for the four bound keys. Keys are
// visited in binding order; a key pressed and released in the same frame
// ends up not held.
func (q *Queue) Capture(edges KeyEdges) {
	for _, k := range q.binding.keys {
		if edges.JustPressed(k) {
			q.Press(k)
		}
		if edges.JustReleased(k) {
			q.Release(k)
		}
	}
}

func (q *Queue) index(key ebiten.Key) int {
	for i, k := range q.keys {
		if k == key {
			return i
		}
	}
	return -1
}
