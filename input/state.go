package input

import (
	"sync"
)

// KeySet is a snapshot of held keys
type KeySet map[Key]struct{}

func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Source reports the keys currently held. Implementations are safe to call
// from the game loop while a capture goroutine updates them.
type Source interface {
	Held() KeySet
}

// HeldKeys is a lock-protected set written by key press and release events
type HeldKeys struct {
	mu   sync.Mutex
	keys KeySet
}

func NewHeldKeys() *HeldKeys {
	return &HeldKeys{keys: make(KeySet)}
}

func (h *HeldKeys) Press(k Key) {
	h.mu.Lock()
	h.keys[k] = struct{}{}
	h.mu.Unlock()
}

func (h *HeldKeys) Release(k Key) {
	h.mu.Lock()
	delete(h.keys, k)
	h.mu.Unlock()
}

// Held returns a copy of the set
func (h *HeldKeys) Held() KeySet {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(KeySet, len(h.keys))
	for k := range h.keys {
		out[k] = struct{}{}
	}
	return out
}

type merged []Source

// Merge reports a key as held when any of srcs holds it
func Merge(srcs ...Source) Source {
	return merged(srcs)
}

func (m merged) Held() KeySet {
	out := make(KeySet)
	for _, src := range m {
		for k := range src.Held() {
			out[k] = struct{}{}
		}
	}
	return out
}
