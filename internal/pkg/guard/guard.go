// Package guard provides an explicit in-flight request guard. A second
// request for the same key while one is outstanding is rejected instead
// of queued, which keeps double-submitted bookings from racing each other.
package guard

import (
	"errors"
	"sync"
)

var ErrRequestInFlight = errors.New("request already in flight")

type InFlight struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{
		busy: make(map[string]struct{}),
	}
}

// Acquire marks key as busy. Callers must Release with the same key.
func (g *InFlight) Acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.busy[key]; exists {
		return ErrRequestInFlight
	}
	g.busy[key] = struct{}{}
	return nil
}

func (g *InFlight) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.busy, key)
}
