// Package store provides implementations of the game state store.
package store

import (
	"context"
	"sync"

	"github.com/beka-birhanu/vinom-turn-maze/state"
)

// Memory keeps the game state in process memory.
type Memory struct {
	state *state.GameState
	mu    sync.RWMutex
}

// NewMemory creates an empty memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the stored state.
func (m *Memory) Load(ctx context.Context) (*state.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == nil {
		return nil, state.ErrNotFound
	}
	return m.state.Clone(), nil
}

// Save stores a copy of s.
func (m *Memory) Save(ctx context.Context, s *state.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s.Clone()
	return nil
}
