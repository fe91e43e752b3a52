package i

import (
	"context"

	"github.com/beka-birhanu/vinom-turn-maze/state"
)

// StateStore loads and persists the single game state.
type StateStore interface {
	// Load returns a copy of the persisted state, or state.ErrNotFound before the first Save.
	Load(ctx context.Context) (*state.GameState, error)

	// Save replaces the persisted state.
	Save(ctx context.Context, s *state.GameState) error
}
