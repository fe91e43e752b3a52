package i

import (
	"context"

	"github.com/beka-birhanu/vinom-turn-maze/board"
	"github.com/beka-birhanu/vinom-turn-maze/state"
)

// Executor applies game operations one at a time against durable state.
type Executor interface {
	// Join adds a player and returns its id.
	Join(ctx context.Context) (uint32, error)

	// Move moves the player whose turn it is and returns that player's id.
	Move(ctx context.Context, d board.Direction) (uint32, error)

	// Snapshot returns a copy of the persisted state.
	Snapshot(ctx context.Context) (*state.GameState, error)
}
