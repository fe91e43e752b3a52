// Package state defines the durable record of a maze game.
package state

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/beka-birhanu/vinom-turn-maze/board"
)

// Storage-related errors.
var (
	ErrNotFound     = errors.New("game state not found")
	ErrCorruptState = errors.New("corrupt game state")
)

// GameState is the singleton record of one game. It is owned by whoever
// executes operations and is passed explicitly to every transition.
type GameState struct {
	PlayerCount uint32                    // Number of joined players; exclusive upper bound on ids.
	Positions   map[uint32]board.Position // Player id to position.
	CurrentTurn uint32                    // Turn pointer; acting player is CurrentTurn % PlayerCount.
	TotalMoves  uint32                    // Successfully applied moves.
	Winner      *uint32                   // Set once, on the move that reaches the goal.
}

// New returns the state of a freshly instantiated game.
func New() *GameState {
	return &GameState{
		Positions: make(map[uint32]board.Position),
	}
}

// Finished reports whether the game has a winner.
func (s *GameState) Finished() bool {
	return s.Winner != nil
}

// Clone returns a deep copy of s.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		PlayerCount: s.PlayerCount,
		Positions:   maps.Clone(s.Positions),
		CurrentTurn: s.CurrentTurn,
		TotalMoves:  s.TotalMoves,
	}
	if c.Positions == nil {
		c.Positions = make(map[uint32]board.Position)
	}
	if s.Winner != nil {
		w := *s.Winner
		c.Winner = &w
	}
	return c
}

// Equal reports whether s and o hold the same values.
func (s *GameState) Equal(o *GameState) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.PlayerCount != o.PlayerCount || s.CurrentTurn != o.CurrentTurn || s.TotalMoves != o.TotalMoves {
		return false
	}
	if (s.Winner == nil) != (o.Winner == nil) {
		return false
	}
	if s.Winner != nil && *s.Winner != *o.Winner {
		return false
	}
	return maps.Equal(s.Positions, o.Positions)
}

// PlayerIDs returns the ids present in Positions in ascending order.
func (s *GameState) PlayerIDs() []uint32 {
	return slices.Sorted(maps.Keys(s.Positions))
}

// Validate checks the structural invariants of a game state.
func (s *GameState) Validate() error {
	if uint32(len(s.Positions)) != s.PlayerCount {
		return fmt.Errorf("%w: %d positions for %d players", ErrCorruptState, len(s.Positions), s.PlayerCount)
	}
	for id := uint32(0); id < s.PlayerCount; id++ {
		p, ok := s.Positions[id]
		if !ok {
			return fmt.Errorf("%w: no position for player %d", ErrCorruptState, id)
		}
		if !board.InBounds(p.X, p.Y) || board.IsWall(p.X, p.Y) {
			return fmt.Errorf("%w: player %d on illegal cell %v", ErrCorruptState, id, p)
		}
	}
	if s.Winner != nil {
		if *s.Winner >= s.PlayerCount {
			return fmt.Errorf("%w: winner %d is not a player", ErrCorruptState, *s.Winner)
		}
		if s.Positions[*s.Winner] != board.Goal {
			return fmt.Errorf("%w: winner %d is not on the goal", ErrCorruptState, *s.Winner)
		}
	}
	// Only the winning move reaches the goal.
	for id, p := range s.Positions {
		if p == board.Goal && (s.Winner == nil || *s.Winner != id) {
			return fmt.Errorf("%w: player %d on the goal without winning", ErrCorruptState, id)
		}
	}
	return nil
}
