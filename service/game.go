package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-turn-maze/board"
	"github.com/beka-birhanu/vinom-turn-maze/state"
)

// Game-related errors. Each one aborts the whole operation with no
// change to the game state.
var (
	ErrGameFinished     = errors.New("game finished")
	ErrNoPlayers        = errors.New("no players")
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrWallCollision    = errors.New("wall collision")
	ErrInvalidDirection = board.ErrInvalidDirection
)

// Join adds a new player on the start cell and returns its id. Joining is
// allowed at any time before the game has a winner, regardless of turn.
func Join(s *state.GameState) (uint32, error) {
	if s.Finished() {
		return 0, ErrGameFinished
	}

	if s.Positions == nil {
		s.Positions = make(map[uint32]board.Position)
	}

	id := s.PlayerCount
	s.Positions[id] = board.Start
	s.PlayerCount = id + 1
	return id, nil
}

// ActingPlayer returns the id of the player whose turn it is. It is derived
// from the current player count, so a late join can shift the rotation.
func ActingPlayer(s *state.GameState) (uint32, error) {
	if s.PlayerCount == 0 {
		return 0, ErrNoPlayers
	}
	return s.CurrentTurn % s.PlayerCount, nil
}

// Move moves the acting player one cell in direction d and returns its id.
// All checks run before the state is touched.
func Move(s *state.GameState, d board.Direction) (uint32, error) {
	if s.Finished() {
		return 0, ErrGameFinished
	}

	current, err := ActingPlayer(s)
	if err != nil {
		return 0, err
	}

	from, ok := s.Positions[current]
	if !ok {
		return 0, fmt.Errorf("%w: no position for player %d", state.ErrCorruptState, current)
	}

	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}

	to, ok := board.Step(from, d)
	if !ok {
		return 0, ErrOutOfBounds
	}

	if board.IsWall(to.X, to.Y) {
		return 0, ErrWallCollision
	}

	s.Positions[current] = to
	s.TotalMoves++

	if to == board.Goal {
		w := current
		s.Winner = &w
	} else {
		s.CurrentTurn++
	}
	return current, nil
}

// Apply runs op against s and returns the id of the player it acted on.
func Apply(s *state.GameState, op Operation) (uint32, error) {
	switch op.Kind {
	case OpJoin:
		return Join(s)
	case OpMove:
		return Move(s, op.Direction)
	default:
		return 0, fmt.Errorf("%w: unknown kind %d", ErrMalformedOperation, op.Kind)
	}
}

// Replay applies ops in order to a fresh game. Rejected operations leave the
// state untouched and their errors are reported at the same index.
func Replay(ops []Operation) (*state.GameState, []error) {
	return ReplayFrom(state.New(), ops)
}

// ReplayFrom applies ops in order to a copy of base.
func ReplayFrom(base *state.GameState, ops []Operation) (*state.GameState, []error) {
	s := base.Clone()
	errs := make([]error, len(ops))
	for n, op := range ops {
		_, errs[n] = Apply(s, op)
	}
	return s, errs
}
