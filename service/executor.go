package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/beka-birhanu/vinom-turn-maze/board"
	"github.com/beka-birhanu/vinom-turn-maze/service/i"
	"github.com/beka-birhanu/vinom-turn-maze/state"
	"github.com/google/uuid"
)

// Record is an accepted operation in the executor journal.
type Record struct {
	Seq    uint64    // Position in delivery order, starting at 1.
	ID     uuid.UUID // Unique id of the operation.
	Op     Operation // The operation that was applied.
	Player uint32    // Player the operation acted on.
}

// Executor is the single writer of the game state. Each operation is loaded,
// applied and persisted before the next one starts; a rejected operation is
// never persisted.
type Executor struct {
	store   i.StateStore
	logger  general_i.Logger
	base    *state.GameState // State the journal starts from.
	journal []Record
	seq     uint64
	sync.Mutex
}

// Config holds the collaborators of an Executor.
type Config struct {
	Store  i.StateStore
	Logger general_i.Logger
}

// NewExecutor returns an executor over c.Store. A store without a saved
// state is instantiated with a fresh game.
func NewExecutor(ctx context.Context, c *Config) (*Executor, error) {
	if c == nil || c.Store == nil {
		return nil, errors.New("executor needs a state store")
	}
	if c.Logger == nil {
		return nil, errors.New("executor needs a logger")
	}

	e := &Executor{
		store:  c.Store,
		logger: c.Logger,
	}

	s, err := c.Store.Load(ctx)
	switch {
	case errors.Is(err, state.ErrNotFound):
		e.base = state.New()
		if err := c.Store.Save(ctx, e.base); err != nil {
			return nil, fmt.Errorf("instantiating game: %w", err)
		}
		e.logger.Info("instantiated new game")
	case err != nil:
		return nil, fmt.Errorf("loading game: %w", err)
	default:
		e.base = s
		e.logger.Info(fmt.Sprintf("resumed game: players=%d moves=%d finished=%v", s.PlayerCount, s.TotalMoves, s.Finished()))
	}
	return e, nil
}

// Execute applies op and persists the result. On any error the durable
// state is left as it was.
func (e *Executor) Execute(ctx context.Context, op Operation) (uint32, error) {
	e.Lock()
	defer e.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s, err := e.store.Load(ctx)
	if err != nil {
		e.logger.Error(fmt.Sprintf("loading state for %s: %s", op, err))
		return 0, fmt.Errorf("loading state: %w", err)
	}

	player, err := Apply(s, op)
	if err != nil {
		e.logger.Warning(fmt.Sprintf("rejected %s: %s", op, err))
		return 0, err
	}

	if err := e.store.Save(ctx, s); err != nil {
		e.logger.Error(fmt.Sprintf("persisting state after %s: %s", op, err))
		return 0, fmt.Errorf("persisting state: %w", err)
	}

	e.seq++
	rec := Record{Seq: e.seq, ID: uuid.New(), Op: op, Player: player}
	e.journal = append(e.journal, rec)

	e.logger.Info(fmt.Sprintf("applied #%d %s for player %d (op %s)", rec.Seq, op, player, rec.ID))
	if s.Finished() {
		e.logger.Info(fmt.Sprintf("player %d reached the goal after %d moves", *s.Winner, s.TotalMoves))
	}
	return player, nil
}

// ExecuteRaw decodes a wire operation and applies it.
func (e *Executor) ExecuteRaw(ctx context.Context, payload []byte) (uint32, error) {
	op, err := DecodeOperation(payload)
	if err != nil {
		e.logger.Warning(fmt.Sprintf("dropping operation: %s", err))
		return 0, err
	}
	return e.Execute(ctx, op)
}

// Join adds a player.
func (e *Executor) Join(ctx context.Context) (uint32, error) {
	return e.Execute(ctx, JoinOp())
}

// Move moves the acting player.
func (e *Executor) Move(ctx context.Context, d board.Direction) (uint32, error) {
	return e.Execute(ctx, MoveOp(d))
}

// Snapshot returns a copy of the persisted state.
func (e *Executor) Snapshot(ctx context.Context) (*state.GameState, error) {
	e.Lock()
	defer e.Unlock()
	return e.store.Load(ctx)
}

// History returns the accepted operations in the order they were applied.
func (e *Executor) History() []Record {
	e.Lock()
	defer e.Unlock()
	out := make([]Record, len(e.journal))
	copy(out, e.journal)
	return out
}

// Base returns a copy of the state the journal starts from: a fresh game, or
// the persisted state the executor resumed.
func (e *Executor) Base() *state.GameState {
	e.Lock()
	defer e.Unlock()
	return e.base.Clone()
}

// Operations returns the journal as an operation log to replay on Base.
func (e *Executor) Operations() []Operation {
	h := e.History()
	ops := make([]Operation, len(h))
	for n, r := range h {
		ops[n] = r.Op
	}
	return ops
}
