package api

import (
	"context"
	"errors"
	"fmt"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/beka-birhanu/vinom-turn-maze/board"
	"github.com/beka-birhanu/vinom-turn-maze/service"
	"github.com/beka-birhanu/vinom-turn-maze/service/i"
	"github.com/beka-birhanu/vinom-turn-maze/state"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Server struct {
	executor i.Executor
	logger   general_i.Logger

	UnimplementedMazeServer
}

func RegisterNewMazeServer(gsr grpc.ServiceRegistrar, e i.Executor, l general_i.Logger) error {
	if e == nil || l == nil {
		return errors.New("maze server needs an executor and a logger")
	}
	server := &Server{
		executor: e,
		logger:   l,
	}

	RegisterMazeServer(gsr, server)
	return nil
}

func (s *Server) Join(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt32Value, error) {
	id, err := s.executor.Join(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.UInt32(id), nil
}

func (s *Server) Move(ctx context.Context, r *wrapperspb.StringValue) (*wrapperspb.UInt32Value, error) {
	d, err := board.ParseDirection(r.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	id, err := s.executor.Move(ctx, d)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.UInt32(id), nil
}

func (s *Server) State(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	gs, err := s.executor.Snapshot(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("loading snapshot: %s", err))
		return nil, toStatus(err)
	}

	snapshot, err := StateToStruct(gs)
	if err != nil {
		s.logger.Error(fmt.Sprintf("encoding snapshot: %s", err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return snapshot, nil
}

// StateToStruct renders a game state as a protobuf Struct.
func StateToStruct(gs *state.GameState) (*structpb.Struct, error) {
	positions := make([]any, 0, len(gs.Positions))
	for _, id := range gs.PlayerIDs() {
		p := gs.Positions[id]
		positions = append(positions, map[string]any{
			"id": id,
			"x":  uint32(p.X),
			"y":  uint32(p.Y),
		})
	}

	var winner any
	if gs.Winner != nil {
		winner = *gs.Winner
	}

	return structpb.NewStruct(map[string]any{
		"player_count": gs.PlayerCount,
		"current_turn": gs.CurrentTurn,
		"total_moves":  gs.TotalMoves,
		"winner":       winner,
		"positions":    positions,
	})
}

// toStatus maps game and decode errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrGameFinished),
		errors.Is(err, service.ErrNoPlayers),
		errors.Is(err, service.ErrOutOfBounds),
		errors.Is(err, service.ErrWallCollision):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, service.ErrInvalidDirection),
		errors.Is(err, service.ErrMalformedOperation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
