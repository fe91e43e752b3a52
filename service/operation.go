package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-turn-maze/board"
)

// ErrMalformedOperation is returned when a wire operation cannot be decoded.
var ErrMalformedOperation = errors.New("malformed operation")

// Action types of the wire encoding.
const (
	joinActionType byte = 1 // Join, no payload.
	moveActionType byte = 2 // Move, followed by one direction byte.
)

// OpKind identifies one of the two game operations.
type OpKind uint8

// Operation kinds.
const (
	OpJoin OpKind = iota + 1
	OpMove
)

func (k OpKind) String() string {
	switch k {
	case OpJoin:
		return "Join"
	case OpMove:
		return "Move"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Operation is a decoded game operation.
type Operation struct {
	Kind      OpKind
	Direction board.Direction // Only meaningful for OpMove.
}

// JoinOp returns a Join operation.
func JoinOp() Operation {
	return Operation{Kind: OpJoin}
}

// MoveOp returns a Move operation in direction d.
func MoveOp(d board.Direction) Operation {
	return Operation{Kind: OpMove, Direction: d}
}

func (o Operation) String() string {
	if o.Kind == OpMove {
		return fmt.Sprintf("Move(%s)", o.Direction)
	}
	return o.Kind.String()
}

// EncodeOperation returns the wire form of op.
func EncodeOperation(op Operation) ([]byte, error) {
	switch op.Kind {
	case OpJoin:
		return []byte{joinActionType}, nil
	case OpMove:
		if !op.Direction.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(op.Direction))
		}
		return []byte{moveActionType, byte(op.Direction)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformedOperation, op.Kind)
	}
}

// DecodeOperation parses the wire form of an operation.
func DecodeOperation(b []byte) (Operation, error) {
	if len(b) == 0 {
		return Operation{}, fmt.Errorf("%w: empty payload", ErrMalformedOperation)
	}

	switch b[0] {
	case joinActionType:
		if len(b) != 1 {
			return Operation{}, fmt.Errorf("%w: join carries no payload", ErrMalformedOperation)
		}
		return JoinOp(), nil
	case moveActionType:
		if len(b) != 2 {
			return Operation{}, fmt.Errorf("%w: move needs exactly one direction byte", ErrMalformedOperation)
		}
		d := board.Direction(b[1])
		if !d.Valid() {
			return Operation{}, fmt.Errorf("%w: direction %d", ErrMalformedOperation, b[1])
		}
		return MoveOp(d), nil
	default:
		return Operation{}, fmt.Errorf("%w: action type %d", ErrMalformedOperation, b[0])
	}
}
