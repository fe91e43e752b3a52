package state

import (
	"fmt"

	"github.com/beka-birhanu/vinom-turn-maze/board"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the persisted layout.
const (
	fieldPlayerCount protowire.Number = 1
	fieldPosition    protowire.Number = 2
	fieldCurrentTurn protowire.Number = 3
	fieldTotalMoves  protowire.Number = 4
	fieldWinner      protowire.Number = 5

	fieldPositionID protowire.Number = 1
	fieldPositionX  protowire.Number = 2
	fieldPositionY  protowire.Number = 3
)

// Marshal encodes s in protobuf wire format. Positions are written in
// ascending id order so equal states always encode to equal bytes.
func Marshal(s *GameState) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldPlayerCount, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.PlayerCount))

	for _, id := range s.PlayerIDs() {
		p := s.Positions[id]
		var rec []byte
		rec = protowire.AppendTag(rec, fieldPositionID, protowire.VarintType)
		rec = protowire.AppendVarint(rec, uint64(id))
		rec = protowire.AppendTag(rec, fieldPositionX, protowire.VarintType)
		rec = protowire.AppendVarint(rec, uint64(p.X))
		rec = protowire.AppendTag(rec, fieldPositionY, protowire.VarintType)
		rec = protowire.AppendVarint(rec, uint64(p.Y))

		b = protowire.AppendTag(b, fieldPosition, protowire.BytesType)
		b = protowire.AppendBytes(b, rec)
	}

	b = protowire.AppendTag(b, fieldCurrentTurn, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.CurrentTurn))
	b = protowire.AppendTag(b, fieldTotalMoves, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.TotalMoves))

	if s.Winner != nil {
		b = protowire.AppendTag(b, fieldWinner, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*s.Winner))
	}
	return b
}

// Unmarshal decodes a state written by Marshal and validates it.
func Unmarshal(b []byte) (*GameState, error) {
	s := New()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrCorruptState, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldPosition && typ == protowire.BytesType:
			rec, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrCorruptState, protowire.ParseError(n))
			}
			b = b[n:]
			id, pos, err := unmarshalPosition(rec)
			if err != nil {
				return nil, err
			}
			if _, dup := s.Positions[id]; dup {
				return nil, fmt.Errorf("%w: duplicate position for player %d", ErrCorruptState, id)
			}
			s.Positions[id] = pos
		case typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrCorruptState, protowire.ParseError(n))
			}
			b = b[n:]
			u, err := toUint32(v)
			if err != nil {
				return nil, err
			}
			switch num {
			case fieldPlayerCount:
				s.PlayerCount = u
			case fieldCurrentTurn:
				s.CurrentTurn = u
			case fieldTotalMoves:
				s.TotalMoves = u
			case fieldWinner:
				s.Winner = &u
			default:
				return nil, fmt.Errorf("%w: unknown field %d", ErrCorruptState, num)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected field %d of type %d", ErrCorruptState, num, typ)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func unmarshalPosition(b []byte) (uint32, board.Position, error) {
	var (
		id   uint32
		pos  board.Position
		seen uint8
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 || typ != protowire.VarintType {
			return 0, pos, fmt.Errorf("%w: malformed position record", ErrCorruptState)
		}
		b = b[n:]
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, pos, fmt.Errorf("%w: %v", ErrCorruptState, protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldPositionID:
			u, err := toUint32(v)
			if err != nil {
				return 0, pos, err
			}
			id = u
			seen |= 1
		case fieldPositionX:
			if v > board.Max {
				return 0, pos, fmt.Errorf("%w: x out of range", ErrCorruptState)
			}
			pos.X = uint8(v)
			seen |= 2
		case fieldPositionY:
			if v > board.Max {
				return 0, pos, fmt.Errorf("%w: y out of range", ErrCorruptState)
			}
			pos.Y = uint8(v)
			seen |= 4
		default:
			return 0, pos, fmt.Errorf("%w: unknown position field %d", ErrCorruptState, num)
		}
	}
	if seen != 7 {
		return 0, pos, fmt.Errorf("%w: incomplete position record", ErrCorruptState)
	}
	return id, pos, nil
}

func toUint32(v uint64) (uint32, error) {
	if v > 1<<32-1 {
		return 0, fmt.Errorf("%w: value %d overflows uint32", ErrCorruptState, v)
	}
	return uint32(v), nil
}
