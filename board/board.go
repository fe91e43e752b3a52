// Package board holds the fixed layout of the maze: its bounds, the start
// and goal cells and the impassable cells.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for a direction outside Up, Down, Left, Right.
var ErrInvalidDirection = errors.New("invalid direction")

// Board constants.
const (
	Size = 5        // Width and height of the grid.
	Max  = Size - 1 // Largest valid coordinate on either axis.
)

// Position is a cell on the grid.
type Position struct {
	X uint8
	Y uint8
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

var (
	// Start is the cell every new player is placed on.
	Start = Position{X: 0, Y: 0}
	// Goal is the cell that wins the game.
	Goal = Position{X: Max, Y: Max}

	walls = map[Position]struct{}{
		{X: 1, Y: 1}: {},
		{X: 1, Y: 2}: {},
		{X: 2, Y: 1}: {},
		{X: 3, Y: 3}: {},
	}
)

// IsWall reports whether (x, y) is impassable.
func IsWall(x, y uint8) bool {
	_, ok := walls[Position{X: x, Y: y}]
	return ok
}

// InBounds reports whether (x, y) lies on the grid.
func InBounds(x, y uint8) bool {
	return x <= Max && y <= Max
}

// Walls returns the impassable cells in row-major order.
func Walls() []Position {
	out := make([]Position, 0, len(walls))
	for y := uint8(0); y <= Max; y++ {
		for x := uint8(0); x <= Max; x++ {
			if IsWall(x, y) {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// Direction is one of the four moves a player can make.
type Direction uint8

// Directions. The numeric values are part of the wire encoding.
const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"Up", "Down", "Left", "Right"}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d <= Right
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Step returns the neighbour of p in direction d. The second result is false
// when the move would leave the grid; there is no wraparound or clamping.
func Step(p Position, d Direction) (Position, bool) {
	switch d {
	case Up:
		if p.Y > 0 {
			return Position{X: p.X, Y: p.Y - 1}, true
		}
	case Down:
		if p.Y < Max {
			return Position{X: p.X, Y: p.Y + 1}, true
		}
	case Left:
		if p.X > 0 {
			return Position{X: p.X - 1, Y: p.Y}, true
		}
	case Right:
		if p.X < Max {
			return Position{X: p.X + 1, Y: p.Y}, true
		}
	}
	return p, false
}
