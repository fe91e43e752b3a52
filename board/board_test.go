package board

import (
	"errors"
	"testing"
)

func TestIsWall(t *testing.T) {
	want := map[Position]bool{{1, 1}: true, {1, 2}: true, {2, 1}: true, {3, 3}: true}
	for y := uint8(0); y <= Max; y++ {
		for x := uint8(0); x <= Max; x++ {
			if got := IsWall(x, y); got != want[Position{x, y}] {
				t.Fatalf("IsWall(%d, %d) = %v, want %v", x, y, got, want[Position{x, y}])
			}
		}
	}
	if IsWall(Start.X, Start.Y) || IsWall(Goal.X, Goal.Y) {
		t.Fatalf("start or goal must not be a wall")
	}
}

func TestWallsRowMajor(t *testing.T) {
	got := Walls()
	want := []Position{{1, 1}, {2, 1}, {1, 2}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("len(Walls()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walls()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStepEdges(t *testing.T) {
	for y := uint8(0); y <= Max; y++ {
		for x := uint8(0); x <= Max; x++ {
			p := Position{x, y}
			cases := []struct {
				d     Direction
				legal bool
				to    Position
			}{
				{Up, y > 0, Position{x, y - 1}},
				{Down, y < Max, Position{x, y + 1}},
				{Left, x > 0, Position{x - 1, y}},
				{Right, x < Max, Position{x + 1, y}},
			}
			for _, c := range cases {
				got, ok := Step(p, c.d)
				if ok != c.legal {
					t.Fatalf("Step(%v, %v) ok = %v, want %v", p, c.d, ok, c.legal)
				}
				if ok && got != c.to {
					t.Fatalf("Step(%v, %v) = %v, want %v", p, c.d, got, c.to)
				}
				if !ok && got != p {
					t.Fatalf("Step(%v, %v) moved to %v on an illegal step", p, c.d, got)
				}
			}
		}
	}
}

func TestStepUnknownDirection(t *testing.T) {
	if _, ok := Step(Position{2, 2}, Direction(9)); ok {
		t.Fatalf("expected unknown direction to be rejected")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"Up", Up}, {"down", Down}, {" LEFT ", Left}, {"right", Right},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("ParseDirection(north) err = %v, want ErrInvalidDirection", err)
	}
}

func TestDirectionString(t *testing.T) {
	if Right.String() != "Right" {
		t.Fatalf("Right.String() = %q", Right.String())
	}
	if Direction(7).String() != "Direction(7)" {
		t.Fatalf("Direction(7).String() = %q", Direction(7).String())
	}
}
