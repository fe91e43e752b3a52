package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-turn-maze/board"
	"github.com/beka-birhanu/vinom-turn-maze/service/i"
	"github.com/beka-birhanu/vinom-turn-maze/state"
)

var (
	_ i.StateStore = (*Memory)(nil)
	_ i.StateStore = (*File)(nil)
)

func sample() *state.GameState {
	s := state.New()
	s.PlayerCount = 2
	s.Positions[0] = board.Position{X: 1, Y: 0}
	s.Positions[1] = board.Position{X: 0, Y: 0}
	s.CurrentTurn = 1
	s.TotalMoves = 1
	return s
}

func testStore(t *testing.T, st i.StateStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := st.Load(ctx); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("Load on empty store err = %v, want ErrNotFound", err)
	}

	want := sample()
	if err := st.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}

	got.Positions[0] = board.Position{X: 2, Y: 0}
	again, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !again.Equal(want) {
		t.Fatalf("mutating a loaded state changed the store")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := st.Save(cancelled, state.New()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Save with cancelled context err = %v, want context.Canceled", err)
	}
	if _, err := st.Load(cancelled); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load with cancelled context err = %v, want context.Canceled", err)
	}
	again, err = st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !again.Equal(want) {
		t.Fatalf("cancelled save changed the store")
	}
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	testStore(t, NewFile(filepath.Join(t.TempDir(), "maze.state")))
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "maze.state"))
	for n := 0; n < 3; n++ {
		if err := f.Save(context.Background(), sample()); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "maze.state" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.state")
	if err := os.WriteFile(path, []byte{0xff, 0x01}, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := NewFile(path).Load(context.Background()); !errors.Is(err, state.ErrCorruptState) {
		t.Fatalf("Load err = %v, want ErrCorruptState", err)
	}
}
