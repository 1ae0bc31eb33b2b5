package session

import (
	"fmt"
	"testing"

	"github.com/milk9111/tilemaze/levels"
	"github.com/milk9111/tilemaze/maze"
)

const (
	F = maze.TileFloor
	W = maze.TileWall
	S = maze.TileStart
	G = maze.TileGoal
	M = maze.TileObstacleSpawn
)

func mustLevel(t *testing.T, grid [][]maze.Tile, tileSize float64) *maze.Level {
	t.Helper()
	l, err := maze.NewLevel(grid, tileSize)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return l
}

func setOf(t *testing.T, lvls ...*maze.Level) *levels.Set {
	t.Helper()
	set := &levels.Set{}
	for i, l := range lvls {
		set.Append(levels.Entry{Name: fmt.Sprintf("test %d", i+1), Level: l})
	}
	return set
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil set")
	}
	if _, err := New(&levels.Set{}); err == nil {
		t.Fatalf("expected error for empty set")
	}
}

func TestNewSessionSpawnsAtStart(t *testing.T) {
	s, err := New(setOf(t, mustLevel(t, [][]maze.Tile{
		{W, W, W},
		{W, S, W},
		{W, G, W},
	}, 10)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if row, col := s.Player().Cell(); row != 1 || col != 1 {
		t.Fatalf("expected spawn at 1,1, got %d,%d", row, col)
	}
	if s.Index() != 0 || s.Count() != 1 {
		t.Fatalf("expected index 0 of 1, got %d of %d", s.Index(), s.Count())
	}
}

func TestTryMove(t *testing.T) {
	grid := [][]maze.Tile{
		{W, W, W, W},
		{W, S, F, W},
		{W, G, F, W},
		{W, W, W, W},
	}

	cases := []struct {
		name    string
		dir     Direction
		want    bool
		wantRow int
		wantCol int
	}{
		{"into_floor", DirRight, true, 1, 2},
		{"into_goal", DirDown, true, 2, 1},
		{"into_wall_up", DirUp, false, 1, 1},
		{"into_wall_left", DirLeft, false, 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := New(setOf(t, mustLevel(t, grid, 10)))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := s.TryMove(c.dir); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if row, col := s.Player().Cell(); row != c.wantRow || col != c.wantCol {
				t.Fatalf("expected cell %d,%d, got %d,%d", c.wantRow, c.wantCol, row, col)
			}
		})
	}

	t.Run("off_the_grid", func(t *testing.T) {
		s, err := New(setOf(t, mustLevel(t, [][]maze.Tile{{S, F}}, 10)))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if s.TryMove(DirUp) {
			t.Fatalf("expected no move off the grid")
		}
		if row, col := s.Player().Cell(); row != 0 || col != 0 {
			t.Fatalf("expected cell unchanged, got %d,%d", row, col)
		}
		if !s.TryMove(DirRight) {
			t.Fatalf("expected move along the row")
		}
	})
}

func TestTickHitObstacleRestarts(t *testing.T) {
	// the only open cell holds a pinned obstacle, so the spawned player
	// overlaps it on every tick
	s, err := New(setOf(t, mustLevel(t, [][]maze.Tile{
		{W},
		{M},
		{W},
	}, 10)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		if got := s.Tick(); got != TickHitObstacle {
			t.Fatalf("tick %d: expected TickHitObstacle, got %v", i, got)
		}
		if row, col := s.Player().Cell(); row != 1 || col != 0 {
			t.Fatalf("tick %d: expected respawn at 1,0, got %d,%d", i, row, col)
		}
	}
	if s.Index() != 0 {
		t.Fatalf("a hit must not advance the level")
	}
}

func TestTickReachedGoalDoesNotAdvance(t *testing.T) {
	s, err := New(setOf(t,
		mustLevel(t, [][]maze.Tile{{S, G}}, 10),
		mustLevel(t, [][]maze.Tile{{S, F}}, 10),
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := s.Tick(); got != TickNone {
		t.Fatalf("expected TickNone on the start cell, got %v", got)
	}
	if !s.TryMove(DirRight) {
		t.Fatalf("expected move onto the goal")
	}
	for i := 0; i < 2; i++ {
		if got := s.Tick(); got != TickReachedGoal {
			t.Fatalf("tick %d: expected TickReachedGoal, got %v", i, got)
		}
	}
	if s.Index() != 0 {
		t.Fatalf("Tick must not advance on its own")
	}
}

func TestAdvanceWrapsAround(t *testing.T) {
	s, err := New(setOf(t,
		mustLevel(t, [][]maze.Tile{{S, G}}, 10),
		mustLevel(t, [][]maze.Tile{{F, S}}, 10),
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Advance()
	if s.Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Index())
	}
	if row, col := s.Player().Cell(); row != 0 || col != 1 {
		t.Fatalf("expected spawn at the second level's start, got %d,%d", row, col)
	}

	s.Advance()
	if s.Index() != 0 {
		t.Fatalf("expected wrap to index 0, got %d", s.Index())
	}
	if row, col := s.Player().Cell(); row != 0 || col != 0 {
		t.Fatalf("expected spawn at the first level's start, got %d,%d", row, col)
	}
}

func TestSwitchTo(t *testing.T) {
	s, err := New(setOf(t,
		mustLevel(t, [][]maze.Tile{{S, G}}, 10),
		mustLevel(t, [][]maze.Tile{{F, S}}, 10),
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.SwitchTo(1); err != nil {
		t.Fatalf("SwitchTo: %v", err)
	}
	if s.Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Index())
	}
	if row, col := s.Player().Cell(); row != 0 || col != 1 {
		t.Fatalf("expected spawn at 0,1, got %d,%d", row, col)
	}

	if err := s.SwitchTo(2); err == nil {
		t.Fatalf("expected error for index past the end")
	}
	if err := s.SwitchTo(-1); err == nil {
		t.Fatalf("expected error for negative index")
	}
}

func TestRestartResetsObstacles(t *testing.T) {
	lvl := mustLevel(t, [][]maze.Tile{
		{W, W},
		{S, M},
		{F, F},
		{W, W},
	}, 10)
	s, err := New(setOf(t, lvl))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	initial := lvl.Obstacles()[0].Bounds()
	for i := 0; i < 5; i++ {
		if got := s.Tick(); got != TickNone {
			t.Fatalf("tick %d: expected TickNone, got %v", i, got)
		}
	}
	if lvl.Obstacles()[0].Bounds() == initial {
		t.Fatalf("expected the obstacle to move")
	}

	s.Restart()
	if got := lvl.Obstacles()[0].Bounds(); got != initial {
		t.Fatalf("expected bounds %+v after restart, got %+v", initial, got)
	}
	if row, col := s.Player().Cell(); row != 1 || col != 0 {
		t.Fatalf("expected respawn at 1,0, got %d,%d", row, col)
	}
}

func TestSpawnCellFallbacks(t *testing.T) {
	t.Run("no_start_first_open_cell", func(t *testing.T) {
		s, err := New(setOf(t, mustLevel(t, [][]maze.Tile{
			{W, W},
			{W, F},
		}, 10)))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if row, col := s.Player().Cell(); row != 1 || col != 1 {
			t.Fatalf("expected spawn at the first open cell, got %d,%d", row, col)
		}
	})

	t.Run("all_wall_fallback_level", func(t *testing.T) {
		s, err := New(setOf(t, maze.NewFallbackLevel(10)))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if row, col := s.Player().Cell(); row != 0 || col != 0 {
			t.Fatalf("expected spawn at 0,0, got %d,%d", row, col)
		}
		if got := s.Tick(); got != TickNone {
			t.Fatalf("expected TickNone, got %v", got)
		}
		for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
			if s.TryMove(d) {
				t.Fatalf("expected %v blocked on the all-wall level", d)
			}
		}
	})
}
