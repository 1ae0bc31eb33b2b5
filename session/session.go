package session

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/milk9111/tilemaze/levels"
	"github.com/milk9111/tilemaze/maze"
)

// TickResult reports what one tick of the active level produced.
type TickResult int

const (
	// TickNone means the frame proceeds normally.
	TickNone TickResult = iota
	// TickHitObstacle means the player overlapped an obstacle and the level
	// restarted in place.
	TickHitObstacle
	// TickReachedGoal means the player stands on a goal tile; the caller
	// decides when to advance.
	TickReachedGoal
)

// Session owns the level collection, the active level index, and the player
// for one run of the game.
type Session struct {
	set    *levels.Set
	index  int
	player *Player
}

// New builds a session over a non-empty level set, starting on the first
// level with the player on its spawn cell.
func New(set *levels.Set) (*Session, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("session: no levels")
	}
	s := &Session{set: set}
	s.Restart()
	return s, nil
}

// Level returns the active level.
func (s *Session) Level() *maze.Level { return s.set.At(s.index).Level }

// LevelName returns the active level's display name.
func (s *Session) LevelName() string { return s.set.At(s.index).Name }

// Index returns the active level's position in the set.
func (s *Session) Index() int { return s.index }

// Count returns the number of levels in the set.
func (s *Session) Count() int { return s.set.Len() }

// Player returns the active player token.
func (s *Session) Player() *Player { return s.player }

// TryMove attempts one atomic step: the target cell must exist and not be a
// wall, otherwise nothing changes.
func (s *Session) TryMove(d Direction) bool {
	lvl := s.Level()
	row, col := s.player.Cell()
	dRow, dCol := d.Delta()
	row, col = row+dRow, col+dCol
	if !lvl.InBounds(row, col) || lvl.IsWall(row, col) {
		return false
	}
	s.player.SetCell(row, col)
	return true
}

// Tick advances the active level one step: obstacles move, then the player's
// current box is tested against them. A hit restarts the level in place.
// Standing on a goal is only reported; the caller owns the advance.
func (s *Session) Tick() TickResult {
	lvl := s.Level()
	lvl.UpdateObstacles()
	if lvl.CheckObstacleCollision(s.player.BBox()) {
		log.WithField("level", s.LevelName()).Debug("player hit an obstacle")
		s.Restart()
		return TickHitObstacle
	}
	if row, col := s.player.Cell(); lvl.IsGoal(row, col) {
		return TickReachedGoal
	}
	return TickNone
}

// Restart puts the player on the active level's spawn cell and resets every
// obstacle.
func (s *Session) Restart() {
	lvl := s.Level()
	spawn := spawnCell(lvl)
	s.player = NewPlayer(lvl.TileSize())
	s.player.SetCell(spawn.Row, spawn.Col)
	lvl.ResetObstacles()
}

// Advance moves to the next level, wrapping past the last back to the first.
func (s *Session) Advance() {
	s.index = (s.index + 1) % s.set.Len()
	log.WithFields(log.Fields{
		"index": s.index,
		"level": s.LevelName(),
	}).Debug("advancing to next level")
	s.Restart()
}

// SwitchTo jumps to the level at index i.
func (s *Session) SwitchTo(i int) error {
	if i < 0 || i >= s.set.Len() {
		return fmt.Errorf("session: level %d out of range [0, %d)", i, s.set.Len())
	}
	s.index = i
	s.Restart()
	return nil
}

// spawnCell picks where the player starts: the recorded start tile when
// present, else the first non-wall cell in row-major order, else 0,0.
func spawnCell(lvl *maze.Level) maze.Point {
	if start, ok := lvl.Start(); ok {
		return start
	}
	for r := 0; r < lvl.Rows(); r++ {
		for c := 0; c < lvl.Cols(); c++ {
			if !lvl.IsWall(r, c) {
				return maze.Point{Row: r, Col: c}
			}
		}
	}
	return maze.Point{}
}
