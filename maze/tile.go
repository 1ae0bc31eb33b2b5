package maze

import "fmt"

// Tile is the semantic value of one grid cell. Raw level input resolves to
// this enumeration once at parse time; TileStart and TileObstacleSpawn occur
// only in input grids and are normalized away during level construction.
type Tile int

const (
	TileFloor Tile = iota
	TileWall
	TileStart
	TileGoal
	// TileObstacleSpawn marks where a moving obstacle is created. Input only.
	TileObstacleSpawn
)

func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileStart:
		return "start"
	case TileGoal:
		return "goal"
	case TileObstacleSpawn:
		return "obstacle spawn"
	}
	return fmt.Sprintf("tile(%d)", int(t))
}
