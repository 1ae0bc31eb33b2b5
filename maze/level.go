package maze

import "fmt"

// Point is a grid cell location.
type Point struct {
	Row, Col int
}

// Level owns a normalized tile grid and the obstacles parsed from it. The
// grid never changes after construction; only obstacle state mutates, through
// UpdateObstacles and ResetObstacles.
type Level struct {
	grid     [][]Tile
	tileSize float64

	start    Point
	hasStart bool

	obstacles []*Obstacle
}

// NewLevel builds a Level from a rectangular grid of tile values. The input
// may contain TileStart and TileObstacleSpawn; both normalize to TileFloor,
// recording the first start found in row-major order and creating one
// obstacle per spawn marker. The input grid is copied, never retained or
// mutated.
func NewLevel(grid [][]Tile, tileSize float64) (*Level, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("maze: tile size %v is not positive", tileSize)
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("maze: empty grid")
	}
	cols := len(grid[0])
	l := &Level{
		grid:     make([][]Tile, len(grid)),
		tileSize: tileSize,
	}
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("maze: row %d has %d cells, want %d", r, len(row), cols)
		}
		l.grid[r] = make([]Tile, cols)
		copy(l.grid[r], row)
	}
	for r := range l.grid {
		for c, t := range l.grid[r] {
			switch t {
			case TileFloor, TileWall, TileGoal:
			case TileStart:
				if !l.hasStart {
					l.start = Point{Row: r, Col: c}
					l.hasStart = true
				}
				l.grid[r][c] = TileFloor
			case TileObstacleSpawn:
				l.grid[r][c] = TileFloor
				minRow, maxRow := l.travelRows(r, c)
				l.obstacles = append(l.obstacles, newObstacle(r, c, minRow, maxRow, tileSize))
			default:
				return nil, fmt.Errorf("maze: unknown tile %d at %d,%d", int(t), r, c)
			}
		}
	}
	return l, nil
}

// NewFallbackLevel builds the degenerate 2x2 all-wall level substituted for
// level entries that cannot be parsed.
func NewFallbackLevel(tileSize float64) *Level {
	if tileSize <= 0 {
		tileSize = 1
	}
	return &Level{
		grid: [][]Tile{
			{TileWall, TileWall},
			{TileWall, TileWall},
		},
		tileSize: tileSize,
	}
}

// travelRows walks up and down from a spawn cell until a wall or the grid
// edge, returning the inclusive row range an obstacle may occupy. Only walls
// stop the walk, so the result is the same whether or not neighboring cells
// have been normalized yet.
func (l *Level) travelRows(row, col int) (minRow, maxRow int) {
	minRow, maxRow = row, row
	for minRow-1 >= 0 && l.grid[minRow-1][col] != TileWall {
		minRow--
	}
	for maxRow+1 < len(l.grid) && l.grid[maxRow+1][col] != TileWall {
		maxRow++
	}
	return minRow, maxRow
}

// Rows returns the number of grid rows.
func (l *Level) Rows() int { return len(l.grid) }

// Cols returns the number of grid columns.
func (l *Level) Cols() int { return len(l.grid[0]) }

// TileSize returns the pixel size of one square cell.
func (l *Level) TileSize() float64 { return l.tileSize }

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() float64 { return float64(l.Cols()) * l.tileSize }

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() float64 { return float64(l.Rows()) * l.tileSize }

// InBounds reports whether the cell exists.
func (l *Level) InBounds(row, col int) bool {
	return row >= 0 && row < len(l.grid) && col >= 0 && col < len(l.grid[0])
}

// TileAt returns the tile at a cell. Out-of-range cells read as TileWall, so
// everything beyond the edge is solid and never a goal.
func (l *Level) TileAt(row, col int) Tile {
	if !l.InBounds(row, col) {
		return TileWall
	}
	return l.grid[row][col]
}

// IsWall reports whether the cell is a wall.
func (l *Level) IsWall(row, col int) bool { return l.TileAt(row, col) == TileWall }

// IsGoal reports whether the cell is a goal.
func (l *Level) IsGoal(row, col int) bool { return l.TileAt(row, col) == TileGoal }

// Start returns the start cell recorded during construction, if the input
// grid had one.
func (l *Level) Start() (Point, bool) { return l.start, l.hasStart }

// Obstacles returns the level's obstacles. Callers must not modify the slice.
func (l *Level) Obstacles() []*Obstacle { return l.obstacles }

// UpdateObstacles advances every obstacle one tick.
func (l *Level) UpdateObstacles() {
	for _, o := range l.obstacles {
		o.Update()
	}
}

// ResetObstacles puts every obstacle back at its spawn state. Called whenever
// the level is loaded or restarted.
func (l *Level) ResetObstacles() {
	for _, o := range l.obstacles {
		o.Reset()
	}
}

// CheckObstacleCollision reports whether r overlaps any obstacle's current
// bounds. It mutates nothing; with no obstacles it reports false.
func (l *Level) CheckObstacleCollision(r Rect) bool {
	for _, o := range l.obstacles {
		if r.Overlaps(o.Bounds()) {
			return true
		}
	}
	return false
}
