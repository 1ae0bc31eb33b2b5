package levels

import (
	"fmt"
	"io/fs"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/tilemaze/maze"
)

// Generate runs a Tengo script from fsys and builds a level entry from the
// grid it emits. The script sees width, height, and seed as globals, may
// import the Tengo standard library, and assigns its result to a global
// named grid: an array of rows holding the same raw codes as level files
// (ints and the obstacle marker). Generation failures are errors; the
// fallback-level policy of Parse does not apply to script output.
func Generate(fsys fs.FS, script, name string, width, height int, seed int64, tileSize float64) (Entry, error) {
	src, err := fs.ReadFile(fsys, script)
	if err != nil {
		return Entry{}, fmt.Errorf("levels: read script %s: %w", script, err)
	}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = s.Add("width", width)
	_ = s.Add("height", height)
	_ = s.Add("seed", seed)

	compiled, err := s.Compile()
	if err != nil {
		return Entry{}, fmt.Errorf("levels: compile script %s: %w", script, err)
	}
	if err := compiled.Run(); err != nil {
		return Entry{}, fmt.Errorf("levels: run script %s: %w", script, err)
	}

	grid, err := gridFromScript(compiled.Get("grid"))
	if err != nil {
		return Entry{}, fmt.Errorf("levels: script %s: %w", script, err)
	}

	lvl, err := maze.NewLevel(grid, tileSize)
	if err != nil {
		return Entry{}, fmt.Errorf("levels: script %s: %w", script, err)
	}

	if name == "" {
		name = script
	}
	return Entry{Name: name, Level: lvl}, nil
}

func gridFromScript(v *tengo.Variable) ([][]maze.Tile, error) {
	if v == nil || v.Value() == nil {
		return nil, fmt.Errorf("no grid variable defined")
	}
	rows, ok := v.Value().([]interface{})
	if !ok {
		return nil, fmt.Errorf("grid is %s, want an array of rows", v.ValueType())
	}

	grid := make([][]maze.Tile, len(rows))
	for r, rowAny := range rows {
		row, ok := rowAny.([]interface{})
		if !ok {
			return nil, fmt.Errorf("grid row %d is not an array", r)
		}
		grid[r] = make([]maze.Tile, len(row))
		for c, cellAny := range row {
			switch cell := cellAny.(type) {
			case int64:
				t, err := tileFromCode(int(cell))
				if err != nil {
					return nil, fmt.Errorf("grid cell %d,%d: %w", r, c, err)
				}
				grid[r][c] = t
			case string:
				if cell != ObstacleMarker {
					return nil, fmt.Errorf("grid cell %d,%d: unknown marker %q", r, c, cell)
				}
				grid[r][c] = maze.TileObstacleSpawn
			default:
				return nil, fmt.Errorf("grid cell %d,%d holds %T", r, c, cellAny)
			}
		}
	}
	return grid, nil
}
