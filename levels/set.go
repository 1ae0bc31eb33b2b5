package levels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/milk9111/tilemaze/maze"
)

// ObstacleMarker is the raw cell value that spawns a patrolling obstacle.
const ObstacleMarker = "M"

// Entry is one constructed level of a Set.
type Entry struct {
	Name  string
	Level *maze.Level
	// Fallback is set when the raw entry could not be parsed and the
	// all-wall fallback level was substituted.
	Fallback bool
}

// Set is the ordered level collection for one run.
type Set struct {
	entries []Entry
}

func (s *Set) Len() int { return len(s.entries) }

// At returns the i-th entry.
func (s *Set) At(i int) Entry { return s.entries[i] }

// Append adds an entry to the end of the set.
func (s *Set) Append(e Entry) { s.entries = append(s.entries, e) }

// Fallbacks counts entries that degraded to the fallback level.
func (s *Set) Fallbacks() int {
	n := 0
	for _, e := range s.entries {
		if e.Fallback {
			n++
		}
	}
	return n
}

// Parse reads a level collection document: a JSON array whose entries are
// each either a bare grid of raw tile codes or an object with a grid field
// and optional metadata. Entries that cannot be parsed degrade to the
// fallback level instead of failing the load; an unreadable or empty
// document is an error.
func Parse(data []byte, tileSize float64) (*Set, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("levels: parse collection: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("levels: collection is empty")
	}

	set := &Set{entries: make([]Entry, 0, len(raws))}
	for i, raw := range raws {
		set.Append(parseEntry(i, raw, tileSize))
	}
	return set, nil
}

// LoadFromFS reads and parses a collection from fsys.
func LoadFromFS(fsys fs.FS, path string, tileSize float64) (*Set, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(data, tileSize)
}

// Load reads the collection at path from disk, falling back to the embedded
// copy when path is empty or unreadable.
func Load(path string, tileSize float64) (*Set, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return Parse(data, tileSize)
		}
		log.WithError(err).Warnf("cannot read %s, using embedded levels", path)
	}
	return LoadFromFS(FS, DefaultPath, tileSize)
}

func parseEntry(i int, raw json.RawMessage, tileSize float64) Entry {
	name := fmt.Sprintf("level %d", i+1)

	grid, entryName, err := decodeEntry(raw)
	if err == nil {
		if entryName != "" {
			name = entryName
		}
		var lvl *maze.Level
		if lvl, err = maze.NewLevel(grid, tileSize); err == nil {
			return Entry{Name: name, Level: lvl}
		}
	}

	log.WithError(err).Warnf("level entry %d is malformed, using fallback", i)
	return Entry{Name: name, Level: maze.NewFallbackLevel(tileSize), Fallback: true}
}

func decodeEntry(raw json.RawMessage) ([][]maze.Tile, string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var grid [][]rawCell
		if err := json.Unmarshal(raw, &grid); err != nil {
			return nil, "", err
		}
		if len(grid) == 0 {
			return nil, "", fmt.Errorf("levels: entry grid is empty")
		}
		return cellsToTiles(grid), "", nil
	}

	var entry rawEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, "", err
	}
	if len(entry.Grid) == 0 {
		return nil, "", fmt.Errorf("levels: entry has no grid")
	}
	return cellsToTiles(entry.Grid), entry.Name, nil
}

// rawEntry is the object form of a level entry. Unknown metadata fields are
// ignored.
type rawEntry struct {
	Grid [][]rawCell `json:"grid"`
	Name string      `json:"name"`
}

// rawCell accepts the two shapes a cell takes in level files: a numeric tile
// code or the obstacle marker string.
type rawCell struct {
	tile maze.Tile
}

func (c *rawCell) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		if float64(int(n)) != n {
			return fmt.Errorf("levels: tile code %v is not an integer", n)
		}
		t, err := tileFromCode(int(n))
		if err != nil {
			return err
		}
		c.tile = t
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != ObstacleMarker {
			return fmt.Errorf("levels: unknown tile marker %q", s)
		}
		c.tile = maze.TileObstacleSpawn
		return nil
	}

	return fmt.Errorf("levels: cell %s is neither a tile code nor a marker", bytes.TrimSpace(data))
}

// tileFromCode maps the numeric wire codes to tiles.
func tileFromCode(n int) (maze.Tile, error) {
	switch n {
	case 0:
		return maze.TileFloor, nil
	case 1:
		return maze.TileWall, nil
	case 2:
		return maze.TileStart, nil
	case 3:
		return maze.TileGoal, nil
	}
	return 0, fmt.Errorf("levels: unknown tile code %d", n)
}

func cellsToTiles(cells [][]rawCell) [][]maze.Tile {
	grid := make([][]maze.Tile, len(cells))
	for r, row := range cells {
		grid[r] = make([]maze.Tile, len(row))
		for c, cell := range row {
			grid[r][c] = cell.tile
		}
	}
	return grid
}
