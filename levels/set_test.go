package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/tilemaze/maze"
)

func TestParseMixedEntries(t *testing.T) {
	doc := []byte(`[
		[[1,1,1],[1,2,1],[1,3,1]],
		{"name": "Pocket", "grid": [[1,1,1],[1,"M",1],[1,1,1]], "author": "jm"},
		{}
	]`)

	set, err := Parse(doc, 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", set.Len())
	}

	first := set.At(0)
	if first.Fallback {
		t.Fatalf("bare grid entry should parse")
	}
	if first.Name != "level 1" {
		t.Fatalf("expected generated name, got %q", first.Name)
	}
	start, ok := first.Level.Start()
	if !ok || start != (maze.Point{Row: 1, Col: 1}) {
		t.Fatalf("expected start {1 1}, got %v ok=%v", start, ok)
	}
	if !first.Level.IsGoal(2, 1) {
		t.Fatalf("expected goal at 2,1")
	}

	second := set.At(1)
	if second.Fallback {
		t.Fatalf("object entry should parse")
	}
	if second.Name != "Pocket" {
		t.Fatalf("expected name from metadata, got %q", second.Name)
	}
	if len(second.Level.Obstacles()) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(second.Level.Obstacles()))
	}

	third := set.At(2)
	if !third.Fallback {
		t.Fatalf("empty object should degrade to fallback")
	}
	if third.Level.Rows() != 2 || third.Level.Cols() != 2 {
		t.Fatalf("expected 2x2 fallback, got %dx%d", third.Level.Rows(), third.Level.Cols())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if !third.Level.IsWall(r, c) {
				t.Fatalf("expected fallback wall at %d,%d", r, c)
			}
		}
	}

	if set.Fallbacks() != 1 {
		t.Fatalf("expected 1 fallback, got %d", set.Fallbacks())
	}
}

func TestParseMalformedEntries(t *testing.T) {
	cases := []struct {
		name  string
		entry string
	}{
		{"number", `7`},
		{"null", `null`},
		{"empty_object", `{}`},
		{"object_without_grid", `{"name":"x"}`},
		{"empty_grid", `[]`},
		{"ragged_grid", `[[1,1],[1]]`},
		{"unknown_code", `[[1,7],[1,1]]`},
		{"fractional_code", `[[1,1.5],[1,1]]`},
		{"unknown_marker", `[[1,"X"],[1,1]]`},
		{"bool_cell", `[[true,1],[1,1]]`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			set, err := Parse([]byte(`[`+c.entry+`]`), 10)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if set.Len() != 1 {
				t.Fatalf("expected 1 entry, got %d", set.Len())
			}
			e := set.At(0)
			if !e.Fallback {
				t.Fatalf("expected fallback for %s", c.entry)
			}
			if e.Level.Rows() != 2 || e.Level.Cols() != 2 || !e.Level.IsWall(0, 0) {
				t.Fatalf("expected the 2x2 all-wall fallback")
			}
		})
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not_json", `{{`},
		{"object_document", `{"levels": []}`},
		{"empty_array", `[]`},
		{"null_document", `null`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.doc), 10); err == nil {
				t.Fatalf("expected error for %s", c.doc)
			}
		})
	}
}

func TestLoadFromFSEmbedded(t *testing.T) {
	set, err := LoadFromFS(FS, DefaultPath, 40)
	if err != nil {
		t.Fatalf("LoadFromFS: %v", err)
	}
	if set.Len() < 3 {
		t.Fatalf("expected several shipped levels, got %d", set.Len())
	}
	if set.Fallbacks() != 0 {
		t.Fatalf("shipped levels should all parse, %d degraded", set.Fallbacks())
	}

	for i := 0; i < set.Len(); i++ {
		e := set.At(i)
		if _, ok := e.Level.Start(); !ok {
			t.Fatalf("shipped level %d (%s) has no start", i, e.Name)
		}
		goals := 0
		for r := 0; r < e.Level.Rows(); r++ {
			for c := 0; c < e.Level.Cols(); c++ {
				if e.Level.IsGoal(r, c) {
					goals++
				}
			}
		}
		if goals == 0 {
			t.Fatalf("shipped level %d (%s) has no goal", i, e.Name)
		}
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.json"), 40)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() == 0 {
		t.Fatalf("expected embedded levels")
	}
}

func TestLoadPrefersDiskFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	if err := os.WriteFile(path, []byte(`[[[1,2,1],[1,3,1]]]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	set, err := Load(path, 10)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected the disk collection, got %d entries", set.Len())
	}
	if start, ok := set.At(0).Level.Start(); !ok || start != (maze.Point{Row: 0, Col: 1}) {
		t.Fatalf("expected start {0 1}, got %v ok=%v", start, ok)
	}
}
