package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/milk9111/tilemaze/levels"
	"github.com/milk9111/tilemaze/maze"
)

// levelcheck loads a levels file the same way the game does and prints one
// line per level, so broken entries show up before anyone plays them.
func main() {
	path := flag.String("levels", levels.DefaultPath, "path to the levels file")
	tileSize := flag.Float64("tile-size", 40, "tile size used for obstacle geometry")
	flag.Parse()

	set, err := levels.Load(*path, *tileSize)
	if err != nil {
		log.WithError(err).Fatal("load levels")
	}

	for i := 0; i < set.Len(); i++ {
		fmt.Println(describe(i, set.At(i)))
	}

	if n := set.Fallbacks(); n > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d levels fell back to the all-wall grid\n", n, set.Len())
		os.Exit(1)
	}
}

func describe(i int, entry levels.Entry) string {
	lvl := entry.Level
	s := fmt.Sprintf("%2d  %-16s %dx%d", i+1, entry.Name, lvl.Rows(), lvl.Cols())
	if entry.Fallback {
		return s + "  BROKEN"
	}

	if start, ok := lvl.Start(); ok {
		s += fmt.Sprintf("  start %d,%d", start.Row, start.Col)
	} else {
		s += "  no start"
	}
	s += fmt.Sprintf("  goals %d", countGoals(lvl))

	for _, o := range lvl.Obstacles() {
		min, max := o.TravelRows()
		s += fmt.Sprintf("  obstacle col %d rows %d..%d", o.Col(), min, max)
	}
	return s
}

func countGoals(lvl *maze.Level) int {
	n := 0
	for row := 0; row < lvl.Rows(); row++ {
		for col := 0; col < lvl.Cols(); col++ {
			if lvl.IsGoal(row, col) {
				n++
			}
		}
	}
	return n
}
