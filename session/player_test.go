package session

import (
	"testing"

	"github.com/milk9111/tilemaze/maze"
)

func TestPlayerCenterAndBBox(t *testing.T) {
	p := NewPlayer(10)
	p.SetCell(1, 2)

	x, y := p.Center()
	if x != 25 || y != 15 {
		t.Fatalf("expected center (25, 15), got (%v, %v)", x, y)
	}

	box := p.BBox()
	want := maze.Rect{Left: 22, Top: 12, Right: 28, Bottom: 18}
	if box != want {
		t.Fatalf("expected box %+v, got %+v", want, box)
	}
	if box.Width() != 6 || box.Height() != 6 {
		t.Fatalf("expected a 6x6 box, got %vx%v", box.Width(), box.Height())
	}
}

func TestPlayerBoxIsSmallerThanObstacleBody(t *testing.T) {
	lvl, err := maze.NewLevel([][]maze.Tile{
		{maze.TileWall},
		{maze.TileObstacleSpawn},
		{maze.TileWall},
	}, 10)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}

	p := NewPlayer(10)
	p.SetCell(1, 0)
	box := p.BBox()
	body := lvl.Obstacles()[0].Bounds()
	if box.Width() >= body.Width() || box.Height() >= body.Height() {
		t.Fatalf("expected player box %vx%v smaller than obstacle body %vx%v",
			box.Width(), box.Height(), body.Width(), body.Height())
	}
}
