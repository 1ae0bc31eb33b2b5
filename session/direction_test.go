package session

import "testing"

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir        Direction
		dRow, dCol int
	}{
		{DirUp, -1, 0},
		{DirDown, 1, 0},
		{DirLeft, 0, -1},
		{DirRight, 0, 1},
	}

	for _, c := range cases {
		t.Run(c.dir.String(), func(t *testing.T) {
			dRow, dCol := c.dir.Delta()
			if dRow != c.dRow || dCol != c.dCol {
				t.Fatalf("expected (%d, %d), got (%d, %d)", c.dRow, c.dCol, dRow, dCol)
			}
		})
	}

	if dRow, dCol := Direction(99).Delta(); dRow != 0 || dCol != 0 {
		t.Fatalf("expected an unknown direction to stay put, got (%d, %d)", dRow, dCol)
	}
}
