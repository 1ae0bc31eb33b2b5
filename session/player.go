package session

import "github.com/milk9111/tilemaze/maze"

// playerBoxFactor sizes the player's collision box relative to the tile
// size. The obstacle body uses the larger 0.8.
const playerBoxFactor = 0.6

// Player is the token the session moves around the grid. It lives on a cell
// and derives its pixel center from the tile size.
type Player struct {
	row, col int
	tileSize float64
}

func NewPlayer(tileSize float64) *Player {
	return &Player{tileSize: tileSize}
}

// Cell returns the current grid cell.
func (p *Player) Cell() (row, col int) { return p.row, p.col }

// SetCell moves the player to a cell. It performs no wall checks; movement
// rules live in the session.
func (p *Player) SetCell(row, col int) {
	p.row = row
	p.col = col
}

// Center returns the pixel center of the current cell.
func (p *Player) Center() (x, y float64) {
	return (float64(p.col) + 0.5) * p.tileSize, (float64(p.row) + 0.5) * p.tileSize
}

// BBox returns the collision box around the pixel center.
func (p *Player) BBox() maze.Rect {
	x, y := p.Center()
	half := p.tileSize * playerBoxFactor / 2
	return maze.Rect{Left: x - half, Top: y - half, Right: x + half, Bottom: y + half}
}
