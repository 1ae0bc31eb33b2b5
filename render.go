package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/tilemaze/config"
	"github.com/milk9111/tilemaze/maze"
	"github.com/milk9111/tilemaze/session"
)

// Renderer owns the prerendered tile images. Every level shares the config
// tile size, so each image is built once and reused.
type Renderer struct {
	tileSize float64

	background  color.Color
	playerColor color.Color

	wallImg     *ebiten.Image
	floorImg    *ebiten.Image
	goalImg     *ebiten.Image
	obstacleImg *ebiten.Image
	fadeImg     *ebiten.Image
}

func NewRenderer(cfg config.Config) *Renderer {
	size := imgSize(cfg.TileSize)

	r := &Renderer{
		tileSize:    cfg.TileSize,
		background:  cfg.Colors.Background,
		playerColor: cfg.Colors.Player,
	}
	r.wallImg = filledImage(size, cfg.Colors.Wall)
	r.floorImg = filledImage(size, cfg.Colors.Floor)
	r.goalImg = goalImage(size, cfg.Colors.Floor, cfg.Colors.Goal)
	r.obstacleImg = roundedRectImage(imgSize(cfg.TileSize*0.8), cfg.Colors.Obstacle)
	r.fadeImg = filledImage(1, color.Black)
	return r
}

func (r *Renderer) DrawLevel(screen *ebiten.Image, lvl *maze.Level) {
	screen.Fill(r.background)

	for row := 0; row < lvl.Rows(); row++ {
		for col := 0; col < lvl.Cols(); col++ {
			img := r.floorImg
			switch lvl.TileAt(row, col) {
			case maze.TileWall:
				img = r.wallImg
			case maze.TileGoal:
				img = r.goalImg
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(col)*r.tileSize, float64(row)*r.tileSize)
			screen.DrawImage(img, op)
		}
	}

	for _, o := range lvl.Obstacles() {
		body := o.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(body.Left, body.Top)
		screen.DrawImage(r.obstacleImg, op)
	}
}

func (r *Renderer) DrawPlayer(screen *ebiten.Image, p *session.Player) {
	box := p.BBox()
	vector.DrawFilledRect(screen, float32(box.Left), float32(box.Top), float32(box.Width()), float32(box.Height()), r.playerColor, false)
}

func (r *Renderer) DrawFade(screen *ebiten.Image, alpha float32) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.Scale(1, 1, 1, alpha)
	screen.DrawImage(r.fadeImg, op)
}

func filledImage(size int, col color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(col)
	return img
}

// goalImage draws a goal marker inset on a floor-colored tile.
func goalImage(size int, floor, goal color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(floor)

	inset := size / 5
	inner := ebiten.NewImage(imgSize(float64(size-2*inset)), imgSize(float64(size-2*inset)))
	inner.Fill(goal)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(inset), float64(inset))
	img.DrawImage(inner, op)
	return img
}

// roundedRectImage builds an RGBA image with a filled rounded rectangle of
// the given color.
func roundedRectImage(size int, col color.Color) *ebiten.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	radius := float64(size) / 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if insideRoundedRect(float64(x)+0.5, float64(y)+0.5, float64(size), radius) {
				rgba.Set(x, y, col)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

func insideRoundedRect(x, y, size, radius float64) bool {
	if x >= radius && x <= size-radius {
		return true
	}
	if y >= radius && y <= size-radius {
		return true
	}
	cx, cy := radius, radius
	if x > size-radius {
		cx = size - radius
	}
	if y > size-radius {
		cy = size - radius
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func imgSize(px float64) int {
	if px < 1 {
		return 1
	}
	return int(px)
}
