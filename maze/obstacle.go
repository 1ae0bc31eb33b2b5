package maze

const (
	// DefaultObstacleSpeed is the vertical travel speed in pixels per tick.
	DefaultObstacleSpeed = 1.8

	// obstacleBodyFactor sizes the square body relative to the tile size.
	// The player's collision box uses a smaller factor.
	obstacleBodyFactor = 0.8
)

// Obstacle is a single vertically patrolling hazard. It keeps a fixed column
// and oscillates between the pixel centers of its travel rows.
type Obstacle struct {
	col      int
	spawnRow int
	minRow   int
	maxRow   int

	x      float64 // fixed horizontal pixel center
	y      float64 // current vertical pixel center
	dir    float64 // +1 moving down, -1 moving up
	speed  float64
	half   float64 // half-extent of the square body
	minY   float64
	maxY   float64
	spawnY float64
}

func newObstacle(row, col, minRow, maxRow int, tileSize float64) *Obstacle {
	o := &Obstacle{
		col:      col,
		spawnRow: row,
		minRow:   minRow,
		maxRow:   maxRow,
		x:        (float64(col) + 0.5) * tileSize,
		speed:    DefaultObstacleSpeed,
		half:     tileSize * obstacleBodyFactor / 2,
		minY:     (float64(minRow) + 0.5) * tileSize,
		maxY:     (float64(maxRow) + 0.5) * tileSize,
		spawnY:   (float64(row) + 0.5) * tileSize,
	}
	o.Reset()
	return o
}

// Update advances the obstacle one tick, clamping and turning around at the
// travel bounds.
func (o *Obstacle) Update() {
	o.y += o.speed * o.dir
	if o.y >= o.maxY {
		o.y = o.maxY
		o.dir = -1
	} else if o.y <= o.minY {
		o.y = o.minY
		o.dir = 1
	}
}

// Reset puts the obstacle back on its spawn row, moving down.
func (o *Obstacle) Reset() {
	o.y = o.spawnY
	o.dir = 1
}

// Bounds returns the obstacle's current box. It is recomputed on every call,
// so it always reflects the latest Update or Reset.
func (o *Obstacle) Bounds() Rect {
	return Rect{
		Left:   o.x - o.half,
		Top:    o.y - o.half,
		Right:  o.x + o.half,
		Bottom: o.y + o.half,
	}
}

// Col returns the obstacle's fixed column.
func (o *Obstacle) Col() int { return o.col }

// SpawnRow returns the row the obstacle resets to.
func (o *Obstacle) SpawnRow() int { return o.spawnRow }

// TravelRows returns the inclusive row range the obstacle patrols.
func (o *Obstacle) TravelRows() (min, max int) { return o.minRow, o.maxRow }
