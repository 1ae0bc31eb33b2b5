package maze

// Rect is an axis-aligned box in pixel space.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Overlaps reports whether r and other share interior area. Boxes that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left < other.Right &&
		r.Right > other.Left &&
		r.Top < other.Bottom &&
		r.Bottom > other.Top
}

func (r Rect) Width() float64 { return r.Right - r.Left }

func (r Rect) Height() float64 { return r.Bottom - r.Top }
