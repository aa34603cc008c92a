package layout

import "math"

// Limits are the size bounds of an element or a laid-out subtree.
type Limits struct {
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Unbounded returns limits with no minimum and no maximum.
func Unbounded() Limits {
	return Limits{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Normalize clamps negative minimums to zero and raises each maximum to at
// least its minimum.
func (l Limits) Normalize() Limits {
	l.MinWidth = max(0, l.MinWidth)
	l.MinHeight = max(0, l.MinHeight)
	l.MaxWidth = max(l.MinWidth, l.MaxWidth)
	l.MaxHeight = max(l.MinHeight, l.MaxHeight)
	return l
}

// Grow returns the limits enlarged by the given edges.
func (l Limits) Grow(e Edges) Limits {
	l.MinWidth += e.Horizontal()
	l.MinHeight += e.Vertical()
	l.MaxWidth += e.Horizontal()
	l.MaxHeight += e.Vertical()
	return l
}

// Main returns the minimum and maximum along the orientation's axis.
func (l Limits) Main(o Orientation) (minSize, maxSize float64) {
	if o == Horizontal {
		return l.MinWidth, l.MaxWidth
	}
	return l.MinHeight, l.MaxHeight
}

// Cross returns the minimum and maximum across the orientation's axis.
func (l Limits) Cross(o Orientation) (minSize, maxSize float64) {
	if o == Horizontal {
		return l.MinHeight, l.MaxHeight
	}
	return l.MinWidth, l.MaxWidth
}
