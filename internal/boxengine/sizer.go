package boxengine

import "math"

// Sizer holds the size negotiation state for one child along a layout axis.
//
// SizeHint is the preferred size and persists between calls; Calc clamps it
// into [MinSize, MaxSize] before distributing slack. Size is the result of the
// last Calc and the basis for Adjust.
type Sizer struct {
	SizeHint float64
	MinSize  float64
	MaxSize  float64

	// Stretch weights how much of the free space this sizer absorbs.
	// Zero means the sizer only grows or shrinks once every stretchable
	// sibling has hit its bound.
	Stretch int

	Size float64

	done bool // solver scratch
}

// NewSizer returns a sizer with the given hint, no minimum, an unbounded
// maximum and a stretch factor of one. Size starts equal to the hint.
func NewSizer(hint float64) Sizer {
	return Sizer{
		SizeHint: hint,
		MaxSize:  math.Inf(1),
		Stretch:  1,
		Size:     hint,
	}
}

// Hold copies each sizer's current size into its hint so the current
// proportions survive the next Calc.
func Hold(sizers []Sizer) {
	for i := range sizers {
		sizers[i].SizeHint = sizers[i].Size
	}
}

// clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(v, maxVal))
}
