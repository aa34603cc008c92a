package layout

import "math"

var posInf = math.Inf(1)

// axisLimits assembles Limits from main/cross bounds for orientation o.
func axisLimits(o Orientation, mainMin, mainMax, crossMin, crossMax float64) Limits {
	if o == Horizontal {
		return Limits{MinWidth: mainMin, MaxWidth: mainMax, MinHeight: crossMin, MaxHeight: crossMax}
	}
	return Limits{MinHeight: mainMin, MaxHeight: mainMax, MinWidth: crossMin, MaxWidth: crossMax}
}
