package boxengine

import "math"

// Normalize scales values so their absolute values sum to one. An all-zero
// input yields equal shares.
func Normalize(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += math.Abs(v)
	}
	out := make([]float64, n)
	for i, v := range values {
		if sum == 0 {
			out[i] = 1 / float64(n)
		} else {
			out[i] = v / sum
		}
	}
	return out
}

// Sizes returns the current Size of each sizer.
func Sizes(sizers []Sizer) []float64 {
	out := make([]float64, len(sizers))
	for i := range sizers {
		out[i] = sizers[i].Size
	}
	return out
}

// AverageSize returns the mean Size of the sizers, or 0 for an empty slice.
func AverageSize(sizers []Sizer) float64 {
	if len(sizers) == 0 {
		return 0
	}
	var sum float64
	for i := range sizers {
		sum += sizers[i].Size
	}
	return sum / float64(len(sizers))
}
