package layout

// moveElement moves s[from] to index to, shifting the elements in between.
// Both indices must be in range.
func moveElement[T any](s []T, from, to int) {
	if from == to {
		return
	}
	v := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = v
}

// clampIndex clamps i into [0, n].
func clampIndex(i, n int) int {
	return max(0, min(i, n))
}
