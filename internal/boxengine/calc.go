package boxengine

import "math"

// nearZero is the remaining free space below which distribution stops.
const nearZero = 0.01

// Calc distributes space among the sizers and stores the result in each
// sizer's Size. It returns the portion of space that could not be assigned:
// negative when space is below the sum of minimums, positive when it exceeds
// the sum of maximums, and zero otherwise.
//
// Free space is handed to stretchable sizers in proportion to their stretch
// factor. A sizer that reaches its bound drops out and its share is spread
// over the rest on the next sweep. Space left over after every stretchable
// sizer is saturated goes to the rigid sizers in proportion to their remaining
// room.
func Calc(sizers []Sizer, space float64) float64 {
	count := len(sizers)
	if count == 0 {
		return 0
	}
	if space < 0 || math.IsNaN(space) {
		space = 0
	}

	var totalMin, totalMax, totalSize float64
	totalStretch := 0
	stretchCount := 0
	for i := range sizers {
		s := &sizers[i]
		s.done = false
		s.Size = clamp(s.SizeHint, s.MinSize, s.MaxSize)
		totalSize += s.Size
		totalMin += s.MinSize
		totalMax += s.MaxSize
		if s.Stretch > 0 {
			totalStretch += s.Stretch
			stretchCount++
		}
	}

	if space == totalSize {
		return 0
	}

	if space <= totalMin {
		for i := range sizers {
			sizers[i].Size = sizers[i].MinSize
		}
		return space - totalMin
	}

	if space >= totalMax {
		for i := range sizers {
			sizers[i].Size = sizers[i].MaxSize
		}
		if math.IsInf(space, 1) && math.IsInf(totalMax, 1) {
			return 0
		}
		return space - totalMax
	}

	if space < totalSize {
		free := totalSize - space
		free = shrinkStretchable(sizers, free, totalStretch, stretchCount)
		if free > nearZero {
			shrinkRigid(sizers, free)
		}
	} else {
		free := space - totalSize
		free = growStretchable(sizers, free, totalStretch, stretchCount)
		if free > nearZero {
			growRigid(sizers, free)
		}
	}
	return 0
}

// growStretchable runs weighted sweeps over the stretchable sizers until the
// free space is spent or all of them are at their maximum. Each sweep uses the
// free space and stretch total captured at its start.
func growStretchable(sizers []Sizer, free float64, totalStretch, stretchCount int) float64 {
	for stretchCount > 0 && free > nearZero {
		dist := free
		distStretch := float64(totalStretch)
		for i := range sizers {
			s := &sizers[i]
			if s.done || s.Stretch == 0 {
				continue
			}
			amt := float64(s.Stretch) * dist / distStretch
			if s.Size+amt >= s.MaxSize {
				free -= s.MaxSize - s.Size
				totalStretch -= s.Stretch
				s.Size = s.MaxSize
				s.done = true
				stretchCount--
			} else {
				free -= amt
				s.Size += amt
			}
		}
	}
	return free
}

// shrinkStretchable is the mirror of growStretchable against MinSize.
func shrinkStretchable(sizers []Sizer, free float64, totalStretch, stretchCount int) float64 {
	for stretchCount > 0 && free > nearZero {
		dist := free
		distStretch := float64(totalStretch)
		for i := range sizers {
			s := &sizers[i]
			if s.done || s.Stretch == 0 {
				continue
			}
			amt := float64(s.Stretch) * dist / distStretch
			if s.Size-amt <= s.MinSize {
				free -= s.Size - s.MinSize
				totalStretch -= s.Stretch
				s.Size = s.MinSize
				s.done = true
				stretchCount--
			} else {
				free -= amt
				s.Size -= amt
			}
		}
	}
	return free
}

// growRigid hands the remaining free space to the sizers that are not yet
// saturated, in proportion to the room each has left below its maximum.
// Sizers with unbounded room split the space evenly among themselves.
func growRigid(sizers []Sizer, free float64) {
	var capacity float64
	unbounded := 0
	for i := range sizers {
		s := &sizers[i]
		if s.done {
			continue
		}
		room := s.MaxSize - s.Size
		if math.IsInf(room, 1) {
			unbounded++
		} else {
			capacity += room
		}
	}

	remaining := free
	for i := range sizers {
		s := &sizers[i]
		if s.done {
			continue
		}
		room := s.MaxSize - s.Size
		var amt float64
		switch {
		case unbounded > 0:
			if math.IsInf(room, 1) {
				amt = free / float64(unbounded)
			}
		case capacity > 0:
			amt = free * room / capacity
		}
		amt = math.Min(amt, math.Min(room, remaining))
		s.Size += amt
		remaining -= amt
	}
}

// shrinkRigid takes the remaining excess from the sizers that are not yet at
// their minimum, in proportion to the room each has above it.
func shrinkRigid(sizers []Sizer, free float64) {
	var capacity float64
	for i := range sizers {
		s := &sizers[i]
		if s.done {
			continue
		}
		capacity += s.Size - s.MinSize
	}
	if capacity <= 0 {
		return
	}

	remaining := free
	for i := range sizers {
		s := &sizers[i]
		if s.done {
			continue
		}
		room := s.Size - s.MinSize
		amt := math.Min(free*room/capacity, math.Min(room, remaining))
		s.Size -= amt
		remaining -= amt
	}
}
