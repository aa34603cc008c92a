package boxengine

import "math"

// Adjust applies a drag of the handle that sits after sizers[index].
//
// A positive delta grows sizers[index] (spilling into index-1, index-2, ...
// once it reaches its maximum) and takes the same amount from index+1,
// index+2, ... in order, each down to its minimum. A negative delta does the
// mirror image. The delta is first limited to what both sides can give.
//
// Only SizeHint is written, using the current Size values as the basis, so
// the drag persists through the next Calc.
func Adjust(sizers []Sizer, index int, delta float64) {
	if len(sizers) == 0 || delta == 0 || math.IsNaN(delta) {
		return
	}
	if index < 0 || index >= len(sizers) {
		return
	}
	if delta > 0 {
		growSizer(sizers, index, delta)
	} else {
		shrinkSizer(sizers, index, -delta)
	}
}

func growSizer(sizers []Sizer, index int, delta float64) {
	var growLimit float64
	for i := 0; i <= index; i++ {
		growLimit += sizers[i].MaxSize - sizers[i].Size
	}
	var shrinkLimit float64
	for i := index + 1; i < len(sizers); i++ {
		shrinkLimit += sizers[i].Size - sizers[i].MinSize
	}
	delta = math.Min(delta, math.Min(growLimit, shrinkLimit))

	grow := delta
	for i := index; i >= 0 && grow > 0; i-- {
		s := &sizers[i]
		limit := s.MaxSize - s.Size
		if limit >= grow {
			s.SizeHint = s.Size + grow
			grow = 0
		} else {
			s.SizeHint = s.Size + limit
			grow -= limit
		}
	}

	shrink := delta
	for i := index + 1; i < len(sizers) && shrink > 0; i++ {
		s := &sizers[i]
		limit := s.Size - s.MinSize
		if limit >= shrink {
			s.SizeHint = s.Size - shrink
			shrink = 0
		} else {
			s.SizeHint = s.Size - limit
			shrink -= limit
		}
	}
}

func shrinkSizer(sizers []Sizer, index int, delta float64) {
	var growLimit float64
	for i := index + 1; i < len(sizers); i++ {
		growLimit += sizers[i].MaxSize - sizers[i].Size
	}
	var shrinkLimit float64
	for i := 0; i <= index; i++ {
		shrinkLimit += sizers[i].Size - sizers[i].MinSize
	}
	delta = math.Min(delta, math.Min(growLimit, shrinkLimit))

	grow := delta
	for i := index + 1; i < len(sizers) && grow > 0; i++ {
		s := &sizers[i]
		limit := s.MaxSize - s.Size
		if limit >= grow {
			s.SizeHint = s.Size + grow
			grow = 0
		} else {
			s.SizeHint = s.Size + limit
			grow -= limit
		}
	}

	shrink := delta
	for i := index; i >= 0 && shrink > 0; i-- {
		s := &sizers[i]
		limit := s.Size - s.MinSize
		if limit >= shrink {
			s.SizeHint = s.Size - shrink
			shrink = 0
		} else {
			s.SizeHint = s.Size - limit
			shrink -= limit
		}
	}
}
