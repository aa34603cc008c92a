package layout

import (
	"slices"

	"github.com/grindlemire/go-dock/internal/boxengine"
	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/metrics"
)

// SplitLayout arranges elements along one axis with a draggable handle
// between each pair. Unlike a box layout, sizes persist: every fit copies the
// current sizes back into the hints, so handle drags and resizes keep their
// proportions.
type SplitLayout struct {
	orientation Orientation
	alignment   Alignment
	spacing     float64

	items   []*Item
	stretch []int
	sizers  []boxengine.Sizer
	handles []*Handle
	fixed   float64

	// normed is set when the sizer hints hold fractions of the available
	// space rather than absolute sizes.
	normed bool

	host Host
}

// SplitOption configures a SplitLayout.
type SplitOption func(*SplitLayout)

// WithOrientation sets the split axis.
func WithOrientation(o Orientation) SplitOption {
	return func(s *SplitLayout) { s.orientation = o }
}

// WithSplitAlignment sets the main-axis alignment.
func WithSplitAlignment(a Alignment) SplitOption {
	return func(s *SplitLayout) { s.alignment = a }
}

// WithSplitSpacing sets the handle thickness.
func WithSplitSpacing(sp float64) SplitOption {
	return func(s *SplitLayout) { s.spacing = max(0, sp) }
}

// NewSplitLayout creates an empty horizontal split with a handle thickness
// of 4.
func NewSplitLayout(opts ...SplitOption) *SplitLayout {
	s := &SplitLayout{spacing: 4}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetHost attaches the layout to the host that runs its passes. Children
// implementing Hosted are attached to the same host.
func (s *SplitLayout) SetHost(h Host) {
	s.host = h
	for _, it := range s.items {
		AttachHost(it.Element(), h)
	}
}

// Orientation returns the split axis.
func (s *SplitLayout) Orientation() Orientation {
	return s.orientation
}

// SetOrientation changes the split axis and requests a fit.
func (s *SplitLayout) SetOrientation(o Orientation) {
	if s.orientation == o {
		return
	}
	s.orientation = o
	for _, h := range s.handles {
		h.Orientation = o
	}
	s.requestFit()
}

// Spacing returns the handle thickness.
func (s *SplitLayout) Spacing() float64 {
	return s.spacing
}

// SetSpacing changes the handle thickness and requests a fit.
func (s *SplitLayout) SetSpacing(sp float64) {
	sp = max(0, sp)
	if s.spacing == sp {
		return
	}
	s.spacing = sp
	s.requestFit()
}

// Len returns the number of children.
func (s *SplitLayout) Len() int {
	return len(s.items)
}

// Elements returns the children in layout order.
func (s *SplitLayout) Elements() []Element {
	out := make([]Element, len(s.items))
	for i, it := range s.items {
		out[i] = it.Element()
	}
	return out
}

// Handles returns the handles, one per child. The slice is shared; callers
// must not modify it.
func (s *SplitLayout) Handles() []*Handle {
	return s.handles
}

// IndexOf returns the position of el, or -1.
func (s *SplitLayout) IndexOf(el Element) int {
	return slices.IndexFunc(s.items, func(it *Item) bool { return it.Element() == el })
}

// Add appends el.
func (s *SplitLayout) Add(el Element) {
	s.Insert(len(s.items), el)
}

// Insert places el at index, clamped to [0, Len()]. The new child starts at
// the average size of its siblings. An element already in the layout is
// moved instead.
func (s *SplitLayout) Insert(index int, el Element) {
	if i := s.IndexOf(el); i >= 0 {
		s.Move(i, index)
		return
	}
	index = clampIndex(index, len(s.items))
	s.items = slices.Insert(s.items, index, NewItem(el))
	s.stretch = slices.Insert(s.stretch, index, 0)
	s.sizers = slices.Insert(s.sizers, index, boxengine.NewSizer(boxengine.AverageSize(s.sizers)))
	s.handles = slices.Insert(s.handles, index, &Handle{Orientation: s.orientation})
	AttachHost(el, s.host)
	debug.Logger().Debug("split: insert", "index", index, "count", len(s.items))
	s.requestFit()
}

// Move moves the child at from to to. Both indices are clamped.
func (s *SplitLayout) Move(from, to int) {
	n := len(s.items)
	if n == 0 {
		return
	}
	from = clampIndex(from, n-1)
	to = clampIndex(to, n-1)
	if from == to {
		return
	}
	moveElement(s.items, from, to)
	moveElement(s.stretch, from, to)
	moveElement(s.sizers, from, to)
	moveElement(s.handles, from, to)
	s.requestFit()
}

// Remove removes el. Removing an element that is not in the layout is a
// no-op.
func (s *SplitLayout) Remove(el Element) {
	if i := s.IndexOf(el); i >= 0 {
		s.RemoveAt(i)
	}
}

// RemoveAt removes the child at index, clamped to the valid range, and
// returns its element. It returns nil when the layout is empty.
func (s *SplitLayout) RemoveAt(index int) Element {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	index = clampIndex(index, n-1)
	el := s.items[index].Element()
	s.items = slices.Delete(s.items, index, index+1)
	s.stretch = slices.Delete(s.stretch, index, index+1)
	s.sizers = slices.Delete(s.sizers, index, index+1)
	s.handles = slices.Delete(s.handles, index, index+1)
	AttachHost(el, nil)
	debug.Logger().Debug("split: remove", "index", index, "count", len(s.items))
	s.requestFit()
	return el
}

// SetStretch sets the stretch factor of el. Negative values are clamped to 0.
func (s *SplitLayout) SetStretch(el Element, stretch int) {
	i := s.IndexOf(el)
	if i < 0 {
		return
	}
	s.stretch[i] = max(0, stretch)
	s.requestFit()
}

// RelativeSizes returns the current sizes normalized to sum to one.
func (s *SplitLayout) RelativeSizes() []float64 {
	return boxengine.Normalize(boxengine.Sizes(s.sizers))
}

// SetRelativeSizes sets the sizes as fractions of the available space. The
// input is truncated or zero-padded to the number of children and
// normalized. The fractions are applied on the next update.
func (s *SplitLayout) SetRelativeSizes(sizes []float64) {
	n := len(s.sizers)
	temp := make([]float64, n)
	copy(temp, sizes)
	normed := boxengine.Normalize(temp)
	for i := range s.sizers {
		s.sizers[i].SizeHint = normed[i]
		s.sizers[i].Size = normed[i]
	}
	s.normed = true
	if s.host != nil {
		s.host.RequestUpdate()
	}
}

// MoveHandle drags the handle at index to the given main-axis position.
// Hidden handles and out-of-range indices are ignored.
func (s *SplitLayout) MoveHandle(index int, position float64) {
	if index < 0 || index >= len(s.handles) {
		return
	}
	h := s.handles[index]
	if h.Hidden {
		return
	}
	delta := position - h.Position()
	if delta == 0 {
		return
	}
	for i := range s.sizers {
		if s.sizers[i].Size > 0 {
			s.sizers[i].SizeHint = s.sizers[i].Size
		}
	}
	boxengine.Adjust(s.sizers, index, delta)
	debug.Logger().Debug("split: move handle", "index", index, "delta", delta)
	if s.host != nil {
		s.host.RequestUpdate()
	}
}

// Fit refreshes every child's limits, syncs handle visibility and returns
// the minimum size of the layout. Maximums are unbounded.
func (s *SplitLayout) Fit() Limits {
	metrics.ObservePass("split", metrics.PassFit)

	nVisible := 0
	last := -1
	for i, it := range s.items {
		s.handles[i].Hidden = it.IsHidden()
		if !it.IsHidden() {
			last = i
			nVisible++
		}
	}
	if last >= 0 {
		s.handles[last].Hidden = true
	}
	s.fixed = s.spacing * float64(max(0, nVisible-1))

	var mainMin, crossMin float64
	mainMin = s.fixed
	for i, it := range s.items {
		sz := &s.sizers[i]
		if sz.Size > 0 {
			sz.SizeHint = sz.Size
		}
		if it.IsHidden() {
			sz.MinSize = 0
			sz.MaxSize = 0
			continue
		}
		it.Fit()
		lim := it.Limits()
		sz.Stretch = s.stretch[i]
		sz.MinSize, sz.MaxSize = lim.Main(s.orientation)
		cmin, _ := lim.Cross(s.orientation)
		mainMin += sz.MinSize
		crossMin = max(crossMin, cmin)
	}

	return axisLimits(s.orientation, mainMin, posInf, crossMin, posInf)
}

// Update lays the children and handles out inside the rectangle.
func (s *SplitLayout) Update(left, top, width, height float64) {
	metrics.ObservePass("split", metrics.PassUpdate)

	nVisible := 0
	for _, it := range s.items {
		if !it.IsHidden() {
			nVisible++
		}
	}
	if nVisible == 0 {
		return
	}

	mainStart, crossStart, mainLen, crossLen := left, top, width, height
	if s.orientation == Vertical {
		mainStart, crossStart, mainLen, crossLen = top, left, height, width
	}

	space := max(0, mainLen-s.fixed)
	if s.normed {
		for i := range s.sizers {
			s.sizers[i].SizeHint *= space
		}
		s.normed = false
	}

	delta := boxengine.Calc(s.sizers, space)
	metrics.ObserveUnresolved("split", delta)

	var extra, offset float64
	if delta > 0 {
		switch s.alignment {
		case AlignCenter:
			offset = delta / 2
		case AlignEnd:
			offset = delta
		case AlignJustify:
			extra = delta / float64(nVisible)
		}
	}

	pos := mainStart + offset
	for i, it := range s.items {
		if it.IsHidden() {
			continue
		}
		size := s.sizers[i].Size + extra
		h := s.handles[i]
		if s.orientation == Horizontal {
			it.Update(pos, crossStart, size, crossLen)
			h.Rect = NewRect(pos+size, crossStart, s.spacing, crossLen)
		} else {
			it.Update(crossStart, pos, crossLen, size)
			h.Rect = NewRect(crossStart, pos+size, crossLen, s.spacing)
		}
		pos += size + s.spacing
	}
}

func (s *SplitLayout) requestFit() {
	if s.host != nil {
		s.host.RequestFit()
	}
}
