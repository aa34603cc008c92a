package layout

import (
	"slices"

	"github.com/grindlemire/go-dock/internal/boxengine"
	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/metrics"
)

// boxChild is a box layout entry: the item plus the sizing inputs that are
// copied into its sizer on every fit.
type boxChild struct {
	item    *Item
	stretch int
	basis   float64
}

// BoxLayout arranges elements in a single row or column. Children share the
// main axis through the box engine and fill the cross axis.
type BoxLayout struct {
	direction Direction
	alignment Alignment
	spacing   float64

	children []boxChild
	sizers   []boxengine.Sizer
	fixed    float64

	host Host
}

// BoxOption configures a BoxLayout.
type BoxOption func(*BoxLayout)

// WithDirection sets the placement order.
func WithDirection(d Direction) BoxOption {
	return func(b *BoxLayout) { b.direction = d }
}

// WithBoxAlignment sets the main-axis alignment.
func WithBoxAlignment(a Alignment) BoxOption {
	return func(b *BoxLayout) { b.alignment = a }
}

// WithBoxSpacing sets the gap between adjacent children.
func WithBoxSpacing(s float64) BoxOption {
	return func(b *BoxLayout) { b.spacing = max(0, s) }
}

// NewBoxLayout creates an empty box layout. The default direction is
// top-to-bottom with start alignment and a spacing of 4.
func NewBoxLayout(opts ...BoxOption) *BoxLayout {
	b := &BoxLayout{
		direction: TopToBottom,
		spacing:   4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetHost attaches the layout to the host that runs its passes. Children
// implementing Hosted are attached to the same host.
func (b *BoxLayout) SetHost(h Host) {
	b.host = h
	for _, c := range b.children {
		AttachHost(c.item.Element(), h)
	}
}

// Direction returns the placement order.
func (b *BoxLayout) Direction() Direction {
	return b.direction
}

// SetDirection changes the placement order and requests a fit.
func (b *BoxLayout) SetDirection(d Direction) {
	if b.direction == d {
		return
	}
	b.direction = d
	b.requestFit()
}

// Alignment returns the main-axis alignment.
func (b *BoxLayout) Alignment() Alignment {
	return b.alignment
}

// SetAlignment changes the main-axis alignment and requests an update.
func (b *BoxLayout) SetAlignment(a Alignment) {
	if b.alignment == a {
		return
	}
	b.alignment = a
	if b.host != nil {
		b.host.RequestUpdate()
	}
}

// Spacing returns the gap between adjacent children.
func (b *BoxLayout) Spacing() float64 {
	return b.spacing
}

// SetSpacing changes the gap between children and requests a fit.
func (b *BoxLayout) SetSpacing(s float64) {
	s = max(0, s)
	if b.spacing == s {
		return
	}
	b.spacing = s
	b.requestFit()
}

// Len returns the number of children.
func (b *BoxLayout) Len() int {
	return len(b.children)
}

// Elements returns the children in layout order.
func (b *BoxLayout) Elements() []Element {
	out := make([]Element, len(b.children))
	for i, c := range b.children {
		out[i] = c.item.Element()
	}
	return out
}

// IndexOf returns the position of el, or -1.
func (b *BoxLayout) IndexOf(el Element) int {
	return slices.IndexFunc(b.children, func(c boxChild) bool { return c.item.Element() == el })
}

// Add appends el.
func (b *BoxLayout) Add(el Element) {
	b.Insert(len(b.children), el)
}

// Insert places el at index, clamped to [0, Len()]. An element already in
// the layout is moved instead.
func (b *BoxLayout) Insert(index int, el Element) {
	if i := b.IndexOf(el); i >= 0 {
		b.Move(i, index)
		return
	}
	index = clampIndex(index, len(b.children))
	b.children = slices.Insert(b.children, index, boxChild{item: NewItem(el)})
	b.sizers = slices.Insert(b.sizers, index, boxengine.NewSizer(0))
	AttachHost(el, b.host)
	debug.Logger().Debug("box: insert", "index", index, "count", len(b.children))
	b.requestFit()
}

// Move moves the child at from to to. Both indices are clamped.
func (b *BoxLayout) Move(from, to int) {
	n := len(b.children)
	if n == 0 {
		return
	}
	from = clampIndex(from, n-1)
	to = clampIndex(to, n-1)
	if from == to {
		return
	}
	moveElement(b.children, from, to)
	moveElement(b.sizers, from, to)
	b.requestUpdateOnly()
}

// Remove removes el. Removing an element that is not in the layout is a
// no-op.
func (b *BoxLayout) Remove(el Element) {
	if i := b.IndexOf(el); i >= 0 {
		b.RemoveAt(i)
	}
}

// RemoveAt removes the child at index, clamped to the valid range, and
// returns its element. It returns nil when the layout is empty.
func (b *BoxLayout) RemoveAt(index int) Element {
	n := len(b.children)
	if n == 0 {
		return nil
	}
	index = clampIndex(index, n-1)
	el := b.children[index].item.Element()
	b.children = slices.Delete(b.children, index, index+1)
	b.sizers = slices.Delete(b.sizers, index, index+1)
	AttachHost(el, nil)
	debug.Logger().Debug("box: remove", "index", index, "count", len(b.children))
	b.requestFit()
	return el
}

// Stretch returns the stretch factor of el (0 if absent).
func (b *BoxLayout) Stretch(el Element) int {
	if i := b.IndexOf(el); i >= 0 {
		return b.children[i].stretch
	}
	return 0
}

// SetStretch sets the stretch factor of el. Negative values are clamped to 0.
func (b *BoxLayout) SetStretch(el Element, stretch int) {
	i := b.IndexOf(el)
	if i < 0 {
		return
	}
	b.children[i].stretch = max(0, stretch)
	b.requestFit()
}

// SizeBasis returns the preferred main-axis size of el (0 if absent).
func (b *BoxLayout) SizeBasis(el Element) float64 {
	if i := b.IndexOf(el); i >= 0 {
		return b.children[i].basis
	}
	return 0
}

// SetSizeBasis sets the preferred main-axis size of el. Negative values are
// clamped to 0.
func (b *BoxLayout) SetSizeBasis(el Element, basis float64) {
	i := b.IndexOf(el)
	if i < 0 {
		return
	}
	b.children[i].basis = max(0, basis)
	b.requestFit()
}

// Fit refreshes every child's limits and returns the limits of the layout:
// main-axis bounds are summed with the spacing, cross-axis minimums take the
// largest child and cross-axis maximums the smallest.
func (b *BoxLayout) Fit() Limits {
	metrics.ObservePass("box", metrics.PassFit)

	nVisible := 0
	for _, c := range b.children {
		if !c.item.IsHidden() {
			nVisible++
		}
	}
	b.fixed = b.spacing * float64(max(0, nVisible-1))

	o := b.direction.Orientation()
	var mainMin, mainMax, crossMin float64
	mainMin, mainMax = b.fixed, b.fixed
	crossMax := posInf

	for i, c := range b.children {
		s := &b.sizers[i]
		if c.item.IsHidden() {
			s.MinSize = 0
			s.MaxSize = 0
			continue
		}
		c.item.Fit()
		lim := c.item.Limits()
		s.SizeHint = c.basis
		s.Stretch = c.stretch
		s.MinSize, s.MaxSize = lim.Main(o)
		cmin, cmax := lim.Cross(o)
		mainMin += s.MinSize
		mainMax += s.MaxSize
		crossMin = max(crossMin, cmin)
		crossMax = min(crossMax, cmax)
	}

	return axisLimits(o, mainMin, mainMax, crossMin, crossMax).Normalize()
}

// Update lays the children out inside the rectangle. Space the engine cannot
// hand out because every child is at its maximum is used for alignment.
func (b *BoxLayout) Update(left, top, width, height float64) {
	metrics.ObservePass("box", metrics.PassUpdate)

	nVisible := 0
	for _, c := range b.children {
		if !c.item.IsHidden() {
			nVisible++
		}
	}
	if nVisible == 0 {
		return
	}

	o := b.direction.Orientation()
	mainStart, crossStart, mainLen, crossLen := left, top, width, height
	if o == Vertical {
		mainStart, crossStart, mainLen, crossLen = top, left, height, width
	}

	space := max(0, mainLen-b.fixed)
	delta := boxengine.Calc(b.sizers, space)
	metrics.ObserveUnresolved("box", delta)

	var extra, offset float64
	if delta > 0 {
		switch b.alignment {
		case AlignCenter:
			offset = delta / 2
		case AlignEnd:
			offset = delta
		case AlignJustify:
			extra = delta / float64(nVisible)
		}
	}

	var cursor float64
	for i, c := range b.children {
		if c.item.IsHidden() {
			continue
		}
		size := b.sizers[i].Size + extra
		pos := mainStart + offset + cursor
		if b.direction.reversed() {
			pos = mainStart + mainLen - offset - cursor - size
		}
		if o == Horizontal {
			c.item.Update(pos, crossStart, size, crossLen)
		} else {
			c.item.Update(crossStart, pos, crossLen, size)
		}
		cursor += size + b.spacing
	}
}

func (b *BoxLayout) requestFit() {
	if b.host != nil {
		b.host.RequestFit()
	}
}

func (b *BoxLayout) requestUpdateOnly() {
	if b.host != nil {
		b.host.RequestUpdate()
	}
}
