package dockarea

import (
	"math"
	"slices"

	"github.com/grindlemire/go-dock/internal/boxengine"
	"github.com/grindlemire/go-dock/internal/layout"
)

// itemMap caches a layout item per element of the dock tree.
type itemMap map[layout.Element]*layout.Item

func (m itemMap) get(el layout.Element) *layout.Item {
	it, ok := m[el]
	if !ok {
		it = layout.NewItem(el)
		m[el] = it
	}
	return it
}

// areaNode is a node of the dock tree: a *tabNode leaf or a *splitNode.
type areaNode interface {
	setParent(p *splitNode)

	fit(spacing float64, items itemMap) layout.Limits
	update(left, top, width, height, spacing float64, items itemMap)

	holdAllSizes()
	config() *AreaConfig
	walkTabs(fn func(*tabNode))
	walkSplits(fn func(*splitNode))
}

var posInf = math.Inf(1)

// tabNode is a leaf holding a tab bar. Its two sizers split the height
// between the tab strip and the current widget.
type tabNode struct {
	parent *splitNode
	bar    *TabBar
	sizers []boxengine.Sizer
	box    layout.Rect
}

func newTabNode(bar *TabBar) *tabNode {
	strip := boxengine.NewSizer(0)
	strip.Stretch = 0
	return &tabNode{
		bar:    bar,
		sizers: []boxengine.Sizer{strip, boxengine.NewSizer(0)},
	}
}

func (t *tabNode) setParent(p *splitNode) { t.parent = p }
func (t *tabNode) holdAllSizes()          {}

func (t *tabNode) walkTabs(fn func(*tabNode))     { fn(t) }
func (t *tabNode) walkSplits(fn func(*splitNode)) {}

func (t *tabNode) fit(spacing float64, items itemMap) layout.Limits {
	lim := layout.Unbounded()

	barItem := items.get(t.bar)
	barItem.Fit()
	barLim := barItem.Limits()
	lim.MinWidth = max(lim.MinWidth, barLim.MinWidth)
	lim.MinHeight += barLim.MinHeight
	t.sizers[0].MinSize = barLim.MinHeight
	t.sizers[0].MaxSize = barLim.MaxHeight
	t.sizers[0].SizeHint = barLim.MinHeight

	content := &t.sizers[1]
	if w := t.bar.Current(); w != nil && !w.IsHidden() {
		it := items.get(w)
		it.Fit()
		wl := it.Limits()
		lim.MinWidth = max(lim.MinWidth, wl.MinWidth)
		lim.MinHeight += wl.MinHeight
		content.MinSize = wl.MinHeight
		content.MaxSize = posInf
	} else {
		content.MinSize = 0
		content.MaxSize = 0
	}
	return lim
}

func (t *tabNode) update(left, top, width, height, spacing float64, items itemMap) {
	t.box = layout.NewRect(left, top, width, height)
	boxengine.Calc(t.sizers, height)

	size := t.sizers[0].Size
	items.get(t.bar).Update(left, top, width, size)
	top += size

	if w := t.bar.Current(); w != nil && !w.IsHidden() {
		items.get(w).Update(left, top, width, t.sizers[1].Size)
	}
}

func (t *tabNode) config() *AreaConfig {
	ids := make([]string, len(t.bar.widgets))
	for i, w := range t.bar.widgets {
		ids[i] = w.ID()
	}
	return &AreaConfig{
		Type:         TabArea,
		Widgets:      ids,
		CurrentIndex: t.bar.current,
	}
}

// splitNode divides its box among its children along one axis. children,
// sizers and handles are index-aligned.
type splitNode struct {
	parent      *splitNode
	orientation layout.Orientation
	children    []areaNode
	sizers      []boxengine.Sizer
	handles     []*layout.Handle

	// normalized is set when the sizer hints hold fractions of the
	// available space rather than absolute sizes.
	normalized bool
}

func newSplitNode(o layout.Orientation) *splitNode {
	return &splitNode{orientation: o}
}

func (s *splitNode) setParent(p *splitNode) { s.parent = p }

func (s *splitNode) walkTabs(fn func(*tabNode)) {
	for _, c := range s.children {
		c.walkTabs(fn)
	}
}

func (s *splitNode) walkSplits(fn func(*splitNode)) {
	fn(s)
	for _, c := range s.children {
		c.walkSplits(fn)
	}
}

func (s *splitNode) indexOf(child areaNode) int {
	return slices.Index(s.children, child)
}

// insertChild adds child at index with the given sizer and a fresh handle.
func (s *splitNode) insertChild(index int, child areaNode, sz boxengine.Sizer) {
	s.children = slices.Insert(s.children, index, child)
	s.sizers = slices.Insert(s.sizers, index, sz)
	s.handles = slices.Insert(s.handles, index, &layout.Handle{Orientation: s.orientation})
	child.setParent(s)
}

// removeChild drops the child at index along with its sizer and handle and
// clears its parent link.
func (s *splitNode) removeChild(index int) areaNode {
	child := s.children[index]
	s.children = slices.Delete(s.children, index, index+1)
	s.sizers = slices.Delete(s.sizers, index, index+1)
	s.handles = slices.Delete(s.handles, index, index+1)
	child.setParent(nil)
	return child
}

// syncHandles hides the trailing handle and shows the rest.
func (s *splitNode) syncHandles() {
	for i, h := range s.handles {
		h.Orientation = s.orientation
		h.Hidden = i == len(s.handles)-1
	}
}

func (s *splitNode) holdSizes() {
	boxengine.Hold(s.sizers)
}

func (s *splitNode) holdAllSizes() {
	for _, c := range s.children {
		c.holdAllSizes()
	}
	s.holdSizes()
}

// normalizeSizes holds the current sizes and rescales the hints to
// fractions summing to one.
func (s *splitNode) normalizeSizes() {
	if len(s.sizers) == 0 {
		return
	}
	s.holdSizes()
	hints := make([]float64, len(s.sizers))
	for i := range s.sizers {
		hints[i] = s.sizers[i].SizeHint
	}
	for i, f := range boxengine.Normalize(hints) {
		s.sizers[i].SizeHint = f
		s.sizers[i].Size = f
	}
	s.normalized = true
}

// rescaleInto converts the hints to the units of a parent split whose slot
// for s has the given hint, so the children can be spliced into the parent.
// The parent holds fractions when parentNormalized is set and sizes
// otherwise. Sizes held on both sides are already compatible.
func (s *splitNode) rescaleInto(slot float64, parentNormalized bool, spacing float64) {
	if !s.normalized && !parentNormalized {
		return
	}
	total := slot
	if !parentNormalized {
		total = max(0, slot-s.fixedSpace(spacing))
	}
	hints := make([]float64, len(s.sizers))
	for i := range s.sizers {
		hints[i] = s.sizers[i].SizeHint
	}
	for i, f := range boxengine.Normalize(hints) {
		s.sizers[i].SizeHint = f * total
		s.sizers[i].Size = f * total
	}
	s.normalized = parentNormalized
}

func (s *splitNode) fixedSpace(spacing float64) float64 {
	return max(0, float64(len(s.children)-1)) * spacing
}

func (s *splitNode) fit(spacing float64, items itemMap) layout.Limits {
	fixed := s.fixedSpace(spacing)
	lim := layout.Unbounded()
	if s.orientation == layout.Horizontal {
		lim.MinWidth = fixed
	} else {
		lim.MinHeight = fixed
	}

	for i, c := range s.children {
		cl := c.fit(spacing, items)
		if s.orientation == layout.Horizontal {
			lim.MinHeight = max(lim.MinHeight, cl.MinHeight)
			lim.MinWidth += cl.MinWidth
			s.sizers[i].MinSize = cl.MinWidth
		} else {
			lim.MinWidth = max(lim.MinWidth, cl.MinWidth)
			lim.MinHeight += cl.MinHeight
			s.sizers[i].MinSize = cl.MinHeight
		}
	}
	return lim
}

func (s *splitNode) update(left, top, width, height, spacing float64, items itemMap) {
	horizontal := s.orientation == layout.Horizontal
	mainLen := height
	if horizontal {
		mainLen = width
	}
	space := max(0, mainLen-s.fixedSpace(spacing))

	if s.normalized {
		for i := range s.sizers {
			s.sizers[i].SizeHint *= space
		}
		s.normalized = false
	}

	boxengine.Calc(s.sizers, space)

	for i, c := range s.children {
		size := s.sizers[i].Size
		h := s.handles[i]
		if horizontal {
			c.update(left, top, size, height, spacing, items)
			left += size
			h.Rect = layout.NewRect(left, top, spacing, height)
			left += spacing
		} else {
			c.update(left, top, width, size, spacing, items)
			top += size
			h.Rect = layout.NewRect(left, top, width, spacing)
			top += spacing
		}
	}
}

func (s *splitNode) config() *AreaConfig {
	children := make([]*AreaConfig, len(s.children))
	for i, c := range s.children {
		children[i] = c.config()
	}
	return &AreaConfig{
		Type:        SplitArea,
		Orientation: s.orientation.String(),
		Children:    children,
		Sizes:       boxengine.Normalize(boxengine.Sizes(s.sizers)),
	}
}
