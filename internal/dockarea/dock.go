package dockarea

import (
	"errors"
	"fmt"
	"slices"

	"github.com/grindlemire/go-dock/internal/boxengine"
	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/layout"
	"github.com/grindlemire/go-dock/internal/metrics"
)

// ErrInvalidReference is returned when a widget is added relative to a
// reference widget that is not in the layout.
var ErrInvalidReference = errors.New("reference widget is not in the layout")

// GoldenRatio is the default share of a fresh split given to the existing
// content when a widget is split against the whole layout.
const GoldenRatio = 0.618

// InsertMode selects where AddWidget places a widget relative to its
// reference.
type InsertMode uint8

const (
	TabAfter    InsertMode = iota // New tab after the reference tab
	TabBefore                     // New tab before the reference tab
	SplitTop                      // New area above the reference area
	SplitLeft                     // New area left of the reference area
	SplitRight                    // New area right of the reference area
	SplitBottom                   // New area below the reference area
)

// String returns the mode name used in logs and the CLI.
func (m InsertMode) String() string {
	switch m {
	case TabBefore:
		return "tab-before"
	case SplitTop:
		return "split-top"
	case SplitLeft:
		return "split-left"
	case SplitRight:
		return "split-right"
	case SplitBottom:
		return "split-bottom"
	default:
		return "tab-after"
	}
}

type addOptions struct {
	mode     InsertMode
	ref      Widget
	activate bool
}

// AddOption configures AddWidget and MoveWidget.
type AddOption func(*addOptions)

// WithMode sets the insert mode. The default is TabAfter.
func WithMode(m InsertMode) AddOption {
	return func(o *addOptions) { o.mode = m }
}

// WithRef sets the reference widget. Without one, tab modes use the first
// tab area and split modes split the whole layout.
func WithRef(ref Widget) AddOption {
	return func(o *addOptions) { o.ref = ref }
}

// WithActivate controls whether the added widget becomes the current tab of
// its area. The default is true.
func WithActivate(activate bool) AddOption {
	return func(o *addOptions) { o.activate = activate }
}

// TabAreaHit is the result of a tab area hit test.
type TabAreaHit struct {
	Bar  *TabBar
	Rect layout.Rect
}

// DockLayout arranges widgets in a tree of split areas and tab areas.
type DockLayout struct {
	spacing      float64
	tabBarHeight float64
	splitRatio   float64

	root  areaNode
	items itemMap
	host  layout.Host
}

// Option configures a DockLayout.
type Option func(*DockLayout)

// WithSpacing sets the handle thickness between split children.
func WithSpacing(s float64) Option {
	return func(d *DockLayout) { d.spacing = max(0, s) }
}

// WithTabBarHeight sets the height of every tab strip.
func WithTabBarHeight(h float64) Option {
	return func(d *DockLayout) { d.tabBarHeight = max(0, h) }
}

// WithSplitRatio sets the share kept by the existing content when a widget
// is split against the whole layout. Values outside (0, 1) are ignored.
func WithSplitRatio(r float64) Option {
	return func(d *DockLayout) {
		if r > 0 && r < 1 {
			d.splitRatio = r
		}
	}
}

// New creates an empty dock layout with a spacing of 4 and a tab bar height
// of 24.
func New(opts ...Option) *DockLayout {
	d := &DockLayout{
		spacing:      4,
		tabBarHeight: 24,
		splitRatio:   GoldenRatio,
		items:        make(itemMap),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetHost attaches the layout to the host that runs its passes. Widgets
// implementing layout.Hosted are attached to the same host.
func (d *DockLayout) SetHost(h layout.Host) {
	d.host = h
	for _, w := range d.Widgets() {
		layout.AttachHost(w, h)
	}
}

// Spacing returns the handle thickness.
func (d *DockLayout) Spacing() float64 {
	return d.spacing
}

// SetSpacing changes the handle thickness and requests a fit.
func (d *DockLayout) SetSpacing(s float64) {
	s = max(0, s)
	if d.spacing == s {
		return
	}
	d.spacing = s
	d.requestFit()
}

// IsEmpty reports whether the layout holds no widgets.
func (d *DockLayout) IsEmpty() bool {
	return d.root == nil
}

// Widgets returns every widget in tree order, tabs in tab order.
func (d *DockLayout) Widgets() []Widget {
	var out []Widget
	for _, bar := range d.TabBars() {
		out = append(out, bar.widgets...)
	}
	return out
}

// TabBars returns the tab bar of every tab area in tree order.
func (d *DockLayout) TabBars() []*TabBar {
	if d.root == nil {
		return nil
	}
	var out []*TabBar
	d.root.walkTabs(func(t *tabNode) { out = append(out, t.bar) })
	return out
}

// Handles returns the handles of every split area, hidden ones included.
func (d *DockLayout) Handles() []*layout.Handle {
	if d.root == nil {
		return nil
	}
	var out []*layout.Handle
	d.root.walkSplits(func(s *splitNode) { out = append(out, s.handles...) })
	return out
}

// HitTestTabAreas returns the tab area whose box contains the point.
func (d *DockLayout) HitTestTabAreas(x, y float64) (TabAreaHit, bool) {
	if d.root == nil {
		return TabAreaHit{}, false
	}
	var hit *tabNode
	d.root.walkTabs(func(t *tabNode) {
		if hit == nil && t.box.Contains(x, y) {
			hit = t
		}
	})
	if hit == nil {
		return TabAreaHit{}, false
	}
	return TabAreaHit{Bar: hit.bar, Rect: hit.box}, true
}

// AddWidget inserts w into the layout. A widget already in the layout is
// moved. Adding relative to a reference that is not in the layout returns
// ErrInvalidReference.
func (d *DockLayout) AddWidget(w Widget, opts ...AddOption) error {
	o := addOptions{mode: TabAfter, activate: true}
	for _, opt := range opts {
		opt(&o)
	}

	var refNode *tabNode
	if o.ref != nil {
		refNode = d.findTabNode(o.ref)
		if refNode == nil {
			return fmt.Errorf("add %q relative to %q: %w", w.ID(), o.ref.ID(), ErrInvalidReference)
		}
	}

	debug.Logger().Debug("dock: add widget", "id", w.ID(), "mode", o.mode.String())

	switch o.mode {
	case TabBefore:
		d.insertTab(w, o.ref, refNode, false)
	case SplitTop:
		d.insertSplit(w, o.ref, refNode, layout.Vertical, false)
	case SplitLeft:
		d.insertSplit(w, o.ref, refNode, layout.Horizontal, false)
	case SplitRight:
		d.insertSplit(w, o.ref, refNode, layout.Horizontal, true)
	case SplitBottom:
		d.insertSplit(w, o.ref, refNode, layout.Vertical, true)
	default:
		d.insertTab(w, o.ref, refNode, true)
	}

	if o.activate {
		if t := d.findTabNode(w); t != nil {
			t.bar.setCurrent(t.bar.indexOf(w))
		}
	}
	layout.AttachHost(w, d.host)
	d.requestFit()
	return nil
}

// MoveWidget moves w to a new position. Moving a widget that is not in the
// layout is a no-op.
func (d *DockLayout) MoveWidget(w Widget, opts ...AddOption) error {
	if d.findTabNode(w) == nil {
		return nil
	}
	return d.AddWidget(w, opts...)
}

// RemoveWidget removes w. An emptied tab area is pruned and a split left with
// a single child is collapsed. Removing an absent widget is a no-op.
func (d *DockLayout) RemoveWidget(w Widget) {
	if d.findTabNode(w) == nil {
		return
	}
	debug.Logger().Debug("dock: remove widget", "id", w.ID())
	d.removeWidget(w)
	layout.AttachHost(w, nil)
	d.requestFit()
}

// ActivateWidget makes w the current tab of its area.
func (d *DockLayout) ActivateWidget(w Widget) {
	t := d.findTabNode(w)
	if t == nil {
		return
	}
	i := t.bar.indexOf(w)
	if i == t.bar.current {
		return
	}
	t.bar.setCurrent(i)
	d.requestFit()
}

// MoveHandle drags h to the point (x, y). Only the coordinate along the
// handle's split axis is used. Hidden and unknown handles are ignored.
func (d *DockLayout) MoveHandle(h *layout.Handle, x, y float64) {
	if d.root == nil || h == nil || h.Hidden {
		return
	}
	s, index := d.findSplitNode(h)
	if s == nil {
		return
	}
	pos := y
	if s.orientation == layout.Horizontal {
		pos = x
	}
	delta := pos - h.Position()
	if delta == 0 {
		return
	}
	d.root.holdAllSizes()
	boxengine.Adjust(s.sizers, index, delta)
	debug.Logger().Debug("dock: move handle", "index", index, "delta", delta)
	if d.host != nil {
		d.host.RequestUpdate()
	}
}

// Fit computes the limits of the whole tree.
func (d *DockLayout) Fit() layout.Limits {
	metrics.ObservePass("dock", metrics.PassFit)
	if d.root == nil {
		return layout.Unbounded()
	}
	return d.root.fit(d.spacing, d.items)
}

// Update lays the tree out inside the rectangle.
func (d *DockLayout) Update(left, top, width, height float64) {
	metrics.ObservePass("dock", metrics.PassUpdate)
	if d.root == nil {
		return
	}
	d.root.update(left, top, width, height, d.spacing, d.items)
}

func (d *DockLayout) findTabNode(w Widget) *tabNode {
	if d.root == nil {
		return nil
	}
	var found *tabNode
	d.root.walkTabs(func(t *tabNode) {
		if found == nil && t.bar.indexOf(w) >= 0 {
			found = t
		}
	})
	return found
}

func (d *DockLayout) findSplitNode(h *layout.Handle) (*splitNode, int) {
	var found *splitNode
	index := -1
	d.root.walkSplits(func(s *splitNode) {
		if found != nil {
			return
		}
		for i, sh := range s.handles {
			if sh == h {
				found, index = s, i
				return
			}
		}
	})
	return found, index
}

func (d *DockLayout) firstTabNode() *tabNode {
	var first *tabNode
	d.root.walkTabs(func(t *tabNode) {
		if first == nil {
			first = t
		}
	})
	return first
}

func (d *DockLayout) newTabNode(w Widget) *tabNode {
	t := newTabNode(newTabBar(d.tabBarHeight))
	t.bar.insert(0, w)
	return t
}

func (d *DockLayout) insertTab(w, ref Widget, refNode *tabNode, after bool) {
	if ref != nil && w == ref {
		return
	}
	if d.root == nil {
		d.root = d.newTabNode(w)
		return
	}
	if refNode == nil {
		refNode = d.firstTabNode()
	}
	if refNode.bar.indexOf(w) < 0 {
		d.removeWidget(w)
	}

	index := refNode.bar.current
	if ref != nil {
		index = refNode.bar.indexOf(ref)
	}
	if after {
		index++
	}
	refNode.bar.insert(index, w)
}

func (d *DockLayout) insertSplit(w, ref Widget, refNode *tabNode, o layout.Orientation, after bool) {
	if ref != nil && w == ref && refNode != nil && refNode.bar.Len() == 1 {
		return
	}
	d.removeWidget(w)

	t := d.newTabNode(w)
	if d.root == nil {
		d.root = t
		return
	}

	if refNode == nil || refNode.parent == nil {
		root := d.splitRoot(o)
		i := 0
		if after {
			i = len(root.children)
		}
		root.normalizeSizes()
		// The existing content is normalized to one, so a hint of (1-r)/r
		// leaves it a share of r.
		hint := (1 - d.splitRatio) / d.splitRatio
		if refNode != nil {
			hint = 1
		}
		root.insertChild(i, t, boxengine.NewSizer(hint))
		root.normalizeSizes()
		root.syncHandles()
		return
	}

	parent := refNode.parent
	if parent.orientation == o {
		index := parent.indexOf(refNode)
		parent.normalizeSizes()
		half := parent.sizers[index].SizeHint / 2
		parent.sizers[index].SizeHint = half
		parent.sizers[index].Size = half
		j := index
		if after {
			j++
		}
		parent.insertChild(j, t, boxengine.NewSizer(half))
		parent.normalizeSizes()
		parent.syncHandles()
		return
	}

	i := parent.indexOf(refNode)
	refNode.setParent(nil)
	child := newSplitNode(o)
	child.insertChild(0, refNode, boxengine.NewSizer(0.5))
	j := 0
	if after {
		j = 1
	}
	child.insertChild(j, t, boxengine.NewSizer(0.5))
	child.normalized = true
	child.syncHandles()
	parent.children[i] = child
	child.setParent(parent)
}

// splitRoot returns a root split with orientation o, wrapping the current
// root in a new split when needed.
func (d *DockLayout) splitRoot(o layout.Orientation) *splitNode {
	if s, ok := d.root.(*splitNode); ok && s.orientation == o {
		return s
	}
	root := newSplitNode(o)
	if d.root != nil {
		root.insertChild(0, d.root, boxengine.NewSizer(0))
	}
	d.root = root
	return root
}

func (d *DockLayout) removeWidget(w Widget) {
	t := d.findTabNode(w)
	if t == nil {
		return
	}
	delete(d.items, w)
	t.bar.remove(w)
	if t.bar.Len() > 0 {
		return
	}

	delete(d.items, t.bar)
	if d.root == t {
		d.root = nil
		return
	}

	d.root.holdAllSizes()
	parent := t.parent
	parent.removeChild(parent.indexOf(t))
	if len(parent.children) > 1 {
		parent.syncHandles()
		return
	}

	grand := parent.parent
	parent.setParent(nil)
	only := parent.removeChild(0)

	if d.root == parent {
		d.root = only
		return
	}

	j := grand.indexOf(parent)
	inner, ok := only.(*splitNode)
	if !ok || inner.orientation != grand.orientation {
		grand.children[j] = only
		only.setParent(grand)
		return
	}

	inner.rescaleInto(grand.sizers[j].SizeHint, grand.normalized, d.spacing)
	grand.removeChild(j)
	for k, gc := range inner.children {
		gc.setParent(nil)
		grand.children = slices.Insert(grand.children, j+k, gc)
		grand.sizers = slices.Insert(grand.sizers, j+k, inner.sizers[k])
		grand.handles = slices.Insert(grand.handles, j+k, inner.handles[k])
		gc.setParent(grand)
	}
	inner.children, inner.sizers, inner.handles = nil, nil, nil
	grand.syncHandles()
}

func (d *DockLayout) requestFit() {
	if d.host != nil {
		d.host.RequestFit()
	}
}
