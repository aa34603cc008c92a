package dockarea

import (
	"math"
	"slices"

	"github.com/grindlemire/go-dock/internal/layout"
)

// Widget is an element that can live in a dock area. IDs identify widgets in
// layout snapshots and must be unique within a layout.
type Widget interface {
	layout.Element
	ID() string
}

// TabBar holds the widgets of one tab area and tracks the current one. It is
// laid out as a strip of fixed height above the current widget.
type TabBar struct {
	widgets []Widget
	current int
	height  float64
	rect    layout.Rect
}

func newTabBar(height float64) *TabBar {
	return &TabBar{current: -1, height: max(0, height)}
}

// Widgets returns the widgets in tab order.
func (tb *TabBar) Widgets() []Widget {
	return slices.Clone(tb.widgets)
}

// Len returns the number of tabs.
func (tb *TabBar) Len() int {
	return len(tb.widgets)
}

// CurrentIndex returns the index of the current tab, or -1 when empty.
func (tb *TabBar) CurrentIndex() int {
	return tb.current
}

// Current returns the current widget, or nil when empty.
func (tb *TabBar) Current() Widget {
	if tb.current < 0 || tb.current >= len(tb.widgets) {
		return nil
	}
	return tb.widgets[tb.current]
}

// Rect returns the geometry of the tab strip.
func (tb *TabBar) Rect() layout.Rect {
	return tb.rect
}

// SizeLimits implements layout.Element. The strip has a fixed height.
func (tb *TabBar) SizeLimits() layout.Limits {
	return layout.Limits{MinHeight: tb.height, MaxWidth: math.Inf(1), MaxHeight: tb.height}
}

// SetGeometry implements layout.Element.
func (tb *TabBar) SetGeometry(r layout.Rect) {
	tb.rect = r
}

// IsHidden implements layout.Element.
func (tb *TabBar) IsHidden() bool {
	return false
}

func (tb *TabBar) indexOf(w Widget) int {
	return slices.Index(tb.widgets, w)
}

// insert places w before the tab currently at index, clamped to the tab
// count. A widget already in the bar is moved instead. The first tab of an
// empty bar becomes current.
func (tb *TabBar) insert(index int, w Widget) {
	n := len(tb.widgets)
	j := max(0, min(index, n))
	if i := tb.indexOf(w); i >= 0 {
		if i < j {
			j--
		}
		if i == j {
			return
		}
		cur := tb.Current()
		tb.widgets = slices.Delete(tb.widgets, i, i+1)
		tb.widgets = slices.Insert(tb.widgets, j, w)
		tb.current = tb.indexOf(cur)
		return
	}
	tb.widgets = slices.Insert(tb.widgets, j, w)
	switch {
	case tb.current < 0:
		tb.current = j
	case j <= tb.current:
		tb.current++
	}
}

// remove drops w. When the current tab is removed, the tab after it becomes
// current, or the one before it if it was last.
func (tb *TabBar) remove(w Widget) {
	i := tb.indexOf(w)
	if i < 0 {
		return
	}
	tb.widgets = slices.Delete(tb.widgets, i, i+1)
	switch {
	case len(tb.widgets) == 0:
		tb.current = -1
	case i < tb.current:
		tb.current--
	case i == tb.current:
		tb.current = min(i, len(tb.widgets)-1)
	}
}

// setCurrent makes the tab at index current. Out-of-range indices are
// ignored.
func (tb *TabBar) setCurrent(index int) {
	if index < 0 || index >= len(tb.widgets) {
		return
	}
	tb.current = index
}
