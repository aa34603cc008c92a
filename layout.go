// layout.go re-exports the layout, engine, dock and widget types.
// Any changes to the internal types must be mirrored here.
package dock

import (
	"github.com/grindlemire/go-dock/internal/boxengine"
	"github.com/grindlemire/go-dock/internal/dockarea"
	"github.com/grindlemire/go-dock/internal/layout"
	"github.com/grindlemire/go-dock/internal/schedule"
	"github.com/grindlemire/go-dock/internal/widget"
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point is a position or a width/height pair.
type Point = layout.Point

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Limits are the minimum and maximum size of an element.
type Limits = layout.Limits

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// Unbounded returns limits with no minimum and no maximum.
func Unbounded() Limits {
	return layout.Unbounded()
}

// Orientation is the main axis of a split or dock area.
type Orientation = layout.Orientation

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Direction is the placement order of a box layout.
type Direction = layout.Direction

const (
	LeftToRight = layout.LeftToRight
	RightToLeft = layout.RightToLeft
	TopToBottom = layout.TopToBottom
	BottomToTop = layout.BottomToTop
)

// Alignment positions children along the main axis.
type Alignment = layout.Alignment

const (
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
	AlignJustify = layout.AlignJustify
)

// HAlign positions an element inside a slot wider than its maximum width.
type HAlign = layout.HAlign

const (
	HAlignCenter = layout.HAlignCenter
	HAlignLeft   = layout.HAlignLeft
	HAlignRight  = layout.HAlignRight
)

// VAlign positions an element inside a slot taller than its maximum height.
type VAlign = layout.VAlign

const (
	VAlignTop    = layout.VAlignTop
	VAlignCenter = layout.VAlignCenter
	VAlignBottom = layout.VAlignBottom
)

// Element is anything a layout can size and place.
type Element = layout.Element

// Host runs the passes a layout requests.
type Host = layout.Host

// Handle is the divider after a split child.
type Handle = layout.Handle

// BoxLayout arranges elements in a single row or column.
type BoxLayout = layout.BoxLayout

// BoxOption configures a BoxLayout.
type BoxOption = layout.BoxOption

// NewBoxLayout creates an empty box layout.
func NewBoxLayout(opts ...BoxOption) *BoxLayout {
	return layout.NewBoxLayout(opts...)
}

// WithDirection sets the placement order of a box layout.
func WithDirection(d Direction) BoxOption { return layout.WithDirection(d) }

// WithBoxAlignment sets the main-axis alignment of a box layout.
func WithBoxAlignment(a Alignment) BoxOption { return layout.WithBoxAlignment(a) }

// WithBoxSpacing sets the gap between box children.
func WithBoxSpacing(s float64) BoxOption { return layout.WithBoxSpacing(s) }

// SplitLayout arranges elements along one axis with draggable handles.
type SplitLayout = layout.SplitLayout

// SplitOption configures a SplitLayout.
type SplitOption = layout.SplitOption

// NewSplitLayout creates an empty split layout.
func NewSplitLayout(opts ...SplitOption) *SplitLayout {
	return layout.NewSplitLayout(opts...)
}

// WithOrientation sets the split axis.
func WithOrientation(o Orientation) SplitOption { return layout.WithOrientation(o) }

// WithSplitAlignment sets the main-axis alignment of a split layout.
func WithSplitAlignment(a Alignment) SplitOption { return layout.WithSplitAlignment(a) }

// WithSplitSpacing sets the handle thickness of a split layout.
func WithSplitSpacing(s float64) SplitOption { return layout.WithSplitSpacing(s) }

// DockLayout arranges widgets in a tree of split and tab areas.
type DockLayout = dockarea.DockLayout

// DockOption configures a DockLayout.
type DockOption = dockarea.Option

// NewDockLayout creates an empty dock layout.
func NewDockLayout(opts ...DockOption) *DockLayout {
	return dockarea.New(opts...)
}

// WithDockSpacing sets the handle thickness between dock areas.
func WithDockSpacing(s float64) DockOption { return dockarea.WithSpacing(s) }

// WithTabBarHeight sets the height of every tab strip.
func WithTabBarHeight(h float64) DockOption { return dockarea.WithTabBarHeight(h) }

// WithSplitRatio sets the share kept by existing content when a widget is
// split against the whole layout.
func WithSplitRatio(r float64) DockOption { return dockarea.WithSplitRatio(r) }

// AddOption configures DockLayout.AddWidget and MoveWidget.
type AddOption = dockarea.AddOption

// WithMode sets the insert mode.
func WithMode(m InsertMode) AddOption { return dockarea.WithMode(m) }

// WithRef sets the reference widget.
func WithRef(ref DockWidget) AddOption { return dockarea.WithRef(ref) }

// WithActivate controls whether the added widget becomes the current tab.
func WithActivate(activate bool) AddOption { return dockarea.WithActivate(activate) }

// DockWidget is an element that can live in a dock area.
type DockWidget = dockarea.Widget

// InsertMode selects where a dock widget is added.
type InsertMode = dockarea.InsertMode

const (
	TabAfter    = dockarea.TabAfter
	TabBefore   = dockarea.TabBefore
	SplitTop    = dockarea.SplitTop
	SplitLeft   = dockarea.SplitLeft
	SplitRight  = dockarea.SplitRight
	SplitBottom = dockarea.SplitBottom
)

// LayoutConfig is a snapshot of a dock layout.
type LayoutConfig = dockarea.LayoutConfig

// AreaConfig is one area of a snapshot.
type AreaConfig = dockarea.AreaConfig

// TabAreaHit is a tab area found by DockLayout.HitTestTabAreas.
type TabAreaHit = dockarea.TabAreaHit

// ErrInvalidReference is returned when a dock widget is added relative to a
// widget that is not in the layout.
var ErrInvalidReference = dockarea.ErrInvalidReference

// Widget is a concrete leaf element with an ID and a title.
type Widget = widget.Widget

// WidgetOption configures a Widget.
type WidgetOption = widget.Option

// NewWidget creates a widget with unbounded limits and a random ID.
func NewWidget(opts ...WidgetOption) *Widget {
	return widget.New(opts...)
}

// WithID sets the widget ID.
func WithID(id string) WidgetOption { return widget.WithID(id) }

// WithTitle sets the widget's tab title.
func WithTitle(title string) WidgetOption { return widget.WithTitle(title) }

// WithMinSize sets the widget's minimum width and height.
func WithMinSize(width, height float64) WidgetOption { return widget.WithMinSize(width, height) }

// WithMaxSize sets the widget's maximum width and height.
func WithMaxSize(width, height float64) WidgetOption { return widget.WithMaxSize(width, height) }

// WithWidgetAlignment sets how a widget sits in a slot larger than its
// maximum.
func WithWidgetAlignment(h HAlign, v VAlign) WidgetOption { return widget.WithAlignment(h, v) }

// Sizer is a size negotiation record for the box engine.
type Sizer = boxengine.Sizer

// Calc distributes space among the sizers. See boxengine.Calc.
func Calc(sizers []Sizer, space float64) float64 {
	return boxengine.Calc(sizers, space)
}

// Adjust moves the boundary after sizers[index] by delta. See
// boxengine.Adjust.
func Adjust(sizers []Sizer, index int, delta float64) {
	boxengine.Adjust(sizers, index, delta)
}

// Scheduler coalesces fit and update passes.
type Scheduler = schedule.Scheduler

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return schedule.New()
}
