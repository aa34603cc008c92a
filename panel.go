package dock

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/layout"
	"github.com/grindlemire/go-dock/internal/schedule"
)

// Layout is implemented by BoxLayout, SplitLayout and DockLayout.
type Layout interface {
	// SetHost attaches the layout to the panel that runs its passes.
	SetHost(h Host)

	// Fit refreshes child limits and returns the limits of the layout.
	Fit() Limits

	// Update lays the children out inside the rectangle.
	Update(left, top, width, height float64)
}

// Panel owns a layout and drives its fit/update cycle. It is the Host of its
// layout and an Element, so panels nest inside the layouts of other panels.
//
// Structural changes request passes through the panel's scheduler; they run
// on the next Flush. Giving the panel a new geometry updates it immediately.
type Panel struct {
	layout  Layout
	padding Edges
	rect    Rect
	limits  Limits
	fitted  bool
	hidden  bool

	parent *Panel
	sched  *schedule.Scheduler
}

// PanelOption is a functional option for configuring a Panel.
type PanelOption func(*Panel) error

// WithPadding sets the space kept free around the layout.
func WithPadding(e Edges) PanelOption {
	return func(p *Panel) error {
		if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
			return fmt.Errorf("padding must not be negative: %+v", e)
		}
		p.padding = e
		return nil
	}
}

// WithScheduler makes the panel queue its passes on s. By default each root
// panel gets its own scheduler.
func WithScheduler(s *schedule.Scheduler) PanelOption {
	return func(p *Panel) error {
		if s == nil {
			return errors.New("scheduler must not be nil")
		}
		p.sched = s
		return nil
	}
}

// WithParent nests the panel in parent. The panel shares the parent's
// scheduler, and a change in its limits requests a fit of the parent. The
// caller still adds the panel to the parent's layout.
func WithParent(parent *Panel) PanelOption {
	return func(p *Panel) error {
		if parent == nil {
			return errors.New("parent panel must not be nil")
		}
		p.parent = parent
		p.sched = parent.sched
		return nil
	}
}

// NewPanel creates a panel for l and requests its first fit.
func NewPanel(l Layout, opts ...PanelOption) (*Panel, error) {
	if l == nil {
		return nil, errors.New("dock: nil layout")
	}
	p := &Panel{layout: l}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.sched == nil {
		p.sched = schedule.New()
	}
	l.SetHost(p)
	p.RequestFit()
	return p, nil
}

// Layout returns the panel's layout.
func (p *Panel) Layout() Layout {
	return p.layout
}

// Parent returns the enclosing panel, or nil for a root panel.
func (p *Panel) Parent() *Panel {
	return p.parent
}

// Scheduler returns the scheduler the panel queues its passes on.
func (p *Panel) Scheduler() *schedule.Scheduler {
	return p.sched
}

// Padding returns the space kept free around the layout.
func (p *Panel) Padding() Edges {
	return p.padding
}

// SetPadding changes the padding and requests a fit. Negative edges are
// clamped to zero.
func (p *Panel) SetPadding(e Edges) {
	e = Edges{Top: max(0, e.Top), Right: max(0, e.Right), Bottom: max(0, e.Bottom), Left: max(0, e.Left)}
	if p.padding == e {
		return
	}
	p.padding = e
	p.RequestFit()
}

// RequestFit implements Host.
func (p *Panel) RequestFit() {
	p.sched.RequestFit(p)
}

// RequestUpdate implements Host.
func (p *Panel) RequestUpdate() {
	p.sched.RequestUpdate(p)
}

// Flush runs every pass queued on the panel's scheduler.
func (p *Panel) Flush() {
	p.sched.Flush()
}

// Batch runs fn and flushes once it returns. Passes requested inside fn are
// coalesced.
func (p *Panel) Batch(fn func()) {
	p.sched.Batch(fn)
}

// Fit recomputes the panel's limits. When they changed, the parent panel is
// asked to refit. An update of this panel is always requested.
func (p *Panel) Fit() {
	lim := p.measure()
	changed := !p.fitted || lim != p.limits
	p.limits = lim
	p.fitted = true
	debug.Logger().Debug("panel: fit", "changed", changed, "minWidth", lim.MinWidth, "minHeight", lim.MinHeight)
	if changed && p.parent != nil {
		p.parent.RequestFit()
	}
	p.RequestUpdate()
}

// Update lays the layout out inside the panel's geometry minus its padding.
// Hidden and empty panels are skipped.
func (p *Panel) Update() {
	if p.hidden || p.rect.IsEmpty() {
		return
	}
	r := p.rect.Inset(p.padding)
	p.layout.Update(r.X, r.Y, r.Width, r.Height)
}

func (p *Panel) measure() Limits {
	return p.layout.Fit().Grow(p.padding).Normalize()
}

// SizeLimits implements Element. It returns the limits of the last fit,
// measuring the layout if the panel has never been fit.
func (p *Panel) SizeLimits() Limits {
	if !p.fitted {
		p.limits = p.measure()
		p.fitted = true
	}
	return p.limits
}

// SetGeometry implements Element. A changed geometry updates the layout
// immediately.
func (p *Panel) SetGeometry(r Rect) {
	if p.rect == r {
		return
	}
	p.rect = r
	p.Update()
}

// Rect returns the panel's geometry.
func (p *Panel) Rect() Rect {
	return p.rect
}

// Resize sets the geometry of a root panel to width x height at the origin.
func (p *Panel) Resize(width, height float64) {
	p.SetGeometry(NewRect(0, 0, width, height))
}

// IsHidden implements Element.
func (p *Panel) IsHidden() bool {
	return p.hidden
}

// SetHidden shows or hides the panel. The parent is asked to refit so the
// space is redistributed.
func (p *Panel) SetHidden(hidden bool) {
	if p.hidden == hidden {
		return
	}
	p.hidden = hidden
	if p.parent != nil {
		p.parent.RequestFit()
	}
	if !hidden {
		p.RequestFit()
	}
}

var _ layout.Element = (*Panel)(nil)
var _ layout.Host = (*Panel)(nil)
var _ schedule.Target = (*Panel)(nil)
