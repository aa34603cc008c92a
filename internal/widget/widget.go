// Package widget provides Widget, a concrete measured element that can be
// placed in any layout or dock area.
package widget

import (
	"github.com/google/uuid"

	"github.com/grindlemire/go-dock/internal/layout"
)

// Widget is a leaf element with an identity, a title, size limits and an
// alignment. It records the geometry it was last given.
type Widget struct {
	id     string
	title  string
	limits layout.Limits
	hidden bool
	hAlign layout.HAlign
	vAlign layout.VAlign

	rect layout.Rect
	host layout.Host
}

// Option configures a Widget.
type Option func(*Widget)

// WithID sets the widget ID. Empty IDs are ignored.
func WithID(id string) Option {
	return func(w *Widget) {
		if id != "" {
			w.id = id
		}
	}
}

// WithTitle sets the tab title.
func WithTitle(title string) Option {
	return func(w *Widget) {
		w.title = title
	}
}

// WithMinSize sets the minimum width and height.
func WithMinSize(width, height float64) Option {
	return func(w *Widget) {
		w.limits.MinWidth = width
		w.limits.MinHeight = height
	}
}

// WithMaxSize sets the maximum width and height.
func WithMaxSize(width, height float64) Option {
	return func(w *Widget) {
		w.limits.MaxWidth = width
		w.limits.MaxHeight = height
	}
}

// WithAlignment sets how the widget sits in a slot larger than its maximum.
func WithAlignment(h layout.HAlign, v layout.VAlign) Option {
	return func(w *Widget) {
		w.hAlign = h
		w.vAlign = v
	}
}

// WithHidden starts the widget hidden.
func WithHidden(hidden bool) Option {
	return func(w *Widget) {
		w.hidden = hidden
	}
}

// New creates a widget with unbounded limits and a random ID.
func New(opts ...Option) *Widget {
	w := &Widget{
		id:     uuid.NewString(),
		limits: layout.Unbounded(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.title == "" {
		w.title = w.id
	}
	return w
}

// ID returns the widget's identifier, used in layout snapshots.
func (w *Widget) ID() string {
	return w.id
}

// Title returns the widget's tab title.
func (w *Widget) Title() string {
	return w.title
}

// SetTitle changes the tab title.
func (w *Widget) SetTitle(title string) {
	w.title = title
}

// SetHost attaches the widget to the host that lays it out. Limit and
// visibility changes request a fit on the host.
func (w *Widget) SetHost(h layout.Host) {
	w.host = h
}

// SizeLimits implements layout.Element.
func (w *Widget) SizeLimits() layout.Limits {
	return w.limits
}

// SetLimits replaces the widget's size limits.
func (w *Widget) SetLimits(l layout.Limits) {
	if w.limits == l {
		return
	}
	w.limits = l
	w.requestFit()
}

// IsHidden implements layout.Element.
func (w *Widget) IsHidden() bool {
	return w.hidden
}

// SetHidden shows or hides the widget.
func (w *Widget) SetHidden(hidden bool) {
	if w.hidden == hidden {
		return
	}
	w.hidden = hidden
	w.requestFit()
}

// HorizontalAlignment implements layout.Aligned.
func (w *Widget) HorizontalAlignment() layout.HAlign {
	return w.hAlign
}

// VerticalAlignment implements layout.Aligned.
func (w *Widget) VerticalAlignment() layout.VAlign {
	return w.vAlign
}

// SetGeometry implements layout.Element.
func (w *Widget) SetGeometry(r layout.Rect) {
	w.rect = r
}

// Rect returns the geometry the widget was last given.
func (w *Widget) Rect() layout.Rect {
	return w.rect
}

func (w *Widget) requestFit() {
	if w.host != nil {
		w.host.RequestFit()
	}
}
