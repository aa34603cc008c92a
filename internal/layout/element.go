package layout

// Element is anything a layout can position. The layout engine works
// entirely with this interface; widgets, tab bars and nested panels all
// implement it.
type Element interface {
	// SizeLimits returns the element's current min/max size.
	SizeLimits() Limits

	// SetGeometry is called by a layout to store the element's rectangle.
	SetGeometry(Rect)

	// IsHidden reports whether the element takes part in layout.
	IsHidden() bool
}

// Aligned is implemented by elements that want to be positioned inside a
// slot larger than their maximum size. Elements without it are centered
// horizontally and placed at the top.
type Aligned interface {
	HorizontalAlignment() HAlign
	VerticalAlignment() VAlign
}

// Hosted is implemented by elements that request passes on their own, such
// as a widget whose limits change. A layout gives its children its host
// while they are attached.
type Hosted interface {
	SetHost(h Host)
}

// AttachHost sets the host of el when it implements Hosted. A nil host
// detaches it.
func AttachHost(el Element, h Host) {
	if hd, ok := el.(Hosted); ok {
		hd.SetHost(h)
	}
}

// Host owns a layout and runs its passes. Layouts call it after a
// structural change; the host decides when the pass actually runs.
type Host interface {
	RequestFit()
	RequestUpdate()
}
