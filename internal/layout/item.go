package layout

// Item wraps an Element for a layout. It caches the element's limits from
// the last Fit and remembers the last rectangle it applied.
type Item struct {
	element Element
	limits  Limits
	rect    Rect
	placed  bool
}

// NewItem creates an item for the element with unbounded limits.
func NewItem(el Element) *Item {
	return &Item{element: el, limits: Unbounded()}
}

// Element returns the wrapped element.
func (it *Item) Element() Element {
	return it.element
}

// IsHidden reports whether the wrapped element is hidden.
func (it *Item) IsHidden() bool {
	return it.element.IsHidden()
}

// Limits returns the limits cached by the last Fit.
func (it *Item) Limits() Limits {
	return it.limits
}

// Rect returns the rectangle last applied to the element.
func (it *Item) Rect() Rect {
	return it.rect
}

// Fit refreshes the cached limits from the element.
func (it *Item) Fit() {
	it.limits = it.element.SizeLimits().Normalize()
}

// Update positions the element in the given slot. The slot is clamped to the
// element's limits and any space left over is distributed according to the
// element's alignment. SetGeometry is only called when the rectangle changed.
func (it *Item) Update(left, top, width, height float64) {
	w := max(it.limits.MinWidth, min(width, it.limits.MaxWidth))
	h := max(it.limits.MinHeight, min(height, it.limits.MaxHeight))

	hAlign, vAlign := HAlignCenter, VAlignTop
	if a, ok := it.element.(Aligned); ok {
		hAlign = a.HorizontalAlignment()
		vAlign = a.VerticalAlignment()
	}

	if w < width {
		switch hAlign {
		case HAlignCenter:
			left += (width - w) / 2
		case HAlignRight:
			left += width - w
		}
	}
	if h < height {
		switch vAlign {
		case VAlignCenter:
			top += (height - h) / 2
		case VAlignBottom:
			top += height - h
		}
	}

	r := NewRect(left, top, w, h)
	if it.placed && r == it.rect {
		return
	}
	it.rect = r
	it.placed = true
	it.element.SetGeometry(r)
}
