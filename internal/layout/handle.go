package layout

// Handle is the divider between two adjacent children of a split. Its
// Rect spans the spacing gap after the child it follows. The handle after
// the last visible child is kept but hidden.
type Handle struct {
	Rect        Rect
	Hidden      bool
	Orientation Orientation
}

// Position returns the handle's offset along its split's main axis.
func (h *Handle) Position() float64 {
	if h.Orientation == Horizontal {
		return h.Rect.X
	}
	return h.Rect.Y
}
