package layout

// Orientation is the main axis of a split or dock area.
type Orientation uint8

const (
	Horizontal Orientation = iota // Children laid out left-to-right
	Vertical                      // Children laid out top-to-bottom
)

// String returns the snapshot spelling of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation parses the snapshot spelling of an orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	}
	return Horizontal, false
}

// Direction is the placement order of a box layout.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// Orientation returns the axis the direction runs along.
func (d Direction) Orientation() Orientation {
	if d == TopToBottom || d == BottomToTop {
		return Vertical
	}
	return Horizontal
}

// reversed reports whether children are placed from the far edge.
func (d Direction) reversed() bool {
	return d == RightToLeft || d == BottomToTop
}

// Alignment positions children along the main axis when they cannot fill it.
type Alignment uint8

const (
	AlignStart   Alignment = iota // Pack at start
	AlignCenter                   // Center children
	AlignEnd                      // Pack at end
	AlignJustify                  // Spread leftover space over the children
)

// HAlign positions an element inside a slot wider than its maximum width.
type HAlign uint8

const (
	HAlignCenter HAlign = iota
	HAlignLeft
	HAlignRight
)

// VAlign positions an element inside a slot taller than its maximum height.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)
