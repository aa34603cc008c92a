package layout

// testElement is a minimal Element used across the layout tests.
type testElement struct {
	limits Limits
	hidden bool
	hAlign HAlign
	vAlign VAlign

	rect Rect
	sets int
}

func newTestElement() *testElement {
	return &testElement{limits: Unbounded()}
}

func (e *testElement) SizeLimits() Limits          { return e.limits }
func (e *testElement) IsHidden() bool              { return e.hidden }
func (e *testElement) HorizontalAlignment() HAlign { return e.hAlign }
func (e *testElement) VerticalAlignment() VAlign   { return e.vAlign }

func (e *testElement) SetGeometry(r Rect) {
	e.rect = r
	e.sets++
}

// recordingHost counts the passes a layout requests.
type recordingHost struct {
	fits, updates int
}

func (h *recordingHost) RequestFit()    { h.fits++ }
func (h *recordingHost) RequestUpdate() { h.updates++ }

// hostedElement records the host a layout attaches to it.
type hostedElement struct {
	*testElement
	host Host
}

func newHostedElement() *hostedElement {
	return &hostedElement{testElement: newTestElement()}
}

func (e *hostedElement) SetHost(h Host) { e.host = h }
