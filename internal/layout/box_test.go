package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBoxWith(opts []BoxOption, els ...*testElement) *BoxLayout {
	b := NewBoxLayout(opts...)
	for _, el := range els {
		b.Add(el)
	}
	return b
}

func TestBoxLayout_EqualSplit(t *testing.T) {
	a, b, c := newTestElement(), newTestElement(), newTestElement()
	box := newBoxWith([]BoxOption{WithDirection(LeftToRight), WithBoxSpacing(10)}, a, b, c)

	box.Fit()
	box.Update(0, 0, 320, 50)

	assert.Equal(t, NewRect(0, 0, 100, 50), a.rect)
	assert.Equal(t, NewRect(110, 0, 100, 50), b.rect)
	assert.Equal(t, NewRect(220, 0, 100, 50), c.rect)
}

func TestBoxLayout_Alignment(t *testing.T) {
	type tc struct {
		alignment Alignment
		wantA     Rect
		wantB     Rect
	}

	tests := map[string]tc{
		"start": {
			alignment: AlignStart,
			wantA:     NewRect(0, 0, 50, 10),
			wantB:     NewRect(50, 0, 50, 10),
		},
		"center": {
			alignment: AlignCenter,
			wantA:     NewRect(50, 0, 50, 10),
			wantB:     NewRect(100, 0, 50, 10),
		},
		"end": {
			alignment: AlignEnd,
			wantA:     NewRect(100, 0, 50, 10),
			wantB:     NewRect(150, 0, 50, 10),
		},
		"justify": {
			alignment: AlignJustify,
			wantA:     NewRect(25, 0, 50, 10),
			wantB:     NewRect(125, 0, 50, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b := newTestElement(), newTestElement()
			a.limits.MaxWidth = 50
			b.limits.MaxWidth = 50
			box := newBoxWith([]BoxOption{
				WithDirection(LeftToRight),
				WithBoxSpacing(0),
				WithBoxAlignment(tt.alignment),
			}, a, b)

			box.Fit()
			box.Update(0, 0, 200, 10)

			assert.Equal(t, tt.wantA, a.rect)
			assert.Equal(t, tt.wantB, b.rect)
		})
	}
}

func TestBoxLayout_ReverseDirections(t *testing.T) {
	type tc struct {
		direction Direction
		wantA     Rect
		wantB     Rect
	}

	tests := map[string]tc{
		"right to left": {
			direction: RightToLeft,
			wantA:     NewRect(70, 0, 30, 100),
			wantB:     NewRect(0, 0, 70, 100),
		},
		"bottom to top": {
			direction: BottomToTop,
			wantA:     NewRect(0, 70, 100, 30),
			wantB:     NewRect(0, 0, 100, 70),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b := newTestElement(), newTestElement()
			box := newBoxWith([]BoxOption{WithDirection(tt.direction), WithBoxSpacing(0)}, a, b)
			box.SetSizeBasis(a, 30)
			box.SetSizeBasis(b, 70)

			box.Fit()
			box.Update(0, 0, 100, 100)

			assert.Equal(t, tt.wantA, a.rect)
			assert.Equal(t, tt.wantB, b.rect)
		})
	}
}

func TestBoxLayout_StretchWeightedGrowth(t *testing.T) {
	a, b := newTestElement(), newTestElement()
	box := newBoxWith([]BoxOption{WithDirection(LeftToRight), WithBoxSpacing(0)}, a, b)
	box.SetSizeBasis(a, 50)
	box.SetSizeBasis(b, 50)
	box.SetStretch(a, 1)
	box.SetStretch(b, 3)

	box.Fit()
	box.Update(0, 0, 300, 20)

	assert.Equal(t, 100.0, a.rect.Width)
	assert.Equal(t, 200.0, b.rect.Width)
	assert.Equal(t, 3, box.Stretch(b))
	assert.Equal(t, 50.0, box.SizeBasis(a))
}

func TestBoxLayout_Fit(t *testing.T) {
	a, b := newTestElement(), newTestElement()
	a.limits = Limits{MinWidth: 30, MinHeight: 10, MaxWidth: 100, MaxHeight: math.Inf(1)}
	b.limits = Limits{MinWidth: 40, MinHeight: 20, MaxWidth: 80, MaxHeight: math.Inf(1)}
	box := newBoxWith([]BoxOption{WithDirection(TopToBottom), WithBoxSpacing(5)}, a, b)

	got := box.Fit()

	assert.Equal(t, 35.0, got.MinHeight)
	assert.Equal(t, 40.0, got.MinWidth)
	assert.Equal(t, 80.0, got.MaxWidth)
	assert.True(t, math.IsInf(got.MaxHeight, 1))
}

func TestBoxLayout_HiddenChildSkipped(t *testing.T) {
	a, hidden, c := newTestElement(), newTestElement(), newTestElement()
	hidden.hidden = true
	box := newBoxWith([]BoxOption{WithDirection(LeftToRight), WithBoxSpacing(10)}, a, hidden, c)

	box.Fit()
	box.Update(0, 0, 210, 10)

	assert.Equal(t, NewRect(0, 0, 100, 10), a.rect)
	assert.Equal(t, NewRect(110, 0, 100, 10), c.rect)
	assert.Equal(t, 0, hidden.sets)
}

func TestBoxLayout_StructuralEdits(t *testing.T) {
	a, b, c := newTestElement(), newTestElement(), newTestElement()
	host := &recordingHost{}
	box := NewBoxLayout()
	box.SetHost(host)

	box.Insert(99, a)
	box.Insert(-5, b)
	box.Insert(1, c)
	assert.Equal(t, []Element{b, c, a}, box.Elements())
	assert.Equal(t, 3, host.fits)

	box.Move(0, 99)
	assert.Equal(t, []Element{c, a, b}, box.Elements())
	assert.Equal(t, 1, host.updates)

	// Inserting an element already present moves it.
	box.Insert(0, b)
	assert.Equal(t, []Element{b, c, a}, box.Elements())
	assert.Equal(t, 3, box.Len())

	box.Remove(newTestElement())
	assert.Equal(t, 3, box.Len())

	removed := box.RemoveAt(99)
	assert.Equal(t, Element(a), removed)
	assert.Equal(t, []Element{b, c}, box.Elements())
	assert.Equal(t, 4, host.fits)

	box.Remove(b)
	assert.Equal(t, []Element{c}, box.Elements())
}

func TestBoxLayout_EmptyRemoveAt(t *testing.T) {
	box := NewBoxLayout()
	if got := box.RemoveAt(0); got != nil {
		t.Errorf("RemoveAt on empty layout = %v, want nil", got)
	}
}

func TestBoxLayout_SettersRequestPasses(t *testing.T) {
	host := &recordingHost{}
	box := NewBoxLayout()
	box.SetHost(host)

	box.SetAlignment(AlignCenter)
	box.SetAlignment(AlignCenter)
	box.SetSpacing(8)
	box.SetDirection(LeftToRight)

	assert.Equal(t, 1, host.updates)
	assert.Equal(t, 2, host.fits)
	assert.Equal(t, AlignCenter, box.Alignment())
	assert.Equal(t, 8.0, box.Spacing())
	assert.Equal(t, LeftToRight, box.Direction())
}
