package widget

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/go-dock/internal/layout"
)

type countingHost struct {
	fits int
}

func (h *countingHost) RequestFit()    { h.fits++ }
func (h *countingHost) RequestUpdate() {}

func TestNew_Defaults(t *testing.T) {
	w := New()

	_, err := uuid.Parse(w.ID())
	assert.NoError(t, err, "default ID should be a UUID")
	assert.Equal(t, w.ID(), w.Title())
	assert.Equal(t, layout.Unbounded(), w.SizeLimits())
	assert.False(t, w.IsHidden())
	assert.NotEqual(t, w.ID(), New().ID())
}

func TestNew_Options(t *testing.T) {
	type tc struct {
		opts  []Option
		check func(t *testing.T, w *Widget)
	}

	tests := map[string]tc{
		"id and title": {
			opts: []Option{WithID("editor"), WithTitle("Editor")},
			check: func(t *testing.T, w *Widget) {
				assert.Equal(t, "editor", w.ID())
				assert.Equal(t, "Editor", w.Title())
			},
		},
		"empty id keeps generated": {
			opts: []Option{WithID("")},
			check: func(t *testing.T, w *Widget) {
				assert.NotEmpty(t, w.ID())
			},
		},
		"limits": {
			opts: []Option{WithMinSize(10, 20), WithMaxSize(100, 200)},
			check: func(t *testing.T, w *Widget) {
				assert.Equal(t, layout.Limits{MinWidth: 10, MinHeight: 20, MaxWidth: 100, MaxHeight: 200}, w.SizeLimits())
			},
		},
		"alignment": {
			opts: []Option{WithAlignment(layout.HAlignRight, layout.VAlignBottom)},
			check: func(t *testing.T, w *Widget) {
				assert.Equal(t, layout.HAlignRight, w.HorizontalAlignment())
				assert.Equal(t, layout.VAlignBottom, w.VerticalAlignment())
			},
		},
		"hidden": {
			opts: []Option{WithHidden(true)},
			check: func(t *testing.T, w *Widget) {
				assert.True(t, w.IsHidden())
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.check(t, New(tt.opts...))
		})
	}
}

func TestWidget_ChangesRequestFit(t *testing.T) {
	host := &countingHost{}
	w := New()
	w.SetHost(host)

	w.SetHidden(true)
	w.SetHidden(true)
	w.SetLimits(layout.Limits{MinWidth: 5})
	w.SetLimits(layout.Limits{MinWidth: 5})

	assert.Equal(t, 2, host.fits)
}

func TestWidget_InBoxLayout(t *testing.T) {
	a := New(WithMaxSize(50, 50), WithAlignment(layout.HAlignLeft, layout.VAlignCenter))
	b := New()
	box := layout.NewBoxLayout(layout.WithDirection(layout.LeftToRight), layout.WithBoxSpacing(0))
	box.Add(a)
	box.Add(b)
	box.SetStretch(a, 1)
	box.SetStretch(b, 1)

	box.Fit()
	box.Update(0, 0, 200, 100)

	assert.Equal(t, layout.NewRect(0, 25, 50, 50), a.Rect())
	assert.Equal(t, layout.NewRect(50, 0, 150, 100), b.Rect())
}
