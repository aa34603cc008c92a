package dockarea

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-dock/internal/widget"
)

func tab(current int, ids ...string) *AreaConfig {
	return &AreaConfig{Type: TabArea, Widgets: ids, CurrentIndex: current}
}

func split(orientation string, sizes []float64, children ...*AreaConfig) *AreaConfig {
	return &AreaConfig{Type: SplitArea, Orientation: orientation, Children: children, Sizes: sizes}
}

func knownIDs(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestNormalizeConfig(t *testing.T) {
	type tc struct {
		in    *AreaConfig
		known func(string) bool
		want  *AreaConfig
	}

	tests := map[string]tc{
		"nil main": {
			in:   nil,
			want: nil,
		},
		"singleton split collapses to tab area": {
			in: split("horizontal", []float64{0.5, 0.5},
				tab(0, "a"),
				tab(0, "ghost"),
			),
			known: knownIDs("a"),
			want:  tab(0, "a"),
		},
		"duplicates keep first occurrence": {
			in: split("vertical", []float64{1, 1},
				tab(1, "a", "b"),
				tab(0, "b", "c"),
			),
			want: split("vertical", []float64{0.5, 0.5},
				tab(1, "a", "b"),
				tab(0, "c"),
			),
		},
		"current index out of range resets": {
			in:    tab(5, "a", "ghost", "b"),
			known: knownIDs("a", "b"),
			want:  tab(0, "a", "b"),
		},
		"negative current index resets": {
			in:   tab(-1, "a"),
			want: tab(0, "a"),
		},
		"empty areas dropped": {
			in: split("horizontal", []float64{2, 1, 1, 1},
				tab(0),
				tab(0, "a"),
				split("vertical", nil),
				tab(0, "b"),
			),
			want: split("horizontal", []float64{0.5, 0.5},
				tab(0, "a"),
				tab(0, "b"),
			),
		},
		"same orientation split is merged": {
			in: split("horizontal", []float64{0.5, 0.5},
				tab(0, "a"),
				split("horizontal", []float64{1, 3},
					tab(0, "b"),
					tab(0, "c"),
				),
			),
			want: split("horizontal", []float64{0.5, 0.125, 0.375},
				tab(0, "a"),
				tab(0, "b"),
				tab(0, "c"),
			),
		},
		"other orientation split is kept": {
			in: split("horizontal", []float64{3, 1},
				tab(0, "a"),
				split("vertical", []float64{1, 1},
					tab(0, "b"),
					tab(0, "c"),
				),
			),
			want: split("horizontal", []float64{0.75, 0.25},
				tab(0, "a"),
				split("vertical", []float64{0.5, 0.5},
					tab(0, "b"),
					tab(0, "c"),
				),
			),
		},
		"missing and negative sizes": {
			in: split("vertical", []float64{-1},
				tab(0, "a"),
				tab(0, "b"),
			),
			want: split("vertical", []float64{1, 0},
				tab(0, "a"),
				tab(0, "b"),
			),
		},
		"all zero sizes share equally": {
			in: split("vertical", []float64{0, 0},
				tab(0, "a"),
				tab(0, "b"),
			),
			want: split("vertical", []float64{0.5, 0.5},
				tab(0, "a"),
				tab(0, "b"),
			),
		},
		"unknown orientation is horizontal": {
			in: split("diagonal", []float64{1, 1},
				tab(0, "a"),
				tab(0, "b"),
			),
			want: split("horizontal", []float64{0.5, 0.5},
				tab(0, "a"),
				tab(0, "b"),
			),
		},
		"unknown area type dropped": {
			in:   &AreaConfig{Type: "floating", Widgets: []string{"a"}},
			want: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NormalizeConfig(LayoutConfig{Main: tt.in}, tt.known)
			assert.Equal(t, tt.want, got.Main)
		})
	}
}

func TestDockLayout_RestoreSingletonSplit(t *testing.T) {
	a := widget.New(widget.WithID("a"))
	resolve := func(id string) (Widget, bool) {
		if id == "a" {
			return a, true
		}
		return nil, false
	}

	d := New()
	d.RestoreLayout(LayoutConfig{Main: split("horizontal", []float64{0.5, 0.5},
		tab(0, "a"),
		tab(0, "gone"),
	)}, resolve)

	assert.Empty(t, d.Handles(), "no split node remains")
	require.Len(t, d.TabBars(), 1)
	assert.Equal(t, tab(0, "a"), d.SaveLayout().Main)
}

func TestDockLayout_RestoreAndLayout(t *testing.T) {
	ws := map[string]*widget.Widget{}
	for _, id := range []string{"a", "b", "c"} {
		ws[id] = widget.New(widget.WithID(id))
	}
	resolve := func(id string) (Widget, bool) {
		w, ok := ws[id]
		return w, ok
	}

	host := &recordingHost{}
	d := New()
	d.SetHost(host)
	d.RestoreLayout(LayoutConfig{Main: split("horizontal", []float64{1, 3},
		tab(0, "a"),
		split("vertical", []float64{0.5, 0.5},
			tab(0, "b"),
			tab(0, "c"),
		),
	)}, resolve)
	assert.Equal(t, 1, host.fits)

	layoutOnce(d, 804, 504)

	assert.InDelta(t, 200, ws["a"].Rect().Width, 1e-9)
	assert.InDelta(t, 600, ws["b"].Rect().Width, 1e-9)
	assert.InDelta(t, 204, ws["b"].Rect().X, 1e-9)
	assert.InDelta(t, 226, ws["b"].Rect().Height, 1e-9)
	assert.InDelta(t, 278, ws["c"].Rect().Y, 1e-9)

	saved := d.SaveLayout()
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, saved.Main.Sizes, 1e-9)
	assert.Equal(t, []string{"a", "b", "c"}, saved.WidgetIDs())

	// Restoring over an existing tree replaces it.
	d.RestoreLayout(LayoutConfig{Main: tab(1, "c", "a")}, resolve)
	assert.Equal(t, []string{"c", "a"}, widgetIDs(d.Widgets()))
	assert.Equal(t, 1, d.TabBars()[0].CurrentIndex())

	fits := host.fits
	ws["b"].SetHidden(true)
	assert.Equal(t, fits, host.fits, "widgets dropped by a restore are detached")
	ws["a"].SetHidden(true)
	assert.Equal(t, fits+1, host.fits, "restored widgets are attached")

	d.RestoreLayout(LayoutConfig{}, resolve)
	assert.True(t, d.IsEmpty())
}

func TestLayoutConfig_Codecs(t *testing.T) {
	cfg := LayoutConfig{Main: split("vertical", []float64{0.25, 0.75},
		tab(1, "a", "b"),
		tab(0, "c"),
	)}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"main":{"type":"split-area","orientation":"vertical","sizes":[0.25,0.75],"children":[
		{"type":"tab-area","widgets":["a","b"],"currentIndex":1},
		{"type":"tab-area","widgets":["c"]}]}}`, string(data))

	var fromYAML LayoutConfig
	err = yaml.Unmarshal([]byte(`
main:
  type: split-area
  orientation: vertical
  sizes: [0.25, 0.75]
  children:
    - type: tab-area
      widgets: [a, b]
      currentIndex: 1
    - type: tab-area
      widgets: [c]
`), &fromYAML)
	require.NoError(t, err)
	assert.Equal(t, cfg, fromYAML)
}
