package dockarea

import (
	"testing"

	"github.com/grindlemire/go-dock/internal/widget"
)

func TestTabBar_Insert(t *testing.T) {
	type tc struct {
		start       []string
		current     int
		insert      string
		index       int
		wantOrder   []string
		wantCurrent int
	}

	tests := map[string]tc{
		"first tab becomes current": {
			insert:      "a",
			wantOrder:   []string{"a"},
			wantCurrent: 0,
		},
		"insert before current shifts it": {
			start:       []string{"a", "b"},
			current:     1,
			insert:      "c",
			index:       0,
			wantOrder:   []string{"c", "a", "b"},
			wantCurrent: 2,
		},
		"insert after current keeps it": {
			start:       []string{"a", "b"},
			current:     0,
			insert:      "c",
			index:       99,
			wantOrder:   []string{"a", "b", "c"},
			wantCurrent: 0,
		},
		"move forward": {
			start:       []string{"a", "b", "c"},
			current:     0,
			insert:      "a",
			index:       2,
			wantOrder:   []string{"b", "a", "c"},
			wantCurrent: 1,
		},
		"move to end": {
			start:       []string{"a", "b", "c"},
			current:     1,
			insert:      "a",
			index:       3,
			wantOrder:   []string{"b", "c", "a"},
			wantCurrent: 0,
		},
		"move backward": {
			start:       []string{"a", "b", "c"},
			current:     0,
			insert:      "c",
			index:       -4,
			wantOrder:   []string{"c", "a", "b"},
			wantCurrent: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			byID := map[string]Widget{}
			bar := newTabBar(20)
			for _, id := range tt.start {
				w := widget.New(widget.WithID(id))
				byID[id] = w
				bar.insert(bar.Len(), w)
			}
			bar.setCurrent(tt.current)

			w, ok := byID[tt.insert]
			if !ok {
				w = widget.New(widget.WithID(tt.insert))
			}
			bar.insert(tt.index, w)

			if got := widgetIDs(bar.Widgets()); !equalStrings(got, tt.wantOrder) {
				t.Errorf("order = %v, want %v", got, tt.wantOrder)
			}
			if bar.CurrentIndex() != tt.wantCurrent {
				t.Errorf("CurrentIndex() = %d, want %d", bar.CurrentIndex(), tt.wantCurrent)
			}
		})
	}
}

func TestTabBar_Remove(t *testing.T) {
	type tc struct {
		current     int
		remove      int
		wantCurrent int
	}

	tests := map[string]tc{
		"before current":                {current: 2, remove: 0, wantCurrent: 1},
		"after current":                 {current: 0, remove: 2, wantCurrent: 0},
		"current selects next":          {current: 1, remove: 1, wantCurrent: 1},
		"last current selects previous": {current: 2, remove: 2, wantCurrent: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			bar := newTabBar(20)
			var ws []Widget
			for _, id := range []string{"a", "b", "c"} {
				w := widget.New(widget.WithID(id))
				ws = append(ws, w)
				bar.insert(bar.Len(), w)
			}
			bar.setCurrent(tt.current)

			bar.remove(ws[tt.remove])

			if bar.Len() != 2 {
				t.Errorf("Len() = %d, want 2", bar.Len())
			}
			if bar.CurrentIndex() != tt.wantCurrent {
				t.Errorf("CurrentIndex() = %d, want %d", bar.CurrentIndex(), tt.wantCurrent)
			}
		})
	}
}

func TestTabBar_RemoveLast(t *testing.T) {
	bar := newTabBar(20)
	w := widget.New()
	bar.insert(0, w)
	bar.remove(widget.New())
	bar.remove(w)

	if bar.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", bar.CurrentIndex())
	}
	if bar.Current() != nil {
		t.Errorf("Current() = %v, want nil", bar.Current())
	}
}

func TestTabBar_SizeLimits(t *testing.T) {
	bar := newTabBar(-5)
	lim := bar.SizeLimits()
	if lim.MinHeight != 0 || lim.MaxHeight != 0 {
		t.Errorf("height limits = [%v, %v], want [0, 0]", lim.MinHeight, lim.MaxHeight)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
