package dockarea

import (
	"math"

	"github.com/grindlemire/go-dock/internal/boxengine"
	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/layout"
)

// AreaType discriminates the two kinds of area in a snapshot.
type AreaType string

const (
	TabArea   AreaType = "tab-area"
	SplitArea AreaType = "split-area"
)

// LayoutConfig is a snapshot of a dock layout. A nil Main is an empty layout.
type LayoutConfig struct {
	Main *AreaConfig `json:"main" yaml:"main"`
}

// AreaConfig is one area of a snapshot. Tab areas use Widgets and
// CurrentIndex; split areas use Orientation, Children and Sizes. Sizes are
// relative and sum to one in a normalized snapshot.
type AreaConfig struct {
	Type         AreaType      `json:"type" yaml:"type"`
	Widgets      []string      `json:"widgets,omitempty" yaml:"widgets,omitempty"`
	CurrentIndex int           `json:"currentIndex,omitempty" yaml:"currentIndex,omitempty"`
	Orientation  string        `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Children     []*AreaConfig `json:"children,omitempty" yaml:"children,omitempty"`
	Sizes        []float64     `json:"sizes,omitempty" yaml:"sizes,omitempty"`
}

// WidgetIDs returns every widget ID in the snapshot in tree order.
func (c LayoutConfig) WidgetIDs() []string {
	var ids []string
	var walk func(a *AreaConfig)
	walk = func(a *AreaConfig) {
		if a == nil {
			return
		}
		ids = append(ids, a.Widgets...)
		for _, child := range a.Children {
			walk(child)
		}
	}
	walk(c.Main)
	return ids
}

// Resolver maps a snapshot widget ID to a widget.
type Resolver func(id string) (Widget, bool)

// NormalizeConfig returns a cleaned copy of cfg. Unknown widget IDs and all
// but the first occurrence of a duplicated ID are dropped, areas left empty
// are dropped, splits with a single child are replaced by that child, splits
// nested in a split of the same orientation are merged into it, sizes are
// renormalized and out-of-range current indices reset to 0. A nil known
// accepts every ID.
func NormalizeConfig(cfg LayoutConfig, known func(id string) bool) LayoutConfig {
	if known == nil {
		known = func(string) bool { return true }
	}
	seen := make(map[string]bool)
	return LayoutConfig{Main: normalizeArea(cfg.Main, known, seen)}
}

func normalizeArea(a *AreaConfig, known func(string) bool, seen map[string]bool) *AreaConfig {
	if a == nil {
		return nil
	}
	switch a.Type {
	case TabArea:
		return normalizeTabArea(a, known, seen)
	case SplitArea:
		return normalizeSplitArea(a, known, seen)
	}
	debug.Logger().Debug("dock: dropping area of unknown type", "type", string(a.Type))
	return nil
}

func normalizeTabArea(a *AreaConfig, known func(string) bool, seen map[string]bool) *AreaConfig {
	var ids []string
	for _, id := range a.Widgets {
		if seen[id] || !known(id) {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}
	current := a.CurrentIndex
	if current < 0 || current >= len(ids) {
		current = 0
	}
	return &AreaConfig{Type: TabArea, Widgets: ids, CurrentIndex: current}
}

func normalizeSplitArea(a *AreaConfig, known func(string) bool, seen map[string]bool) *AreaConfig {
	o, _ := layout.ParseOrientation(a.Orientation)
	var children []*AreaConfig
	var sizes []float64
	for i, c := range a.Children {
		n := normalizeArea(c, known, seen)
		if n == nil {
			continue
		}
		var size float64
		if i < len(a.Sizes) && !math.IsNaN(a.Sizes[i]) && !math.IsInf(a.Sizes[i], 0) {
			size = math.Abs(a.Sizes[i])
		}
		if n.Type == SplitArea && n.Orientation == o.String() {
			for j, gc := range n.Children {
				children = append(children, gc)
				sizes = append(sizes, n.Sizes[j]*size)
			}
			continue
		}
		children = append(children, n)
		sizes = append(sizes, size)
	}
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}
	return &AreaConfig{
		Type:        SplitArea,
		Orientation: o.String(),
		Children:    children,
		Sizes:       boxengine.Normalize(sizes),
	}
}

// SaveLayout returns a snapshot of the current arrangement.
func (d *DockLayout) SaveLayout() LayoutConfig {
	if d.root == nil {
		return LayoutConfig{}
	}
	d.root.holdAllSizes()
	return LayoutConfig{Main: d.root.config()}
}

// RestoreLayout replaces the arrangement with the one in cfg. The snapshot is
// normalized first, so IDs that resolve to no widget are dropped silently.
func (d *DockLayout) RestoreLayout(cfg LayoutConfig, resolve Resolver) {
	norm := NormalizeConfig(cfg, func(id string) bool {
		_, ok := resolve(id)
		return ok
	})

	for _, w := range d.Widgets() {
		layout.AttachHost(w, nil)
	}
	d.root = nil
	d.items = make(itemMap)
	if norm.Main != nil {
		d.root = d.realize(norm.Main, resolve)
	}
	for _, w := range d.Widgets() {
		layout.AttachHost(w, d.host)
	}
	debug.Logger().Debug("dock: restored layout", "widgets", len(norm.WidgetIDs()))
	d.requestFit()
}

// realize builds the node tree for a normalized area.
func (d *DockLayout) realize(a *AreaConfig, resolve Resolver) areaNode {
	if a.Type == TabArea {
		bar := newTabBar(d.tabBarHeight)
		for _, id := range a.Widgets {
			w, _ := resolve(id)
			bar.insert(bar.Len(), w)
		}
		bar.setCurrent(a.CurrentIndex)
		return newTabNode(bar)
	}

	o, _ := layout.ParseOrientation(a.Orientation)
	s := newSplitNode(o)
	for i, c := range a.Children {
		s.insertChild(len(s.children), d.realize(c, resolve), boxengine.NewSizer(a.Sizes[i]))
	}
	s.syncHandles()
	s.normalizeSizes()
	return s
}
