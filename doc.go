// Package dock is a widget layout toolkit built on a box-constraint engine.
//
// Users import this single package for the public API: the box engine
// (Sizer, Calc, Adjust), box, split and dock layouts, widgets, and Panel,
// the host that drives the two-pass layout cycle. A fit pass computes size
// limits bottom-up; an update pass distributes space top-down and positions
// every element.
//
//	dl := dock.NewDockLayout()
//	panel, _ := dock.NewPanel(dl)
//	editor := dock.NewWidget()
//	_ = dl.AddWidget(editor)
//	_ = dl.AddWidget(dock.NewWidget(), dock.WithMode(dock.SplitRight), dock.WithRef(editor))
//	panel.Resize(800, 600)
//	panel.Flush()
package dock
