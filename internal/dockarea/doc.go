// Package dockarea implements DockLayout, a tree of split areas and tab
// areas. Split areas divide space among their children with draggable
// handles; tab areas show the current widget of a tab bar. Widgets can be
// added relative to one another, removed, moved between areas, and the whole
// arrangement can be saved to and restored from a LayoutConfig snapshot.
package dockarea
