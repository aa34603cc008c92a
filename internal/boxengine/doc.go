// Package boxengine implements the one-dimensional constraint solver behind
// every box, split and dock layout.
//
// A layout describes each child along its main axis with a [Sizer]: a size
// hint, minimum and maximum bounds, and a stretch factor. [Calc] distributes a
// length budget over an ordered slice of sizers, and [Adjust] applies a handle
// drag by rewriting the size hints of the sizers around the handle.
//
// Sizers are stored by value. The owning layout keeps them index-aligned with
// its children, so a sizer is identified by its position and never shared.
package boxengine
