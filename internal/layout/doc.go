// Package layout implements the box and split layouts and the geometry they
// share with the dock layout.
//
// Layouts follow a two-pass protocol. Fit walks the children bottom-up and
// returns the aggregate [Limits] of the layout without touching positions.
// Update takes a concrete rectangle, distributes the main-axis space with the
// box engine and assigns each child its rectangle.
//
// Children are [Element] values wrapped in an [Item], which caches the
// element's limits between passes and applies its alignment when the slot is
// larger than the element may grow.
package layout
