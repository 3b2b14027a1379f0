// Package layout implements the box-layout solver behind flexui windows.
//
// Sizes are expressed as a [Scale]: pixels, weights (a share of the space left
// after fixed siblings), percentages of the parent, or auto. [Distribute]
// splits one axis between siblings, [ApplyPadding] resolves an element's
// padding inside its slot, and [Flexible] and [Absolute] combine the two to
// place a list of children inside a container rectangle.
// Types are re-exported through the root flexui package for public consumption.
package layout
