// Package geom provides the 2D geometry shared by widgets, brushes and
// canvases: points, axis-aligned rectangles, affine matrices and vector
// paths.
//
// All types are plain values except Path, which is an append-only builder.
// Coordinates follow the screen convention: origin at the top-left, X to the
// right, Y down.
package geom
