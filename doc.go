// Package ui is a retained-mode widget toolkit for the GoGPU ecosystem.
//
// # Overview
//
// ui paints a tree of controls onto a canvas through a renderer-per-control
// dispatch, and resolves native platform services (file pickers, folder
// pickers, bookmarks) through an ordered chain of backends.
//
// # Architecture
//
// The module is organized into:
//   - geom: points, rectangles, matrices and vector paths
//   - text: typefaces, HarfBuzz shaping and glyph outlines
//   - paint: colors, brushes, strokes and the Canvas contract
//   - raster, recording: a CPU canvas and a command-recording canvas
//   - widget, theme: controls, their visual state and theme lookup
//   - render: renderer registry, paint context and the paint pass
//   - render/renderers: the built-in renderers for every widget kind
//   - storage: the composite platform storage provider and its backends
//   - marker: map marker visuals drawn with the same brushes
//
// # Quick Start
//
//	cv := raster.NewCanvas(400, 300)
//	root := widget.NewPanel(geom.XYWH(0, 0, 400, 300),
//		widget.NewSplitter(geom.XYWH(0, 140, 400, 20), widget.Horizontal),
//	)
//	if err := render.NewPainter(render.Default).Paint(cv, root, 1.0); err != nil {
//		log.Fatal(err)
//	}
//	_ = cv.SavePNG("out.png")
//
// # Coordinate System
//
// Controls are laid out in logical units. The paint context converts them to
// device units (physical pixels) with a scale function before anything is
// handed to a canvas; canvases only ever see device coordinates with the
// origin at the top-left and Y increasing down.
package ui

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
