package raster

import "image"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Draw into an existing frame buffer
//	cv := raster.NewCanvas(800, 600, raster.WithImage(frame))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	img       *image.RGBA
	tolerance float64
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		tolerance: 0.25,
	}
}

// WithImage makes the canvas draw into img instead of allocating a new
// buffer. The canvas size is taken from img's bounds.
func WithImage(img *image.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.img = img
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels.
// Non-positive values keep the default.
func WithTolerance(tol float64) CanvasOption {
	return func(o *canvasOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}
