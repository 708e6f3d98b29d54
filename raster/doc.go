// Package raster provides a CPU canvas that draws into an *image.RGBA.
//
// Canvas implements paint.Canvas. Geometry is flattened to polylines,
// strokes are expanded into polygons (caps, joins and dash patterns
// included) and coverage is computed with golang.org/x/image/vector before
// being composited through the current rectangular clip.
//
// Usage:
//
//	cv := raster.NewCanvas(320, 200)
//	paint.Solid(paint.Hex("#1E88E5")).FillRect(cv, 10, 10, 100, 40)
//	if err := cv.SavePNG("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// A Canvas is not safe for concurrent use.
package raster
