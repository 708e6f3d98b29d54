// Package paint defines how things are painted: colors, brushes, stroke
// styles and the Canvas contract that every drawing target satisfies.
//
// A Brush turns a geometric primitive or a text run into canvas calls. Each
// call acquires a Paint description from a pool, configures it, hands it to
// the canvas and releases it before returning, so no Paint outlives the
// call that created it.
//
// Example:
//
//	highlight := paint.Solid(paint.Hex("#3D8BFD"))
//	highlight.FillRect(cv, 0, 0, 100, 20)
//
//	p := geom.NewPath()
//	p.MoveTo(0, 10)
//	p.LineTo(100, 10)
//	highlight.Stroke(cv, p, 2, paint.StrokeDotted, paint.LineCapRound, paint.LineJoinRound)
package paint
