// Package recording provides a paint.Canvas that records drawing calls as
// typed commands instead of rasterizing them.
//
// Recordings serve two purposes: inspection (tests assert on the exact
// primitives and paint settings a renderer produced) and replay (a recording
// can be played back onto any other canvas, e.g. a raster canvas).
//
// Design follows Cairo's approach of typed command structs for
// inspectability rather than a binary display list.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	brush.FillRect(rec, 0, 0, 100, 20)
//	for _, cmd := range rec.Commands() {
//		fmt.Println(cmd.Type())
//	}
//	rec.Playback(rasterCanvas)
//
// The Recorder is not safe for concurrent use.
package recording
