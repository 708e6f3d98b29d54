// Package text loads typefaces and turns strings into positioned glyph
// outlines.
//
// Shaping (kerning, ligatures, complex scripts) is done with
// go-text/typesetting's HarfBuzz port; glyph outlines come from
// golang.org/x/image/font/sfnt. Both parse the same font bytes, so glyph IDs
// produced by the shaper index directly into the outline table.
//
// A Typeface is safe for concurrent use.
package text
