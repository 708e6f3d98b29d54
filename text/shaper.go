package text

import (
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"
)

// Glyph is a shaped glyph positioned relative to the start of the run.
type Glyph struct {
	ID GlyphID
	// X, Y is the pen position plus the shaper's fine offset.
	X, Y float64
	// Advance is the horizontal pen advance after this glyph.
	Advance float64
	// Cluster is the rune index in the (NFC-normalized) input.
	Cluster int
}

// Shape converts s into left-to-right positioned glyphs at the given pixel
// size. The text is NFC-normalized first so that composed and decomposed
// input shape identically.
func (t *Typeface) Shape(s string, size float64) []Glyph {
	if s == "" || size <= 0 {
		return nil
	}
	runes := []rune(norm.NFC.String(s))

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(t.shapeFont),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := t.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	t.shapers.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			X:       x + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
			Cluster: g.TextIndex(),
		}
		x += adv
	}
	return glyphs
}

// Measure returns the advance width of s at the given size.
func (t *Typeface) Measure(s string, size float64) float64 {
	var w float64
	for _, g := range t.Shape(s, size) {
		w += g.Advance
	}
	return w
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
