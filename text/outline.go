package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ui/geom"
)

// glyphCacheSize bounds the outlines kept per typeface.
const glyphCacheSize = 1024

type glyphKey struct {
	id   GlyphID
	size fixed.Int26_6
}

type glyphOutline struct {
	path *geom.Path
	err  error
}

// Outline returns the contours of a glyph at the given pixel size as a path
// whose origin is the pen position on the baseline, Y pointing down.
// Glyphs without contours (spaces) yield an empty path and no error.
func (t *Typeface) Outline(id GlyphID, size float64) (*geom.Path, error) {
	p, err := t.outline(id, size)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// outline returns the shared cached path; callers must not modify it.
func (t *Typeface) outline(id GlyphID, size float64) (*geom.Path, error) {
	key := glyphKey{id: id, size: toFixed(size)}
	o := t.glyphs.GetOrCreate(key, func() glyphOutline {
		p, err := t.loadOutline(id, key.size)
		return glyphOutline{path: p, err: err}
	})
	return o.path, o.err
}

func (t *Typeface) loadOutline(id GlyphID, size fixed.Int26_6) (*geom.Path, error) {
	buf := t.bufs.Get().(*sfnt.Buffer)
	defer t.bufs.Put(buf)

	segs, err := t.outlines.LoadGlyph(buf, sfnt.GlyphIndex(id), size, nil)
	if err != nil {
		return nil, &FontError{Name: t.name, Err: err}
	}

	p := geom.NewPath()
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			a := pt(s.Args[0])
			p.MoveTo(a.X, a.Y)
		case sfnt.SegmentOpLineTo:
			a := pt(s.Args[0])
			p.LineTo(a.X, a.Y)
		case sfnt.SegmentOpQuadTo:
			c, a := pt(s.Args[0]), pt(s.Args[1])
			p.QuadTo(c.X, c.Y, a.X, a.Y)
		case sfnt.SegmentOpCubeTo:
			c1, c2, a := pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, a.X, a.Y)
		}
	}
	return p, nil
}

// RunPath returns the outlines of a shaped string as one path, with the
// baseline origin at (x, y) and m applied to each glyph around its pen
// position. Glyphs whose outlines cannot be loaded are skipped.
func (t *Typeface) RunPath(s string, size, x, y float64, m geom.Matrix) *geom.Path {
	out := geom.NewPath()
	for _, g := range t.Shape(s, size) {
		o, err := t.outline(g.ID, size)
		if err != nil || o.IsEmpty() {
			continue
		}
		placed := o.Transform(geom.Translate(x+g.X, y+g.Y).Multiply(m))
		for _, e := range placed.Elements() {
			appendElement(out, e)
		}
	}
	return out
}

func appendElement(p *geom.Path, e geom.Element) {
	switch e.Verb {
	case geom.VerbMoveTo:
		p.MoveTo(e.Pts[0].X, e.Pts[0].Y)
	case geom.VerbLineTo:
		p.LineTo(e.Pts[0].X, e.Pts[0].Y)
	case geom.VerbQuadTo:
		p.QuadTo(e.Pts[0].X, e.Pts[0].Y, e.Pts[1].X, e.Pts[1].Y)
	case geom.VerbCubicTo:
		p.CubicTo(e.Pts[0].X, e.Pts[0].Y, e.Pts[1].X, e.Pts[1].Y, e.Pts[2].X, e.Pts[2].Y)
	case geom.VerbClose:
		p.Close()
	}
}

func pt(p fixed.Point26_6) geom.Point {
	return geom.Pt(float64(p.X)/64, float64(p.Y)/64)
}
