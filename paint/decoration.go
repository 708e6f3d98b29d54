package paint

import "strings"

// Decoration is a set of text decorations.
type Decoration uint8

const (
	// Bold renders glyphs with synthetic emboldening.
	Bold Decoration = 1 << iota
	// Italic skews glyphs by ItalicSkew instead of using an italic face.
	Italic
	// Underline draws a line below the baseline.
	Underline
	// Strikethrough draws a line through the middle of the x-height.
	Strikethrough
)

// ItalicSkew is the horizontal skew applied for Italic.
const ItalicSkew = 0.5

// Has reports whether all decorations in d2 are set.
func (d Decoration) Has(d2 Decoration) bool { return d&d2 == d2 }

// String returns the decorations joined by "|", or "None".
func (d Decoration) String() string {
	if d == 0 {
		return "None"
	}
	var parts []string
	for _, n := range []struct {
		d    Decoration
		name string
	}{{Bold, "Bold"}, {Italic, "Italic"}, {Underline, "Underline"}, {Strikethrough, "Strikethrough"}} {
		if d.Has(n.d) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// apply sets the paint flags and skew for d.
func (d Decoration) apply(p *Paint) {
	if d.Has(Bold) {
		p.Flags |= FlagFakeBold
	}
	if d.Has(Italic) {
		p.SkewX = ItalicSkew
	}
	if d.Has(Underline) {
		p.Flags |= FlagUnderline
	}
	if d.Has(Strikethrough) {
		p.Flags |= FlagStrikeThrough
	}
}
