package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ui/internal/cache"
)

// GlyphID is a glyph index within a typeface.
type GlyphID uint16

// Metrics holds vertical font metrics at a given size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the em box.
	Ascent float64
	// Descent is the distance from the baseline to the bottom, positive down.
	Descent float64
	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float64
}

// Typeface is a parsed font ready for shaping and outline extraction.
type Typeface struct {
	name string

	// outlines reads glyph contours; sfnt.Font is safe for concurrent use
	// as long as every caller brings its own sfnt.Buffer.
	outlines *sfnt.Font

	// shapeFont is read-only and safe for concurrent use; faces derived
	// from it are not, so one is created per Shape call.
	shapeFont *gotext.Font

	// shapers pools HarfbuzzShaper instances, which hold mutable buffers.
	shapers sync.Pool
	bufs    sync.Pool

	glyphs *cache.Cache[glyphKey, glyphOutline]
}

// Parse parses TrueType or OpenType font data.
func Parse(data []byte) (*Typeface, error) {
	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, &FontError{Err: fmt.Errorf("%w: %w", ErrUnsupportedFont, err)}
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Err: fmt.Errorf("%w: %w", ErrUnsupportedFont, err)}
	}

	tf := &Typeface{
		outlines:  outlines,
		shapeFont: face.Font,
		glyphs:    cache.New[glyphKey, glyphOutline](glyphCacheSize),
	}
	tf.shapers.New = func() any { return &shaping.HarfbuzzShaper{} }
	tf.bufs.New = func() any { return new(sfnt.Buffer) }
	if name, err := outlines.Name(nil, sfnt.NameIDFamily); err == nil {
		tf.name = name
	}
	return tf, nil
}

// Load reads and parses a font file.
func Load(path string) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontError{Name: filepath.Base(path), Err: err}
	}
	tf, err := Parse(data)
	if err != nil {
		return nil, &FontError{Name: filepath.Base(path), Err: err}
	}
	return tf, nil
}

var (
	defaultOnce sync.Once
	defaultFace *Typeface
)

// Default returns the built-in Go Regular typeface.
func Default() *Typeface {
	defaultOnce.Do(func() {
		tf, err := Parse(goregular.TTF)
		if err != nil {
			panic("text: embedded Go Regular font failed to parse: " + err.Error())
		}
		defaultFace = tf
	})
	return defaultFace
}

// Name returns the font family name, or "" if the font does not declare one.
func (t *Typeface) Name() string {
	return t.name
}

// Metrics returns the vertical metrics at the given pixel size.
func (t *Typeface) Metrics(size float64) Metrics {
	buf := t.bufs.Get().(*sfnt.Buffer)
	defer t.bufs.Put(buf)

	m, err := t.outlines.Metrics(buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2, LineHeight: size * 1.2}
	}
	return Metrics{
		Ascent:     fromFixed(m.Ascent),
		Descent:    fromFixed(m.Descent),
		LineHeight: fromFixed(m.Height),
	}
}

// toFixed converts a float64 pixel size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a fixed.Int26_6 value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
