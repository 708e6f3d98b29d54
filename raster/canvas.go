package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
)

// Canvas is a paint.Canvas backed by an *image.RGBA.
type Canvas struct {
	img    *image.RGBA
	origin image.Point
	w, h   int
	tol    float64

	clip  geom.Rect
	stack []geom.Rect

	z    *vector.Rasterizer
	mask *image.Alpha
}

var _ paint.Canvas = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given device size.
// Non-positive dimensions are clamped to 1.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img := o.img
	if img == nil {
		width = max(width, 1)
		height = max(height, 1)
		img = image.NewRGBA(image.Rect(0, 0, width, height))
	} else {
		width, height = img.Bounds().Dx(), img.Bounds().Dy()
	}

	return &Canvas{
		img:    img,
		origin: img.Bounds().Min,
		w:      width,
		h:      height,
		tol:    o.tolerance,
		clip:   geom.XYWH(0, 0, float64(width), float64(height)),
		z:      vector.NewRasterizer(width, height),
		mask:   image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// Size implements paint.Canvas.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Image returns the backing image. It aliases the canvas pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clip returns the current clip rectangle in device space.
func (c *Canvas) Clip() geom.Rect { return c.clip }

// Save pushes the current clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.clip)
}

// Restore pops the clip pushed by the matching Save. Unbalanced calls are
// ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.clip = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// ClipRect intersects the current clip with r.
func (c *Canvas) ClipRect(r geom.Rect) {
	c.clip = c.clip.Intersect(r)
}

// Clear fills the whole canvas with col, ignoring the clip.
func (c *Canvas) Clear(col paint.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// At returns the pixel at device position (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(c.origin.X+x, c.origin.Y+y)
}

// DrawLine implements paint.Canvas.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, p *paint.Paint) {
	line := geom.Polyline{Points: []geom.Point{geom.Pt(x0, y0), geom.Pt(x1, y1)}}
	c.fillPolygons(strokePolylines([]geom.Polyline{line}, p), p)
}

// DrawRect implements paint.Canvas.
func (c *Canvas) DrawRect(r geom.Rect, p *paint.Paint) {
	if r.Empty() {
		return
	}
	corners := []geom.Point{
		geom.Pt(r.Left(), r.Top()),
		geom.Pt(r.Right(), r.Top()),
		geom.Pt(r.Right(), r.Bottom()),
		geom.Pt(r.Left(), r.Bottom()),
	}
	if p.Style == paint.StyleStroke {
		outline := geom.Polyline{Points: corners, Closed: true}
		c.fillPolygons(strokePolylines([]geom.Polyline{outline}, p), p)
		return
	}
	c.fillPolygons([][]geom.Point{corners}, p)
}

// DrawPath implements paint.Canvas.
func (c *Canvas) DrawPath(path *geom.Path, p *paint.Paint) {
	if path.IsEmpty() {
		return
	}
	lines := path.Flatten(c.tol)
	if p.Style == paint.StyleStroke {
		c.fillPolygons(strokePolylines(lines, p), p)
		return
	}
	polys := make([][]geom.Point, 0, len(lines))
	for _, l := range lines {
		if len(l.Points) >= 3 {
			polys = append(polys, l.Points)
		}
	}
	c.fillPolygons(polys, p)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, c.img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("raster: write %s: %w", path, err)
	}
	return f.Close()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// fillPolygons rasterizes polys with the nonzero-magnitude rule of
// x/image/vector and composites p's color through the clip.
func (c *Canvas) fillPolygons(polys [][]geom.Point, p *paint.Paint) {
	area := c.deviceClip()
	if area.Empty() || len(polys) == 0 {
		return
	}

	c.z.Reset(c.w, c.h)
	c.z.DrawOp = draw.Src
	added := 0
	for _, poly := range polys {
		if addPolygon(c.z, poly) {
			added++
		}
	}
	if added == 0 {
		return
	}
	c.z.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	if !p.Flags.Has(paint.FlagAntialias) {
		threshold(c.mask, area)
	}
	draw.DrawMask(c.img, area.Add(c.origin), source(p), area.Min, c.mask, area.Min, draw.Over)
}

// deviceClip returns the pixels touched by the clip rectangle.
func (c *Canvas) deviceClip() image.Rectangle {
	if c.clip.Empty() {
		return image.Rectangle{}
	}
	r := image.Rect(
		int(math.Floor(c.clip.Left())),
		int(math.Floor(c.clip.Top())),
		int(math.Ceil(c.clip.Right())),
		int(math.Ceil(c.clip.Bottom())),
	)
	return r.Intersect(image.Rect(0, 0, c.w, c.h))
}

func addPolygon(z *vector.Rasterizer, pts []geom.Point) bool {
	if len(pts) < 3 {
		return false
	}
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
	return true
}

func threshold(m *image.Alpha, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Pix[m.PixOffset(r.Min.X, y):m.PixOffset(r.Max.X, y)]
		for i, a := range row {
			if a >= 0x80 {
				row[i] = 0xff
			} else {
				row[i] = 0
			}
		}
	}
}

func source(p *paint.Paint) image.Image {
	if p.Shader != nil {
		return shaderImage{p.Shader}
	}
	return image.NewUniform(p.Color.NRGBA())
}

// shaderImage samples a shader at pixel centers.
type shaderImage struct {
	s paint.Shader
}

func (shaderImage) ColorModel() color.Model { return color.NRGBAModel }

func (shaderImage) Bounds() image.Rectangle {
	return image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)
}

func (s shaderImage) At(x, y int) color.Color {
	return s.s.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
}
