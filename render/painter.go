package render

import (
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/widget"
)

// Painter runs paint passes over control trees.
//
// Example:
//
//	cv := raster.NewCanvas(800, 600)
//	if err := render.NewPainter(nil).Paint(cv, root, 2.0); err != nil {
//	    log.Fatal(err) // a control kind has no renderer
//	}
type Painter struct {
	reg *Registry
}

// NewPainter creates a painter resolving renderers in reg, or in Default
// if reg is nil.
func NewPainter(reg *Registry) *Painter {
	if reg == nil {
		reg = Default
	}
	return &Painter{reg: reg}
}

// Paint paints root and its descendants onto canvas at the given scale.
// It stops at the first control without a renderer and returns its
// *NoRendererError; controls painted before it stay on the canvas.
func (p *Painter) Paint(canvas paint.Canvas, root widget.Control, scale float64, opts ...ContextOption) error {
	pc := NewContext(canvas, scale, opts...)
	return p.PaintControl(pc, root)
}

// PaintControl paints c and its descendants with an existing context.
func (p *Painter) PaintControl(pc *Context, c widget.Control) error {
	r, err := p.reg.Resolve(c.Kind())
	if err != nil {
		ui.Logger().Error("render: paint aborted", "kind", c.Kind().String(), "err", err)
		return err
	}

	pc.Save()
	defer pc.Restore()
	pc.SetTheme(c.Theme())
	r.Render(c, pc)

	cont, ok := c.(widget.Container)
	if !ok {
		return nil
	}
	b := c.Bounds()
	if b.Empty() {
		return nil
	}
	pc.ClipRect(b)
	pc.Translate(b.X, b.Y)
	for _, child := range cont.Children() {
		if err := p.PaintControl(pc, child); err != nil {
			return err
		}
	}
	return nil
}
