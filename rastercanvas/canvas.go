// Package rastercanvas implements a raster drawing surface for
// drawable element trees, by wrapping rasterx.
package rastercanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/vecdraw/drawable"
	"github.com/benoitkugler/vecdraw/pathdata"
)

var _ drawable.Canvas = (*Canvas)(nil) // assert interface conformance

// Canvas rasterizes the drawing calls issued by drawable.Render.
// Path points are mapped through the current transform frame and
// converted to 26.6 fixed point before being handed to rasterx; the
// accumulated path is recorded so it can be replayed on the filler
// and on the dasher.
type Canvas struct {
	filler *rasterx.Filler
	dasher *rasterx.Dasher

	stack []drawable.Matrix2D // transform frames; the last entry is current
	path  rasterx.Path        // already transformed
	cur   pathdata.Point      // current point, user space
	drawn bool                // a paint call ended the current path
}

// NewCanvas returns a canvas rasterizing into the given scanner.
func NewCanvas(width, height int, scanner rasterx.Scanner) *Canvas {
	return &Canvas{
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
		stack:  []drawable.Matrix2D{drawable.Identity},
	}
}

// RenderToImage renders the tree into a freshly allocated square
// RGBA image of ceil(size) pixels, using a rasterx.ScannerGV.
func RenderToImage(root drawable.Element, size, intrinsicSize float64) (*image.RGBA, error) {
	w := int(math.Ceil(size))
	img := image.NewRGBA(image.Rect(0, 0, w, w))
	scanner := rasterx.NewScannerGV(w, w, img, img.Bounds())
	canvas := NewCanvas(w, w, scanner)
	if err := drawable.Render(root, canvas, size, intrinsicSize); err != nil {
		return nil, err
	}
	return img, nil
}

func (c *Canvas) ctm() drawable.Matrix2D {
	return c.stack[len(c.stack)-1]
}

// project maps a user space point to a fixed point device position.
func (c *Canvas) project(p pathdata.Point) fixed.Point26_6 {
	q := c.ctm().Apply(p)
	return fixed.Point26_6{X: fixed.Int26_6(q.X * 64), Y: fixed.Int26_6(q.Y * 64)}
}

// begin drops the previous path once it has been painted.
func (c *Canvas) begin() {
	if c.drawn {
		c.path.Clear()
		c.drawn = false
	}
}

func (c *Canvas) MoveTo(p pathdata.Point) {
	c.begin()
	c.path.Start(c.project(p))
	c.cur = p
}

func (c *Canvas) LineTo(p pathdata.Point) {
	c.begin()
	c.path.Line(c.project(p))
	c.cur = p
}

func (c *Canvas) CubicTo(c1, c2, end pathdata.Point) {
	c.begin()
	c.path.CubeBezier(c.project(c1), c.project(c2), c.project(end))
	c.cur = end
}

func (c *Canvas) ClosePath() {
	c.begin()
	c.path.Stop(true)
}

func (c *Canvas) PushTransform(m drawable.Matrix2D) {
	c.stack = append(c.stack, c.ctm().Mult(m))
}

func (c *Canvas) PushTranslate(off pathdata.Point) {
	c.stack = append(c.stack, c.ctm().Translate(off.X, off.Y))
}

func (c *Canvas) Pop() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *Canvas) Fill(clr color.Color) {
	c.filler.Clear()
	c.path.AddTo(c.filler)
	c.filler.SetColor(clr)
	c.filler.Draw()
	c.drawn = true
}

var (
	capToFunc = [...]rasterx.CapFunc{
		drawable.NilCap:    rasterx.ButtCap,
		drawable.ButtCap:   rasterx.ButtCap,
		drawable.RoundCap:  rasterx.RoundCap,
		drawable.SquareCap: rasterx.SquareCap,
	}

	joinToJoin = [...]rasterx.JoinMode{
		drawable.NilJoin:   rasterx.Bevel,
		drawable.MiterJoin: rasterx.Miter,
		drawable.RoundJoin: rasterx.Round,
		drawable.BevelJoin: rasterx.Bevel,
	}
)

func (c *Canvas) Stroke(clr color.Color, width float64, opts drawable.StrokeOptions) {
	// the stroke width is given in user space: scale it by the
	// uniform part of the current frame
	m := c.ctm()
	scale := math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))

	miterLimit := 4.0
	if opts.MiterLimit != nil {
		miterLimit = *opts.MiterLimit
	}
	capFn := capToFunc[opts.Cap]
	c.dasher.Clear()
	c.dasher.SetStroke(
		fixed.Int26_6(width*scale*64), fixed.Int26_6(miterLimit*64),
		capFn, capFn, rasterx.FlatGap, joinToJoin[opts.Join],
		nil, 0,
	)
	c.path.AddTo(c.dasher)
	c.dasher.SetColor(clr)
	c.dasher.Draw()
	c.drawn = true
}
