// Package pathdata implements the path-data mini-language used by
// the d attribute of SVG <path> elements.
// A path string is compiled once into a sequence of typed commands,
// which can then be replayed any number of times onto a path builder.
package pathdata

import "math"

// Point is a pair of coordinates, used throughout as position,
// offset and control point.
type Point struct {
	X, Y float64
}

// Add returns the translation of p by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Undefined reports whether p is the sentinel position returned by
// commands that never relocate the cursor.
func (p Point) Undefined() bool {
	return math.IsNaN(p.X) && math.IsNaN(p.Y)
}

// undefined is the end point of ClosePath. It must never be
// consumed as the start point of a following command.
var undefined = Point{X: math.NaN(), Y: math.NaN()}

// PathBuilder accumulates path construction operations. Drawing
// canvases implement it; all coordinates handed to a builder are
// absolute, relative commands having been resolved against their
// start point.
type PathBuilder interface {
	// MoveTo starts a new sub-path at the given point.
	MoveTo(p Point)

	// LineTo adds a straight segment from the current point to p.
	LineTo(p Point)

	// CubicTo adds a cubic Bézier segment with control points c1, c2.
	CubicTo(c1, c2, end Point)

	// ArcTo adds an elliptical arc segment ending at end. radius
	// holds the two semi-axes; xAxisRotation is in degrees.
	ArcTo(radius Point, xAxisRotation float64, end Point)

	// ClosePath closes the current sub-path back to its start.
	ClosePath()
}

// Command is one parsed path instruction. The variant set is closed:
// MoveTo, LineTo, HLineTo, VLineTo, CubicTo, ArcTo and ClosePath.
// Every variant carries the cursor position it started from and a
// flag telling whether its numeric parameters are deltas from that
// position or absolute coordinates.
type Command interface {
	// End returns the absolute cursor position after the command has
	// executed, computed only from the command's own fields. The
	// parser uses it to thread the cursor between successive
	// commands. ClosePath is the single exception: it returns a
	// sentinel for which Point.Undefined is true.
	End() Point

	// AddTo replays the command onto b, resolving relative
	// coordinates against the start point.
	AddTo(b PathBuilder)
}

// MoveTo relocates the cursor without drawing.
type MoveTo struct {
	Start Point
	To    Point
	Rel   bool
}

// LineTo draws a straight segment.
type LineTo struct {
	Start Point
	To    Point
	Rel   bool
}

// HLineTo draws a straight segment constrained to the start y.
type HLineTo struct {
	Start Point
	X     float64
	Rel   bool
}

// VLineTo draws a straight segment constrained to the start x.
type VLineTo struct {
	Start Point
	Y     float64
	Rel   bool
}

// CubicTo draws a cubic Bézier segment. When Rel is set, the control
// points are deltas from the start point, like the end point.
type CubicTo struct {
	Start  Point
	C1, C2 Point
	To     Point
	Rel    bool
}

// ArcTo draws an elliptical arc segment. The grammar consumes the
// large-arc and sweep flags but they are not retained: canvases pick
// one fixed arc interpretation. This is a known limitation of the
// restricted command model.
type ArcTo struct {
	Start     Point
	Radius    Point
	XRotation float64 // degrees
	To        Point
	Rel       bool
}

// ClosePath closes the current sub-path back to its start. It has no
// defined end point.
type ClosePath struct {
	Start Point
}

func (op MoveTo) End() Point {
	if op.Rel {
		return op.Start.Add(op.To)
	}
	return op.To
}

func (op LineTo) End() Point {
	if op.Rel {
		return op.Start.Add(op.To)
	}
	return op.To
}

func (op HLineTo) End() Point {
	if op.Rel {
		return Point{X: op.Start.X + op.X, Y: op.Start.Y}
	}
	return Point{X: op.X, Y: op.Start.Y}
}

func (op VLineTo) End() Point {
	if op.Rel {
		return Point{X: op.Start.X, Y: op.Start.Y + op.Y}
	}
	return Point{X: op.Start.X, Y: op.Y}
}

func (op CubicTo) End() Point {
	if op.Rel {
		return op.Start.Add(op.To)
	}
	return op.To
}

func (op ArcTo) End() Point {
	if op.Rel {
		return op.Start.Add(op.To)
	}
	return op.To
}

func (op ClosePath) End() Point { return undefined }

func (op MoveTo) AddTo(b PathBuilder) { b.MoveTo(op.End()) }

func (op LineTo) AddTo(b PathBuilder) { b.LineTo(op.End()) }

func (op HLineTo) AddTo(b PathBuilder) { b.LineTo(op.End()) }

func (op VLineTo) AddTo(b PathBuilder) { b.LineTo(op.End()) }

func (op CubicTo) AddTo(b PathBuilder) {
	c1, c2 := op.C1, op.C2
	if op.Rel {
		c1 = op.Start.Add(c1)
		c2 = op.Start.Add(c2)
	}
	b.CubicTo(c1, c2, op.End())
}

func (op ArcTo) AddTo(b PathBuilder) {
	// the radii are lengths, not positions: only the end point is
	// subject to the relative flag
	b.ArcTo(op.Radius, op.XRotation, op.End())
}

func (op ClosePath) AddTo(b PathBuilder) { b.ClosePath() }
