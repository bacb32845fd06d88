package drawable

import (
	"fmt"

	"github.com/benoitkugler/vecdraw/pathdata"
)

// MissingParameterError is reported at paint time when a stroke
// attribute is still unset after inheritance has been resolved up to
// the root. Correctly configured trees declare complete stroke
// parameters at the root, so seeing this error means the tree is
// malformed, not that the input data was invalid.
type MissingParameterError struct {
	Name string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("drawing parameter %s missing after inheritance resolution", e.Name)
}

// Render walks the tree depth first and issues drawing calls on the
// canvas. size is the requested square viewport; intrinsicSize is
// the design-time size the tree coordinates were authored against.
// Every coordinate is uniformly scaled by size/intrinsicSize, so the
// same tree renders correctly at any requested size.
func Render(root Element, canvas Canvas, size, intrinsicSize float64) error {
	if size <= 0 || intrinsicSize <= 0 {
		return fmt.Errorf("invalid render sizes: requested %g, intrinsic %g", size, intrinsicSize)
	}
	scale := size / intrinsicSize
	canvas.PushTransform(Identity.Scale(scale, scale))
	defer canvas.Pop()
	// the root has no ancestor: its own parameters seed the
	// inheritance chain
	return paint(root, canvas, root.ownParams())
}

// paint draws one node, pre-order. inherited is the effective
// parameter set of the parent.
func paint(el Element, canvas Canvas, inherited Params) error {
	switch el := el.(type) {
	case *Group:
		effective := el.Params.Merge(inherited)
		for _, child := range el.Children {
			if err := paint(child, canvas, effective); err != nil {
				return err
			}
		}
		return nil
	case *Circle:
		ovalPath(canvas, el.Center, el.Radius)
		return paintPath(canvas, el.Params.Merge(inherited))
	case *PathShape:
		return el.paint(canvas, inherited)
	}
	return nil
}

// paint replays the compiled commands inside a scoped transform
// context. The shape's own (non merged) transform and translation
// apply to this shape only; the pops are deferred so the canvas
// frame is restored on every exit path, early error returns
// included.
func (s *PathShape) paint(canvas Canvas, inherited Params) error {
	if m := s.Params.Transform; m != nil {
		canvas.PushTransform(*m)
		defer canvas.Pop()
	}
	if off := s.Params.Translate; off != nil {
		canvas.PushTranslate(*off)
		defer canvas.Pop()
	}
	for _, cmd := range s.commands {
		cmd.AddTo(canvas)
	}
	return paintPath(canvas, s.Params.Merge(inherited))
}

// ovalKappa is the control point offset approximating a quarter
// circle with a single cubic Bézier segment.
const ovalKappa = 0.5519150244935105707435627

// ovalPath builds a closed oval of radius r centered at c.
func ovalPath(b pathdata.PathBuilder, c pathdata.Point, r float64) {
	k := r * ovalKappa
	b.MoveTo(pathdata.Point{X: c.X + r, Y: c.Y})
	b.CubicTo(
		pathdata.Point{X: c.X + r, Y: c.Y + k},
		pathdata.Point{X: c.X + k, Y: c.Y + r},
		pathdata.Point{X: c.X, Y: c.Y + r})
	b.CubicTo(
		pathdata.Point{X: c.X - k, Y: c.Y + r},
		pathdata.Point{X: c.X - r, Y: c.Y + k},
		pathdata.Point{X: c.X - r, Y: c.Y})
	b.CubicTo(
		pathdata.Point{X: c.X - r, Y: c.Y - k},
		pathdata.Point{X: c.X - k, Y: c.Y - r},
		pathdata.Point{X: c.X, Y: c.Y - r})
	b.CubicTo(
		pathdata.Point{X: c.X + k, Y: c.Y - r},
		pathdata.Point{X: c.X + r, Y: c.Y - k},
		pathdata.Point{X: c.X + r, Y: c.Y})
	b.ClosePath()
}

// paintPath fills, then strokes, the path accumulated on the canvas.
// Filling is skipped when no fill color resolved; stroking is
// mandatory and its color and width must have resolved by now.
func paintPath(canvas Canvas, effective Params) error {
	if effective.FillColor != nil {
		canvas.Fill(effective.FillColor)
	}
	if effective.StrokeColor == nil {
		return MissingParameterError{Name: "strokeColor"}
	}
	if effective.StrokeWidth == nil {
		return MissingParameterError{Name: "strokeWidth"}
	}
	canvas.Stroke(effective.StrokeColor, *effective.StrokeWidth, StrokeOptions{
		Cap:        effective.LineCap,
		Join:       effective.LineJoin,
		MiterLimit: effective.MiterLimit,
	})
	return nil
}
