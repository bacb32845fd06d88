package drawable

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/vecdraw/pathdata"
)

// recordingCanvas keeps a flat trace of the calls it receives and
// tracks nesting of the transform frame stack.
type recordingCanvas struct {
	ops      []string
	depth    int
	maxDepth int
}

func (c *recordingCanvas) record(format string, args ...interface{}) {
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

func (c *recordingCanvas) MoveTo(p pathdata.Point) { c.record("moveTo %g,%g", p.X, p.Y) }
func (c *recordingCanvas) LineTo(p pathdata.Point) { c.record("lineTo %g,%g", p.X, p.Y) }
func (c *recordingCanvas) CubicTo(c1, c2, end pathdata.Point) {
	c.record("cubicTo %g,%g", end.X, end.Y)
}
func (c *recordingCanvas) ArcTo(radius pathdata.Point, xAxisRotation float64, end pathdata.Point) {
	c.record("arcTo %g,%g", end.X, end.Y)
}
func (c *recordingCanvas) ClosePath() { c.record("closePath") }

func (c *recordingCanvas) Fill(clr color.Color) { c.record("fill %v", clr) }
func (c *recordingCanvas) Stroke(clr color.Color, width float64, opts StrokeOptions) {
	c.record("stroke %v width %g cap %s join %s", clr, width, opts.Cap, opts.Join)
}

func (c *recordingCanvas) PushTransform(m Matrix2D) {
	c.depth++
	if c.depth > c.maxDepth {
		c.maxDepth = c.depth
	}
	c.record("pushTransform %v", m)
}

func (c *recordingCanvas) PushTranslate(off pathdata.Point) {
	c.depth++
	if c.depth > c.maxDepth {
		c.maxDepth = c.depth
	}
	c.record("pushTranslate %g,%g", off.X, off.Y)
}

func (c *recordingCanvas) Pop() {
	c.depth--
	c.record("pop")
}

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func mustShape(t *testing.T, data string, params Params) *PathShape {
	t.Helper()
	s, err := NewPathShape(data, params)
	require.NoError(t, err)
	return s
}

func TestRenderInheritance(t *testing.T) {
	shape := mustShape(t, "M0,0L10,0", Params{FillColor: white})
	root := &Group{
		Params: Params{StrokeColor: black, StrokeWidth: floatP(1)},
		Children: []Element{
			&Group{Children: []Element{shape}},
		},
	}

	var canvas recordingCanvas
	require.NoError(t, Render(root, &canvas, 10, 10))

	// the intermediate group declares nothing: the shape fills with
	// its own color and strokes with the root attributes
	require.Equal(t, []string{
		"pushTransform {1 0 0 1 0 0}",
		"moveTo 0,0",
		"lineTo 10,0",
		"fill {255 255 255 255}",
		"stroke {0 0 0 255} width 1 cap NilCap join NilJoin",
		"pop",
	}, canvas.ops)
	require.Zero(t, canvas.depth)
}

func TestRenderScale(t *testing.T) {
	root := &Group{Params: Params{StrokeColor: black, StrokeWidth: floatP(1)}}
	var canvas recordingCanvas
	require.NoError(t, Render(root, &canvas, 100, 50))
	require.Equal(t, []string{
		fmt.Sprintf("pushTransform %v", Identity.Scale(2, 2)),
		"pop",
	}, canvas.ops)
}

func TestRenderInvalidSizes(t *testing.T) {
	root := &Group{}
	var canvas recordingCanvas
	require.Error(t, Render(root, &canvas, 0, 24))
	require.Error(t, Render(root, &canvas, 24, -1))
	require.Empty(t, canvas.ops)
}

func TestRenderMissingStroke(t *testing.T) {
	shape := mustShape(t, "M0,0L10,0", Params{})

	err := Render(shape, &recordingCanvas{}, 10, 10)
	require.Equal(t, MissingParameterError{Name: "strokeColor"}, err)

	shape.Params.StrokeColor = black
	err = Render(shape, &recordingCanvas{}, 10, 10)
	require.Equal(t, MissingParameterError{Name: "strokeWidth"}, err)

	shape.Params.StrokeWidth = floatP(1)
	require.NoError(t, Render(shape, &recordingCanvas{}, 10, 10))
}

func TestRenderCircle(t *testing.T) {
	circle := &Circle{
		Center: pathdata.Point{X: 12, Y: 12},
		Radius: 6,
		Params: Params{StrokeColor: black, StrokeWidth: floatP(2)},
	}

	var canvas recordingCanvas
	require.NoError(t, Render(circle, &canvas, 24, 24))

	// a closed oval of four quarter arcs, stroked but not filled
	require.Equal(t, []string{
		"pushTransform {1 0 0 1 0 0}",
		"moveTo 18,12",
		"cubicTo 12,18",
		"cubicTo 6,12",
		"cubicTo 12,6",
		"cubicTo 18,12",
		"closePath",
		"stroke {0 0 0 255} width 2 cap NilCap join NilJoin",
		"pop",
	}, canvas.ops)
}

func TestRenderTransformScoping(t *testing.T) {
	m := Identity.Rotate(1)
	transformed := mustShape(t, "M0,0L1,1", Params{
		Transform: &m,
		Translate: &pathdata.Point{X: 5, Y: 5},
	})
	plain := mustShape(t, "M2,2L3,3", Params{})
	root := &Group{
		Params:   Params{StrokeColor: black, StrokeWidth: floatP(1)},
		Children: []Element{transformed, plain},
	}

	var canvas recordingCanvas
	require.NoError(t, Render(root, &canvas, 10, 10))
	require.Zero(t, canvas.depth)

	// the first shape pushes two frames and pops both before its
	// sibling draws
	require.Equal(t, []string{
		fmt.Sprintf("pushTransform %v", Identity),
		fmt.Sprintf("pushTransform %v", m),
		"pushTranslate 5,5",
		"moveTo 0,0",
		"lineTo 1,1",
		"stroke {0 0 0 255} width 1 cap NilCap join NilJoin",
		"pop",
		"pop",
		"moveTo 2,2",
		"lineTo 3,3",
		"stroke {0 0 0 255} width 1 cap NilCap join NilJoin",
		"pop",
	}, canvas.ops)
}

func TestRenderTransformNotInherited(t *testing.T) {
	m := Identity.Scale(3, 3)
	shape := mustShape(t, "M0,0L1,1", Params{})
	root := &Group{
		Params: Params{
			StrokeColor: black,
			StrokeWidth: floatP(1),
			Transform:   &m,
			Translate:   &pathdata.Point{X: 7, Y: 7},
		},
		Children: []Element{shape},
	}

	var canvas recordingCanvas
	require.NoError(t, Render(root, &canvas, 10, 10))
	// only the viewport frame is pushed: the group transform applies
	// to no shape but its own, and groups draw nothing
	require.Equal(t, 1, canvas.maxDepth)
}
