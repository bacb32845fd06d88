package drawable

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/vecdraw/pathdata"
)

func floatP(v float64) *float64 { return &v }

func TestMergeChildWins(t *testing.T) {
	parent := Params{
		FillColor:   color.NRGBA{R: 0xff, A: 0xff},
		StrokeColor: color.Black,
		StrokeWidth: floatP(2),
		LineCap:     ButtCap,
		LineJoin:    MiterJoin,
		MiterLimit:  floatP(4),
		Translate:   &pathdata.Point{X: 1, Y: 1},
		Transform:   &Identity,
	}
	child := Params{
		FillColor:   color.White,
		StrokeWidth: floatP(5),
		LineCap:     RoundCap,
	}

	eff := child.Merge(parent)
	require.Equal(t, color.White, eff.FillColor)
	require.Equal(t, 5.0, *eff.StrokeWidth)
	require.Equal(t, RoundCap, eff.LineCap)

	// unset child fields fall back to the parent
	require.Equal(t, color.Black, eff.StrokeColor)
	require.Equal(t, MiterJoin, eff.LineJoin)
	require.Equal(t, 4.0, *eff.MiterLimit)
	require.Equal(t, pathdata.Point{X: 1, Y: 1}, *eff.Translate)
	require.Equal(t, Identity, *eff.Transform)
}

func TestMergeDoesNotMutate(t *testing.T) {
	parent := Params{StrokeColor: color.Black, StrokeWidth: floatP(1)}
	child := Params{FillColor: color.White}
	parentBefore, childBefore := parent, child

	_ = child.Merge(parent)
	require.Equal(t, parentBefore, parent)
	require.Equal(t, childBefore, child)
}

func TestMergeIdentities(t *testing.T) {
	p := Params{
		FillColor:   color.White,
		StrokeColor: color.Black,
		StrokeWidth: floatP(3),
		LineJoin:    BevelJoin,
	}

	// an empty child inherits everything
	require.Equal(t, p, Params{}.Merge(p))
	// a fully set child overrides everything
	require.Equal(t, p, p.Merge(Params{
		FillColor:   color.Black,
		StrokeColor: color.White,
		StrokeWidth: floatP(9),
		LineJoin:    RoundJoin,
	}))
	// merging with itself is a no-op
	require.Equal(t, p, p.Merge(p))
}
