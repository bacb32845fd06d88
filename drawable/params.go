package drawable

import (
	"image/color"

	"github.com/benoitkugler/vecdraw/pathdata"
)

// CapMode defines how stroke ends are drawn.
type CapMode uint8

const (
	NilCap CapMode = iota // not specified: inherit, or canvas default
	ButtCap
	RoundCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case NilCap:
		return "NilCap"
	case ButtCap:
		return "ButtCap"
	case RoundCap:
		return "RoundCap"
	case SquareCap:
		return "SquareCap"
	default:
		return "<unknown CapMode>"
	}
}

// JoinMode defines how stroke segments bridge the gap at a join.
type JoinMode uint8

const (
	NilJoin JoinMode = iota // not specified: inherit, or canvas default
	MiterJoin
	RoundJoin
	BevelJoin
)

func (j JoinMode) String() string {
	switch j {
	case NilJoin:
		return "NilJoin"
	case MiterJoin:
		return "MiterJoin"
	case RoundJoin:
		return "RoundJoin"
	case BevelJoin:
		return "BevelJoin"
	default:
		return "<unknown JoinMode>"
	}
}

// Params is the set of inheritable drawing attributes attached to a
// drawable element. Every field is independently optional: nil (or
// the Nil enum value) means "inherit from the ancestor, or fall back
// to the canvas default", which is distinct from any concrete value.
type Params struct {
	FillColor   color.Color // nil disables filling, unless an ancestor sets it
	StrokeColor color.Color
	StrokeWidth *float64
	LineCap     CapMode
	LineJoin    JoinMode
	MiterLimit  *float64

	// Translate and Transform take part in Merge like every other
	// field, but the render walker reads them from the element's own
	// parameters only: they apply locally and are never inherited.
	Translate *pathdata.Point
	Transform *Matrix2D
}

// Merge resolves p against the effective parameters of the parent:
// for every field the child value wins when set, otherwise the
// parent value is kept. Neither parameter set is mutated; the
// result is a fresh value.
func (p Params) Merge(parent Params) Params {
	if p.FillColor == nil {
		p.FillColor = parent.FillColor
	}
	if p.StrokeColor == nil {
		p.StrokeColor = parent.StrokeColor
	}
	if p.StrokeWidth == nil {
		p.StrokeWidth = parent.StrokeWidth
	}
	if p.LineCap == NilCap {
		p.LineCap = parent.LineCap
	}
	if p.LineJoin == NilJoin {
		p.LineJoin = parent.LineJoin
	}
	if p.MiterLimit == nil {
		p.MiterLimit = parent.MiterLimit
	}
	if p.Translate == nil {
		p.Translate = parent.Translate
	}
	if p.Transform == nil {
		p.Transform = parent.Transform
	}
	return p
}
