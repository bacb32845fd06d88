package drawable

import (
	"image/color"

	"github.com/benoitkugler/vecdraw/pathdata"
)

// Canvas is the drawing surface the render walker drives. It doesn't
// need any knowledge of the element tree: path construction calls
// arrive with absolute, untransformed coordinates, painting calls
// with fully resolved attributes, and the canvas applies its current
// transform frame to both.
//
// The transform frame is a save/restore stack: every Push must be
// balanced by a Pop before the render call returns, so that nested
// element visits never leak canvas state to siblings or ancestors.
type Canvas interface {
	pathdata.PathBuilder

	// Fill paints the interior of the accumulated path.
	Fill(c color.Color)

	// Stroke paints the outline of the accumulated path. Fields of
	// opts that are not set fall back to the canvas defaults.
	Stroke(c color.Color, width float64, opts StrokeOptions)

	// PushTransform multiplies the current coordinate frame by m.
	PushTransform(m Matrix2D)

	// PushTranslate offsets the current coordinate frame by off.
	PushTranslate(off pathdata.Point)

	// Pop restores the frame saved by the matching push.
	Pop()
}

// StrokeOptions carries the optional stroke attributes.
type StrokeOptions struct {
	Cap        CapMode  // NilCap when not specified
	Join       JoinMode // NilJoin when not specified
	MiterLimit *float64 // nil when not specified
}
