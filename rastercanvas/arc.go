package rastercanvas

import (
	"math"

	"github.com/benoitkugler/vecdraw/pathdata"
)

// Elliptical arcs are approximated with cubic Bézier splines by the
// method of L. Maisonobe, "Drawing an elliptical arc using
// polylines, quadratic or cubic Bezier curves", 2003,
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf

// maxDx is the maximum radians a cubic splice is allowed to span.
const maxDx float64 = math.Pi / 8

// The path grammar consumes the large-arc and sweep flags but drops
// them, so the canvas always draws the small, positive-sweep arc.
const (
	arcLarge = false
	arcSweep = true
)

func (c *Canvas) ArcTo(radius pathdata.Point, xAxisRotation float64, end pathdata.Point) {
	rx, ry := radius.X, radius.Y
	if rx == 0 || ry == 0 {
		// degenerate ellipse: the segment collapses to a line
		c.LineTo(end)
		return
	}
	start := c.cur
	rotX := xAxisRotation * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rotX, start.X, start.Y, end.X, end.Y, arcSweep, arcLarge)

	startAngle := math.Atan2(start.Y-cy, start.X-cx) - rotX
	endAngle := math.Atan2(end.Y-cy, end.X-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if (arcBig && !arcLarge) || (!arcBig && arcLarge) { // Go has no boolean XOR
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the ellipse
	// is at the midpoint of the start and end lines.
	if deltaEta < 0 && arcSweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !arcSweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine the number of cubic splines
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!
	lx, ly := start.X, start.Y
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = end.X, end.Y // make the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		c.CubicTo(
			pathdata.Point{X: lx + alpha*ldx, Y: ly + alpha*ldy},
			pathdata.Point{X: px - alpha*dx, Y: py - alpha*dy},
			pathdata.Point{X: px, Y: py})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	c.cur = end
}

// ellipsePrime gives tangent vectors for the parameterized ellipse;
// a, b radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for the parameterized ellipse; a, b
// radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the ellipse if it exists.
// If it does not exist, the radius values are increased minimally
// for a solution to be possible while preserving the ra to rb ratio.
// ra and rb arguments are pointers that can be checked after the
// call to see if the values changed. This method uses coordinate
// transformations to reduce the problem to finding the center of a
// circle that includes the origin and an arbitrary point. The center
// of the circle is then transformed back to the original coordinates
// and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit.
		// Length of span is greater than max width of ellipse, must
		// scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
