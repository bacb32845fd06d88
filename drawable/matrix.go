package drawable

import (
	"math"

	"github.com/benoitkugler/vecdraw/pathdata"
)

// Matrix2D is a 2-D affine transform,
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{A: 1, D: 1}

// Mult returns a times b.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Apply transforms the point p.
func (a Matrix2D) Apply(p pathdata.Point) pathdata.Point {
	return pathdata.Point{
		X: a.A*p.X + a.C*p.Y + a.E,
		Y: a.B*p.X + a.D*p.Y + a.F,
	}
}

// Translate returns a translated by x, y.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Scale returns a scaled by x, y.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: x, D: y})
}

// Rotate returns a rotated by theta radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return a.Mult(Matrix2D{A: cos, B: sin, C: -sin, D: cos})
}
