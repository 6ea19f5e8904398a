// Package coords implements 2D affine transforms over float64 points. Points
// stored in any channel are accepted and converted through adapt.
package coords

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/wudi/geomkit/adapt"
	"github.com/wudi/geomkit/geom"
)

// ErrSingular is returned when inverting a matrix with no inverse.
var ErrSingular = errors.New("coords: matrix singular")

// Matrix is the affine transform [a b c d e f] mapping (x, y) to
// (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

// Multiply returns m followed by o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

func (m Matrix) Transform(p geom.Pt2[float64]) geom.Pt2[float64] {
	return geom.Pt2[float64]{
		m[0]*p[0] + m[2]*p[1] + m[4],
		m[1]*p[0] + m[3]*p[1] + m[5],
	}
}

// TransformVector applies the linear part of m; translation is ignored.
func (m Matrix) TransformVector(v geom.Vec2[float64]) geom.Vec2[float64] {
	return geom.Vec2[float64]{
		m[0]*v[0] + m[2]*v[1],
		m[1]*v[0] + m[3]*v[1],
	}
}

// TransformPoint transforms any 2D point, whatever channel it is stored in.
func (m Matrix) TransformPoint(p any) (geom.Pt2[float64], error) {
	v, err := adapt.As(p, adapt.Point2Of[float64]())
	if err != nil {
		return geom.Pt2[float64]{}, err
	}
	return m.Transform(geom.Pt2[float64]{v.X(), v.Y()}), nil
}

// Apply transforms a mutable 2D point in place. Results are written back in
// the point's own channel.
func (m Matrix) Apply(p any) error {
	v, err := adapt.As(p, adapt.MutablePoint2Of[float64]())
	if err != nil {
		return err
	}
	q := m.Transform(geom.Pt2[float64]{v.X(), v.Y()})
	v.Set(q[0], q[1])
	return nil
}

func (m Matrix) Inverse() (Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-10 {
		return Matrix{}, ErrSingular
	}
	return Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}

// Aff3 returns m in the row-major layout of golang.org/x/image/math/f64.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
}

func FromAff3(a f64.Aff3) Matrix {
	return Matrix{a[0], a[3], a[1], a[4], a[2], a[5]}
}

func Translate(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

func Scale(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

func Rotate(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{c, s, -s, c, 0, 0}
}
