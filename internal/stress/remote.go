package stress

import (
	"math"

	"github.com/alexiusacademia/gostress/internal/geometry"
)

// OffDiagonalTolerance is the |xy| below which the tensor is treated as
// already diagonal and the coordinate axes are returned as principal directions.
const OffDiagonalTolerance = 1e-12

var (
	axisX = geometry.Vector{X: 1, Y: 0}
	axisY = geometry.Vector{X: 0, Y: 1}
)

// PrincipalDirections holds the two orthonormal eigenvectors of a 2D stress
// tensor. S1 belongs to the larger eigenvalue, S3 to the smaller one.
type PrincipalDirections struct {
	S1 geometry.Vector
	S3 geometry.Vector
}

// Tensor is a symmetric 2x2 stress tensor
type Tensor struct {
	XX float64
	XY float64
	YY float64
}

// NewTensor builds the remote stress tensor for orientation theta (degrees)
// and stress ratio k.
//
//	xx = k·cos²a + sin²a
//	xy = (k-1)·cos a·sin a
//	yy = k·sin²a + cos²a
func NewTensor(theta, k float64) Tensor {
	a := theta * math.Pi / 180
	c, s := math.Cos(a), math.Sin(a)
	return Tensor{
		XX: k*c*c + s*s,
		XY: (k - 1) * c * s,
		YY: k*s*s + c*c,
	}
}

// Trace returns xx + yy
func (t Tensor) Trace() float64 {
	return t.XX + t.YY
}

// Det returns the determinant xx·yy - xy²
func (t Tensor) Det() float64 {
	return t.XX*t.YY - t.XY*t.XY
}

// Apply returns the tensor applied to v
func (t Tensor) Apply(v geometry.Vector) geometry.Vector {
	return geometry.Vector{
		X: t.XX*v.X + t.XY*v.Y,
		Y: t.XY*v.X + t.YY*v.Y,
	}
}

// discriminant returns sqrt(trace² - 4·det), evaluated as sqrt((xx-yy)² + 4xy²)
// which is non-negative and free of cancellation near isotropy.
func (t Tensor) discriminant() float64 {
	dxy := t.XX - t.YY
	return math.Sqrt(dxy*dxy + 4*t.XY*t.XY)
}

// Eigenvalues returns the larger and the smaller eigenvalue
func (t Tensor) Eigenvalues() (l1, l3 float64) {
	tr, d := t.Trace(), t.discriminant()
	return (tr + d) / 2, (tr - d) / 2
}

// Principal returns the principal directions of t, ordered by decreasing eigenvalue.
// For an isotropic tensor every direction is principal; the coordinate axes are returned.
func (t Tensor) Principal() PrincipalDirections {
	if math.Abs(t.XY) < OffDiagonalTolerance {
		if t.XX >= t.YY {
			return PrincipalDirections{S1: axisX, S3: axisY}
		}
		return PrincipalDirections{S1: axisY, S3: axisX}
	}

	d := t.discriminant()
	return PrincipalDirections{
		S1: t.eigenvector(d),
		S3: t.eigenvector(-d),
	}
}

// eigenvector returns the unit eigenvector for eigenvalue l = (trace+d)/2.
// Both rows of (T - l·I) give a candidate, (xy, l-xx) and (l-yy, xy);
// the longer one is the better conditioned.
func (t Tensor) eigenvector(d float64) geometry.Vector {
	v := geometry.Vector{X: t.XY, Y: (t.YY - t.XX + d) / 2}
	if w := (geometry.Vector{X: (t.XX - t.YY + d) / 2, Y: t.XY}); w.Norm() > v.Norm() {
		v = w
	}
	// |XY| >= OffDiagonalTolerance here, so v is never the zero vector
	return v.Scale(1 / v.Norm())
}

// Principal returns the principal directions of the remote stress (theta, k)
func Principal(theta, k float64) PrincipalDirections {
	return NewTensor(theta, k).Principal()
}

// Traction returns the normal and shear stress acting on the plane whose
// normal makes angle theta (degrees) with the x axis. Shear is measured
// along the normal rotated by +90°.
func (t Tensor) Traction(theta float64) (normal, shear float64) {
	a := 2 * theta * math.Pi / 180
	c, s := math.Cos(a), math.Sin(a)
	normal = (t.XX+t.YY)/2 + (t.XX-t.YY)/2*c + t.XY*s
	shear = (t.YY-t.XX)/2*s + t.XY*c
	return normal, shear
}
