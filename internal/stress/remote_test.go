package stress_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-9

// sweep calls fn over a dense (theta, k) grid covering the whole parameter domain.
func sweep(fn func(theta, k float64)) {
	for i := 0; i <= 36; i++ {
		theta := geometry.Lerp(0, 180, float64(i)/36)
		for j := 0; j <= 20; j++ {
			fn(theta, geometry.Lerp(0, 1, float64(j)/20))
		}
	}
	// near-isotropic ratios stress the closed form the most
	for _, k := range []float64{0.999999, 1 - 1e-9, 1 - 1e-12} {
		fn(33.3, k)
	}
}

// rayleigh returns vᵀ·T·v for a unit vector v.
func rayleigh(t stress.Tensor, v geometry.Vector) float64 {
	return geometry.Dot(v, t.Apply(v))
}

// TestPrincipal_Orthonormal verifies S1 and S3 are unit length and orthogonal
// everywhere in the parameter domain.
func TestPrincipal_Orthonormal(t *testing.T) {
	sweep(func(theta, k float64) {
		p := stress.Principal(theta, k)
		assert.InDelta(t, 1.0, p.S1.Norm(), eps, "‖S1‖ at θ=%v k=%v", theta, k)
		assert.InDelta(t, 1.0, p.S3.Norm(), eps, "‖S3‖ at θ=%v k=%v", theta, k)
		assert.Less(t, math.Abs(geometry.Dot(p.S1, p.S3)), 1e-6, "S1·S3 at θ=%v k=%v", theta, k)
	})
}

// TestPrincipal_Ordering verifies S1 carries the larger eigenvalue.
func TestPrincipal_Ordering(t *testing.T) {
	sweep(func(theta, k float64) {
		tensor := stress.NewTensor(theta, k)
		p := tensor.Principal()
		assert.GreaterOrEqual(t, rayleigh(tensor, p.S1), rayleigh(tensor, p.S3)-eps, "θ=%v k=%v", theta, k)
	})
}

// TestPrincipal_AreEigenvectors checks T·S = λ·S for both directions.
func TestPrincipal_AreEigenvectors(t *testing.T) {
	sweep(func(theta, k float64) {
		tensor := stress.NewTensor(theta, k)
		p := tensor.Principal()
		l1, l3 := tensor.Eigenvalues()

		t1 := tensor.Apply(p.S1)
		assert.InDelta(t, l1*p.S1.X, t1.X, 1e-9)
		assert.InDelta(t, l1*p.S1.Y, t1.Y, 1e-9)

		t3 := tensor.Apply(p.S3)
		assert.InDelta(t, l3*p.S3.X, t3.X, 1e-9)
		assert.InDelta(t, l3*p.S3.Y, t3.Y, 1e-9)
	})
}

// TestEigenvalues_MatchGonum cross-checks the closed form against a general
// symmetric eigensolver.
func TestEigenvalues_MatchGonum(t *testing.T) {
	sweep(func(theta, k float64) {
		tensor := stress.NewTensor(theta, k)
		sym := mat.NewSymDense(2, []float64{tensor.XX, tensor.XY, tensor.XY, tensor.YY})

		var es mat.EigenSym
		require.True(t, es.Factorize(sym, true))
		vals := es.Values(nil) // ascending

		l1, l3 := tensor.Eigenvalues()
		assert.InDelta(t, vals[1], l1, 1e-9)
		assert.InDelta(t, vals[0], l3, 1e-9)

		// the remote stress always has eigenvalues 1 and k
		assert.InDelta(t, 1.0, l1, 1e-9)
		assert.InDelta(t, k, l3, 1e-9)

		if l1-l3 < 1e-6 {
			return // direction is ill-defined when eigenvalues coincide
		}
		var vecs mat.Dense
		es.VectorsTo(&vecs)
		s1 := geometry.Vector{X: vecs.At(0, 1), Y: vecs.At(1, 1)}
		p := tensor.Principal()
		assert.InDelta(t, 1.0, math.Abs(geometry.Dot(s1, p.S1)), 1e-6, "θ=%v k=%v", theta, k)
	})
}

// TestPrincipal_AxisAligned covers the xy = 0 special case at θ = 0 and θ = 90.
func TestPrincipal_AxisAligned(t *testing.T) {
	p := stress.Principal(0, 0.5)
	assert.Equal(t, geometry.Vector{X: 0, Y: 1}, p.S1)
	assert.Equal(t, geometry.Vector{X: 1, Y: 0}, p.S3)

	p = stress.Principal(90, 0.5)
	assert.InDelta(t, 1.0, math.Abs(p.S1.X), eps)
	assert.InDelta(t, 1.0, math.Abs(p.S3.Y), eps)
}

// TestPrincipal_Isotropic ensures k = 1 yields some orthonormal pair without panicking.
func TestPrincipal_Isotropic(t *testing.T) {
	for _, theta := range []float64{0, 17, 45, 90, 135, 180} {
		p := stress.Principal(theta, 1)
		assert.InDelta(t, 1.0, p.S1.Norm(), eps)
		assert.InDelta(t, 1.0, p.S3.Norm(), eps)
		assert.InDelta(t, 0.0, geometry.Dot(p.S1, p.S3), eps)
	}
}

// TestPrincipal_Uniaxial checks the analytic S1 direction for k = 0:
// the tensor then has its unit eigenvalue along (-sin θ, cos θ).
func TestPrincipal_Uniaxial(t *testing.T) {
	a := 30 * math.Pi / 180
	want := geometry.Vector{X: -math.Sin(a), Y: math.Cos(a)}
	p := stress.Principal(30, 0)
	assert.InDelta(t, 1.0, math.Abs(geometry.Dot(want, p.S1)), eps)
}

// TestTensor_TraceAndDet checks the invariants of the remote tensor.
func TestTensor_TraceAndDet(t *testing.T) {
	tensor := stress.NewTensor(42, 0.3)
	assert.InDelta(t, 1.3, tensor.Trace(), eps)
	assert.InDelta(t, 0.3, tensor.Det(), eps)
}

// TestTraction_VerticalLoad checks the traction under a pure vertical load
// |0 0; 0 1| at three plane orientations.
func TestTraction_VerticalLoad(t *testing.T) {
	tensor := stress.Tensor{XX: 0, XY: 0, YY: 1}

	cases := []struct {
		theta, normal, shear float64
	}{
		{0, 0, 0},
		{45, 0.5, 0.5},
		{90, 1, 0},
	}
	for _, c := range cases {
		n, s := tensor.Traction(c.theta)
		assert.InDelta(t, c.normal, n, eps, "normal at %v", c.theta)
		assert.InDelta(t, c.shear, s, eps, "shear at %v", c.theta)
	}
}

// TestTraction_MatchesProjection compares the double-angle form with the
// projection of T·n onto the plane normal n and its tangent.
func TestTraction_MatchesProjection(t *testing.T) {
	sweep(func(theta, k float64) {
		tensor := stress.NewTensor(theta, k)
		for _, plane := range []float64{0, 10, 33, 45, 71, 90, 120, 179} {
			a := plane * math.Pi / 180
			n := geometry.Vector{X: math.Cos(a), Y: math.Sin(a)}
			tr := tensor.Apply(n)

			normal, shear := tensor.Traction(plane)
			assert.InDelta(t, geometry.Dot(tr, n), normal, eps)
			assert.InDelta(t, geometry.Dot(tr, n.Perp()), shear, eps)

			// orthogonal planes share the trace
			other, _ := tensor.Traction(plane + 90)
			assert.InDelta(t, tensor.Trace(), normal+other, eps)
		}
	})
}

// TestTraction_PrincipalPlanes has no shear on planes normal to S1 and S3.
func TestTraction_PrincipalPlanes(t *testing.T) {
	tensor := stress.NewTensor(25, 0.4)
	l1, l3 := tensor.Eigenvalues()
	p := tensor.Principal()

	for _, c := range []struct {
		dir  geometry.Vector
		want float64
	}{{p.S1, l1}, {p.S3, l3}} {
		plane := math.Atan2(c.dir.Y, c.dir.X) * 180 / math.Pi
		normal, shear := tensor.Traction(plane)
		assert.InDelta(t, c.want, normal, eps)
		assert.InDelta(t, 0.0, shear, eps)
	}
}
