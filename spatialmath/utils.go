package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// normalizeAngle maps an angle in radians into the range (-pi, pi].
func normalizeAngle(angle float64) float64 {
	return math.Atan2(math.Sin(angle), math.Cos(angle))
}

// angle2 returns the angle between the direction of v and the x axis,
// or zero if v is too short to have a meaningful direction.
func angle2(v r2.Point) float64 {
	if v.Norm() < 1e-6 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// clampedSqrt returns the square root of x, or zero for negative x.
func clampedSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

func maxComponent(v r3.Vector) float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// QuaternionAlmostEqual compares two quaternions component-wise within the given tolerance.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return scalar.EqualWithinAbs(a.Real, b.Real, tol) &&
		scalar.EqualWithinAbs(a.Imag, b.Imag, tol) &&
		scalar.EqualWithinAbs(a.Jmag, b.Jmag, tol) &&
		scalar.EqualWithinAbs(a.Kmag, b.Kmag, tol)
}

// R3VectorAlmostEqual compares two vectors component-wise within the given absolute tolerance.
func R3VectorAlmostEqual(a, b r3.Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}
