// Package spatialmath defines spatial mathematical operations and representations used to
// describe the inertial properties and orientation of rigid bodies.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/nakajimakou1/ign-math/utils"
)

// defaultMOITolerance is the relative tolerance used by inertia computations when the caller
// does not supply one.
const defaultMOITolerance = 1e-6

// MassMatrix holds the inertial properties of a rigid body: a scalar mass and a symmetric 3x3
// moment of inertia matrix stored as two vectors, one for the diagonal moments (Ixx, Iyy, Izz)
// and one for the off-diagonal moments (Ixy, Ixz, Iyz), both expressed in the body frame.
//
// A MassMatrix is a plain value. The zero value has zero mass and zero moments, which is not a
// valid inertia; setters never reject input and instead report whether the resulting state is
// valid, so callers are expected to check IsValid before trusting derived quantities.
type MassMatrix struct {
	mass        float64
	diagonal    r3.Vector // Ixx, Iyy, Izz
	offDiagonal r3.Vector // Ixy, Ixz, Iyz
}

// NewMassMatrix creates a MassMatrix from a mass and the diagonal and off-diagonal moments of
// inertia. No validation is performed at construction time.
func NewMassMatrix(mass float64, diagonal, offDiagonal r3.Vector) *MassMatrix {
	return &MassMatrix{mass: mass, diagonal: diagonal, offDiagonal: offDiagonal}
}

// Mass returns the mass.
func (mm *MassMatrix) Mass() float64 {
	return mm.mass
}

// SetMass sets the mass and reports whether the resulting MassMatrix is valid.
func (mm *MassMatrix) SetMass(mass float64) bool {
	mm.mass = mass
	return mm.IsValid()
}

// DiagonalMoments returns the diagonal moments of inertia (Ixx, Iyy, Izz).
func (mm *MassMatrix) DiagonalMoments() r3.Vector {
	return mm.diagonal
}

// SetDiagonalMoments sets the diagonal moments of inertia (Ixx, Iyy, Izz) and reports whether
// the resulting MassMatrix is valid.
func (mm *MassMatrix) SetDiagonalMoments(diagonal r3.Vector) bool {
	mm.diagonal = diagonal
	return mm.IsValid()
}

// OffDiagonalMoments returns the off-diagonal moments of inertia (Ixy, Ixz, Iyz).
func (mm *MassMatrix) OffDiagonalMoments() r3.Vector {
	return mm.offDiagonal
}

// SetOffDiagonalMoments sets the off-diagonal moments of inertia (Ixy, Ixz, Iyz) and reports
// whether the resulting MassMatrix is valid.
func (mm *MassMatrix) SetOffDiagonalMoments(offDiagonal r3.Vector) bool {
	mm.offDiagonal = offDiagonal
	return mm.IsValid()
}

// IXX returns the second moment of inertia about the x axis.
func (mm *MassMatrix) IXX() float64 {
	return mm.diagonal.X
}

// IYY returns the second moment of inertia about the y axis.
func (mm *MassMatrix) IYY() float64 {
	return mm.diagonal.Y
}

// IZZ returns the second moment of inertia about the z axis.
func (mm *MassMatrix) IZZ() float64 {
	return mm.diagonal.Z
}

// IXY returns the xy product moment of inertia.
func (mm *MassMatrix) IXY() float64 {
	return mm.offDiagonal.X
}

// IXZ returns the xz product moment of inertia.
func (mm *MassMatrix) IXZ() float64 {
	return mm.offDiagonal.Y
}

// IYZ returns the yz product moment of inertia.
func (mm *MassMatrix) IYZ() float64 {
	return mm.offDiagonal.Z
}

// SetIXX sets the second moment of inertia about the x axis and reports whether the resulting
// MassMatrix is valid.
func (mm *MassMatrix) SetIXX(v float64) bool {
	mm.diagonal.X = v
	return mm.IsValid()
}

// SetIYY sets the second moment of inertia about the y axis and reports whether the resulting
// MassMatrix is valid.
func (mm *MassMatrix) SetIYY(v float64) bool {
	mm.diagonal.Y = v
	return mm.IsValid()
}

// SetIZZ sets the second moment of inertia about the z axis and reports whether the resulting
// MassMatrix is valid.
func (mm *MassMatrix) SetIZZ(v float64) bool {
	mm.diagonal.Z = v
	return mm.IsValid()
}

// SetIXY sets the xy product moment of inertia and reports whether the resulting MassMatrix
// is valid.
func (mm *MassMatrix) SetIXY(v float64) bool {
	mm.offDiagonal.X = v
	return mm.IsValid()
}

// SetIXZ sets the xz product moment of inertia and reports whether the resulting MassMatrix
// is valid.
func (mm *MassMatrix) SetIXZ(v float64) bool {
	mm.offDiagonal.Y = v
	return mm.IsValid()
}

// SetIYZ sets the yz product moment of inertia and reports whether the resulting MassMatrix
// is valid.
func (mm *MassMatrix) SetIYZ(v float64) bool {
	mm.offDiagonal.Z = v
	return mm.IsValid()
}

// SetInertiaMatrix sets all six independent moments of inertia and reports whether the
// resulting MassMatrix is valid.
func (mm *MassMatrix) SetInertiaMatrix(ixx, iyy, izz, ixy, ixz, iyz float64) bool {
	mm.diagonal = r3.Vector{X: ixx, Y: iyy, Z: izz}
	mm.offDiagonal = r3.Vector{X: ixy, Y: ixz, Z: iyz}
	return mm.IsValid()
}

// MOI assembles the full symmetric moment of inertia matrix from the stored vectors.
func (mm *MassMatrix) MOI() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		mm.diagonal.X, mm.offDiagonal.X, mm.offDiagonal.Y,
		mm.offDiagonal.X, mm.diagonal.Y, mm.offDiagonal.Z,
		mm.offDiagonal.Y, mm.offDiagonal.Z, mm.diagonal.Z,
	})
}

// SetMOI sets the moments of inertia from a 3x3 matrix. Only the symmetric component of the
// input is kept: each pair of off-diagonal entries is averaged. Reports whether the resulting
// MassMatrix is valid.
func (mm *MassMatrix) SetMOI(moi mat.Matrix) bool {
	mm.diagonal = r3.Vector{X: moi.At(0, 0), Y: moi.At(1, 1), Z: moi.At(2, 2)}
	mm.offDiagonal = r3.Vector{
		X: 0.5 * (moi.At(0, 1) + moi.At(1, 0)),
		Y: 0.5 * (moi.At(0, 2) + moi.At(2, 0)),
		Z: 0.5 * (moi.At(1, 2) + moi.At(2, 1)),
	}
	return mm.IsValid()
}

// AlmostEqual reports whether two MassMatrix values agree: masses within the default tolerance
// and both moment vectors exactly equal component-wise.
func (mm *MassMatrix) AlmostEqual(other *MassMatrix) bool {
	return scalar.EqualWithinAbs(mm.mass, other.mass, defaultMOITolerance) &&
		mm.diagonal == other.diagonal &&
		mm.offDiagonal == other.offDiagonal
}

// IsPositive reports whether the mass is positive and the moment of inertia matrix is positive
// definite, checked through the determinants of its leading principal submatrices.
func (mm *MassMatrix) IsPositive() bool {
	return mm.mass > 0 &&
		mm.IXX() > 0 &&
		mm.IXX()*mm.IYY()-utils.Square(mm.IXY()) > 0 &&
		mat.Det(mm.MOI()) > 0
}

// IsValid reports whether the inertia values are positive definite and the principal moments
// satisfy the triangle inequality.
func (mm *MassMatrix) IsValid() bool {
	return mm.IsPositive() && ValidMoments(mm.PrincipalMoments(defaultMOITolerance))
}

// ValidMoments reports whether the given candidate principal moments are all positive and
// satisfy the triangle inequality: no moment may exceed the sum of the other two.
func ValidMoments(moments r3.Vector) bool {
	return moments.X > 0 &&
		moments.Y > 0 &&
		moments.Z > 0 &&
		moments.X+moments.Y > moments.Z &&
		moments.Y+moments.Z > moments.X &&
		moments.Z+moments.X > moments.Y
}

// PrincipalMoments computes the principal moments of inertia, the eigenvalues of the moment of
// inertia matrix, using the closed form for a real symmetric 3x3 matrix. If the matrix is
// already diagonal within tolerance they are returned in the stored order; otherwise they are
// sorted from smallest to largest. The tolerance is relative to the largest diagonal moment;
// a non-positive tol selects the default of 1e-6.
//
// Algorithm based on the method of Kronenburg, http://arxiv.org/abs/1306.6291v4,
// "A Method for Fast Diagonalization of a 2x2 or 3x3 Real Symmetric Matrix".
func (mm *MassMatrix) PrincipalMoments(tol float64) r3.Vector {
	if tol <= 0 {
		tol = defaultMOITolerance
	}
	// tolerance relative to the maximum value of the inertia diagonal
	scaledTol := tol * maxComponent(mm.diagonal)
	if R3VectorAlmostEqual(mm.offDiagonal, r3.Vector{}, scaledTol) {
		// matrix is already diagonalized, return the diagonal moments as stored
		return mm.diagonal
	}

	id := mm.diagonal
	ip := mm.offDiagonal
	// invariants of the characteristic polynomial
	b := id.X + id.Y + id.Z
	c := id.X*id.Y - utils.Square(ip.X) +
		id.X*id.Z - utils.Square(ip.Y) +
		id.Y*id.Z - utils.Square(ip.Z)
	d := id.X*utils.Square(ip.Z) +
		id.Y*utils.Square(ip.Y) +
		id.Z*utils.Square(ip.X) -
		id.X*id.Y*id.Z - 2*ip.X*ip.Y*ip.Z

	// p is a sum of squares that is only zero for a diagonal matrix with identical moments, a
	// case already handled above, but its inverse feeds the acos below so guard it anyway.
	p := utils.Square(b) - 3*c
	if p < utils.Square(scaledTol) {
		return r3.Vector{X: b / 3, Y: b / 3, Z: b / 3}
	}

	q := 2*b*b*b - 9*b*c - 27*d

	// clamp the acos argument to absorb floating point round-off
	delta := math.Acos(utils.Clamp(0.5*q/math.Pow(p, 1.5), -1, 1))

	// the three roots; the third uses a negative phase shift per the closed form derivation
	moment0 := (b + 2*math.Sqrt(p)*math.Cos(delta/3)) / 3
	moment1 := (b + 2*math.Sqrt(p)*math.Cos((delta+2*math.Pi)/3)) / 3
	moment2 := (b + 2*math.Sqrt(p)*math.Cos((delta-2*math.Pi)/3)) / 3
	moment0, moment1, moment2 = utils.Sort3(moment0, moment1, moment2)
	return r3.Vector{X: moment0, Y: moment1, Z: moment2}
}

// PrincipalAxesOffset computes the orientation that rotates the body frame onto the principal
// axes of inertia. With R the rotation matrix of the returned quaternion and L the diagonal
// matrix of principal moments sorted ascending, the moment of inertia matrix satisfies
// MOI = R^T * L * R. The tolerance is relative to the largest diagonal moment; a non-positive
// tol selects the default of 1e-6.
//
// A zero (non-unit) quaternion is returned as a sentinel if the configuration is detectably
// inconsistent; callers must treat a non-unit result as an indeterminate orientation.
//
// Algorithm based on the method of Kronenburg, http://arxiv.org/abs/1306.6291v4,
// "A Method for Fast Diagonalization of a 2x2 or 3x3 Real Symmetric Matrix".
func (mm *MassMatrix) PrincipalAxesOffset(tol float64) quat.Number {
	if tol <= 0 {
		tol = defaultMOITolerance
	}
	scaledTol := tol * maxComponent(mm.diagonal)
	moments := mm.PrincipalMoments(tol)
	if R3VectorAlmostEqual(moments, mm.diagonal, scaledTol) {
		// the matrix is already aligned with its principal axes; this also covers the case of
		// all three moments being approximately equal
		return quat.Number{Real: 1}
	}

	// f1, f2 defined in equations 5.5, 5.6 of the paper
	f1 := r2.Point{X: mm.offDiagonal.X, Y: -mm.offDiagonal.Y}
	f2 := r2.Point{X: mm.diagonal.Y - mm.diagonal.Z, Y: -2 * mm.offDiagonal.Z}

	// The moments are sorted, so only adjacent values need to be compared to detect a repeated
	// moment. unequalMoment is the index of the moment the other two differ from, or -1.
	unequalMoment := -1
	if scalar.EqualWithinAbs(moments.X-moments.Y, 0, scaledTol) {
		unequalMoment = 2
	} else if scalar.EqualWithinAbs(moments.Y-moments.Z, 0, scaledTol) {
		unequalMoment = 0
	}

	if unequalMoment >= 0 {
		return mm.repeatedMomentsOffset(moments, unequalMoment, f1, f2, scaledTol)
	}
	return mm.distinctMomentsOffset(moments, f1, f2, scaledTol)
}

// repeatedMomentsOffset handles the case of exactly two coincident principal moments.
// moments.Y is always one of the repeated values; the moment at unequalMoment differs.
func (mm *MassMatrix) repeatedMomentsOffset(
	moments r3.Vector, unequalMoment int, f1, f2 r2.Point, scaledTol float64,
) quat.Number {
	moment3 := moments.Z
	if unequalMoment == 0 {
		moment3 = moments.X
	}
	momentsDiff3 := moments.Y - moment3

	// s = cos(phi2)^2 = (A11 - lambda3) / (lambda - lambda3), which is non-negative since A11
	// lies between lambda and lambda3
	s := (mm.diagonal.X - moment3) / momentsDiff3

	// phi3 is zero by construction when two moments repeat (eq 5.23)
	phi3 := 0.0
	phi2 := math.Acos(utils.Clamp(clampedSqrt(s), -1, 1))

	// g1, g2 defined in equations 5.24, 5.25
	g1 := r2.Point{X: 0, Y: 0.5 * momentsDiff3 * math.Sin(2*phi2)}
	g2 := r2.Point{X: momentsDiff3 * s, Y: 0}

	// With repeated moments there is a single value of phi12 and one value of phi11 for each
	// sign of phi2. A repeated moment with |f2| == 0 implies the matrix is diagonal, which has
	// already returned the identity above, so f2 always has a usable direction here.
	phi1 := normalizeAngle(0.5 * (angle2(g2) - angle2(f2)))

	if f1.Norm() >= scaledTol {
		// phi11a corresponds to phi2 >= 0, phi11b to phi2 <= 0. Compare sine and cosine
		// residuals rather than the angles themselves so that pi and -pi count as close.
		phi11a := normalizeAngle(angle2(g1) - angle2(f1))
		phi11b := normalizeAngle(angle2(g1.Mul(-1)) - angle2(f1))
		erra := utils.Square(math.Sin(phi1)-math.Sin(phi11a)) +
			utils.Square(math.Cos(phi1)-math.Cos(phi11a))
		errb := utils.Square(math.Sin(phi1)-math.Sin(phi11b)) +
			utils.Square(math.Cos(phi1)-math.Cos(phi11b))
		if errb < erra {
			phi2 *= -1
		}
	}

	result := quat.Inv((&EulerAngles{Roll: -phi1, Pitch: -phi2, Yaw: -phi3}).Quaternion())

	// The equations above assume the repeated moments come first (moments.X == moments.Y). If
	// the repeated moments are instead the larger pair, apply an extra quarter-turn pitch that
	// exchanges the first and third principal moments.
	if unequalMoment == 0 {
		result = quat.Mul(result, (&EulerAngles{Pitch: math.Pi / 2}).Quaternion())
	}
	return result
}

// distinctMomentsOffset handles the case of three distinct principal moments.
func (mm *MassMatrix) distinctMomentsOffset(
	moments r3.Vector, f1, f2 r2.Point, scaledTol float64,
) quat.Number {
	// v and w solve equations 5.10 and 5.11 in closed form
	v := (utils.Square(mm.offDiagonal.X) + utils.Square(mm.offDiagonal.Y) +
		(mm.diagonal.X-moments.Z)*(mm.diagonal.X+moments.Z-moments.X-moments.Y)) /
		((moments.Y - moments.Z) * (moments.Z - moments.X))
	w := (mm.diagonal.X - moments.Z + (moments.Z-moments.Y)*v) /
		((moments.X - moments.Y) * v)

	phi1 := 0.0
	phi2 := math.Acos(utils.Clamp(clampedSqrt(v), -1, 1))
	phi3 := math.Acos(utils.Clamp(clampedSqrt(w), -1, 1))

	// g1, g2 for phi2, phi3 >= 0, equations 5.7, 5.8
	g1 := r2.Point{
		X: 0.5 * (moments.X - moments.Y) * clampedSqrt(v) * math.Sin(2*phi3),
		Y: 0.5 * ((moments.X-moments.Y)*w + moments.Y - moments.Z) * math.Sin(2*phi2),
	}
	g2 := r2.Point{
		X: (moments.X-moments.Y)*(1+(v-2)*w) + (moments.Y-moments.Z)*v,
		Y: (moments.X - moments.Y) * math.Sin(phi2) * math.Sin(2*phi3),
	}

	f1small := f1.Norm() < scaledTol
	f2small := f2.Norm() < scaledTol
	switch {
	case f1small && f2small:
		// both auxiliary vectors vanishing implies a repeated moment, which should have been
		// detected before reaching this branch; signal an indeterminate orientation
		return quat.Number{}
	case f1small:
		phi1 = normalizeAngle(0.5 * (angle2(g2) - angle2(f2)))
	case f2small:
		phi1 = normalizeAngle(angle2(g1) - angle2(f1))
	default:
		// The two independently derived candidates phi11 and phi12 agree when the signs of
		// phi2 and phi3 are chosen correctly. Evaluate the remaining three sign combinations
		// and keep the one with the smallest sine/cosine residual.
		phi11 := normalizeAngle(angle2(g1) - angle2(f1))
		phi12 := normalizeAngle(0.5 * (angle2(g2) - angle2(f2)))
		errMin := utils.Square(math.Sin(phi11)-math.Sin(phi12)) +
			utils.Square(math.Cos(phi11)-math.Cos(phi12))
		phi1 = phi11
		signPhi2, signPhi3 := 1.0, 1.0
		for _, alt := range []struct {
			g1, g2 r2.Point
			sign2  float64
			sign3  float64
		}{
			{r2.Point{X: g1.X, Y: -g1.Y}, r2.Point{X: g2.X, Y: -g2.Y}, -1, 1}, // phi2 <= 0
			{r2.Point{X: -g1.X, Y: g1.Y}, r2.Point{X: g2.X, Y: -g2.Y}, 1, -1}, // phi3 <= 0
			{g1.Mul(-1), g2, -1, -1}, // phi2, phi3 <= 0
		} {
			altPhi11 := normalizeAngle(angle2(alt.g1) - angle2(f1))
			altPhi12 := normalizeAngle(0.5 * (angle2(alt.g2) - angle2(f2)))
			altErr := utils.Square(math.Sin(altPhi11)-math.Sin(altPhi12)) +
				utils.Square(math.Cos(altPhi11)-math.Cos(altPhi12))
			if altErr < errMin {
				errMin = altErr
				phi1 = altPhi11
				signPhi2, signPhi3 = alt.sign2, alt.sign3
			}
		}
		phi2 *= signPhi2
		phi3 *= signPhi3
	}

	return quat.Inv((&EulerAngles{Roll: -phi1, Pitch: -phi2, Yaw: -phi3}).Quaternion())
}
