package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestRotationMatrixIdentity(t *testing.T) {
	rm := QuatToRotationMatrix(quat.Number{Real: 1})
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := 0.0
			if row == col {
				want = 1
			}
			test.That(t, rm.At(row, col), test.ShouldAlmostEqual, want)
		}
	}
	test.That(t, rm.Determinant(), test.ShouldAlmostEqual, 1)
}

func TestRotationMatrixRowsCols(t *testing.T) {
	rm := NewRotationMatrix([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	test.That(t, rm.At(1, 2), test.ShouldEqual, 6)
	test.That(t, rm.Row(0), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, rm.Row(2), test.ShouldResemble, r3.Vector{X: 7, Y: 8, Z: 9})
	test.That(t, rm.Col(1), test.ShouldResemble, r3.Vector{X: 2, Y: 5, Z: 8})
	test.That(t, rm.Transpose().Row(1), test.ShouldResemble, r3.Vector{X: 2, Y: 5, Z: 8})
}

func TestRotationMatrixOrthonormal(t *testing.T) {
	// a rotation matrix composed with its transpose is the identity, and its determinant is 1
	q := (&EulerAngles{Roll: 0.4, Pitch: -0.7, Yaw: 1.9}).Quaternion()
	rm := QuatToRotationMatrix(q)
	test.That(t, rm.Determinant(), test.ShouldAlmostEqual, 1, 1e-9)

	prod := rm.Mul(rm.Transpose())
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := 0.0
			if row == col {
				want = 1
			}
			test.That(t, prod.At(row, col), test.ShouldAlmostEqual, want, 1e-9)
		}
	}
}

func TestRotationMatrixFrameConvention(t *testing.T) {
	// In the frame rotation convention the rows of R are the rotated frame's axes expressed
	// in the original frame. After a quarter turn roll about x, the frame's y axis points
	// along world z and its z axis along world -y.
	q := (&EulerAngles{Roll: math.Pi / 2}).Quaternion()
	rm := QuatToRotationMatrix(q)
	test.That(t, rm.Row(0).X, test.ShouldAlmostEqual, 1)
	test.That(t, rm.Row(1).Z, test.ShouldAlmostEqual, 1)
	test.That(t, rm.Row(2).Y, test.ShouldAlmostEqual, -1)
}
