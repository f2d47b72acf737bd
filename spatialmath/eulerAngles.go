package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/nakajimakou1/ign-math/utils"
)

// EulerAngles are three angles (in radians) used to represent the rotation of an object in 3D
// Euclidean space. The Tait-Bryan angle formalism is used, with rotation order z, y', x''.
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // rotation about the x axis
	Pitch float64 `json:"pitch"` // rotation about the y axis
	Yaw   float64 `json:"yaw"`   // rotation about the z axis
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// Quaternion returns orientation in quaternion representation.
// See: https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles
func (ea *EulerAngles) Quaternion() quat.Number {
	sRoll := math.Sin(ea.Roll / 2)
	cRoll := math.Cos(ea.Roll / 2)
	sPitch := math.Sin(ea.Pitch / 2)
	cPitch := math.Cos(ea.Pitch / 2)
	sYaw := math.Sin(ea.Yaw / 2)
	cYaw := math.Cos(ea.Yaw / 2)

	return quat.Number{
		Real: cRoll*cPitch*cYaw + sRoll*sPitch*sYaw,
		Imag: sRoll*cPitch*cYaw - cRoll*sPitch*sYaw,
		Jmag: cRoll*sPitch*cYaw + sRoll*cPitch*sYaw,
		Kmag: cRoll*cPitch*sYaw - sRoll*sPitch*cYaw,
	}
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}

// QuatToEulerAngles converts a quaternion to the euler angle representation.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &EulerAngles{
		Roll:  math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)),
		Pitch: math.Asin(utils.Clamp(2*(w*y-z*x), -1, 1)),
		Yaw:   math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z)),
	}
}
