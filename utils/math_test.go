package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9)
	test.That(t, Square(-0.5), test.ShouldEqual, 0.25)
	test.That(t, Square(0), test.ShouldEqual, 0)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(0.5, -1, 1), test.ShouldEqual, 0.5)
	test.That(t, Clamp(1.0000001, -1, 1), test.ShouldEqual, 1)
	test.That(t, Clamp(-1.5, -1, 1), test.ShouldEqual, -1)
	test.That(t, Clamp(-1, -1, 1), test.ShouldEqual, -1)
}

func TestSort3(t *testing.T) {
	for _, tc := range [][6]float64{
		{1, 2, 3, 1, 2, 3},
		{3, 2, 1, 1, 2, 3},
		{2, 3, 1, 1, 2, 3},
		{2, 1, 3, 1, 2, 3},
		{1, 1, 0, 0, 1, 1},
		{5, 5, 5, 5, 5, 5},
	} {
		a, b, c := Sort3(tc[0], tc[1], tc[2])
		test.That(t, a, test.ShouldEqual, tc[3])
		test.That(t, b, test.ShouldEqual, tc[4])
		test.That(t, c, test.ShouldEqual, tc[5])
	}
}
