package utils

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestSimpleDeadband(t *testing.T) {
	for _, tc := range [][3]float64{
		// value, deadband, expected
		{0, 0, 0},
		{3, 0, 3},
		{0, 3, 0},
		{3, 3, 3},
		{3, 4, 0},
		{4, 3, 4},
		{-3, 0, -3},
		{-3, 3, -3},
		{-3, 4, 0},
		{-4, 3, -4},
	} {
		test.That(t, SimpleDeadband(tc[0], tc[1]), test.ShouldEqual, tc[2])
	}
}

func TestContinuousDeadband(t *testing.T) {
	test.That(t, ContinuousDeadband(0, 0), test.ShouldEqual, 0.0)
	test.That(t, ContinuousDeadband(0.05, 0), test.ShouldEqual, 0.05)

	test.That(t, ContinuousDeadband(0.05, 0.1), test.ShouldEqual, 0.0)
	test.That(t, ContinuousDeadband(0.1, 0.1), test.ShouldEqual, 0.0)
	test.That(t, ContinuousDeadband(1, 0.1), test.ShouldAlmostEqual, 1.0, 1e-12)
	test.That(t, ContinuousDeadband(0.5, 0.1), test.ShouldAlmostEqual, 0.44444, 1e-5)

	test.That(t, ContinuousDeadband(-0.05, 0.1), test.ShouldEqual, 0.0)
	test.That(t, ContinuousDeadband(-0.1, 0.1), test.ShouldEqual, 0.0)
	test.That(t, ContinuousDeadband(-1, 0.1), test.ShouldAlmostEqual, -1.0, 1e-12)
	test.That(t, ContinuousDeadband(-0.5, 0.1), test.ShouldAlmostEqual, -0.44444, 1e-5)
}

func TestClamp(t *testing.T) {
	for _, tc := range [][4]float64{
		// value, min, max, expected
		{0, 0, 0, 0},
		{3, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 3, 0},
		{3, 3, 0, 0},
		{0, 3, 3, 3},
		{3, 0, 3, 3},
		{3, 3, 3, 3},
		{4, 0, 3, 3},
		{3, 0, 4, 3},
		{-3, -3, 0, -3},
		{-4, -3, 0, -3},
	} {
		test.That(t, Clamp(tc[0], tc[1], tc[2]), test.ShouldEqual, tc[3])
	}

	test.That(t, ClampInt(12, 0, 10), test.ShouldEqual, 10)
	test.That(t, ClampInt(-1, 0, 10), test.ShouldEqual, 0)
	test.That(t, ClampInt(5, 0, 10), test.ShouldEqual, 5)
	test.That(t, ClampInt(5, 10, 0), test.ShouldEqual, 0)
}

func TestMapRange(t *testing.T) {
	test.That(t, MapRange(3, -3, 3, -3, 3), test.ShouldEqual, 3.0)
	test.That(t, MapRange(-3, -3, 3, -3, 3), test.ShouldEqual, -3.0)
	test.That(t, MapRange(50, -100, 100, -1, 1), test.ShouldAlmostEqual, 0.5, 1e-12)
	test.That(t, MapRange(20, 0, 360, -180, 180), test.ShouldEqual, -160.0)
	test.That(t, MapRange(0.5, 0, 1, 1, 0), test.ShouldEqual, 0.5)

	test.That(t, MapRangeInt(20, 0, 360, -180, 180), test.ShouldEqual, -160)
	test.That(t, MapRangeInt(5, 0, 10, 0, 100), test.ShouldEqual, 50)
}

func TestMedian(t *testing.T) {
	m, err := Median(45.2, -1.0, 5.07, -13.9)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldAlmostEqual, 2.035, 1e-9)

	values := []float64{45.2, -1.0, 5.07, -13.9, 40.905}
	m, err = Median(values...)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldEqual, 5.07)
	test.That(t, values, test.ShouldResemble, []float64{45.2, -1.0, 5.07, -13.9, 40.905})

	m, err = Median(1, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldEqual, 1.5)

	m, err = Median()
	test.That(t, errors.Is(err, ErrEmptyInput), test.ShouldBeTrue)
	test.That(t, math.IsNaN(m), test.ShouldBeTrue)
}

func TestAngles(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)

	test.That(t, AngleDiffDeg(350, 10), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDiffDeg(10, 350), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDiffDeg(0, 180), test.ShouldAlmostEqual, 180)
	test.That(t, AngleDiffDeg(-170, 170), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDiffDeg(725, 5), test.ShouldAlmostEqual, 0)

	test.That(t, IsAngleInTolerance(359, 1, 3), test.ShouldBeTrue)
	test.That(t, IsAngleInTolerance(-179, 179, 3), test.ShouldBeTrue)
	test.That(t, IsAngleInTolerance(90, 100, 3), test.ShouldBeFalse)

	test.That(t, Sign(-2), test.ShouldEqual, -1.0)
	test.That(t, Sign(0), test.ShouldEqual, 0.0)
	test.That(t, Sign(0.3), test.ShouldEqual, 1.0)
}
