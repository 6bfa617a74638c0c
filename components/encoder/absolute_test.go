package encoder_test

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/hamosad1657/halib/components/encoder"
	"github.com/hamosad1657/halib/components/encoder/fake"
	"github.com/hamosad1657/halib/testutils/inject"
	"github.com/hamosad1657/halib/units"
)

func TestAbsoluteAngle(t *testing.T) {
	ctx := context.Background()
	sensor := &fake.AbsoluteSensor{}
	enc := encoder.NewAbsolute(sensor, 0)

	for _, tc := range []struct {
		raw      float64
		expected float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-720 - 45, 315},
	} {
		sensor.SetAngleDeg(tc.raw)
		angle, err := enc.AngleDeg(ctx)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, angle, test.ShouldAlmostEqual, tc.expected, 1e-9)
	}

	sensor.SetAngleDeg(180)
	rad, err := enc.AngleRad(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rad, test.ShouldAlmostEqual, math.Pi, 1e-9)
}

func TestAbsoluteMagnetOffset(t *testing.T) {
	ctx := context.Background()
	sensor := &fake.AbsoluteSensor{}
	enc := encoder.NewAbsolute(sensor, -100)

	sensor.SetAngleDeg(40)
	angle, err := enc.AngleDeg(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, angle, test.ShouldAlmostEqual, 300.0, 1e-9)

	sensor.SetAngleDeg(100)
	angle, err = enc.AngleDeg(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, angle, test.ShouldAlmostEqual, 0.0, 1e-9)
}

func TestAbsoluteVelocity(t *testing.T) {
	ctx := context.Background()
	sensor := &fake.AbsoluteSensor{}
	enc := encoder.NewAbsolute(sensor, 0)

	sensor.SetVelocityDegPS(360)

	degPS, err := enc.VelocityDegPS(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, degPS, test.ShouldAlmostEqual, 360.0, 1e-9)

	radPS, err := enc.VelocityRadPS(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, radPS, test.ShouldAlmostEqual, 2*math.Pi, 1e-9)

	rpm, err := enc.VelocityRPM(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rpm, test.ShouldAlmostEqual, 60.0, 1e-9)

	radius, err := units.LengthFromMeters(0.5)
	test.That(t, err, test.ShouldBeNil)
	mps, err := enc.VelocityMPS(ctx, radius)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mps, test.ShouldAlmostEqual, math.Pi, 1e-9)

	_, err = enc.VelocityMPS(ctx, units.Length{})
	test.That(t, errors.Is(err, units.ErrInvalidWheelRadius), test.ShouldBeTrue)
}

func TestAbsoluteSensorErrors(t *testing.T) {
	ctx := context.Background()
	errBus := errors.New("can timeout")
	sensor := &inject.AbsoluteSensor{}
	sensor.RawPositionFunc = func(ctx context.Context) (float64, error) {
		return 0, errBus
	}
	sensor.RawVelocityFunc = func(ctx context.Context) (float64, error) {
		return 0, errBus
	}
	enc := encoder.NewAbsolute(sensor, 0)

	_, err := enc.AngleDeg(ctx)
	test.That(t, err, test.ShouldBeError, errBus)
	_, err = enc.AngleRad(ctx)
	test.That(t, err, test.ShouldBeError, errBus)
	_, err = enc.VelocityRPM(ctx)
	test.That(t, err, test.ShouldBeError, errBus)
}
